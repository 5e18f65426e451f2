package config

import (
	"fmt"
	"os"

	"tilelevel/internal/assets"

	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the environment variable consulted when no config path is given.
const EnvConfigPath = "TILELEVEL_CONFIG"

// File is the on-disk viewer configuration.
type File struct {
	Window WindowConfig    `yaml:"window"`
	Level  string          `yaml:"level"`
	Assets assets.Manifest `yaml:"assets"`
	Render RenderConfig    `yaml:"render"`
	Audio  AudioConfig     `yaml:"audio"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	VSync  bool   `yaml:"vsync"`
}

type RenderConfig struct {
	FPSLimit       int     `yaml:"fps_limit"`
	PausedFPSLimit int     `yaml:"paused_fps_limit"`
	TimeScale      float64 `yaml:"time_scale"`
}

type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

// Default returns the built-in configuration.
func Default() *File {
	return &File{
		Window: WindowConfig{Width: 900, Height: 600, Title: "tilelevel", VSync: true},
		Level:  "levels/demo.txt",
		Assets: assets.DefaultManifest(),
		Render: RenderConfig{FPSLimit: 120, PausedFPSLimit: 30, TimeScale: 1.0},
		Audio:  AudioConfig{Enabled: true, Volume: 0.15},
	}
}

// Load reads a YAML config on top of the defaults.
// If path is empty, TILELEVEL_CONFIG is used; if that is empty too, defaults are returned.
func Load(path string) (*File, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv(EnvConfigPath)
		if path == "" {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg.Assets = cfg.Assets.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks values that cannot be clamped.
func (f *File) Validate() error {
	if f.Window.Width <= 0 || f.Window.Height <= 0 {
		return fmt.Errorf("invalid window size: %dx%d", f.Window.Width, f.Window.Height)
	}
	if f.Level == "" {
		return fmt.Errorf("no level file")
	}
	return nil
}

// Apply pushes the runtime parts of the file into the global settings.
func (f *File) Apply() {
	SetFPSLimit(f.Render.FPSLimit)
	SetPausedFPSLimit(f.Render.PausedFPSLimit)
	SetTimeScale(f.Render.TimeScale)
	SetHumVolume(f.Audio.Volume)
}
