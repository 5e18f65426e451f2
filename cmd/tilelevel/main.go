package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"

	"tilelevel/internal/assets"
	"tilelevel/internal/audio"
	"tilelevel/internal/config"
	"tilelevel/internal/game"
	"tilelevel/internal/graphics"
	"tilelevel/internal/graphics/renderables/sky"
	"tilelevel/internal/graphics/renderables/tiles"
	"tilelevel/internal/graphics/renderer"
	"tilelevel/internal/input"
	"tilelevel/internal/level"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/xlab/closer"
)

func init() {
	// GLFW and GL calls must stay on the main thread
	runtime.LockOSThread()
}

type options struct {
	configPath string
	levelPath  string
	dryRun     bool
	dryRunTime float64
	mute       bool
}

func main() {
	defer closer.Close()

	var opts options
	flag.StringVar(&opts.configPath, "config", "", "path to a YAML config (default $"+config.EnvConfigPath+")")
	flag.StringVar(&opts.levelPath, "level", "", "level file, overrides the config")
	flag.BoolVar(&opts.dryRun, "dry-run", false, "draw one frame into a recorder and print call statistics")
	flag.Float64Var(&opts.dryRunTime, "t", 0, "simulation time of the dry-run frame")
	flag.BoolVar(&opts.mute, "mute", false, "disable the lamp hum")
	flag.Parse()

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		closer.Fatalln(err)
	}
	if opts.levelPath != "" {
		cfg.Level = opts.levelPath
	}
	if opts.mute {
		cfg.Audio.Enabled = false
	}
	cfg.Apply()

	grid, err := level.Load(cfg.Level)
	if err != nil {
		closer.Fatalln(err)
	}

	if opts.dryRun {
		if _, err := dryRun(os.Stdout, grid, opts.dryRunTime); err != nil {
			closer.Fatalln(err)
		}
		return
	}

	if err := run(cfg, grid); err != nil {
		closer.Fatalln(err)
	}
}

func run(cfg *config.File, grid *level.Grid) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("init glfw: %w", err)
	}
	defer glfw.Terminate()

	window, err := game.SetupWindow(cfg.Window)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	defer window.Destroy()

	dev := graphics.NewGLDevice()

	loader := assets.NewGLLoader()
	defer loader.Release()

	bundle, err := assets.Load(loader, cfg.Assets)
	if err != nil {
		return err
	}
	log.Printf("loaded %d textures", loader.Textures.Len())

	r, err := newRenderer(graphics.NewContext(dev), grid, bundle, cfg.Window.Width, cfg.Window.Height)
	if err != nil {
		return err
	}
	defer r.Dispose()

	clock := game.NewClock()

	var hum game.VolumeControl
	if cfg.Audio.Enabled {
		p, err := audio.StartHum(config.GetHumVolume(), clock)
		if err != nil {
			// The level is still worth looking at without sound
			log.Printf("audio disabled: %v", err)
		} else {
			closer.Bind(func() {
				if err := p.Close(); err != nil {
					log.Printf("close audio: %v", err)
				}
			})
			hum = p
		}
	}

	log.Printf("level %s: %dx%d tiles", cfg.Level, grid.Width(), grid.Height())

	app := game.NewApp(window, input.NewInputManager(), r, clock, hum)
	app.Run()
	return nil
}

// newRenderer builds the frame renderer with the sky behind the level and
// the camera framed on the grid.
func newRenderer(gc *graphics.Context, grid *level.Grid, b *assets.Bundle, width, height int) (*renderer.Renderer, error) {
	camera := graphics.NewCamera(width, height)
	camera.Frame(level.NewMetrics(grid, tiles.TileSize).Extent())

	return renderer.NewRenderer(gc, camera, sky.NewSky(b.Skydome), tiles.NewLevel(grid, b))
}
