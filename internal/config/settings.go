package config

import "sync"

// RuntimeSettings holds settings that can change while the viewer runs.
// The audio goroutine reads the hum volume, so access is locked.
type RuntimeSettings struct {
	mu             sync.RWMutex
	fpsLimit       int     // 0 = unlimited
	pausedFPSLimit int     // cap while the clock is paused, 0 = same as fpsLimit
	humVolume      float64 // 0..1
	timeScale      float64
}

var globalSettings = &RuntimeSettings{
	fpsLimit:       120,
	pausedFPSLimit: 30,
	humVolume:      0.15,
	timeScale:      1.0,
}

// GetFPSLimit returns the frame cap, 0 when unlimited
func GetFPSLimit() int {
	globalSettings.mu.RLock()
	defer globalSettings.mu.RUnlock()
	return globalSettings.fpsLimit
}

// SetFPSLimit sets the frame cap. Values <= 0 disable the cap.
func SetFPSLimit(limit int) {
	globalSettings.mu.Lock()
	defer globalSettings.mu.Unlock()

	if limit < 0 {
		limit = 0
	}
	if limit > 0 && limit < 15 {
		limit = 15
	}
	if limit > 1000 {
		limit = 1000
	}

	globalSettings.fpsLimit = limit
}

// GetPausedFPSLimit returns the frame cap used while paused, 0 to keep the normal cap
func GetPausedFPSLimit() int {
	globalSettings.mu.RLock()
	defer globalSettings.mu.RUnlock()
	return globalSettings.pausedFPSLimit
}

// SetPausedFPSLimit sets the paused frame cap, clamped like SetFPSLimit.
func SetPausedFPSLimit(limit int) {
	globalSettings.mu.Lock()
	defer globalSettings.mu.Unlock()

	if limit < 0 {
		limit = 0
	}
	if limit > 0 && limit < 5 {
		limit = 5
	}
	if limit > 1000 {
		limit = 1000
	}

	globalSettings.pausedFPSLimit = limit
}

// GetHumVolume returns the lamp hum volume
func GetHumVolume() float64 {
	globalSettings.mu.RLock()
	defer globalSettings.mu.RUnlock()
	return globalSettings.humVolume
}

// SetHumVolume sets the lamp hum volume, clamped to [0,1]
func SetHumVolume(v float64) {
	globalSettings.mu.Lock()
	defer globalSettings.mu.Unlock()

	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	globalSettings.humVolume = v
}

// GetTimeScale returns how fast simulation time runs relative to wall time
func GetTimeScale() float64 {
	globalSettings.mu.RLock()
	defer globalSettings.mu.RUnlock()
	return globalSettings.timeScale
}

// SetTimeScale sets the simulation speed, clamped to [0,8]. 0 freezes animation.
func SetTimeScale(s float64) {
	globalSettings.mu.Lock()
	defer globalSettings.mu.Unlock()

	if s < 0 {
		s = 0
	}
	if s > 8 {
		s = 8
	}
	globalSettings.timeScale = s
}
