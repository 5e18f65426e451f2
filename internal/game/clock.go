package game

import (
	"math"
	"sync/atomic"

	"tilelevel/internal/config"
)

// Clock is the simulation clock. It drives the lamp flicker, the animated
// surfaces and the lamp hum, so pausing it freezes the whole level.
// Only the render thread ticks it; Now and Paused are safe from any goroutine.
type Clock struct {
	now    atomic.Uint64 // float64 bits
	paused atomic.Bool
	scale  func() float64
}

// NewClock returns a clock at t=0 scaled by the runtime time scale.
func NewClock() *Clock {
	return &Clock{scale: config.GetTimeScale}
}

// Tick advances the clock by the wall time dt and returns the scaled step.
func (c *Clock) Tick(dt float64) float64 {
	if c.paused.Load() || dt <= 0 {
		return 0
	}
	// Long hitches (window drag, debugger) would otherwise skip the flicker ahead
	if dt > 0.25 {
		dt = 0.25
	}
	step := dt * c.scale()
	c.now.Store(math.Float64bits(c.Now() + step))
	return step
}

func (c *Clock) Now() float64 {
	return math.Float64frombits(c.now.Load())
}

func (c *Clock) Paused() bool {
	return c.paused.Load()
}

// TogglePause flips the paused state and returns the new one.
func (c *Clock) TogglePause() bool {
	paused := !c.paused.Load()
	c.paused.Store(paused)
	return paused
}
