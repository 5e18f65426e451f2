package graphics

import "tilelevel/internal/lighting"

// Context owns the light regime of a Device. Indoor lighting can only be
// switched on through an IndoorScope, which always restores the outdoor
// defaults when it exits.
type Context struct {
	dev   Device
	time  float64
	scope *IndoorScope

	enters int
	exits  int
}

// IndoorScope is an active indoor lighting region. Exit must be called exactly once;
// further calls are ignored.
type IndoorScope struct {
	ctx  *Context
	done bool
}

// NewContext wraps dev.
func NewContext(dev Device) *Context {
	return &Context{dev: dev}
}

// Device returns the wrapped device.
func (c *Context) Device() Device {
	return c.dev
}

// SetTime sets the simulation time that drives the lamp flicker and animated surfaces.
func (c *Context) SetTime(t float64) {
	c.time = t
}

// Time returns the current simulation time.
func (c *Context) Time() float64 {
	return c.time
}

// ConfigureSun uploads the sun parameters. The sun slot is never repositioned per tile.
func (c *Context) ConfigureSun(l lighting.Light) {
	c.dev.SetLight(LightSun, l)
}

// UseOutdoor forces the outdoor regime: lamp off, warm ambient, sun on.
func (c *Context) UseOutdoor() {
	if c.scope != nil {
		panic("graphics: outdoor lighting forced inside an indoor scope")
	}
	c.applyOutdoor()
}

func (c *Context) applyOutdoor() {
	c.dev.DisableLight(LightLamp)
	c.dev.SetAmbient(lighting.AmbientOutdoor)
	c.dev.EnableLight(LightSun)
}

// EnterIndoor switches to the indoor regime with the lamp on the ceiling
// above (x, z). Scopes do not nest.
func (c *Context) EnterIndoor(x, z float32) *IndoorScope {
	if c.scope != nil {
		panic("graphics: nested indoor scope")
	}

	c.dev.DisableLight(LightSun)
	c.dev.SetAmbient(lighting.AmbientIndoor)
	c.dev.EnableLight(LightLamp)
	c.dev.SetLight(LightLamp, lighting.Lamp(x, z, lighting.LampIntensity(c.time)))

	c.scope = &IndoorScope{ctx: c}
	c.enters++
	return c.scope
}

// Exit leaves the indoor regime and restores the outdoor defaults.
func (s *IndoorScope) Exit() {
	if s.done {
		return
	}
	s.done = true
	s.ctx.scope = nil
	s.ctx.exits++
	s.ctx.applyOutdoor()
}

// Indoor runs draw with indoor lighting above (x, z).
func (c *Context) Indoor(x, z float32, draw func()) {
	scope := c.EnterIndoor(x, z)
	defer scope.Exit()
	draw()
}

// CloseScope exits the active indoor scope, if any.
func (c *Context) CloseScope() {
	if c.scope != nil {
		c.scope.Exit()
	}
}

// Indoors reports whether an indoor scope is active.
func (c *Context) Indoors() bool {
	return c.scope != nil
}

// Balanced reports whether every entered scope has exited.
func (c *Context) Balanced() bool {
	return c.scope == nil && c.enters == c.exits
}

// Scopes returns how many indoor scopes were entered and exited since the last reset.
func (c *Context) Scopes() (enters, exits int) {
	return c.enters, c.exits
}

// ResetScopes clears the scope counters, usually at the start of a frame.
func (c *Context) ResetScopes() {
	c.enters, c.exits = 0, 0
}
