package game

import (
	"log"
	"time"

	"tilelevel/internal/config"
	"tilelevel/internal/graphics/renderer"
	"tilelevel/internal/input"
	"tilelevel/internal/profiling"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// VolumeControl is the part of the audio player the app talks to.
type VolumeControl interface {
	SetVolume(v float64)
}

type App struct {
	window       *glfw.Window
	inputManager *input.InputManager
	renderer     *renderer.Renderer
	hum          VolumeControl

	clock      *Clock
	orbiting   bool
	profiling  bool
	fpsLimiter *FPSLimiter
	lastTime   time.Time
	lastReport time.Time
}

// NewApp wires the window callbacks to the renderer. hum may be nil.
func NewApp(window *glfw.Window, im *input.InputManager, r *renderer.Renderer, clock *Clock, hum VolumeControl) *App {
	a := &App{
		window:       window,
		inputManager: im,
		renderer:     r,
		hum:          hum,
		clock:        clock,
		orbiting:     true,
		fpsLimiter:   NewFPSLimiter(),
		lastTime:     time.Now(),
		lastReport:   time.Now(),
	}

	im.SetKeyCallback(window)
	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		a.resize(width, height)
		// Keep drawing while the user drags the window edge
		a.RefreshRender()
	})

	width, height := window.GetFramebufferSize()
	a.resize(width, height)
	return a
}

func (a *App) Run() {
	for !a.window.ShouldClose() {
		a.tick()
	}
}

func (a *App) tick() {
	profiling.ResetFrame()
	startTick := time.Now() // Measure pure processing time
	now := time.Now()
	dt := now.Sub(a.lastTime).Seconds()
	a.lastTime = now

	func() { defer profiling.Track("glfw.PollEvents")(); glfw.PollEvents() }()
	a.handleInput()

	step := a.clock.Tick(dt)
	if a.orbiting {
		a.renderer.GetCamera().Advance(step)
	}

	a.renderer.Render(a.clock.Now(), step)

	func() { defer profiling.Track("glfw.SwapBuffers")(); a.window.SwapBuffers() }()

	// Check if frame took too long (> 16ms)
	processingDuration := time.Since(startTick)
	if processingDuration > 16*time.Millisecond {
		log.Printf("Slow frame: %v. Top tasks: %s", processingDuration, profiling.TopNCurrentFrame(5))
	}
	if a.profiling && now.Sub(a.lastReport) >= time.Second {
		a.lastReport = now
		log.Printf("frame %v (render %v, glfw %v), top: %s",
			processingDuration,
			profiling.SumWithPrefix("renderer."),
			profiling.SumWithPrefix("glfw."),
			profiling.TopNCurrentFrame(3))
	}

	a.inputManager.PostUpdate() // Clear "JustPressed" flags

	a.fpsLimiter.Wait(a.clock.Paused())
}

func (a *App) handleInput() {
	im := a.inputManager

	if im.JustPressed(input.ActionQuit) {
		a.window.SetShouldClose(true)
	}
	if im.JustPressed(input.ActionPause) {
		paused := a.clock.TogglePause()
		if a.hum != nil {
			if paused {
				a.hum.SetVolume(0)
			} else {
				a.hum.SetVolume(config.GetHumVolume())
			}
		}
	}
	if im.JustPressed(input.ActionToggleOrbit) {
		a.orbiting = !a.orbiting
	}
	if im.JustPressed(input.ActionToggleProfiling) {
		a.profiling = !a.profiling
		log.Printf("profiling output: %v", a.profiling)
	}
	if im.JustPressed(input.ActionSpeedUp) {
		config.SetTimeScale(max(config.GetTimeScale(), 1.0/16) * 2)
		log.Printf("time scale: %.3g", config.GetTimeScale())
	}
	if im.JustPressed(input.ActionSlowDown) {
		config.SetTimeScale(max(config.GetTimeScale()/2, 1.0/16))
		log.Printf("time scale: %.3g", config.GetTimeScale())
	}
}

func (a *App) resize(width, height int) {
	if width == 0 || height == 0 {
		return
	}
	gl.Viewport(0, 0, int32(width), int32(height))
	a.renderer.UpdateViewport(width, height)
}

// RefreshRender repaints the current frame without advancing time
func (a *App) RefreshRender() {
	a.renderer.Render(a.clock.Now(), 0)
	a.window.SwapBuffers()
}
