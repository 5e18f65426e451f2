package game

import (
	"fmt"

	"tilelevel/internal/config"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// SetupWindow opens a window with a compatibility context. The level is
// drawn with the fixed-function pipeline, so a core profile will not do.
func SetupWindow(cfg config.WindowConfig) (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return nil, err
	}
	window.MakeContextCurrent()

	// Initialize OpenGL bindings
	if err := gl.Init(); err != nil {
		window.Destroy()
		return nil, fmt.Errorf("init gl: %w", err)
	}

	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		// Our own FPS limiter takes over
		glfw.SwapInterval(0)
	}

	return window, nil
}
