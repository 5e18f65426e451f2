package renderer

import (
	"tilelevel/internal/graphics"

	"github.com/go-gl/mathgl/mgl32"
)

// RenderContext provides shared context for all renderables
type RenderContext struct {
	Graphics *graphics.Context
	Camera   *graphics.Camera
	Time     float64
	DT       float64
	View     mgl32.Mat4
	Proj     mgl32.Mat4
}

// Renderable interface defines the lifecycle for renderable features
type Renderable interface {
	Init() error
	Render(ctx RenderContext)
	Dispose()
	SetViewport(width, height int)
}
