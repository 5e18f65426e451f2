package graphics

import (
	"tilelevel/internal/lighting"

	"github.com/go-gl/mathgl/mgl32"
)

// Texture is an opaque texture handle. Zero means no texture.
type Texture uint32

// LightID selects one of the fixed-function light slots.
type LightID uint8

const (
	LightSun  LightID = iota // GL_LIGHT0
	LightLamp                // GL_LIGHT1
)

func (l LightID) String() string {
	if l == LightSun {
		return "sun"
	}
	return "lamp"
}

// Vertex is a position with its texture coordinate.
type Vertex struct {
	Pos mgl32.Vec3
	UV  mgl32.Vec2
}

// Quad is a single flat four-vertex primitive with one normal.
type Quad struct {
	Normal mgl32.Vec3
	V      [4]Vertex
}

// Device is the immediate-mode pipeline the level is drawn through.
// Implementations own process-wide state and must be driven from the render thread.
type Device interface {
	// Frame setup
	Clear(color mgl32.Vec4)
	SetMatrices(proj, view mgl32.Mat4)
	SetLighting(enabled bool)
	SetDepthWrite(enabled bool)

	// Light state
	EnableLight(id LightID)
	DisableLight(id LightID)
	SetLight(id LightID, l lighting.Light)
	SetAmbient(c mgl32.Vec4)

	// Draw state
	UseProgram(program uint32)
	Uniform1f(loc int32, v float32)
	Uniform2f(loc int32, x, y float32)
	Uniform1i(loc int32, v int32)
	BindTexture(tex Texture)
	SetColor(c mgl32.Vec3)
	DrawQuad(q *Quad)
}
