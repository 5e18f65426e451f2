package graphics

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Camera handles the view and projection matrices of the level viewer.
// It circles the level center at a fixed height.
type Camera struct {
	AspectRatio float32
	FOV         float32
	NearPlane   float32
	FarPlane    float32

	Target     mgl32.Vec3
	Radius     float32
	Height     float32
	OrbitSpeed float32 // radians per second
	orbitAngle float32
}

func NewCamera(width, height int) *Camera {
	return &Camera{
		AspectRatio: float32(width) / float32(height),
		FOV:         60.0,
		NearPlane:   0.1,
		FarPlane:    500.0,
		Target:      mgl32.Vec3{0, 1.5, 0},
		Radius:      20,
		Height:      14,
		OrbitSpeed:  0.15,
	}
}

// Frame fits the orbit to a level whose half extents are halfX and halfZ.
func (c *Camera) Frame(halfX, halfZ float32) {
	r := float32(math.Hypot(float64(halfX), float64(halfZ)))
	if r < 4 {
		r = 4
	}
	c.Radius = r * 1.4
	c.Height = r * 0.9
}

// Advance moves the camera along its orbit.
func (c *Camera) Advance(dt float64) {
	c.orbitAngle += c.OrbitSpeed * float32(dt)
	if c.orbitAngle > 2*math.Pi {
		c.orbitAngle -= 2 * math.Pi
	}
}

// Eye returns the camera position.
func (c *Camera) Eye() mgl32.Vec3 {
	s, co := math.Sincos(float64(c.orbitAngle))
	return mgl32.Vec3{
		c.Target.X() + c.Radius*float32(co),
		c.Height,
		c.Target.Z() + c.Radius*float32(s),
	}
}

func (c *Camera) GetProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), c.AspectRatio, c.NearPlane, c.FarPlane)
}

func (c *Camera) GetViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Eye(), c.Target, mgl32.Vec3{0, 1, 0})
}

// SetViewport updates the aspect ratio after a resize.
func (c *Camera) SetViewport(width, height int) {
	if height == 0 {
		return
	}
	c.AspectRatio = float32(width) / float32(height)
}
