package lighting

import "github.com/go-gl/mathgl/mgl32"

// Fixed light heights, in world units
const (
	CeilingHeight = 4.0
	lampDrop      = 0.05
	lampBoost     = 1.2
)

// Global ambient colors for the two regimes
var (
	AmbientOutdoor = mgl32.Vec4{0.45, 0.30, 0.25, 1.0}
	AmbientIndoor  = mgl32.Vec4{0.12, 0.12, 0.18, 1.0}
)

// Sun defaults: a low warm directional light (w = 0).
var (
	SunDirection = mgl32.Vec4{-0.4, 1.0, 0.3, 0.0}
	SunDiffuse   = mgl32.Vec4{1.0, 0.78, 0.62, 1.0}
	SunAmbient   = mgl32.Vec4{0.0, 0.0, 0.0, 1.0}
)

// Light describes the parameters pushed to a fixed-function light slot.
type Light struct {
	Position mgl32.Vec4
	Diffuse  mgl32.Vec4
	Ambient  mgl32.Vec4
}

// Sun returns the sun light parameters.
func Sun() Light {
	return Light{Position: SunDirection, Diffuse: SunDiffuse, Ambient: SunAmbient}
}

// LampIntensity returns the ceiling lamp intensity at time t.
func LampIntensity(t float64) float32 {
	return lampBoost * Flicker(t)
}

// Lamp returns the ceiling lamp above world position (x, z) at the given intensity.
func Lamp(x, z, intensity float32) Light {
	return Light{
		Position: mgl32.Vec4{x, CeilingHeight - lampDrop, z, 1.0},
		Diffuse:  mgl32.Vec4{1.20 * intensity, 1.22 * intensity, 1.28 * intensity, 1.0},
		Ambient:  mgl32.Vec4{1.10 * intensity, 1.10 * intensity, 1.12 * intensity, 1.0},
	}
}
