package tiles

import (
	"tilelevel/internal/graphics"

	"github.com/go-gl/mathgl/mgl32"
)

// Surface is an animated floor drawn with its own shader program.
type Surface struct {
	Program  graphics.EffectProgram
	Texture  graphics.Texture
	Strength float32
	Flow     mgl32.Vec2
	Heat     float32
	HasHeat  bool
}

// LavaSurface returns the scrolling lava surface.
func LavaSurface(p graphics.EffectProgram, tex graphics.Texture) Surface {
	return Surface{
		Program:  p,
		Texture:  tex,
		Strength: 1.0,
		Flow:     mgl32.Vec2{0.1, 0.0},
		Heat:     0.6,
		HasHeat:  true,
	}
}

// BloodSurface returns the pulsing blood surface.
func BloodSurface(p graphics.EffectProgram, tex graphics.Texture) Surface {
	return Surface{
		Program:  p,
		Texture:  tex,
		Strength: 1.0,
		Flow:     mgl32.Vec2{2.0, 1.3},
	}
}

// Draw renders the surface on the tile centered at (x, z) and leaves the
// fixed-function pipeline selected. The current light regime is untouched.
func (s *Surface) Draw(dev graphics.Device, t float64, x, z float32) {
	p := &s.Program
	dev.UseProgram(p.ID)

	dev.Uniform1f(p.Time, float32(t))
	dev.Uniform1f(p.Strength, s.Strength)
	dev.Uniform2f(p.Flow, s.Flow[0], s.Flow[1])
	if s.HasHeat {
		dev.Uniform1f(p.Heat, s.Heat)
	}

	dev.BindTexture(s.Texture)
	dev.Uniform1i(p.Texture, 0)

	dev.SetColor(white)
	q := FloorQuad(x, z)
	dev.DrawQuad(&q)

	dev.UseProgram(0)
}
