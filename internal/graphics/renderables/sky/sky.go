package sky

import (
	"math"

	"tilelevel/internal/graphics"
	"tilelevel/internal/graphics/renderer"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	Radius   = 120.0
	Segments = 16 // around the vertical axis
	Rings    = 8  // from the horizon to the zenith
)

// Sky draws a textured dome around the level.
type Sky struct {
	texture graphics.Texture
	quads   []graphics.Quad
}

// NewSky creates a dome renderable using tex.
func NewSky(tex graphics.Texture) *Sky {
	return &Sky{texture: tex}
}

func (s *Sky) Init() error {
	s.quads = BuildDome(Radius, Segments, Rings)
	return nil
}

// Render draws the dome unlit and without depth writes so the level always
// covers it, then restores both.
func (s *Sky) Render(ctx renderer.RenderContext) {
	dev := ctx.Graphics.Device()
	dev.SetLighting(false)
	dev.SetDepthWrite(false)
	dev.UseProgram(0)
	dev.SetColor(mgl32.Vec3{1, 1, 1})
	dev.BindTexture(s.texture)

	for i := range s.quads {
		dev.DrawQuad(&s.quads[i])
	}

	dev.SetDepthWrite(true)
	dev.SetLighting(true)
}

func (s *Sky) Dispose() {
	s.quads = nil
}

func (s *Sky) SetViewport(width, height int) {}

// BuildDome returns the quads of a hemisphere of the given radius, wound to
// face its center. U wraps once around, V runs from the horizon (0) to the zenith (1).
func BuildDome(radius float32, segments, rings int) []graphics.Quad {
	point := func(seg, ring int) graphics.Vertex {
		theta := 2 * math.Pi * float64(seg) / float64(segments)
		phi := 0.5 * math.Pi * float64(ring) / float64(rings)
		r := float64(radius) * math.Cos(phi)
		return graphics.Vertex{
			Pos: mgl32.Vec3{
				float32(r * math.Cos(theta)),
				radius * float32(math.Sin(phi)),
				float32(r * math.Sin(theta)),
			},
			UV: mgl32.Vec2{float32(seg) / float32(segments), float32(ring) / float32(rings)},
		}
	}

	quads := make([]graphics.Quad, 0, segments*rings)
	for ring := 0; ring < rings; ring++ {
		for seg := 0; seg < segments; seg++ {
			a := point(seg, ring)
			b := point(seg+1, ring)
			c := point(seg+1, ring+1)
			d := point(seg, ring+1)

			// Normal points at the dome center, through the middle of the quad
			mid := a.Pos.Add(b.Pos).Add(c.Pos).Add(d.Pos).Mul(0.25)
			n := mid.Mul(-1)
			if n.Len() > 0 {
				n = n.Normalize()
			}
			quads = append(quads, graphics.Quad{Normal: n, V: [4]graphics.Vertex{a, b, c, d}})
		}
	}
	return quads
}
