package graphics

import (
	"tilelevel/internal/lighting"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// GLDevice drives the OpenGL 2.1 fixed-function pipeline.
type GLDevice struct{}

// NewGLDevice returns a device bound to the current GL context.
// gl.Init must have been called on this thread.
func NewGLDevice() *GLDevice {
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.TEXTURE_2D)
	gl.Enable(gl.NORMALIZE)
	gl.Enable(gl.COLOR_MATERIAL)
	gl.ColorMaterial(gl.FRONT_AND_BACK, gl.AMBIENT_AND_DIFFUSE)
	gl.ShadeModel(gl.SMOOTH)
	gl.Enable(gl.LIGHTING)
	return &GLDevice{}
}

func glLight(id LightID) uint32 {
	if id == LightSun {
		return gl.LIGHT0
	}
	return gl.LIGHT1
}

func (d *GLDevice) Clear(color mgl32.Vec4) {
	gl.ClearColor(color[0], color[1], color[2], color[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (d *GLDevice) SetMatrices(proj, view mgl32.Mat4) {
	gl.MatrixMode(gl.PROJECTION)
	gl.LoadMatrixf(&proj[0])
	gl.MatrixMode(gl.MODELVIEW)
	gl.LoadMatrixf(&view[0])
}

func (d *GLDevice) SetLighting(enabled bool) {
	if enabled {
		gl.Enable(gl.LIGHTING)
	} else {
		gl.Disable(gl.LIGHTING)
	}
}

func (d *GLDevice) SetDepthWrite(enabled bool) {
	gl.DepthMask(enabled)
}

func (d *GLDevice) EnableLight(id LightID) { gl.Enable(glLight(id)) }
func (d *GLDevice) DisableLight(id LightID) { gl.Disable(glLight(id)) }

// SetLight uploads position, diffuse and ambient. Position is transformed by
// the current modelview matrix, so call after SetMatrices.
func (d *GLDevice) SetLight(id LightID, l lighting.Light) {
	slot := glLight(id)
	gl.Lightfv(slot, gl.POSITION, &l.Position[0])
	gl.Lightfv(slot, gl.DIFFUSE, &l.Diffuse[0])
	gl.Lightfv(slot, gl.AMBIENT, &l.Ambient[0])
}

func (d *GLDevice) SetAmbient(c mgl32.Vec4) {
	gl.LightModelfv(gl.LIGHT_MODEL_AMBIENT, &c[0])
}

func (d *GLDevice) UseProgram(program uint32) { gl.UseProgram(program) }
func (d *GLDevice) Uniform1f(loc int32, v float32) { gl.Uniform1f(loc, v) }
func (d *GLDevice) Uniform2f(loc int32, x, y float32) { gl.Uniform2f(loc, x, y) }
func (d *GLDevice) Uniform1i(loc int32, v int32) { gl.Uniform1i(loc, v) }

// BindTexture binds tex on texture unit 0, the only unit the level uses.
func (d *GLDevice) BindTexture(tex Texture) {
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, uint32(tex))
}

func (d *GLDevice) SetColor(c mgl32.Vec3) {
	gl.Color3f(c[0], c[1], c[2])
}

func (d *GLDevice) DrawQuad(q *Quad) {
	gl.Begin(gl.QUADS)
	gl.Normal3f(q.Normal[0], q.Normal[1], q.Normal[2])
	for i := range q.V {
		v := &q.V[i]
		gl.TexCoord2f(v.UV[0], v.UV[1])
		gl.Vertex3f(v.Pos[0], v.Pos[1], v.Pos[2])
	}
	gl.End()
}
