package renderer

import (
	"fmt"
	"log"

	"tilelevel/internal/graphics"
	"tilelevel/internal/lighting"
	"tilelevel/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
)

// Renderer orchestrates rendering via renderable features
type Renderer struct {
	renderables []Renderable
	camera      *graphics.Camera
	gc          *graphics.Context

	ClearColor mgl32.Vec4
}

// NewRenderer creates a new renderer with the given renderables
func NewRenderer(gc *graphics.Context, camera *graphics.Camera, rs ...Renderable) (*Renderer, error) {
	renderer := &Renderer{
		renderables: rs,
		camera:      camera,
		gc:          gc,
		ClearColor:  mgl32.Vec4{0.53, 0.42, 0.38, 1.0},
	}

	// Initialize all renderables
	for i, r := range rs {
		if err := r.Init(); err != nil {
			// Dispose what was already initialized
			for j := i - 1; j >= 0; j-- {
				rs[j].Dispose()
			}
			return nil, fmt.Errorf("init renderable %d: %w", i, err)
		}
	}

	return renderer, nil
}

// Render draws one frame at simulation time t. The outdoor regime is the
// baseline every renderable starts from and must leave behind.
func (r *Renderer) Render(t, dt float64) {
	defer profiling.Track("renderer.Render")()

	dev := r.gc.Device()
	dev.Clear(r.ClearColor)

	view := r.camera.GetViewMatrix()
	projection := r.camera.GetProjectionMatrix()
	dev.SetMatrices(projection, view)

	// Light positions go through the modelview matrix, so upload after it
	r.gc.SetTime(t)
	r.gc.ResetScopes()
	r.gc.ConfigureSun(lighting.Sun())
	r.gc.UseOutdoor()

	ctx := RenderContext{
		Graphics: r.gc,
		Camera:   r.camera,
		Time:     t,
		DT:       dt,
		View:     view,
		Proj:     projection,
	}

	for _, renderable := range r.renderables {
		renderable.Render(ctx)
	}

	if !r.gc.Balanced() {
		enters, exits := r.gc.Scopes()
		log.Printf("renderer: unbalanced indoor lighting (enter=%d exit=%d)", enters, exits)
		r.gc.CloseScope()
	}
}

// Dispose cleans up all renderables in reverse order
func (r *Renderer) Dispose() {
	for i := len(r.renderables) - 1; i >= 0; i-- {
		r.renderables[i].Dispose()
	}
}

// GetCamera returns the camera instance
func (r *Renderer) GetCamera() *graphics.Camera {
	return r.camera
}

// UpdateViewport updates the camera and every renderable after a resize
func (r *Renderer) UpdateViewport(width, height int) {
	r.camera.SetViewport(width, height)
	for _, renderable := range r.renderables {
		renderable.SetViewport(width, height)
	}
}
