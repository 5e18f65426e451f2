package renderer

import (
	"errors"
	"testing"

	"tilelevel/internal/graphics"
)

type fakeRenderable struct {
	initErr  error
	inited   bool
	disposed bool
	frames   int

	// leak leaves an indoor scope open to trip the balance check
	leak bool
}

func (f *fakeRenderable) Init() error {
	f.inited = true
	return f.initErr
}

func (f *fakeRenderable) Render(ctx RenderContext) {
	f.frames++
	if f.leak {
		ctx.Graphics.EnterIndoor(0, 0)
	}
}

func (f *fakeRenderable) Dispose() { f.disposed = true }
func (f *fakeRenderable) SetViewport(width, height int) {}

func TestRenderStartsOutdoor(t *testing.T) {
	rec := graphics.NewRecorder()
	gc := graphics.NewContext(rec)
	fake := &fakeRenderable{}

	r, err := NewRenderer(gc, graphics.NewCamera(900, 600), fake)
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	r.Render(1.5, 0.016)

	if fake.frames != 1 {
		t.Fatalf("renderable drawn %d times, want 1", fake.frames)
	}
	if rec.Count(graphics.OpClear) != 1 {
		t.Errorf("expected one clear, got %d", rec.Count(graphics.OpClear))
	}
	st := rec.State
	if !st.SunOn || st.LampOn {
		t.Errorf("frame must leave the outdoor regime, got sun=%v lamp=%v", st.SunOn, st.LampOn)
	}
	if gc.Time() != 1.5 {
		t.Errorf("time = %v, want 1.5", gc.Time())
	}
}

func TestInitFailureDisposesEarlier(t *testing.T) {
	gc := graphics.NewContext(graphics.NewRecorder())
	first := &fakeRenderable{}
	broken := &fakeRenderable{initErr: errors.New("no texture")}
	last := &fakeRenderable{}

	if _, err := NewRenderer(gc, graphics.NewCamera(1, 1), first, broken, last); err == nil {
		t.Fatal("expected init error")
	}
	if !first.disposed {
		t.Errorf("earlier renderable not disposed")
	}
	if last.inited {
		t.Errorf("renderables after the failure should not be initialized")
	}
}

func TestUnbalancedFrameIsDetected(t *testing.T) {
	gc := graphics.NewContext(graphics.NewRecorder())
	r, err := NewRenderer(gc, graphics.NewCamera(1, 1), &fakeRenderable{leak: true})
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	r.Render(0, 0)
	if enters, exits := gc.Scopes(); enters != 1 || exits != 1 {
		t.Errorf("leaked scope should be closed by the renderer, enter=%d exit=%d", enters, exits)
	}
	if gc.Indoors() {
		t.Fatal("context still indoors after the frame")
	}

	// A second frame must not trip the outdoor guard.
	r.Render(0.1, 0.1)
}
