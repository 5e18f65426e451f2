package tiles

import (
	"testing"

	"tilelevel/internal/assets"
	"tilelevel/internal/graphics"
	"tilelevel/internal/level"
	"tilelevel/internal/lighting"

	"github.com/go-gl/mathgl/mgl32"
)

// drawLevel renders rows into a fresh recorder, starting from the outdoor baseline.
func drawLevel(t *testing.T, rows ...string) (*graphics.Recorder, *graphics.Context, *assets.Bundle) {
	t.Helper()
	rec := graphics.NewRecorder()
	gc := graphics.NewContext(rec)
	gc.SetTime(0.3)
	gc.UseOutdoor()
	rec.Reset()

	b := assets.Placeholder()
	l := NewLevel(level.NewGrid(rows), b)
	if err := l.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	l.Draw(gc)
	return rec, gc, b
}

func drawsWithTexture(rec *graphics.Recorder, tex graphics.Texture) []graphics.Call {
	var out []graphics.Call
	for _, c := range rec.Draws() {
		if c.State.Texture == tex && c.State.Program == 0 {
			out = append(out, c)
		}
	}
	return out
}

func countLight(rec *graphics.Recorder, op graphics.Op, id graphics.LightID) int {
	n := 0
	for _, c := range rec.Calls {
		if c.Op == op && c.Light == id {
			n++
		}
	}
	return n
}

func TestIndoorWallAllOutside(t *testing.T) {
	rec, gc, b := drawLevel(t, "0L0", "020", "0B0")

	faces := drawsWithTexture(rec, b.IndoorWall)
	if len(faces) != 4 {
		t.Fatalf("got %d wall face draws, want 4", len(faces))
	}
	for i, c := range faces {
		if c.State.LampOn || !c.State.SunOn {
			t.Errorf("face %d drawn with lamp=%v sun=%v, want outdoor", i, c.State.LampOn, c.State.SunOn)
		}
		if c.State.Ambient != lighting.AmbientOutdoor {
			t.Errorf("face %d ambient = %v", i, c.State.Ambient)
		}
	}
	if n := countLight(rec, graphics.OpEnableLight, graphics.LightLamp); n != 0 {
		t.Errorf("lamp enabled %d times, want 0", n)
	}
	if enters, _ := gc.Scopes(); enters != 0 {
		t.Errorf("entered %d indoor scopes, want 0", enters)
	}
}

func TestIndoorWallAllInside(t *testing.T) {
	rec, gc, b := drawLevel(t, "111", "121", "111")

	faces := drawsWithTexture(rec, b.IndoorWall)
	if len(faces) != 4 {
		t.Fatalf("got %d indoor face draws, want 4", len(faces))
	}
	for i, c := range faces {
		if !c.State.LampOn || c.State.SunOn {
			t.Errorf("face %d drawn with lamp=%v sun=%v, want indoor", i, c.State.LampOn, c.State.SunOn)
		}
	}

	// Each face sits in its own enable/disable bracket.
	open := false
	inBracket := 0
	for _, c := range rec.Calls {
		switch {
		case c.Op == graphics.OpEnableLight && c.Light == graphics.LightLamp:
			if open {
				t.Fatalf("lamp enabled twice without disable")
			}
			open, inBracket = true, 0
		case c.Op == graphics.OpDisableLight && c.Light == graphics.LightLamp:
			if open && inBracket != 1 {
				t.Errorf("bracket held %d face draws, want 1", inBracket)
			}
			open = false
		case c.Op == graphics.OpDrawQuad && c.State.Texture == b.IndoorWall:
			if !open {
				t.Errorf("indoor face drawn outside a bracket")
			}
			inBracket++
		}
	}
	if n := countLight(rec, graphics.OpEnableLight, graphics.LightLamp); n != 4 {
		t.Errorf("lamp enabled %d times, want 4", n)
	}
	if enters, exits := gc.Scopes(); enters != 4 || exits != 4 {
		t.Errorf("scopes = (%d,%d), want (4,4)", enters, exits)
	}
}

func TestSmallGridFaceSplit(t *testing.T) {
	rec, _, b := drawLevel(t, "03", "21")

	draws := rec.Draws()
	// '0' floor, '3' floor+ceiling, '2' four faces, '1' four faces
	if len(draws) != 1+2+4+4 {
		t.Fatalf("got %d draws, want 11", len(draws))
	}

	if d := draws[0]; d.State.Texture != b.Floor || d.State.LampOn {
		t.Errorf("(0,0) should be an outdoor floor, got tex=%d lamp=%v", d.State.Texture, d.State.LampOn)
	}
	if d := draws[1]; d.State.Texture != b.IndoorFloor || !d.State.LampOn {
		t.Errorf("(0,1) floor should be indoor lit, got tex=%d lamp=%v", d.State.Texture, d.State.LampOn)
	}
	if d := draws[2]; d.State.Texture != b.Ceiling || !d.State.LampOn || d.Quad.Normal != (mgl32.Vec3{0, -1, 0}) {
		t.Errorf("(0,1) ceiling should be indoor lit and face down, got %+v", d)
	}

	// (1,0): z+ -> row 2 missing, z- -> '0', x+ -> '1', x- -> col -1 missing
	wantIndoor := []bool{false, false, true, false}
	for i, f := range level.Faces {
		d := draws[3+i]
		if d.State.Texture != b.IndoorWall {
			t.Errorf("face %v texture = %d, want indoor wall", f, d.State.Texture)
		}
		if d.State.LampOn != wantIndoor[i] {
			t.Errorf("face %v lamp = %v, want %v", f, d.State.LampOn, wantIndoor[i])
		}
		if d.Quad.Normal != f.Normal() {
			t.Errorf("face %v normal = %v", f, d.Quad.Normal)
		}
	}

	for i := 7; i < 11; i++ {
		if d := draws[i]; d.State.Texture != b.Wall || d.State.LampOn {
			t.Errorf("outdoor wall face %d: tex=%d lamp=%v", i-7, d.State.Texture, d.State.LampOn)
		}
	}
}

func TestUnknownCodeDrawsNothing(t *testing.T) {
	rec, _, _ := drawLevel(t, "X?", "  ")
	if len(rec.Calls) != 0 {
		t.Errorf("unknown codes issued %d calls", len(rec.Calls))
	}
}

func TestIndoorFloorLampAboveTile(t *testing.T) {
	rec, _, _ := drawLevel(t, "003")

	var lamp *lighting.Light
	for i := range rec.Calls {
		c := &rec.Calls[i]
		if c.Op == graphics.OpSetLight && c.Light == graphics.LightLamp {
			lamp = &c.State.Lamp
		}
	}
	if lamp == nil {
		t.Fatalf("lamp never configured")
	}
	// Grid is 3 wide: column 2 is centered at x=4, the single row at z=0.
	want := mgl32.Vec4{4, CeilingHeight - 0.05, 0, 1}
	if !lamp.Position.ApproxEqualThreshold(want, 1e-5) {
		t.Errorf("lamp position = %v, want %v", lamp.Position, want)
	}
}

func TestAnimatedSurfaces(t *testing.T) {
	rec, _, b := drawLevel(t, "LB")

	draws := rec.Draws()
	if len(draws) != 2 {
		t.Fatalf("got %d draws, want 2", len(draws))
	}
	if draws[0].State.Program != b.LavaFX.ID || draws[0].State.Texture != b.Lava {
		t.Errorf("lava drawn with program %d tex %d", draws[0].State.Program, draws[0].State.Texture)
	}
	if draws[1].State.Program != b.BloodFX.ID || draws[1].State.Texture != b.Blood {
		t.Errorf("blood drawn with program %d tex %d", draws[1].State.Program, draws[1].State.Texture)
	}
	if rec.State.Program != 0 {
		t.Errorf("program %d left selected", rec.State.Program)
	}

	// Lava writes time, strength, scroll, heat and sampler; blood skips heat.
	if n := rec.Count(graphics.OpUniform); n != 5+4 {
		t.Errorf("got %d uniform writes, want 9", n)
	}
	for _, c := range rec.Calls {
		if c.Op == graphics.OpUniform && c.Loc == b.LavaFX.Time && c.Value[0] != 0.3 {
			t.Errorf("time uniform = %v, want 0.3", c.Value[0])
		}
		if c.Op == graphics.OpEnableLight || c.Op == graphics.OpDisableLight || c.Op == graphics.OpSetAmbient {
			t.Errorf("animated surfaces must not touch lighting, got %v", c.Op)
		}
	}
}

func TestDrawRestoresOutdoorBaseline(t *testing.T) {
	rec, gc, _ := drawLevel(t, "3232", "2L2B", "1X03", "")

	if !gc.Balanced() {
		t.Errorf("indoor scopes unbalanced")
	}
	s := rec.State
	if !s.SunOn || s.LampOn || s.Ambient != lighting.AmbientOutdoor || s.Program != 0 {
		t.Errorf("state after draw = %+v, want outdoor baseline", s)
	}
}

func TestWallQuadFacesOutward(t *testing.T) {
	for _, f := range level.Faces {
		q := WallQuad(0, 0, f)
		e1 := q.V[1].Pos.Sub(q.V[0].Pos)
		e2 := q.V[3].Pos.Sub(q.V[0].Pos)
		n := e1.Cross(e2).Normalize()
		if !n.ApproxEqualThreshold(f.Normal(), 1e-5) {
			t.Errorf("face %v winding normal %v, want %v", f, n, f.Normal())
		}
	}
}

func TestInitRejectsMissingInputs(t *testing.T) {
	if err := NewLevel(level.NewGrid([]string{"0"}), nil).Init(); err == nil {
		t.Errorf("Init without a bundle should fail")
	}
	if err := NewLevel(nil, assets.Placeholder()).Init(); err == nil {
		t.Errorf("Init without a grid should fail")
	}
}

func BenchmarkDraw(b *testing.B) {
	rows := make([]string, 32)
	for i := range rows {
		rows[i] = "0123LB0123LB0123LB0123LB0123LB01"
	}
	rec := graphics.NewRecorder()
	gc := graphics.NewContext(rec)
	l := NewLevel(level.NewGrid(rows), assets.Placeholder())
	if err := l.Init(); err != nil {
		b.Fatal(err)
	}
	gc.UseOutdoor()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rec.Reset()
		l.Draw(gc)
	}
}
