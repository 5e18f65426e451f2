package level

import (
	"strings"
	"testing"
)

func TestCellAtOutOfRange(t *testing.T) {
	g := NewGrid([]string{"123", "2", ""})

	cases := []struct {
		row, col int
	}{
		{-1, 0},
		{g.Height(), 0},
		{0, -1},
		{0, g.RowLen(0)},
		{1, g.RowLen(1)},
		{2, 0},
		{100, 100},
	}
	for _, c := range cases {
		if got := g.CellAt(c.row, c.col); got != CodeOutdoorFloor {
			t.Errorf("CellAt(%d,%d) = %q, want '0'", c.row, c.col, got)
		}
	}

	if got := g.CellAt(0, 2); got != '3' {
		t.Errorf("CellAt(0,2) = %q, want '3'", got)
	}
}

func TestGridDimensions(t *testing.T) {
	g := NewGrid([]string{"12", "12345", "1"})
	if g.Height() != 3 {
		t.Errorf("Height = %d, want 3", g.Height())
	}
	if g.Width() != 5 {
		t.Errorf("Width = %d, want 5", g.Width())
	}
	if g.RowLen(-1) != 0 || g.RowLen(3) != 0 {
		t.Errorf("RowLen out of range should be 0")
	}
}

func TestParseCell(t *testing.T) {
	want := map[byte]Cell{
		'0': CellOutdoorFloor,
		'1': CellOutdoorWall,
		'2': CellIndoorWall,
		'3': CellIndoorFloor,
		'L': CellLava,
		'B': CellBlood,
		'X': CellEmpty,
		' ': CellEmpty,
		'l': CellEmpty,
	}
	for code, c := range want {
		if got := ParseCell(code); got != c {
			t.Errorf("ParseCell(%q) = %v, want %v", code, got, c)
		}
	}
}

func TestOutsideFacing(t *testing.T) {
	outside := map[Cell]bool{
		CellOutdoorFloor: true,
		CellLava:         true,
		CellBlood:        true,
		CellOutdoorWall:  false,
		CellIndoorWall:   false,
		CellIndoorFloor:  false,
		CellEmpty:        false,
	}
	for c, want := range outside {
		if got := c.IsOutsideFacing(); got != want {
			t.Errorf("%v.IsOutsideFacing() = %v, want %v", c, got, want)
		}
	}
}

func TestIsWall(t *testing.T) {
	for _, c := range []Cell{CellEmpty, CellOutdoorFloor, CellOutdoorWall, CellIndoorWall, CellIndoorFloor, CellLava, CellBlood} {
		want := c == CellOutdoorWall || c == CellIndoorWall
		if got := c.IsWall(); got != want {
			t.Errorf("%v.IsWall() = %v, want %v", c, got, want)
		}
	}
}

func TestNeighborPerFace(t *testing.T) {
	g := NewGrid([]string{"03", "21"})

	want := map[Face]Cell{
		FaceZPos: CellOutdoorFloor, // row 2 does not exist
		FaceZNeg: CellOutdoorFloor, // (0,0)
		FaceXPos: CellOutdoorWall,  // (1,1)
		FaceXNeg: CellOutdoorFloor, // col -1
	}
	for _, f := range Faces {
		if got := g.Neighbor(1, 0, f); got != want[f] {
			t.Errorf("Neighbor(1,0,%v) = %v, want %v", f, got, want[f])
		}
	}
}

func TestFaceOffsetsMatchNormals(t *testing.T) {
	for _, f := range Faces {
		dr, dc := f.Offset()
		n := f.Normal()
		if float32(dc) != n.X() || float32(dr) != n.Z() || n.Y() != 0 {
			t.Errorf("face %v: offset (%d,%d) disagrees with normal %v", f, dr, dc, n)
		}
	}
}

func TestParse(t *testing.T) {
	g, err := Parse(strings.NewReader("0123\r\n\r\nLB\n\n\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if g.Height() != 3 {
		t.Fatalf("Height = %d, want 3", g.Height())
	}
	if g.RowLen(0) != 4 || g.RowLen(1) != 0 || g.RowLen(2) != 2 {
		t.Errorf("unexpected row lengths %d %d %d", g.RowLen(0), g.RowLen(1), g.RowLen(2))
	}
	if g.At(2, 0) != CellLava || g.At(2, 1) != CellBlood {
		t.Errorf("row 2 not parsed as lava/blood")
	}
}

func TestParseEmpty(t *testing.T) {
	if _, err := Parse(strings.NewReader("\n\n")); err == nil {
		t.Errorf("expected error for empty level")
	}
}

func TestCount(t *testing.T) {
	g := NewGrid([]string{"0022", "3LBX"})
	c := g.Count()
	if c[CellOutdoorFloor] != 2 || c[CellIndoorWall] != 2 || c[CellEmpty] != 1 || c[CellLava] != 1 {
		t.Errorf("unexpected counts: %v", c)
	}
}
