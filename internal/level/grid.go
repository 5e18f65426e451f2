package level

// Grid is a read-only level layout: rows of single-byte cell codes.
// Rows may have different lengths; anything outside a row reads as outdoor floor.
type Grid struct {
	rows  [][]byte
	width int
}

// NewGrid builds a grid from row strings.
func NewGrid(rows []string) *Grid {
	g := &Grid{rows: make([][]byte, len(rows))}
	for i, r := range rows {
		g.rows[i] = []byte(r)
		if len(r) > g.width {
			g.width = len(r)
		}
	}
	return g
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return len(g.rows)
}

// Width returns the length of the longest row.
func (g *Grid) Width() int {
	return g.width
}

// RowLen returns the length of a row, 0 when the row does not exist.
func (g *Grid) RowLen(row int) int {
	if row < 0 || row >= len(g.rows) {
		return 0
	}
	return len(g.rows[row])
}

// CellAt returns the raw code at (row, col). Out-of-range reads return the
// outdoor floor code, so the level border always counts as outside.
func (g *Grid) CellAt(row, col int) byte {
	if row < 0 || row >= len(g.rows) {
		return CodeOutdoorFloor
	}
	r := g.rows[row]
	if col < 0 || col >= len(r) {
		return CodeOutdoorFloor
	}
	return r[col]
}

// At returns the decoded cell at (row, col).
func (g *Grid) At(row, col int) Cell {
	return ParseCell(g.CellAt(row, col))
}

// Neighbor returns the cell a wall face at (row, col) is looking at.
func (g *Grid) Neighbor(row, col int, f Face) Cell {
	dr, dc := f.Offset()
	return g.At(row+dr, col+dc)
}

// Count returns how many cells of each kind the grid holds.
func (g *Grid) Count() map[Cell]int {
	out := make(map[Cell]int)
	for _, r := range g.rows {
		for _, code := range r {
			out[ParseCell(code)]++
		}
	}
	return out
}
