package level

// Cell is the decoded meaning of a single grid character.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellOutdoorFloor
	CellOutdoorWall
	CellIndoorWall
	CellIndoorFloor
	CellLava
	CellBlood
)

// Source characters for each cell kind
const (
	CodeOutdoorFloor byte = '0'
	CodeOutdoorWall  byte = '1'
	CodeIndoorWall   byte = '2'
	CodeIndoorFloor  byte = '3'
	CodeLava         byte = 'L'
	CodeBlood        byte = 'B'
)

// ParseCell maps a grid character to its cell kind. Unknown characters map to CellEmpty.
func ParseCell(code byte) Cell {
	switch code {
	case CodeOutdoorFloor:
		return CellOutdoorFloor
	case CodeOutdoorWall:
		return CellOutdoorWall
	case CodeIndoorWall:
		return CellIndoorWall
	case CodeIndoorFloor:
		return CellIndoorFloor
	case CodeLava:
		return CellLava
	case CodeBlood:
		return CellBlood
	default:
		return CellEmpty
	}
}

// IsOutsideFacing reports whether a wall face looking at this cell is lit by the sun.
func (c Cell) IsOutsideFacing() bool {
	return c == CellOutdoorFloor || c == CellLava || c == CellBlood
}

// IsWall reports whether the cell is drawn as a wall cube
func (c Cell) IsWall() bool {
	return c == CellOutdoorWall || c == CellIndoorWall
}

func (c Cell) String() string {
	switch c {
	case CellOutdoorFloor:
		return "outdoor-floor"
	case CellOutdoorWall:
		return "outdoor-wall"
	case CellIndoorWall:
		return "indoor-wall"
	case CellIndoorFloor:
		return "indoor-floor"
	case CellLava:
		return "lava"
	case CellBlood:
		return "blood"
	default:
		return "empty"
	}
}
