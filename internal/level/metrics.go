package level

// Metrics converts grid coordinates to world space, centering the grid on the origin.
type Metrics struct {
	Tile    float32
	OffsetX float32
	OffsetZ float32
}

// NewMetrics builds metrics for g using the given tile size.
func NewMetrics(g *Grid, tile float32) Metrics {
	return Metrics{
		Tile:    tile,
		OffsetX: -float32(g.Width()) * tile * 0.5,
		OffsetZ: -float32(g.Height()) * tile * 0.5,
	}
}

// TileCenter returns the world-space center of the tile at (col, row).
func (m Metrics) TileCenter(col, row int) (x, z float32) {
	x = m.OffsetX + (float32(col)+0.5)*m.Tile
	z = m.OffsetZ + (float32(row)+0.5)*m.Tile
	return x, z
}

// Extent returns the half size of the level along X and Z.
func (m Metrics) Extent() (halfX, halfZ float32) {
	return -m.OffsetX, -m.OffsetZ
}
