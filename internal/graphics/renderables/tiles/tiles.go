package tiles

import (
	"fmt"

	"tilelevel/internal/assets"
	"tilelevel/internal/graphics"
	"tilelevel/internal/graphics/renderer"
	"tilelevel/internal/level"
	"tilelevel/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
)

var white = mgl32.Vec3{1, 1, 1}

// Level draws a tile grid with per-tile textures and lighting.
type Level struct {
	grid    *level.Grid
	metrics level.Metrics
	assets  *assets.Bundle

	lava  Surface
	blood Surface
}

// NewLevel creates the level renderable for grid using textures and programs from b.
// Both are checked by Init.
func NewLevel(grid *level.Grid, b *assets.Bundle) *Level {
	return &Level{grid: grid, assets: b}
}

func (l *Level) Init() error {
	if l.grid == nil || l.assets == nil {
		return fmt.Errorf("level renderable needs a grid and an asset bundle")
	}
	l.metrics = level.NewMetrics(l.grid, TileSize)
	l.lava = LavaSurface(l.assets.LavaFX, l.assets.Lava)
	l.blood = BloodSurface(l.assets.BloodFX, l.assets.Blood)
	return nil
}

func (l *Level) Render(ctx renderer.RenderContext) {
	defer profiling.Track("level.Draw")()
	l.Draw(ctx.Graphics)
}

func (l *Level) Dispose() {}

func (l *Level) SetViewport(width, height int) {}

// Draw emits every populated cell of the grid. The context must be in the
// outdoor regime on entry and is left in it on return.
func (l *Level) Draw(gc *graphics.Context) {
	for row := 0; row < l.grid.Height(); row++ {
		for col := 0; col < l.grid.RowLen(row); col++ {
			l.drawCell(gc, row, col)
		}
	}
}

func (l *Level) drawCell(gc *graphics.Context, row, col int) {
	x, z := l.metrics.TileCenter(col, row)
	dev := gc.Device()

	switch l.grid.At(row, col) {
	case level.CellOutdoorFloor:
		l.drawFloor(dev, x, z, l.assets.Floor, false)

	case level.CellIndoorFloor:
		gc.Indoor(x, z, func() {
			l.drawFloor(dev, x, z, l.assets.IndoorFloor, true)
		})

	case level.CellOutdoorWall:
		for _, f := range level.Faces {
			l.drawWallFace(dev, x, z, l.assets.Wall, f)
		}

	case level.CellIndoorWall:
		for _, f := range level.Faces {
			if l.grid.Neighbor(row, col, f).IsOutsideFacing() {
				gc.UseOutdoor()
				l.drawWallFace(dev, x, z, l.assets.IndoorWall, f)
				continue
			}
			gc.Indoor(x, z, func() {
				l.drawWallFace(dev, x, z, l.assets.IndoorWall, f)
			})
		}

	case level.CellLava:
		l.lava.Draw(dev, gc.Time(), x, z)

	case level.CellBlood:
		l.blood.Draw(dev, gc.Time(), x, z)

	case level.CellEmpty:
	}
}

func (l *Level) drawFloor(dev graphics.Device, x, z float32, tex graphics.Texture, ceiling bool) {
	dev.SetColor(white)
	dev.BindTexture(tex)
	q := FloorQuad(x, z)
	dev.DrawQuad(&q)

	if ceiling {
		dev.BindTexture(l.assets.Ceiling)
		q = CeilingQuad(x, z)
		dev.DrawQuad(&q)
	}
}

func (l *Level) drawWallFace(dev graphics.Device, x, z float32, tex graphics.Texture, f level.Face) {
	dev.UseProgram(0)
	dev.SetColor(white)
	dev.BindTexture(tex)
	q := WallQuad(x, z, f)
	dev.DrawQuad(&q)
}
