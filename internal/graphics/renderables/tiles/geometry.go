package tiles

import (
	"tilelevel/internal/graphics"
	"tilelevel/internal/level"

	"github.com/go-gl/mathgl/mgl32"
)

// Grid geometry, in world units
const (
	TileSize      = 4.0
	WallHeight    = 4.0
	CeilingHeight = 4.0
	floorLift     = 0.001

	floorRepeat = 2.0
	wallRepeatX = 1.0
	wallRepeatY = 2.0
)

var (
	upNormal   = mgl32.Vec3{0, 1, 0}
	downNormal = mgl32.Vec3{0, -1, 0}
)

// FloorQuad returns the floor quad of the tile centered at (x, z), facing up.
func FloorQuad(x, z float32) graphics.Quad {
	h := float32(TileSize * 0.5)
	y := float32(floorLift)
	return graphics.Quad{
		Normal: upNormal,
		V: [4]graphics.Vertex{
			{Pos: mgl32.Vec3{x - h, y, z + h}, UV: mgl32.Vec2{0, 0}},
			{Pos: mgl32.Vec3{x + h, y, z + h}, UV: mgl32.Vec2{floorRepeat, 0}},
			{Pos: mgl32.Vec3{x + h, y, z - h}, UV: mgl32.Vec2{floorRepeat, floorRepeat}},
			{Pos: mgl32.Vec3{x - h, y, z - h}, UV: mgl32.Vec2{0, floorRepeat}},
		},
	}
}

// CeilingQuad returns the ceiling quad of the tile centered at (x, z), facing down.
func CeilingQuad(x, z float32) graphics.Quad {
	h := float32(TileSize * 0.5)
	y := float32(CeilingHeight)
	return graphics.Quad{
		Normal: downNormal,
		V: [4]graphics.Vertex{
			{Pos: mgl32.Vec3{x - h, y, z - h}, UV: mgl32.Vec2{0, 0}},
			{Pos: mgl32.Vec3{x + h, y, z - h}, UV: mgl32.Vec2{floorRepeat, 0}},
			{Pos: mgl32.Vec3{x + h, y, z + h}, UV: mgl32.Vec2{floorRepeat, floorRepeat}},
			{Pos: mgl32.Vec3{x - h, y, z + h}, UV: mgl32.Vec2{0, floorRepeat}},
		},
	}
}

// WallQuad returns one vertical face of the wall tile centered at (x, z).
// Vertices run counter-clockwise when seen from outside the face.
func WallQuad(x, z float32, f level.Face) graphics.Quad {
	h := float32(TileSize * 0.5)
	top := float32(WallHeight)

	// bottom-left and bottom-right corners seen from outside
	var a, b mgl32.Vec2
	switch f {
	case level.FaceZPos:
		a, b = mgl32.Vec2{x - h, z + h}, mgl32.Vec2{x + h, z + h}
	case level.FaceZNeg:
		a, b = mgl32.Vec2{x + h, z - h}, mgl32.Vec2{x - h, z - h}
	case level.FaceXPos:
		a, b = mgl32.Vec2{x + h, z + h}, mgl32.Vec2{x + h, z - h}
	case level.FaceXNeg:
		a, b = mgl32.Vec2{x - h, z - h}, mgl32.Vec2{x - h, z + h}
	}

	return graphics.Quad{
		Normal: f.Normal(),
		V: [4]graphics.Vertex{
			{Pos: mgl32.Vec3{a[0], 0, a[1]}, UV: mgl32.Vec2{0, 0}},
			{Pos: mgl32.Vec3{b[0], 0, b[1]}, UV: mgl32.Vec2{wallRepeatX, 0}},
			{Pos: mgl32.Vec3{b[0], top, b[1]}, UV: mgl32.Vec2{wallRepeatX, wallRepeatY}},
			{Pos: mgl32.Vec3{a[0], top, a[1]}, UV: mgl32.Vec2{0, wallRepeatY}},
		},
	}
}
