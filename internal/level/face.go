package level

import "github.com/go-gl/mathgl/mgl32"

// Face is one of the four vertical sides of a wall tile.
type Face uint8

const (
	FaceZPos Face = iota // front, neighbor at row+1
	FaceZNeg             // back, neighbor at row-1
	FaceXPos             // right, neighbor at col+1
	FaceXNeg             // left, neighbor at col-1
)

// Faces lists every wall face in draw order.
var Faces = [4]Face{FaceZPos, FaceZNeg, FaceXPos, FaceXNeg}

var faceOffsets = [4][2]int{
	FaceZPos: {1, 0},
	FaceZNeg: {-1, 0},
	FaceXPos: {0, 1},
	FaceXNeg: {0, -1},
}

var faceNormals = [4]mgl32.Vec3{
	FaceZPos: {0, 0, 1},
	FaceZNeg: {0, 0, -1},
	FaceXPos: {1, 0, 0},
	FaceXNeg: {-1, 0, 0},
}

// Offset returns the (row, col) delta of the neighbor this face looks at.
func (f Face) Offset() (dRow, dCol int) {
	o := faceOffsets[f]
	return o[0], o[1]
}

// Normal returns the outward normal of the face.
func (f Face) Normal() mgl32.Vec3 {
	return faceNormals[f]
}

func (f Face) String() string {
	switch f {
	case FaceZPos:
		return "z+"
	case FaceZNeg:
		return "z-"
	case FaceXPos:
		return "x+"
	case FaceXNeg:
		return "x-"
	}
	return "?"
}
