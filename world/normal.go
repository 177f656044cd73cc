package world

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Normal identifies one of the six axis-aligned face directions. The
// numeric order is part of the packed block-face format, so it must not
// change.
type Normal uint8

const (
	NormalPosX Normal = iota
	NormalNegX
	NormalPosY
	NormalNegY
	NormalPosZ
	NormalNegZ
)

// Normals lists all six face directions in packing order.
var Normals = [6]Normal{
	NormalPosX, NormalNegX,
	NormalPosY, NormalNegY,
	NormalPosZ, NormalNegZ,
}

// UnitDirection returns the integer unit vector pointing out of the face.
func (n Normal) UnitDirection() [3]int {
	switch n {
	case NormalPosX:
		return [3]int{1, 0, 0}
	case NormalNegX:
		return [3]int{-1, 0, 0}
	case NormalPosY:
		return [3]int{0, 1, 0}
	case NormalNegY:
		return [3]int{0, -1, 0}
	case NormalPosZ:
		return [3]int{0, 0, 1}
	default:
		return [3]int{0, 0, -1}
	}
}

// Vec returns the face direction as a float vector.
func (n Normal) Vec() mgl32.Vec3 {
	d := n.UnitDirection()
	return mgl32.Vec3{float32(d[0]), float32(d[1]), float32(d[2])}
}

// PerpendicularAxes returns the two in-plane axes used to walk the
// occluder neighborhood when computing corner occlusion.
func (n Normal) PerpendicularAxes() (Normal, Normal) {
	switch n {
	case NormalPosX:
		return NormalNegZ, NormalNegY
	case NormalPosY:
		return NormalNegZ, NormalPosX
	case NormalPosZ:
		return NormalPosX, NormalNegY
	case NormalNegX:
		return NormalPosZ, NormalNegY
	case NormalNegY:
		return NormalNegZ, NormalNegX
	default:
		return NormalNegX, NormalNegY
	}
}

// Orientation returns the rotation that carries the canonical +Z-facing
// unit quad onto this face direction.
func (n Normal) Orientation() mgl32.Mat4 {
	const halfPi = float32(math.Pi / 2)
	switch n {
	case NormalPosZ:
		return mgl32.Ident4()
	case NormalNegZ:
		return mgl32.HomogRotate3DY(float32(math.Pi))
	case NormalPosX:
		return mgl32.HomogRotate3DY(halfPi)
	case NormalNegX:
		return mgl32.HomogRotate3DY(-halfPi)
	case NormalPosY:
		return mgl32.HomogRotate3DX(-halfPi)
	default:
		return mgl32.HomogRotate3DX(halfPi)
	}
}

func (n Normal) String() string {
	switch n {
	case NormalPosX:
		return "+x"
	case NormalNegX:
		return "-x"
	case NormalPosY:
		return "+y"
	case NormalNegY:
		return "-y"
	case NormalPosZ:
		return "+z"
	default:
		return "-z"
	}
}
