package shading

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Instance carries the per-object vertex stream: the local-to-world matrix
// split into the four vec4 columns it arrives as, plus one packed u32.
//
// The packed field has two layouts depending on the program. Simple
// variants use it as a raw material index. AO variants pack four 3-bit
// ambient occlusion corner weights into bits 0-11 and the material index
// into the remaining high bits.
type Instance struct {
	Model0 mgl32.Vec4
	Model1 mgl32.Vec4
	Model2 mgl32.Vec4
	Model3 mgl32.Vec4
	Data   uint32
}

// InstanceFromMatrix splits a local-to-world matrix into instance columns.
func InstanceFromMatrix(m mgl32.Mat4, data uint32) Instance {
	return Instance{
		Model0: m.Col(0),
		Model1: m.Col(1),
		Model2: m.Col(2),
		Model3: m.Col(3),
		Data:   data,
	}
}

// LocalToWorld reassembles the model matrix from the instance columns.
func (in Instance) LocalToWorld() mgl32.Mat4 {
	return mgl32.Mat4FromCols(in.Model0, in.Model1, in.Model2, in.Model3)
}

const (
	aoCornerBits = 3
	aoCornerMask = (1 << aoCornerBits) - 1
	aoCorners    = 4

	// MaterialShift is the bit position of the material index in the
	// packed layout: four 3-bit corner weights occupy bits 0-11.
	MaterialShift = aoCornerBits * aoCorners
)

// PackInstanceData packs four ambient occlusion corner weights and a
// material index into the AO instance layout. Weights above 7 are clipped
// to the 3-bit range.
func PackInstanceData(ao [4]uint8, material uint32) uint32 {
	var data uint32
	for i, w := range ao {
		data |= uint32(w&aoCornerMask) << (aoCornerBits * i)
	}
	return data | material<<MaterialShift
}

// MaterialIndex extracts the material index from the AO packed layout.
func MaterialIndex(data uint32) uint32 {
	return data >> MaterialShift
}

// AOCornerWeight extracts one 3-bit corner weight (corner 0-3).
func AOCornerWeight(data uint32, corner int) uint32 {
	return (data >> (aoCornerBits * corner)) & aoCornerMask
}

// AmbientOcclusionFactor maps an occlusion weight to a light factor.
// Weight 0 is unoccluded (factor 1); each step halves the light roughly
// by e^-0.5.
func AmbientOcclusionFactor(weight uint32) float32 {
	return float32(math.Exp(-float64(weight) * 0.5))
}

// Bilerp interpolates between four corner values. c00 sits at uv (0,0),
// c10 at (1,0), c01 at (0,1) and c11 at (1,1).
func Bilerp(c00, c01, c10, c11, u, v float32) float32 {
	bottom := mix(c00, c10, u)
	top := mix(c01, c11, u)
	return mix(bottom, top, v)
}

// OcclusionAt evaluates the smooth per-fragment occlusion scalar: each
// packed corner weight is decoded and the four factors are bilinearly
// interpolated with the vertex's own quad UV. This trades accuracy for a
// coarse per-corner signal with zero extra texture fetches.
func OcclusionAt(data uint32, uv mgl32.Vec2) float32 {
	a0 := AmbientOcclusionFactor(AOCornerWeight(data, 0))
	a1 := AmbientOcclusionFactor(AOCornerWeight(data, 1))
	a2 := AmbientOcclusionFactor(AOCornerWeight(data, 2))
	a3 := AmbientOcclusionFactor(AOCornerWeight(data, 3))
	return Bilerp(a0, a2, a1, a3, uv.X(), uv.Y())
}
