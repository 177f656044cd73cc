package shading

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Vertex is one mesh vertex in local space. Color is linear RGB in
// [0, 1]. The triangle variant ignores Normal.
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	Color    mgl32.Vec3
	UV       mgl32.Vec2
}

// VertexOutput is the interpolated fragment input. MaterialIndex is flat
// (taken from the provoking vertex, never interpolated). Normal is
// interpolated without renormalization, so it is generally not unit
// length by the time the fragment stage sees it.
type VertexOutput struct {
	ClipPosition  mgl32.Vec4
	MaterialIndex uint32
	Color         mgl32.Vec3
	Normal        mgl32.Vec3
	UV            mgl32.Vec2
	WorldPosition mgl32.Vec3
	Occlusion     float32
}

// VertexMain transforms one vertex of one instance. World position is
// local-to-world applied to the position; the normal goes through the
// upper-left 3x3 of the model matrix with no inverse-transpose
// correction, so non-uniform instance scale distorts normals. That is an
// accepted limitation of the pipeline, not something to fix here.
func (p Program) VertexMain(g *Globals, v Vertex, in Instance) VertexOutput {
	model := in.LocalToWorld()
	world := model.Mul4x1(v.Position.Vec4(1))

	out := VertexOutput{
		ClipPosition:  g.WorldToClip.Mul4x1(world),
		WorldPosition: world.Vec3(),
		UV:            v.UV,
		Color:         v.Color,
		Occlusion:     1,
	}
	if p.Lit {
		out.Normal = model.Mat3().Mul3x1(v.Normal)
	}
	if p.HueCycle {
		out.Color = CycleHue(v.Color, g.TimeSeconds)
	}
	if p.PackedAO {
		out.MaterialIndex = MaterialIndex(in.Data)
		out.Occlusion = OcclusionAt(in.Data, v.UV)
	} else {
		out.MaterialIndex = in.Data
	}
	return out
}
