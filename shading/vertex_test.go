package shading

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestVertexTransform(t *testing.T) {
	g := &Globals{WorldToClip: mgl32.Translate3D(0, 0, -10)}
	model := mgl32.Translate3D(1, 2, 3)
	in := InstanceFromMatrix(model, 0)
	v := Vertex{Position: mgl32.Vec3{0.5, -0.5, 0.5}, UV: mgl32.Vec2{1, 0}}

	out := NewProgram(VariantLit).VertexMain(g, v, in)

	assert.Equal(t, mgl32.Vec3{1.5, 1.5, 3.5}, out.WorldPosition)
	assert.Equal(t, mgl32.Vec4{1.5, 1.5, -6.5, 1}, out.ClipPosition)
	assert.Equal(t, v.UV, out.UV)
}

func TestVertexNormalNoInverseTranspose(t *testing.T) {
	// The normal goes through the raw 3x3 submatrix. Under non-uniform
	// scale it comes out distorted; that behavior is part of the
	// contract and must not be corrected.
	g := &Globals{WorldToClip: mgl32.Ident4()}
	in := InstanceFromMatrix(mgl32.Scale3D(2, 1, 1), 0)
	v := Vertex{Normal: mgl32.Vec3{1, 0, 0}}

	out := NewProgram(VariantLit).VertexMain(g, v, in)
	assert.Equal(t, mgl32.Vec3{2, 0, 0}, out.Normal)
}

func TestVertexNormalNotRenormalized(t *testing.T) {
	g := &Globals{WorldToClip: mgl32.Ident4()}
	in := InstanceFromMatrix(mgl32.Scale3D(3, 3, 3), 0)
	v := Vertex{Normal: mgl32.Vec3{0, 1, 0}}

	out := NewProgram(VariantLit).VertexMain(g, v, in)
	assert.InDelta(t, 3, out.Normal.Len(), 1e-6)
}

func TestVertexMaterialIndexPerLayout(t *testing.T) {
	g := &Globals{WorldToClip: mgl32.Ident4()}
	in := InstanceFromMatrix(mgl32.Ident4(), PackInstanceData([4]uint8{1, 1, 1, 1}, 7))

	packed := NewProgram(VariantScene).VertexMain(g, Vertex{}, in)
	assert.Equal(t, uint32(7), packed.MaterialIndex)

	// Simple layouts read the field raw.
	raw := NewProgram(VariantTriangle).VertexMain(g, Vertex{}, Instance{
		Model0: mgl32.Vec4{1, 0, 0, 0},
		Model1: mgl32.Vec4{0, 1, 0, 0},
		Model2: mgl32.Vec4{0, 0, 1, 0},
		Model3: mgl32.Vec4{0, 0, 0, 1},
		Data:   7,
	})
	assert.Equal(t, uint32(7), raw.MaterialIndex)
}

func TestVertexOcclusionInterpolation(t *testing.T) {
	g := &Globals{WorldToClip: mgl32.Ident4()}
	ao := [4]uint8{0, 7, 0, 7}
	in := InstanceFromMatrix(mgl32.Ident4(), PackInstanceData(ao, 0))
	p := NewProgram(VariantShadowArray)

	corner := p.VertexMain(g, Vertex{UV: mgl32.Vec2{0, 0}}, in)
	assert.InDelta(t, float64(AmbientOcclusionFactor(0)), float64(corner.Occlusion), 1e-7)

	far := p.VertexMain(g, Vertex{UV: mgl32.Vec2{1, 1}}, in)
	assert.InDelta(t, float64(AmbientOcclusionFactor(7)), float64(far.Occlusion), 1e-7)
}

func TestVertexUnpackedVariantsSkipOcclusion(t *testing.T) {
	g := &Globals{WorldToClip: mgl32.Ident4()}
	out := NewProgram(VariantLit).VertexMain(g, Vertex{UV: mgl32.Vec2{0.5, 0.5}}, InstanceFromMatrix(mgl32.Ident4(), 0xFFF))
	assert.Equal(t, float32(1), out.Occlusion)
	assert.Equal(t, uint32(0xFFF), out.MaterialIndex)
}

func TestVertexHueCycle(t *testing.T) {
	g := &Globals{WorldToClip: mgl32.Ident4(), TimeSeconds: 2}
	v := Vertex{Color: mgl32.Vec3{0.8, 0.2, 0.1}}
	in := InstanceFromMatrix(mgl32.Ident4(), 0)

	cycled := NewProgram(VariantTriangle).VertexMain(g, v, in)
	assert.Equal(t, CycleHue(v.Color, 2), cycled.Color)

	still := NewProgram(VariantLit).VertexMain(g, v, in)
	assert.Equal(t, v.Color, still.Color)
}
