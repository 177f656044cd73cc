package shading

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func litGlobals() *Globals {
	return &Globals{
		AmbientLight:              mgl32.Vec3{0.1, 0.1, 0.1},
		DirectionalLight:          mgl32.Vec3{1, 1, 1},
		DirectionalLightDirection: mgl32.Vec3{0, 1, 0},
		ShadowMapProjection:       mgl32.Ident4(),
	}
}

func TestLitCompositionUnclamped(t *testing.T) {
	g := litGlobals()
	in := VertexOutput{
		Normal:    mgl32.Vec3{0, 1, 0},
		Color:     mgl32.Vec3{1, 1, 1},
		Occlusion: 1,
	}
	p := NewProgram(VariantLit)

	got := p.FragmentMain(g, in, nil, Sampler{}, nil)
	// Ambient 0.1 plus full sunlight 1.0: channels exceed 1 and must
	// stay unclamped.
	for i := 0; i < 3; i++ {
		assert.InDelta(t, 1.1, got[i], 1e-6)
		assert.Greater(t, got[i], float32(1))
	}
	assert.Equal(t, float32(1), got.W())
}

func TestLightBackfaceClampsToAmbient(t *testing.T) {
	g := litGlobals()
	light := Light(g, mgl32.Vec3{0, -1, 0}, 1)
	assert.Equal(t, g.AmbientLight, light)
}

func TestLightScalesWithSunlight(t *testing.T) {
	g := litGlobals()
	half := Light(g, mgl32.Vec3{0, 1, 0}, 0.5)
	for i := 0; i < 3; i++ {
		assert.InDelta(t, 0.6, half[i], 1e-6)
	}
}

func TestFragmentOcclusionScalesLight(t *testing.T) {
	g := litGlobals()
	in := VertexOutput{
		Normal:    mgl32.Vec3{0, 1, 0},
		Color:     mgl32.Vec3{1, 1, 1},
		Occlusion: 0.5,
	}
	got := NewProgram(VariantLit).FragmentMain(g, in, nil, Sampler{}, nil)
	for i := 0; i < 3; i++ {
		assert.InDelta(t, 0.55, got[i], 1e-6)
	}
}

func TestTriangleFragmentUnlit(t *testing.T) {
	g := &Globals{}
	tex := NewTextureArray(1, 1, 2)
	tex.SetTexel(0, 0, 0, mgl32.Vec4{1, 1, 1, 1})
	tex.SetTexel(0, 0, 1, mgl32.Vec4{0.5, 0.5, 0.5, 0.25})

	in := VertexOutput{
		Color:         mgl32.Vec3{1, 0.5, 0.25},
		MaterialIndex: 1,
		UV:            mgl32.Vec2{0.5, 0.5},
	}
	got := NewProgram(VariantTriangle).FragmentMain(g, in, tex, Sampler{}, nil)
	assert.InDelta(t, 0.5, got.X(), 1e-6)
	assert.InDelta(t, 0.25, got.Y(), 1e-6)
	assert.InDelta(t, 0.125, got.Z(), 1e-6)
	// Alpha is the texture sample's alpha passed through.
	assert.InDelta(t, 0.25, got.W(), 1e-6)
}

func TestSceneRedSentinel(t *testing.T) {
	g := litGlobals()
	// Caster covering the whole map: the fragment is fully shadowed.
	m := filledDepthMap(4, 4, 1, 1.0)
	in := VertexOutput{
		Normal:        mgl32.Vec3{0, 1, 0},
		Color:         mgl32.Vec3{1, 1, 1},
		Occlusion:     1,
		WorldPosition: mgl32.Vec3{0, 0, 0.5},
	}
	got := NewProgram(VariantScene).FragmentMain(g, in, nil, Sampler{}, m)
	assert.Equal(t, sentinelRed, got)
}

func TestDebugModeBlackOverride(t *testing.T) {
	g := litGlobals()
	g.NDCDisplayMode = RenderModeNDCX
	p := NewProgram(VariantScene)

	// Shadow-NDC y out of range: solid black regardless of x.
	in := VertexOutput{WorldPosition: mgl32.Vec3{0, 1.5, 0.5}}
	got := p.FragmentMain(g, in, nil, Sampler{}, nil)
	assert.Equal(t, mgl32.Vec4{0, 0, 0, 1}, got)

	// z out of range: black too.
	in.WorldPosition = mgl32.Vec3{0, 0, -0.5}
	got = p.FragmentMain(g, in, nil, Sampler{}, nil)
	assert.Equal(t, mgl32.Vec4{0, 0, 0, 1}, got)
}

func TestDebugModeGradient(t *testing.T) {
	g := litGlobals()
	g.NDCDisplayMode = RenderModeNDCX

	// x = 0 sits halfway across [-1, 1].
	got := DebugNDCColor(g, mgl32.Vec3{0, 0, 0.5})
	assert.InDelta(t, 0.5, got.X(), 1e-6)
	assert.InDelta(t, 0.5, got.Y(), 1e-6)
	assert.Equal(t, float32(0), got.Z())

	// x = -1 is pure red, x = +1 pure green.
	assert.Equal(t, mgl32.Vec4{1, 0, 0, 1}, DebugNDCColor(g, mgl32.Vec3{-1, 0, 0.5}))
	assert.Equal(t, mgl32.Vec4{0, 1, 0, 1}, DebugNDCColor(g, mgl32.Vec3{1, 0, 0.5}))
}

func TestDebugModeRunsBeforeLighting(t *testing.T) {
	g := litGlobals()
	g.NDCDisplayMode = RenderModeNDCZ
	// A fully-shadowed fragment would hit the red sentinel on the lit
	// path; in a debug mode it must render the overlay instead.
	m := filledDepthMap(4, 4, 1, 1.0)
	in := VertexOutput{
		Normal:        mgl32.Vec3{0, 1, 0},
		WorldPosition: mgl32.Vec3{0, 0, 0.5},
	}
	got := NewProgram(VariantScene).FragmentMain(g, in, nil, Sampler{}, m)
	assert.NotEqual(t, sentinelRed, got)
	assert.InDelta(t, 0.5, got.Y(), 1e-6)
}

func TestDebugModeUndefinedValueIsBlack(t *testing.T) {
	g := litGlobals()
	g.NDCDisplayMode = RenderMode(7)

	// In-range NDC on every axis: a defined mode would show a gradient,
	// an undefined one must not fall through to any of them.
	got := DebugNDCColor(g, mgl32.Vec3{0, 0, 0.5})
	assert.Equal(t, mgl32.Vec4{0, 0, 0, 1}, got)
}
