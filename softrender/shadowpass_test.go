package softrender

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxshade/voxshade/shading"
)

// The light looks down +Z: world X/Y pass through and depth grows toward
// the light, matching the reverse-Z convention.
func lightProjection() mgl32.Mat4 {
	return mgl32.Diag4(mgl32.Vec4{1, 1, 0.5, 1})
}

// casterInstance covers world [-0.5, 0.5]^2 at z = 0.8.
func casterInstance() shading.Instance {
	model := mgl32.Translate3D(-0.5, -0.5, 0.8)
	return shading.InstanceFromMatrix(model, 0)
}

func TestRenderDepthWritesCasterFootprint(t *testing.T) {
	m := shading.NewDepthMap(64, 64, 1)
	vertices, indices := UnitQuad(mgl32.Vec3{1, 1, 1})
	RenderDepth(m, 0, lightProjection(), vertices, indices, []shading.Instance{casterInstance()})

	// Caster depth 0.8 projects to 0.4 in light NDC.
	assert.InDelta(t, 0.4, float64(m.DepthAt(32, 32, 0)), 1e-5)
	// Outside the caster footprint the layer stays at the far plane.
	assert.Equal(t, float32(0), m.DepthAt(2, 2, 0))
	assert.Equal(t, float32(0), m.DepthAt(61, 61, 0))
}

func TestRenderDepthKeepsClosestCaster(t *testing.T) {
	m := shading.NewDepthMap(32, 32, 1)
	vertices, indices := UnitQuad(mgl32.Vec3{1, 1, 1})

	far := shading.InstanceFromMatrix(mgl32.Translate3D(-0.5, -0.5, 0.4), 0)
	near := shading.InstanceFromMatrix(mgl32.Translate3D(-0.5, -0.5, 1.2), 0)
	RenderDepth(m, 0, lightProjection(), vertices, indices, []shading.Instance{near, far})

	// 1.2 * 0.5 = 0.6 beats 0.2 regardless of draw order.
	assert.InDelta(t, 0.6, float64(m.DepthAt(16, 16, 0)), 1e-5)
}

func TestClearDepth(t *testing.T) {
	m := shading.NewDepthMap(8, 8, 2)
	m.SetDepth(3, 3, 1, 0.7)
	ClearDepth(m, 1)
	assert.Equal(t, float32(0), m.DepthAt(3, 3, 1))
}

// Full pipeline: render the shadow map from a caster, then shade a
// receiver with the hardware-compare array program. Fragments under the
// caster get ambient light only, fragments beside it the full sum.
func TestShadowedSceneEndToEnd(t *testing.T) {
	shadow := shading.NewDepthMap(64, 64, 1)
	vertices, indices := UnitQuad(mgl32.Vec3{1, 1, 1})
	RenderDepth(shadow, 0, lightProjection(), vertices, indices, []shading.Instance{casterInstance()})

	g := litGlobals()
	g.ShadowMapProjection = lightProjection()

	fb := NewFramebuffer(64, 64)
	fb.Clear(mgl32.Vec4{0, 0, 0, 1})
	r := &Rasterizer{
		Program: shading.NewProgram(shading.VariantShadowArray),
		Globals: g,
		Shadow:  shadow,
	}
	// Receiver below the caster, covering the whole view.
	receiver := fullscreenInstance(0.2, 0)
	r.DrawMesh(fb, vertices, indices, []shading.Instance{receiver})

	shadowed := fb.At(32, 32)
	lit := fb.At(60, 32)

	require.InDelta(t, 0.2, float64(shadowed.X()), 1e-4, "under the caster only ambient light remains")
	require.InDelta(t, 1.0, float64(lit.X()), 1e-4, "beside the caster the full light sum applies")
	assert.Greater(t, lit.X(), shadowed.X())
}
