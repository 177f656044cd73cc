package shading

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Below this sunlight factor the scene variant's fragment stage returns
// the solid-red sentinel instead of lighting the pixel. Diagnostic trap
// for near-fully-shadowed fragments.
const sunlightSentinelThreshold = 1e-6

var sentinelRed = mgl32.Vec4{1, 0, 0, 1}

// Light composes ambient and shadowed directional lighting for a surface
// normal. The normal arrives interpolated and possibly non-unit; the dot
// product is used as-is.
func Light(g *Globals, normal mgl32.Vec3, sunlight float32) mgl32.Vec3 {
	d := normal.Dot(g.DirectionalLightDirection)
	if d < 0 {
		d = 0
	}
	return g.AmbientLight.Add(g.DirectionalLight.Mul(d * sunlight))
}

// FragmentMain shades one covered pixel. Debug display modes bypass the
// entire lit path before any lighting math. Output channels are not
// clamped; overbright light intentionally produces values above 1.
func (p Program) FragmentMain(g *Globals, in VertexOutput, tex *TextureArray, smp Sampler, shadow *DepthMap) mgl32.Vec4 {
	if p.DebugModes && g.NDCDisplayMode != RenderModeLit {
		return DebugNDCColor(g, in.WorldPosition)
	}

	sample := mgl32.Vec4{1, 1, 1, 1}
	if tex != nil {
		sample = tex.Sample(smp, in.UV, in.MaterialIndex)
	}
	base := mulVec3(in.Color, sample.Vec3())

	if !p.Lit {
		return base.Vec4(sample.W())
	}

	sunlight := SunlightFactor(p.Shadow, g, in.WorldPosition, shadow)
	if p.DebugModes && sunlight < sunlightSentinelThreshold {
		return sentinelRed
	}

	light := Light(g, in.Normal, sunlight).Mul(in.Occlusion)
	lit := mulVec3(base, light).Vec4(sample.W())
	return ApplyFog(g, lit, in.WorldPosition)
}

// DebugNDCColor visualizes one axis of the shadow-space NDC as a
// red-to-green gradient over the axis's valid range. Wherever the other
// two axes are outside their own valid ranges the pixel renders solid
// black, making the shadow frustum's footprint visible.
func DebugNDCColor(g *Globals, worldPos mgl32.Vec3) mgl32.Vec4 {
	black := mgl32.Vec4{0, 0, 0, 1}
	ndc, ok := shadowNDC(g, worldPos)
	if !ok {
		return black
	}
	switch g.NDCDisplayMode {
	case RenderModeNDCX:
		if !inRange(ndc.Y(), -1, 1) || !inRange(ndc.Z(), 0, 1) {
			return black
		}
		return axisGradient(ndc.X(), -1, 1)
	case RenderModeNDCY:
		if !inRange(ndc.X(), -1, 1) || !inRange(ndc.Z(), 0, 1) {
			return black
		}
		return axisGradient(ndc.Y(), -1, 1)
	case RenderModeNDCZ:
		if !inRange(ndc.X(), -1, 1) || !inRange(ndc.Y(), -1, 1) {
			return black
		}
		return axisGradient(ndc.Z(), 0, 1)
	}
	return black
}

func axisGradient(v, lo, hi float32) mgl32.Vec4 {
	t := clamp((v-lo)/(hi-lo), 0, 1)
	return mgl32.Vec4{1 - t, t, 0, 1}
}

func inRange(v, lo, hi float32) bool {
	return v >= lo && v <= hi
}

func mulVec3(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{a.X() * b.X(), a.Y() * b.Y(), a.Z() * b.Z()}
}
