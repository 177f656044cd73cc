package shading

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// ShadowTestKind names one of the shadow strategies. The three variants
// differ in bias convention, texture orientation and result
// representation; they are kept distinct because unifying them changes
// visible shadow placement.
type ShadowTestKind int

const (
	ShadowNone ShadowTestKind = iota

	// ShadowHardwareCompareArray projects into an array shadow map,
	// flips Y into texture space, fails open outside the unit cube and
	// answers a hardware depth-compare with the receiver depth biased
	// by +1e-5. Result is a lit fraction.
	ShadowHardwareCompareArray

	// ShadowManualCompareSingle samples a single-layer map's raw depth
	// (no Y flip), checks only the X/Y frustum bounds, and compares
	// manually with a 1e-6 bias on the caster side. Result is a lit
	// fraction of exactly 0 or 1.
	ShadowManualCompareSingle

	// ShadowHardwareCompareSingleInverted layers a +0.007 bias onto a
	// hardware compare of the single-layer map and reports a shadow
	// factor, i.e. 1 minus the lit fraction. Consumers must not confuse
	// the two representations.
	ShadowHardwareCompareSingleInverted
)

const (
	// Receiver-side bias for the hardware array compare. Fixed trade-off
	// between shadow acne and peter-panning.
	receiverDepthBias = 1e-5

	// Caster-side bias for the manual compare, opposite sign convention
	// from the array variant.
	casterDepthBias = 1e-6

	// Bias for the inverted hardware compare on the single-layer map.
	singleCompareBias = 0.007

	// Below this w the perspective divide is considered degenerate and
	// the point resolves fail-open instead of propagating non-finites.
	minProjectedW = 1e-8
)

// DepthMap is a layered single-channel depth texture with values in
// [0, 1]. Depth follows the reverse-Z convention of the renderer: larger
// stored depth means closer to the light.
type DepthMap struct {
	Width  int
	Height int
	Layers int
	depths []float32
}

func NewDepthMap(width, height, layers int) *DepthMap {
	return &DepthMap{
		Width:  width,
		Height: height,
		Layers: layers,
		depths: make([]float32, width*height*layers),
	}
}

func (m *DepthMap) SetDepth(x, y, layer int, d float32) {
	m.depths[(layer*m.Height+y)*m.Width+x] = d
}

func (m *DepthMap) DepthAt(x, y, layer int) float32 {
	x = clampIndex(x, m.Width)
	y = clampIndex(y, m.Height)
	layer = clampIndex(layer, m.Layers)
	return m.depths[(layer*m.Height+y)*m.Width+x]
}

// Sample fetches the raw stored depth nearest to uv.
func (m *DepthMap) Sample(uv mgl32.Vec2, layer int) float32 {
	x := roundIndex(uv.X()*float32(m.Width) - 0.5)
	y := roundIndex(uv.Y()*float32(m.Height) - 0.5)
	return m.DepthAt(x, y, layer)
}

// SampleCompare answers a PCF-style depth compare: the four texels around
// uv are each tested ref >= stored and the boolean results are blended
// with bilinear weights, giving an occupancy-weighted lit fraction.
func (m *DepthMap) SampleCompare(uv mgl32.Vec2, layer int, ref float32) float32 {
	fx := uv.X()*float32(m.Width) - 0.5
	fy := uv.Y()*float32(m.Height) - 0.5
	x0, y0 := floorIndex(fx), floorIndex(fy)
	tx := fx - float32(x0)
	ty := fy - float32(y0)

	pass := func(x, y int) float32 {
		if ref >= m.DepthAt(x, y, layer) {
			return 1
		}
		return 0
	}
	bottom := mix(pass(x0, y0), pass(x0+1, y0), tx)
	top := mix(pass(x0, y0+1), pass(x0+1, y0+1), tx)
	return mix(bottom, top, ty)
}

// shadowNDC projects a world point through the shadow map projection and
// performs the perspective divide. ok is false when w is too close to
// zero to divide safely.
func shadowNDC(g *Globals, worldPos mgl32.Vec3) (ndc mgl32.Vec3, ok bool) {
	clip := g.ShadowMapProjection.Mul4x1(worldPos.Vec4(1))
	w := clip.W()
	if float32(math.Abs(float64(w))) < minProjectedW {
		return mgl32.Vec3{}, false
	}
	return clip.Mul(1 / w).Vec3(), true
}

// LitFractionHardwareArray is the array-map strategy. Shadow-map texture
// space has inverted Y relative to shadow clip space, so (x, -y) maps
// from [-1, 1] to [0, 1]. Geometry outside the shadow frustum is
// unconditionally lit.
func LitFractionHardwareArray(g *Globals, worldPos mgl32.Vec3, m *DepthMap, layer int) float32 {
	ndc, ok := shadowNDC(g, worldPos)
	if !ok {
		return 1
	}
	uv := mgl32.Vec2{ndc.X()*0.5 + 0.5, -ndc.Y()*0.5 + 0.5}
	if uv.X() < 0 || uv.X() > 1 || uv.Y() < 0 || uv.Y() > 1 {
		return 1
	}
	if ndc.Z() < 0 || ndc.Z() > 1 {
		return 1
	}
	return m.SampleCompare(uv, layer, ndc.Z()+receiverDepthBias)
}

// LitFractionManualSingle is the manual-compare strategy for platforms
// without comparison samplers. Only the X/Y bounds guard the frustum; the
// UV mapping carries no Y flip, intentionally unlike the array variant.
func LitFractionManualSingle(g *Globals, worldPos mgl32.Vec3, m *DepthMap) float32 {
	ndc, ok := shadowNDC(g, worldPos)
	if !ok {
		return 1
	}
	if ndc.X() < -1 || ndc.X() > 1 || ndc.Y() < -1 || ndc.Y() > 1 {
		return 1
	}
	uv := mgl32.Vec2{ndc.X()*0.5 + 0.5, ndc.Y()*0.5 + 0.5}
	stored := m.Sample(uv, 0)
	if ndc.Z() < stored-casterDepthBias {
		return 0
	}
	return 1
}

// ShadowFactorHardwareSingle refines the single-layer strategy with a
// hardware compare and a +0.007 bias. Unlike the other two it reports a
// shadow factor (1 = fully shadowed), not a lit fraction.
func ShadowFactorHardwareSingle(g *Globals, worldPos mgl32.Vec3, m *DepthMap) float32 {
	ndc, ok := shadowNDC(g, worldPos)
	if !ok {
		return 0
	}
	if ndc.X() < -1 || ndc.X() > 1 || ndc.Y() < -1 || ndc.Y() > 1 {
		return 0
	}
	uv := mgl32.Vec2{ndc.X()*0.5 + 0.5, ndc.Y()*0.5 + 0.5}
	lit := m.SampleCompare(uv, 0, ndc.Z()+singleCompareBias)
	return 1 - lit
}

// SunlightFactor dispatches the configured strategy and normalizes the
// answer to a lit fraction, the representation the lighting composition
// consumes.
func SunlightFactor(kind ShadowTestKind, g *Globals, worldPos mgl32.Vec3, m *DepthMap) float32 {
	if m == nil || kind == ShadowNone {
		return 1
	}
	switch kind {
	case ShadowHardwareCompareArray:
		return LitFractionHardwareArray(g, worldPos, m, 0)
	case ShadowManualCompareSingle:
		return LitFractionManualSingle(g, worldPos, m)
	case ShadowHardwareCompareSingleInverted:
		return 1 - ShadowFactorHardwareSingle(g, worldPos, m)
	}
	return 1
}
