package shading

// Variant identifies one program in the pipeline's evolution, from the
// textured triangle up to the shadow-mapped scene renderer.
type Variant int

const (
	VariantTriangle Variant = iota
	VariantLit
	VariantShadowArray
	VariantShadowSingle
	VariantScene
)

func (v Variant) String() string {
	switch v {
	case VariantTriangle:
		return "triangle"
	case VariantLit:
		return "lit"
	case VariantShadowArray:
		return "shadow_array"
	case VariantShadowSingle:
		return "shadow_single"
	case VariantScene:
		return "scene"
	}
	return "unknown"
}

// Program is the static configuration of one shader variant. The flags are
// fixed per variant, never runtime-toggled; which packed-field layout and
// which shadow strategy apply is a property of the program itself.
type Program struct {
	Variant Variant

	// Lit enables the normal attribute and the lighting/fog path.
	Lit bool

	// HueCycle rotates the vertex color hue by TimeSeconds.
	HueCycle bool

	// PackedAO selects the packed-field layout carrying four 3-bit
	// ambient occlusion corner weights below the material index.
	PackedAO bool

	Shadow ShadowTestKind

	// DebugModes honors Globals.NDCDisplayMode and the solid-red
	// near-zero sunlight sentinel.
	DebugModes bool
}

// NewProgram returns the fixed configuration for a variant.
func NewProgram(v Variant) Program {
	switch v {
	case VariantTriangle:
		return Program{Variant: v, HueCycle: true}
	case VariantLit:
		return Program{Variant: v, Lit: true}
	case VariantShadowArray:
		return Program{Variant: v, Lit: true, PackedAO: true, Shadow: ShadowHardwareCompareArray}
	case VariantShadowSingle:
		return Program{Variant: v, Lit: true, PackedAO: true, Shadow: ShadowManualCompareSingle}
	case VariantScene:
		return Program{Variant: v, Lit: true, PackedAO: true, Shadow: ShadowHardwareCompareSingleInverted, DebugModes: true}
	}
	return Program{Variant: v}
}

// Variants lists every program in pipeline order.
func Variants() []Variant {
	return []Variant{
		VariantTriangle,
		VariantLit,
		VariantShadowArray,
		VariantShadowSingle,
		VariantScene,
	}
}
