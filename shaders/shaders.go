// Package shaders embeds the WGSL programs of the rendering pipeline.
// They mirror the CPU reference implementation in package shading; the
// shading tests pin down the semantics, the compile test here keeps the
// WGSL well-formed.
package shaders

import (
	_ "embed"

	"github.com/voxshade/voxshade/shading"
)

//go:embed triangle.wgsl
var TriangleWGSL string

//go:embed lit.wgsl
var LitWGSL string

//go:embed shadow_array.wgsl
var ShadowArrayWGSL string

//go:embed shadow_single.wgsl
var ShadowSingleWGSL string

//go:embed scene.wgsl
var SceneWGSL string

//go:embed depth.wgsl
var DepthWGSL string

//go:embed text.wgsl
var TextWGSL string

// Source returns the WGSL program for a shading variant.
func Source(v shading.Variant) string {
	switch v {
	case shading.VariantTriangle:
		return TriangleWGSL
	case shading.VariantLit:
		return LitWGSL
	case shading.VariantShadowArray:
		return ShadowArrayWGSL
	case shading.VariantShadowSingle:
		return ShadowSingleWGSL
	case shading.VariantScene:
		return SceneWGSL
	}
	return ""
}
