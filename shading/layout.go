package shading

import (
	"encoding/binary"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Per-variant byte sizes of the encoded Globals uniform. The field set is
// part of the binding contract with the host and differs across the
// program sequence, so each variant gets its own layout and they are
// never merged.
const (
	GlobalsSizeTriangle = 80
	GlobalsSizeLit      = 176
	GlobalsSizeShadow   = 224
	GlobalsSizeScene    = 240
)

// EncodeUniform serializes the Globals fields a variant binds, in the
// exact order and padding of that variant's WGSL struct (std140-style
// 16-byte slots, column-major matrices, little endian).
//
// The triangle variant carries only the time and the view-projection.
// The lit variant appends the light fields and fog as a nested record
// with the density scalar leading the color. The shadow variants inline
// fog as a vec3 plus scalar sharing one slot and append the shadow
// projection; the scene variant additionally carries the NDC display
// mode. The two fog encodings are genuinely different wire layouts.
func (g *Globals) EncodeUniform(v Variant) []byte {
	w := uniformWriter{}
	w.scalar(g.TimeSeconds)
	w.pad(12)
	w.mat4(g.WorldToClip)
	if v == VariantTriangle {
		return w.buf
	}

	w.vec3Slot(g.CameraPosition)
	w.vec3Slot(g.AmbientLight)
	w.vec3Slot(g.DirectionalLight)
	w.vec3Slot(g.DirectionalLightDirection)

	if v == VariantLit {
		// Nested Fog record: density scalar first, color in its own slot.
		w.scalar(g.FogB)
		w.pad(12)
		w.vec3Slot(g.FogColor)
		return w.buf
	}

	// Inline fog: color and density share a 16-byte slot.
	w.vec3(g.FogColor)
	w.scalar(g.FogB)
	w.mat4(g.ShadowMapProjection)

	if v == VariantScene {
		w.uint32(uint32(g.NDCDisplayMode))
		w.pad(12)
	}
	return w.buf
}

type uniformWriter struct {
	buf []byte
}

func (w *uniformWriter) scalar(f float32) {
	w.buf = binary.LittleEndian.AppendUint32(w.buf, math.Float32bits(f))
}

func (w *uniformWriter) uint32(u uint32) {
	w.buf = binary.LittleEndian.AppendUint32(w.buf, u)
}

func (w *uniformWriter) pad(n int) {
	w.buf = append(w.buf, make([]byte, n)...)
}

func (w *uniformWriter) vec3(v mgl32.Vec3) {
	w.scalar(v.X())
	w.scalar(v.Y())
	w.scalar(v.Z())
}

// vec3Slot writes a vec3 padded out to a full 16-byte slot.
func (w *uniformWriter) vec3Slot(v mgl32.Vec3) {
	w.vec3(v)
	w.pad(4)
}

func (w *uniformWriter) mat4(m mgl32.Mat4) {
	for _, f := range m {
		w.scalar(f)
	}
}

// GlobalsSize reports the encoded uniform size for a variant.
func GlobalsSize(v Variant) int {
	switch v {
	case VariantTriangle:
		return GlobalsSizeTriangle
	case VariantLit:
		return GlobalsSizeLit
	case VariantShadowArray, VariantShadowSingle:
		return GlobalsSizeShadow
	case VariantScene:
		return GlobalsSizeScene
	}
	return 0
}
