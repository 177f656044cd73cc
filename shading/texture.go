package shading

import (
	"github.com/go-gl/mathgl/mgl32"
)

// FilterMode selects the sampling filter for color textures.
type FilterMode int

const (
	FilterNearest FilterMode = iota
	FilterLinear
)

// Sampler mirrors the host sampler state the fragment stage sees.
// Addressing is always clamp-to-edge.
type Sampler struct {
	Filter FilterMode
}

// TextureArray is a layered RGBA texture addressed by a material index.
// Texels are linear RGBA, layer-major.
type TextureArray struct {
	Width  int
	Height int
	Layers int
	texels []mgl32.Vec4
}

func NewTextureArray(width, height, layers int) *TextureArray {
	return &TextureArray{
		Width:  width,
		Height: height,
		Layers: layers,
		texels: make([]mgl32.Vec4, width*height*layers),
	}
}

func (t *TextureArray) SetTexel(x, y, layer int, c mgl32.Vec4) {
	t.texels[(layer*t.Height+y)*t.Width+x] = c
}

// Texel fetches with clamp-to-edge addressing. Out-of-range layers clamp
// to the last layer rather than failing.
func (t *TextureArray) Texel(x, y, layer int) mgl32.Vec4 {
	x = clampIndex(x, t.Width)
	y = clampIndex(y, t.Height)
	layer = clampIndex(layer, t.Layers)
	return t.texels[(layer*t.Height+y)*t.Width+x]
}

// Sample fetches the texture at uv within one layer. Linear filtering
// blends the four nearest texels; nearest snaps to the closest one.
func (t *TextureArray) Sample(s Sampler, uv mgl32.Vec2, layer uint32) mgl32.Vec4 {
	fx := uv.X()*float32(t.Width) - 0.5
	fy := uv.Y()*float32(t.Height) - 0.5
	if s.Filter == FilterNearest {
		return t.Texel(roundIndex(fx), roundIndex(fy), int(layer))
	}

	x0, y0 := floorIndex(fx), floorIndex(fy)
	tx := fx - float32(x0)
	ty := fy - float32(y0)
	c00 := t.Texel(x0, y0, int(layer))
	c10 := t.Texel(x0+1, y0, int(layer))
	c01 := t.Texel(x0, y0+1, int(layer))
	c11 := t.Texel(x0+1, y0+1, int(layer))
	bottom := mixVec4(c00, c10, tx)
	top := mixVec4(c01, c11, tx)
	return mixVec4(bottom, top, ty)
}

func mixVec4(a, b mgl32.Vec4, t float32) mgl32.Vec4 {
	return a.Add(b.Sub(a).Mul(t))
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

func floorIndex(f float32) int {
	i := int(f)
	if f < 0 && f != float32(i) {
		i--
	}
	return i
}

func roundIndex(f float32) int {
	return floorIndex(f + 0.5)
}
