// Package softrender is a small CPU rasterizer over the shading package.
// It runs the same vertex and fragment programs the GPU pipelines run,
// which makes whole-pipeline behavior testable without a device: shadow
// passes render into a shading.DepthMap, color passes into a Framebuffer.
package softrender

import (
	"image"
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
)

// Framebuffer is a color target with an attached reverse-Z depth buffer.
// Depth clears to 0 and larger values are closer.
type Framebuffer struct {
	Width  int
	Height int
	color  []mgl32.Vec4
	depth  []float32
}

func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		color:  make([]mgl32.Vec4, width*height),
		depth:  make([]float32, width*height),
	}
}

// Clear fills the color buffer and resets depth to the far plane.
func (f *Framebuffer) Clear(c mgl32.Vec4) {
	for i := range f.color {
		f.color[i] = c
		f.depth[i] = 0
	}
}

// At returns the color at a pixel.
func (f *Framebuffer) At(x, y int) mgl32.Vec4 {
	return f.color[y*f.Width+x]
}

// DepthAt returns the stored depth at a pixel.
func (f *Framebuffer) DepthAt(x, y int) float32 {
	return f.depth[y*f.Width+x]
}

// Image converts the framebuffer to an 8-bit RGBA image, clamping
// channels to [0, 1].
func (f *Framebuffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			c := f.At(x, y)
			img.SetRGBA(x, y, color.RGBA{
				R: channelByte(c.X()),
				G: channelByte(c.Y()),
				B: channelByte(c.Z()),
				A: channelByte(c.W()),
			})
		}
	}
	return img
}

func channelByte(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
