package render

import (
	"github.com/cogentcore/webgpu/wgpu"

	"github.com/voxshade/voxshade/shading"
)

const (
	// ShadowMapSize is the edge length of the square shadow map.
	ShadowMapSize = 2048

	depthFormat  = wgpu.TextureFormatDepth32Float
	shadowFormat = wgpu.TextureFormatDepth32Float
)

// uploadTextureArray converts the CPU texture array to RGBA8 and uploads
// it as a texture_2d_array.
func uploadTextureArray(gpu *GPU, arr *shading.TextureArray) *wgpu.TextureView {
	extent := wgpu.Extent3D{
		Width:              uint32(arr.Width),
		Height:             uint32(arr.Height),
		DepthOrArrayLayers: uint32(arr.Layers),
	}
	texture, err := gpu.device.CreateTexture(&wgpu.TextureDescriptor{
		Label:         "Material Texture Array",
		Size:          extent,
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     wgpu.TextureDimension2D,
		Format:        wgpu.TextureFormatRGBA8Unorm,
		Usage:         wgpu.TextureUsageTextureBinding | wgpu.TextureUsageCopyDst,
	})
	if err != nil {
		panic(err)
	}
	defer texture.Release()

	texels := make([]uint8, arr.Width*arr.Height*arr.Layers*4)
	i := 0
	for layer := 0; layer < arr.Layers; layer++ {
		for y := 0; y < arr.Height; y++ {
			for x := 0; x < arr.Width; x++ {
				c := arr.Texel(x, y, layer)
				texels[i] = channelByte(c.X())
				texels[i+1] = channelByte(c.Y())
				texels[i+2] = channelByte(c.Z())
				texels[i+3] = channelByte(c.W())
				i += 4
			}
		}
	}
	err = gpu.queue.WriteTexture(
		texture.AsImageCopy(),
		texels,
		&wgpu.TextureDataLayout{
			BytesPerRow:  uint32(arr.Width * 4),
			RowsPerImage: uint32(arr.Height),
		},
		&extent,
	)
	if err != nil {
		panic(err)
	}

	view, err := texture.CreateView(&wgpu.TextureViewDescriptor{
		Dimension:       wgpu.TextureViewDimension2DArray,
		ArrayLayerCount: uint32(arr.Layers),
	})
	if err != nil {
		panic(err)
	}
	return view
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

// createDepthTexture creates the main pass depth attachment.
func createDepthTexture(gpu *GPU, width, height int) *wgpu.TextureView {
	texture, err := gpu.device.CreateTexture(&wgpu.TextureDescriptor{
		Label: "Depth Texture",
		Size: wgpu.Extent3D{
			Width:              uint32(width),
			Height:             uint32(height),
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     wgpu.TextureDimension2D,
		Format:        depthFormat,
		Usage:         wgpu.TextureUsageRenderAttachment,
	})
	if err != nil {
		panic(err)
	}
	defer texture.Release()

	view, err := texture.CreateView(nil)
	if err != nil {
		panic(err)
	}
	return view
}

// createShadowTexture creates the shadow map with the given layer count:
// one layer for the single-map variants, more for the array variant. The
// returned views are the render-attachment view of layer 0 and the
// sampled view over all layers.
func createShadowTexture(gpu *GPU, layers int, arrayView bool) (attachment, sampled *wgpu.TextureView) {
	texture, err := gpu.device.CreateTexture(&wgpu.TextureDescriptor{
		Label: "Shadow Map",
		Size: wgpu.Extent3D{
			Width:              ShadowMapSize,
			Height:             ShadowMapSize,
			DepthOrArrayLayers: uint32(layers),
		},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     wgpu.TextureDimension2D,
		Format:        shadowFormat,
		Usage:         wgpu.TextureUsageRenderAttachment | wgpu.TextureUsageTextureBinding,
	})
	if err != nil {
		panic(err)
	}
	defer texture.Release()

	attachment, err = texture.CreateView(&wgpu.TextureViewDescriptor{
		Dimension:       wgpu.TextureViewDimension2D,
		BaseArrayLayer:  0,
		ArrayLayerCount: 1,
	})
	if err != nil {
		panic(err)
	}

	dim := wgpu.TextureViewDimension2D
	if arrayView {
		dim = wgpu.TextureViewDimension2DArray
	}
	sampled, err = texture.CreateView(&wgpu.TextureViewDescriptor{
		Dimension:       dim,
		ArrayLayerCount: uint32(layers),
	})
	if err != nil {
		panic(err)
	}
	return attachment, sampled
}

// createMaterialSampler creates the filtering sampler for material
// textures.
func createMaterialSampler(gpu *GPU, filter wgpu.FilterMode) *wgpu.Sampler {
	sampler, err := gpu.device.CreateSampler(&wgpu.SamplerDescriptor{
		Label:         "Material Sampler",
		AddressModeU:  wgpu.AddressModeClampToEdge,
		AddressModeV:  wgpu.AddressModeClampToEdge,
		AddressModeW:  wgpu.AddressModeClampToEdge,
		MagFilter:     filter,
		MinFilter:     filter,
		MipmapFilter:  wgpu.MipmapFilterModeNearest,
		MaxAnisotropy: 1,
	})
	if err != nil {
		panic(err)
	}
	return sampler
}

// createShadowSampler creates either a hardware comparison sampler with
// the reverse-Z GreaterEqual test or a plain sampler for the manual
// compare variant.
func createShadowSampler(gpu *GPU, compare bool) *wgpu.Sampler {
	desc := &wgpu.SamplerDescriptor{
		Label:         "Shadow Sampler",
		AddressModeU:  wgpu.AddressModeClampToEdge,
		AddressModeV:  wgpu.AddressModeClampToEdge,
		AddressModeW:  wgpu.AddressModeClampToEdge,
		MagFilter:     wgpu.FilterModeLinear,
		MinFilter:     wgpu.FilterModeLinear,
		MipmapFilter:  wgpu.MipmapFilterModeNearest,
		MaxAnisotropy: 1,
	}
	if compare {
		desc.Compare = wgpu.CompareFunctionGreaterEqual
	} else {
		desc.MagFilter = wgpu.FilterModeNearest
		desc.MinFilter = wgpu.FilterModeNearest
	}
	sampler, err := gpu.device.CreateSampler(desc)
	if err != nil {
		panic(err)
	}
	return sampler
}
