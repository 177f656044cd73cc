package render

import (
	"github.com/cogentcore/webgpu/wgpu"

	"github.com/voxshade/voxshade/shaders"
)

// hudOverlay draws the debug text on top of the frame: a glyph atlas in
// an R8 texture, alpha-blended triangles, no depth.
type hudOverlay struct {
	text      *TextRenderer
	pipeline  *wgpu.RenderPipeline
	bindGroup *wgpu.BindGroup
}

func newHudOverlay(gpu *GPU, fontPath string) (*hudOverlay, error) {
	text, err := NewTextRenderer(fontPath, 16)
	if err != nil {
		return nil, err
	}

	shader, err := gpu.device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          "hud text",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: shaders.TextWGSL},
	})
	if err != nil {
		panic(err)
	}
	defer shader.Release()

	pipeline, err := gpu.device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label: "hud text",
		Vertex: wgpu.VertexState{
			Module:     shader,
			EntryPoint: "vs_main",
			Buffers: []wgpu.VertexBufferLayout{
				{
					ArrayStride: 8 * 4,
					StepMode:    wgpu.VertexStepModeVertex,
					Attributes: []wgpu.VertexAttribute{
						{ShaderLocation: 0, Offset: 0, Format: wgpu.VertexFormatFloat32x2},
						{ShaderLocation: 1, Offset: 8, Format: wgpu.VertexFormatFloat32x2},
						{ShaderLocation: 2, Offset: 16, Format: wgpu.VertexFormatFloat32x4},
					},
				},
			},
		},
		Fragment: &wgpu.FragmentState{
			Module:     shader,
			EntryPoint: "fs_main",
			Targets: []wgpu.ColorTargetState{
				{
					Format: gpu.surfaceConfig.Format,
					Blend: &wgpu.BlendState{
						Color: wgpu.BlendComponent{
							Operation: wgpu.BlendOperationAdd,
							SrcFactor: wgpu.BlendFactorSrcAlpha,
							DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
						},
						Alpha: wgpu.BlendComponent{
							Operation: wgpu.BlendOperationAdd,
							SrcFactor: wgpu.BlendFactorOne,
							DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
						},
					},
					WriteMask: wgpu.ColorWriteMaskAll,
				},
			},
		},
		Primitive: wgpu.PrimitiveState{
			Topology: wgpu.PrimitiveTopologyTriangleList,
		},
		Multisample: wgpu.MultisampleState{
			Count:                  1,
			Mask:                   0xFFFFFFFF,
			AlphaToCoverageEnabled: false,
		},
	})
	if err != nil {
		panic(err)
	}

	atlasView := uploadGlyphAtlas(gpu, text)
	sampler, err := gpu.device.CreateSampler(&wgpu.SamplerDescriptor{
		Label:         "Atlas Sampler",
		AddressModeU:  wgpu.AddressModeClampToEdge,
		AddressModeV:  wgpu.AddressModeClampToEdge,
		AddressModeW:  wgpu.AddressModeClampToEdge,
		MagFilter:     wgpu.FilterModeLinear,
		MinFilter:     wgpu.FilterModeLinear,
		MipmapFilter:  wgpu.MipmapFilterModeNearest,
		MaxAnisotropy: 1,
	})
	if err != nil {
		panic(err)
	}

	layout := pipeline.GetBindGroupLayout(0)
	defer layout.Release()
	bindGroup, err := gpu.device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Layout: layout,
		Entries: []wgpu.BindGroupEntry{
			{Binding: 0, TextureView: atlasView, Size: wgpu.WholeSize},
			{Binding: 1, Sampler: sampler, Size: wgpu.WholeSize},
		},
	})
	if err != nil {
		panic(err)
	}

	return &hudOverlay{
		text:      text,
		pipeline:  pipeline,
		bindGroup: bindGroup,
	}, nil
}

func uploadGlyphAtlas(gpu *GPU, text *TextRenderer) *wgpu.TextureView {
	bounds := text.AtlasImage.Bounds()
	extent := wgpu.Extent3D{
		Width:              uint32(bounds.Dx()),
		Height:             uint32(bounds.Dy()),
		DepthOrArrayLayers: 1,
	}
	texture, err := gpu.device.CreateTexture(&wgpu.TextureDescriptor{
		Label:         "Glyph Atlas",
		Size:          extent,
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     wgpu.TextureDimension2D,
		Format:        wgpu.TextureFormatR8Unorm,
		Usage:         wgpu.TextureUsageTextureBinding | wgpu.TextureUsageCopyDst,
	})
	if err != nil {
		panic(err)
	}
	defer texture.Release()

	err = gpu.queue.WriteTexture(
		texture.AsImageCopy(),
		text.AtlasImage.Pix,
		&wgpu.TextureDataLayout{
			BytesPerRow:  uint32(text.AtlasImage.Stride),
			RowsPerImage: uint32(bounds.Dy()),
		},
		&extent,
	)
	if err != nil {
		panic(err)
	}

	view, err := texture.CreateView(nil)
	if err != nil {
		panic(err)
	}
	return view
}

// encode appends the HUD draw to the frame, loading the existing color.
func (h *hudOverlay) encode(gpu *GPU, encoder *wgpu.CommandEncoder, view *wgpu.TextureView, width, height int, stats HudStats) {
	items := []TextItem{{
		Text:     FormatHud(stats),
		Position: [2]float32{8, 8},
		Scale:    1,
		Color:    [4]float32{1, 1, 1, 1},
	}}
	vertices := h.text.BuildVertices(items, width, height)
	if len(vertices) == 0 {
		return
	}

	vertexBuf, err := gpu.device.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    "HUD Vertex Buffer",
		Contents: textVertexBytes(vertices),
		Usage:    wgpu.BufferUsageVertex,
	})
	if err != nil {
		panic(err)
	}
	defer vertexBuf.Release()

	pass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		Label: "hud pass",
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:    view,
				LoadOp:  wgpu.LoadOpLoad,
				StoreOp: wgpu.StoreOpStore,
			},
		},
	})
	pass.SetPipeline(h.pipeline)
	pass.SetBindGroup(0, h.bindGroup, nil)
	pass.SetVertexBuffer(0, vertexBuf, 0, wgpu.WholeSize)
	pass.Draw(uint32(len(vertices)), 1, 0, 0)
	pass.End()
	pass.Release()
}

func textVertexBytes(vertices []TextVertex) []byte {
	buf := make([]byte, 0, len(vertices)*8*4)
	for _, v := range vertices {
		buf = appendFloat(buf, v.Pos[0])
		buf = appendFloat(buf, v.Pos[1])
		buf = appendFloat(buf, v.UV[0])
		buf = appendFloat(buf, v.UV[1])
		for _, c := range v.Color {
			buf = appendFloat(buf, c)
		}
	}
	return buf
}
