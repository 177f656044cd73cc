package render

import (
	"github.com/cogentcore/webgpu/wgpu"

	"github.com/voxshade/voxshade/shaders"
	"github.com/voxshade/voxshade/shading"
)

const (
	vertexStride   = 11 * 4 // vec3 position, vec3 normal, vec3 color, vec2 uv
	instanceStride = 4*16 + 4
)

// vertexBufferLayout returns the mesh vertex layout for a variant. The
// triangle program has no normal attribute and numbers its locations
// accordingly; the buffer layout skips the normal field but keeps the
// shared stride.
func vertexBufferLayout(v shading.Variant) wgpu.VertexBufferLayout {
	if v == shading.VariantTriangle {
		return wgpu.VertexBufferLayout{
			ArrayStride: vertexStride,
			StepMode:    wgpu.VertexStepModeVertex,
			Attributes: []wgpu.VertexAttribute{
				{ShaderLocation: 0, Offset: 0, Format: wgpu.VertexFormatFloat32x3},  // position
				{ShaderLocation: 1, Offset: 24, Format: wgpu.VertexFormatFloat32x3}, // color
				{ShaderLocation: 2, Offset: 36, Format: wgpu.VertexFormatFloat32x2}, // uv
			},
		}
	}
	return wgpu.VertexBufferLayout{
		ArrayStride: vertexStride,
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes: []wgpu.VertexAttribute{
			{ShaderLocation: 0, Offset: 0, Format: wgpu.VertexFormatFloat32x3},  // position
			{ShaderLocation: 1, Offset: 12, Format: wgpu.VertexFormatFloat32x3}, // normal
			{ShaderLocation: 2, Offset: 24, Format: wgpu.VertexFormatFloat32x3}, // color
			{ShaderLocation: 3, Offset: 36, Format: wgpu.VertexFormatFloat32x2}, // uv
		},
	}
}

// instanceBufferLayout returns the per-instance layout. baseLocation is
// the location of the first model column; includeData controls whether
// the packed u32 rides along (the depth pass has no use for it).
func instanceBufferLayout(baseLocation uint32, includeData bool) wgpu.VertexBufferLayout {
	attributes := []wgpu.VertexAttribute{
		{ShaderLocation: baseLocation, Offset: 0, Format: wgpu.VertexFormatFloat32x4},
		{ShaderLocation: baseLocation + 1, Offset: 16, Format: wgpu.VertexFormatFloat32x4},
		{ShaderLocation: baseLocation + 2, Offset: 32, Format: wgpu.VertexFormatFloat32x4},
		{ShaderLocation: baseLocation + 3, Offset: 48, Format: wgpu.VertexFormatFloat32x4},
	}
	if includeData {
		attributes = append(attributes, wgpu.VertexAttribute{
			ShaderLocation: baseLocation + 4, Offset: 64, Format: wgpu.VertexFormatUint32,
		})
	}
	return wgpu.VertexBufferLayout{
		ArrayStride: instanceStride,
		StepMode:    wgpu.VertexStepModeInstance,
		Attributes:  attributes,
	}
}

func instanceBaseLocation(v shading.Variant) uint32 {
	if v == shading.VariantTriangle {
		return 3
	}
	return 4
}

// createVariantPipeline builds the render pipeline for a shading
// variant: reverse-Z Greater depth against the main depth buffer.
func createVariantPipeline(gpu *GPU, v shading.Variant) *wgpu.RenderPipeline {
	shader, err := gpu.device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          v.String(),
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: shaders.Source(v)},
	})
	if err != nil {
		panic(err)
	}
	defer shader.Release()

	pipeline, err := gpu.device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label: v.String(),
		Vertex: wgpu.VertexState{
			Module:     shader,
			EntryPoint: "vs_main",
			Buffers: []wgpu.VertexBufferLayout{
				vertexBufferLayout(v),
				instanceBufferLayout(instanceBaseLocation(v), true),
			},
		},
		Fragment: &wgpu.FragmentState{
			Module:     shader,
			EntryPoint: "fs_main",
			Targets: []wgpu.ColorTargetState{
				{
					Format:    gpu.surfaceConfig.Format,
					Blend:     nil,
					WriteMask: wgpu.ColorWriteMaskAll,
				},
			},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleList,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  wgpu.CullModeBack,
		},
		DepthStencil: &wgpu.DepthStencilState{
			Format:            depthFormat,
			DepthWriteEnabled: true,
			DepthCompare:      wgpu.CompareFunctionGreater,
			StencilFront: wgpu.StencilFaceState{
				Compare: wgpu.CompareFunctionAlways,
			},
			StencilBack: wgpu.StencilFaceState{
				Compare: wgpu.CompareFunctionAlways,
			},
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
	return pipeline
}

// createShadowPipeline builds the depth-only pipeline that fills the
// shadow map.
func createShadowPipeline(gpu *GPU) *wgpu.RenderPipeline {
	shader, err := gpu.device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          "shadow depth",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: shaders.DepthWGSL},
	})
	if err != nil {
		panic(err)
	}
	defer shader.Release()

	pipeline, err := gpu.device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label: "shadow depth",
		Vertex: wgpu.VertexState{
			Module:     shader,
			EntryPoint: "vs_main",
			Buffers: []wgpu.VertexBufferLayout{
				{
					ArrayStride: vertexStride,
					StepMode:    wgpu.VertexStepModeVertex,
					Attributes: []wgpu.VertexAttribute{
						{ShaderLocation: 0, Offset: 0, Format: wgpu.VertexFormatFloat32x3},
					},
				},
				instanceBufferLayout(4, false),
			},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleList,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  wgpu.CullModeBack,
		},
		DepthStencil: &wgpu.DepthStencilState{
			Format:            shadowFormat,
			DepthWriteEnabled: true,
			DepthCompare:      wgpu.CompareFunctionGreater,
			StencilFront: wgpu.StencilFaceState{
				Compare: wgpu.CompareFunctionAlways,
			},
			StencilBack: wgpu.StencilFaceState{
				Compare: wgpu.CompareFunctionAlways,
			},
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
	return pipeline
}
