package render

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxshade/voxshade/shading"
)

func TestVertexBufferLayoutTriangle(t *testing.T) {
	layout := vertexBufferLayout(shading.VariantTriangle)

	assert.Equal(t, uint64(vertexStride), layout.ArrayStride)
	require.Len(t, layout.Attributes, 3, "triangle program has no normal attribute")
	assert.Equal(t, uint64(24), layout.Attributes[1].Offset, "color still sits past the normal slot")
	assert.Equal(t, uint32(2), layout.Attributes[2].ShaderLocation)
}

func TestVertexBufferLayoutLit(t *testing.T) {
	layout := vertexBufferLayout(shading.VariantLit)

	require.Len(t, layout.Attributes, 4)
	assert.Equal(t, uint64(12), layout.Attributes[1].Offset, "normal at offset 12")
	assert.Equal(t, wgpu.VertexFormatFloat32x2, layout.Attributes[3].Format)
	assert.Equal(t, uint64(36), layout.Attributes[3].Offset)
}

func TestInstanceBufferLayout(t *testing.T) {
	withData := instanceBufferLayout(4, true)
	require.Len(t, withData.Attributes, 5)
	assert.Equal(t, uint64(instanceStride), withData.ArrayStride)
	assert.Equal(t, wgpu.VertexStepModeInstance, withData.StepMode)
	assert.Equal(t, uint32(8), withData.Attributes[4].ShaderLocation)
	assert.Equal(t, uint64(64), withData.Attributes[4].Offset)
	assert.Equal(t, wgpu.VertexFormatUint32, withData.Attributes[4].Format)

	depthOnly := instanceBufferLayout(4, false)
	assert.Len(t, depthOnly.Attributes, 4, "depth pass drops the packed word")
}

func TestInstanceBaseLocation(t *testing.T) {
	assert.Equal(t, uint32(3), instanceBaseLocation(shading.VariantTriangle))
	for _, v := range []shading.Variant{
		shading.VariantLit,
		shading.VariantShadowArray,
		shading.VariantShadowSingle,
		shading.VariantScene,
	} {
		assert.Equal(t, uint32(4), instanceBaseLocation(v), v.String())
	}
}

func TestStridesMatchByteEncoders(t *testing.T) {
	assert.Equal(t, len(vertexBytes(make([]shading.Vertex, 1))), vertexStride)
	assert.Equal(t, len(instanceBytes(make([]shading.Instance, 1))), instanceStride)
}
