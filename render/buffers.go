package render

import (
	"encoding/binary"
	"math"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/voxshade/voxshade/shading"
)

// vertexBytes flattens mesh vertices into the GPU vertex layout.
func vertexBytes(vertices []shading.Vertex) []byte {
	buf := make([]byte, 0, len(vertices)*vertexStride)
	for _, v := range vertices {
		buf = appendVec3(buf, v.Position)
		buf = appendVec3(buf, v.Normal)
		buf = appendVec3(buf, v.Color)
		buf = appendFloat(buf, v.UV.X())
		buf = appendFloat(buf, v.UV.Y())
	}
	return buf
}

// instanceBytes flattens instances into the GPU instance layout.
func instanceBytes(instances []shading.Instance) []byte {
	buf := make([]byte, 0, len(instances)*instanceStride)
	for _, in := range instances {
		for _, col := range [4][4]float32{in.Model0, in.Model1, in.Model2, in.Model3} {
			for _, f := range col {
				buf = appendFloat(buf, f)
			}
		}
		buf = binary.LittleEndian.AppendUint32(buf, in.Data)
	}
	return buf
}

func appendVec3(buf []byte, v [3]float32) []byte {
	for _, f := range v {
		buf = appendFloat(buf, f)
	}
	return buf
}

func appendFloat(buf []byte, f float32) []byte {
	return binary.LittleEndian.AppendUint32(buf, math.Float32bits(f))
}

func createVertexBuffer(gpu *GPU, vertices []shading.Vertex) *wgpu.Buffer {
	buf, err := gpu.device.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    "Vertex Buffer",
		Contents: vertexBytes(vertices),
		Usage:    wgpu.BufferUsageVertex,
	})
	if err != nil {
		panic(err)
	}
	return buf
}

func createIndexBuffer(gpu *GPU, indices []uint32) *wgpu.Buffer {
	buf, err := gpu.device.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    "Index Buffer",
		Contents: wgpu.ToBytes(indices),
		Usage:    wgpu.BufferUsageIndex,
	})
	if err != nil {
		panic(err)
	}
	return buf
}

func createInstanceBuffer(gpu *GPU, instances []shading.Instance) *wgpu.Buffer {
	buf, err := gpu.device.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    "Instance Buffer",
		Contents: instanceBytes(instances),
		Usage:    wgpu.BufferUsageVertex,
	})
	if err != nil {
		panic(err)
	}
	return buf
}

// createUniformBuffer allocates the globals uniform for a variant, sized
// to that variant's layout.
func createUniformBuffer(gpu *GPU, v shading.Variant) *wgpu.Buffer {
	buf, err := gpu.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "Globals Uniform",
		Size:  uint64(shading.GlobalsSize(v)),
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		panic(err)
	}
	return buf
}

// createShadowUniformBuffer allocates the shadow pass uniform: a single
// mat4.
func createShadowUniformBuffer(gpu *GPU) *wgpu.Buffer {
	buf, err := gpu.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "Shadow Pass Uniform",
		Size:  64,
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		panic(err)
	}
	return buf
}
