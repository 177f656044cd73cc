package softrender

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/voxshade/voxshade/shading"
)

// RenderDepth rasterizes instanced triangles into one layer of a depth
// map using the light projection. Only positions matter; the shading
// program is bypassed. Depth follows the reverse-Z convention of the
// color path: the layer should be cleared to 0 and closer casters store
// larger values.
func RenderDepth(m *shading.DepthMap, layer int, projection mgl32.Mat4, vertices []shading.Vertex, indices []uint32, instances []shading.Instance) {
	for _, instance := range instances {
		model := instance.LocalToWorld()
		clip := make([]mgl32.Vec4, len(vertices))
		for i, v := range vertices {
			world := model.Mul4x1(v.Position.Vec4(1))
			clip[i] = projection.Mul4x1(world)
		}
		for i := 0; i+2 < len(indices); i += 3 {
			depthTriangle(m, layer, clip[indices[i]], clip[indices[i+1]], clip[indices[i+2]])
		}
	}
}

// ClearDepth resets one layer to the reverse-Z far plane.
func ClearDepth(m *shading.DepthMap, layer int) {
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			m.SetDepth(x, y, layer, 0)
		}
	}
}

func depthTriangle(m *shading.DepthMap, layer int, c0, c1, c2 mgl32.Vec4) {
	if c0.W() <= 0 || c1.W() <= 0 || c2.W() <= 0 {
		return
	}
	s0 := depthScreen(m, c0)
	s1 := depthScreen(m, c1)
	s2 := depthScreen(m, c2)

	area := edge(s0, s1, s2)
	if area == 0 {
		return
	}
	minX := clampPixel(floor3(s0.x, s1.x, s2.x), 0, m.Width-1)
	maxX := clampPixel(ceil3(s0.x, s1.x, s2.x), 0, m.Width-1)
	minY := clampPixel(floor3(s0.y, s1.y, s2.y), 0, m.Height-1)
	maxY := clampPixel(ceil3(s0.y, s1.y, s2.y), 0, m.Height-1)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			p := screenVertex{x: float32(x) + 0.5, y: float32(y) + 0.5}
			w0 := edge(s1, s2, p) / area
			w1 := edge(s2, s0, p) / area
			w2 := edge(s0, s1, p) / area
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}
			z := w0*s0.z + w1*s1.z + w2*s2.z
			if z < 0 || z > 1 {
				continue
			}
			if z > m.DepthAt(x, y, layer) {
				m.SetDepth(x, y, layer, z)
			}
		}
	}
}

func depthScreen(m *shading.DepthMap, c mgl32.Vec4) screenVertex {
	invW := 1 / c.W()
	ndc := c.Vec3().Mul(invW)
	return screenVertex{
		x: (ndc.X()*0.5 + 0.5) * float32(m.Width),
		y: (-ndc.Y()*0.5 + 0.5) * float32(m.Height),
		z: ndc.Z(),
	}
}
