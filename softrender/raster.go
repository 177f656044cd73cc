package softrender

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/voxshade/voxshade/shading"
)

// Rasterizer draws instanced meshes through a shading program. The zero
// Texture and Shadow are valid; the fragment stage substitutes white for
// a missing texture and full sunlight for a missing shadow map.
type Rasterizer struct {
	Program shading.Program
	Globals *shading.Globals
	Texture *shading.TextureArray
	Sampler shading.Sampler
	Shadow  *shading.DepthMap
}

// DrawMesh renders indexed triangles for every instance. Triangles with
// any vertex at or behind the projection plane are dropped whole; there
// is no near-plane clipping.
func (r *Rasterizer) DrawMesh(fb *Framebuffer, vertices []shading.Vertex, indices []uint32, instances []shading.Instance) {
	for _, instance := range instances {
		outs := make([]shading.VertexOutput, len(vertices))
		for i, v := range vertices {
			outs[i] = r.Program.VertexMain(r.Globals, v, instance)
		}
		for i := 0; i+2 < len(indices); i += 3 {
			r.drawTriangle(fb, outs[indices[i]], outs[indices[i+1]], outs[indices[i+2]])
		}
	}
}

type screenVertex struct {
	x, y float32
	// NDC depth, already divided by w.
	z float32
	// 1/w for perspective-correct attribute interpolation.
	invW float32
	out  shading.VertexOutput
}

func (r *Rasterizer) drawTriangle(fb *Framebuffer, v0, v1, v2 shading.VertexOutput) {
	if v0.ClipPosition.W() <= 0 || v1.ClipPosition.W() <= 0 || v2.ClipPosition.W() <= 0 {
		return
	}
	s0 := toScreen(fb, v0)
	s1 := toScreen(fb, v1)
	s2 := toScreen(fb, v2)

	area := edge(s0, s1, s2)
	if area == 0 {
		return
	}

	minX := clampPixel(floor3(s0.x, s1.x, s2.x), 0, fb.Width-1)
	maxX := clampPixel(ceil3(s0.x, s1.x, s2.x), 0, fb.Width-1)
	minY := clampPixel(floor3(s0.y, s1.y, s2.y), 0, fb.Height-1)
	maxY := clampPixel(ceil3(s0.y, s1.y, s2.y), 0, fb.Height-1)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			p := screenVertex{x: float32(x) + 0.5, y: float32(y) + 0.5}
			w0 := edge(s1, s2, p) / area
			w1 := edge(s2, s0, p) / area
			w2 := edge(s0, s1, p) / area
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}

			// Reverse-Z: a fragment wins when it is closer, meaning a
			// larger depth value.
			z := w0*s0.z + w1*s1.z + w2*s2.z
			if z < 0 || z > 1 {
				continue
			}
			idx := y*fb.Width + x
			if z <= fb.depth[idx] {
				continue
			}

			frag := interpolate(s0, s1, s2, w0, w1, w2)
			fb.depth[idx] = z
			fb.color[idx] = r.Program.FragmentMain(r.Globals, frag, r.Texture, r.Sampler, r.Shadow)
		}
	}
}

func toScreen(fb *Framebuffer, v shading.VertexOutput) screenVertex {
	invW := 1 / v.ClipPosition.W()
	ndc := v.ClipPosition.Vec3().Mul(invW)
	return screenVertex{
		x:    (ndc.X()*0.5 + 0.5) * float32(fb.Width),
		y:    (-ndc.Y()*0.5 + 0.5) * float32(fb.Height),
		z:    ndc.Z(),
		invW: invW,
		out:  v,
	}
}

func edge(a, b, c screenVertex) float32 {
	return (b.x-a.x)*(c.y-a.y) - (b.y-a.y)*(c.x-a.x)
}

// interpolate builds the fragment input with perspective-correct
// attributes. The flat material index comes from the first vertex of the
// triangle.
func interpolate(s0, s1, s2 screenVertex, w0, w1, w2 float32) shading.VertexOutput {
	p0 := w0 * s0.invW
	p1 := w1 * s1.invW
	p2 := w2 * s2.invW
	norm := 1 / (p0 + p1 + p2)
	p0 *= norm
	p1 *= norm
	p2 *= norm

	lerp := func(a, b, c float32) float32 {
		return p0*a + p1*b + p2*c
	}
	lerpVec3 := func(a, b, c mgl32.Vec3) mgl32.Vec3 {
		return a.Mul(p0).Add(b.Mul(p1)).Add(c.Mul(p2))
	}

	return shading.VertexOutput{
		MaterialIndex: s0.out.MaterialIndex,
		Color:         lerpVec3(s0.out.Color, s1.out.Color, s2.out.Color),
		Normal:        lerpVec3(s0.out.Normal, s1.out.Normal, s2.out.Normal),
		UV: mgl32.Vec2{
			lerp(s0.out.UV.X(), s1.out.UV.X(), s2.out.UV.X()),
			lerp(s0.out.UV.Y(), s1.out.UV.Y(), s2.out.UV.Y()),
		},
		WorldPosition: lerpVec3(s0.out.WorldPosition, s1.out.WorldPosition, s2.out.WorldPosition),
		Occlusion:     lerp(s0.out.Occlusion, s1.out.Occlusion, s2.out.Occlusion),
	}
}

func floor3(a, b, c float32) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return int(m)
}

func ceil3(a, b, c float32) int {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return int(m + 1)
}

func clampPixel(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
