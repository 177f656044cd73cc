package world

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/voxshade/voxshade/shading"
)

// InstanceFromQuad converts a mesher quad into a render instance. The
// model matrix places the canonical +Z unit quad at the block position,
// rotated to face the quad's direction; the packed data word carries the
// corner occlusion weights and the block's material layer.
func InstanceFromQuad(q Quad) shading.Instance {
	translation := mgl32.Translate3D(
		float32(q.Pos[0]),
		float32(q.Pos[1]),
		float32(q.Pos[2]),
	)
	model := translation.Mul4(q.Normal.Orientation())
	if q.Width != 1 || q.Height != 1 {
		model = model.Mul4(mgl32.Scale3D(float32(q.Width), float32(q.Height), 1))
	}
	data := shading.PackInstanceData(q.AmbientOcclusion, q.Block.MaterialIndex())
	return shading.InstanceFromMatrix(model, data)
}

// InstancesFromQuads converts a whole mesh.
func InstancesFromQuads(quads []Quad) []shading.Instance {
	instances := make([]shading.Instance, len(quads))
	for i, q := range quads {
		instances[i] = InstanceFromQuad(q)
	}
	return instances
}
