package softrender

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/voxshade/voxshade/shading"
)

// UnitQuad returns the canonical block-face mesh: a quad spanning
// (0,0,0) to (1,1,0), facing +Z, with UVs matching the positions.
// Instance matrices orient and place it on block faces.
func UnitQuad(color mgl32.Vec3) ([]shading.Vertex, []uint32) {
	normal := mgl32.Vec3{0, 0, 1}
	vertices := []shading.Vertex{
		{Position: mgl32.Vec3{0, 0, 0}, Normal: normal, Color: color, UV: mgl32.Vec2{0, 0}},
		{Position: mgl32.Vec3{1, 0, 0}, Normal: normal, Color: color, UV: mgl32.Vec2{1, 0}},
		{Position: mgl32.Vec3{1, 1, 0}, Normal: normal, Color: color, UV: mgl32.Vec2{1, 1}},
		{Position: mgl32.Vec3{0, 1, 0}, Normal: normal, Color: color, UV: mgl32.Vec2{0, 1}},
	}
	indices := []uint32{0, 1, 2, 0, 2, 3}
	return vertices, indices
}
