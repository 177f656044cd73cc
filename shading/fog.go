package shading

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// FogAmount is the blend weight toward the fog color for a point at
// worldPos: 1 - exp(-distance * FogB). Zero at the camera, approaching 1
// as distance grows, monotonic in distance for positive FogB.
func FogAmount(g *Globals, worldPos mgl32.Vec3) float32 {
	d := g.CameraPosition.Sub(worldPos).Len()
	return 1 - float32(math.Exp(float64(-d*g.FogB)))
}

// ApplyFog blends the lit color toward the fog color by FogAmount.
// The alpha channel passes through unmodified.
func ApplyFog(g *Globals, color mgl32.Vec4, worldPos mgl32.Vec3) mgl32.Vec4 {
	t := FogAmount(g, worldPos)
	rgb := mixVec3(color.Vec3(), g.FogColor, t)
	return rgb.Vec4(color.W())
}
