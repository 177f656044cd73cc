package shading

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Scalar and vector blend helpers shared by the interpolation, fog and
// composition paths.

func mix(a, b, t float32) float32 {
	return a + (b-a)*t
}

func mixVec3(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
