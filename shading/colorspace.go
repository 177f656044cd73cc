package shading

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// RGBToHSV converts a linear RGB triple to hue/saturation/value using the
// max/min/delta formulation. Hue is in radians in [0, 2*pi). Achromatic
// and pure-black inputs both report hue 0; there is no NaN path.
func RGBToHSV(rgb mgl32.Vec3) (h, s, v float32) {
	r, g, b := rgb.X(), rgb.Y(), rgb.Z()
	maxComp := max32(r, max32(g, b))
	minComp := min32(r, min32(g, b))
	delta := maxComp - minComp

	v = maxComp
	if maxComp == 0 {
		return 0, 0, 0
	}
	s = delta / maxComp
	if delta == 0 {
		return 0, 0, v
	}

	var sextant float32
	switch maxComp {
	case r:
		sextant = floorMod((g-b)/delta, 6)
	case g:
		sextant = (b-r)/delta + 2
	default:
		sextant = (r-g)/delta + 4
	}
	h = sextant / 6 * (2 * math.Pi)
	return h, s, v
}

// HSVToRGB converts back with the sector-based algorithm: hue is reduced
// to degrees in [0, 360) (floor modulo, so arbitrarily large or negative
// hues are fine) and resolved through six 60-degree-wide cases.
func HSVToRGB(h, s, v float32) mgl32.Vec3 {
	hueDeg := floorMod(h*(180/math.Pi), 360)
	c := v * s
	hp := hueDeg / 60
	x := c * (1 - abs32(floorMod(hp, 2)-1))

	var rgb mgl32.Vec3
	switch {
	case hp < 1:
		rgb = mgl32.Vec3{c, x, 0}
	case hp < 2:
		rgb = mgl32.Vec3{x, c, 0}
	case hp < 3:
		rgb = mgl32.Vec3{0, c, x}
	case hp < 4:
		rgb = mgl32.Vec3{0, x, c}
	case hp < 5:
		rgb = mgl32.Vec3{x, 0, c}
	default:
		rgb = mgl32.Vec3{c, 0, x}
	}
	m := v - c
	return mgl32.Vec3{rgb.X() + m, rgb.Y() + m, rgb.Z() + m}
}

// CycleHue rotates the hue of a color by seconds radians. The hue grows
// without bound; wrap-around is handled by HSVToRGB's modulo reduction,
// making the animation periodic in 2*pi seconds.
func CycleHue(rgb mgl32.Vec3, seconds float32) mgl32.Vec3 {
	h, s, v := RGBToHSV(rgb)
	return HSVToRGB(h+seconds, s, v)
}

// floorMod reduces x into [0, m) for positive m, unlike math.Mod which
// keeps the sign of x.
func floorMod(x, m float32) float32 {
	r := float32(math.Mod(float64(x), float64(m)))
	if r < 0 {
		r += m
	}
	return r
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func abs32(a float32) float32 {
	if a < 0 {
		return -a
	}
	return a
}
