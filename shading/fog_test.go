package shading

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestFogZeroDensity(t *testing.T) {
	g := &Globals{FogColor: mgl32.Vec3{0.5, 0.6, 0.7}}
	color := mgl32.Vec4{0.2, 0.3, 0.4, 1}
	got := ApplyFog(g, color, mgl32.Vec3{100, 0, 0})
	if got != color {
		t.Errorf("fog with density 0 changed color: %v", got)
	}
}

func TestFogZeroDistance(t *testing.T) {
	g := &Globals{
		CameraPosition: mgl32.Vec3{3, 4, 5},
		FogColor:       mgl32.Vec3{1, 1, 1},
		FogB:           0.8,
	}
	if got := FogAmount(g, g.CameraPosition); got != 0 {
		t.Errorf("fog amount at camera = %v, want 0", got)
	}
}

func TestFogApproachesFogColor(t *testing.T) {
	g := &Globals{
		FogColor: mgl32.Vec3{0.7, 0.8, 0.9},
		FogB:     0.5,
	}
	color := mgl32.Vec4{0, 0, 0, 1}
	got := ApplyFog(g, color, mgl32.Vec3{1e4, 0, 0})
	for i := 0; i < 3; i++ {
		if diff := got[i] - g.FogColor[i]; diff > 1e-4 || diff < -1e-4 {
			t.Errorf("channel %d = %v, want near %v", i, got[i], g.FogColor[i])
		}
	}
	if got.W() != 1 {
		t.Errorf("alpha changed: %v", got.W())
	}
}

func TestFogMonotonicInDistance(t *testing.T) {
	g := &Globals{FogB: 0.1}
	prev := float32(-1)
	for d := float32(0); d <= 64; d += 4 {
		amount := FogAmount(g, mgl32.Vec3{d, 0, 0})
		if amount < prev {
			t.Fatalf("fog amount decreased at distance %v: %v < %v", d, amount, prev)
		}
		if amount < 0 || amount > 1 {
			t.Fatalf("fog amount out of range at distance %v: %v", d, amount)
		}
		prev = amount
	}
}
