package shading

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestPackInstanceData(t *testing.T) {
	ao := [4]uint8{1, 2, 3, 4}
	data := PackInstanceData(ao, 42)

	if got := MaterialIndex(data); got != 42 {
		t.Errorf("material index = %d, want 42", got)
	}
	for i, want := range ao {
		if got := AOCornerWeight(data, i); got != uint32(want) {
			t.Errorf("corner %d weight = %d, want %d", i, got, want)
		}
	}
}

func TestPackInstanceDataBitWidths(t *testing.T) {
	// Each corner occupies exactly 3 bits; weight 7 must not bleed into
	// its neighbor, and the material starts at bit 12.
	data := PackInstanceData([4]uint8{7, 0, 7, 0}, 0xFFFFF)
	if got := AOCornerWeight(data, 1); got != 0 {
		t.Errorf("corner 1 = %d, want 0", got)
	}
	if got := AOCornerWeight(data, 3); got != 0 {
		t.Errorf("corner 3 = %d, want 0", got)
	}
	if got := MaterialIndex(data); got != 0xFFFFF {
		t.Errorf("material index = %#x, want 0xFFFFF", got)
	}
	if data&0xFFF != 0b000_111_000_111 {
		t.Errorf("low bits = %#b", data&0xFFF)
	}
}

func TestAmbientOcclusionFactor(t *testing.T) {
	if got := AmbientOcclusionFactor(0); got != 1 {
		t.Errorf("factor(0) = %v, want 1", got)
	}
	prev := float32(2)
	for w := uint32(0); w <= 7; w++ {
		f := AmbientOcclusionFactor(w)
		if f <= 0 || f >= prev {
			t.Errorf("factor(%d) = %v, not strictly decreasing in (0, 1]", w, f)
		}
		prev = f
	}
	want := float32(math.Exp(-2.0))
	if got := AmbientOcclusionFactor(4); math.Abs(float64(got-want)) > 1e-6 {
		t.Errorf("factor(4) = %v, want %v", got, want)
	}
}

func TestOcclusionAtCorners(t *testing.T) {
	ao := [4]uint8{0, 2, 4, 7}
	data := PackInstanceData(ao, 3)

	corners := []struct {
		uv     mgl32.Vec2
		corner int
	}{
		{mgl32.Vec2{0, 0}, 0},
		{mgl32.Vec2{1, 0}, 1},
		{mgl32.Vec2{0, 1}, 2},
		{mgl32.Vec2{1, 1}, 3},
	}
	for _, c := range corners {
		want := AmbientOcclusionFactor(uint32(ao[c.corner]))
		got := OcclusionAt(data, c.uv)
		if math.Abs(float64(got-want)) > 1e-7 {
			t.Errorf("occlusion at %v = %v, want corner %d factor %v", c.uv, got, c.corner, want)
		}
	}
}

func TestOcclusionAtCenterIsAverage(t *testing.T) {
	ao := [4]uint8{1, 2, 3, 5}
	data := PackInstanceData(ao, 0)

	sum := float32(0)
	for _, w := range ao {
		sum += AmbientOcclusionFactor(uint32(w))
	}
	want := sum / 4
	got := OcclusionAt(data, mgl32.Vec2{0.5, 0.5})
	if math.Abs(float64(got-want)) > 1e-6 {
		t.Errorf("center occlusion = %v, want average %v", got, want)
	}
}

func TestInstanceMatrixRoundTrip(t *testing.T) {
	m := mgl32.Translate3D(1, 2, 3).Mul4(mgl32.HomogRotate3DY(0.7))
	in := InstanceFromMatrix(m, 9)
	back := in.LocalToWorld()
	for i := range m {
		if m[i] != back[i] {
			t.Fatalf("matrix element %d: %v != %v", i, m[i], back[i])
		}
	}
}
