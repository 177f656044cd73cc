package render

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func ndcOf(m mgl32.Mat4, p mgl32.Vec3) mgl32.Vec3 {
	clip := m.Mul4x1(p.Vec4(1))
	return mgl32.Vec3{clip.X() / clip.W(), clip.Y() / clip.W(), clip.Z() / clip.W()}
}

func TestReverseZPerspectiveDepth(t *testing.T) {
	m := ReverseZPerspective(60, 16.0/9.0, 0.1)

	near := ndcOf(m, mgl32.Vec3{0, 0, -0.1})
	assert.InDelta(t, 1.0, near.Z(), 1e-6, "near plane maps to depth 1")

	far := ndcOf(m, mgl32.Vec3{0, 0, -1000})
	assert.InDelta(t, 0.0001, far.Z(), 1e-6, "depth falls toward 0 with distance")
	assert.Greater(t, near.Z(), far.Z())
}

func TestReverseZPerspectiveCenterline(t *testing.T) {
	m := ReverseZPerspective(90, 1, 0.1)
	ndc := ndcOf(m, mgl32.Vec3{0, 0, -5})
	assert.InDelta(t, 0.0, ndc.X(), 1e-6)
	assert.InDelta(t, 0.0, ndc.Y(), 1e-6)
}

func TestReverseZOrthoDepth(t *testing.T) {
	m := ReverseZOrtho(-10, 10, -10, 10, 0, 100)

	tests := []struct {
		name  string
		viewZ float32
		depth float32
	}{
		{"near plane", 0, 1},
		{"midpoint", -50, 0.5},
		{"far plane", -100, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ndc := ndcOf(m, mgl32.Vec3{0, 0, tt.viewZ})
			assert.InDelta(t, float64(tt.depth), float64(ndc.Z()), 1e-6)
		})
	}
}

func TestSunProjectionCentersTheVolume(t *testing.T) {
	center := mgl32.Vec3{16, 16, 16}
	lightTravel := mgl32.Vec3{-0.4, -0.8, -0.3}.Normalize()
	m := SunProjection(center, lightTravel, 48, 128)

	ndc := ndcOf(m, center)
	assert.InDelta(t, 0.0, ndc.X(), 1e-5)
	assert.InDelta(t, 0.0, ndc.Y(), 1e-5)
	assert.InDelta(t, 0.5, ndc.Z(), 1e-5, "center sits halfway through the depth range")
}

func TestSunProjectionHandlesVerticalLight(t *testing.T) {
	m := SunProjection(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, -1, 0}, 32, 64)
	ndc := ndcOf(m, mgl32.Vec3{0, 0, 0})
	assert.False(t, ndc.X() != ndc.X(), "straight-down light must not produce NaN")
	assert.InDelta(t, 0.5, ndc.Z(), 1e-5)
}

func TestFlyingCameraMovesAlongForward(t *testing.T) {
	camera := NewFlyingCamera(mgl32.Vec3{0, 0, 0})

	camera.Update(CameraInput{Move: mgl32.Vec3{0, 0, 1}}, 1)

	// Yaw 0 looks down -Z.
	assert.InDelta(t, 0.0, camera.Position.X(), 1e-5)
	assert.InDelta(t, 0.0, camera.Position.Y(), 1e-5)
	assert.InDelta(t, -float64(camera.Speed), camera.Position.Z(), 1e-4)
}

func TestFlyingCameraDiagonalSpeedIsNormalized(t *testing.T) {
	camera := NewFlyingCamera(mgl32.Vec3{0, 0, 0})

	camera.Update(CameraInput{Move: mgl32.Vec3{1, 0, 1}}, 1)

	assert.InDelta(t, float64(camera.Speed), camera.Position.Len(), 1e-4)
}

func TestFlyingCameraPitchClamp(t *testing.T) {
	camera := NewFlyingCamera(mgl32.Vec3{0, 0, 0})

	camera.Update(CameraInput{LookY: -10000}, 0.016)
	assert.InDelta(t, 89.0, camera.Pitch, 1e-5)

	camera.Update(CameraInput{LookY: 10000}, 0.016)
	assert.InDelta(t, -89.0, camera.Pitch, 1e-5)
}

func TestFlyingCameraIgnoresZeroDt(t *testing.T) {
	camera := NewFlyingCamera(mgl32.Vec3{1, 2, 3})
	camera.Update(CameraInput{Move: mgl32.Vec3{1, 1, 1}, LookX: 90}, 0)
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, camera.Position)
	assert.Zero(t, camera.Yaw)
}

func TestViewMatrixLooksAlongForward(t *testing.T) {
	camera := NewFlyingCamera(mgl32.Vec3{0, 0, 10})
	view := camera.ViewMatrix()

	// A point ahead of the camera lands on the -Z view axis.
	ahead := view.Mul4x1(mgl32.Vec4{0, 0, 5, 1})
	assert.InDelta(t, 0.0, ahead.X(), 1e-5)
	assert.InDelta(t, 0.0, ahead.Y(), 1e-5)
	assert.InDelta(t, -5.0, ahead.Z(), 1e-5)
}
