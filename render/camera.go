package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// FlyingCamera is a free camera with yaw/pitch mouse look and WASD
// movement. Angles are in degrees.
type FlyingCamera struct {
	Position    mgl32.Vec3
	Yaw         float32
	Pitch       float32
	Speed       float32
	Sensitivity float32
}

func NewFlyingCamera(position mgl32.Vec3) *FlyingCamera {
	return &FlyingCamera{
		Position:    position,
		Speed:       8.0,
		Sensitivity: 0.1,
	}
}

// CameraInput is one frame of movement intent in camera-local axes:
// X right, Y up, Z forward. LookX/LookY are cursor deltas in pixels.
type CameraInput struct {
	Move  mgl32.Vec3
	LookX float32
	LookY float32
}

// Update advances the camera by one frame.
func (c *FlyingCamera) Update(input CameraInput, dt float32) {
	if dt <= 0 {
		return
	}
	c.Yaw += input.LookX * c.Sensitivity
	c.Pitch -= input.LookY * c.Sensitivity
	if c.Pitch > 89.0 {
		c.Pitch = 89.0
	}
	if c.Pitch < -89.0 {
		c.Pitch = -89.0
	}

	forward := c.Forward()
	right := forward.Cross(mgl32.Vec3{0, 1, 0}).Normalize()
	up := mgl32.Vec3{0, 1, 0}

	moveDir := right.Mul(input.Move.X()).
		Add(up.Mul(input.Move.Y())).
		Add(forward.Mul(input.Move.Z()))
	if moveDir.Len() > 0 {
		c.Position = c.Position.Add(moveDir.Normalize().Mul(c.Speed * dt))
	}
}

// Forward returns the unit look direction.
func (c *FlyingCamera) Forward() mgl32.Vec3 {
	yawRad := mgl32.DegToRad(c.Yaw)
	pitchRad := mgl32.DegToRad(c.Pitch)
	return mgl32.Vec3{
		float32(math.Sin(float64(yawRad)) * math.Cos(float64(pitchRad))),
		float32(math.Sin(float64(pitchRad))),
		float32(-math.Cos(float64(yawRad)) * math.Cos(float64(pitchRad))),
	}.Normalize()
}

// ViewMatrix returns the world-to-view transform.
func (c *FlyingCamera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Forward()), mgl32.Vec3{0, 1, 0})
}

// ReverseZPerspective builds an infinite-far perspective projection with
// reversed depth: the near plane maps to depth 1 and depth falls toward
// 0 at infinity. Pairs with a Greater depth test and a clear value of 0.
func ReverseZPerspective(fovyDegrees, aspect, near float32) mgl32.Mat4 {
	f := 1 / float32(math.Tan(float64(mgl32.DegToRad(fovyDegrees))/2))
	var m mgl32.Mat4
	m.SetCol(0, mgl32.Vec4{f / aspect, 0, 0, 0})
	m.SetCol(1, mgl32.Vec4{0, f, 0, 0})
	m.SetCol(2, mgl32.Vec4{0, 0, 0, -1})
	m.SetCol(3, mgl32.Vec4{0, 0, near, 0})
	return m
}

// ReverseZOrtho builds an orthographic projection with reversed depth:
// the near plane maps to 1 and the far plane to 0.
func ReverseZOrtho(left, right, bottom, top, near, far float32) mgl32.Mat4 {
	var m mgl32.Mat4
	m.SetCol(0, mgl32.Vec4{2 / (right - left), 0, 0, 0})
	m.SetCol(1, mgl32.Vec4{0, 2 / (top - bottom), 0, 0})
	m.SetCol(2, mgl32.Vec4{0, 0, 1 / (far - near), 0})
	m.SetCol(3, mgl32.Vec4{
		-(right + left) / (right - left),
		-(top + bottom) / (top - bottom),
		far / (far - near),
		1,
	})
	return m
}

// SunProjection builds the shadow-pass matrix for a directional light:
// an orthographic reverse-Z volume of the given half-extent, centered on
// a point, looking along the light direction.
func SunProjection(center, lightDirection mgl32.Vec3, halfExtent, depthRange float32) mgl32.Mat4 {
	eye := center.Sub(lightDirection.Mul(depthRange / 2))
	up := mgl32.Vec3{0, 1, 0}
	if abs(lightDirection.Y()) > 0.99 {
		up = mgl32.Vec3{0, 0, 1}
	}
	view := mgl32.LookAtV(eye, center, up)
	proj := ReverseZOrtho(-halfExtent, halfExtent, -halfExtent, halfExtent, 0, depthRange)
	return proj.Mul4(view)
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
