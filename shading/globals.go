package shading

import (
	"github.com/go-gl/mathgl/mgl32"
)

// RenderMode selects between the lit render and the shadow-NDC debug views.
// Modes 1-3 visualize one axis of the shadow-space NDC as a red-to-green
// gradient instead of running the lighting pipeline.
type RenderMode uint32

const (
	RenderModeLit  RenderMode = 0
	RenderModeNDCX RenderMode = 1
	RenderModeNDCY RenderMode = 2
	RenderModeNDCZ RenderMode = 3
)

// Globals is the uniform block shared by every vertex and fragment
// invocation of a draw call. It is immutable for the duration of the call.
type Globals struct {
	TimeSeconds float32

	// WorldToClip is the camera view-projection matrix.
	WorldToClip mgl32.Mat4

	CameraPosition mgl32.Vec3

	// Linear RGB intensities, unbounded above zero.
	AmbientLight     mgl32.Vec3
	DirectionalLight mgl32.Vec3

	// DirectionalLightDirection points from the surface toward the light.
	// Callers must hand in a unit vector; it is never renormalized here.
	DirectionalLightDirection mgl32.Vec3

	FogColor mgl32.Vec3

	// FogB is the exponential fog density. Negative values invert the fog
	// and are not guarded against.
	FogB float32

	// ShadowMapProjection transforms world space into shadow clip space.
	// It is produced by the shadow pass and consumed as-is.
	ShadowMapProjection mgl32.Mat4

	NDCDisplayMode RenderMode
}
