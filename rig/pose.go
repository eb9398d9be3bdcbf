// Package rig composes the phone model transform and the camera pose of
// the configurator each frame: procedural animation, drag rotation,
// captured default poses and snap-back.
package rig

import (
	"math"

	"github.com/seqsense/pcgol/mat"
)

// Pose is a model transform. Rotation holds Euler angles applied in
// Y-X-Z order.
type Pose struct {
	Position mat.Vec3
	Rotation mat.Vec3
}

// CameraPose is a camera position and the point it looks at.
type CameraPose struct {
	Position mat.Vec3
	Target   mat.Vec3
}

// UserRotation is the pitch (X) and yaw (Y) accumulated from dragging.
type UserRotation struct {
	X, Y float32
}

// Norm returns the magnitude of the rotation offset.
func (r UserRotation) Norm() float32 {
	return float32(math.Hypot(float64(r.X), float64(r.Y)))
}

func lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

func lerpVec3(a, b mat.Vec3, t float32) mat.Vec3 {
	return mat.Vec3{
		lerp(a[0], b[0], t),
		lerp(a[1], b[1], t),
		lerp(a[2], b[2], t),
	}
}

func copyPose(p *Pose) *Pose {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}

func copyCameraPose(p *CameraPose) *CameraPose {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}

func samePose(a, b *Pose) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
