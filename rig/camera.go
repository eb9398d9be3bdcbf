package rig

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/seqsense/pcgol/mat"
)

const (
	// SettleDelay is the time in seconds after the last camera interaction
	// before camera snap-back starts.
	SettleDelay = 0.15

	// CameraSnapFactor is the per frame interpolation factor of camera
	// snap-back.
	CameraSnapFactor = 0.08

	DefaultFOV         = 45
	DefaultMinDistance = 50
	DefaultMaxDistance = 500

	degenerateLength = 1e-6
)

// DefaultCameraPose is the camera placement used before any pose is captured.
var DefaultCameraPose = CameraPose{
	Position: mat.Vec3{0, 0, 275},
}

// CameraRigOption is a functional option for configuring a CameraRig via
// NewCameraRig.
type CameraRigOption func(*CameraRig)

// WithCameraPose sets the initial camera pose.
func WithCameraPose(p CameraPose) CameraRigOption {
	return func(c *CameraRig) {
		c.pose = p
	}
}

// WithDistanceBounds sets the range the user can zoom within.
func WithDistanceBounds(min, max float32) CameraRigOption {
	return func(c *CameraRig) {
		c.minDistance, c.maxDistance = min, max
	}
}

// CameraRig tracks the orbit camera and pulls it back to a captured default
// pose when the user stops interacting.
//
// Snap-back interpolates the target linearly, but slerps the viewing
// direction and lerps the distance separately so that the camera orbits
// back instead of cutting through the model.
type CameraRig struct {
	pose CameraPose
	dir  mgl32.Vec3

	interacting bool
	lastEnd     float64

	minDistance, maxDistance float32
}

// NewCameraRig creates a CameraRig placed at DefaultCameraPose.
func NewCameraRig(options ...CameraRigOption) *CameraRig {
	c := &CameraRig{
		pose:        DefaultCameraPose,
		dir:         mgl32.Vec3{0, 0, 1},
		minDistance: DefaultMinDistance,
		maxDistance: DefaultMaxDistance,
	}
	for _, o := range options {
		o(c)
	}
	if d := c.offset(); d.Len() > degenerateLength {
		c.dir = d.Normalize()
	}
	return c
}

func (c *CameraRig) offset() mgl32.Vec3 {
	return mgl32.Vec3(c.pose.Position.Sub(c.pose.Target))
}

// BeginInteraction marks the start of a user camera interaction.
func (c *CameraRig) BeginInteraction() {
	c.interacting = true
}

// EndInteraction marks the end of a user camera interaction at the given
// time.
func (c *CameraRig) EndInteraction(elapsed float64) {
	if !c.interacting {
		return
	}
	c.interacting = false
	c.lastEnd = elapsed
}

// Interacting returns true while the user is moving the camera.
func (c *CameraRig) Interacting() bool {
	return c.interacting
}

// Zoom scales the camera distance from the target, clamped to the distance
// bounds.
func (c *CameraRig) Zoom(scale float32) {
	off := c.offset()
	l := off.Len()
	if l <= degenerateLength {
		return
	}
	d := l * scale
	switch {
	case d < c.minDistance:
		d = c.minDistance
	case d > c.maxDistance:
		d = c.maxDistance
	}
	c.dir = off.Mul(1 / l)
	c.pose.Position = c.pose.Target.Add(mat.Vec3(c.dir.Mul(d)))
}

// Pose returns the current camera pose.
func (c *CameraRig) Pose() CameraPose {
	return c.pose
}

// SetPose moves the camera.
func (c *CameraRig) SetPose(p CameraPose) {
	c.pose = p
	if d := c.offset(); d.Len() > degenerateLength {
		c.dir = d.Normalize()
	}
}

// Distance returns the distance between the camera and its target.
func (c *CameraRig) Distance() float32 {
	return c.offset().Len()
}

// Update runs one snap-back step towards def. It returns false if the
// camera was left untouched, either because snap-back is off, no default is
// captured, the user is interacting or the settle delay has not elapsed.
func (c *CameraRig) Update(elapsed float64, snapBack bool, def *CameraPose) bool {
	if !snapBack || def == nil || c.interacting {
		return false
	}
	if elapsed-c.lastEnd <= SettleDelay {
		return false
	}

	target := lerpVec3(c.pose.Target, def.Target, CameraSnapFactor)

	cur := mgl32.Vec3(c.pose.Position.Sub(target))
	want := mgl32.Vec3(def.Position.Sub(def.Target))
	curLen, wantLen := cur.Len(), want.Len()

	// Hold the last valid direction when either offset degenerates.
	dir := c.dir
	if curLen > degenerateLength {
		dir = cur.Mul(1 / curLen)
		if wantLen > degenerateLength {
			q := mgl32.QuatBetweenVectors(dir, want.Mul(1/wantLen))
			dir = mgl32.QuatSlerp(mgl32.QuatIdent(), q, CameraSnapFactor).Rotate(dir).Normalize()
		}
	}
	c.dir = dir

	dist := lerp(curLen, wantLen, CameraSnapFactor)
	c.pose = CameraPose{
		Position: target.Add(mat.Vec3(dir.Mul(dist))),
		Target:   target,
	}
	return true
}

// ViewMatrix returns the view transform of the current pose.
func (c *CameraRig) ViewMatrix() mat.Mat4 {
	up := mgl32.Vec3{0, 1, 0}
	if d := c.offset(); d.Len() > degenerateLength && d.Normalize().Cross(up).Len() < degenerateLength {
		up = mgl32.Vec3{0, 0, -1}
	}
	return mat.Mat4(mgl32.LookAtV(
		mgl32.Vec3(c.pose.Position),
		mgl32.Vec3(c.pose.Target),
		up,
	))
}

// ProjectionMatrix returns a perspective transform with DefaultFOV for the
// given aspect ratio.
func ProjectionMatrix(aspect, near, far float32) mat.Mat4 {
	return mat.Mat4(mgl32.Perspective(mgl32.DegToRad(DefaultFOV), aspect, near, far))
}
