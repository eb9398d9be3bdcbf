package rig

import (
	"github.com/seqsense/pcgol/mat"

	"github.com/seqsense/phonemockup/motion"
)

// ParallaxSmoothing is the per frame factor used to chase the parallax
// target.
const ParallaxSmoothing = 0.1

// Blender composes the base pose, the procedural offset and the user
// rotation into the model transform.
type Blender struct {
	current Pose
}

// Blend computes the transform of the frame and stores it as current.
// (px, py) is the normalized pointer position used by parallax.
func (b *Blender) Blend(m motion.Mode, t float64, p motion.Params, base Pose, user UserRotation, px, py float32) Pose {
	userRot := mat.Vec3{user.X, user.Y, 0}

	if m.Smoothed() {
		off := motion.ParallaxTarget(px, py)
		pos := base.Position.Add(off.Position)
		rot := base.Rotation.Add(off.Rotation).Add(userRot)

		b.current = Pose{
			Position: mat.Vec3{
				lerp(b.current.Position[0], pos[0], ParallaxSmoothing),
				lerp(b.current.Position[1], pos[1], ParallaxSmoothing),
				base.Position[2],
			},
			Rotation: lerpVec3(b.current.Rotation, rot, ParallaxSmoothing),
		}
		return b.current
	}

	off := motion.Offset(m, t, p)
	b.current = Pose{
		Position: base.Position.Add(off.Position),
		Rotation: base.Rotation.Add(off.Rotation).Add(userRot),
	}
	return b.current
}

// Current returns the last blended transform.
func (b *Blender) Current() Pose {
	return b.current
}
