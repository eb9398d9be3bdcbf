package motion

import (
	"math"

	"github.com/seqsense/pcgol/mat"
)

const (
	wiggleAmpX = 0.02
	wiggleAmpY = 0.05
	wiggleAmpZ = 0.03

	wiggleFreqY = 0.8
	wiggleFreqZ = 1.2

	parallaxPitch = 0.2
	parallaxYaw   = 0.4
	parallaxRoll  = 0.1
	parallaxShift = 2.0
)

// Transform is a position and Euler rotation (Y-X-Z order) pair used as
// an offset or a target relative to the base pose.
type Transform struct {
	Position mat.Vec3
	Rotation mat.Vec3
}

// Offset returns the procedural offset of the mode at effective animation
// time t. Parallax is pointer driven and has no time based offset.
func Offset(m Mode, t float64, p Params) Transform {
	switch m {
	case AutoRotate:
		return Transform{
			Rotation: mat.Vec3{0, float32(math.Mod(float64(p.RotationSpeed)*t, 2*math.Pi)), 0},
		}
	case BounceWiggle:
		ws := float64(p.WiggleSpeed)
		wi := float64(p.WiggleIntensity)
		return Transform{
			Position: mat.Vec3{
				0,
				float32(math.Sin(t*float64(p.BounceSpeed)) * float64(p.BounceHeight)),
				0,
			},
			Rotation: mat.Vec3{
				float32(math.Sin(t*ws) * wiggleAmpX * wi),
				float32(math.Sin(t*wiggleFreqY*ws) * wiggleAmpY * wi),
				float32(math.Sin(t*wiggleFreqZ*ws) * wiggleAmpZ * wi),
			},
		}
	}
	return Transform{}
}

// ParallaxTarget returns the target offset for a normalized pointer
// position (px, py), both in [-1, 1].
func ParallaxTarget(px, py float32) Transform {
	return Transform{
		Position: mat.Vec3{px * parallaxShift, py * parallaxShift, 0},
		Rotation: mat.Vec3{-py * parallaxPitch, px * parallaxYaw, px * parallaxRoll},
	}
}
