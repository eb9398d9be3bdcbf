package rig

const (
	SnapBackFactor = 0.08

	snapBackEpsilon = 1e-6
)

// Decayed returns the rotation moved one snap-back step towards zero.
// Components smaller than the convergence epsilon become exactly zero.
func (r UserRotation) Decayed() UserRotation {
	return UserRotation{
		X: decay(r.X),
		Y: decay(r.Y),
	}
}

func decay(v float32) float32 {
	v = lerp(v, 0, SnapBackFactor)
	if -snapBackEpsilon < v && v < snapBackEpsilon {
		return 0
	}
	return v
}
