package rig

const (
	PitchSensitivity = 0.005
	YawSensitivity   = 0.005
)

// DragTracker converts pointer drags into a user rotation offset.
// The offset is not clamped so the model can be spun freely.
type DragTracker struct {
	dragging bool
	x0, y0   float32
	lastEnd  float64

	rot UserRotation
}

// PointerDown starts dragging at the screen position (x, y). It returns
// false and does nothing if interaction is disabled; the caller should take
// the pointer capture only on true.
func (d *DragTracker) PointerDown(x, y float32, enabled bool) bool {
	if !enabled {
		return false
	}
	d.dragging = true
	d.x0, d.y0 = x, y
	return true
}

// PointerMove accumulates the movement since the last recorded position.
// Dragging down tilts the top of the model towards the viewer.
func (d *DragTracker) PointerMove(x, y float32) {
	if !d.dragging {
		return
	}
	d.rot.X += (y - d.y0) * PitchSensitivity
	d.rot.Y += (x - d.x0) * YawSensitivity
	d.x0, d.y0 = x, y
}

// PointerUp stops dragging. It is safe to call more than once; only the
// transition from dragging stamps the interaction end time.
func (d *DragTracker) PointerUp(elapsed float64) {
	if !d.dragging {
		return
	}
	d.dragging = false
	d.lastEnd = elapsed
}

// PointerLeave stops dragging when the pointer leaves the canvas.
func (d *DragTracker) PointerLeave(elapsed float64) {
	d.PointerUp(elapsed)
}

// Dragging returns true while a drag is in progress.
func (d *DragTracker) Dragging() bool {
	return d.dragging
}

// LastInteractionEnd returns the time the last drag ended.
func (d *DragTracker) LastInteractionEnd() float64 {
	return d.lastEnd
}

// Rotation returns the accumulated user rotation.
func (d *DragTracker) Rotation() UserRotation {
	return d.rot
}

// SetRotation overwrites the accumulated user rotation.
func (d *DragTracker) SetRotation(r UserRotation) {
	d.rot = r
}

// Reset zeroes the user rotation.
func (d *DragTracker) Reset() {
	d.rot = UserRotation{}
}
