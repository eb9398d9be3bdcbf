package main

type cursor string

const (
	cursorAuto     cursor = "auto"
	cursorGrab     cursor = "grab"
	cursorGrabbing cursor = "grabbing"
	cursorProgress cursor = "progress"
)

// cursorFor returns the canvas cursor for the pointer state.
func cursorFor(interaction, dragging, hover bool) cursor {
	switch {
	case !interaction:
		return cursorAuto
	case dragging:
		return cursorGrabbing
	case hover:
		return cursorGrab
	}
	return cursorAuto
}
