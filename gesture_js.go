package main

import (
	"syscall/js"

	webgl "github.com/seqsense/webgl-go"
)

func pointerOf(e webgl.PointerEvent) pointer {
	return pointer{
		id:      e.PointerId,
		x:       e.OffsetX,
		y:       e.OffsetY,
		primary: e.IsPrimary,
	}
}

func capturePointer(canvas js.Value, id int) {
	canvas.Call("setPointerCapture", id)
}

// releasePointer is a no-op for pointers which are not captured.
func releasePointer(canvas js.Value, id int) {
	if canvas.Call("hasPointerCapture", id).Bool() {
		canvas.Call("releasePointerCapture", id)
	}
}
