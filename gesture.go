package main

import (
	"math"
)

type gestureMode int

const (
	gestureNone gestureMode = iota
	gestureDrag
	gesturePinch
)

type pointer struct {
	id      int
	x, y    int
	primary bool
}

// gesture turns pointer events into model drags and pinch zooms. A single
// pointer drags the model, two pointers zoom the camera.
type gesture struct {
	pointers map[int]pointer

	// onDragStart returns false if the pointer does not grab the model.
	onDragStart  func(x, y int) bool
	onDrag       func(x, y int)
	onDragEnd    func()
	onPinchStart func()
	// onPinch receives the camera distance factor since the last call.
	onPinch    func(scale float32)
	onPinchEnd func()
	// onTap is called when a single pointer is released without pinching.
	onTap func(x, y int)

	mode      gestureMode
	distance0 float64
	pinched   bool
}

func newGesture() *gesture {
	return &gesture{pointers: make(map[int]pointer)}
}

func (g *gesture) distance() float64 {
	var pp []pointer
	for _, p := range g.pointers {
		pp = append(pp, p)
	}
	if len(pp) != 2 {
		return 0
	}
	return math.Hypot(float64(pp[0].x-pp[1].x), float64(pp[0].y-pp[1].y))
}

// Grabbed returns true while the pressed pointers drag the model or zoom
// the camera.
func (g *gesture) Grabbed() bool {
	return g.mode != gestureNone
}

// Active returns true while any pointer is pressed.
func (g *gesture) Active() bool {
	return len(g.pointers) > 0
}

func (g *gesture) pointerDown(p pointer) {
	g.pointers[p.id] = p

	switch len(g.pointers) {
	case 1:
		g.pinched = false
		if g.onDragStart(p.x, p.y) {
			g.mode = gestureDrag
		} else {
			g.mode = gestureNone
		}
	case 2:
		if g.mode == gestureDrag {
			g.onDragEnd()
		}
		g.distance0 = g.distance()
		g.onPinchStart()
		g.mode = gesturePinch
		g.pinched = true
	}
}

func (g *gesture) pointerMove(p pointer) {
	if _, ok := g.pointers[p.id]; !ok {
		return
	}
	g.pointers[p.id] = p

	switch g.mode {
	case gestureDrag:
		if p.primary {
			g.onDrag(p.x, p.y)
		}
	case gesturePinch:
		d := g.distance()
		if d > 0 && g.distance0 > 0 {
			g.onPinch(float32(g.distance0 / d))
		}
		g.distance0 = d
	}
}

func (g *gesture) pointerUp(p pointer) {
	if _, ok := g.pointers[p.id]; !ok {
		return
	}
	delete(g.pointers, p.id)

	switch g.mode {
	case gestureDrag:
		g.onDragEnd()
		g.mode = gestureNone
	case gesturePinch:
		if len(g.pointers) < 2 {
			g.onPinchEnd()
			g.mode = gestureNone
		}
	}
	if len(g.pointers) == 0 && !g.pinched {
		g.onTap(p.x, p.y)
	}
}

// cancel forgets all pointers and returns the interrupted mode. A pinch
// is ended, a drag is left for the caller to finish.
func (g *gesture) cancel() gestureMode {
	mode := g.mode
	if mode == gesturePinch {
		g.onPinchEnd()
	}
	g.pointers = make(map[int]pointer)
	g.mode = gestureNone
	return mode
}
