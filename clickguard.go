package main

import (
	"time"
)

const (
	clickGuardDuration = 100 * time.Millisecond
	doubleTapInterval  = 300 * time.Millisecond

	// Pointer travel in pixels below which a press still counts as a tap.
	tapSlop = 5
)

// clickGuard tells taps from drags. A release right after dragging the
// model is not a tap.
type clickGuard struct {
	deadline time.Time
	moved    bool
	x0, y0   int

	lastTap time.Time
}

func (c *clickGuard) Move(x, y int) {
	dx, dy := x-c.x0, y-c.y0
	if dx*dx+dy*dy > tapSlop*tapSlop {
		c.moved = true
	}
}

func (c *clickGuard) DragStart(x, y int) {
	c.moved = false
	c.x0, c.y0 = x, y
}

func (c *clickGuard) DragEnd(now time.Time) {
	c.deadline = now.Add(clickGuardDuration)
}

func (c *clickGuard) Click(now time.Time) bool {
	return c.deadline.IsZero() || !c.moved || c.deadline.Before(now)
}

// DoubleTap returns true on the second tap within doubleTapInterval.
func (c *clickGuard) DoubleTap(now time.Time) bool {
	if !c.Click(now) {
		c.lastTap = time.Time{}
		return false
	}
	if !c.lastTap.IsZero() && now.Sub(c.lastTap) <= doubleTapInterval {
		c.lastTap = time.Time{}
		return true
	}
	c.lastTap = now
	return false
}
