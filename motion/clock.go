package motion

// Clock tracks the monotonic elapsed time and the time origin of the
// current animation.
type Clock struct {
	elapsed float64
	offset  float64
}

// Tick sets the elapsed time in seconds.
func (c *Clock) Tick(elapsed float64) {
	c.elapsed = elapsed
}

// Restart makes the animation start over from phase zero at the current
// elapsed time.
func (c *Clock) Restart() {
	c.offset = c.elapsed
}

// Elapsed returns the last ticked time.
func (c *Clock) Elapsed() float64 {
	return c.elapsed
}

// Time returns the effective animation time. It is never negative.
func (c *Clock) Time() float64 {
	if t := c.elapsed - c.offset; t > 0 {
		return t
	}
	return 0
}
