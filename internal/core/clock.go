package core

import "time"

// Clock produces the simulation ticker: milliseconds elapsed since the clock
// was started, with paused intervals subtracted. The ticker never decreases.
type Clock struct {
	now         func() time.Time
	start       time.Time
	pausedTotal time.Duration
	pauseStart  time.Time
	paused      bool
	last        uint64
}

// NewClock starts a clock reading the wall time.
func NewClock() *Clock {
	return NewClockWith(time.Now)
}

// NewClockWith starts a clock reading time from now. Tests pass a fake source.
func NewClockWith(now func() time.Time) *Clock {
	return &Clock{
		now:   now,
		start: now(),
	}
}

// Ticks returns the pause-adjusted ticker in milliseconds.
func (c *Clock) Ticks() uint64 {
	ref := c.now()
	if c.paused {
		ref = c.pauseStart
	}

	elapsed := ref.Sub(c.start) - c.pausedTotal
	if elapsed < 0 {
		elapsed = 0
	}

	ticks := uint64(elapsed / time.Millisecond)
	if ticks < c.last {
		return c.last
	}
	c.last = ticks
	return ticks
}

// Pause freezes the ticker. Pausing twice has no effect.
func (c *Clock) Pause() {
	if c.paused {
		return
	}
	c.paused = true
	c.pauseStart = c.now()
}

// Resume continues the ticker from where it was paused.
func (c *Clock) Resume() {
	if !c.paused {
		return
	}
	c.pausedTotal += c.now().Sub(c.pauseStart)
	c.pauseStart = time.Time{}
	c.paused = false
}

// Toggle flips the pause state and returns the new state.
func (c *Clock) Toggle() bool {
	if c.paused {
		c.Resume()
	} else {
		c.Pause()
	}
	return c.paused
}

// Paused reports whether the clock is paused.
func (c *Clock) Paused() bool {
	return c.paused
}

// PausedFor returns the total time spent paused, including a pause in progress.
func (c *Clock) PausedFor() time.Duration {
	total := c.pausedTotal
	if c.paused {
		total += c.now().Sub(c.pauseStart)
	}
	return total
}
