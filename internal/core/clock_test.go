package core

import (
	"testing"
	"time"
)

type fakeTime struct {
	t time.Time
}

func (f *fakeTime) now() time.Time { return f.t }

func (f *fakeTime) advance(d time.Duration) { f.t = f.t.Add(d) }

func TestClockTicks(t *testing.T) {
	ft := &fakeTime{t: time.Unix(1000, 0)}
	c := NewClockWith(ft.now)

	if got := c.Ticks(); got != 0 {
		t.Errorf("Ticks() = %d, expected 0", got)
	}

	ft.advance(1500 * time.Millisecond)
	if got := c.Ticks(); got != 1500 {
		t.Errorf("Ticks() = %d, expected 1500", got)
	}
}

func TestClockPauseSubtractsPausedTime(t *testing.T) {
	ft := &fakeTime{t: time.Unix(1000, 0)}
	c := NewClockWith(ft.now)

	ft.advance(time.Second)
	c.Pause()
	ft.advance(5 * time.Second)

	if got := c.Ticks(); got != 1000 {
		t.Errorf("Ticks() while paused = %d, expected 1000", got)
	}
	if !c.Paused() {
		t.Error("Paused() should be true")
	}
	if got := c.PausedFor(); got != 5*time.Second {
		t.Errorf("PausedFor() = %v, expected 5s", got)
	}

	c.Resume()
	ft.advance(250 * time.Millisecond)
	if got := c.Ticks(); got != 1250 {
		t.Errorf("Ticks() after resume = %d, expected 1250", got)
	}
}

func TestClockToggle(t *testing.T) {
	ft := &fakeTime{t: time.Unix(0, 0)}
	c := NewClockWith(ft.now)

	if !c.Toggle() {
		t.Error("first Toggle() should pause")
	}
	if c.Toggle() {
		t.Error("second Toggle() should resume")
	}
}

func TestClockNeverDecreases(t *testing.T) {
	ft := &fakeTime{t: time.Unix(1000, 0)}
	c := NewClockWith(ft.now)

	ft.advance(time.Second)
	first := c.Ticks()

	// Wall clock stepping backwards must not move the ticker back.
	ft.advance(-500 * time.Millisecond)
	if got := c.Ticks(); got < first {
		t.Errorf("Ticks() = %d, went below %d", got, first)
	}
}
