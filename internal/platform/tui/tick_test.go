package tui

import (
	"testing"
	"time"
)

func TestFrameClock(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c := newFrameClock(0.1)

	if dt := c.Delta(base); dt != 0 {
		t.Errorf("first Delta() = %v, expected 0", dt)
	}
	if dt := c.Delta(base.Add(16 * time.Millisecond)); dt != 0.016 {
		t.Errorf("Delta() = %v, expected 0.016", dt)
	}

	// A stall is clamped.
	if dt := c.Delta(base.Add(2 * time.Second)); dt != 0.1 {
		t.Errorf("stalled Delta() = %v, expected 0.1", dt)
	}

	// Clock going backwards yields zero.
	if dt := c.Delta(base); dt != 0 {
		t.Errorf("backwards Delta() = %v, expected 0", dt)
	}

	c.Reset()
	if dt := c.Delta(base.Add(time.Hour)); dt != 0 {
		t.Errorf("Delta() after Reset() = %v, expected 0", dt)
	}
}

func TestFrameClockUnclamped(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c := newFrameClock(0)

	c.Delta(base)
	if dt := c.Delta(base.Add(time.Second)); dt != 1 {
		t.Errorf("Delta() = %v, expected 1", dt)
	}
}
