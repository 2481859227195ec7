// Package tui provides the Bubble Tea integration for the breakout game.
// It handles the terminal UI loop, input mapping, and round orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultTickRate is used when no frame rate is configured.
const DefaultTickRate = 60

// TickMsg is sent to trigger a simulation frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = DefaultTickRate
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameClock turns tick timestamps into frame deltas in seconds.
// The first tick yields 0 and every delta is clamped to maxDelta, so a
// stalled terminal never produces one huge simulation step.
type frameClock struct {
	last     time.Time
	maxDelta float64
}

func newFrameClock(maxDelta float64) *frameClock {
	return &frameClock{maxDelta: maxDelta}
}

// Delta returns the seconds elapsed since the previous call.
func (c *frameClock) Delta(now time.Time) float64 {
	if c.last.IsZero() {
		c.last = now
		return 0
	}

	dt := now.Sub(c.last).Seconds()
	c.last = now

	if dt < 0 {
		return 0
	}
	if c.maxDelta > 0 && dt > c.maxDelta {
		return c.maxDelta
	}
	return dt
}

// Reset forgets the previous tick so the next delta is 0.
func (c *frameClock) Reset() {
	c.last = time.Time{}
}
