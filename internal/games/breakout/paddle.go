package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// PaddleColor is the fill color of the player's paddle.
const PaddleColor = core.ColorBlue

// Paddle is the player-controlled bar at the bottom of the screen.
type Paddle struct {
	Rect  core.Rect
	Speed float64 // Units per second
}

// NewPaddle creates a paddle centered horizontally, bottomOffset above the
// bottom edge of the screen.
func NewPaddle(screenW, screenH float64, cfg config.BreakoutPaddle) *Paddle {
	return &Paddle{
		Rect: core.NewRect(
			screenW*0.5-cfg.Width*0.5,
			screenH-cfg.BottomOffset,
			cfg.Width,
			cfg.Height,
		),
		Speed: cfg.Speed,
	}
}

// Update moves the paddle when exactly one direction is held and keeps it
// inside [0, screenW-width].
func (p *Paddle) Update(dt float64, left, right bool, screenW float64) {
	var dir float64
	switch {
	case left && !right:
		dir = -1
	case right && !left:
		dir = 1
	}

	p.Rect.X += dir * p.Speed * dt
	p.Rect.X = core.ClampF(p.Rect.X, 0, screenW-p.Rect.W)
}

// CenterX returns the horizontal center of the paddle.
func (p *Paddle) CenterX() float64 {
	return p.Rect.Center().X
}

// Draw renders the paddle.
func (p *Paddle) Draw(c core.Canvas) {
	c.FillRect(p.Rect.X, p.Rect.Y, p.Rect.W, p.Rect.H, PaddleColor)
}
