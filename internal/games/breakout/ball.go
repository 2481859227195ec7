package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

// BallColor is the fill color of every ball.
const BallColor = core.ColorBlack

// Ball is a square projectile. Vel is a direction; the speed is applied
// by the round each frame.
type Ball struct {
	Rect core.Rect
	Vel  core.Vec2
}

// NewBall creates a ball at pos heading downwards with a random horizontal
// component.
func NewBall(pos core.Vec2, size float64, rng *SimpleRNG) *Ball {
	return &Ball{
		Rect: core.NewRect(pos.X, pos.Y, size, size),
		Vel:  core.V(rng.Range(-1, 1), 1).Normalize(),
	}
}

// Update moves the ball and bounces it off the left, right and top walls.
// Wall bounces set the component to exactly +-1; the bottom is open.
func (b *Ball) Update(dt, speed, screenW float64) {
	b.Rect.X += b.Vel.X * dt * speed
	b.Rect.Y += b.Vel.Y * dt * speed

	if b.Rect.X < 0 {
		b.Vel.X = 1
	}
	if b.Rect.X > screenW-b.Rect.W {
		b.Vel.X = -1
	}
	if b.Rect.Y < 0 {
		b.Vel.Y = 1
	}
}

// Draw renders the ball.
func (b *Ball) Draw(c core.Canvas) {
	c.FillRect(b.Rect.X, b.Rect.Y, b.Rect.W, b.Rect.H, BallColor)
}
