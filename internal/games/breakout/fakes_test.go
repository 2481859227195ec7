package breakout

import (
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// drawCall is one recorded Canvas operation.
type drawCall struct {
	op    string // "clear", "rect" or "text"
	text  string
	x, y  float64
	w, h  float64
	color core.Color
}

// recordCanvas records draw calls instead of painting.
type recordCanvas struct {
	w, h  float64
	calls []drawCall
}

func newRecordCanvas(w, h float64) *recordCanvas {
	return &recordCanvas{w: w, h: h}
}

func (c *recordCanvas) ClearBackground(col core.Color) {
	c.calls = append(c.calls, drawCall{op: "clear", color: col})
}

func (c *recordCanvas) FillRect(x, y, w, h float64, col core.Color) {
	c.calls = append(c.calls, drawCall{op: "rect", x: x, y: y, w: w, h: h, color: col})
}

func (c *recordCanvas) DrawText(text string, x, y float64, _ core.Font, _ float64, col core.Color) {
	c.calls = append(c.calls, drawCall{op: "text", text: text, x: x, y: y, color: col})
}

func (c *recordCanvas) MeasureText(text string, font core.Font, size float64) (float64, float64) {
	return core.MeasureText(text, font, size)
}

func (c *recordCanvas) Bounds() (float64, float64) {
	return c.w, c.h
}

// texts returns every text drawn, in order.
func (c *recordCanvas) texts() []drawCall {
	var out []drawCall
	for _, call := range c.calls {
		if call.op == "text" {
			out = append(out, call)
		}
	}
	return out
}

// newTestGame builds a game from cfg, already reset into the menu phase.
func newTestGame(t *testing.T, cfg config.BreakoutConfig, seed int64) *Game {
	t.Helper()
	g := NewWithConfig(cfg)
	g.Reset(core.RuntimeConfig{Seed: seed})
	if g.Phase() != StateMenu {
		t.Fatalf("new game phase = %s, expected %s", g.Phase(), StateMenu)
	}
	return g
}

// newPlayingGame builds a game and presses Start once.
func newPlayingGame(t *testing.T, cfg config.BreakoutConfig) *Game {
	t.Helper()
	g := newTestGame(t, cfg, 42)
	g.Step(frame(core.ActionStart), 0)
	if g.Phase() != StatePlaying {
		t.Fatalf("phase after Start = %s, expected %s", g.Phase(), StatePlaying)
	}
	return g
}

// frame builds an input frame with the given actions set.
func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// ballAt creates a ball with a fixed velocity.
func ballAt(x, y, size float64, vel core.Vec2) *Ball {
	return &Ball{Rect: core.NewRect(x, y, size, size), Vel: vel}
}

// farBlock is a block no test ball comes near; it keeps the round from being won.
func farBlock() *Block {
	return NewBlock(core.V(650, 200), core.V(80, 32), 2, BlockPlain)
}
