package core

import "testing"

func TestScreenCanvasFillRectScales(t *testing.T) {
	// 800x600 world on an 80x24 screen: 10 units per column, 25 per row.
	s := NewScreen(80, 24)
	c := NewScreenCanvas(s, 800, 600)

	c.FillRect(100, 50, 80, 25, ColorRed)

	for y := 2; y < 3; y++ {
		for x := 10; x < 18; x++ {
			if cell := s.GetCell(x, y); cell.Rune != FillGlyph || cell.Color != ColorRed {
				t.Errorf("expected red fill at (%d, %d), got %+v", x, y, cell)
			}
		}
	}
	if s.Get(9, 2) != ' ' || s.Get(18, 2) != ' ' {
		t.Error("FillRect painted outside the scaled rectangle")
	}
	if s.Get(10, 1) != ' ' || s.Get(10, 3) != ' ' {
		t.Error("FillRect painted outside the scaled rectangle rows")
	}
}

func TestScreenCanvasThinRectPaintsOneCell(t *testing.T) {
	s := NewScreen(80, 24)
	c := NewScreenCanvas(s, 800, 600)

	c.FillRect(55, 60, 0, 0, ColorBlue)

	if s.Get(5, 2) != FillGlyph {
		t.Errorf("expected a single cell at (5, 2), got %q", s.Get(5, 2))
	}
}

func TestScreenCanvasText(t *testing.T) {
	s := NewScreen(80, 24)
	c := NewScreenCanvas(s, 800, 600)
	font := Font{Name: "mono", Advance: 0.5, LineHeight: 1}

	w, h := c.MeasureText("score: 10", font, 20)
	if w != 90 || h != 20 {
		t.Errorf("MeasureText() = (%v, %v), expected (90, 20)", w, h)
	}

	c.DrawText("hi", 300, 100, font, 20, ColorWhite)
	if s.Get(30, 4) != 'h' || s.Get(31, 4) != 'i' {
		t.Errorf("DrawText placed text at wrong cell, row 4 = %q", s.Row(4))
	}
}

func TestScreenCanvasClearAndBounds(t *testing.T) {
	s := NewScreen(4, 4)
	s.Fill('x', ColorRed)
	c := NewScreenCanvas(s, 40, 40)

	c.ClearBackground(ColorWhite)
	if got := s.GetCell(2, 2); got != (Cell{Rune: ' ', Color: ColorDefault}) {
		t.Errorf("ClearBackground should blank every cell, got %+v", got)
	}
	if s.Background() != ColorWhite {
		t.Errorf("Background() = %v, expected white", s.Background())
	}

	if w, h := c.Bounds(); w != 40 || h != 40 {
		t.Errorf("Bounds() = (%v, %v), expected (40, 40)", w, h)
	}
}
