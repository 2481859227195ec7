package core

import (
	"math"
	"unicode/utf8"
)

// Canvas is the rendering collaborator games draw into.
// All coordinates and sizes are world units.
type Canvas interface {
	// ClearBackground fills the whole canvas with a color.
	ClearBackground(c Color)

	// FillRect draws a filled rectangle.
	FillRect(x, y, w, h float64, c Color)

	// DrawText draws text with its top-left corner at (x, y).
	DrawText(text string, x, y float64, font Font, size float64, c Color)

	// MeasureText returns the width and height text would occupy.
	MeasureText(text string, font Font, size float64) (w, h float64)

	// Bounds returns the canvas size.
	Bounds() (w, h float64)
}

// FillGlyph is the rune used to paint filled rectangles.
const FillGlyph = '█'

// ScreenCanvas implements Canvas on top of a character Screen.
// World coordinates are scaled to cells so the whole world fits the screen.
type ScreenCanvas struct {
	screen *Screen
	worldW float64
	worldH float64
}

// NewScreenCanvas creates a canvas mapping a worldW x worldH world onto screen.
func NewScreenCanvas(screen *Screen, worldW, worldH float64) *ScreenCanvas {
	return &ScreenCanvas{
		screen: screen,
		worldW: worldW,
		worldH: worldH,
	}
}

// Screen returns the underlying cell buffer.
func (c *ScreenCanvas) Screen() *Screen {
	return c.screen
}

// cellX converts a world x coordinate to fractional columns.
func (c *ScreenCanvas) cellX(x float64) float64 {
	if c.worldW <= 0 {
		return 0
	}
	return x * float64(c.screen.Width()) / c.worldW
}

// cellY converts a world y coordinate to fractional rows.
func (c *ScreenCanvas) cellY(y float64) float64 {
	if c.worldH <= 0 {
		return 0
	}
	return y * float64(c.screen.Height()) / c.worldH
}

// ToCell converts a world position to a cell position.
func (c *ScreenCanvas) ToCell(x, y float64) (int, int) {
	return int(math.Floor(c.cellX(x))), int(math.Floor(c.cellY(y)))
}

// ClearBackground blanks every cell and sets the screen background.
func (c *ScreenCanvas) ClearBackground(col Color) {
	c.screen.Fill(' ', ColorDefault)
	c.screen.SetBackground(col)
}

// FillRect paints every cell the rectangle touches.
// Rectangles thinner than a cell still paint one cell.
func (c *ScreenCanvas) FillRect(x, y, w, h float64, col Color) {
	x0 := int(math.Floor(c.cellX(x)))
	y0 := int(math.Floor(c.cellY(y)))
	x1 := int(math.Ceil(c.cellX(x + w)))
	y1 := int(math.Ceil(c.cellY(y + h)))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	c.screen.DrawRect(x0, y0, x1-x0, y1-y0, FillGlyph, col)
}

// DrawText writes text starting at the cell containing (x, y).
// Terminal glyphs have a fixed size, so font and size only affect measurement.
func (c *ScreenCanvas) DrawText(text string, x, y float64, _ Font, _ float64, col Color) {
	cx, cy := c.ToCell(x, y)
	c.screen.DrawText(cx, cy, text, col)
}

// MeasureText returns the size of text according to the font metrics.
func (c *ScreenCanvas) MeasureText(text string, font Font, size float64) (float64, float64) {
	return MeasureText(text, font, size)
}

// SetWorld changes the world size mapped onto the screen.
func (c *ScreenCanvas) SetWorld(w, h float64) {
	c.worldW, c.worldH = w, h
}

// Bounds returns the world size.
func (c *ScreenCanvas) Bounds() (float64, float64) {
	return c.worldW, c.worldH
}

// MeasureText computes text extents from font metrics.
func MeasureText(text string, font Font, size float64) (float64, float64) {
	n := float64(utf8.RuneCountInString(text))
	return n * size * font.Advance, size * font.LineHeight
}
