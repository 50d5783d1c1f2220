package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Renderer draws UI onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Clear blanks the whole screen.
func (r *Renderer) Clear() { r.screen.Clear() }

// Show flushes pending drawing to the terminal.
func (r *Renderer) Show() { r.screen.Show() }

// fill paints the rectangle [x0,x1)×[y0,y1) with blanks in style.
func (r *Renderer) fill(x0, y0, x1, y1 int, style tcell.Style) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			r.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

func (r *Renderer) drawHLine(x0, x1, y int, style tcell.Style) {
	for x := x0; x < x1; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

// drawText writes text starting at column x, stopping before column limit.
// It returns the column after the last cell written.
func (r *Renderer) drawText(x, y, limit int, text string, style tcell.Style) int {
	col := x
	for _, ch := range text {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		if col+w > limit {
			break
		}
		r.screen.SetContent(col, y, ch, nil, style)
		col += w
	}
	return col
}

// putGlyph draws a single glyph (ASCII or multi-rune emoji) at (x, y) and
// returns the number of columns it occupies.
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) int {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return 0
	}
	mainc := runes[0]
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	r.screen.SetContent(x, y, mainc, combc, style)
	width := runewidth.StringWidth(glyph)
	if width >= 2 {
		// Fill the second column to avoid rendering artifacts.
		r.screen.SetContent(x+1, y, ' ', nil, style)
		return 2
	}
	return 1
}
