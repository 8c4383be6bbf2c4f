package tui

import (
	"math"

	"github.com/vovakirdan/crossing/internal/core"
	"github.com/vovakirdan/crossing/internal/render"
)

// Glyph is the terminal stand-in for a sprite image: a filled block
// covering the opaque part of the sprite, with an optional centered label.
type Glyph struct {
	Fill   rune
	Color  core.Color
	Label  string
	OffX   float64 // Opaque area relative to the sprite origin, in canvas pixels
	OffY   float64
	Width  float64
	Height float64
}

// CellSurface draws glyphs onto a screen buffer, scaling canvas pixels to cells.
type CellSurface struct {
	screen  *core.Screen
	canvasW int
	canvasH int
}

// NewCellSurface creates a surface mapping a canvasW x canvasH pixel canvas onto screen.
func NewCellSurface(screen *core.Screen, canvasW, canvasH int) *CellSurface {
	return &CellSurface{
		screen:  screen,
		canvasW: canvasW,
		canvasH: canvasH,
	}
}

// Clear blanks the underlying screen.
func (s *CellSurface) Clear() {
	s.screen.Clear()
}

// Width returns the canvas width in pixels.
func (s *CellSurface) Width() int { return s.canvasW }

// Height returns the canvas height in pixels.
func (s *CellSurface) Height() int { return s.canvasH }

// DrawImage fills the cells covered by the glyph placed at canvas position (x, y).
// Anything outside the screen is clipped.
func (s *CellSurface) DrawImage(g Glyph, x, y float64) {
	r := s.cellRect(x+g.OffX, y+g.OffY, g.Width, g.Height)
	s.screen.FillRect(r, g.Fill, g.Color)

	if g.Label == "" || len([]rune(g.Label)) > r.W {
		return
	}
	lx := r.X + (r.W-len([]rune(g.Label)))/2
	ly := r.Y + r.H/2
	s.screen.DrawText(lx, ly, g.Label, g.Color)
}

// cellRect converts a pixel rectangle to the cells it covers, at least one cell in size.
func (s *CellSurface) cellRect(x, y, w, h float64) core.Rect {
	sx := float64(s.screen.Width()) / float64(s.canvasW)
	sy := float64(s.screen.Height()) / float64(s.canvasH)

	x0 := int(math.Floor(x * sx))
	y0 := int(math.Floor(y * sy))
	x1 := int(math.Floor((x + w) * sx))
	y1 := int(math.Floor((y + h) * sy))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

var _ render.Surface[Glyph] = (*CellSurface)(nil)
