//go:build ebiten

package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/crossing/internal/render"
)

// imageSurface blits sprites onto the frame Ebitengine hands to Draw.
type imageSurface struct {
	target *ebiten.Image
}

// Clear paints the page background behind the tiles.
func (s *imageSurface) Clear() {
	s.target.Fill(color.White)
}

func (s *imageSurface) DrawImage(h *ebiten.Image, x, y float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	s.target.DrawImage(h, op)
}

func (s *imageSurface) Width() int { return s.target.Bounds().Dx() }
func (s *imageSurface) Height() int { return s.target.Bounds().Dy() }

var _ render.Surface[*ebiten.Image] = (*imageSurface)(nil)
