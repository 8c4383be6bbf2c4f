package tui

import (
	"context"
	"fmt"

	"github.com/vovakirdan/crossing/internal/assets"
	"github.com/vovakirdan/crossing/internal/core"
	"github.com/vovakirdan/crossing/internal/entity"
	"github.com/vovakirdan/crossing/internal/render"
)

// Sprite images are 101x171 with transparent padding; offsets locate the visible part.
var glyphs = map[string]Glyph{
	render.SpriteWater: {Fill: '~', Color: core.ColorBlue, OffY: 50, Width: 101, Height: 83},
	render.SpriteStone: {Fill: '░', Color: core.ColorGray, OffY: 50, Width: 101, Height: 83},
	render.SpriteGrass: {Fill: '"', Color: core.ColorGreen, OffY: 50, Width: 101, Height: 83},
	entity.SpriteEnemy: {Fill: '█', Color: core.ColorRed, Label: "bug", OffY: 77, Width: 101, Height: 67},
	entity.SpritePlayer: {
		Fill: '█', Color: core.ColorBrightYellow, Label: "@",
		OffX: 17, OffY: 63, Width: 67, Height: 77,
	},
}

// LoadGlyph is the asset loader of the terminal frontend.
func LoadGlyph(_ context.Context, id string) (Glyph, error) {
	g, ok := glyphs[id]
	if !ok {
		return Glyph{}, fmt.Errorf("%w: %q", assets.ErrUnknownResource, id)
	}
	return g, nil
}
