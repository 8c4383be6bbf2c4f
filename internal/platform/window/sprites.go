//go:build ebiten

package window

import (
	"context"
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/crossing/internal/assets"
	"github.com/vovakirdan/crossing/internal/entity"
	"github.com/vovakirdan/crossing/internal/render"
)

// Every sprite uses the same 101x171 frame as the tile artwork,
// so entities and tiles line up at the same positions as the canvas game.
const (
	spriteW = 101
	spriteH = 171
)

var (
	waterTop   = color.RGBA{R: 66, G: 135, B: 245, A: 255}
	waterSide  = color.RGBA{R: 35, G: 90, B: 190, A: 255}
	stoneTop   = color.RGBA{R: 150, G: 150, B: 150, A: 255}
	stoneSide  = color.RGBA{R: 105, G: 105, B: 105, A: 255}
	grassTop   = color.RGBA{R: 96, G: 190, B: 80, A: 255}
	grassSide  = color.RGBA{R: 120, G: 85, B: 50, A: 255}
	bugBody    = color.RGBA{R: 200, G: 30, B: 30, A: 255}
	bugDark    = color.RGBA{R: 70, G: 10, B: 10, A: 255}
	playerSkin = color.RGBA{R: 250, G: 210, B: 160, A: 255}
	playerHair = color.RGBA{R: 90, G: 60, B: 30, A: 255}
	playerBody = color.RGBA{R: 60, G: 110, B: 200, A: 255}
	playerLegs = color.RGBA{R: 40, G: 40, B: 60, A: 255}
)

// LoadSprite draws the sprite for id procedurally.
func LoadSprite(_ context.Context, id string) (*ebiten.Image, error) {
	img := ebiten.NewImage(spriteW, spriteH)

	switch id {
	case render.SpriteWater:
		drawTile(img, waterTop, waterSide)
	case render.SpriteStone:
		drawTile(img, stoneTop, stoneSide)
	case render.SpriteGrass:
		drawTile(img, grassTop, grassSide)
	case entity.SpriteEnemy:
		fillRect(img, 4, 95, 93, 45, bugBody)
		fillRect(img, 80, 105, 17, 25, bugDark)
		fillRect(img, 86, 110, 4, 4, color.White)
		fillRect(img, 10, 140, 12, 6, bugDark)
		fillRect(img, 60, 140, 12, 6, bugDark)
	case entity.SpritePlayer:
		fillRect(img, 30, 63, 41, 10, playerHair)
		fillRect(img, 30, 73, 41, 27, playerSkin)
		fillRect(img, 38, 82, 6, 6, color.Black)
		fillRect(img, 57, 82, 6, 6, color.Black)
		fillRect(img, 25, 100, 51, 25, playerBody)
		fillRect(img, 32, 125, 14, 15, playerLegs)
		fillRect(img, 55, 125, 14, 15, playerLegs)
	default:
		img.Dispose()
		return nil, fmt.Errorf("%w: %q", assets.ErrUnknownResource, id)
	}
	return img, nil
}

// drawTile paints the block's top face and its front side.
func drawTile(img *ebiten.Image, top, side color.Color) {
	fillRect(img, 0, 50, spriteW, 83, top)
	fillRect(img, 0, 133, spriteW, 38, side)
}

func fillRect(dst *ebiten.Image, x, y, w, h int, c color.Color) {
	dst.SubImage(image.Rect(x, y, x+w, y+h)).(*ebiten.Image).Fill(c)
}
