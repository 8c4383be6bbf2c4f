// Package render draws a game scene onto any surface that can blit sprite handles.
// Frontends supply the surface and a resource lookup; the scene pass is shared.
package render

import (
	"fmt"

	"github.com/vovakirdan/crossing/internal/assets"
	"github.com/vovakirdan/crossing/internal/entity"
)

// Surface is a drawing target for handles of type H.
type Surface[H any] interface {
	Clear()
	DrawImage(h H, x, y float64)
	Width() int
	Height() int
}

// Resources looks up loaded sprite handles by id.
type Resources[H any] interface {
	Get(id string) (H, bool)
}

// Tile sprite identifiers.
const (
	SpriteWater = "water-block"
	SpriteStone = "stone-block"
	SpriteGrass = "grass-block"
)

// Background grid geometry, in canvas pixels.
const (
	TileWidth  = 101
	TileHeight = 83
	Rows       = 6
	Cols       = 5
)

// Top row is water, then three rows of stone, then two of grass.
var rowSprites = [Rows]string{
	SpriteWater,
	SpriteStone,
	SpriteStone,
	SpriteStone,
	SpriteGrass,
	SpriteGrass,
}

// RowSprite returns the tile sprite of background row row.
func RowSprite(row int) string {
	return rowSprites[row]
}

// Sprites lists every resource a scene needs, in load order.
func Sprites() []string {
	return []string{
		SpriteStone,
		SpriteWater,
		SpriteGrass,
		entity.SpriteEnemy,
		entity.SpritePlayer,
	}
}

// DrawScene clears dst and draws the background grid, then every entity in order.
// Entities are drawn at their top-left position; callers pass obstacles before the player.
func DrawScene[H any](dst Surface[H], res Resources[H], entities []entity.Entity) error {
	dst.Clear()

	for row := range Rows {
		tile, err := lookup(res, rowSprites[row])
		if err != nil {
			return err
		}
		for col := range Cols {
			dst.DrawImage(tile, float64(col*TileWidth), float64(row*TileHeight))
		}
	}

	for _, e := range entities {
		h, err := lookup(res, e.SpriteID())
		if err != nil {
			return err
		}
		pos := e.Position()
		dst.DrawImage(h, pos.X, pos.Y)
	}
	return nil
}

func lookup[H any](res Resources[H], id string) (H, error) {
	h, ok := res.Get(id)
	if !ok {
		return h, fmt.Errorf("render: %w: %q", assets.ErrUnknownResource, id)
	}
	return h, nil
}
