//go:build ebiten

package window

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"github.com/vovakirdan/crossing/internal/core"
	"github.com/vovakirdan/crossing/internal/game"
)

var (
	scoreColor  = color.RGBA{R: 20, G: 20, B: 20, A: 255}
	panelColor  = color.RGBA{R: 30, G: 30, B: 40, A: 240}
	buttonColor = color.RGBA{R: 230, G: 70, B: 140, A: 255}
	titleColor  = color.RGBA{R: 255, G: 90, B: 90, A: 255}
)

// hud shows the score line and the game-over dialog.
type hud struct {
	score  int
	over   bool
	rounds int
}

func (h *hud) ScoreChanged(score int) { h.score = score }
func (h *hud) GameOver() { h.over = true }

func (h *hud) GameReset() {
	h.over = false
	h.rounds++
}

// button returns the Play Again button rectangle for a w x h canvas.
func (h *hud) button(w, ht int) core.Rect {
	return core.NewRect(w/2-60, ht/2+10, 120, 30)
}

func (h *hud) draw(screen *ebiten.Image, face font.Face) {
	text.Draw(screen, fmt.Sprintf("Score: %d", h.score), face, 8, 30, scoreColor)
	if !h.over {
		return
	}

	w, ht := screen.Bounds().Dx(), screen.Bounds().Dy()

	panel := core.NewRect(w/2-110, ht/2-70, 220, 130)
	fillRect(screen, panel.X, panel.Y, panel.W, panel.H, panelColor)
	drawCentered(screen, "GAME OVER", face, w/2, panel.Y+30, titleColor)
	drawCentered(screen, fmt.Sprintf("Score: %d", h.score), face, w/2, panel.Y+55, color.White)

	b := h.button(w, ht)
	fillRect(screen, b.X, b.Y, b.W, b.H, buttonColor)
	drawCentered(screen, "Play Again", face, w/2, b.Y+20, color.White)
}

func drawCentered(dst *ebiten.Image, s string, face font.Face, cx, y int, c color.Color) {
	bounds := text.BoundString(face, s)
	text.Draw(dst, s, face, cx-bounds.Dx()/2, y, c)
}

var _ game.Observer = (*hud)(nil)
