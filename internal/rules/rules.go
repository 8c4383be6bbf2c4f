// Package rules is the geometry and rules engine of the game: movement bound checks,
// canvas exit detection, hit-box overlap, key-code mapping and randomized spawn parameters.
// Everything except the Spawner is a pure function of its arguments and the held bounds.
package rules

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/crossing/internal/config"
	"github.com/vovakirdan/crossing/internal/core"
)

// ErrInvalidDirection is the contract violation raised when a bound check
// receives a direction outside its axis. It is delivered through a panic.
var ErrInvalidDirection = errors.New("rules: invalid direction")

// Browser key codes for the arrow keys. Frontends translate their own key events to these.
const (
	KeyLeft  = 37
	KeyUp    = 38
	KeyRight = 39
	KeyDown  = 40
)

var keyDirections = map[int]core.Direction{
	KeyLeft:  core.DirLeft,
	KeyUp:    core.DirUp,
	KeyRight: core.DirRight,
	KeyDown:  core.DirDown,
}

// Engine holds the playable-area bounds and the fixed player and hit-box geometry.
type Engine struct {
	canvasW float64
	canvasH float64
	playerW float64
	playerH float64
	stepX   float64
	stepY   float64
	hitBox  float64
}

// NewEngine creates an engine for the given tuning.
func NewEngine(cfg config.Config) *Engine {
	return &Engine{
		canvasW: float64(cfg.Canvas.Width),
		canvasH: float64(cfg.Canvas.Height),
		playerW: float64(cfg.Player.Width),
		playerH: float64(cfg.Player.Height),
		stepX:   cfg.Player.StepX,
		stepY:   cfg.Player.StepY,
		hitBox:  cfg.Collision.HitBox,
	}
}

// StepX returns the horizontal distance of one player move.
func (e *Engine) StepX() float64 { return e.stepX }

// StepY returns the vertical distance of one player move.
func (e *Engine) StepY() float64 { return e.stepY }

// CanMoveX reports whether one step from currentX in dir keeps the player
// inside [0, canvasWidth-playerWidth]. dir must be left or right.
func (e *Engine) CanMoveX(currentX float64, dir core.Direction) bool {
	var x float64
	switch dir {
	case core.DirLeft:
		x = currentX - e.stepX
	case core.DirRight:
		x = currentX + e.stepX
	default:
		panic(fmt.Errorf("%w: %s is not horizontal", ErrInvalidDirection, dir))
	}
	return x >= 0 && x <= e.canvasW-e.playerW
}

// CanMoveY reports whether one step from currentY in dir keeps the player
// inside [0, canvasHeight-playerHeight]. dir must be up or down.
func (e *Engine) CanMoveY(currentY float64, dir core.Direction) bool {
	var y float64
	switch dir {
	case core.DirUp:
		y = currentY - e.stepY
	case core.DirDown:
		y = currentY + e.stepY
	default:
		panic(fmt.Errorf("%w: %s is not vertical", ErrInvalidDirection, dir))
	}
	return y >= 0 && y <= e.canvasH-e.playerH
}

// IsOutsideCanvas reports whether an obstacle at x has left through the right edge.
func (e *Engine) IsOutsideCanvas(x float64) bool {
	return x > e.canvasW
}

// Intersects tests the obstacle and player hit-boxes for overlap.
// The comparison is deliberately asymmetric: an obstacle whose right edge touches the
// player's left edge does not collide, but one whose left edge touches the player's
// right edge does. Collision tie-breaks depend on this exact form.
func (e *Engine) Intersects(obstacle, player core.Vec2) bool {
	o := core.Box{Pos: obstacle, W: e.hitBox, H: e.hitBox}
	p := core.Box{Pos: player, W: e.hitBox, H: e.hitBox}
	return !(o.Right() <= p.Left() ||
		o.Left() > p.Right() ||
		o.Bottom() <= p.Top() ||
		o.Top() > p.Bottom())
}

// DirectionForKey maps an arrow key code to a direction.
// Unmapped codes return core.DirNone, which callers treat as a no-op.
func DirectionForKey(code int) core.Direction {
	return keyDirections[code]
}
