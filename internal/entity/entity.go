// Package entity holds the player and obstacle state.
// The two types share a read-only capability used by the renderer; their update paths
// are separate because the player is event-driven and obstacles are time-driven.
package entity

import (
	"github.com/vovakirdan/crossing/internal/config"
	"github.com/vovakirdan/crossing/internal/core"
	"github.com/vovakirdan/crossing/internal/rules"
)

// Sprite identifiers of the entities.
const (
	SpritePlayer = "char-boy"
	SpriteEnemy  = "enemy-bug"
)

// Entity is the read-only view a render pass needs.
type Entity interface {
	Position() core.Vec2
	SpriteID() string
}

// Player is the actor controlled by the keyboard.
type Player struct {
	pos    core.Vec2
	origin core.Vec2
	sprite string
}

// NewPlayer creates a player at the configured start position.
func NewPlayer(cfg config.Config) *Player {
	origin := core.Vec2{X: cfg.Player.StartX, Y: cfg.Player.StartY}
	return &Player{
		pos:    origin,
		origin: origin,
		sprite: SpritePlayer,
	}
}

// Position returns the top-left corner of the player sprite.
func (p *Player) Position() core.Vec2 { return p.pos }

// SpriteID returns the resource identifier of the player sprite.
func (p *Player) SpriteID() string { return p.sprite }

// SetPosition places the player at pos without bound checks.
func (p *Player) SetPosition(pos core.Vec2) { p.pos = pos }

// Reset snaps the player back to its start position.
func (p *Player) Reset() { p.pos = p.origin }

// AtStart reports whether the player is at its start position.
func (p *Player) AtStart() bool { return p.pos == p.origin }

// MoveInDirection moves one step in dir when the engine allows it.
// A blocked move or DirNone is discarded and reports false.
func (p *Player) MoveInDirection(dir core.Direction, eng *rules.Engine) bool {
	var delta core.Vec2
	switch {
	case dir.Horizontal():
		if !eng.CanMoveX(p.pos.X, dir) {
			return false
		}
		delta.X = eng.StepX()
		if dir == core.DirLeft {
			delta.X = -delta.X
		}
	case dir.Vertical():
		if !eng.CanMoveY(p.pos.Y, dir) {
			return false
		}
		delta.Y = eng.StepY()
		if dir == core.DirUp {
			delta.Y = -delta.Y
		}
	default:
		return false
	}
	p.pos = p.pos.Add(delta)
	return true
}

// Obstacle is an enemy moving right along a lane.
type Obstacle struct {
	pos    core.Vec2
	speed  float64 // px per second
	sprite string
}

// NewObstacle creates an obstacle at the configured default position and speed.
// Callers normally Respawn it immediately to randomize both.
func NewObstacle(cfg config.Config) *Obstacle {
	return &Obstacle{
		pos:    core.Vec2{X: cfg.Enemies.DefaultX, Y: cfg.Enemies.DefaultY},
		speed:  cfg.Enemies.DefaultSpeed,
		sprite: SpriteEnemy,
	}
}

// Position returns the top-left corner of the obstacle sprite.
func (o *Obstacle) Position() core.Vec2 { return o.pos }

// SpriteID returns the resource identifier of the obstacle sprite.
func (o *Obstacle) SpriteID() string { return o.sprite }

// Speed returns the horizontal speed in px per second.
func (o *Obstacle) Speed() float64 { return o.speed }

// SetPosition places the obstacle at pos.
func (o *Obstacle) SetPosition(pos core.Vec2) { o.pos = pos }

// SetSpeed sets the horizontal speed in px per second.
func (o *Obstacle) SetSpeed(speed float64) { o.speed = speed }

// Update advances the obstacle by speed*dt. dt is in seconds.
func (o *Obstacle) Update(dt float64) {
	o.pos.X += o.speed * dt
}

// Respawn recycles the obstacle with a fresh speed, off-screen x and lane.
func (o *Obstacle) Respawn(sp *rules.Spawner) {
	o.speed = sp.RandomSpeed()
	o.pos = core.Vec2{X: sp.RandomHorizontalSpawnX(), Y: sp.RandomLaneY()}
}

var (
	_ Entity = (*Player)(nil)
	_ Entity = (*Obstacle)(nil)
)
