// Package config provides YAML-based tuning for the crossing game:
// canvas and sprite geometry, player steps, enemy spawning and scoring.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config contains all tuning for a game session.
type Config struct {
	Canvas    CanvasConfig    `yaml:"canvas"`
	Player    PlayerConfig    `yaml:"player"`
	Enemies   EnemyConfig     `yaml:"enemies"`
	Collision CollisionConfig `yaml:"collision"`
	Scoring   ScoringConfig   `yaml:"scoring"`
}

// CanvasConfig is the size of the rendering surface in pixels.
// It also bounds the playable area.
type CanvasConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PlayerConfig defines the player sprite footprint, start position and move steps.
type PlayerConfig struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	StartX float64 `yaml:"start_x"`
	StartY float64 `yaml:"start_y"`
	StepX  float64 `yaml:"step_x"` // Horizontal step per key press
	StepY  float64 `yaml:"step_y"` // Vertical step per key press
}

// EnemyConfig defines obstacle count and the randomized respawn ranges.
type EnemyConfig struct {
	Count        int     `yaml:"count"`
	DefaultX     float64 `yaml:"default_x"`
	DefaultY     float64 `yaml:"default_y"`
	DefaultSpeed float64 `yaml:"default_speed"`
	MinSpeed     int     `yaml:"min_speed"` // px/s, inclusive
	MaxSpeed     int     `yaml:"max_speed"` // px/s, inclusive
	SpawnMinX    int     `yaml:"spawn_min_x"`
	SpawnMaxX    int     `yaml:"spawn_max_x"`
}

// CollisionConfig defines the square hit-box used for every entity.
type CollisionConfig struct {
	HitBox float64 `yaml:"hit_box"`
}

// ScoringConfig defines points awarded per crossing.
type ScoringConfig struct {
	LapPoints int `yaml:"lap_points"`
}

// Validate reports the first inconsistency in cfg.
func (c Config) Validate() error {
	switch {
	case c.Canvas.Width <= 0 || c.Canvas.Height <= 0:
		return fmt.Errorf("%w: canvas size %dx%d", ErrInvalid, c.Canvas.Width, c.Canvas.Height)
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return fmt.Errorf("%w: player size %dx%d", ErrInvalid, c.Player.Width, c.Player.Height)
	case c.Player.Width > c.Canvas.Width || c.Player.Height > c.Canvas.Height:
		return fmt.Errorf("%w: player does not fit the canvas", ErrInvalid)
	case c.Player.StartX < 0 || c.Player.StartX > float64(c.Canvas.Width-c.Player.Width) ||
		c.Player.StartY < 0 || c.Player.StartY > float64(c.Canvas.Height-c.Player.Height):
		return fmt.Errorf("%w: player start (%v, %v) outside the playable area", ErrInvalid, c.Player.StartX, c.Player.StartY)
	case c.Player.StepX <= 0 || c.Player.StepY <= 0:
		return fmt.Errorf("%w: player steps must be positive", ErrInvalid)
	case c.Enemies.Count <= 0:
		return fmt.Errorf("%w: enemy count %d", ErrInvalid, c.Enemies.Count)
	case c.Enemies.MinSpeed > c.Enemies.MaxSpeed:
		return fmt.Errorf("%w: speed range [%d, %d]", ErrInvalid, c.Enemies.MinSpeed, c.Enemies.MaxSpeed)
	case c.Enemies.SpawnMinX > c.Enemies.SpawnMaxX:
		return fmt.Errorf("%w: spawn range [%d, %d]", ErrInvalid, c.Enemies.SpawnMinX, c.Enemies.SpawnMaxX)
	case c.Enemies.SpawnMaxX >= 0:
		return fmt.Errorf("%w: spawn x %d is not left of the canvas", ErrInvalid, c.Enemies.SpawnMaxX)
	case c.Collision.HitBox <= 0:
		return fmt.Errorf("%w: hit box %v", ErrInvalid, c.Collision.HitBox)
	case c.Scoring.LapPoints < 0:
		return fmt.Errorf("%w: lap points %d", ErrInvalid, c.Scoring.LapPoints)
	}
	return nil
}
