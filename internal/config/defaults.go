package config

import (
	_ "embed"
)

//go:embed defaults/crossing.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in tuning.
// It matches defaults/crossing.yaml and is used when the embedded file cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Canvas: CanvasConfig{
			Width:  505,
			Height: 606,
		},
		Player: PlayerConfig{
			Width:  101,
			Height: 171,
			StartX: 200,
			StartY: 380,
			StepX:  100,
			StepY:  83,
		},
		Enemies: EnemyConfig{
			Count:        10,
			DefaultX:     -101,
			DefaultY:     60,
			DefaultSpeed: 100,
			MinSpeed:     100,
			MaxSpeed:     300,
			SpawnMinX:    -1000,
			SpawnMaxX:    -100,
		},
		Collision: CollisionConfig{
			HitBox: 60,
		},
		Scoring: ScoringConfig{
			LapPoints: 100,
		},
	}
}

// DefaultYAML returns the embedded default config file.
func DefaultYAML() []byte {
	return defaultYAML
}
