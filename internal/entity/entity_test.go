package entity

import (
	"testing"

	"github.com/vovakirdan/crossing/internal/config"
	"github.com/vovakirdan/crossing/internal/core"
	"github.com/vovakirdan/crossing/internal/rules"
)

func TestPlayerStartsAtDefault(t *testing.T) {
	p := NewPlayer(config.DefaultConfig())

	if p.Position() != (core.Vec2{X: 200, Y: 380}) {
		t.Errorf("Position() = %+v, expected {200 380}", p.Position())
	}
	if p.SpriteID() != SpritePlayer {
		t.Errorf("SpriteID() = %q", p.SpriteID())
	}
}

func TestPlayerMoveSteps(t *testing.T) {
	cfg := config.DefaultConfig()
	eng := rules.NewEngine(cfg)

	tests := []struct {
		dir      core.Direction
		expected core.Vec2
	}{
		{core.DirLeft, core.Vec2{X: 100, Y: 380}},
		{core.DirRight, core.Vec2{X: 300, Y: 380}},
		{core.DirUp, core.Vec2{X: 200, Y: 297}},
	}

	for _, tc := range tests {
		t.Run(tc.dir.String(), func(t *testing.T) {
			p := NewPlayer(cfg)
			if !p.MoveInDirection(tc.dir, eng) {
				t.Fatalf("move %s should succeed from the start", tc.dir)
			}
			if p.Position() != tc.expected {
				t.Errorf("after %s: %+v, expected %+v", tc.dir, p.Position(), tc.expected)
			}
		})
	}
}

func TestPlayerBlockedMoveIsDiscarded(t *testing.T) {
	cfg := config.DefaultConfig()
	eng := rules.NewEngine(cfg)
	p := NewPlayer(cfg)

	// 380 + 83 exceeds the bottom bound
	if p.MoveInDirection(core.DirDown, eng) {
		t.Error("down from the start row should be blocked")
	}
	if !p.AtStart() {
		t.Errorf("blocked move changed position to %+v", p.Position())
	}

	if p.MoveInDirection(core.DirNone, eng) {
		t.Error("DirNone should not move")
	}
	if !p.AtStart() {
		t.Errorf("DirNone changed position to %+v", p.Position())
	}
}

func TestPlayerHorizontalClamp(t *testing.T) {
	cfg := config.DefaultConfig()
	eng := rules.NewEngine(cfg)
	maxX := float64(cfg.Canvas.Width - cfg.Player.Width)

	for _, dir := range []core.Direction{core.DirLeft, core.DirRight} {
		p := NewPlayer(cfg)
		for i := 0; i < 20; i++ {
			p.MoveInDirection(dir, eng)
			x := p.Position().X
			if x < 0 || x > maxX {
				t.Fatalf("after %d %s moves x = %v, outside [0, %v]", i+1, dir, x, maxX)
			}
		}
	}
}

func TestPlayerReset(t *testing.T) {
	cfg := config.DefaultConfig()
	p := NewPlayer(cfg)
	p.SetPosition(core.Vec2{X: 0, Y: 48})
	p.Reset()

	if !p.AtStart() {
		t.Errorf("Reset() left player at %+v", p.Position())
	}
}

func TestObstacleDefaults(t *testing.T) {
	o := NewObstacle(config.DefaultConfig())

	if o.Position() != (core.Vec2{X: -101, Y: 60}) {
		t.Errorf("Position() = %+v, expected {-101 60}", o.Position())
	}
	if o.Speed() != 100 {
		t.Errorf("Speed() = %v, expected 100", o.Speed())
	}
	if o.SpriteID() != SpriteEnemy {
		t.Errorf("SpriteID() = %q", o.SpriteID())
	}
}

func TestObstacleUpdate(t *testing.T) {
	o := NewObstacle(config.DefaultConfig())
	o.SetSpeed(200)
	o.SetPosition(core.Vec2{X: 0, Y: 150})

	o.Update(0.5)
	o.Update(0.25)

	if o.Position() != (core.Vec2{X: 150, Y: 150}) {
		t.Errorf("Position() = %+v, expected {150 150}", o.Position())
	}
	if o.Speed() != 200 {
		t.Error("Update must not change speed")
	}
}

func TestObstacleRespawn(t *testing.T) {
	cfg := config.DefaultConfig()
	sp := rules.NewSpawner(cfg, rules.NewScripted(250, -300, 1))
	o := NewObstacle(cfg)

	o.Respawn(sp)

	if o.Speed() != 250 {
		t.Errorf("Speed() = %v, expected 250", o.Speed())
	}
	if o.Position() != (core.Vec2{X: -300, Y: 150}) {
		t.Errorf("Position() = %+v, expected {-300 150}", o.Position())
	}
}
