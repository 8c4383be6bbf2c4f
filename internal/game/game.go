// Package game implements the simulation loop and state machine: per-frame obstacle
// motion and recycling, collision checks, lap scoring and the playing/game-over/reset
// transitions. It is driven by explicit Step calls so hosts and tests own the clock.
package game

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/crossing/internal/config"
	"github.com/vovakirdan/crossing/internal/core"
	"github.com/vovakirdan/crossing/internal/entity"
	"github.com/vovakirdan/crossing/internal/rules"
)

// ID and Title identify the game to frontends and logs.
const (
	ID    = "crossing"
	Title = "Bug Crossing"
)

// Game owns the player, the obstacles and the score.
// It is not safe for concurrent use; hosts serialize frames and input.
type Game struct {
	cfg       config.Config
	engine    *rules.Engine
	spawner   *rules.Spawner
	player    *entity.Player
	obstacles []*entity.Obstacle
	score     int
	phase     core.Phase
	observer  Observer
	logger    *log.Logger
	frames    int // Frames stepped in the current round
	laps      int // Laps completed in the current round
}

// Option configures a Game.
type Option func(*Game)

// WithObserver sets the receiver of presentation signals.
func WithObserver(o Observer) Option {
	return func(g *Game) {
		if o != nil {
			g.observer = o
		}
	}
}

// WithLogger sets the logger for state transitions.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// New builds the entities once and starts in the playing phase.
// Every obstacle starts with a randomized speed and off-screen position drawn from rnd.
func New(cfg config.Config, rnd rules.Random, opts ...Option) *Game {
	g := &Game{
		cfg:      cfg,
		engine:   rules.NewEngine(cfg),
		spawner:  rules.NewSpawner(cfg, rnd),
		player:   entity.NewPlayer(cfg),
		phase:    core.PhasePlaying,
		observer: NopObserver{},
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}

	g.obstacles = make([]*entity.Obstacle, cfg.Enemies.Count)
	for i := range g.obstacles {
		o := entity.NewObstacle(cfg)
		o.Respawn(g.spawner)
		g.obstacles[i] = o
	}

	g.logger.Debug("game created", "obstacles", len(g.obstacles), "canvas", cfg.Canvas)
	return g
}

// Step advances the simulation by dt seconds.
// While the game is over it changes nothing and reports no render.
func (g *Game) Step(dt float64) core.StepResult {
	if g.phase == core.PhaseGameOver {
		return core.StepResult{State: g.State()}
	}

	g.frames++
	g.updateObstacles(dt)
	collided := g.checkCollisions()

	return core.StepResult{
		State:    g.State(),
		Render:   true,
		Collided: collided,
	}
}

// updateObstacles moves every obstacle, then recycles those past the right edge.
func (g *Game) updateObstacles(dt float64) {
	for _, o := range g.obstacles {
		o.Update(dt)
	}
	for _, o := range g.obstacles {
		if g.engine.IsOutsideCanvas(o.Position().X) {
			o.Respawn(g.spawner)
		}
	}
}

// checkCollisions ends the round on the first obstacle overlapping the player.
func (g *Game) checkCollisions() bool {
	playerPos := g.player.Position()
	for _, o := range g.obstacles {
		if g.engine.Intersects(o.Position(), playerPos) {
			g.gameOver(o)
			return true
		}
	}
	return false
}

func (g *Game) gameOver(hit *entity.Obstacle) {
	g.logger.Info("round over",
		"score", g.score,
		"laps", g.laps,
		"frames", g.frames,
		"player", g.player.Position(),
		"obstacle", hit.Position(),
	)
	g.phase = core.PhaseGameOver
	g.score = 0
	g.player.Reset()
	g.observer.GameOver()
}

// HandleInput applies one movement request. It is ignored while the game is over.
// An upward request that is already blocked by the top bound scores a lap.
func (g *Game) HandleInput(dir core.Direction) {
	if g.phase == core.PhaseGameOver || dir == core.DirNone {
		return
	}

	if dir == core.DirUp && !g.engine.CanMoveY(g.player.Position().Y, dir) {
		g.scoreLap()
		return
	}
	g.player.MoveInDirection(dir, g.engine)
}

func (g *Game) scoreLap() {
	g.score += g.cfg.Scoring.LapPoints
	g.laps++
	g.player.Reset()
	g.logger.Debug("lap scored", "score", g.score, "laps", g.laps)
	g.observer.ScoreChanged(g.score)
}

// PlayAgain resets a finished game back to playing.
// It reports false and does nothing while the game is still running.
func (g *Game) PlayAgain() bool {
	if g.phase != core.PhaseGameOver {
		return false
	}
	g.phase = core.PhasePlaying
	g.score = 0
	g.frames = 0
	g.laps = 0
	g.logger.Info("round reset")
	g.observer.ScoreChanged(0)
	g.observer.GameReset()
	return true
}

// State returns the current score and phase.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score: g.score,
		Phase: g.phase,
	}
}

// Player returns the player entity.
func (g *Game) Player() *entity.Player {
	return g.player
}

// Obstacles returns the obstacle entities. The slice is owned by the game.
func (g *Game) Obstacles() []*entity.Obstacle {
	return g.obstacles
}

// Entities returns every entity in draw order: obstacles first, then the player.
func (g *Game) Entities() []entity.Entity {
	out := make([]entity.Entity, 0, len(g.obstacles)+1)
	for _, o := range g.obstacles {
		out = append(out, o)
	}
	return append(out, g.player)
}

// Config returns the tuning the game was built with.
func (g *Game) Config() config.Config {
	return g.cfg
}
