package game

import (
	"time"

	"github.com/vovakirdan/crossing/internal/core"
)

// Loop is the frame clock between a host scheduler and a Game.
// The host calls Frame once per scheduled callback and stops scheduling when it returns
// false; PlayAgain re-arms it.
type Loop struct {
	game    *Game
	last    time.Time
	running bool
}

// NewLoop creates a stopped loop for g.
func NewLoop(g *Game) *Loop {
	return &Loop{game: g}
}

// Start arms the loop. The first frame measures its dt from now.
func (l *Loop) Start(now time.Time) {
	l.last = now
	l.running = true
}

// Running reports whether the host should keep scheduling frames.
func (l *Loop) Running() bool {
	return l.running
}

// Frame steps the game by the time elapsed since the previous frame and records now.
// The second result tells the host whether to schedule another frame.
func (l *Loop) Frame(now time.Time) (core.StepResult, bool) {
	if !l.running {
		return core.StepResult{State: l.game.State()}, false
	}

	dt := now.Sub(l.last).Seconds()
	if dt < 0 {
		dt = 0
	}
	res := l.game.Step(dt)
	l.last = now

	if res.State.Over() {
		l.running = false
	}
	return res, l.running
}

// PlayAgain resets a finished game and restarts the loop at now.
// It reports false when the game was not over.
func (l *Loop) PlayAgain(now time.Time) bool {
	if !l.game.PlayAgain() {
		return false
	}
	l.Start(now)
	return true
}
