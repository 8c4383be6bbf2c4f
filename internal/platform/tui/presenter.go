package tui

import (
	"time"

	"github.com/vovakirdan/crossing/internal/game"
)

// round is one finished round of the current session.
type round struct {
	score int
	ended time.Time
}

// presenter tracks what the HUD shows: the score header, the game-over dialog
// and the rounds finished so far.
type presenter struct {
	score   int
	over    bool
	rounds  []round
	resets  int
	nowFunc func() time.Time
}

func (p *presenter) ScoreChanged(score int) { p.score = score }

// GameOver opens the dialog and records the round.
// The header keeps the last score until the reset.
func (p *presenter) GameOver() {
	p.over = true
	p.rounds = append(p.rounds, round{score: p.score, ended: p.now()})
}

func (p *presenter) GameReset() {
	p.over = false
	p.resets++
}

func (p *presenter) now() time.Time {
	if p.nowFunc != nil {
		return p.nowFunc()
	}
	return time.Now()
}

// best returns the highest round score, or 0 with no rounds.
func (p *presenter) best() int {
	best := 0
	for _, r := range p.rounds {
		best = max(best, r.score)
	}
	return best
}

var _ game.Observer = (*presenter)(nil)
