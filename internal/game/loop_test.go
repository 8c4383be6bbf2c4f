package game

import (
	"testing"
	"time"

	"github.com/vovakirdan/crossing/internal/core"
	"github.com/vovakirdan/crossing/internal/rules"
)

func TestLoopMeasuresDt(t *testing.T) {
	g, _ := newTestGame(t, rules.NewScripted(200, -1000, 0))
	l := NewLoop(g)
	t0 := time.Unix(1000, 0)

	if _, next := l.Frame(t0); next {
		t.Fatal("a loop that was never started should not schedule frames")
	}

	l.Start(t0)
	res, next := l.Frame(t0.Add(500 * time.Millisecond))
	if !next || !res.Render {
		t.Fatalf("Frame() = %+v, %v; expected a rendered frame and another scheduled", res, next)
	}
	if x := g.Obstacles()[0].Position().X; x != -900 {
		t.Errorf("x = %v after 0.5s at 200px/s, expected -900", x)
	}

	// A clock going backwards does not move obstacles backwards
	l.Frame(t0)
	if x := g.Obstacles()[0].Position().X; x != -900 {
		t.Errorf("x = %v after a negative dt, expected -900", x)
	}
}

func TestLoopStopsOnGameOverAndResumes(t *testing.T) {
	g, rec := newTestGame(t, rules.NewScripted(200, -1000, 0))
	l := NewLoop(g)
	t0 := time.Unix(1000, 0)
	l.Start(t0)

	g.Obstacles()[0].SetPosition(startPos)
	g.Obstacles()[0].SetSpeed(0)

	res, next := l.Frame(t0.Add(16 * time.Millisecond))
	if next || !res.State.Over() {
		t.Fatalf("collision frame should stop scheduling, got %+v, %v", res, next)
	}
	if l.Running() {
		t.Error("loop should not be running after game over")
	}
	if _, next := l.Frame(t0.Add(32 * time.Millisecond)); next {
		t.Error("frames after game over should not reschedule")
	}

	// Resume an hour later: the first frame must not see the hour as dt
	g.Obstacles()[0].SetPosition(core.Vec2{X: -1000, Y: 60})
	g.Obstacles()[0].SetSpeed(200)
	resume := t0.Add(time.Hour)
	if !l.PlayAgain(resume) {
		t.Fatal("PlayAgain after game over should succeed")
	}
	if rec.resets != 1 {
		t.Errorf("GameReset signalled %d times, expected 1", rec.resets)
	}

	_, next = l.Frame(resume.Add(100 * time.Millisecond))
	if !next {
		t.Error("loop should be running after PlayAgain")
	}
	if x := g.Obstacles()[0].Position().X; x != -980 {
		t.Errorf("x = %v after 0.1s at 200px/s, expected -980", x)
	}

	if l.PlayAgain(resume) {
		t.Error("PlayAgain while running should be a no-op")
	}
}
