package tui

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/crossing/internal/config"
	"github.com/vovakirdan/crossing/internal/core"
	"github.com/vovakirdan/crossing/internal/registry"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	return NewModel(context.Background(), registry.Options{
		Config:  config.DefaultConfig(),
		Runtime: core.RuntimeConfig{TickRate: 60, Seed: 7},
		Logger:  log.New(io.Discard),
	})
}

// startModel runs the load command and delivers its result.
func startModel(t *testing.T, m Model) Model {
	t.Helper()
	msg := m.Init()()
	updated, cmd := m.Update(msg)
	if cmd == nil {
		t.Fatal("ready should schedule the first tick")
	}
	return updated.(Model)
}

func send(m Model, msg tea.Msg) (Model, tea.Cmd) {
	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}

func TestModelWaitsForSprites(t *testing.T) {
	m := newTestModel(t)

	if v := m.View(); v != "Loading..." {
		t.Errorf("View() before ready = %q", v)
	}

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyUp})
	if m.game.Player().Position().Y != 380 {
		t.Error("movement before the sprites are ready should be ignored")
	}
	if _, cmd := send(m, TickMsg(time.Now())); cmd != nil {
		t.Error("ticks before ready should not reschedule")
	}

	m = startModel(t, m)
	if !m.started || !m.loop.Running() {
		t.Fatal("model should be running after ready")
	}
	if v := m.View(); !strings.Contains(v, "Score: 0") {
		t.Errorf("View() should show the score header, got %q", v)
	}
}

func TestModelMovesPlayer(t *testing.T) {
	m := startModel(t, newTestModel(t))

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyUp})
	m, _ = send(m, runeKey('a'))

	pos := m.game.Player().Position()
	if pos.X != 100 || pos.Y != 297 {
		t.Errorf("player at %+v, expected (100, 297)", pos)
	}
}

func TestModelGameOverDialog(t *testing.T) {
	m := startModel(t, newTestModel(t))
	m, _ = send(m, tea.WindowSizeMsg{Width: 100, Height: 40})

	// Score a lap so the dialog has something to show
	for range 5 {
		m, _ = send(m, tea.KeyMsg{Type: tea.KeyUp})
	}
	if m.hud.score != 100 {
		t.Fatalf("hud score = %d, expected 100", m.hud.score)
	}

	hit := m.game.Obstacles()[0]
	hit.SetPosition(m.game.Player().Position())
	hit.SetSpeed(0)

	m, cmd := send(m, TickMsg(time.Now()))
	if cmd != nil {
		t.Error("game over should stop the tick loop")
	}
	if !m.hud.over {
		t.Fatal("dialog should be open after a collision")
	}
	v := m.View()
	if !strings.Contains(v, "GAME OVER") || !strings.Contains(v, "Play Again") {
		t.Error("View() should show the game-over dialog")
	}
	if !strings.Contains(v, "Score: 100") {
		t.Error("dialog should show the score of the finished round")
	}

	hit.SetPosition(core.Vec2{X: -500, Y: 60})
	m, cmd = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Error("play again should restart the tick loop")
	}
	if m.hud.over || m.hud.score != 0 || m.hud.resets != 1 {
		t.Errorf("hud after reset = %+v", *m.hud)
	}
	if m.game.State().Over() {
		t.Error("game should be playing after play again")
	}
}

func TestModelLoadError(t *testing.T) {
	m := newTestModel(t)
	m, cmd := send(m, readyMsg{err: errors.New("disk on fire")})
	if cmd != nil {
		t.Error("a failed load should not start the loop")
	}
	if v := m.View(); !strings.Contains(v, "disk on fire") {
		t.Errorf("View() = %q, expected the load error", v)
	}
}

func TestModelQuit(t *testing.T) {
	m := startModel(t, newTestModel(t))
	m, cmd := send(m, runeKey('q'))
	if cmd == nil {
		t.Fatal("q should return a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit the program")
	}
	if m.View() != "" {
		t.Error("View() after quit should be empty")
	}
}

func TestModelScreenshot(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	m := startModel(t, newTestModel(t))
	send(m, tea.KeyMsg{Type: tea.KeyCtrlS})

	entries, err := os.ReadDir(filepath.Join(home, ".crossing", "screenshots"))
	if err != nil {
		t.Fatalf("reading screenshot dir: %v", err)
	}
	if len(entries) != 1 || !strings.HasPrefix(entries[0].Name(), "crossing_") {
		t.Fatalf("screenshots = %v", entries)
	}
	data, err := os.ReadFile(filepath.Join(home, ".crossing", "screenshots", entries[0].Name()))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "~") {
		t.Error("screenshot should contain the water row")
	}
}

func TestModelHistory(t *testing.T) {
	m := startModel(t, newTestModel(t))
	m.hud.nowFunc = func() time.Time { return time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC) }

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyTab})
	if v := m.View(); !strings.Contains(v, "No rounds finished yet.") {
		t.Errorf("empty history view = %q", v)
	}

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyUp})
	if m.game.Player().Position().Y != 380 {
		t.Error("movement should be ignored while the history is shown")
	}
	m, _ = send(m, tea.KeyMsg{Type: tea.KeyTab})

	for range 5 {
		m, _ = send(m, tea.KeyMsg{Type: tea.KeyUp})
	}
	hit := m.game.Obstacles()[0]
	hit.SetPosition(m.game.Player().Position())
	hit.SetSpeed(0)
	m, _ = send(m, TickMsg(time.Now()))

	if len(m.hud.rounds) != 1 || m.hud.rounds[0].score != 100 {
		t.Fatalf("rounds = %+v, expected one round with 100", m.hud.rounds)
	}
	if m.hud.best() != 100 {
		t.Errorf("best() = %d, expected 100", m.hud.best())
	}

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyTab})
	v := m.View()
	for _, want := range []string{"Best: 100", "#1", "12:30:00", "best"} {
		if !strings.Contains(v, want) {
			t.Errorf("history view missing %q", want)
		}
	}
}

func TestModelHistoryPausesRound(t *testing.T) {
	m := startModel(t, newTestModel(t))

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyTab})
	bug := m.game.Obstacles()[0]
	bug.SetPosition(core.Vec2{X: 100, Y: 380})
	bug.SetSpeed(100)

	m, cmd := send(m, TickMsg(time.Now().Add(time.Second)))
	if cmd == nil {
		t.Error("ticks should keep coming while the history is shown")
	}
	if x := bug.Position().X; x != 100 {
		t.Errorf("obstacle moved to x=%v behind the history view", x)
	}
	if m.game.State().Over() {
		t.Fatal("round ended while the board was hidden")
	}

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyTab})
	m, _ = send(m, TickMsg(time.Now()))
	if x := bug.Position().X; x >= 110 {
		t.Errorf("hidden time was applied after closing the history, obstacle x=%v", x)
	}
	if m.game.State().Over() {
		t.Error("round should still be running after closing the history")
	}
}
