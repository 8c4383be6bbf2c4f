package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/crossing/internal/core"
	"github.com/vovakirdan/crossing/internal/rules"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyCode(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want int
	}{
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, rules.KeyLeft},
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, rules.KeyUp},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, rules.KeyRight},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, rules.KeyDown},
		{"wasd a", runeKey('a'), rules.KeyLeft},
		{"wasd w", runeKey('w'), rules.KeyUp},
		{"vim l", runeKey('l'), rules.KeyRight},
		{"vim j", runeKey('j'), rules.KeyDown},
		{"unbound", runeKey('x'), 0},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.KeyCode(tt.msg); got != tt.want {
				t.Errorf("KeyCode() = %d, expected %d", got, tt.want)
			}
		})
	}
}

func TestAction(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"q quits", runeKey('q'), core.ActionQuit},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"ctrl+s screenshot", tea.KeyMsg{Type: tea.KeyCtrlS}, core.ActionScreenshot},
		{"enter plays again", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionPlayAgain},
		{"r plays again", runeKey('r'), core.ActionPlayAgain},
		{"arrow is not an action", tea.KeyMsg{Type: tea.KeyUp}, core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.Action(tt.msg); got != tt.want {
				t.Errorf("Action() = %v, expected %v", got, tt.want)
			}
		})
	}
}
