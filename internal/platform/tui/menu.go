package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/crossing/internal/config"
	"github.com/vovakirdan/crossing/internal/game"
)

// menuItem is one selectable difficulty. Normal keeps the loaded config,
// so its label names no counts.
type menuItem struct {
	preset config.DifficultyPreset
	label  string
}

var menuItems = []menuItem{
	{config.DifficultyEasy, "Easy    (6 bugs, slow)"},
	{config.DifficultyNormal, "Normal  (as configured)"},
	{config.DifficultyHard, "Hard    (14 bugs, fast)"},
}

// MenuModel lets the user pick a difficulty before the game starts.
type MenuModel struct {
	cursor   int
	width    int
	keys     KeyMap
	selected bool
	quitting bool
}

// NewMenuModel creates a menu with the cursor on Normal.
func NewMenuModel(width int) MenuModel {
	return MenuModel{
		cursor: 1,
		width:  width,
		keys:   DefaultKeyMap(),
	}
}

// Init initializes the model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(menuItems)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.PlayAgain), msg.String() == " ":
		m.selected = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the difficulty list.
func (m MenuModel) View() string {
	if m.quitting || m.selected {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(headerStyle.Render(centerText(strings.ToUpper(game.Title), m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select difficulty:", m.width))
	b.WriteString("\n\n")

	for i, item := range menuItems {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%s", cursor, item.label), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(centerText("↑/↓: Move  |  Enter: Play  |  Q: Quit", m.width)))
	return b.String()
}

// Selected returns the chosen preset, or false if the user quit.
func (m MenuModel) Selected() (config.DifficultyPreset, bool) {
	if !m.selected {
		return "", false
	}
	return menuItems[m.cursor].preset, true
}

func centerText(text string, width int) string {
	n := len([]rune(text))
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}

// RunMenu shows the difficulty picker and returns the choice.
// The second result is false when the user quit instead of choosing.
func RunMenu(width int) (config.DifficultyPreset, bool, error) {
	p := tea.NewProgram(NewMenuModel(width), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return "", false, fmt.Errorf("tui: menu: %w", err)
	}
	m, ok := finalModel.(MenuModel)
	if !ok {
		return "", false, nil
	}
	preset, chosen := m.Selected()
	return preset, chosen, nil
}
