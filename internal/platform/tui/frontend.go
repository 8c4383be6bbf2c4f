package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/crossing/internal/registry"
)

// Name is the registry name of the terminal frontend.
const Name = "terminal"

func init() {
	registry.Register(Name, func() registry.Frontend { return Frontend{} })
}

// Frontend runs the game in the terminal.
type Frontend struct{}

// Name implements registry.Frontend.
func (Frontend) Name() string { return Name }

// Title implements registry.Frontend.
func (Frontend) Title() string { return "Terminal (Bubble Tea, colored glyphs)" }

// Run starts the Bubble Tea program and blocks until the user quits or ctx is done.
func (Frontend) Run(ctx context.Context, opts registry.Options) error {
	model := NewModel(ctx, opts)

	p := tea.NewProgram(
		model,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
