package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/crossing/internal/assets"
	"github.com/vovakirdan/crossing/internal/core"
	"github.com/vovakirdan/crossing/internal/game"
	"github.com/vovakirdan/crossing/internal/registry"
	"github.com/vovakirdan/crossing/internal/render"
	"github.com/vovakirdan/crossing/internal/rules"
)

// Rows taken by the score header and the help line.
const chromeRows = 2

// Model is the Bubble Tea model hosting one game session.
type Model struct {
	ctx     context.Context
	game    *game.Game
	loop    *game.Loop
	hud     *presenter
	cache   *assets.Cache[Glyph]
	screen  *core.Screen
	surface *CellSurface
	keys    KeyMap
	help    help.Model
	runtime core.RuntimeConfig
	logger  *log.Logger

	started     bool  // Sprites are loaded and the loop has been started
	loadErr     error // Sprite loading failure, shown instead of the board
	drawErr     error
	showHistory bool
	quitting    bool
}

// NewModel builds the game and its sprite cache. Nothing runs until Init.
func NewModel(ctx context.Context, opts registry.Options) Model {
	rt := opts.Runtime
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(os.Stderr)
	}

	hud := &presenter{}
	g := game.New(opts.Config, rules.NewRandom(rt.Seed),
		game.WithObserver(hud),
		game.WithLogger(logger),
	)

	// Default size until the first WindowSizeMsg
	screen := core.NewScreen(80, 24-chromeRows)

	return Model{
		ctx:     ctx,
		game:    g,
		loop:    game.NewLoop(g),
		hud:     hud,
		cache:   assets.NewCache(LoadGlyph, 0),
		screen:  screen,
		surface: NewCellSurface(screen, opts.Config.Canvas.Width, opts.Config.Canvas.Height),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		runtime: rt,
		logger:  logger,
	}
}

// Init starts loading the sprites; the first frame is scheduled once they are ready.
func (m Model) Init() tea.Cmd {
	return m.loadCmd()
}

func (m Model) loadCmd() tea.Cmd {
	ctx, cache := m.ctx, m.cache
	return func() tea.Msg {
		if err := cache.Load(ctx, render.Sprites()...); err != nil {
			return readyMsg{err: err}
		}
		select {
		case <-cache.Ready():
			return readyMsg{}
		case <-ctx.Done():
			return readyMsg{err: ctx.Err()}
		}
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case readyMsg:
		return m.handleReady(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

func (m Model) handleReady(msg readyMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.loadErr = msg.err
		m.logger.Error("loading sprites", "err", msg.err)
		return m, nil
	}
	m.started = true
	m.loop.Start(time.Now())
	m.logger.Debug("sprites ready", "count", m.cache.Len(), "seed", m.runtime.Seed)
	return m, tickCmd(m.runtime.TickRate)
}

// handleKey processes keyboard input. Movement is ignored until the board is shown.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.Action(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionScreenshot:
		m.saveScreenshot()
		return m, nil
	case core.ActionHistory:
		m.showHistory = !m.showHistory
		if !m.showHistory && m.loop.Running() {
			// The board was frozen while hidden; measure the next frame from now
			m.loop.Start(time.Now())
		}
		return m, nil
	case core.ActionPlayAgain:
		if m.started && m.loop.PlayAgain(time.Now()) {
			return m, tickCmd(m.runtime.TickRate)
		}
		return m, nil
	}

	if !m.started || m.showHistory {
		return m, nil
	}
	m.game.HandleInput(rules.DirectionForKey(m.keys.KeyCode(msg)))
	return m, nil
}

// handleResize fits the board to the terminal below the header.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.screen.Resize(msg.Width, max(msg.Height-chromeRows, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one frame and schedules the next while the round is running.
// The round is paused while the history hides the board.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.showHistory && m.loop.Running() {
		return m, tickCmd(m.runtime.TickRate)
	}
	if _, next := m.loop.Frame(now); next {
		return m, tickCmd(m.runtime.TickRate)
	}
	return m, nil
}

// draw renders the scene and the game-over dialog into the screen buffer.
func (m *Model) draw() {
	m.drawErr = render.DrawScene[Glyph](m.surface, m.cache, m.game.Entities())
	if m.hud.over {
		m.drawDialog()
	}
}

func (m *Model) drawDialog() {
	lines := []string{
		"GAME OVER",
		fmt.Sprintf("Score: %d", m.hud.score),
		"",
		"[ Play Again ]",
	}
	w := core.Clamp(24, 1, m.screen.Width())
	h := len(lines) + 2
	x := (m.screen.Width() - w) / 2
	y := (m.screen.Height() - h) / 2

	box := core.NewRect(x, y, w, h)
	m.screen.FillRect(box, ' ', core.ColorDefault)
	m.screen.DrawBox(box, core.ColorBrightWhite)
	for i, line := range lines {
		c := core.ColorWhite
		if i == 0 {
			c = core.ColorBrightRed
		}
		if i == len(lines)-1 {
			c = core.ColorBrightYellow
		}
		lx := x + (w-len([]rune(line)))/2
		m.screen.DrawText(lx, y+1+i, line, c)
	}
}

// saveScreenshot writes the current board as plain text under ~/.crossing/screenshots.
func (m *Model) saveScreenshot() {
	m.draw()

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}
	dir := filepath.Join(home, ".crossing", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", game.ID, timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.loadErr != nil {
		return fmt.Sprintf("Could not load sprites: %v\n\nPress q to quit.", m.loadErr)
	}
	if !m.started {
		return "Loading..."
	}
	if m.showHistory {
		return m.historyView()
	}

	m.draw()
	if m.drawErr != nil {
		return fmt.Sprintf("Render error: %v", m.drawErr)
	}

	header := headerStyle.Render(fmt.Sprintf("%s  Score: %d", game.Title, m.hud.score))
	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		RenderScreen(m.screen),
		helpStyle.Render(m.help.View(m.keys)),
	)
}
