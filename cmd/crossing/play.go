package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/crossing/internal/core"
	"github.com/vovakirdan/crossing/internal/platform/tui"
	"github.com/vovakirdan/crossing/internal/registry"
)

// Smallest terminal that still shows every lane.
const (
	minTermWidth  = 40
	minTermHeight = 20
)

var playCmd = &cobra.Command{
	Use:   "play [frontend]",
	Short: "Play the game",
	Long: `Start a game on the given frontend (default: terminal).

Controls:
  Arrows/WASD/HJKL   - Move one tile
  Enter/R            - Play again (after game over)
  Ctrl+S             - Screenshot (terminal)
  Q/Esc/Ctrl+C       - Quit

Reach the water row and press up once more to score 100 points.

Examples:
  crossing play
  crossing play --seed 42 --fps 30
  crossing play --difficulty easy
  crossing play window`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	name := tui.Name
	if len(args) == 1 {
		name = args[0]
	}
	return play(name, flagDifficulty)
}

// play loads the config and runs the named frontend until the user quits.
func play(name, difficulty string) error {
	if !registry.Exists(name) {
		return fmt.Errorf("unknown frontend %q; run 'crossing list' to see available frontends", name)
	}

	var fallback io.Writer = os.Stderr
	if name == tui.Name {
		if err := checkTerminal(); err != nil {
			return err
		}
		fallback = io.Discard
	}

	cfg, err := loadConfig(flagConfig, difficulty)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(flagLogFile, flagVerbose, fallback)
	if err != nil {
		return err
	}
	defer closeLog()

	frontend, err := registry.Create(name)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting", "frontend", name, "fps", flagFPS, "seed", flagSeed,
		"enemies", cfg.Enemies.Count, "difficulty", difficulty)

	err = frontend.Run(ctx, registry.Options{
		Config:  cfg,
		Runtime: core.RuntimeConfig{TickRate: flagFPS, Seed: flagSeed},
		Logger:  logger,
	})
	if err != nil {
		logger.Error("frontend stopped", "err", err)
		return err
	}
	logger.Info("bye")
	return nil
}

// checkTerminal refuses to start the TUI without a usable terminal.
func checkTerminal() error {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return fmt.Errorf("the terminal frontend needs an interactive terminal")
	}
	w, h, err := term.GetSize(fd)
	if err != nil {
		return fmt.Errorf("reading terminal size: %w", err)
	}
	if w < minTermWidth || h < minTermHeight {
		return fmt.Errorf("terminal is %dx%d, need at least %dx%d", w, h, minTermWidth, minTermHeight)
	}
	return nil
}
