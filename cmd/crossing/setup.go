package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/crossing/internal/config"
)

// loadConfig resolves the config search path and applies the difficulty preset.
func loadConfig(path, difficulty string) (config.Config, error) {
	preset, err := config.ParsePreset(difficulty)
	if err != nil {
		return config.Config{}, err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}
	config.ApplyPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// newLogger opens the log sink. With no file, logs go to fallback,
// which is io.Discard for the terminal frontend because the TUI owns the screen.
// The returned close function must be called when done.
func newLogger(path string, verbose bool, fallback io.Writer) (*log.Logger, func() error, error) {
	w := fallback
	closeFn := func() error { return nil }

	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = f.Close
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "crossing",
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}
