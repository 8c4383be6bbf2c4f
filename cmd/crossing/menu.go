package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/crossing/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a difficulty, then play in the terminal",
	Long: `Shows a difficulty picker and starts a terminal game with the chosen preset.
The --difficulty flag is ignored here.`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(cmd *cobra.Command, args []string) error {
	if err := checkTerminal(); err != nil {
		return err
	}

	width := 80
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
	}

	preset, chosen, err := tui.RunMenu(width)
	if err != nil {
		return err
	}
	if !chosen {
		return nil
	}
	return play(tui.Name, string(preset))
}
