// crossing is a lane-crossing arcade game: guide the player across three lanes of
// bugs to the water, score 100 points per crossing, and start over when a bug hits you.
//
// Usage:
//
//	crossing play [frontend]   - Play (default frontend: terminal)
//	crossing menu              - Pick a difficulty, then play in the terminal
//	crossing list              - List available frontends
//	crossing config            - Print the effective configuration as YAML
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Custom config YAML
//	--difficulty <name>   - Difficulty preset: easy, normal, hard
//	--log-file <path>     - Write logs to a file
//	--verbose             - Log debug messages
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/crossing/internal/core"

	// Import frontends to register them
	_ "github.com/vovakirdan/crossing/internal/platform/tui"
	_ "github.com/vovakirdan/crossing/internal/platform/window"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagVerbose    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "crossing",
	Short: "Bug Crossing - an arcade lane-crossing game",
	Long: `Bug Crossing is a single-screen arcade game. Cross three lanes of bugs
to reach the water for 100 points; a single bite ends the round.

Available commands:
  play     - Play in the terminal (or a window, when built with -tags ebiten)
  menu     - Pick a difficulty, then play
  list     - Show available frontends
  config   - Print the effective configuration

Examples:
  crossing play
  crossing play --difficulty hard
  crossing play window
  crossing config --difficulty easy > my-crossing.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", core.DefaultRuntime().TickRate, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug messages")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(configCmd)
}
