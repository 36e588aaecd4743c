// veggierun is an endless runner for the terminal: eat veggies, hug sleeping
// pets, bounce off unicorns and stomp the boss.
//
// Usage:
//
//	veggierun                - Play (same as "veggierun play")
//	veggierun play           - Play a session and print the run summary
//	veggierun config dump    - Print the effective tuning as YAML
//	veggierun config check   - Validate a tuning file
//
// Global flags:
//
//	--config <path> - Custom tuning YAML
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--mute          - Disable sound and music
//	--log <path>    - Write logs to a file while playing
//	--verbose       - Log simulation events at debug level
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/vovakirdan/veggie-run/internal/games/veggierun"
)

var (
	// Global flags
	flagConfig  string
	flagFPS     int
	flagSeed    int64
	flagMute    bool
	flagLogPath string
	flagVerbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "veggierun",
	Short: "Veggie Run - an endless runner in your terminal",
	Long: `Veggie Run is an endless runner played in the terminal.

Eat veggies to keep your energy up, jump over rocks, hug sleeping pets and
bounce off unicorns. Every few veggies a boss shows up: jump on his head.

Available commands:
  play     - Play a session (default)
  config   - Inspect or validate tuning files

Examples:
  veggierun
  veggierun play --seed 42
  veggierun --config ./hard.yaml --mute
  veggierun config dump > veggierun.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound and music")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file while playing")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Log simulation events")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
}
