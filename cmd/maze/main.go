// maze is a terminal maze-chase game: collect every item and stay clear of
// the wandering adversaries.
//
// Usage:
//
//	maze list                - List available mazes
//	maze play <maze>         - Play a maze
//	maze sim <maze>          - Run a maze headless with the autopilot
//	maze check <file>...     - Validate maze files
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--tick <duration>    - Override the maze's tick interval
//	--log-level <level>  - Override MAZE_LOG_LEVEL
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-maze/internal/games/chase"
)

var (
	// Global flags
	flagSeed     int64
	flagTick     time.Duration
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "maze",
	Short: "Maze chase in your terminal",
	Long: `Steer through the maze, eat every item and avoid the adversaries.
A single touch ends the game.

Available commands:
  list     - Show all available mazes
  play     - Play a maze
  sim      - Run a maze headless with the autopilot
  check    - Validate maze files

Examples:
  maze list
  maze play classic
  maze play custom --config ./my-maze.yaml
  maze sim turbo --seed 42 --max-ticks 2000
  maze check ./mazes/*.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().DurationVar(&flagTick, "tick", 0, "Tick interval override (0 = maze default)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (default $MAZE_LOG_LEVEL or info)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(checkCmd)
}

// seed returns the --seed value, or a time-based seed when unset.
func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}
