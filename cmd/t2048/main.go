// t2048 plays 2048 as a two-sided game: a Mover slides tiles and an
// Environment places new ones. Either side can be driven by any strategy.
//
// Usage:
//
//	t2048 list                 - List strategy kinds
//	t2048 play                 - Play one game
//	t2048 play --menu          - Pick strategies interactively, then play
//	t2048 simulate --games N   - Play N games and print statistics
//
// Global flags:
//
//	--config <path>     - Match config YAML (default search: ~/.t2048/configs, ./configs)
//	--seed <value>      - RNG seed for reproducible games (0 = random based on time)
//	--log-level <lvl>   - debug, info, warn or error
//	--legality <mode>   - Mover legality: exhaustive or priority_chain
//	--max-turns <n>     - Stop after n accepted actions (0 = unlimited)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import players to register strategies
	_ "github.com/vovakirdan/t2048/internal/players"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagLogLevel string
	flagLegality string
	flagMaxTurns int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "2048 as a two-player game between pluggable strategies",
	Long: `t2048 plays 2048 as a strictly alternating game. The Mover slides
the board up, down, left or right; the Environment places a 2 or a 4 on an
empty cell. Each side is driven by a strategy: random, human, or one of the
declared search strategies.

Available commands:
  list      - Show all strategy kinds
  play      - Play a single game
  simulate  - Play many games and summarize the results

Examples:
  t2048 list
  t2048 play --mover human --environment random
  t2048 play --menu
  t2048 simulate --games 500 --seed 7`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom match config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLegality, "legality", "exhaustive", "Mover legality: exhaustive, priority_chain")
	rootCmd.PersistentFlags().IntVar(&flagMaxTurns, "max-turns", 0, "Stop after this many accepted actions (0 = unlimited)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
}
