package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/t2048/internal/config"
	"github.com/vovakirdan/t2048/internal/engine"
	"github.com/vovakirdan/t2048/internal/games/t2048"
	"github.com/vovakirdan/t2048/internal/registry"
)

var (
	// Match flags shared by play and simulate
	flagMover       string
	flagEnvironment string
	flagMaxIllegal  int
)

func addMatchFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagMover, "mover", "random", "Mover strategy: random, human, minimax, mcts")
	cmd.Flags().StringVar(&flagEnvironment, "environment", "random", "Environment strategy: random, human, minimax, mcts")
	cmd.Flags().IntVar(&flagMaxIllegal, "max-illegal", 3, "Consecutive illegal actions tolerated from one side")
}

// loadMatchConfig loads the config file and applies flags the user set explicitly.
func loadMatchConfig(cmd *cobra.Command) (config.MatchConfig, error) {
	cfg, err := config.LoadMatch(flagConfig)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = flagSeed
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = flagLogLevel
	}
	if flags.Changed("legality") {
		cfg.Legality = flagLegality
	}
	if flags.Changed("max-turns") {
		cfg.MaxTurns = flagMaxTurns
	}
	if flags.Changed("mover") {
		cfg.Mover = flagMover
	}
	if flags.Changed("environment") {
		cfg.Environment = flagEnvironment
	}
	if flags.Changed("max-illegal") {
		cfg.MaxIllegalActions = flagMaxIllegal
	}
	if flags.Changed("render") {
		cfg.Render = config.RenderMode(flagRender)
	}
	if flags.Changed("input") {
		cfg.Input = config.InputMode(flagInput)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func newLogger(cfg config.MatchConfig) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "t2048",
	})
	logger.SetLevel(cfg.Level())
	return logger
}

// newRand returns the match random source. A zero seed is replaced by the clock.
func newRand(seed int64) (*rand.Rand, int64) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed)), seed
}

// checkPlayable rejects kinds that are declared but cannot play yet.
func checkPlayable(kinds ...registry.Kind) error {
	for _, k := range kinds {
		info, ok := registry.Lookup(k)
		if !ok {
			return fmt.Errorf("unknown strategy %q", k)
		}
		if !info.Implemented {
			return fmt.Errorf("strategy %q: %w", k, engine.ErrNotImplemented)
		}
	}
	return nil
}

// newStrategies creates one strategy per side, indexed by t2048.Player.
func newStrategies(mover, environment registry.Kind, env func(side t2048.Player) registry.Env) ([2]registry.Strategy, error) {
	var sides [2]registry.Strategy

	kinds := [2]registry.Kind{t2048.Mover: mover, t2048.Environment: environment}
	for _, side := range []t2048.Player{t2048.Mover, t2048.Environment} {
		s, err := registry.Create(kinds[side], env(side))
		if err != nil {
			return sides, err
		}
		sides[side] = s
	}
	return sides, nil
}

func exitOnError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
