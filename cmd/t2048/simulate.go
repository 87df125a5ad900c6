package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/t2048/internal/games/t2048"
	"github.com/vovakirdan/t2048/internal/match"
	"github.com/vovakirdan/t2048/internal/platform/tui"
	"github.com/vovakirdan/t2048/internal/registry"
)

var (
	flagGames  int
	flagBrowse bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Play many games and print statistics",
	Long: `Play a batch of games without rendering and summarize the outcomes:
turns, merge score, max tile, tile sum, final score and the rollout
heuristic of the final board.

The human strategy cannot be simulated.

Examples:
  t2048 simulate
  t2048 simulate --games 1000 --seed 7
  t2048 simulate --games 50 --browse
  t2048 simulate --legality priority_chain --max-turns 200`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	addMatchFlags(simulateCmd)
	simulateCmd.Flags().IntVar(&flagGames, "games", 100, "Number of games to play")
	simulateCmd.Flags().BoolVar(&flagBrowse, "browse", false, "Browse individual games in a table afterwards")
}

func runSimulate(cmd *cobra.Command, _ []string) {
	cfg, err := loadMatchConfig(cmd)
	exitOnError(err)

	if flagGames < 1 {
		exitOnError(fmt.Errorf("--games must be at least 1, got %d", flagGames))
	}

	moverKind, envKind, err := cfg.Kinds()
	exitOnError(err)
	exitOnError(checkPlayable(moverKind, envKind))
	if moverKind == registry.KindHuman || envKind == registry.KindHuman {
		exitOnError(errors.New("simulate cannot use the human strategy"))
	}

	logger := newLogger(cfg)
	rng, seed := newRand(cfg.Seed)
	logger.Info("simulating", "games", flagGames, "seed", seed, "mover", moverKind, "environment", envKind)

	// Per-game summaries are only interesting when debugging.
	gameLogger := logger.With()
	if cfg.Level() > log.DebugLevel {
		gameLogger.SetLevel(log.WarnLevel)
	}

	sides, err := newStrategies(moverKind, envKind, func(side t2048.Player) registry.Env {
		return registry.Env{Side: side, Rand: rng, Logger: gameLogger}
	})
	exitOnError(err)

	runner := match.NewRunner(sides[t2048.Mover], sides[t2048.Environment],
		match.WithLogger(gameLogger),
		match.WithMaxIllegal(cfg.MaxIllegalActions),
		match.WithMaxTurns(cfg.MaxTurns),
	)

	results := make([]match.Result, 0, flagGames)
	for range flagGames {
		state := t2048.NewGame(rng, t2048.WithPolicy(cfg.Policy()))
		result, playErr := runner.Play(context.Background(), state)
		exitOnError(playErr)
		results = append(results, result)
	}

	printSummary(os.Stdout, match.Summarize(results))

	if flagBrowse {
		width, height := tui.Size()
		exitOnError(tui.RunResults(results, width, height))
	}
}

func printSummary(w io.Writer, s match.Summary) {
	fmt.Fprintf(w, "Games: %d\n", s.Games)

	reasons := make([]match.EndReason, 0, len(s.Reasons))
	for r := range s.Reasons {
		reasons = append(reasons, r)
	}
	sort.Slice(reasons, func(i, j int) bool { return reasons[i] < reasons[j] })
	for _, r := range reasons {
		fmt.Fprintf(w, "  %-16s %d\n", r.String()+":", s.Reasons[r])
	}
	fmt.Fprintln(w)

	rows := []struct {
		name  string
		stats match.Stats
	}{
		{"Turns", s.Turns},
		{"Score", s.Score},
		{"Max tile", s.MaxTile},
		{"Tile sum", s.TileSum},
		{"Final score", s.FinalScore},
		{"Rollout", s.Rollout},
	}

	fmt.Fprintf(w, "  %-12s %10s %10s %10s %10s %10s\n", "Metric", "Mean", "StdDev", "Median", "Min", "Max")
	fmt.Fprintf(w, "  %-12s %10s %10s %10s %10s %10s\n", "------", "----", "------", "------", "---", "---")
	for _, row := range rows {
		st := row.stats
		fmt.Fprintf(w, "  %-12s %10.4g %10.4g %10.4g %10.4g %10.4g\n",
			row.name, st.Mean, st.StdDev, st.Median, st.Min, st.Max)
	}
}
