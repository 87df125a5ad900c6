package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/t2048/internal/config"
	"github.com/vovakirdan/t2048/internal/engine"
	"github.com/vovakirdan/t2048/internal/games/t2048"
	"github.com/vovakirdan/t2048/internal/match"
	"github.com/vovakirdan/t2048/internal/platform/tui"
	"github.com/vovakirdan/t2048/internal/registry"
)

var (
	flagRender string
	flagInput  string
	flagMenu   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play one game",
	Long: `Play a single game between two strategies.

Human input:
  Mover        - up, down, left, right (or u/d/l/r, or arrow keys in the TUI prompt)
  Environment  - "(row, col) value", e.g. "(0, 3) 2"; value is 2 or 4
  Esc/Ctrl+D   - Stop entering actions and end the game

Render modes:
  auto    - Styled board on a terminal, plain dump otherwise
  styled  - Colored board with a score line
  plain   - "player :: <side>" followed by the grid
  none    - Only the final result

Examples:
  t2048 play
  t2048 play --mover human
  t2048 play --mover random --environment human --render plain
  t2048 play --menu
  t2048 play --seed 42 --max-turns 100 --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addMatchFlags(playCmd)
	playCmd.Flags().StringVar(&flagRender, "render", "auto", "Render mode: auto, styled, plain, none")
	playCmd.Flags().StringVar(&flagInput, "input", "auto", "Human input: auto, tui, plain")
	playCmd.Flags().BoolVar(&flagMenu, "menu", false, "Pick strategies from an interactive menu")
}

func runPlay(cmd *cobra.Command, _ []string) {
	cfg, err := loadMatchConfig(cmd)
	exitOnError(err)

	if flagMenu {
		width, height := tui.Size()
		selection, selErr := tui.RunStrategySelector(width, height)
		exitOnError(selErr)

		// User pressed back or quit
		if selection == nil {
			return
		}
		cfg.Mover = string(selection.Mover)
		cfg.Environment = string(selection.Environment)
	}

	moverKind, envKind, err := cfg.Kinds()
	exitOnError(err)
	exitOnError(checkPlayable(moverKind, envKind))

	logger := newLogger(cfg)
	rng, seed := newRand(cfg.Seed)
	logger.Debug("starting match", "seed", seed, "mover", moverKind, "environment", envKind, "legality", cfg.Policy())

	interactive := tui.IsTerminal(os.Stdin) && tui.IsTerminal(os.Stdout)
	useTUI := cfg.Input == config.InputTUI || (cfg.Input == config.InputAuto && interactive)

	// Both sides share one scanner so buffered input is not split between them.
	plain := engine.NewScannerSource(os.Stdin, os.Stdout)
	source := func(side t2048.Player) engine.LineSource {
		if useTUI {
			return tui.NewPromptSource(nil, nil, side == t2048.Mover)
		}
		return plain
	}

	sides, err := newStrategies(moverKind, envKind, func(side t2048.Player) registry.Env {
		return registry.Env{
			Side:   side,
			Rand:   rng,
			Input:  source(side),
			Output: os.Stdout,
			Logger: logger,
		}
	})
	exitOnError(err)

	runner := match.NewRunner(sides[t2048.Mover], sides[t2048.Environment],
		match.WithRenderer(newRenderer(cfg.Render, interactive, os.Stdout)),
		match.WithLogger(logger),
		match.WithMaxIllegal(cfg.MaxIllegalActions),
		match.WithMaxTurns(cfg.MaxTurns),
	)

	state := t2048.NewGame(rng, t2048.WithPolicy(cfg.Policy()))
	result, err := runner.Play(context.Background(), state)
	exitOnError(err)

	printResult(os.Stdout, result)
}

func newRenderer(mode config.RenderMode, interactive bool, w io.Writer) match.Renderer {
	switch mode {
	case config.RenderStyled:
		return tui.NewBoardRenderer(w)
	case config.RenderPlain:
		return match.ConsoleRenderer{W: w}
	case config.RenderNone:
		return nil
	}
	if interactive {
		return tui.NewBoardRenderer(w)
	}
	return match.ConsoleRenderer{W: w}
}

func printResult(w io.Writer, r match.Result) {
	fmt.Fprintf(w, "Game over (%s) after %d turns\n", r.Reason, r.Turns)
	fmt.Fprintf(w, "  Score:        %d\n", r.Score)
	fmt.Fprintf(w, "  Max tile:     %d\n", r.MaxTile)
	fmt.Fprintf(w, "  Tile sum:     %d\n", r.TileSum)
	fmt.Fprintf(w, "  Final score:  %.4f\n", r.FinalScore)
	if r.Illegal > 0 {
		fmt.Fprintf(w, "  Illegal:      %d\n", r.Illegal)
	}
}
