// Package players binds the generic engine strategies to 2048 and registers
// them with the strategy registry.
package players

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/t2048/internal/engine"
	"github.com/vovakirdan/t2048/internal/games/t2048"
	"github.com/vovakirdan/t2048/internal/registry"
)

// Search defaults used until the search strategies exist.
const (
	DefaultMinimaxDepth = 3
	DefaultMCTSRollouts = 1000
)

func init() {
	registry.Register(registry.Info{
		Kind:        registry.KindRandom,
		Description: "Uniformly random legal action",
		Implemented: true,
	}, newRandom)

	registry.Register(registry.Info{
		Kind:        registry.KindHuman,
		Description: "Reads actions typed at the terminal",
		Implemented: true,
	}, newHuman)

	registry.Register(registry.Info{
		Kind:        registry.KindMinimax,
		Description: "Depth-limited minimax search",
	}, func(registry.Env) (registry.Strategy, error) {
		return &engine.Minimax[t2048.Action]{Depth: DefaultMinimaxDepth}, nil
	})

	registry.Register(registry.Info{
		Kind:        registry.KindMCTS,
		Description: "Monte-Carlo tree search",
	}, func(registry.Env) (registry.Strategy, error) {
		return &engine.MCTS[t2048.Action]{Rollouts: DefaultMCTSRollouts}, nil
	})
}

func newRandom(env registry.Env) (registry.Strategy, error) {
	if env.Rand == nil {
		return nil, errors.New("random strategy needs a random source")
	}
	return engine.NewRandom[t2048.Action](env.Rand), nil
}

func newHuman(env registry.Env) (registry.Strategy, error) {
	if env.Input == nil {
		return nil, errors.New("human strategy needs an input source")
	}

	out := env.Output
	if out == nil {
		out = io.Discard
	}
	logger := env.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	side := env.Side
	parse := func(line string) (t2048.Action, error) {
		return t2048.ParseAction(side, line)
	}

	return engine.NewHuman[t2048.Action](env.Input, parse,
		engine.WithPrompt[t2048.Action](Prompt(side)),
		engine.WithDiagnostics[t2048.Action](out),
		engine.WithLogger[t2048.Action](logger.With("side", side.String())),
	), nil
}

// Prompt returns the input hint shown to a human playing side.
func Prompt(side t2048.Player) string {
	switch side {
	case t2048.Environment:
		return "place tile [(row, col) 2|4]> "
	default:
		return fmt.Sprintf("move [%s|%s|%s|%s]> ", t2048.Up, t2048.Down, t2048.Left, t2048.Right)
	}
}
