// Package match drives a 2048 game between two strategies: it asks the side
// to act for an action, applies it and stops when play can no longer continue.
package match

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/t2048/internal/games/t2048"
	"github.com/vovakirdan/t2048/internal/registry"
)

// ErrTooManyIllegal is returned when one side keeps proposing rejected actions.
var ErrTooManyIllegal = errors.New("too many illegal actions")

// DefaultMaxIllegal is the number of consecutive rejected actions tolerated
// from one side.
const DefaultMaxIllegal = 3

// Runner plays matches between a Mover strategy and an Environment strategy.
type Runner struct {
	sides      [2]registry.Strategy
	renderer   Renderer
	logger     *log.Logger
	maxIllegal int
	maxTurns   int
}

// Option configures a Runner.
type Option func(*Runner)

// WithRenderer sets the renderer called after every accepted action.
func WithRenderer(r Renderer) Option {
	return func(m *Runner) {
		if r != nil {
			m.renderer = r
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *log.Logger) Option {
	return func(m *Runner) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithMaxIllegal sets how many consecutive rejected actions one side may
// propose before the match aborts. Values below 1 are ignored.
func WithMaxIllegal(n int) Option {
	return func(m *Runner) {
		if n >= 1 {
			m.maxIllegal = n
		}
	}
}

// WithMaxTurns stops the match after n accepted actions. Zero means no limit.
func WithMaxTurns(n int) Option {
	return func(m *Runner) {
		if n >= 0 {
			m.maxTurns = n
		}
	}
}

// NewRunner creates a runner for the given strategies.
func NewRunner(mover, environment registry.Strategy, opts ...Option) *Runner {
	r := &Runner{
		sides:      [2]registry.Strategy{t2048.Mover: mover, t2048.Environment: environment},
		renderer:   nopRenderer{},
		logger:     log.New(io.Discard),
		maxIllegal: DefaultMaxIllegal,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Play runs state to completion. The state is modified in place.
//
// Strategies receive a clone of the state. A rejected action is logged and
// the same side is asked again; the match fails once that side has been
// rejected maxIllegal times in a row.
func (r *Runner) Play(ctx context.Context, state *t2048.GameState) (Result, error) {
	id := NewMatchID()
	logger := r.logger.With("game", string(id))

	result := Result{ID: id}
	illegal := 0

	if err := r.renderer.Render(state); err != nil {
		return r.finish(result, state), fmt.Errorf("match: render: %w", err)
	}

	for {
		if err := ctx.Err(); err != nil {
			return r.finish(result, state), err
		}

		if r.maxTurns > 0 && state.Turns() >= r.maxTurns {
			result.Reason = EndReasonTurnLimit
			break
		}
		if len(state.AllActions()) == 0 {
			result.Reason = EndReasonNoActions
			break
		}

		side := state.Player()
		strategy := r.sides[side]

		action, ok, err := strategy.NextAction(state.Clone())
		if err != nil {
			return r.finish(result, state), fmt.Errorf("match: %s strategy %s: %w", side, strategy.Name(), err)
		}
		if !ok {
			result.Reason = EndReasonInputExhausted
			break
		}

		if err := state.Apply(action); err != nil {
			if !errors.Is(err, t2048.ErrIllegalAction) {
				return r.finish(result, state), fmt.Errorf("match: apply: %w", err)
			}
			illegal++
			result.Illegal++
			logger.Warn("illegal action",
				"side", side.String(),
				"strategy", strategy.Name(),
				"attempt", illegal,
				"error", err,
			)
			if illegal >= r.maxIllegal {
				return r.finish(result, state), fmt.Errorf("match: %s strategy %s: %w: %w", side, strategy.Name(), ErrTooManyIllegal, err)
			}
			continue
		}
		illegal = 0

		logger.Debug("action",
			"turn", state.Turns(),
			"side", side.String(),
			"action", action.String(),
		)

		if err := r.renderer.Render(state); err != nil {
			return r.finish(result, state), fmt.Errorf("match: render: %w", err)
		}
	}

	result = r.finish(result, state)
	logger.Info("game over",
		"turns", result.Turns,
		"score", result.Score,
		"max_tile", result.MaxTile,
		"reason", result.Reason.String(),
	)
	return result, nil
}

func (r *Runner) finish(result Result, state *t2048.GameState) Result {
	snap := state.Snapshot()
	result.LastPlayer = snap.Player
	result.Turns = snap.Turns
	result.Score = snap.Score
	result.MaxTile = snap.MaxTile
	result.TileSum = snap.TileSum
	result.FinalScore = t2048.FinalScore(snap.Board)
	result.Board = snap.Board
	return result
}
