package engine

import "fmt"

// Minimax is the declared depth-limited minimax/expectimax player.
// Given a state it must return exactly one legal action, or ok=false when
// none exists. The search itself is not implemented yet.
type Minimax[A any] struct {
	Depth int
}

// Name returns "minimax".
func (m *Minimax[A]) Name() string {
	return "minimax"
}

// NextAction reports ErrNotImplemented unless the state has no actions.
func (m *Minimax[A]) NextAction(s State[A]) (A, bool, error) {
	return declared[A](m.Name(), s)
}

// MCTS is the declared Monte-Carlo tree search player, bounded by a
// rollout budget. The search itself is not implemented yet.
type MCTS[A any] struct {
	Rollouts int
}

// Name returns "mcts".
func (m *MCTS[A]) Name() string {
	return "mcts"
}

// NextAction reports ErrNotImplemented unless the state has no actions.
func (m *MCTS[A]) NextAction(s State[A]) (A, bool, error) {
	return declared[A](m.Name(), s)
}

// declared honours the no-action half of the contract and fails otherwise.
func declared[A any](name string, s State[A]) (A, bool, error) {
	var zero A
	if len(s.AllActions()) == 0 {
		return zero, false, nil
	}
	return zero, false, fmt.Errorf("%s: %w", name, ErrNotImplemented)
}
