// Package engine defines the decision-making abstraction shared by every
// player: a Strategy picks the next action for whatever State it is shown.
//
// Strategies are generic over the action type so the same implementations
// work for any game that can enumerate and apply its actions.
package engine

import (
	"errors"
	"math/rand"
)

// ErrNotImplemented is returned by declared strategies that have no search yet.
var ErrNotImplemented = errors.New("strategy not implemented")

// State is the capability set a strategy may rely on.
type State[A any] interface {
	// AllActions returns the legal actions for the side to act.
	// An empty result means no action is available.
	AllActions() []A

	// Apply applies an action and passes the turn.
	Apply(action A) error
}

// Sampler is implemented by states that can draw a uniformly random legal
// action faster than enumerating them all.
type Sampler[A any] interface {
	RandomAction(rng *rand.Rand) (A, bool)
}

// Strategy chooses actions.
//
// NextAction returns ok=false with a nil error when no action is available;
// that is the normal end of a game, not a failure. Strategies must treat s as
// read-only.
type Strategy[A any] interface {
	Name() string
	NextAction(s State[A]) (action A, ok bool, err error)
}
