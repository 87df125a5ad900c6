package engine

import "math/rand"

// Random picks uniformly among the legal actions.
type Random[A any] struct {
	rng *rand.Rand
}

// NewRandom creates a random strategy that owns rng.
func NewRandom[A any](rng *rand.Rand) *Random[A] {
	return &Random[A]{rng: rng}
}

// Name returns "random".
func (r *Random[A]) Name() string {
	return "random"
}

// NextAction returns a uniformly random legal action.
func (r *Random[A]) NextAction(s State[A]) (A, bool, error) {
	if sampler, ok := s.(Sampler[A]); ok {
		a, ok := sampler.RandomAction(r.rng)
		return a, ok, nil
	}

	var zero A
	actions := s.AllActions()
	if len(actions) == 0 {
		return zero, false, nil
	}
	return actions[r.rng.Intn(len(actions))], true, nil
}
