package t2048

import (
	"fmt"
	"math/rand"
)

// LegalityPolicy selects how mover directions are enumerated.
type LegalityPolicy string

const (
	// PolicyExhaustive tests all four directions for every occupied cell.
	// A direction is reported exactly when moving that way changes the board.
	PolicyExhaustive LegalityPolicy = "exhaustive"

	// PolicyPriorityChain checks Down, then Up, then Right, then Left for each
	// occupied cell and keeps only the first hit. It can under-report legal
	// directions and exists for compatibility with the reference player.
	PolicyPriorityChain LegalityPolicy = "priority_chain"
)

// ParseLegalityPolicy parses a policy name.
func ParseLegalityPolicy(s string) (LegalityPolicy, error) {
	switch p := LegalityPolicy(s); p {
	case PolicyExhaustive, PolicyPriorityChain:
		return p, nil
	}
	return "", fmt.Errorf("unknown legality policy %q", s)
}

// priorityChain is the per-cell check order of PolicyPriorityChain.
var priorityChain = [...]PlayerAction{Down, Up, Right, Left}

// neighbor returns the cell adjacent to p in direction a.
func neighbor(p Placement, a PlayerAction) Placement {
	switch a {
	case Up:
		p.Row--
	case Down:
		p.Row++
	case Left:
		p.Col--
	case Right:
		p.Col++
	}
	return p
}

// canShift reports whether the tile at p could slide or merge toward a.
func (b *Board) canShift(p Placement, a PlayerAction) bool {
	n := neighbor(p, a)
	if !n.Valid() {
		return false
	}
	v := b.At(n)
	return v == 0 || v == b.At(p)
}

// PlayerActionsFor returns the legal mover directions in canonical order.
func PlayerActionsFor(board Board, policy LegalityPolicy) []PlayerAction {
	var found [len(PlayerActions)]bool

	for r := range BoardSize {
		for c := range BoardSize {
			p := Placement{Row: r, Col: c}
			if board.At(p) == 0 {
				continue
			}

			if policy == PolicyPriorityChain {
				for _, a := range priorityChain {
					if board.canShift(p, a) {
						found[a] = true
						break
					}
				}
				continue
			}

			for _, a := range PlayerActions {
				if board.canShift(p, a) {
					found[a] = true
				}
			}
		}
	}

	var actions []PlayerAction
	for _, a := range PlayerActions {
		if found[a] {
			actions = append(actions, a)
		}
	}
	return actions
}

// EnvironmentActionsFor returns every (empty cell, value) pair.
func EnvironmentActionsFor(board Board) []EnvironmentAction {
	empty := EmptyCells(board)
	actions := make([]EnvironmentAction, 0, len(empty)*len(SpawnValues))
	for _, p := range empty {
		for _, v := range SpawnValues {
			actions = append(actions, EnvironmentAction{Placement: p, Value: v})
		}
	}
	return actions
}

// AllActions returns the deduplicated legal actions for the side to act.
// An empty result means the game is over.
func (s *GameState) AllActions() []Action {
	var actions []Action

	switch s.player {
	case Mover:
		for _, a := range PlayerActionsFor(s.board, s.policy) {
			actions = append(actions, a)
		}
	case Environment:
		for _, a := range EnvironmentActionsFor(s.board) {
			actions = append(actions, a)
		}
	}

	return actions
}

// RandomAction draws a uniformly random legal action. For the environment
// it samples an empty cell and the tile value independently, which matches
// uniform sampling over AllActions because both values are equally likely.
// Returns false when no action exists.
func (s *GameState) RandomAction(rng *rand.Rand) (Action, bool) {
	if s.player == Environment {
		empty := EmptyCells(s.board)
		if len(empty) == 0 {
			return nil, false
		}
		p := empty[rng.Intn(len(empty))]
		return EnvironmentAction{Placement: p, Value: SpawnValues[rng.Intn(len(SpawnValues))]}, true
	}

	actions := s.AllActions()
	if len(actions) == 0 {
		return nil, false
	}
	return actions[rng.Intn(len(actions))], true
}
