// Package t2048 implements 2048 as a strictly alternating two-sided game:
// a Mover chooses directional moves and an Environment places new tiles.
package t2048

import (
	"errors"
	"fmt"
	"math/rand"
)

// Player identifies whose turn it is.
type Player int

const (
	Mover Player = iota
	Environment
)

func (p Player) String() string {
	switch p {
	case Mover:
		return "Mover"
	case Environment:
		return "Environment"
	default:
		return "Unknown"
	}
}

// Other returns the opposing side.
func (p Player) Other() Player {
	if p == Mover {
		return Environment
	}
	return Mover
}

// ErrIllegalAction matches every *IllegalActionError via errors.Is.
var ErrIllegalAction = errors.New("illegal action")

// IllegalActionError reports a rejected action. The state is never modified
// when it is returned.
type IllegalActionError struct {
	Action Action
	Reason string
}

func (e *IllegalActionError) Error() string {
	return fmt.Sprintf("illegal action %v: %s", e.Action, e.Reason)
}

// Is makes errors.Is(err, ErrIllegalAction) succeed.
func (e *IllegalActionError) Is(target error) bool {
	return target == ErrIllegalAction
}

// GameState holds the board and the side to act. Apply is the only way
// to change it.
type GameState struct {
	board  Board
	player Player
	policy LegalityPolicy

	score int // Points gained from merges
	turns int // Accepted actions
}

// Option configures a GameState.
type Option func(*GameState)

// WithPolicy sets the mover legality policy used by AllActions.
func WithPolicy(p LegalityPolicy) Option {
	return func(s *GameState) {
		s.policy = p
	}
}

// NewGame creates a game with two tiles at distinct random cells, each
// independently valued 2 or 4. The mover acts first.
func NewGame(rng *rand.Rand, opts ...Option) *GameState {
	s := newState(Board{}, Mover, opts)

	cells := rng.Perm(CellCount)[:2]
	for _, idx := range cells {
		p := Placement{Row: idx / BoardSize, Col: idx % BoardSize}
		s.board[p.Row][p.Col] = SpawnValues[rng.Intn(len(SpawnValues))]
	}

	return s
}

// NewGameFromBoard creates a game from an existing position.
func NewGameFromBoard(board Board, player Player, opts ...Option) *GameState {
	return newState(board, player, opts)
}

func newState(board Board, player Player, opts []Option) *GameState {
	s := &GameState{
		board:  board,
		player: player,
		policy: PolicyExhaustive,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Board returns a copy of the board.
func (s *GameState) Board() Board {
	return s.board
}

// Player returns the side to act.
func (s *GameState) Player() Player {
	return s.player
}

// Policy returns the legality policy.
func (s *GameState) Policy() LegalityPolicy {
	return s.policy
}

// Score returns the points gained from merges so far.
func (s *GameState) Score() int {
	return s.score
}

// Turns returns the number of accepted actions.
func (s *GameState) Turns() int {
	return s.turns
}

// Clone returns an independent copy for lookahead.
func (s *GameState) Clone() *GameState {
	c := *s
	return &c
}

// Apply validates and applies an action, then passes the turn.
// Returns *IllegalActionError without touching the state when the action
// belongs to the other side or targets an occupied cell.
func (s *GameState) Apply(action Action) error {
	switch a := action.(type) {
	case PlayerAction:
		if s.player != Mover {
			return &IllegalActionError{Action: a, Reason: "not the mover's turn"}
		}
		if !a.valid() {
			return &IllegalActionError{Action: a, Reason: "unknown direction"}
		}
		s.score += s.board.move(a)
		s.player = Environment

	case EnvironmentAction:
		if s.player != Environment {
			return &IllegalActionError{Action: a, Reason: "not the environment's turn"}
		}
		if !a.Placement.Valid() {
			return &IllegalActionError{Action: a, Reason: "placement out of bounds"}
		}
		if !validSpawnValue(a.Value) {
			return &IllegalActionError{Action: a, Reason: "tile value must be 2 or 4"}
		}
		if s.board.At(a.Placement) != 0 {
			return &IllegalActionError{Action: a, Reason: "cell is occupied"}
		}
		s.board[a.Placement.Row][a.Placement.Col] = a.Value
		s.player = Mover

	default:
		return &IllegalActionError{Action: action, Reason: "unsupported action type"}
	}

	s.turns++
	return nil
}
