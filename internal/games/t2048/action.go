package t2048

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnknownAction is returned when text cannot be parsed into an action.
var ErrUnknownAction = errors.New("unknown action")

// Action is either a PlayerAction or an EnvironmentAction.
type Action interface {
	// Side returns the player allowed to take this action.
	Side() Player
	String() string
}

// PlayerAction is a directional move chosen by the mover.
// The declaration order is the canonical order used by enumeration.
type PlayerAction int

const (
	Up PlayerAction = iota
	Down
	Left
	Right
)

// PlayerActions lists all directions in canonical order.
var PlayerActions = [...]PlayerAction{Up, Down, Left, Right}

// Side returns Mover.
func (a PlayerAction) Side() Player {
	return Mover
}

func (a PlayerAction) String() string {
	switch a {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return "Unknown"
	}
}

func (a PlayerAction) valid() bool {
	return a >= Up && a <= Right
}

// SpawnValues are the tile values the environment may place.
var SpawnValues = [...]int{2, 4}

// EnvironmentAction places a new tile on an empty cell.
type EnvironmentAction struct {
	Placement Placement
	Value     int
}

// Side returns Environment.
func (a EnvironmentAction) Side() Player {
	return Environment
}

func (a EnvironmentAction) String() string {
	return fmt.Sprintf("%s %d", a.Placement, a.Value)
}

func validSpawnValue(v int) bool {
	for _, sv := range SpawnValues {
		if v == sv {
			return true
		}
	}
	return false
}

// ParsePlayerAction parses a direction. Input is trimmed and matched
// case-insensitively against the full word or its first letter.
func ParsePlayerAction(s string) (PlayerAction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "u":
		return Up, nil
	case "down", "d":
		return Down, nil
	case "left", "l":
		return Left, nil
	case "right", "r":
		return Right, nil
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownAction, s)
}

// ParseEnvironmentAction parses a tile placement written as "(r, c) v" or "r c v".
func ParseEnvironmentAction(s string) (EnvironmentAction, error) {
	cleaned := strings.NewReplacer("(", " ", ")", " ", ",", " ").Replace(s)
	fields := strings.Fields(cleaned)
	if len(fields) != 3 {
		return EnvironmentAction{}, fmt.Errorf("%w %q: want \"(row, col) value\"", ErrUnknownAction, s)
	}

	nums := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return EnvironmentAction{}, fmt.Errorf("%w %q: %q is not a number", ErrUnknownAction, s, f)
		}
		nums[i] = n
	}

	p, err := NewPlacement(nums[0], nums[1])
	if err != nil {
		return EnvironmentAction{}, fmt.Errorf("%w %q: %w", ErrUnknownAction, s, err)
	}
	if !validSpawnValue(nums[2]) {
		return EnvironmentAction{}, fmt.Errorf("%w %q: value must be 2 or 4", ErrUnknownAction, s)
	}

	return EnvironmentAction{Placement: p, Value: nums[2]}, nil
}

// ParseAction parses text into an action for the given side.
func ParseAction(side Player, s string) (Action, error) {
	switch side {
	case Mover:
		a, err := ParsePlayerAction(s)
		if err != nil {
			return nil, err
		}
		return a, nil
	case Environment:
		a, err := ParseEnvironmentAction(s)
		if err != nil {
			return nil, err
		}
		return a, nil
	default:
		return nil, fmt.Errorf("%w: no parser for side %v", ErrUnknownAction, side)
	}
}
