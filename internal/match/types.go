package match

import (
	"github.com/google/uuid"

	"github.com/vovakirdan/t2048/internal/games/t2048"
)

// MatchID uniquely identifies one played game.
type MatchID string

// NewMatchID returns a fresh random identifier.
func NewMatchID() MatchID {
	return MatchID(uuid.NewString())
}

// EndReason describes why a match ended.
type EndReason int

const (
	EndReasonNoActions      EndReason = iota // Side to act has no legal action
	EndReasonInputExhausted                  // A strategy stopped supplying actions
	EndReasonTurnLimit                       // Configured turn cap reached
)

func (r EndReason) String() string {
	switch r {
	case EndReasonNoActions:
		return "no_actions"
	case EndReasonInputExhausted:
		return "input_exhausted"
	case EndReasonTurnLimit:
		return "turn_limit"
	default:
		return "unknown"
	}
}

// Result contains the outcome of a completed match.
type Result struct {
	ID         MatchID
	Reason     EndReason
	LastPlayer t2048.Player // Side that was to act when play stopped
	Turns      int
	Score      int // Sum of merged tile values
	MaxTile    int
	TileSum    int
	FinalScore float64
	Illegal    int // Rejected actions across both sides
	Board      t2048.Board
}
