package t2048

// Snapshot captures the observable game state for logging and replay checks.
type Snapshot struct {
	Turns      int
	Player     Player
	Board      Board
	Score      int
	TileSum    int
	MaxTile    int
	EmptyCells int
	Legal      int // Number of legal actions for Player
}

// Snapshot returns the current game snapshot.
func (s *GameState) Snapshot() Snapshot {
	return Snapshot{
		Turns:      s.turns,
		Player:     s.player,
		Board:      s.board,
		Score:      s.score,
		TileSum:    TileSum(s.board),
		MaxTile:    MaxTile(s.board),
		EmptyCells: len(EmptyCells(s.board)),
		Legal:      len(s.AllActions()),
	}
}
