package t2048

import "sort"

// ScoreBreakpoint normalizes board scores. Games rarely reach a tile sum
// above it; values past it are not clamped.
const ScoreBreakpoint = 4096

// FinalScore returns the tile sum normalized by ScoreBreakpoint.
func FinalScore(board Board) float64 {
	return float64(TileSum(board)) / ScoreBreakpoint
}

// RolloutScore is a cheap position heuristic: the tile sum minus every
// local peak except the largest, normalized by ScoreBreakpoint. A peak is a
// cell strictly greater than all of its orthogonal neighbours.
func RolloutScore(board Board) float64 {
	score := TileSum(board)

	var peaks []int
	for r := range BoardSize {
		for c := range BoardSize {
			if isPeak(board, Placement{Row: r, Col: c}) {
				peaks = append(peaks, board[r][c])
			}
		}
	}

	if len(peaks) > 1 {
		sort.Ints(peaks)
		for _, v := range peaks[:len(peaks)-1] {
			score -= v
		}
	}

	return float64(score) / ScoreBreakpoint
}

func isPeak(board Board, p Placement) bool {
	v := board.At(p)
	for _, a := range PlayerActions {
		n := neighbor(p, a)
		if n.Valid() && board.At(n) >= v {
			return false
		}
	}
	return true
}
