package t2048

// BoardSize is the board dimension.
const BoardSize = 4

// CellCount is the number of cells on the board.
const CellCount = BoardSize * BoardSize

// Board is a 4x4 grid of tile values indexed [row][col]. Zero is an empty cell.
type Board [BoardSize][BoardSize]int

// At returns the value at the given placement.
func (b *Board) At(p Placement) int {
	return b[p.Row][p.Col]
}

// moveLeft slides and merges every row toward column 0 in place.
// Returns the score gained from merges.
func (b *Board) moveLeft() int {
	score := 0

	for r := range BoardSize {
		row := &b[r]
		cursor := 0

		for {
			next := -1
			for c := cursor + 1; c < BoardSize; c++ {
				if row[c] != 0 {
					next = c
					break
				}
			}
			if next < 0 {
				break
			}

			switch {
			case row[cursor] == 0:
				// Slide into the gap and keep the cursor so the tile can still merge.
				row[cursor] = row[next]
				row[next] = 0
			case row[cursor] == row[next]:
				row[cursor] *= 2
				row[next] = 0
				score += row[cursor]
				cursor++
			default:
				tile := row[next]
				row[next] = 0
				row[cursor+1] = tile
				cursor++
			}
		}
	}

	return score
}

// rotateClockwise rotates the board 90 degrees clockwise: (r, c) -> (c, N-1-r).
func (b *Board) rotateClockwise() {
	var rotated Board
	for r := range BoardSize {
		for c := range BoardSize {
			rotated[c][BoardSize-1-r] = b[r][c]
		}
	}
	*b = rotated
}

// rotateCounterClockwise rotates the board 90 degrees counter-clockwise: (r, c) -> (N-1-c, r).
func (b *Board) rotateCounterClockwise() {
	var rotated Board
	for r := range BoardSize {
		for c := range BoardSize {
			rotated[BoardSize-1-c][r] = b[r][c]
		}
	}
	*b = rotated
}

// move applies a directional move in place by rotating the board so the
// move becomes a left move, sliding, and rotating back.
// Returns the score gained from merges.
func (b *Board) move(a PlayerAction) int {
	var score int

	switch a {
	case Left:
		score = b.moveLeft()
	case Right:
		b.rotateClockwise()
		b.rotateClockwise()
		score = b.moveLeft()
		b.rotateClockwise()
		b.rotateClockwise()
	case Up:
		b.rotateCounterClockwise()
		score = b.moveLeft()
		b.rotateClockwise()
	case Down:
		b.rotateClockwise()
		score = b.moveLeft()
		b.rotateCounterClockwise()
	}

	return score
}

// Slide performs a move in the given direction on a copy of the board.
// Returns the new board, score gained, and whether the board changed.
func Slide(board Board, a PlayerAction) (Board, int, bool) {
	next := board
	score := next.move(a)
	return next, score, next != board
}

// EmptyCells returns all empty placements in row-major order.
func EmptyCells(board Board) []Placement {
	var cells []Placement
	for r := range BoardSize {
		for c := range BoardSize {
			if board[r][c] == 0 {
				cells = append(cells, Placement{Row: r, Col: c})
			}
		}
	}
	return cells
}

// MaxTile returns the maximum tile value on the board.
func MaxTile(board Board) int {
	maxVal := 0
	for r := range BoardSize {
		for c := range BoardSize {
			if board[r][c] > maxVal {
				maxVal = board[r][c]
			}
		}
	}
	return maxVal
}

// TileSum returns the sum of all tiles on the board.
func TileSum(board Board) int {
	sum := 0
	for r := range BoardSize {
		for c := range BoardSize {
			sum += board[r][c]
		}
	}
	return sum
}
