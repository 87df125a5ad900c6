package t2048

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds is returned when a coordinate lies outside the board.
var ErrOutOfBounds = errors.New("placement out of bounds")

// Placement is a validated (row, column) coordinate on the board.
type Placement struct {
	Row int
	Col int
}

// NewPlacement creates a placement from a row and column pair.
func NewPlacement(row, col int) (Placement, error) {
	if row < 0 || row >= BoardSize || col < 0 || col >= BoardSize {
		return Placement{}, fmt.Errorf("(%d, %d): %w", row, col, ErrOutOfBounds)
	}
	return Placement{Row: row, Col: col}, nil
}

// PlacementFromIndex creates a placement from a row-major linear index.
func PlacementFromIndex(idx int) (Placement, error) {
	if idx < 0 || idx >= CellCount {
		return Placement{}, fmt.Errorf("index %d: %w", idx, ErrOutOfBounds)
	}
	return Placement{Row: idx / BoardSize, Col: idx % BoardSize}, nil
}

// Index returns the row-major linear index of the placement.
func (p Placement) Index() int {
	return p.Row*BoardSize + p.Col
}

// Valid reports whether the placement lies on the board.
func (p Placement) Valid() bool {
	return p.Row >= 0 && p.Row < BoardSize && p.Col >= 0 && p.Col < BoardSize
}

func (p Placement) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Col)
}
