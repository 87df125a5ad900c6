package t2048

import (
	"fmt"
	"strconv"
	"strings"
)

// CellWidth returns the column width needed to print every value on the board.
func CellWidth(board Board) int {
	width := 1
	for r := range BoardSize {
		for c := range BoardSize {
			if w := len(strconv.Itoa(board[r][c])); w > width {
				width = w
			}
		}
	}
	return width
}

// Console returns a plain text dump of the state: whose turn it is, then the
// grid with each value right-aligned in columns sized to the widest value.
func (s *GameState) Console() string {
	var b strings.Builder

	fmt.Fprintf(&b, "player :: %s\n", s.player)

	width := CellWidth(s.board)
	for r := range BoardSize {
		for c := range BoardSize {
			fmt.Fprintf(&b, " %*d ", width, s.board[r][c])
		}
		b.WriteString("\n")
	}

	return b.String()
}
