package tui

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/t2048/internal/games/t2048"
)

const (
	minCellWidth = 6 // Fits "2048" with padding
	emptyGlyph   = "·"
)

// RenderBoard draws the state as a HUD line above a bordered, colored grid.
func RenderBoard(state *t2048.GameState, theme BoardTheme) string {
	board := state.Board()

	width := max(t2048.CellWidth(board)+2, minCellWidth)

	rows := make([]string, 0, t2048.BoardSize)
	for r := range t2048.BoardSize {
		cells := make([]string, 0, t2048.BoardSize)
		for c := range t2048.BoardSize {
			v := board[r][c]
			text := emptyGlyph
			if v != 0 {
				text = strconv.Itoa(v)
			}
			cells = append(cells, theme.TileStyle(v).
				Width(width).
				Align(lipgloss.Center).
				Render(text))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	grid := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border.GetForeground()).
		Render(lipgloss.JoinVertical(lipgloss.Left, rows...))

	return lipgloss.JoinVertical(lipgloss.Left, renderHUD(state, theme), grid)
}

func renderHUD(state *t2048.GameState, theme BoardTheme) string {
	field := func(label string, value any) string {
		return theme.HUDLabel.Render(label+": ") + theme.HUDValue.Render(fmt.Sprint(value))
	}

	parts := []string{
		theme.HUDTitle.Render("2048"),
		field("Score", state.Score()),
		field("Max", t2048.MaxTile(state.Board())),
		field("Turn", state.Turns()),
		field("To act", state.Player()),
	}
	return strings.Join(parts, "  ")
}

// BoardRenderer prints a styled board after every accepted action.
type BoardRenderer struct {
	w     io.Writer
	theme BoardTheme
}

// NewBoardRenderer creates a renderer writing to w with the current global theme.
func NewBoardRenderer(w io.Writer) *BoardRenderer {
	return &BoardRenderer{w: w, theme: GetBoardTheme()}
}

// Render writes the styled board followed by a blank line.
func (r *BoardRenderer) Render(state *t2048.GameState) error {
	_, err := fmt.Fprintf(r.w, "%s\n\n", RenderBoard(state, r.theme))
	return err
}
