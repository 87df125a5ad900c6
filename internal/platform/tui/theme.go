package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// BoardTheme contains every style used to draw the 2048 board and menus.
type BoardTheme struct {
	// Tile styles, indexed by log2(value). Index 0 is the empty cell.
	Tiles []lipgloss.Style
	// Used for values beyond the end of Tiles
	Overflow lipgloss.Style

	Border lipgloss.Style

	// HUD styles
	HUDTitle lipgloss.Style
	HUDLabel lipgloss.Style
	HUDValue lipgloss.Style

	// Menu styles
	MenuTitle       lipgloss.Style
	MenuItemNormal  lipgloss.Style
	MenuItemActive  lipgloss.Style
	MenuItemMissing lipgloss.Style // Declared but unimplemented strategies
	MenuDescription lipgloss.Style
}

func tile(fg, bg string) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(fg)).
		Background(lipgloss.Color(bg)).
		Bold(true)
}

// DefaultBoardTheme returns the default visual theme.
func DefaultBoardTheme() BoardTheme {
	return BoardTheme{
		Tiles: []lipgloss.Style{
			// Empty
			lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
			tile("235", "255"), // 2
			tile("235", "230"), // 4
			tile("255", "215"), // 8
			tile("255", "209"), // 16
			tile("255", "203"), // 32
			tile("255", "196"), // 64
			tile("235", "229"), // 128
			tile("235", "228"), // 256
			tile("235", "227"), // 512
			tile("235", "226"), // 1024
			tile("235", "220"), // 2048
		},
		Overflow: tile("255", "57"),

		Border: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),

		HUDTitle: lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
		HUDLabel: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		HUDValue: lipgloss.NewStyle().Foreground(lipgloss.Color("255")),

		MenuTitle:       lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
		MenuItemNormal:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		MenuItemActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		MenuItemMissing: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		MenuDescription: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// MonochromeBoardTheme returns a grayscale theme.
func MonochromeBoardTheme() BoardTheme {
	theme := DefaultBoardTheme()
	grays := []string{"238", "250", "248", "246", "244", "242", "240", "252", "254", "255", "255", "255"}
	for i := 1; i < len(theme.Tiles); i++ {
		theme.Tiles[i] = lipgloss.NewStyle().Foreground(lipgloss.Color(grays[i])).Bold(true)
	}
	theme.Overflow = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true).Underline(true)
	return theme
}

// TileStyle returns the style for a tile value.
func (t BoardTheme) TileStyle(value int) lipgloss.Style {
	idx := 0
	for v := value; v > 1; v >>= 1 {
		idx++
	}
	if idx < len(t.Tiles) {
		return t.Tiles[idx]
	}
	return t.Overflow
}

// Global theme variable (can be changed at runtime)
var boardTheme = DefaultBoardTheme()

// SetBoardTheme sets the global theme.
func SetBoardTheme(theme BoardTheme) {
	boardTheme = theme
}

// GetBoardTheme returns the current global theme.
func GetBoardTheme() BoardTheme {
	return boardTheme
}
