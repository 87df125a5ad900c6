package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/t2048/internal/games/t2048"
)

// KeyMapper translates Bubble Tea key messages to menu and game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKeyToDirection translates arrow keys to a Mover action.
// Letter keys are left to the text input so they can be typed.
func (km *KeyMapper) MapKeyToDirection(msg tea.KeyMsg) (t2048.PlayerAction, bool) {
	switch msg.Type {
	case tea.KeyUp:
		return t2048.Up, true
	case tea.KeyDown:
		return t2048.Down, true
	case tea.KeyLeft:
		return t2048.Left, true
	case tea.KeyRight:
		return t2048.Right, true
	}
	return 0, false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	}

	return MenuActionNone
}
