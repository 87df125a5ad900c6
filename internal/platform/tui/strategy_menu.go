package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/t2048/internal/games/t2048"
	"github.com/vovakirdan/t2048/internal/registry"
)

// StrategySelection holds the user's choice of strategy for both sides.
type StrategySelection struct {
	Mover       registry.Kind
	Environment registry.Kind
}

// StrategyMenuModel lets users choose a strategy for the Mover, then for the
// Environment.
type StrategyMenuModel struct {
	items     []registry.Info
	cursor    int
	side      t2048.Player // Side currently being chosen
	notice    string
	width     int
	height    int
	keyMapper *KeyMapper
	selection StrategySelection
	choosing  bool
	quitting  bool
	back      bool
}

// NewStrategyMenuModel creates a menu listing every registered strategy kind.
func NewStrategyMenuModel(width, height int) StrategyMenuModel {
	items := make([]registry.Info, 0, len(registry.Kinds))
	for _, k := range registry.Kinds {
		if info, ok := registry.Lookup(k); ok {
			items = append(items, info)
		}
	}

	return StrategyMenuModel{
		items:     items,
		side:      t2048.Mover,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m StrategyMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m StrategyMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(m.keyMapper.MapKeyToMenuAction(msg))
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m StrategyMenuModel) handleKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
		m.notice = ""
	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
		m.notice = ""
	case MenuActionSelect:
		if len(m.items) == 0 {
			return m, nil
		}
		item := m.items[m.cursor]
		if !item.Implemented {
			m.notice = fmt.Sprintf("%s is not implemented yet", item.Kind)
			return m, nil
		}
		if m.side == t2048.Mover {
			m.selection.Mover = item.Kind
			m.side = t2048.Environment
			m.cursor = 0
			m.notice = ""
			return m, nil
		}
		m.selection.Environment = item.Kind
		m.choosing = false
		return m, tea.Quit
	case MenuActionBack:
		if m.side == t2048.Environment {
			m.side = t2048.Mover
			m.cursor = 0
			m.notice = ""
			return m, nil
		}
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the strategy list for the side being chosen.
func (m StrategyMenuModel) View() string {
	if m.quitting {
		return ""
	}

	theme := boardTheme
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("2 0 4 8", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(fmt.Sprintf("Select %s strategy:", m.side), m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%-8s %s", cursor, item.Kind, item.Description)

		style := theme.MenuItemNormal
		switch {
		case !item.Implemented:
			style = theme.MenuItemMissing
		case i == m.cursor:
			style = theme.MenuItemActive
		}
		b.WriteString(centerStyled(style.Render(line), len(line), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.notice != "" {
		b.WriteString(centerText(m.notice, m.width))
		b.WriteString("\n")
	}
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m StrategyMenuModel) Selected() *StrategySelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsChoosing returns true if still in selection mode.
func (m StrategyMenuModel) IsChoosing() bool {
	return m.choosing
}

// IsQuitting returns true if user wants to quit.
func (m StrategyMenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back on the first step.
func (m StrategyMenuModel) WantsBack() bool {
	return m.back
}

// RunStrategySelector runs the strategy picker and returns the selection,
// or nil if the user backed out.
func RunStrategySelector(width, height int) (*StrategySelection, error) {
	model := NewStrategyMenuModel(width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(StrategyMenuModel)
	if !ok {
		return nil, nil
	}

	if m.IsQuitting() || m.WantsBack() {
		return nil, nil
	}

	return m.Selected(), nil
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	return centerStyled(text, len(text), width)
}

// centerStyled centers already-styled text whose visible length is textLen.
func centerStyled(text string, textLen, width int) string {
	if textLen >= width {
		return text
	}
	padding := (width - textLen) / 2
	return strings.Repeat(" ", padding) + text
}
