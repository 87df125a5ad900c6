package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/t2048/internal/games/t2048"
	"github.com/vovakirdan/t2048/internal/match"
)

// Results browser layout constants
const (
	minWidthForPreview = 90 // Minimum width to show the final board next to the table
)

// ResultsKeyMap defines the key bindings for the results browser.
type ResultsKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Top  key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ResultsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Top, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ResultsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Top},
		{k.Quit},
	}
}

// DefaultResultsKeyMap returns default key bindings.
func DefaultResultsKeyMap() ResultsKeyMap {
	return ResultsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "best game"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

// ResultsModel is the Bubble Tea model for browsing simulated games,
// ranked best first.
type ResultsModel struct {
	results     []match.Result
	table       table.Model
	help        help.Model
	keys        ResultsKeyMap
	width       int
	height      int
	quitting    bool
	showPreview bool
}

// NewResultsModel creates a results browser. Results are ranked by tile sum,
// then by turns.
func NewResultsModel(results []match.Result, width, height int) ResultsModel {
	ranked := append([]match.Result(nil), results...)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].TileSum != ranked[j].TileSum {
			return ranked[i].TileSum > ranked[j].TileSum
		}
		return ranked[i].Turns > ranked[j].Turns
	})

	h := help.New()
	h.ShowAll = false

	m := ResultsModel{
		results:     ranked,
		keys:        DefaultResultsKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showPreview: width >= minWidthForPreview,
	}
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

// createTable creates a new table sized to the window.
func (m *ResultsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Max", Width: 7},
		{Title: "Tile sum", Width: 9},
		{Title: "Score", Width: 8},
		{Title: "Turns", Width: 7},
		{Title: "End", Width: 16},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header, help, and margins
	)

	// Table styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// updateTableRows fills the table from the ranked results.
func (m *ResultsModel) updateTableRows() {
	rows := make([]table.Row, len(m.results))
	for i, r := range m.results {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", r.MaxTile),
			fmt.Sprintf("%d", r.TileSum),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Turns),
			r.Reason.String(),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the model.
func (m ResultsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m ResultsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Top):
			m.table.GotoTop()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		cursor := m.table.Cursor()
		m.width = msg.Width
		m.height = msg.Height
		m.showPreview = m.width >= minWidthForPreview
		m.table = m.createTable()
		m.updateTableRows()
		m.table.SetCursor(cursor)
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the results browser.
func (m ResultsModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := fmt.Sprintf("SIMULATED GAMES - %d played", len(m.results))
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	tableRendered := frame.Render(m.renderTableContent())
	if m.showPreview {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tableRendered, "  ", m.renderPreview()))
	} else {
		b.WriteString(tableRendered)
	}

	// Help bar
	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderPreview draws the final board of the highlighted game.
func (m ResultsModel) renderPreview() string {
	r, ok := m.Highlighted()
	if !ok {
		return ""
	}
	return RenderBoard(t2048.NewGameFromBoard(r.Board, r.LastPlayer), boardTheme)
}

// renderTableContent renders the table or empty message.
func (m ResultsModel) renderTableContent() string {
	if len(m.results) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No games were played.")
	}

	return m.table.View()
}

// Highlighted returns the result under the table cursor.
func (m ResultsModel) Highlighted() (match.Result, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.results) {
		return match.Result{}, false
	}
	return m.results[i], true
}

// IsQuitting returns true if the user closed the browser.
func (m ResultsModel) IsQuitting() bool {
	return m.quitting
}

// RunResults runs the results browser until the user quits.
func RunResults(results []match.Result, width, height int) error {
	p := tea.NewProgram(
		NewResultsModel(results, width, height),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
