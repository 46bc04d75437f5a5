package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/greensward/tinygolf/internal/storage"
)

// maxRounds bounds how much history the view loads.
const maxRounds = 100

// ScoresKeyMap defines the key bindings for the round history screen.
type ScoresKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoresKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoresKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Quit}}
}

// DefaultScoresKeyMap returns default key bindings.
func DefaultScoresKeyMap() ScoresKeyMap {
	return ScoresKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoresModel is the Bubble Tea model for the round history screen.
type ScoresModel struct {
	store    *storage.Store
	rounds   []storage.RoundEntry
	stats    *storage.RoundStats
	table    table.Model
	help     help.Model
	keys     ScoresKeyMap
	width    int
	height   int
	quitting bool
}

// NewScoresModel creates a new round history model.
func NewScoresModel(store *storage.Store, width, height int) ScoresModel {
	h := help.New()
	h.ShowAll = false

	m := ScoresModel{
		store:  store,
		keys:   DefaultScoresKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}

	m.table = m.createTable()
	m.loadRounds()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *ScoresModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Date", Width: 14},
		{Title: "Total", Width: 6},
		{Title: "Par", Width: 5},
		{Title: "+/-", Width: 5},
		{Title: "Holes", Width: 28},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(m.height-8), // Leave room for header, help, and margins
	)

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

// loadRounds refreshes history and stats from the store.
func (m *ScoresModel) loadRounds() {
	if m.store == nil {
		m.rounds = nil
		m.stats = nil
		m.updateTableRows()
		return
	}

	rounds, err := m.store.RecentRounds(maxRounds)
	if err != nil {
		rounds = nil
	}
	m.rounds = rounds

	stats, err := m.store.GetRoundStats()
	if err != nil {
		stats = nil
	}
	m.stats = stats

	m.updateTableRows()
}

// updateTableRows updates the table with current rounds.
func (m *ScoresModel) updateTableRows() {
	rows := make([]table.Row, len(m.rounds))
	for i, r := range m.rounds {
		rows[i] = table.Row{
			r.CreatedAt.Format("Jan 02 15:04"),
			fmt.Sprintf("%d", r.Total),
			fmt.Sprintf("%d", r.Par),
			fmt.Sprintf("%+d", r.ToPar()),
			formatHoles(r.Strokes),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// formatHoles renders per-hole strokes as a compact space-separated list.
func formatHoles(strokes []int) string {
	parts := make([]string, len(strokes))
	for i, n := range strokes {
		parts[i] = fmt.Sprintf("%d", n)
	}
	return strings.Join(parts, " ")
}

// Init initializes the model.
func (m ScoresModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the round history screen.
func (m ScoresModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the round history.
func (m ScoresModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(centerText("ROUND HISTORY", m.width)))
	b.WriteString("\n\n")

	if m.stats != nil && m.stats.RoundsCount > 0 {
		statsStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
		line := fmt.Sprintf("rounds %d   best %d   average %.1f   last %s",
			m.stats.RoundsCount, m.stats.BestTotal, m.stats.AvgTotal,
			m.stats.LastPlayed.Format("Jan 02"))
		b.WriteString(statsStyle.Render(centerText(line, m.width)))
		b.WriteString("\n\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(centerText(tableStyle.Render(m.renderTableContent()), m.width))

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or empty message.
func (m ScoresModel) renderTableContent() string {
	if len(m.rounds) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No rounds recorded yet.\nPlay a full round to see it here!")
	}

	return m.table.View()
}

// centerText centers a text block within the given width.
func centerText(text string, width int) string {
	lines := strings.Split(text, "\n")
	out := make([]string, len(lines))
	for i, line := range lines {
		pad := (width - lipgloss.Width(line)) / 2
		if pad < 0 {
			pad = 0
		}
		out[i] = strings.Repeat(" ", pad) + line
	}
	return strings.Join(out, "\n")
}

// RunScores runs the round history screen.
func RunScores(store *storage.Store, width, height int) error {
	model := NewScoresModel(store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
