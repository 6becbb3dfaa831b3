package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/monster-spawn/internal/level"
	"github.com/vovakirdan/monster-spawn/internal/storage"
)

// maxHistoryRuns is the number of runs loaded per filter.
const maxHistoryRuns = 100

// HistorySource is the part of storage.Store the history screen reads.
type HistorySource interface {
	RecentRuns(limit int) ([]storage.RunEntry, error)
	RunsByDifficulty(difficulty string, limit int) ([]storage.RunEntry, error)
}

// HistoryModel is the Bubble Tea model for the run history screen.
type HistoryModel struct {
	filters   []string // "All" followed by each difficulty
	filter    int
	source    HistorySource
	runs      []storage.RunEntry
	loadErr   error
	table     table.Model
	help      help.Model
	keys      KeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewHistoryModel creates a history screen reading from source.
func NewHistoryModel(source HistorySource, width, height int) HistoryModel {
	filters := []string{"All"}
	for _, d := range level.Difficulties() {
		filters = append(filters, d.String())
	}

	m := HistoryModel{
		filters: filters,
		source:  source,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		width:   width,
		height:  height,
	}
	m.table = m.createTable()
	m.loadRuns()

	return m
}

// createTable creates a new table sized to the window.
func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "When", Width: 16},
		{Title: "Difficulty", Width: 10},
		{Title: "Built", Width: 6},
		{Title: "Cloned", Width: 7},
		{Title: "Source", Width: 6},
		{Title: "Result", Width: 20},
	}

	// Give the result column whatever width is left
	used := 0
	for _, c := range columns[:len(columns)-1] {
		used += c.Width + 2
	}
	if rest := m.width - 6 - used; rest > columns[5].Width {
		columns[5].Width = rest
	}

	height := m.height - 8 // Leave room for header, tabs and help
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
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

// loadRuns loads the runs for the current filter.
func (m *HistoryModel) loadRuns() {
	m.runs, m.loadErr = nil, nil
	if m.source != nil {
		if m.filter == 0 {
			m.runs, m.loadErr = m.source.RecentRuns(maxHistoryRuns)
		} else {
			m.runs, m.loadErr = m.source.RunsByDifficulty(m.filters[m.filter], maxHistoryRuns)
		}
	}
	m.updateTableRows()
}

// updateTableRows updates the table with the loaded runs.
func (m *HistoryModel) updateTableRows() {
	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		rows[i] = table.Row{
			r.CreatedAt.Local().Format("Jan 02 15:04:05"),
			r.Difficulty,
			fmt.Sprintf("%d", r.MonstersBuilt),
			fmt.Sprintf("%d", r.EntitiesSpawned),
			r.Source,
			RunResult(r),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// RunResult summarizes the outcome column of a run.
func RunResult(r storage.RunEntry) string {
	if r.Error != "" {
		return "failed: " + r.Error
	}
	return fmt.Sprintf("ok (%d lines)", r.Lines)
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history screen.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Right), key.Matches(msg, m.keys.History):
			m.filter = (m.filter + 1) % len(m.filters)
			m.loadRuns()
			return m, nil

		case key.Matches(msg, m.keys.Left):
			m.filter--
			if m.filter < 0 {
				m.filter = len(m.filters) - 1
			}
			m.loadRuns()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table for scrolling
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history screen.
func (m HistoryModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(centerText("RUN HISTORY", m.width)))
	b.WriteString("\n\n")

	tabs := make([]string, len(m.filters))
	for i, f := range m.filters {
		if i == m.filter {
			tabs[i] = activeTabStyle.Render(f)
		} else {
			tabs[i] = tabStyle.Render(f)
		}
	}
	b.WriteString(centerText(lipgloss.JoinHorizontal(lipgloss.Top, tabs...), m.width))
	b.WriteString("\n\n")

	b.WriteString(boxStyle.Render(m.renderTableContent()))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(historyHelp{m.keys})))

	return b.String()
}

// renderTableContent renders the table or an empty/error message.
func (m HistoryModel) renderTableContent() string {
	if m.loadErr != nil {
		return errorStyle.Render("Could not load history: " + m.loadErr.Error())
	}
	if len(m.runs) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No runs recorded yet.\nPlay with --record to keep a history.")
	}
	return m.table.View()
}

// Filter returns the name of the active filter.
func (m HistoryModel) Filter() string {
	return m.filters[m.filter]
}

// Runs returns the runs currently shown.
func (m HistoryModel) Runs() []storage.RunEntry {
	return m.runs
}

// IsGoingBack returns true if user wants to go back to the picker.
func (m HistoryModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m HistoryModel) IsQuitting() bool {
	return m.quitting
}

// RunHistory runs the history screen.
// Returns true if user wants to go back, false if quitting.
func RunHistory(source HistorySource, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(
		NewHistoryModel(source, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(HistoryModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
