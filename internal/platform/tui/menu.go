package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/monster-spawn/internal/level"
)

// MenuItem represents a selectable difficulty in the picker.
type MenuItem struct {
	Difficulty level.Difficulty
	Title      string
	Summary    string
}

// MenuModel is the Bubble Tea model for the difficulty picker.
type MenuModel struct {
	items       []MenuItem
	cursor      int
	width       int
	keys        KeyMap
	help        help.Model
	quitting    bool
	selected    *MenuItem // Set when user selects a difficulty
	openHistory bool      // True if user pressed Tab for history
}

// NewMenuModel creates a picker listing every supported difficulty.
func NewMenuModel(width int) MenuModel {
	difficulties := level.Difficulties()
	items := make([]MenuItem, 0, len(difficulties))
	for _, d := range difficulties {
		items = append(items, MenuItem{
			Difficulty: d,
			Title:      d.String(),
			Summary:    summaryFor(d),
		})
	}

	return MenuModel{
		items: items,
		width: width,
		keys:  DefaultKeyMap(),
		help:  help.New(),
	}
}

func summaryFor(d level.Difficulty) string {
	switch d {
	case level.Easy:
		return "no monsters"
	case level.Medium:
		return "zombie, vampire and a cloned zombie"
	default:
		return ""
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit // Exit picker to run the game
		}

	case MenuActionHistory:
		m.openHistory = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting || m.selected != nil || m.openHistory {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("M O N S T E R S", m.width)))
	b.WriteString("\n")
	b.WriteString(subtleStyle.Render(centerText("Select a difficulty", m.width)))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		style := itemStyle
		if i == m.cursor {
			cursor = "> "
			style = selectedItemStyle
		}

		line := fmt.Sprintf("%s%-8s %s", cursor, item.Title, subtleStyle.Render(item.Summary))
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsHistory returns true if user requested the run history.
func (m MenuModel) WantsHistory() bool {
	return m.openHistory
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Difficulty   level.Difficulty
	Selected     bool
	WantsHistory bool
	Quit         bool
}

// RunMenu runs the picker inline and returns the selection result.
func RunMenu(width int, opts ...tea.ProgramOption) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(width), opts...)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Quit: true}, nil
	}

	switch {
	case m.WantsHistory():
		return MenuResult{WantsHistory: true}, nil
	case m.Selected() != nil:
		return MenuResult{Difficulty: m.Selected().Difficulty, Selected: true}, nil
	default:
		return MenuResult{Quit: true}, nil
	}
}
