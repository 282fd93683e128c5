package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/gridpath/internal/storage"
)

// History layout constants
const (
	maxHistoryRows = 100 // Max runs to load
)

// historyView selects which table the history screen shows.
type historyView int

const (
	viewRecent historyView = iota
	viewStats
)

// HistoryKeyMap defines the key bindings for the history screen.
type HistoryKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextView key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextView, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.NextView, k.Quit},
	}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextView: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "runs/stats"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HistoryModel is the Bubble Tea model for the run history screen.
type HistoryModel struct {
	store    *storage.Store
	view     historyView
	runs     []storage.RunRecord
	stats    []storage.RunStats
	table    table.Model
	help     help.Model
	keys     HistoryKeyMap
	width    int
	height   int
	quitting bool
}

// NewHistoryModel creates a new history model.
func NewHistoryModel(store *storage.Store, width, height int) HistoryModel {
	h := help.New()
	h.ShowAll = false

	m := HistoryModel{
		store:  store,
		keys:   DefaultHistoryKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.load()
	return m
}

// createTable creates a new table with columns for the active view.
func (m *HistoryModel) createTable() table.Model {
	var columns []table.Column
	if m.view == viewStats {
		columns = []table.Column{
			{Title: "Algorithm", Width: 14},
			{Title: "Runs", Width: 6},
			{Title: "Solved", Width: 7},
			{Title: "Avg Visited", Width: 12},
			{Title: "Best Path", Width: 10},
		}
	} else {
		columns = []table.Column{
			{Title: "Algorithm", Width: 10},
			{Title: "Grid", Width: 8},
			{Title: "Walls", Width: 6},
			{Title: "Path", Width: 6},
			{Title: "Visited", Width: 8},
			{Title: "Time", Width: 8},
			{Title: "Date", Width: 13},
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(m.height-6), // Leave room for title, help, and margins
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

// load fetches rows for the active view from storage.
func (m *HistoryModel) load() {
	if m.store == nil {
		m.runs, m.stats = nil, nil
		m.updateTableRows()
		return
	}

	if m.view == viewStats {
		stats, err := m.store.Stats()
		if err != nil {
			stats = nil
		}
		m.stats = stats
	} else {
		runs, err := m.store.Recent(maxHistoryRows)
		if err != nil {
			runs = nil
		}
		m.runs = runs
	}
	m.updateTableRows()
}

// updateTableRows fills the table for the active view.
func (m *HistoryModel) updateTableRows() {
	var rows []table.Row
	if m.view == viewStats {
		rows = make([]table.Row, len(m.stats))
		for i, st := range m.stats {
			best := "-"
			if st.BestLength > 0 {
				best = fmt.Sprintf("%d", st.BestLength)
			}
			rows[i] = table.Row{
				st.Algo,
				fmt.Sprintf("%d", st.Runs),
				fmt.Sprintf("%d", st.Solved),
				fmt.Sprintf("%.1f", st.AvgVisited),
				best,
			}
		}
	} else {
		rows = make([]table.Row, len(m.runs))
		for i, r := range m.runs {
			path := "none"
			if r.Found {
				path = fmt.Sprintf("%d", r.PathLength)
			}
			rows[i] = table.Row{
				r.Algo,
				fmt.Sprintf("%dx%d", r.Rows, r.Cols),
				fmt.Sprintf("%d", r.Walls),
				path,
				fmt.Sprintf("%d", r.Visited),
				fmt.Sprintf("%dms", r.DurationMS),
				r.CreatedAt.Format("Jan 02 15:04"),
			}
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
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

		case key.Matches(msg, m.keys.NextView):
			if m.view == viewRecent {
				m.view = viewStats
			} else {
				m.view = viewRecent
			}
			m.table = m.createTable()
			m.load()
			return m, nil

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

// View renders the history screen.
func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := "RUN HISTORY"
	if m.view == viewStats {
		title = "ALGORITHM STATS"
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(m.table.View())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// RunHistory starts the history screen as its own program.
func RunHistory(store *storage.Store, width, height int) error {
	p := tea.NewProgram(
		NewHistoryModel(store, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
