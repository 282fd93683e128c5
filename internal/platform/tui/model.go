package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gridpath/internal/core"
	"github.com/vovakirdan/gridpath/internal/storage"
	"github.com/vovakirdan/gridpath/internal/visualizer"
)

// Model is the Bubble Tea model wrapping a visualizer session.
type Model struct {
	session  *visualizer.Session
	screen   *core.Screen
	store    *storage.Store
	keymap   *KeyMapper
	config   core.RuntimeConfig
	frame    core.InputFrame
	runStart time.Time
	runSaved bool
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given session.
func NewModel(session *visualizer.Session, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		session: session,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:   store,
		keymap:  NewKeyMapper(),
		config:  cfg,
		frame:   core.NewInputFrame(),
	}
}

// Init initializes the model and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.session.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.keymap.MapKeyToFrame(msg, &m.frame) {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case tea.MouseMsg:
		m.keymap.MapMouseToFrame(msg, &m.frame)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleResize processes window resize events. The board survives; only
// the layout is recomputed.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.session.Reset(m.config)
	return m, nil
}

// handleTick advances the session by one animation tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	before := m.session.Phase()
	m.session.Step(m.frame)
	m.frame.Clear()

	// A run can start and finish within the same tick on tiny boards, so
	// the start marker comes from the phase transition, not the phase.
	if before == visualizer.PhaseEdit && m.session.Phase() != visualizer.PhaseEdit {
		m.runStart = time.Now()
		m.runSaved = false
	}
	switch m.session.Phase() {
	case visualizer.PhaseDone:
		m.saveRun()
	case visualizer.PhaseEdit:
		m.runSaved = false
	}

	return m, tickCmd(m.config.TickRate)
}

// saveRun persists the finished run once per completion.
func (m *Model) saveRun() {
	if m.runSaved || m.store == nil {
		return
	}
	sum, ok := m.session.Summary()
	if !ok {
		return
	}

	b := m.session.Board()
	//nolint:errcheck // Best-effort save, the session continues regardless
	m.store.SaveRun(storage.RunRecord{
		Algo:       m.session.Algo(),
		Rows:       b.Rows(),
		Cols:       b.Cols(),
		Walls:      b.WallCount(),
		Found:      sum.Found,
		PathLength: sum.PathLength,
		Visited:    sum.Visited,
		DurationMS: time.Since(m.runStart).Milliseconds(),
	})
	m.runSaved = true
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.session.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given session.
func Run(session *visualizer.Session, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(session, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Enable click-to-paint and drag painting
	)

	_, err := p.Run()
	return err
}
