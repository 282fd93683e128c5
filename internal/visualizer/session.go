// Package visualizer drives an interactive pathfinding session over a board:
// editing walls and endpoints, running a registered search engine, and
// animating the resulting trace tick by tick. It is UI-agnostic; the
// terminal layer feeds it input frames and renders its screen buffer.
package visualizer

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/gridpath/internal/board"
	"github.com/vovakirdan/gridpath/internal/core"
	"github.com/vovakirdan/gridpath/internal/search"
)

// Phase is the session lifecycle stage.
type Phase int

const (
	// PhaseEdit accepts painting, generation and algorithm selection.
	PhaseEdit Phase = iota
	// PhaseRunning animates the active trace; the board is read-only.
	PhaseRunning
	// PhaseDone shows the finished run until cleared or reset.
	PhaseDone
)

func (p Phase) String() string {
	switch p {
	case PhaseEdit:
		return "edit"
	case PhaseRunning:
		return "running"
	case PhaseDone:
		return "done"
	default:
		return "unknown"
	}
}

// Options configures a session independently of the screen.
type Options struct {
	Rows int
	Cols int

	// Algo is the initial engine ID; it must be registered.
	Algo string

	// VisitedPerTick is how many cells settle per animation tick.
	VisitedPerTick int

	// PathEveryTicks spaces out path reveal, one cell per interval.
	PathEveryTicks int

	// WallDensity is used by the random scatter action.
	WallDensity float64
}

// DefaultOptions returns the stock 25x50 session setup.
func DefaultOptions() Options {
	return Options{
		Rows:           25,
		Cols:           50,
		Algo:           "dijkstra",
		VisitedPerTick: 4,
		PathEveryTicks: 2,
		WallDensity:    0.3,
	}
}

// Session owns the board and the currently animating trace.
type Session struct {
	opts Options
	b    *board.Board
	rng  *rand.Rand
	tick uint64

	phase  Phase
	paused bool
	algo   string
	mode   board.PaintMode
	cursor board.Coord

	trace       *search.Trace
	sum         search.Summary
	haveSum     bool
	current     board.Coord
	haveCurrent bool
	inPath      bool
	pathTicker  int
	stash       *search.Event
	runTicks    uint64
	status      string
	statusTicks int

	screenW  int
	screenH  int
	gridX    int
	gridY    int
	tooSmall bool
}

// New creates a session around a fresh default board for the given options.
// The board dimensions come from opts; zero values fall back to defaults.
func New(opts Options) (*Session, error) {
	def := DefaultOptions()
	if opts.Rows <= 0 {
		opts.Rows = def.Rows
	}
	if opts.Cols <= 0 {
		opts.Cols = def.Cols
	}
	if opts.Algo == "" {
		opts.Algo = def.Algo
	}
	if opts.VisitedPerTick <= 0 {
		opts.VisitedPerTick = def.VisitedPerTick
	}
	if opts.PathEveryTicks <= 0 {
		opts.PathEveryTicks = def.PathEveryTicks
	}
	if opts.WallDensity <= 0 || opts.WallDensity >= 1 {
		opts.WallDensity = def.WallDensity
	}
	if !search.Exists(opts.Algo) {
		return nil, fmt.Errorf("visualizer: unknown algorithm %q", opts.Algo)
	}
	b, err := board.NewDefault(opts.Rows, opts.Cols)
	if err != nil {
		return nil, err
	}
	return NewWithBoard(b, opts), nil
}

// NewWithBoard creates a session over an existing board, keeping its walls
// and endpoints. Used for preset layouts loaded from files.
func NewWithBoard(b *board.Board, opts Options) *Session {
	s := &Session{
		opts:   opts,
		b:      b,
		algo:   opts.Algo,
		mode:   board.PaintWall,
		cursor: b.Start(),
	}
	return s
}

// Board exposes the underlying board for rendering and persistence.
func (s *Session) Board() *board.Board { return s.b }

// Phase returns the current lifecycle stage.
func (s *Session) Phase() Phase { return s.phase }

// Paused reports whether a running animation is held.
func (s *Session) Paused() bool { return s.paused }

// Algo returns the selected engine ID.
func (s *Session) Algo() string { return s.algo }

// Mode returns the active paint mode.
func (s *Session) Mode() board.PaintMode { return s.mode }

// Cursor returns the edit cursor position.
func (s *Session) Cursor() board.Coord { return s.cursor }

// Summary returns the finished run result. ok is false until the
// animation has fully played out.
func (s *Session) Summary() (search.Summary, bool) {
	return s.sum, s.haveSum
}

// RunTicks returns how many animation ticks the last run took.
func (s *Session) RunTicks() uint64 { return s.runTicks }

// Reset applies the runtime config: screen dimensions and the seed for
// maze and scatter generation. The board itself is untouched.
func (s *Session) Reset(cfg core.RuntimeConfig) {
	s.rng = rand.New(rand.NewSource(cfg.Seed))
	s.screenW = cfg.ScreenW
	s.screenH = cfg.ScreenH
	s.layout()
}

// layout recomputes grid placement and the too-small flag.
func (s *Session) layout() {
	requiredW := s.b.Cols() + 2
	requiredH := s.b.Rows() + 2 + hudHeight + legendHeight
	s.tooSmall = s.screenW < requiredW || s.screenH < requiredH
	if s.tooSmall {
		return
	}
	s.gridX = (s.screenW - requiredW) / 2
	s.gridY = hudHeight
}

// Step advances the session by one tick, applying this frame's input.
func (s *Session) Step(in core.InputFrame) {
	s.tick++
	if s.statusTicks > 0 {
		s.statusTicks--
		if s.statusTicks == 0 {
			s.status = ""
		}
	}

	s.handleInput(in)

	if s.phase == PhaseRunning && !s.paused && !s.tooSmall {
		s.advance()
	}
}

func (s *Session) handleInput(in core.InputFrame) {
	if in.Has(core.ActionPause) && s.phase == PhaseRunning {
		s.paused = !s.paused
	}
	if in.Has(core.ActionClear) {
		s.clearRun()
	}
	if in.Has(core.ActionReset) {
		s.resetBoard()
	}

	s.moveCursor(in)

	// Everything below edits the board or the setup, which a live run
	// locks out.
	if s.phase == PhaseRunning {
		if in.Has(core.ActionPaint) || len(in.Clicks) > 0 {
			s.note("editing is locked while a search is running")
		}
		return
	}

	switch {
	case in.Has(core.ActionModeWall):
		s.mode = board.PaintWall
	case in.Has(core.ActionModeStart):
		s.mode = board.PaintStart
	case in.Has(core.ActionModeEnd):
		s.mode = board.PaintEnd
	}

	if in.Has(core.ActionCycleAlgo) {
		s.cycleAlgo()
	}
	if in.Has(core.ActionMaze) {
		s.clearRun()
		board.Maze(s.b, s.rng)
	}
	if in.Has(core.ActionScatter) {
		s.clearRun()
		board.Scatter(s.b, s.rng, s.opts.WallDensity)
	}
	if in.Has(core.ActionPaint) {
		s.paint(s.cursor)
	}
	for _, click := range in.Clicks {
		if c, ok := s.cellAt(click.X, click.Y); ok {
			s.paint(c)
		}
	}
	if in.Has(core.ActionRun) {
		s.startRun()
	}
}

func (s *Session) moveCursor(in core.InputFrame) {
	c := s.cursor
	if in.Has(core.ActionUp) {
		c.Row--
	}
	if in.Has(core.ActionDown) {
		c.Row++
	}
	if in.Has(core.ActionLeft) {
		c.Col--
	}
	if in.Has(core.ActionRight) {
		c.Col++
	}
	c.Row = core.Clamp(c.Row, 0, s.b.Rows()-1)
	c.Col = core.Clamp(c.Col, 0, s.b.Cols()-1)
	s.cursor = c
}

// paint applies the active mode at the cell, first dropping stale results
// so edits always happen on a clean board.
func (s *Session) paint(c board.Coord) {
	if s.phase == PhaseDone {
		s.clearRun()
	}
	if err := s.b.Paint(c, s.mode); err != nil {
		s.note(err.Error())
	}
}

func (s *Session) cycleAlgo() {
	infos := search.List()
	for i, info := range infos {
		if info.ID == s.algo {
			s.algo = infos[(i+1)%len(infos)].ID
			return
		}
	}
	if len(infos) > 0 {
		s.algo = infos[0].ID
	}
}

func (s *Session) startRun() {
	if s.phase == PhaseRunning {
		return
	}
	s.clearRun()

	engine, err := search.Create(s.algo)
	if err != nil {
		s.note(err.Error())
		return
	}
	trace, err := engine.Run(s.b, s.b.Start(), s.b.End())
	if err != nil {
		s.note(err.Error())
		return
	}
	s.trace = trace
	s.phase = PhaseRunning
	s.runTicks = 0
}

// clearRun cancels any active trace and wipes search marks, returning the
// session to the edit phase. Walls and endpoints stay.
func (s *Session) clearRun() {
	if s.trace != nil {
		s.trace.Cancel()
		s.trace = nil
	}
	s.b.ClearSearch()
	s.phase = PhaseEdit
	s.paused = false
	s.haveSum = false
	s.haveCurrent = false
	s.inPath = false
	s.stash = nil
	s.pathTicker = 0
}

// resetBoard restores the pristine board: no walls, default endpoints.
func (s *Session) resetBoard() {
	s.clearRun()
	s.b.Reset()
	s.cursor = s.b.Start()
}

// cellAt translates screen coordinates into a board cell, accounting for
// the border drawn around the grid.
func (s *Session) cellAt(x, y int) (board.Coord, bool) {
	if s.tooSmall {
		return board.Coord{}, false
	}
	c := board.At(y-s.gridY-1, x-s.gridX-1)
	if !s.b.InBounds(c) {
		return board.Coord{}, false
	}
	return c, true
}

// nextEvent yields the next trace event, honouring a stashed lookahead.
func (s *Session) nextEvent() (search.Event, bool) {
	if s.stash != nil {
		ev := *s.stash
		s.stash = nil
		return ev, true
	}
	return s.trace.Next()
}

// advance consumes trace events for one animation tick. Settled cells
// arrive as current/visited pairs; the newest cell keeps its highlight
// until the next tick so the frontier sweep stays visible. Path cells
// are revealed one at a time on their own slower cadence.
func (s *Session) advance() {
	s.runTicks++

	if s.haveCurrent {
		s.b.SetMark(s.current, board.MarkVisited)
		s.haveCurrent = false
	}

	if s.inPath {
		s.pathTicker++
		if s.pathTicker < s.opts.PathEveryTicks {
			return
		}
		s.pathTicker = 0
		ev, ok := s.nextEvent()
		if !ok {
			s.finish()
			return
		}
		s.b.SetMark(ev.Cell, board.MarkPath)
		return
	}

	settled := 0
	for settled < s.opts.VisitedPerTick {
		ev, ok := s.nextEvent()
		if !ok {
			s.finish()
			return
		}
		switch ev.Kind {
		case search.EventCurrent:
			s.b.SetMark(ev.Cell, board.MarkCurrent)
			s.current = ev.Cell
			s.haveCurrent = true
		case search.EventVisited:
			settled++
			if settled < s.opts.VisitedPerTick {
				s.b.SetMark(ev.Cell, board.MarkVisited)
				s.haveCurrent = false
			}
		case search.EventPath:
			ev := ev
			s.stash = &ev
			s.inPath = true
			s.pathTicker = 0
			if s.haveCurrent {
				s.b.SetMark(s.current, board.MarkVisited)
				s.haveCurrent = false
			}
			return
		}
	}
}

// finish records the run summary and moves to the done phase.
func (s *Session) finish() {
	sum, ok := s.trace.Summary()
	if !ok {
		// Canceled underneath us; treat as cleared.
		s.clearRun()
		return
	}
	s.sum = sum
	s.haveSum = true
	s.phase = PhaseDone
	if s.haveCurrent {
		s.b.SetMark(s.current, board.MarkVisited)
		s.haveCurrent = false
	}
	if sum.Found {
		s.note(fmt.Sprintf("path found: %d steps, %d cells visited", sum.PathLength, sum.Visited))
	} else {
		s.note(fmt.Sprintf("no path exists, %d cells visited", sum.Visited))
	}
}

// note shows a transient status message for a few seconds of ticks.
func (s *Session) note(msg string) {
	s.status = msg
	s.statusTicks = 150
}
