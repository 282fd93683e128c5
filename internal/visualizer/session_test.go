package visualizer

import (
	"testing"

	"github.com/vovakirdan/gridpath/internal/board"
	"github.com/vovakirdan/gridpath/internal/core"
)

func newSession(t *testing.T, opts Options) *Session {
	t.Helper()
	s, err := New(opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	s.Reset(core.RuntimeConfig{ScreenW: 110, ScreenH: 40, Seed: 1})
	return s
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func stepIdle(s *Session, n int) {
	for i := 0; i < n; i++ {
		s.Step(core.NewInputFrame())
	}
}

func runToDone(t *testing.T, s *Session) {
	t.Helper()
	s.Step(frame(core.ActionRun))
	for i := 0; i < 5000; i++ {
		if s.Phase() == PhaseDone {
			return
		}
		s.Step(core.NewInputFrame())
	}
	t.Fatal("run never finished")
}

func TestSessionStartsInEditPhase(t *testing.T) {
	s := newSession(t, Options{})
	if s.Phase() != PhaseEdit {
		t.Errorf("Phase = %v, want edit", s.Phase())
	}
	if s.Mode() != board.PaintWall {
		t.Errorf("Mode = %v, want wall", s.Mode())
	}
	if s.Cursor() != s.Board().Start() {
		t.Errorf("Cursor = %v, want start %v", s.Cursor(), s.Board().Start())
	}
}

func TestCursorMovementClamped(t *testing.T) {
	s := newSession(t, Options{Rows: 10, Cols: 10})
	for i := 0; i < 30; i++ {
		s.Step(frame(core.ActionUp, core.ActionLeft))
	}
	if s.Cursor() != board.At(0, 0) {
		t.Errorf("Cursor = %v, want (0,0)", s.Cursor())
	}
	for i := 0; i < 30; i++ {
		s.Step(frame(core.ActionDown, core.ActionRight))
	}
	if s.Cursor() != board.At(9, 9) {
		t.Errorf("Cursor = %v, want (9,9)", s.Cursor())
	}
}

func TestPaintTogglesWallAtCursor(t *testing.T) {
	s := newSession(t, Options{Rows: 10, Cols: 10})
	s.Step(frame(core.ActionUp)) // step off the start cell first
	cur := s.Cursor()

	s.Step(frame(core.ActionPaint))
	if s.Board().Kind(cur) != board.KindWall {
		t.Fatalf("Kind(%v) = %v after paint, want wall", cur, s.Board().Kind(cur))
	}
	s.Step(frame(core.ActionPaint))
	if s.Board().Kind(cur) != board.KindEmpty {
		t.Errorf("Kind(%v) = %v after second paint, want empty", cur, s.Board().Kind(cur))
	}
}

func TestModeSwitchRelocatesStart(t *testing.T) {
	s := newSession(t, Options{Rows: 10, Cols: 10})
	oldStart := s.Board().Start()

	s.Step(frame(core.ActionModeStart))
	s.Step(frame(core.ActionRight))
	s.Step(frame(core.ActionPaint))

	want := board.At(oldStart.Row, oldStart.Col+1)
	if s.Board().Start() != want {
		t.Errorf("Start = %v, want %v", s.Board().Start(), want)
	}
	if s.Board().Kind(oldStart) != board.KindEmpty {
		t.Errorf("old start cell is %v, want empty", s.Board().Kind(oldStart))
	}
}

func TestClickPaintsCell(t *testing.T) {
	s := newSession(t, Options{})
	// The 52-wide bordered grid is centered on a 110-column screen with a
	// two-line HUD above it.
	gridX := (110 - (s.Board().Cols() + 2)) / 2
	target := board.At(3, 5)

	f := core.NewInputFrame()
	f.AddClick(gridX+1+target.Col, hudHeight+1+target.Row)
	s.Step(f)

	if s.Board().Kind(target) != board.KindWall {
		t.Errorf("Kind(%v) = %v, want wall", target, s.Board().Kind(target))
	}
}

func TestRunLocksEditing(t *testing.T) {
	s := newSession(t, Options{})
	s.Step(frame(core.ActionRun))
	if s.Phase() != PhaseRunning {
		t.Fatalf("Phase = %v, want running", s.Phase())
	}

	walls := s.Board().WallCount()
	s.Step(frame(core.ActionUp))
	s.Step(frame(core.ActionPaint))
	if got := s.Board().WallCount(); got != walls {
		t.Errorf("WallCount = %d after paint during run, want %d", got, walls)
	}
	if s.Phase() != PhaseRunning {
		t.Errorf("Phase = %v, want still running", s.Phase())
	}
}

func TestRunCompletesWithSummary(t *testing.T) {
	s := newSession(t, Options{Rows: 10, Cols: 12})
	runToDone(t, s)

	sum, ok := s.Summary()
	if !ok {
		t.Fatal("Summary not available in done phase")
	}
	if !sum.Found {
		t.Fatal("expected a path on an open board")
	}
	want := s.Board().Start().Manhattan(s.Board().End())
	if sum.PathLength != want {
		t.Errorf("PathLength = %d, want %d", sum.PathLength, want)
	}
	if s.RunTicks() == 0 {
		t.Error("RunTicks = 0, want animation to span ticks")
	}
}

func TestPauseHoldsAnimation(t *testing.T) {
	s := newSession(t, Options{})
	s.Step(frame(core.ActionRun))
	s.Step(frame(core.ActionPause))
	if !s.Paused() {
		t.Fatal("Paused = false after pause action")
	}

	ticks := s.RunTicks()
	stepIdle(s, 10)
	if s.RunTicks() != ticks {
		t.Errorf("RunTicks advanced to %d while paused, want %d", s.RunTicks(), ticks)
	}

	s.Step(frame(core.ActionPause))
	stepIdle(s, 5)
	if s.RunTicks() <= ticks {
		t.Error("RunTicks did not advance after resume")
	}
}

func TestClearReturnsToEdit(t *testing.T) {
	s := newSession(t, Options{Rows: 10, Cols: 12})
	runToDone(t, s)

	s.Step(frame(core.ActionClear))
	if s.Phase() != PhaseEdit {
		t.Errorf("Phase = %v, want edit", s.Phase())
	}
	if _, ok := s.Summary(); ok {
		t.Error("Summary still available after clear")
	}
	b := s.Board()
	for r := 0; r < b.Rows(); r++ {
		for c := 0; c < b.Cols(); c++ {
			if m := b.At(board.At(r, c)).Mark; m != board.MarkNone {
				t.Fatalf("cell (%d,%d) kept mark %v after clear", r, c, m)
			}
		}
	}
}

func TestPaintAfterDoneClearsResults(t *testing.T) {
	s := newSession(t, Options{Rows: 10, Cols: 12})
	runToDone(t, s)

	s.Step(frame(core.ActionUp))
	s.Step(frame(core.ActionPaint))
	if s.Phase() != PhaseEdit {
		t.Errorf("Phase = %v, want edit after painting over results", s.Phase())
	}
	if _, ok := s.Summary(); ok {
		t.Error("stale summary survived an edit")
	}
}

func TestResetRestoresDefaultBoard(t *testing.T) {
	s := newSession(t, Options{Rows: 10, Cols: 12})
	s.Step(frame(core.ActionScatter))
	if s.Board().WallCount() == 0 {
		t.Fatal("scatter painted no walls")
	}

	s.Step(frame(core.ActionReset))
	if s.Board().WallCount() != 0 {
		t.Errorf("WallCount = %d after reset, want 0", s.Board().WallCount())
	}
	if s.Cursor() != s.Board().Start() {
		t.Errorf("Cursor = %v, want start %v", s.Cursor(), s.Board().Start())
	}
}

func TestCycleAlgo(t *testing.T) {
	s := newSession(t, Options{})
	seen := map[string]bool{s.Algo(): true}
	for i := 0; i < 2; i++ {
		s.Step(frame(core.ActionCycleAlgo))
		seen[s.Algo()] = true
	}
	if len(seen) != 3 {
		t.Errorf("cycled through %d algorithms, want 3", len(seen))
	}
	s.Step(frame(core.ActionCycleAlgo))
	if s.Algo() != "dijkstra" {
		t.Errorf("Algo = %q after full cycle, want dijkstra", s.Algo())
	}
}

func TestMazeDeterministicBySeed(t *testing.T) {
	a := newSession(t, Options{Rows: 15, Cols: 21})
	b := newSession(t, Options{Rows: 15, Cols: 21})
	a.Step(frame(core.ActionMaze))
	b.Step(frame(core.ActionMaze))

	if a.Board().String() != b.Board().String() {
		t.Error("same seed produced different mazes")
	}
	if a.Phase() != PhaseEdit {
		t.Errorf("Phase = %v after maze, want edit", a.Phase())
	}
}

func TestSnapshotDeterminism(t *testing.T) {
	script := func() *Session {
		s := newSession(t, Options{Rows: 12, Cols: 16})
		s.Step(frame(core.ActionScatter))
		s.Step(frame(core.ActionRun))
		stepIdle(s, 200)
		return s
	}
	a, b := script(), script()
	if a.Snapshot() != b.Snapshot() {
		t.Errorf("snapshots diverged:\n%+v\n%+v", a.Snapshot(), b.Snapshot())
	}
}

func TestRenderShowsEndpoints(t *testing.T) {
	s := newSession(t, Options{})
	scr := core.NewScreen(110, 40)
	s.Render(scr)

	gridX := (110 - (s.Board().Cols() + 2)) / 2
	start, end := s.Board().Start(), s.Board().End()
	if got := scr.Get(gridX+1+start.Col, hudHeight+1+start.Row); got != runeStart {
		t.Errorf("start cell renders %q, want %q", got, runeStart)
	}
	if got := scr.Get(gridX+1+end.Col, hudHeight+1+end.Row); got != runeEnd {
		t.Errorf("end cell renders %q, want %q", got, runeEnd)
	}
}
