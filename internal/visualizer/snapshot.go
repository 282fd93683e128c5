package visualizer

import "github.com/vovakirdan/gridpath/internal/board"

// Snapshot captures the observable session state for determinism testing.
type Snapshot struct {
	Tick       uint64
	Phase      Phase
	Paused     bool
	Algo       string
	Mode       board.PaintMode
	CursorRow  int
	CursorCol  int
	Walls      int
	StartRow   int
	StartCol   int
	EndRow     int
	EndCol     int
	Found      bool
	PathLength int
	Visited    int
	RunTicks   uint64
}

// Snapshot returns the current session snapshot. Summary fields are zero
// until a run has finished.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:      s.tick,
		Phase:     s.phase,
		Paused:    s.paused,
		Algo:      s.algo,
		Mode:      s.mode,
		CursorRow: s.cursor.Row,
		CursorCol: s.cursor.Col,
		Walls:     s.b.WallCount(),
		StartRow:  s.b.Start().Row,
		StartCol:  s.b.Start().Col,
		EndRow:    s.b.End().Row,
		EndCol:    s.b.End().Col,
		RunTicks:  s.runTicks,
	}
	if s.haveSum {
		snap.Found = s.sum.Found
		snap.PathLength = s.sum.PathLength
		snap.Visited = s.sum.Visited
	}
	return snap
}
