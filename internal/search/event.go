// Package search implements the shortest-path engines behind the visualizer.
//
// An engine consumes a Board, computes shortest distances from the start
// cell over the 4-connected grid with unit step cost, and produces a Trace:
// a lazy, finite, non-restartable sequence of render events the caller
// drains at its own pace. Events arrive in a strict reproducible order:
// one current/visited pair per settled cell, in settle order, followed by
// the path cells in start-to-end order, closed by a terminal Summary.
package search

import "github.com/vovakirdan/gridpath/internal/board"

// EventKind identifies the visual transition an event describes.
type EventKind uint8

const (
	// EventCurrent fires when a cell is selected from the frontier,
	// just before its neighbors are relaxed.
	EventCurrent EventKind = iota
	// EventVisited fires after the cell's neighbors were relaxed and the
	// cell's distance is final.
	EventVisited
	// EventPath fires for each cell of the reconstructed path, strictly
	// between start and end, in start-to-end order.
	EventPath
)

// String returns the string representation of an event kind.
func (k EventKind) String() string {
	switch k {
	case EventCurrent:
		return "current"
	case EventVisited:
		return "visited"
	case EventPath:
		return "path"
	default:
		return "unknown"
	}
}

// Event is a discrete notification that a cell's visual state changed.
type Event struct {
	Kind EventKind
	Cell board.Coord
}

// Summary reports the outcome of a finished run.
type Summary struct {
	Found      bool
	PathLength int // edges on the path; 0 when start == end, -1 when not found
	Visited    int // cells settled during the run, start and end included
}
