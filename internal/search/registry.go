package search

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/gridpath/internal/board"
)

// ErrNilBoard is returned when Run is given no board.
var ErrNilBoard = errors.New("search: nil board")

// Engine computes shortest paths over a board and exposes the exploration
// as a Trace. Engines are single-use per run: Run validates preconditions,
// resets the board's transient search fields and returns a fresh Trace.
type Engine interface {
	// ID returns a unique identifier for this engine (e.g. "dijkstra").
	ID() string

	// Name returns a human-readable name for display.
	Name() string

	// Run starts a search from start to end over the given board. The
	// board's cell kinds are never modified; transient search fields are
	// reset and then written as the trace is consumed. A start or end
	// placed on a wall is a defined outcome (unreachable), not an error.
	Run(b *board.Board, start, end board.Coord) (*Trace, error)
}

// Info contains metadata about a registered engine.
type Info struct {
	ID   string
	Name string
}

// Factory is a function that creates a new engine instance.
type Factory func() Engine

var (
	factories = make(map[string]Factory)
	names     = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds an engine factory to the registry, typically from an init
// function. Panics if the ID is already taken.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("search: engine %q already registered", id))
	}
	factories[id] = f
	names[id] = f().Name()
}

// List returns information about all registered engines, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(factories))
	for id := range factories {
		result = append(result, Info{ID: id, Name: names[id]})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates a new engine by its ID.
func Create(id string) (Engine, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("search: unknown engine %q", id)
	}
	return f(), nil
}

// Exists checks if an engine with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// prepare validates run preconditions and resets the board's search fields,
// leaving the start cell at distance zero. Coordinates are rejected, never
// clamped, when they fall outside the grid.
func prepare(b *board.Board, start, end board.Coord) error {
	if b == nil {
		return ErrNilBoard
	}
	if !b.InBounds(start) {
		return fmt.Errorf("%w: start %s", board.ErrOutOfBounds, start)
	}
	if !b.InBounds(end) {
		return fmt.Errorf("%w: end %s", board.ErrOutOfBounds, end)
	}
	b.ClearSearch()
	if b.Kind(start) != board.KindWall {
		b.Relax(start, 0, board.NoPrev)
	}
	return nil
}

// endpoints carries the per-run start/end pair shared by all engines.
type endpoints struct {
	start board.Coord
	end   board.Coord
}

// settleEvents returns the current/visited pair for a settled cell, or nil
// for the start and end cells whose fixed visual is preserved.
func (e endpoints) settleEvents(c board.Coord) []Event {
	if c == e.start || c == e.end {
		return nil
	}
	return []Event{
		{Kind: EventCurrent, Cell: c},
		{Kind: EventVisited, Cell: c},
	}
}

// pathEvents reconstructs the start-to-end path by walking predecessor
// links backward from the end cell, and returns one path event per cell
// strictly between start and end, plus the number of edges on the path.
func (e endpoints) pathEvents(b *board.Board) ([]Event, int) {
	var rev []board.Coord
	for c := e.end; c != board.NoPrev; c = b.Prev(c) {
		rev = append(rev, c)
	}
	// rev runs end -> start; the path has len(rev)-1 edges.
	events := make([]Event, 0, len(rev))
	for i := len(rev) - 2; i >= 1; i-- {
		events = append(events, Event{Kind: EventPath, Cell: rev[i]})
	}
	return events, len(rev) - 1
}
