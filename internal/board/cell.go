package board

import "math"

// Kind is a cell's persistent classification, set only by painting.
type Kind uint8

const (
	KindEmpty Kind = iota
	KindWall
	KindStart
	KindEnd
)

// String returns the string representation of a kind.
func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindWall:
		return "wall"
	case KindStart:
		return "start"
	case KindEnd:
		return "end"
	default:
		return "unknown"
	}
}

// Mark is a cell's transient render state, set only during/after a search
// run and cleared by ClearSearch.
type Mark uint8

const (
	MarkNone Mark = iota
	MarkCurrent
	MarkVisited
	MarkPath
)

// String returns the string representation of a mark.
func (m Mark) String() string {
	switch m {
	case MarkNone:
		return "none"
	case MarkCurrent:
		return "current"
	case MarkVisited:
		return "visited"
	case MarkPath:
		return "path"
	default:
		return "unknown"
	}
}

// Unreached is the tentative-distance sentinel for cells the search has not
// relaxed yet.
const Unreached = math.MaxInt

// NoPrev is the predecessor sentinel: the cell's distance was never improved
// through a neighbor. The back-reference is a coordinate, not a pointer, so
// the grid stays free of structural cycles.
var NoPrev = Coord{Row: -1, Col: -1}

// Cell is a single board cell. Kind persists across runs; the remaining
// fields belong to the current search run and are reset by ClearSearch.
type Cell struct {
	Kind    Kind
	Mark    Mark
	Dist    int
	Prev    Coord
	Settled bool
}

// clearSearch resets the transient search fields, keeping Kind.
func (c *Cell) clearSearch() {
	c.Mark = MarkNone
	c.Dist = Unreached
	c.Prev = NoPrev
	c.Settled = false
}
