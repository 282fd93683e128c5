// Package board owns the rectangular cell matrix of the visualizer: cell
// classification (empty/wall/start/end), mutation rules for painting, and
// neighbor queries. It is UI-agnostic and deterministic; the search engines
// in internal/search operate on a Board snapshot and never change cell kinds.
package board

import (
	"fmt"
	"strings"
)

// PaintMode selects what a paint operation writes.
type PaintMode uint8

const (
	PaintWall PaintMode = iota
	PaintStart
	PaintEnd
)

// String returns the string representation of a paint mode.
func (m PaintMode) String() string {
	switch m {
	case PaintWall:
		return "wall"
	case PaintStart:
		return "start"
	case PaintEnd:
		return "end"
	default:
		return "unknown"
	}
}

// Board is the grid of cells. Cells are stored in row-major order:
// index = row*cols + col.
type Board struct {
	rows  int
	cols  int
	cells []Cell
	start Coord
	end   Coord
}

// DefaultStartEnd returns the default start/end placement for a grid of the
// given size: both on the middle row, at one fifth and four fifths of the
// width.
func DefaultStartEnd(rows, cols int) (start, end Coord) {
	return At(rows/2, cols/5), At(rows/2, cols*4/5)
}

// New allocates a rows×cols board with all cells empty, then places the
// start and end cells. Fails if the coordinates fall outside bounds or
// coincide.
func New(rows, cols int, start, end Coord) (*Board, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadDimensions, rows, cols)
	}
	b := &Board{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols),
	}
	if !b.InBounds(start) {
		return nil, fmt.Errorf("%w: start %s", ErrOutOfBounds, start)
	}
	if !b.InBounds(end) {
		return nil, fmt.Errorf("%w: end %s", ErrOutOfBounds, end)
	}
	if start == end {
		return nil, fmt.Errorf("%w: %s", ErrSameCell, start)
	}
	for i := range b.cells {
		b.cells[i].clearSearch()
	}
	b.cells[b.index(start)].Kind = KindStart
	b.cells[b.index(end)].Kind = KindEnd
	b.start = start
	b.end = end
	return b, nil
}

// NewDefault allocates a board with the default start/end placement.
func NewDefault(rows, cols int) (*Board, error) {
	start, end := DefaultStartEnd(rows, cols)
	return New(rows, cols, start, end)
}

// Rows returns the number of rows.
func (b *Board) Rows() int { return b.rows }

// Cols returns the number of columns.
func (b *Board) Cols() int { return b.cols }

// Start returns the current start coordinate.
func (b *Board) Start() Coord { return b.start }

// End returns the current end coordinate.
func (b *Board) End() Coord { return b.end }

// index converts a coordinate to a flat array index.
func (b *Board) index(c Coord) int {
	return c.Row*b.cols + c.Col
}

// InBounds returns true if the coordinate is within the grid.
func (b *Board) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < b.rows && c.Col >= 0 && c.Col < b.cols
}

// At returns the cell at the given coordinate.
// Returns a zero cell for out-of-bounds coordinates.
func (b *Board) At(c Coord) Cell {
	if !b.InBounds(c) {
		return Cell{Dist: Unreached, Prev: NoPrev}
	}
	return b.cells[b.index(c)]
}

// Kind returns the kind of the cell at c.
func (b *Board) Kind(c Coord) Kind {
	return b.At(c).Kind
}

// Paint mutates the persistent classification of the target cell.
//
// Wall mode toggles the target between empty and wall and has no effect on
// the start or end cell. Start/end modes relocate the respective marker:
// the prior holder reverts to empty first, so there is always exactly one
// start and one end. Paint never touches the transient search fields.
func (b *Board) Paint(c Coord, mode PaintMode) error {
	if !b.InBounds(c) {
		return fmt.Errorf("%w: %s", ErrOutOfBounds, c)
	}
	cell := &b.cells[b.index(c)]

	switch mode {
	case PaintWall:
		switch cell.Kind {
		case KindEmpty:
			cell.Kind = KindWall
		case KindWall:
			cell.Kind = KindEmpty
		}
		// Start/end cells are never overwritten by walls.
	case PaintStart:
		if c == b.start {
			return nil
		}
		if cell.Kind == KindEnd {
			return nil
		}
		b.cells[b.index(b.start)].Kind = KindEmpty
		cell.Kind = KindStart
		b.start = c
	case PaintEnd:
		if c == b.end {
			return nil
		}
		if cell.Kind == KindStart {
			return nil
		}
		b.cells[b.index(b.end)].Kind = KindEmpty
		cell.Kind = KindEnd
		b.end = c
	default:
		return fmt.Errorf("%w: %d", ErrBadMode, mode)
	}
	return nil
}

// Neighbors returns the in-bounds cells adjacent to c, in the fixed
// up, right, down, left order. The order determines tie-breaking in the
// search engines and must not change.
func (b *Board) Neighbors(c Coord) []Coord {
	out := make([]Coord, 0, 4)
	for _, d := range Dirs {
		n := c.Step(d)
		if b.InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

// ClearSearch resets every cell's transient search fields (mark, distance,
// predecessor, settled) without touching kinds.
func (b *Board) ClearSearch() {
	for i := range b.cells {
		b.cells[i].clearSearch()
	}
}

// Reset reverts the board to its initial state: all cells empty, search
// fields cleared, start/end back at the default placement.
func (b *Board) Reset() {
	for i := range b.cells {
		b.cells[i] = Cell{}
		b.cells[i].clearSearch()
	}
	b.start, b.end = DefaultStartEnd(b.rows, b.cols)
	b.cells[b.index(b.start)].Kind = KindStart
	b.cells[b.index(b.end)].Kind = KindEnd
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return &Board{
		rows:  b.rows,
		cols:  b.cols,
		cells: cells,
		start: b.start,
		end:   b.end,
	}
}

// WallCount returns the number of wall cells.
func (b *Board) WallCount() int {
	n := 0
	for i := range b.cells {
		if b.cells[i].Kind == KindWall {
			n++
		}
	}
	return n
}

// --- search-side accessors and mutators ---

// Dist returns the tentative distance of the cell at c.
func (b *Board) Dist(c Coord) int {
	return b.At(c).Dist
}

// Prev returns the predecessor coordinate of the cell at c.
func (b *Board) Prev(c Coord) Coord {
	return b.At(c).Prev
}

// Settled reports whether the cell's distance has been finalized.
func (b *Board) Settled(c Coord) bool {
	return b.At(c).Settled
}

// Relax records an improved tentative distance for the cell at c, reached
// through prev.
func (b *Board) Relax(c Coord, dist int, prev Coord) {
	if !b.InBounds(c) {
		return
	}
	cell := &b.cells[b.index(c)]
	cell.Dist = dist
	cell.Prev = prev
}

// Settle finalizes the cell's distance.
func (b *Board) Settle(c Coord) {
	if !b.InBounds(c) {
		return
	}
	b.cells[b.index(c)].Settled = true
}

// SetMark sets the transient render mark of the cell at c.
// Walls never carry a mark; the call is a no-op for them.
func (b *Board) SetMark(c Coord, m Mark) {
	if !b.InBounds(c) {
		return
	}
	cell := &b.cells[b.index(c)]
	if cell.Kind == KindWall {
		return
	}
	cell.Mark = m
}

// String renders the board as compact ASCII: 'S' start, 'E' end, '#' wall,
// '*' path, 'o' visited, '@' current, '.' empty. Useful for tests, debug
// output and the headless solver.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow((b.cols + 1) * b.rows)
	for r := 0; r < b.rows; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for col := 0; col < b.cols; col++ {
			sb.WriteRune(b.cellRune(At(r, col)))
		}
	}
	return sb.String()
}

func (b *Board) cellRune(c Coord) rune {
	cell := b.At(c)
	switch cell.Kind {
	case KindStart:
		return 'S'
	case KindEnd:
		return 'E'
	case KindWall:
		return '#'
	}
	switch cell.Mark {
	case MarkPath:
		return '*'
	case MarkVisited:
		return 'o'
	case MarkCurrent:
		return '@'
	}
	return '.'
}
