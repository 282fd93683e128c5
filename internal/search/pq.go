package search

import "github.com/vovakirdan/gridpath/internal/board"

// frontierItem is one entry of the frontier min-heap.
type frontierItem struct {
	cell board.Coord
	prio int    // distance (plus heuristic for informed engines)
	seq  uint64 // push order, breaks priority ties
	idx  int    // heap index, maintained by the heap interface
}

// frontier is a min-heap of frontier items ordered by priority, with push
// order as the tie-break. Equal-priority cells therefore leave the heap in
// the order they were first relaxed, which keeps runs reproducible.
//
// Stale entries are handled lazily: relaxing a cell pushes a duplicate and
// the engine skips popped entries whose cell is already settled.
type frontier []*frontierItem

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	if f[i].prio != f[j].prio {
		return f[i].prio < f[j].prio
	}
	return f[i].seq < f[j].seq
}

func (f frontier) Swap(i, j int) {
	f[i], f[j] = f[j], f[i]
	f[i].idx = i
	f[j].idx = j
}

func (f *frontier) Push(x any) {
	item := x.(*frontierItem)
	item.idx = len(*f)
	*f = append(*f, item)
}

func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.idx = -1
	*f = old[:n-1]
	return item
}
