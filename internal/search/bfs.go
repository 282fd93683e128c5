package search

import (
	"github.com/vovakirdan/gridpath/internal/board"
)

func init() {
	Register("bfs", func() Engine { return BFS{} })
}

// BFS performs breadth-first search. With unit edge weights it settles
// cells in the same distance order as Dijkstra while replacing the heap
// with a plain FIFO queue.
type BFS struct{}

func (BFS) ID() string   { return "bfs" }
func (BFS) Name() string { return "Breadth-First" }

func (BFS) Run(b *board.Board, start, end board.Coord) (*Trace, error) {
	if err := prepare(b, start, end); err != nil {
		return nil, err
	}
	r := &bfsRun{
		b:   b,
		ep:  endpoints{start: start, end: end},
		sum: Summary{Found: false, PathLength: -1},
	}
	if b.Kind(start) != board.KindWall {
		r.queue = append(r.queue, start)
	}
	return newTrace(r), nil
}

type bfsRun struct {
	b     *board.Board
	ep    endpoints
	queue []board.Coord
	sum   Summary
}

func (r *bfsRun) step() ([]Event, bool) {
	if len(r.queue) == 0 {
		return nil, true
	}
	cur := r.queue[0]
	r.queue = r.queue[1:]

	r.b.Settle(cur)
	r.sum.Visited++
	events := r.ep.settleEvents(cur)

	if cur == r.ep.end {
		path, length := r.ep.pathEvents(r.b)
		r.sum.Found = true
		r.sum.PathLength = length
		return append(events, path...), true
	}

	dist := r.b.Dist(cur)
	for _, n := range r.b.Neighbors(cur) {
		if r.b.Kind(n) == board.KindWall {
			continue
		}
		// First discovery is final on a unit grid; enqueue exactly once.
		if r.b.Dist(n) == board.Unreached {
			r.b.Relax(n, dist+1, cur)
			r.queue = append(r.queue, n)
		}
	}
	return events, false
}

func (r *bfsRun) summary() Summary { return r.sum }
