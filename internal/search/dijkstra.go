package search

import (
	"container/heap"

	"github.com/vovakirdan/gridpath/internal/board"
)

func init() {
	Register("dijkstra", func() Engine { return Dijkstra{} })
}

// Dijkstra implements uniform-cost shortest-path search. On a unit-weight
// grid it expands cells in non-decreasing distance from the start, so the
// first time the end cell settles its distance is optimal.
type Dijkstra struct{}

func (Dijkstra) ID() string   { return "dijkstra" }
func (Dijkstra) Name() string { return "Dijkstra" }

func (Dijkstra) Run(b *board.Board, start, end board.Coord) (*Trace, error) {
	if err := prepare(b, start, end); err != nil {
		return nil, err
	}
	r := &dijkstraRun{
		b:   b,
		ep:  endpoints{start: start, end: end},
		pq:  &frontier{},
		sum: Summary{Found: false, PathLength: -1},
	}
	heap.Init(r.pq)
	if b.Kind(start) != board.KindWall {
		r.push(start, 0)
	}
	return newTrace(r), nil
}

// dijkstraRun is the stepper behind a Dijkstra trace. Each step settles
// exactly one cell.
type dijkstraRun struct {
	b   *board.Board
	ep  endpoints
	pq  *frontier
	seq uint64
	sum Summary
}

func (r *dijkstraRun) push(c board.Coord, prio int) {
	r.seq++
	heap.Push(r.pq, &frontierItem{cell: c, prio: prio, seq: r.seq})
}

func (r *dijkstraRun) step() ([]Event, bool) {
	// Skip stale frontier entries for cells settled via a shorter route.
	var cur board.Coord
	for {
		if r.pq.Len() == 0 {
			return nil, true
		}
		item := heap.Pop(r.pq).(*frontierItem)
		if !r.b.Settled(item.cell) {
			cur = item.cell
			break
		}
	}

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
		if r.b.Kind(n) == board.KindWall || r.b.Settled(n) {
			continue
		}
		if cand := dist + 1; cand < r.b.Dist(n) {
			r.b.Relax(n, cand, cur)
			r.push(n, cand)
		}
	}
	return events, false
}

func (r *dijkstraRun) summary() Summary { return r.sum }
