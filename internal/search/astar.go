package search

import (
	"container/heap"

	"github.com/vovakirdan/gridpath/internal/board"
)

func init() {
	Register("astar", func() Engine { return AStar{} })
}

// AStar is Dijkstra guided by the Manhattan distance to the end cell. The
// heuristic is admissible on a 4-connected unit grid, so the path found is
// still shortest while fewer cells settle on open boards.
type AStar struct{}

func (AStar) ID() string   { return "astar" }
func (AStar) Name() string { return "A*" }

func (AStar) Run(b *board.Board, start, end board.Coord) (*Trace, error) {
	if err := prepare(b, start, end); err != nil {
		return nil, err
	}
	r := &astarRun{
		b:   b,
		ep:  endpoints{start: start, end: end},
		pq:  &frontier{},
		sum: Summary{Found: false, PathLength: -1},
	}
	heap.Init(r.pq)
	if b.Kind(start) != board.KindWall {
		r.push(start, start.Manhattan(end))
	}
	return newTrace(r), nil
}

type astarRun struct {
	b   *board.Board
	ep  endpoints
	pq  *frontier
	seq uint64
	sum Summary
}

func (r *astarRun) push(c board.Coord, prio int) {
	r.seq++
	heap.Push(r.pq, &frontierItem{cell: c, prio: prio, seq: r.seq})
}

func (r *astarRun) step() ([]Event, bool) {
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
			r.push(n, cand+n.Manhattan(r.ep.end))
		}
	}
	return events, false
}

func (r *astarRun) summary() Summary { return r.sum }
