package search

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/gridpath/internal/board"
)

func TestEnginesAgreeOnPathLength(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T) *board.Board
	}{
		{"open", func(t *testing.T) *board.Board {
			return openBoard(t, 15, 25, board.At(7, 3), board.At(7, 20))
		}},
		{"scattered", func(t *testing.T) *board.Board {
			b := openBoard(t, 20, 30, board.At(3, 3), board.At(16, 26))
			board.Scatter(b, rand.New(rand.NewSource(11)), 0.3)
			return b
		}},
		{"maze", func(t *testing.T) *board.Board {
			b := openBoard(t, 21, 31, board.At(1, 1), board.At(19, 29))
			board.Maze(b, rand.New(rand.NewSource(3)))
			return b
		}},
		{"blocked", func(t *testing.T) *board.Board {
			b := openBoard(t, 9, 9, board.At(4, 1), board.At(4, 7))
			for r := 0; r < 9; r++ {
				if err := b.Paint(board.At(r, 4), board.PaintWall); err != nil {
					t.Fatalf("Paint: %v", err)
				}
			}
			return b
		}},
	}
	engines := []Engine{Dijkstra{}, AStar{}, BFS{}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := tt.setup(t)
			_, ref := runDrain(t, engines[0], b, b.Start(), b.End())
			for _, e := range engines[1:] {
				_, sum := runDrain(t, e, b, b.Start(), b.End())
				if sum.Found != ref.Found || sum.PathLength != ref.PathLength {
					t.Errorf("%s: found=%v length=%d, %s got found=%v length=%d",
						engines[0].ID(), ref.Found, ref.PathLength, e.ID(), sum.Found, sum.PathLength)
				}
			}
		})
	}
}

func TestBFSMatchesDijkstraOnUnitGrid(t *testing.T) {
	// With unit edge weights both settle cells in first-discovered order,
	// so the full event streams coincide, not just the summaries.
	b := openBoard(t, 14, 18, board.At(6, 2), board.At(10, 15))
	board.Scatter(b, rand.New(rand.NewSource(21)), 0.25)

	dEvents, dSum := runDrain(t, Dijkstra{}, b, b.Start(), b.End())
	bEvents, bSum := runDrain(t, BFS{}, b, b.Start(), b.End())

	if dSum != bSum {
		t.Fatalf("summaries differ: dijkstra %+v, bfs %+v", dSum, bSum)
	}
	if len(dEvents) != len(bEvents) {
		t.Fatalf("event counts differ: dijkstra %d, bfs %d", len(dEvents), len(bEvents))
	}
	for i := range dEvents {
		if dEvents[i] != bEvents[i] {
			t.Fatalf("event %d differs: dijkstra %+v, bfs %+v", i, dEvents[i], bEvents[i])
		}
	}
}

func TestAStarVisitsNoMoreThanDijkstra(t *testing.T) {
	b := openBoard(t, 20, 40, board.At(10, 5), board.At(10, 34))
	_, dSum := runDrain(t, Dijkstra{}, b, b.Start(), b.End())
	_, aSum := runDrain(t, AStar{}, b, b.Start(), b.End())

	if aSum.PathLength != dSum.PathLength {
		t.Fatalf("PathLength: astar %d, dijkstra %d", aSum.PathLength, dSum.PathLength)
	}
	if aSum.Visited > dSum.Visited {
		t.Errorf("astar visited %d cells, dijkstra only %d", aSum.Visited, dSum.Visited)
	}
}

func TestRegistry(t *testing.T) {
	for _, id := range []string{"astar", "bfs", "dijkstra"} {
		if !Exists(id) {
			t.Errorf("Exists(%q) = false", id)
		}
		e, err := Create(id)
		if err != nil {
			t.Errorf("Create(%q): %v", id, err)
			continue
		}
		if e.ID() != id {
			t.Errorf("Create(%q).ID() = %q", id, e.ID())
		}
	}

	if Exists("nope") {
		t.Error(`Exists("nope") = true`)
	}
	if _, err := Create("nope"); err == nil {
		t.Error(`Create("nope") succeeded`)
	}

	infos := List()
	if len(infos) < 3 {
		t.Fatalf("List returned %d engines, want at least 3", len(infos))
	}
	for i := 1; i < len(infos); i++ {
		if infos[i-1].ID >= infos[i].ID {
			t.Errorf("List not sorted: %q before %q", infos[i-1].ID, infos[i].ID)
		}
	}
}
