package board

import (
	"math/rand"
	"testing"
)

func TestScatterDeterminism(t *testing.T) {
	b1, _ := NewDefault(25, 50)
	b2, _ := NewDefault(25, 50)

	Scatter(b1, rand.New(rand.NewSource(42)), 0.3)
	Scatter(b2, rand.New(rand.NewSource(42)), 0.3)

	if b1.String() != b2.String() {
		t.Error("same seed should produce the same scatter")
	}
}

func TestScatterKeepsStartEnd(t *testing.T) {
	b, _ := NewDefault(25, 50)
	Scatter(b, rand.New(rand.NewSource(7)), 1.0)

	if b.Kind(b.Start()) != KindStart {
		t.Error("scatter turned the start cell into a wall")
	}
	if b.Kind(b.End()) != KindEnd {
		t.Error("scatter turned the end cell into a wall")
	}

	// density 1.0 walls every other empty cell
	if b.WallCount() != b.Rows()*b.Cols()-2 {
		t.Errorf("WallCount() = %d, expected %d", b.WallCount(), b.Rows()*b.Cols()-2)
	}
}

func TestScatterReplacesPreviousWalls(t *testing.T) {
	b, _ := NewDefault(10, 10)
	Scatter(b, rand.New(rand.NewSource(1)), 1.0)
	Scatter(b, rand.New(rand.NewSource(1)), 0.0)

	if b.WallCount() != 0 {
		t.Errorf("WallCount() after zero-density scatter = %d, expected 0", b.WallCount())
	}
}

func TestMazeDeterminism(t *testing.T) {
	b1, _ := NewDefault(25, 50)
	b2, _ := NewDefault(25, 50)

	Maze(b1, rand.New(rand.NewSource(99)))
	Maze(b2, rand.New(rand.NewSource(99)))

	if b1.String() != b2.String() {
		t.Error("same seed should produce the same maze")
	}
}

func TestMazeKeepsStartEnd(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		b, _ := NewDefault(25, 50)
		Maze(b, rand.New(rand.NewSource(seed)))

		if b.Kind(b.Start()) != KindStart || b.Kind(b.End()) != KindEnd {
			t.Fatalf("seed %d: maze overwrote start or end", seed)
		}
		if b.WallCount() == 0 {
			t.Fatalf("seed %d: maze produced no walls", seed)
		}
	}
}
