package board

import "math/rand"

// Scatter replaces the current walls with a random scatter of the given
// density (0..1). Start and end cells are never turned into walls. The same
// rng seed produces the same board.
func Scatter(b *Board, rng *rand.Rand, density float64) {
	if density < 0 {
		density = 0
	}
	if density > 1 {
		density = 1
	}
	clearWalls(b)
	for r := 0; r < b.Rows(); r++ {
		for c := 0; c < b.Cols(); c++ {
			pos := At(r, c)
			if b.Kind(pos) != KindEmpty {
				continue
			}
			if rng.Float64() < density {
				b.cells[b.index(pos)].Kind = KindWall
			}
		}
	}
}

// Maze replaces the current walls with a recursive-division maze:
// chambers are split by full walls with a single gap, recursively, until
// they are too small to divide. Start and end cells stay open. The same rng
// seed produces the same maze.
func Maze(b *Board, rng *rand.Rand) {
	clearWalls(b)
	divide(b, rng, 0, 0, b.Rows()-1, b.Cols()-1)
}

// clearWalls reverts every wall cell to empty.
func clearWalls(b *Board) {
	for i := range b.cells {
		if b.cells[i].Kind == KindWall {
			b.cells[i].Kind = KindEmpty
		}
	}
}

// setWall places a wall unless the cell holds the start or end marker.
func setWall(b *Board, c Coord) {
	if !b.InBounds(c) {
		return
	}
	cell := &b.cells[b.index(c)]
	if cell.Kind == KindEmpty {
		cell.Kind = KindWall
	}
}

// divide splits the chamber [top..bottom]x[left..right] with one wall and a
// gap, then recurses into both halves. Chambers narrower than 2 cells in
// the split direction are left open.
func divide(b *Board, rng *rand.Rand, top, left, bottom, right int) {
	height := bottom - top + 1
	width := right - left + 1
	if height < 3 && width < 3 {
		return
	}

	// Split across the longer side; ties split horizontally.
	horizontal := height >= width

	if horizontal {
		if height < 3 {
			return
		}
		// Wall on a random interior row, gap at a random column.
		wallRow := top + 1 + rng.Intn(height-2)
		gapCol := left + rng.Intn(width)
		for c := left; c <= right; c++ {
			if c == gapCol {
				continue
			}
			setWall(b, At(wallRow, c))
		}
		divide(b, rng, top, left, wallRow-1, right)
		divide(b, rng, wallRow+1, left, bottom, right)
	} else {
		if width < 3 {
			return
		}
		wallCol := left + 1 + rng.Intn(width-2)
		gapRow := top + rng.Intn(height)
		for r := top; r <= bottom; r++ {
			if r == gapRow {
				continue
			}
			setWall(b, At(r, wallCol))
		}
		divide(b, rng, top, left, bottom, wallCol-1)
		divide(b, rng, top, wallCol+1, bottom, right)
	}
}
