package visualizer

import (
	"fmt"

	"github.com/vovakirdan/gridpath/internal/board"
	"github.com/vovakirdan/gridpath/internal/core"
	"github.com/vovakirdan/gridpath/internal/search"
)

const (
	hudHeight    = 2
	legendHeight = 2
)

// Cell glyphs. Walls and the frontier use the full block so the grid reads
// as solid shapes; visited cells stay light to keep the sweep visible.
const (
	runeWall    = '█'
	runeVisited = '░'
	runeCurrent = '█'
	runePath    = '█'
	runeStart   = 'S'
	runeEnd     = 'E'
	runeCursor  = '+'
)

// Render draws the full session frame into the screen buffer.
func (s *Session) Render(dst *core.Screen) {
	dst.Clear()
	s.renderHUD(dst)

	if s.tooSmall {
		dst.DrawTextCentered(dst.Height()/2, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+2, "Resize to continue")
		return
	}

	dst.DrawBox(core.Rect{X: s.gridX, Y: s.gridY, W: s.b.Cols() + 2, H: s.b.Rows() + 2})
	s.renderGrid(dst)
	s.renderLegend(dst)
}

func (s *Session) renderHUD(dst *core.Screen) {
	state := ""
	switch {
	case s.paused:
		state = "[paused]"
	case s.phase == PhaseRunning:
		state = "[running]"
	case s.phase == PhaseDone:
		state = "[done]"
	}
	hud := fmt.Sprintf(" GridPath | %s  paint: %s  %s", s.algoName(), s.mode, state)
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

func (s *Session) renderGrid(dst *core.Screen) {
	for r := 0; r < s.b.Rows(); r++ {
		for c := 0; c < s.b.Cols(); c++ {
			cell := board.At(r, c)
			x := s.gridX + 1 + c
			y := s.gridY + 1 + r
			glyph, color := s.cellVisual(cell)
			if glyph != ' ' {
				dst.SetColored(x, y, glyph, color)
			}
		}
	}
	// The cursor tints whatever occupies its cell while editing.
	if s.phase != PhaseRunning {
		x := s.gridX + 1 + s.cursor.Col
		y := s.gridY + 1 + s.cursor.Row
		glyph := dst.Get(x, y)
		if glyph == ' ' {
			glyph = runeCursor
		}
		dst.SetColored(x, y, glyph, core.ColorBrightWhite)
	}
}

// cellVisual picks the glyph and color for a cell. Endpoint letters always
// win so the targets stay visible through the animation.
func (s *Session) cellVisual(c board.Coord) (rune, core.Color) {
	cell := s.b.At(c)
	switch cell.Kind {
	case board.KindStart:
		return runeStart, core.ColorBrightGreen
	case board.KindEnd:
		return runeEnd, core.ColorBrightRed
	case board.KindWall:
		return runeWall, core.ColorGray
	}
	switch cell.Mark {
	case board.MarkCurrent:
		return runeCurrent, core.ColorBrightYellow
	case board.MarkVisited:
		return runeVisited, core.ColorCyan
	case board.MarkPath:
		return runePath, core.ColorBrightMagenta
	}
	return ' ', core.ColorDefault
}

func (s *Session) renderLegend(dst *core.Screen) {
	y := s.gridY + s.b.Rows() + 2
	keys := " space paint  1/2/3 mode  enter run  tab algo  m maze  x scatter  c clear  r reset  p pause  q quit"
	dst.DrawTextColored(0, y, keys, core.ColorGray)

	line := s.status
	if line == "" && s.haveSum {
		if s.sum.Found {
			line = fmt.Sprintf("path found: %d steps, %d cells visited", s.sum.PathLength, s.sum.Visited)
		} else {
			line = fmt.Sprintf("no path exists, %d cells visited", s.sum.Visited)
		}
	}
	if line != "" {
		dst.DrawTextColored(1, y+1, line, core.ColorBrightCyan)
	}
}

func (s *Session) algoName() string {
	for _, info := range search.List() {
		if info.ID == s.algo {
			return info.Name
		}
	}
	return s.algo
}
