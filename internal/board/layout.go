package board

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Layout is a named board definition loaded from YAML. The layout strings
// use 'S' for the start cell, 'E' for the end cell, '#' for walls and '.'
// or ' ' for empty cells. Rows may have different lengths; short rows are
// padded with empty cells.
type Layout struct {
	ID     string   `yaml:"id"`
	Name   string   `yaml:"name"`
	Rows   []string `yaml:"layout"`
	Source string   `yaml:"-"`
}

// ParseLayout parses a YAML layout document.
func ParseLayout(data []byte) (Layout, error) {
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return Layout{}, fmt.Errorf("board: parse layout: %w", err)
	}
	if len(l.Rows) == 0 {
		return Layout{}, fmt.Errorf("board: layout %q has no rows", l.ID)
	}
	return l, nil
}

// LoadLayout reads and parses a layout file.
func LoadLayout(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("board: read layout %s: %w", path, err)
	}
	l, err := ParseLayout(data)
	if err != nil {
		return Layout{}, err
	}
	if l.ID == "" {
		l.ID = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	l.Source = path
	return l, nil
}

// LoadLayoutDir loads every *.yaml/*.yml layout under dir, sorted by ID for
// deterministic ordering. Invalid files are skipped.
func LoadLayoutDir(dir string) ([]Layout, error) {
	var layouts []Layout
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}
		l, lerr := LoadLayout(path)
		if lerr != nil {
			return nil // skip invalid files
		}
		layouts = append(layouts, l)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("board: walking %s: %w", dir, err)
	}
	sort.Slice(layouts, func(i, j int) bool {
		return layouts[i].ID < layouts[j].ID
	})
	return layouts, nil
}

// ToBoard builds a Board from the layout. The layout must contain exactly
// one 'S' and one 'E'.
func (l Layout) ToBoard() (*Board, error) {
	rows := len(l.Rows)
	cols := 0
	for _, row := range l.Rows {
		if len(row) > cols {
			cols = len(row)
		}
	}

	var start, end Coord
	starts, ends := 0, 0
	for r, row := range l.Rows {
		for c, ch := range row {
			switch ch {
			case 'S':
				start = At(r, c)
				starts++
			case 'E':
				end = At(r, c)
				ends++
			}
		}
	}
	if starts != 1 {
		return nil, fmt.Errorf("board: layout %q must contain exactly one 'S', found %d", l.ID, starts)
	}
	if ends != 1 {
		return nil, fmt.Errorf("board: layout %q must contain exactly one 'E', found %d", l.ID, ends)
	}

	b, err := New(rows, cols, start, end)
	if err != nil {
		return nil, err
	}
	for r, row := range l.Rows {
		for c, ch := range row {
			if ch == '#' {
				b.cells[b.index(At(r, c))].Kind = KindWall
			}
		}
	}
	return b, nil
}
