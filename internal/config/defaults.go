package config

import (
	_ "embed"
)

//go:embed defaults/gridpath.yaml
var defaultYAML []byte

// DefaultConfig returns the hardcoded default configuration, used when the
// embedded YAML cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Grid: GridConfig{
			Rows:        25,
			Cols:        50,
			WallDensity: 0.3,
		},
		Search: SearchConfig{
			Algorithm: "dijkstra",
		},
		Animation: AnimationConfig{
			FPS:            30,
			VisitedPerTick: 4,
			PathEveryTicks: 2,
		},
		Storage: StorageConfig{
			Path: "~/.gridpath/runs.db",
		},
	}
}
