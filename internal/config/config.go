// Package config provides YAML-based configuration loading for the
// visualizer: grid dimensions, animation pacing, search defaults and
// run-history storage.
package config

import "fmt"

// Config is the full application configuration.
type Config struct {
	Grid      GridConfig      `yaml:"grid"`
	Search    SearchConfig    `yaml:"search"`
	Animation AnimationConfig `yaml:"animation"`
	Storage   StorageConfig   `yaml:"storage"`
}

// GridConfig defines board dimensions and generation parameters.
type GridConfig struct {
	Rows        int     `yaml:"rows"`
	Cols        int     `yaml:"cols"`
	WallDensity float64 `yaml:"wall_density"`
}

// SearchConfig selects the default algorithm.
type SearchConfig struct {
	Algorithm string `yaml:"algorithm"`
}

// AnimationConfig defines playback pacing.
type AnimationConfig struct {
	FPS            int `yaml:"fps"`
	VisitedPerTick int `yaml:"visited_per_tick"`
	PathEveryTicks int `yaml:"path_every_ticks"`
}

// StorageConfig points at the run-history database.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// Validate checks ranges that would otherwise surface as confusing
// behavior deep inside the session.
func (c Config) Validate() error {
	if c.Grid.Rows < 2 || c.Grid.Cols < 2 {
		return fmt.Errorf("config: grid %dx%d is too small", c.Grid.Rows, c.Grid.Cols)
	}
	if c.Grid.WallDensity < 0 || c.Grid.WallDensity >= 1 {
		return fmt.Errorf("config: wall_density %.2f out of range [0, 1)", c.Grid.WallDensity)
	}
	if c.Animation.FPS < 1 || c.Animation.FPS > 120 {
		return fmt.Errorf("config: fps %d out of range [1, 120]", c.Animation.FPS)
	}
	if c.Animation.VisitedPerTick < 1 {
		return fmt.Errorf("config: visited_per_tick must be positive")
	}
	if c.Animation.PathEveryTicks < 1 {
		return fmt.Errorf("config: path_every_ticks must be positive")
	}
	return nil
}
