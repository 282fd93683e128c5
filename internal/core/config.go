package core

// RuntimeConfig contains configuration passed to the visualizer at
// initialization. It adapts the session to screen size and makes board
// generation deterministic.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 30)
	Seed     int64 // RNG seed for maze/wall generation
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  110,
		ScreenH:  32,
		TickRate: 30,
		Seed:     0, // 0 means use current time in platform layer
	}
}
