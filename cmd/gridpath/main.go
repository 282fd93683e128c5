// gridpath is an interactive terminal visualizer for grid pathfinding.
//
// Usage:
//
//	gridpath run               - Open the interactive visualizer
//	gridpath solve             - Solve a grid headlessly and print the result
//	gridpath algos             - List available algorithms
//	gridpath history           - Browse saved run history
//	gridpath serve             - Start SSH server for remote sessions
//
// Global flags:
//
//	--fps <rate>     - Animation tick rate (default: 30)
//	--seed <value>   - RNG seed for reproducible mazes (0 = time-based)
//	--db <path>      - Run history database path (default: ~/.gridpath/runs.db)
//	--config <path>  - Custom config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridpath/internal/config"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gridpath",
	Short: "GridPath - Watch pathfinding algorithms work in your terminal",
	Long: `GridPath is a terminal-based pathfinding visualizer. Paint walls on a
grid, drop start and end markers, and watch Dijkstra, A* or BFS sweep the
board cell by cell until the shortest path lights up.

Available commands:
  run      - Open the interactive visualizer
  solve    - Solve a grid headlessly and print the result
  algos    - List available algorithms
  history  - Browse saved run history
  serve    - Start SSH server for remote sessions

Examples:
  gridpath run
  gridpath run --algo astar --maze
  gridpath solve --rows 30 --cols 60 --scatter
  gridpath history
  gridpath serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Animation tick rate (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to run history database (empty = from config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")

	// Add subcommands
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(algosCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig loads the YAML config, exiting on an unusable explicit path.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// tickRate resolves the animation rate from the flag or config.
func tickRate(cfg config.Config) int {
	if flagFPS > 0 {
		return flagFPS
	}
	return cfg.Animation.FPS
}

// dbPath resolves the history database path from the flag or config.
func dbPath(cfg config.Config) string {
	if flagDBPath != "" {
		return flagDBPath
	}
	return cfg.Storage.Path
}
