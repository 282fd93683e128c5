package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gridpath/internal/board"
	"github.com/vovakirdan/gridpath/internal/config"
	"github.com/vovakirdan/gridpath/internal/core"
	"github.com/vovakirdan/gridpath/internal/platform/tui"
	"github.com/vovakirdan/gridpath/internal/search"
	"github.com/vovakirdan/gridpath/internal/storage"
	"github.com/vovakirdan/gridpath/internal/visualizer"
)

var (
	flagRows    int
	flagCols    int
	flagAlgo    string
	flagBoard   string
	flagMaze    bool
	flagScatter bool
	flagDensity float64
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the interactive visualizer",
	Long: `Open the interactive grid editor and visualizer.

Controls:
  WASD/Arrows  - Move cursor
  Space/Mouse  - Paint at cursor or click
  1/2/3        - Paint mode: wall, start, end
  Enter        - Run the search
  Tab          - Cycle algorithm
  M / X        - Generate maze / scatter walls
  C / R        - Clear run / reset board
  P            - Pause animation
  Q/Ctrl+C     - Quit

Examples:
  gridpath run
  gridpath run --algo astar --rows 30 --cols 60
  gridpath run --maze --seed 7
  gridpath run --board ./boards/spiral.yaml`,
	Run: runRun,
}

func init() {
	addBoardFlags(runCmd)
}

// addBoardFlags registers the board setup flags shared by run and solve.
func addBoardFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&flagRows, "rows", 0, "Grid rows (0 = from config)")
	cmd.Flags().IntVar(&flagCols, "cols", 0, "Grid columns (0 = from config)")
	cmd.Flags().StringVar(&flagAlgo, "algo", "", "Algorithm ID (empty = from config)")
	cmd.Flags().StringVar(&flagBoard, "board", "", "Path to a board layout YAML")
	cmd.Flags().BoolVar(&flagMaze, "maze", false, "Generate a maze before starting")
	cmd.Flags().BoolVar(&flagScatter, "scatter", false, "Scatter random walls before starting")
	cmd.Flags().Float64Var(&flagDensity, "density", 0, "Wall density for --scatter (0 = from config)")
}

// sessionOptions merges config values with flag overrides.
func sessionOptions(cfg config.Config) visualizer.Options {
	opts := visualizer.Options{
		Rows:           cfg.Grid.Rows,
		Cols:           cfg.Grid.Cols,
		Algo:           cfg.Search.Algorithm,
		VisitedPerTick: cfg.Animation.VisitedPerTick,
		PathEveryTicks: cfg.Animation.PathEveryTicks,
		WallDensity:    cfg.Grid.WallDensity,
	}
	if flagRows > 0 {
		opts.Rows = flagRows
	}
	if flagCols > 0 {
		opts.Cols = flagCols
	}
	if flagAlgo != "" {
		opts.Algo = flagAlgo
	}
	if flagDensity > 0 {
		opts.WallDensity = flagDensity
	}
	return opts
}

// buildBoard constructs the starting board from a layout file or fresh
// dimensions, applying the requested generator.
func buildBoard(opts visualizer.Options, seed int64) (*board.Board, error) {
	var b *board.Board
	var err error

	if flagBoard != "" {
		layout, loadErr := board.LoadLayout(flagBoard)
		if loadErr != nil {
			return nil, loadErr
		}
		b, err = layout.ToBoard()
	} else {
		b, err = board.NewDefault(opts.Rows, opts.Cols)
	}
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(seed))
	switch {
	case flagMaze:
		board.Maze(b, rng)
	case flagScatter:
		board.Scatter(b, rng, opts.WallDensity)
	}
	return b, nil
}

// resolveSeed turns the seed flag into a concrete seed.
func resolveSeed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

func runRun(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	opts := sessionOptions(cfg)

	if !search.Exists(opts.Algo) {
		fmt.Fprintf(os.Stderr, "Error: unknown algorithm %q\n", opts.Algo)
		fmt.Fprintln(os.Stderr, "Run 'gridpath algos' to see available algorithms.")
		os.Exit(1)
	}

	seed := resolveSeed()
	b, err := buildBoard(opts, seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building board: %v\n", err)
		os.Exit(1)
	}
	session := visualizer.NewWithBoard(b, opts)

	// Terminal size for the initial layout
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: tickRate(cfg),
		Seed:     seed,
	}

	store, err := storage.Open(dbPath(cfg))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run database: %v\n", err)
		// Continue without storage - the visualizer still works
		store = nil
	}

	runErr := tui.Run(session, store, runtime)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running visualizer: %v\n", runErr)
		os.Exit(1)
	}
}
