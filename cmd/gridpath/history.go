package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gridpath/internal/platform/tui"
	"github.com/vovakirdan/gridpath/internal/storage"
)

var flagClearHistory bool

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse saved run history",
	Long: `Open an interactive table of recorded runs. Tab switches between the
run list and per-algorithm statistics.

Examples:
  gridpath history
  gridpath history --db ./runs.db
  gridpath history --clear`,
	Run: runHistory,
}

func init() {
	historyCmd.Flags().BoolVar(&flagClearHistory, "clear", false, "Delete the entire run history")
}

func runHistory(cmd *cobra.Command, args []string) {
	cfg := loadConfig()

	store, err := storage.Open(dbPath(cfg))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClearHistory {
		if err := store.ClearRuns(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing history: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Run history cleared.")
		return
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunHistory(store, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error showing history: %v\n", err)
		os.Exit(1)
	}
}
