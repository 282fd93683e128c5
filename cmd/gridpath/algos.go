package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridpath/internal/search"
)

var algosCmd = &cobra.Command{
	Use:   "algos",
	Short: "List all available algorithms",
	Long:  `Shows a list of all search algorithms registered in the visualizer.`,
	Run:   runAlgos,
}

func runAlgos(cmd *cobra.Command, args []string) {
	algos := search.List()

	if len(algos) == 0 {
		fmt.Println("No algorithms available.")
		return
	}

	fmt.Println("Available algorithms:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, a := range algos {
		if len(a.ID) > maxIDLen {
			maxIDLen = len(a.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Name")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "----")

	for _, a := range algos {
		fmt.Printf("  %-*s  %s\n", maxIDLen, a.ID, a.Name)
	}

	fmt.Println()
	fmt.Println("Run 'gridpath run --algo <id>' to watch one work.")
}
