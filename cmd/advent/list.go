package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/advent/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all solved days",
	Long:  `Shows every registered day and whether its input file is present.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	days := registry.List()

	if len(days) == 0 {
		fmt.Println("No puzzles available.")
		return
	}

	loader := newLoader()
	fmt.Printf("Puzzles (inputs from %s):\n", loader.Root)
	fmt.Println()

	maxTitleLen := 5 // "Title" header
	for _, d := range days {
		maxTitleLen = max(maxTitleLen, len(d.Title))
	}

	fmt.Printf("  %-3s  %-*s  %s\n", "Day", maxTitleLen, "Title", "Input")
	fmt.Printf("  %-3s  %-*s  %s\n", "---", maxTitleLen, "-----", "-----")

	for _, d := range days {
		status := "missing"
		if len(loader.Available([]int{d.Day})) == 1 {
			status = "ok"
		}
		fmt.Printf("  %-3d  %-*s  %s\n", d.Day, maxTitleLen, d.Title, status)
	}

	fmt.Println()
	fmt.Println("Run 'advent run <day>' to solve a day.")
}
