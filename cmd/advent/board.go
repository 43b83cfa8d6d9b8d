package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/advent/internal/platform/tui"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Solve every day and show a results table",
	Long: `Solve both parts of every day that has an input file and show
the answers and timings in an interactive table.`,
	Args: cobra.NoArgs,
	RunE: runBoard,
}

func runBoard(cmd *cobra.Command, args []string) error {
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	results := newRunner().SolveAll()
	return tui.RunBoard(results, width, height)
}
