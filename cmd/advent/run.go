package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/advent/internal/registry"
	"github.com/vovakirdan/advent/internal/runner"
)

var (
	flagPart  int
	flagInput string
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	answerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	elapsedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

var runCmd = &cobra.Command{
	Use:   "run <day>",
	Short: "Solve a day",
	Long: `Solve one or both parts of a day and print the answers.

Examples:
  advent run 4
  advent run 6 --part 2
  advent run 5 --input ./example.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func init() {
	runCmd.Flags().IntVar(&flagPart, "part", 0, "Part to solve: 1, 2 or 0 for both")
	runCmd.Flags().StringVar(&flagInput, "input", "", "Read the input from this file instead of the input directory")
}

func runRun(cmd *cobra.Command, args []string) error {
	day, err := parseDay(args[0])
	if err != nil {
		return err
	}
	var parts []int
	switch flagPart {
	case 0:
	case 1, 2:
		parts = []int{flagPart}
	default:
		return fmt.Errorf("part must be 1 or 2, got %d", flagPart)
	}

	r := newRunner()
	var res runner.Result
	if flagInput != "" {
		p, err := registry.Create(day, runtimeConfig())
		if err != nil {
			return err
		}
		data, err := os.ReadFile(flagInput)
		if err != nil {
			return err
		}
		res = r.SolveText(p, string(data), parts...)
	} else {
		res, err = r.Solve(day, parts...)
		if err != nil {
			return err
		}
	}

	printResult(res)
	if res.Failed() {
		return fmt.Errorf("day %d failed", day)
	}
	return nil
}

func printResult(res runner.Result) {
	fmt.Println(headerStyle.Render(fmt.Sprintf("Day %d: %s", res.Day, res.Title)))
	for _, p := range res.Parts {
		elapsed := elapsedStyle.Render(fmt.Sprintf("(%s)", p.Elapsed.Round(time.Microsecond)))
		if p.Err != nil {
			fmt.Printf("  Part %d: %s %s\n", p.Part, errorStyle.Render(p.Err.Error()), elapsed)
			continue
		}
		fmt.Printf("  Part %d: %s %s\n", p.Part, answerStyle.Render(fmt.Sprint(p.Answer)), elapsed)
	}
}
