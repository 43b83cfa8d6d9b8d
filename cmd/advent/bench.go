package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var (
	flagBenchPart  int
	flagIterations int
)

var benchCmd = &cobra.Command{
	Use:   "bench <day>",
	Short: "Time repeated runs of a part",
	Long: `Solve one part many times and report the mean and fastest run.

Examples:
  advent bench 4
  advent bench 6 --part 2 --iterations 20`,
	Args: cobra.ExactArgs(1),
	RunE: runBench,
}

func init() {
	benchCmd.Flags().IntVar(&flagBenchPart, "part", 1, "Part to time: 1 or 2")
	benchCmd.Flags().IntVar(&flagIterations, "iterations", 0, "Number of runs (0 = bench.iterations from config)")
}

func runBench(cmd *cobra.Command, args []string) error {
	day, err := parseDay(args[0])
	if err != nil {
		return err
	}
	iterations := cfg.Bench.Iterations
	if flagIterations > 0 {
		iterations = flagIterations
	}

	res, err := newRunner().Bench(day, flagBenchPart, iterations)
	if err != nil {
		return err
	}

	fmt.Println(headerStyle.Render(fmt.Sprintf("Day %d part %d", res.Day, res.Part)))
	fmt.Printf("  runs     %d\n", res.Iterations)
	fmt.Printf("  mean     %s\n", res.Mean().Round(time.Microsecond))
	fmt.Printf("  fastest  %s\n", res.Fastest.Round(time.Microsecond))
	fmt.Printf("  total    %s\n", res.Total.Round(time.Millisecond))
	return nil
}
