// advent solves Advent of Code 2024 puzzles from input files on disk.
//
// Usage:
//
//	advent list               - List registered days and whether their input exists
//	advent run <day>          - Solve a day and print the answers
//	advent bench <day>        - Time repeated runs of one part
//	advent watch [file]       - Animate the day 6 guard patrol
//	advent board              - Solve every day with input and show a results table
//
// Global flags:
//
//	--config <path>     - Config file (default: ~/.advent/config.yaml)
//	--input-dir <dir>   - Directory holding day1.txt, day2.txt, ...
//	--workers <n>       - Parallel workers (0 = one per CPU)
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"
	"runtime"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/advent/internal/config"
	"github.com/vovakirdan/advent/internal/core"
	"github.com/vovakirdan/advent/internal/input"
	"github.com/vovakirdan/advent/internal/runner"

	// Import puzzles to register them
	_ "github.com/vovakirdan/advent/internal/puzzles/day1"
	_ "github.com/vovakirdan/advent/internal/puzzles/day2"
	_ "github.com/vovakirdan/advent/internal/puzzles/day3"
	_ "github.com/vovakirdan/advent/internal/puzzles/day4"
	_ "github.com/vovakirdan/advent/internal/puzzles/day5"
	_ "github.com/vovakirdan/advent/internal/puzzles/day6"
)

var (
	// Global flags
	flagConfig   string
	flagInputDir string
	flagWorkers  int
	flagLogLevel string

	cfg    config.Config
	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "advent",
	Short: "Advent of Code 2024 solutions",
	Long: `advent solves Advent of Code 2024 puzzles against your inputs.

Inputs are read from the input directory as day1.txt, day2.txt, ...

Examples:
  advent list
  advent run 4
  advent run 6 --part 1
  advent bench 4 --part 2 --iterations 500
  advent watch
  advent board`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagInputDir, "input-dir", "", "Directory with dayN.txt inputs")
	rootCmd.PersistentFlags().IntVar(&flagWorkers, "workers", 0, "Parallel workers (0 = one per CPU)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(benchCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(boardCmd)
}

// setup loads the config, applies flag overrides and builds the logger.
func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("input-dir") {
		loaded.InputDir = flagInputDir
	}
	if flags.Changed("workers") {
		loaded.Workers = flagWorkers
		if loaded.Workers == 0 {
			loaded.Workers = runtime.NumCPU()
		}
	}
	if flags.Changed("log-level") {
		loaded.LogLevel = flagLogLevel
	}
	if err := loaded.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	cfg = loaded

	level, _ := log.ParseLevel(cfg.LogLevel) // Checked by Validate
	logger = log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "advent",
		Level:  level,
	})
	logger.Debug("config loaded", "input_dir", cfg.InputDir, "workers", cfg.Workers)
	return nil
}

func newLoader() *input.Loader {
	return input.NewLoader(cfg.InputDir)
}

func runtimeConfig() core.RuntimeConfig {
	return core.RuntimeConfig{Workers: cfg.Workers}
}

func newRunner() *runner.Runner {
	return runner.New(newLoader(), runtimeConfig(), logger)
}

func parseDay(arg string) (int, error) {
	day, err := strconv.Atoi(arg)
	if err != nil || day < 1 || day > 25 {
		return 0, fmt.Errorf("day must be a number in 1..25, got %q", arg)
	}
	return day, nil
}
