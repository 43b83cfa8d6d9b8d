// Package runner ties puzzles to their input files: it loads a day's
// input, solves the requested parts and times them.
package runner

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/advent/internal/core"
	"github.com/vovakirdan/advent/internal/input"
	"github.com/vovakirdan/advent/internal/registry"
)

// PartResult is the outcome of solving one part.
type PartResult struct {
	Part    int
	Answer  int
	Elapsed time.Duration
	Err     error
}

// Result collects the parts solved for one day.
type Result struct {
	Day   int
	Title string
	Parts []PartResult
}

// Part returns the result for part n, if it was solved.
func (r Result) Part(n int) (PartResult, bool) {
	for _, p := range r.Parts {
		if p.Part == n {
			return p, true
		}
	}
	return PartResult{}, false
}

// Failed reports whether any part returned an error.
func (r Result) Failed() bool {
	for _, p := range r.Parts {
		if p.Err != nil {
			return true
		}
	}
	return false
}

// Runner solves registered puzzles against inputs on disk.
type Runner struct {
	loader *input.Loader
	config core.RuntimeConfig
	logger *log.Logger
}

// New creates a runner. A nil logger discards output.
func New(loader *input.Loader, cfg core.RuntimeConfig, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Runner{loader: loader, config: cfg, logger: logger}
}

// Solve runs the given parts of a day (both when parts is empty).
// Errors from individual parts are recorded in the result; only a missing
// puzzle or input fails the call.
func (r *Runner) Solve(day int, parts ...int) (Result, error) {
	p, err := registry.Create(day, r.config)
	if err != nil {
		return Result{}, err
	}
	text, err := r.loader.Load(day)
	if err != nil {
		return Result{}, err
	}
	return r.SolveText(p, text, parts...), nil
}

// SolveText runs parts of an already created puzzle on the given text.
func (r *Runner) SolveText(p registry.Puzzle, text string, parts ...int) Result {
	if len(parts) == 0 {
		parts = []int{1, 2}
	}

	res := Result{Day: p.Day(), Title: p.Title()}
	for _, part := range parts {
		start := time.Now()
		answer, err := registry.Solve(p, part, text)
		elapsed := time.Since(start)

		if err != nil {
			r.logger.Error("solve failed", "day", p.Day(), "part", part, "err", err)
		} else {
			r.logger.Debug("solved", "day", p.Day(), "part", part, "answer", answer, "elapsed", elapsed)
		}
		res.Parts = append(res.Parts, PartResult{
			Part:    part,
			Answer:  answer,
			Elapsed: elapsed,
			Err:     err,
		})
	}
	return res
}

// SolveAll runs both parts of every registered day that has an input file.
func (r *Runner) SolveAll() []Result {
	var days []int
	for _, info := range registry.List() {
		days = append(days, info.Day)
	}

	available := r.loader.Available(days)
	if len(available) < len(days) {
		r.logger.Warn("some inputs are missing", "registered", len(days), "found", len(available), "dir", r.loader.Root)
	}

	results := make([]Result, 0, len(available))
	for _, day := range available {
		res, err := r.Solve(day)
		if err != nil {
			r.logger.Error("skipping day", "day", day, "err", err)
			continue
		}
		results = append(results, res)
	}
	return results
}

// BenchResult summarises repeated runs of one part.
type BenchResult struct {
	Day        int
	Part       int
	Iterations int
	Total      time.Duration
	Fastest    time.Duration
}

// Mean returns the average time per iteration.
func (b BenchResult) Mean() time.Duration {
	if b.Iterations == 0 {
		return 0
	}
	return b.Total / time.Duration(b.Iterations)
}

// Bench solves one part repeatedly and reports timings. The first error
// stops the run.
func (r *Runner) Bench(day, part, iterations int) (BenchResult, error) {
	if iterations <= 0 {
		return BenchResult{}, fmt.Errorf("iterations must be > 0, got %d", iterations)
	}
	p, err := registry.Create(day, r.config)
	if err != nil {
		return BenchResult{}, err
	}
	text, err := r.loader.Load(day)
	if err != nil {
		return BenchResult{}, err
	}

	res := BenchResult{Day: day, Part: part}
	for i := 0; i < iterations; i++ {
		start := time.Now()
		if _, err := registry.Solve(p, part, text); err != nil {
			return BenchResult{}, fmt.Errorf("day %d part %d iteration %d: %w", day, part, i+1, err)
		}
		elapsed := time.Since(start)

		res.Iterations++
		res.Total += elapsed
		if res.Fastest == 0 || elapsed < res.Fastest {
			res.Fastest = elapsed
		}
	}
	r.logger.Debug("bench finished", "day", day, "part", part, "iterations", iterations, "mean", res.Mean())
	return res, nil
}
