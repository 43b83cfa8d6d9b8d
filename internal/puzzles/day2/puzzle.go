// Package day2 checks reactor reports for safe level changes.
package day2

import (
	"context"
	"fmt"

	"github.com/vovakirdan/advent/internal/core"
	"github.com/vovakirdan/advent/internal/parallel"
	"github.com/vovakirdan/advent/internal/puzzles/parse"
	"github.com/vovakirdan/advent/internal/registry"
)

// Allowed step between adjacent levels.
const (
	minStep = 1
	maxStep = 3
)

// Puzzle solves day 2.
type Puzzle struct {
	workers int
}

// New creates the day 2 puzzle.
func New(cfg core.RuntimeConfig) *Puzzle {
	return &Puzzle{workers: cfg.Workers}
}

func init() {
	registry.Register(2, func(cfg core.RuntimeConfig) registry.Puzzle {
		return New(cfg)
	})
}

// Day returns 2.
func (p *Puzzle) Day() int { return 2 }

// Title returns the puzzle name.
func (p *Puzzle) Title() string { return "Red-Nosed Reports" }

// Part1 counts reports that are safe as written.
func (p *Puzzle) Part1(input string) (int, error) {
	return p.countSafe(input, Safe)
}

// Part2 counts reports that are safe once at most one level is dropped.
func (p *Puzzle) Part2(input string) (int, error) {
	return p.countSafe(input, SafeDampened)
}

func (p *Puzzle) countSafe(input string, check func([]int) bool) (int, error) {
	lines := parse.Lines(input)
	return parallel.Count(context.Background(), lines, p.workers, func(line string) (bool, error) {
		levels, err := parse.Fields(line)
		if err != nil {
			return false, fmt.Errorf("report %q: %w", line, err)
		}
		return check(levels), nil
	})
}

// Safe reports whether levels move strictly in one direction by 1 to 3 at
// every step. Reports with fewer than two levels are trivially safe.
func Safe(levels []int) bool {
	return firstUnsafe(levels) < 0
}

// SafeDampened reports whether levels are safe, or become safe after
// removing a single level.
func SafeDampened(levels []int) bool {
	bad := firstUnsafe(levels)
	if bad < 0 {
		return true
	}
	// Only the levels around the first bad step, plus the first level
	// (which fixes the direction), can be the one to drop.
	for _, skip := range []int{0, bad - 1, bad, bad + 1} {
		if skip < 0 || skip >= len(levels) {
			continue
		}
		if firstUnsafe(without(levels, skip)) < 0 {
			return true
		}
	}
	return false
}

// firstUnsafe returns the index i of the first step levels[i]->levels[i+1]
// that breaks the rules, or -1.
func firstUnsafe(levels []int) int {
	if len(levels) < 2 {
		return -1
	}
	increasing := levels[1] > levels[0]
	for i := 0; i+1 < len(levels); i++ {
		diff := levels[i+1] - levels[i]
		if !increasing {
			diff = -diff
		}
		if diff < minStep || diff > maxStep {
			return i
		}
	}
	return -1
}

func without(levels []int, skip int) []int {
	out := make([]int, 0, len(levels)-1)
	out = append(out, levels[:skip]...)
	return append(out, levels[skip+1:]...)
}
