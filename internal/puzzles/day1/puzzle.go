// Package day1 compares two columns of location IDs.
package day1

import (
	"context"
	"fmt"
	"slices"

	"github.com/vovakirdan/advent/internal/core"
	"github.com/vovakirdan/advent/internal/parallel"
	"github.com/vovakirdan/advent/internal/puzzles/parse"
	"github.com/vovakirdan/advent/internal/registry"
)

// Puzzle solves day 1.
type Puzzle struct {
	workers int
}

// New creates the day 1 puzzle.
func New(cfg core.RuntimeConfig) *Puzzle {
	return &Puzzle{workers: cfg.Workers}
}

func init() {
	registry.Register(1, func(cfg core.RuntimeConfig) registry.Puzzle {
		return New(cfg)
	})
}

// Day returns 1.
func (p *Puzzle) Day() int { return 1 }

// Title returns the puzzle name.
func (p *Puzzle) Title() string { return "Historian Hysteria" }

// Part1 pairs the smallest left ID with the smallest right ID, and so on,
// and adds up the distances.
func (p *Puzzle) Part1(input string) (int, error) {
	left, right, err := columns(input)
	if err != nil {
		return 0, err
	}
	slices.Sort(left)
	slices.Sort(right)

	total := 0
	for i := range left {
		total += core.Abs(left[i] - right[i])
	}
	return total, nil
}

// Part2 adds each left ID multiplied by how often it appears on the right.
func (p *Puzzle) Part2(input string) (int, error) {
	left, right, err := columns(input)
	if err != nil {
		return 0, err
	}

	counts := make(map[int]int, len(right))
	for _, v := range right {
		counts[v]++
	}

	return parallel.Sum(context.Background(), left, p.workers, func(v int) (int, error) {
		return v * counts[v], nil
	})
}

func columns(input string) (left, right []int, err error) {
	for n, line := range parse.Lines(input) {
		pair, err := parse.Fields(line)
		if err != nil {
			return nil, nil, fmt.Errorf("line %d: %w", n+1, err)
		}
		if len(pair) != 2 {
			return nil, nil, fmt.Errorf("line %d: %w: expected 2 numbers, got %d", n+1, core.ErrMalformedInput, len(pair))
		}
		left = append(left, pair[0])
		right = append(right, pair[1])
	}
	return left, right, nil
}
