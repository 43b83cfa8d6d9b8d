// Package day4 searches a letter grid for XMAS, written in any direction,
// and for MAS crosses.
package day4

import (
	"github.com/vovakirdan/advent/internal/core"
	"github.com/vovakirdan/advent/internal/registry"
)

const (
	word   = "XMAS"
	center = 'A'
)

var crossPair = [2]byte{'M', 'S'}

// Puzzle solves day 4.
type Puzzle struct{}

// New creates the day 4 puzzle.
func New(core.RuntimeConfig) *Puzzle {
	return &Puzzle{}
}

func init() {
	registry.Register(4, func(cfg core.RuntimeConfig) registry.Puzzle {
		return New(cfg)
	})
}

// Day returns 4.
func (p *Puzzle) Day() int { return 4 }

// Title returns the puzzle name.
func (p *Puzzle) Title() string { return "Ceres Search" }

// Part1 counts XMAS in all eight directions.
func (p *Puzzle) Part1(input string) (int, error) {
	g, err := core.NewGrid(input)
	if err != nil {
		return 0, err
	}
	return core.CountWord(g, word), nil
}

// Part2 counts A cells sitting in the middle of two crossing MAS diagonals.
func (p *Puzzle) Part2(input string) (int, error) {
	g, err := core.NewGrid(input)
	if err != nil {
		return 0, err
	}
	return core.CountCross(g, center, crossPair), nil
}
