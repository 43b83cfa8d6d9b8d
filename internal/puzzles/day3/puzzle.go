// Package day3 recovers multiplication instructions from corrupted memory.
package day3

import (
	"regexp"

	"github.com/vovakirdan/advent/internal/core"
	"github.com/vovakirdan/advent/internal/puzzles/parse"
	"github.com/vovakirdan/advent/internal/registry"
)

// instructionRx matches mul(X,Y) with 1-3 digit operands and the do()/don't()
// toggles. Anything else, including whitespace inside the parentheses, is noise.
var instructionRx = regexp.MustCompile(`mul\((\d{1,3}),(\d{1,3})\)|do\(\)|don't\(\)`)

// Puzzle solves day 3.
type Puzzle struct{}

// New creates the day 3 puzzle.
func New(core.RuntimeConfig) *Puzzle {
	return &Puzzle{}
}

func init() {
	registry.Register(3, func(cfg core.RuntimeConfig) registry.Puzzle {
		return New(cfg)
	})
}

// Day returns 3.
func (p *Puzzle) Day() int { return 3 }

// Title returns the puzzle name.
func (p *Puzzle) Title() string { return "Mull It Over" }

// Part1 adds up every valid multiplication.
func (p *Puzzle) Part1(input string) (int, error) {
	return Run(input, false)
}

// Part2 adds up the multiplications that are enabled at the point they occur.
func (p *Puzzle) Part2(input string) (int, error) {
	return Run(input, true)
}

// Run executes the instructions found in memory. When toggles is false,
// do() and don't() are ignored and every mul counts.
func Run(memory string, toggles bool) (int, error) {
	enabled := true
	sum := 0
	for _, m := range instructionRx.FindAllStringSubmatch(memory, -1) {
		switch m[0] {
		case "do()":
			enabled = true
		case "don't()":
			enabled = false
		default:
			if toggles && !enabled {
				continue
			}
			x, err := parse.Int(m[1])
			if err != nil {
				return 0, err
			}
			y, err := parse.Int(m[2])
			if err != nil {
				return 0, err
			}
			sum += x * y
		}
	}
	return sum, nil
}
