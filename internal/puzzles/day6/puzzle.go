// Package day6 follows a guard's patrol around a lab map.
package day6

import (
	"context"

	"github.com/vovakirdan/advent/internal/core"
	"github.com/vovakirdan/advent/internal/parallel"
	"github.com/vovakirdan/advent/internal/registry"
)

// Puzzle solves day 6.
type Puzzle struct {
	workers int
}

// New creates the day 6 puzzle.
func New(cfg core.RuntimeConfig) *Puzzle {
	return &Puzzle{workers: cfg.Workers}
}

func init() {
	registry.Register(6, func(cfg core.RuntimeConfig) registry.Puzzle {
		return New(cfg)
	})
}

// Day returns 6.
func (p *Puzzle) Day() int { return 6 }

// Title returns the puzzle name.
func (p *Puzzle) Title() string { return "Guard Gallivant" }

// Part1 counts the distinct cells the guard visits before leaving the map.
func (p *Puzzle) Part1(input string) (int, error) {
	g, err := core.NewGrid(input)
	if err != nil {
		return 0, err
	}
	return core.Patrol(g)
}

// Part2 counts the cells where one extra obstruction would trap the guard
// in a loop. Only cells on the original route can change it, and the
// guard's own starting cell is off limits.
func (p *Puzzle) Part2(input string) (int, error) {
	g, err := core.NewGrid(input)
	if err != nil {
		return 0, err
	}
	w, err := core.SpawnWalker(g)
	if err != nil {
		return 0, err
	}
	start := w.State()
	if _, err := w.Run(); err != nil {
		return 0, err
	}

	candidates := w.VisitedCells()
	return parallel.Count(context.Background(), candidates, p.workers, func(cell int) (bool, error) {
		if cell == start.Position {
			return false, nil
		}
		guard := core.NewWalker(g, start.Position, start.Facing).WithObstruction(cell)
		return guard.Loops()
	})
}
