// Package registry provides a global registry of puzzle factories.
// Puzzles register themselves in init() functions, allowing the CLI to
// discover and run them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/advent/internal/core"
)

// Puzzle is the interface every day's solver implements.
// Parts are pure functions of the raw input text.
type Puzzle interface {
	// Day returns the calendar day this puzzle belongs to (1-25).
	Day() int

	// Title returns a human-readable name for display.
	Title() string

	// Part1 solves the first half of the puzzle.
	Part1(input string) (int, error)

	// Part2 solves the second half of the puzzle.
	Part2(input string) (int, error)
}

// PuzzleInfo contains metadata about a registered puzzle.
type PuzzleInfo struct {
	Day   int
	Title string
}

// Factory creates a puzzle tuned by the runtime config.
type Factory func(cfg core.RuntimeConfig) Puzzle

var (
	factories = make(map[int]Factory)
	titles    = make(map[int]string)
	mu        sync.RWMutex
)

// Register adds a puzzle factory to the registry.
// Panics if the day is out of range or already registered.
func Register(day int, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if day < 1 || day > 25 {
		panic(fmt.Sprintf("registry: day %d out of range", day))
	}
	if _, exists := factories[day]; exists {
		panic(fmt.Sprintf("registry: day %d already registered", day))
	}

	factories[day] = f
	titles[day] = f(core.DefaultConfig()).Title()
}

// List returns information about all registered puzzles, sorted by day.
func List() []PuzzleInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]PuzzleInfo, 0, len(factories))
	for day := range factories {
		result = append(result, PuzzleInfo{
			Day:   day,
			Title: titles[day],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Day < result[j].Day
	})

	return result
}

// Create instantiates the puzzle for a day.
func Create(day int, cfg core.RuntimeConfig) (Puzzle, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[day]
	if !ok {
		return nil, fmt.Errorf("registry: no puzzle for day %d", day)
	}

	return f(cfg), nil
}

// Exists checks if a puzzle is registered for the day.
func Exists(day int) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[day]
	return ok
}

// Solve runs one part of a puzzle. Part must be 1 or 2.
func Solve(p Puzzle, part int, input string) (int, error) {
	switch part {
	case 1:
		return p.Part1(input)
	case 2:
		return p.Part2(input)
	default:
		return 0, fmt.Errorf("registry: day %d has no part %d", p.Day(), part)
	}
}
