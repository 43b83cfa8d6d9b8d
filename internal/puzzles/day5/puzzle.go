// Package day5 checks safety manual updates against page ordering rules.
package day5

import (
	"fmt"
	"slices"
	"strings"

	"github.com/vovakirdan/advent/internal/core"
	"github.com/vovakirdan/advent/internal/puzzles/parse"
	"github.com/vovakirdan/advent/internal/registry"
)

// Rules records which page must come before which. A pair {a, b} in the
// set means a must be printed before b.
type Rules map[[2]int]struct{}

// Before reports whether a rule puts a ahead of b.
func (r Rules) Before(a, b int) bool {
	_, ok := r[[2]int{a, b}]
	return ok
}

// Compare orders two pages by the rules. Pages with no rule between them
// compare equal.
func (r Rules) Compare(a, b int) int {
	switch {
	case r.Before(a, b):
		return -1
	case r.Before(b, a):
		return 1
	default:
		return 0
	}
}

// Ordered reports whether no rule is violated by the update. Rules that
// mention a page missing from the update do not apply.
func (r Rules) Ordered(update []int) bool {
	for i := range update {
		for j := i + 1; j < len(update); j++ {
			if r.Before(update[j], update[i]) {
				return false
			}
		}
	}
	return true
}

// Manual is the parsed puzzle input.
type Manual struct {
	Rules   Rules
	Updates [][]int
}

// Parse reads the rule block, a blank line, then one update per line.
func Parse(input string) (Manual, error) {
	head, tail := parse.Sections(input)
	m := Manual{Rules: make(Rules)}

	for _, line := range parse.Lines(head) {
		before, after, ok := strings.Cut(line, "|")
		if !ok {
			return Manual{}, fmt.Errorf("%w: rule %q has no separator", core.ErrMalformedInput, line)
		}
		a, err := parse.Int(before)
		if err != nil {
			return Manual{}, fmt.Errorf("rule %q: %w", line, err)
		}
		b, err := parse.Int(after)
		if err != nil {
			return Manual{}, fmt.Errorf("rule %q: %w", line, err)
		}
		m.Rules[[2]int{a, b}] = struct{}{}
	}

	for _, line := range parse.Lines(tail) {
		pages, err := parse.Split(line, ",")
		if err != nil {
			return Manual{}, fmt.Errorf("update %q: %w", line, err)
		}
		m.Updates = append(m.Updates, pages)
	}
	return m, nil
}

// Puzzle solves day 5.
type Puzzle struct{}

// New creates the day 5 puzzle.
func New(core.RuntimeConfig) *Puzzle {
	return &Puzzle{}
}

func init() {
	registry.Register(5, func(cfg core.RuntimeConfig) registry.Puzzle {
		return New(cfg)
	})
}

// Day returns 5.
func (p *Puzzle) Day() int { return 5 }

// Title returns the puzzle name.
func (p *Puzzle) Title() string { return "Print Queue" }

// Part1 sums the middle page of every correctly ordered update.
func (p *Puzzle) Part1(input string) (int, error) {
	m, err := Parse(input)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, u := range m.Updates {
		if m.Rules.Ordered(u) {
			total += middle(u)
		}
	}
	return total, nil
}

// Part2 puts each incorrectly ordered update in order and sums their
// middle pages.
func (p *Puzzle) Part2(input string) (int, error) {
	m, err := Parse(input)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, u := range m.Updates {
		if m.Rules.Ordered(u) {
			continue
		}
		fixed := slices.Clone(u)
		sortPages(fixed, m.Rules)
		total += middle(fixed)
	}
	return total, nil
}

// sortPages orders pages in place so every applicable rule holds. Puzzle
// inputs give a rule for every pair inside an update.
func sortPages(pages []int, r Rules) {
	slices.SortStableFunc(pages, r.Compare)
}

func middle(pages []int) int {
	if len(pages) == 0 {
		return 0
	}
	return pages[len(pages)/2]
}
