package core

import (
	"errors"
	"fmt"
	"sort"
)

// Glyphs used by patrol maps.
const (
	ObstacleGlyph = '#'
	GuardGlyphs   = "^>v<"
)

// Step is one move emitted by a walker: the byte it stepped onto and where.
type Step struct {
	Cell  byte
	Index int
}

// WalkerState is the part of a walker that determines its future path.
type WalkerState struct {
	Position int
	Facing   Direction
}

// Walker walks a grid in a straight line, turning clockwise whenever the
// next cell is an obstacle, until it steps off the grid.
type Walker struct {
	grid        *Grid
	state       WalkerState
	obstruction int // Extra blocked index, -1 when unused
	visited     map[int]struct{}
	done        bool
}

// NewWalker places a walker at start facing the given direction.
// The start cell counts as visited.
func NewWalker(g *Grid, start int, facing Direction) *Walker {
	return &Walker{
		grid:        g,
		state:       WalkerState{Position: start, Facing: facing},
		obstruction: -1,
		visited:     map[int]struct{}{start: {}},
	}
}

// SpawnWalker places a walker on the first guard glyph in g (^, >, v or <),
// facing the way the glyph points.
func SpawnWalker(g *Grid) (*Walker, error) {
	start, ok := g.Find(GuardGlyphs)
	if !ok {
		return nil, fmt.Errorf("%w: no guard on the map", ErrMalformedInput)
	}
	facing, _ := HeadingFor(g.data[start])
	return NewWalker(g, start, facing), nil
}

// WithObstruction treats index i as an obstacle in addition to the map's own.
func (w *Walker) WithObstruction(i int) *Walker {
	w.obstruction = i
	return w
}

// Progress attempts one move. It returns false once the walker has left the
// grid. When every heading is blocked it fails with ErrWalkerTrapped instead
// of turning forever.
func (w *Walker) Progress() (Step, bool, error) {
	if w.done {
		return Step{}, false, nil
	}

	for range Orthogonal {
		next, ok := Advance(w.state.Position, w.state.Facing.Delta(w.grid.stride))
		if !ok {
			w.done = true
			return Step{}, false, nil
		}
		if !w.grid.IsCell(next) {
			w.done = true
			return Step{}, false, nil
		}
		b := w.grid.data[next]
		if b == ObstacleGlyph || next == w.obstruction {
			w.state.Facing = w.state.Facing.Clockwise()
			continue
		}

		w.state.Position = next
		w.visited[next] = struct{}{}
		return Step{Cell: b, Index: next}, true, nil
	}

	w.done = true
	x, y := w.grid.Coord(w.state.Position)
	return Step{}, false, fmt.Errorf("%w at (%d, %d)", ErrWalkerTrapped, x, y)
}

// Run walks until the walker leaves the grid and returns the number of
// distinct cells visited.
func (w *Walker) Run() (int, error) {
	for {
		_, ok, err := w.Progress()
		if err != nil {
			return 0, err
		}
		if !ok {
			return w.Visited(), nil
		}
	}
}

// Loops walks until the walker either leaves the grid or repeats a state.
// A repeated state means the walk never ends, and so does being trapped.
func (w *Walker) Loops() (bool, error) {
	seen := map[WalkerState]struct{}{w.state: {}}
	for {
		_, ok, err := w.Progress()
		if errors.Is(err, ErrWalkerTrapped) {
			return true, nil
		}
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
		if _, dup := seen[w.state]; dup {
			return true, nil
		}
		seen[w.state] = struct{}{}
	}
}

// State returns the walker's position and facing.
func (w *Walker) State() WalkerState {
	return w.state
}

// Done reports whether the walker has left the grid or got stuck.
func (w *Walker) Done() bool {
	return w.done
}

// Visited returns the number of distinct cells visited so far.
func (w *Walker) Visited() int {
	return len(w.visited)
}

// HasVisited reports whether the walker has stood on index i.
func (w *Walker) HasVisited(i int) bool {
	_, ok := w.visited[i]
	return ok
}

// VisitedCells returns the visited indexes in ascending order.
func (w *Walker) VisitedCells() []int {
	cells := make([]int, 0, len(w.visited))
	for i := range w.visited {
		cells = append(cells, i)
	}
	sort.Ints(cells)
	return cells
}

// Patrol walks the guard off the map and returns the distinct cell count.
func Patrol(g *Grid) (int, error) {
	w, err := SpawnWalker(g)
	if err != nil {
		return 0, err
	}
	return w.Run()
}
