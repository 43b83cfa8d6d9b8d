package day6

import (
	"fmt"

	"github.com/vovakirdan/advent/internal/core"
)

// Sim steps a patrol one move at a time and draws it, for live viewing.
type Sim struct {
	grid   *core.Grid
	walker *core.Walker
	steps  int
	err    error
}

// NewSim prepares a patrol over the given map.
func NewSim(input string) (*Sim, error) {
	g, err := core.NewGrid(input)
	if err != nil {
		return nil, err
	}
	w, err := core.SpawnWalker(g)
	if err != nil {
		return nil, err
	}
	return &Sim{grid: g, walker: w}, nil
}

// Step advances the guard by one move. It returns false once the patrol is over.
func (s *Sim) Step() bool {
	if s.walker.Done() {
		return false
	}
	_, ok, err := s.walker.Progress()
	if err != nil {
		s.err = err
		return false
	}
	if ok {
		s.steps++
	}
	return ok
}

// Done reports whether the guard has left the map or got stuck.
func (s *Sim) Done() bool { return s.walker.Done() }

// Err returns the error that ended the patrol, if any.
func (s *Sim) Err() error { return s.err }

// Steps returns the number of moves made so far.
func (s *Sim) Steps() int { return s.steps }

// Visited returns the distinct cells visited so far.
func (s *Sim) Visited() int { return s.walker.Visited() }

// Size returns the map's width and height in cells.
func (s *Sim) Size() (w, h int) { return s.grid.Cols(), s.grid.Rows() }

// Status returns a one-line summary of the patrol.
func (s *Sim) Status() string {
	state := "patrolling"
	switch {
	case s.err != nil:
		state = s.err.Error()
	case s.walker.Done():
		state = "left the map"
	}
	x, y := s.grid.Coord(s.walker.State().Position)
	return fmt.Sprintf("steps %d  visited %d  at (%d, %d)  %s", s.steps, s.Visited(), x, y, state)
}

// Render draws the map with its top-left corner at (ox, oy).
func (s *Sim) Render(dst *core.Screen, ox, oy int) {
	st := s.walker.State()
	for y := 0; y < s.grid.Rows(); y++ {
		for x := 0; x < s.grid.Cols(); x++ {
			i := s.grid.Index(x, y)
			b, ok := s.grid.At(i)
			if !ok {
				continue
			}
			switch {
			case i == st.Position:
				dst.SetColored(ox+x, oy+y, st.Facing.Glyph(), core.ColorYellow)
			case b == core.ObstacleGlyph:
				dst.SetColored(ox+x, oy+y, '#', core.ColorRed)
			case s.walker.HasVisited(i):
				dst.SetColored(ox+x, oy+y, 'X', core.ColorCyan)
			default:
				dst.SetColored(ox+x, oy+y, '.', core.ColorGray)
			}
		}
	}
}
