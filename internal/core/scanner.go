package core

// Cursor is the position of a directional scan: where it is, how far each
// step moves, and whether the next step already fell off the front of the
// buffer.
type Cursor struct {
	Index      int
	Step       int
	Overflowed bool
}

// NewCursor starts a cursor at index moving by step.
func NewCursor(index, step int) Cursor {
	return Cursor{Index: index, Step: step}
}

// Advance returns the cursor moved one step. An underflowing move keeps the
// index and marks the cursor overflowed.
func (c Cursor) Advance() Cursor {
	next, ok := Advance(c.Index, c.Step)
	if !ok {
		c.Overflowed = true
		return c
	}
	c.Index = next
	return c
}

// Scanner yields grid bytes along a single direction.
// A scanner is consumed by reading; build a new one to scan again.
type Scanner struct {
	grid   *Grid
	cursor Cursor
	done   bool
}

// Scan starts a scanner at start moving in direction d.
func (g *Grid) Scan(start int, d Direction) *Scanner {
	return &Scanner{
		grid:   g,
		cursor: NewCursor(start, d.Delta(g.stride)),
	}
}

// Next returns the byte under the cursor and moves on.
// Once the cursor has overflowed, or the read lands past the end of the
// buffer, the scan is over and Next keeps returning false.
func (s *Scanner) Next() (byte, bool) {
	if s.done || s.cursor.Overflowed {
		s.done = true
		return 0, false
	}
	b, ok := s.grid.At(s.cursor.Index)
	if !ok {
		s.done = true
		return 0, false
	}
	s.cursor = s.cursor.Advance()
	return b, true
}

// Take reads at most n bytes.
func (s *Scanner) Take(n int) []byte {
	out := make([]byte, 0, n)
	for len(out) < n {
		b, ok := s.Next()
		if !ok {
			break
		}
		out = append(out, b)
	}
	return out
}
