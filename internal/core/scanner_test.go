package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestScannerTake(t *testing.T) {
	g := mustGrid("ab\ncd\n")

	tests := []struct {
		name  string
		start int
		dir   Direction
		n     int
		want  string
	}{
		{"right runs through terminators", 0, DirRight, 10, "ab\ncd\n"},
		{"left stops after underflow", 0, DirLeft, 10, "a"},
		{"up yields last in-bounds byte", 4, DirUp, 10, "db"},
		{"down stops past the end", 1, DirDown, 10, "bd"},
		{"take caps the length", 0, DirRight, 2, "ab"},
		{"take zero", 0, DirRight, 0, ""},
		{"start past the end", 6, DirLeft, 3, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := string(g.Scan(tc.start, tc.dir).Take(tc.n))
			if got != tc.want {
				t.Errorf("Take(%d) = %q, expected %q", tc.n, got, tc.want)
			}
		})
	}
}

func TestScannerIsNotRestartable(t *testing.T) {
	g := mustGrid("ab\ncd\n")
	s := g.Scan(4, DirUp)

	if got := string(s.Take(10)); got != "db" {
		t.Fatalf("first Take() = %q, expected %q", got, "db")
	}
	for range 3 {
		if b, ok := s.Next(); ok {
			t.Errorf("Next() after the end = %q, expected no value", b)
		}
	}
	if !s.cursor.Overflowed {
		t.Error("cursor should be marked overflowed")
	}
}

// referenceRay walks the ray from start with plain index arithmetic,
// stopping at the first index outside the buffer.
func referenceRay(g *Grid, start int, d Direction) []byte {
	var out []byte
	for i := start; i >= 0 && i < len(g.data); i += d.Delta(g.Stride()) {
		out = append(out, g.data[i])
	}
	return out
}

func TestScannerYieldsOnlyInBoundsBytes(t *testing.T) {
	for _, text := range []string{wordSearchSample, patrolSample, "abc\ndef\n"} {
		g := mustGrid(text)
		for start := 0; start < len(g.data); start++ {
			for _, d := range AllDirections {
				ray := referenceRay(g, start, d)
				for _, n := range []int{1, 4, 100} {
					got := g.Scan(start, d).Take(n)
					want := ray[:min(len(ray), n)]
					if diff := cmp.Diff(want, got); diff != "" {
						t.Fatalf("Scan(%d, %v).Take(%d) mismatch (-want +got):\n%s", start, d, n, diff)
					}
				}
			}
		}
	}
}

func TestCursorAdvance(t *testing.T) {
	c := NewCursor(5, -3)

	c = c.Advance()
	if c.Index != 2 || c.Overflowed {
		t.Fatalf("after one step = %+v, expected index 2", c)
	}

	c = c.Advance()
	if c.Index != 2 || !c.Overflowed {
		t.Errorf("underflowing step = %+v, expected index kept and overflowed", c)
	}
}
