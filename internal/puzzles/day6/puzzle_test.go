package day6

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/advent/internal/core"
)

const sample = `....#.....
.........#
..........
..#.......
.......#..
..........
.#..^.....
........#.
#.........
......#...
`

func TestSample(t *testing.T) {
	for _, workers := range []int{1, 4} {
		p := New(core.RuntimeConfig{Workers: workers})

		got, err := p.Part1(sample)
		if err != nil || got != 41 {
			t.Errorf("Part1 (workers=%d) = (%d, %v), expected 41", workers, got, err)
		}
		got, err = p.Part2(sample)
		if err != nil || got != 6 {
			t.Errorf("Part2 (workers=%d) = (%d, %v), expected 6", workers, got, err)
		}
	}
}

func TestNoGuard(t *testing.T) {
	p := New(core.DefaultConfig())
	input := strings.ReplaceAll(sample, "^", ".")
	if _, err := p.Part1(input); !errors.Is(err, core.ErrMalformedInput) {
		t.Errorf("Part1() error = %v, expected ErrMalformedInput", err)
	}
	if _, err := p.Part2(input); !errors.Is(err, core.ErrMalformedInput) {
		t.Errorf("Part2() error = %v, expected ErrMalformedInput", err)
	}
}

func TestTrappedGuard(t *testing.T) {
	p := New(core.DefaultConfig())
	if _, err := p.Part1(".#.\n#^#\n.#.\n"); !errors.Is(err, core.ErrWalkerTrapped) {
		t.Errorf("Part1() error = %v, expected ErrWalkerTrapped", err)
	}
}

func TestObstructionThatBoxesInCounts(t *testing.T) {
	p := New(core.RuntimeConfig{Workers: 1})
	got, err := p.Part2(".#.\n#^#\n...\n")
	if err != nil || got != 1 {
		t.Errorf("Part2() = (%d, %v), expected 1", got, err)
	}
}

func TestGuardFacingRight(t *testing.T) {
	p := New(core.DefaultConfig())
	input := "#...\n>..#\n....\n"

	if got, err := p.Part1(input); err != nil || got != 4 {
		t.Errorf("Part1() = (%d, %v), expected 4", got, err)
	}
	if got, err := p.Part2(input); err != nil || got != 0 {
		t.Errorf("Part2() = (%d, %v), expected 0", got, err)
	}
}

func TestSim(t *testing.T) {
	s, err := NewSim(sample)
	if err != nil {
		t.Fatalf("NewSim() error: %v", err)
	}
	if w, h := s.Size(); w != 10 || h != 10 {
		t.Fatalf("Size() = %dx%d, expected 10x10", w, h)
	}

	prev := s.Visited()
	for s.Step() {
		if s.Visited() < prev {
			t.Fatalf("visited count dropped from %d to %d", prev, s.Visited())
		}
		prev = s.Visited()
	}

	if !s.Done() || s.Err() != nil {
		t.Fatalf("Done() = %v, Err() = %v", s.Done(), s.Err())
	}
	if s.Visited() != 41 {
		t.Errorf("Visited() = %d, expected 41", s.Visited())
	}
	if s.Steps() < s.Visited()-1 {
		t.Errorf("Steps() = %d is fewer than the cells reached", s.Steps())
	}
	if !strings.Contains(s.Status(), "left the map") || !strings.Contains(s.Status(), "visited 41") {
		t.Errorf("Status() = %q", s.Status())
	}
	if s.Step() {
		t.Error("Step() after the end should return false")
	}
}

func TestSimRender(t *testing.T) {
	s, err := NewSim("#..\n.^.\n...\n")
	if err != nil {
		t.Fatalf("NewSim() error: %v", err)
	}
	s.Step()

	dst := core.NewScreen(5, 5)
	s.Render(dst, 1, 1)

	want := []string{
		"     ",
		" #^. ",
		" .X. ",
		" ... ",
		"     ",
	}
	for y, row := range want {
		if got := dst.Row(y); got != row {
			t.Errorf("Row(%d) = %q, expected %q", y, got, row)
		}
	}
	if c := dst.GetCell(2, 1); c.Color != core.ColorYellow {
		t.Errorf("guard color = %v, expected yellow", c.Color)
	}
}
