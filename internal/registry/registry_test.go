package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/advent/internal/core"
)

type stubPuzzle struct {
	day     int
	workers int
}

func (p stubPuzzle) Day() int { return p.day }

func (p stubPuzzle) Title() string { return "Stub" }

func (p stubPuzzle) Part1(input string) (int, error) { return len(input), nil }

func (p stubPuzzle) Part2(string) (int, error) { return p.workers, nil }

func stubFactory(day int) Factory {
	return func(cfg core.RuntimeConfig) Puzzle {
		return stubPuzzle{day: day, workers: cfg.Workers}
	}
}

func TestRegisterAndCreate(t *testing.T) {
	Register(24, stubFactory(24))

	require.True(t, Exists(24))
	assert.False(t, Exists(23))

	p, err := Create(24, core.RuntimeConfig{Workers: 8})
	require.NoError(t, err)
	assert.Equal(t, 24, p.Day())

	got, err := Solve(p, 1, "abcd")
	require.NoError(t, err)
	assert.Equal(t, 4, got)

	got, err = Solve(p, 2, "")
	require.NoError(t, err)
	assert.Equal(t, 8, got, "factory should receive the runtime config")

	_, err = Solve(p, 3, "")
	assert.Error(t, err)
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register(22, stubFactory(22))
	assert.Panics(t, func() { Register(22, stubFactory(22)) })
}

func TestRegisterOutOfRangePanics(t *testing.T) {
	assert.Panics(t, func() { Register(0, stubFactory(0)) })
	assert.Panics(t, func() { Register(26, stubFactory(26)) })
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create(19, core.DefaultConfig())
	assert.Error(t, err)
}

func TestListSorted(t *testing.T) {
	Register(21, stubFactory(21))
	Register(20, stubFactory(20))

	list := List()
	require.NotEmpty(t, list)
	for i := 1; i < len(list); i++ {
		assert.Less(t, list[i-1].Day, list[i].Day)
	}
	assert.Contains(t, list, PuzzleInfo{Day: 20, Title: "Stub"})
}
