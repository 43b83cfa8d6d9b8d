package tui

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/advent/internal/config"
	"github.com/vovakirdan/advent/internal/core"
	"github.com/vovakirdan/advent/internal/puzzles/day6"
)

// countdown is a Stepper that makes a fixed number of moves.
type countdown struct {
	left  int
	steps int
	done  bool
}

func (c *countdown) Step() bool {
	if c.left == 0 {
		c.done = true
		return false
	}
	c.left--
	c.steps++
	return true
}

func (c *countdown) Done() bool       { return c.done }
func (c *countdown) Steps() int       { return c.steps }
func (c *countdown) Status() string   { return fmt.Sprintf("steps %d", c.steps) }
func (c *countdown) Size() (int, int) { return 3, 2 }

func (c *countdown) Render(dst *core.Screen, ox, oy int) {
	dst.DrawText(ox, oy, "abc", core.ColorGreen)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, m WatchModel, msg tea.Msg) (WatchModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	wm, ok := next.(WatchModel)
	require.True(t, ok)
	return wm, cmd
}

func TestWatchTicksUntilDone(t *testing.T) {
	sim := &countdown{left: 3}
	m := NewWatchModel("test", sim, config.WatchConfig{TickRate: 30})
	require.NotNil(t, m.Init())

	var cmd tea.Cmd
	for i := 0; i < 3; i++ {
		m, cmd = send(t, m, TickMsg{})
		assert.NotNil(t, cmd, "tick %d should schedule another", i)
	}
	assert.Equal(t, 3, sim.Steps())
	assert.False(t, m.Finished())

	m, cmd = send(t, m, TickMsg{})
	assert.Nil(t, cmd)
	assert.True(t, m.Finished())

	m, cmd = send(t, m, TickMsg{})
	assert.Nil(t, cmd)
	assert.Equal(t, 3, sim.Steps())
}

func TestWatchPauseAndStep(t *testing.T) {
	sim := &countdown{left: 5}
	m := NewWatchModel("test", sim, config.WatchConfig{TickRate: 30})

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeySpace})
	require.True(t, m.Paused())

	m, cmd := send(t, m, TickMsg{})
	assert.NotNil(t, cmd, "ticks continue while paused")
	assert.Equal(t, 0, sim.Steps())

	m, _ = send(t, m, runes("n"))
	assert.Equal(t, 1, sim.Steps())
	assert.Contains(t, m.statusLine(), "[paused]")

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeySpace})
	assert.False(t, m.Paused())
	_, _ = send(t, m, runes("n"))
	assert.Equal(t, 1, sim.Steps(), "single step only works while paused")
}

func TestWatchMaxSteps(t *testing.T) {
	sim := &countdown{left: 10}
	m := NewWatchModel("test", sim, config.WatchConfig{TickRate: 30, MaxSteps: 2})

	m, _ = send(t, m, TickMsg{})
	m, cmd := send(t, m, TickMsg{})
	assert.Nil(t, cmd)
	assert.True(t, m.Finished())
	assert.Equal(t, 2, sim.Steps())
	assert.Contains(t, m.statusLine(), "stopped at 2 steps")
}

func TestWatchSpeed(t *testing.T) {
	m := NewWatchModel("test", &countdown{}, config.WatchConfig{TickRate: 200})

	m, _ = send(t, m, runes("+"))
	assert.Equal(t, maxTickRate, m.TickRate())

	m = NewWatchModel("test", &countdown{}, config.WatchConfig{TickRate: 1})
	m, _ = send(t, m, runes("-"))
	assert.Equal(t, minTickRate, m.TickRate())

	m, _ = send(t, m, runes("+"))
	assert.Equal(t, 2, m.TickRate())
}

func TestWatchQuit(t *testing.T) {
	m := NewWatchModel("test", &countdown{left: 1}, config.WatchConfig{TickRate: 30})
	m, cmd := send(t, m, runes("q"))
	assert.NotNil(t, cmd)
	assert.Empty(t, m.View())
}

func TestWatchFinishedSimDoesNotTick(t *testing.T) {
	sim := &countdown{done: true}
	m := NewWatchModel("test", sim, config.WatchConfig{TickRate: 30})
	assert.True(t, m.Finished())
	assert.Nil(t, m.Init())
}

func TestWatchPatrol(t *testing.T) {
	const patrol = "....#.....\n" +
		".........#\n" +
		"..........\n" +
		"..#.......\n" +
		".......#..\n" +
		"..........\n" +
		".#..^.....\n" +
		"........#.\n" +
		"#.........\n" +
		"......#...\n"

	sim, err := day6.NewSim(patrol)
	require.NoError(t, err)
	m := NewWatchModel("Guard Gallivant", sim, config.WatchConfig{TickRate: 60})

	for i := 0; i < 1000 && !m.Finished(); i++ {
		m, _ = send(t, m, TickMsg{})
	}
	require.True(t, m.Finished())
	assert.Equal(t, 41, sim.Visited())

	view := ansi.Strip(m.View())
	assert.Contains(t, view, "Guard Gallivant")
	assert.Contains(t, view, "visited 41")
	assert.Contains(t, view, "left the map")
}

func TestWatchResize(t *testing.T) {
	m := NewWatchModel("test", &countdown{left: 1}, config.WatchConfig{TickRate: 30})
	require.Equal(t, minScreenWidth, m.screen.Width())
	require.Equal(t, 6, m.screen.Height())

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 80, Height: 40})
	assert.Equal(t, 80, m.screen.Width())
	assert.Equal(t, 6, m.screen.Height(), "height follows the map")

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 2, Height: 40})
	assert.Equal(t, 5, m.screen.Width(), "never narrower than the boxed map")
}

func TestWatchViewLayout(t *testing.T) {
	m := NewWatchModel("Title", &countdown{left: 5}, config.WatchConfig{TickRate: 30})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m.View()

	assert.Equal(t, "Title", strings.TrimRight(m.screen.Row(0), " "))
	assert.Equal(t, "┌───┐", strings.TrimRight(m.screen.Row(1), " "))
	assert.Equal(t, "│abc│", strings.TrimRight(m.screen.Row(2), " "))
	assert.Equal(t, "└───┘", strings.TrimRight(m.screen.Row(4), " "))
	assert.Equal(t, "steps 0  30/s  [paused]", strings.TrimRight(m.screen.Row(5), " "))

	assert.Equal(t, core.ColorBrightWhite, m.screen.GetCell(0, 0).Color)
	assert.Equal(t, core.ColorGray, m.screen.GetCell(0, 5).Color)
	assert.Equal(t, core.ColorOrange, m.screen.GetCell(len("steps 0  30/s  "), 5).Color)
}
