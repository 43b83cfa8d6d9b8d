package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/advent/internal/config"
	"github.com/vovakirdan/advent/internal/core"
)

const (
	minTickRate = 1
	maxTickRate = 240

	minScreenWidth = 64 // Room for the status line under small maps
)

// Stepper is a simulation that advances one move per tick and draws itself
// onto a screen.
type Stepper interface {
	Step() bool
	Done() bool
	Steps() int
	Status() string
	Size() (w, h int)
	Render(dst *core.Screen, ox, oy int)
}

// WatchModel is the Bubble Tea model that animates a Stepper.
type WatchModel struct {
	title    string
	sim      Stepper
	screen   *core.Screen
	keys     WatchKeyMap
	help     help.Model
	tickRate int
	maxSteps int
	paused   bool
	finished bool
	capped   bool // Stopped by maxSteps rather than by the simulation
	quitting bool
}

// NewWatchModel creates a watcher for sim using the tick rate and step cap
// from cfg.
func NewWatchModel(title string, sim Stepper, cfg config.WatchConfig) WatchModel {
	w, h := sim.Size()
	rate := core.Clamp(cfg.TickRate, minTickRate, maxTickRate)

	return WatchModel{
		title:    title,
		sim:      sim,
		screen:   core.NewScreen(max(w+2, minScreenWidth), h+4),
		keys:     DefaultWatchKeyMap(),
		help:     help.New(),
		tickRate: rate,
		maxSteps: cfg.MaxSteps,
		finished: sim.Done(),
	}
}

// Init starts the tick loop.
func (m WatchModel) Init() tea.Cmd {
	if m.finished {
		return nil
	}
	return tickCmd(m.tickRate)
}

// Update handles messages and advances the simulation on ticks.
func (m WatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		w, h := m.sim.Size()
		m.screen.Resize(max(w+2, msg.Width), h+4)
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m WatchModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Pause):
		m.paused = !m.paused

	case key.Matches(msg, m.keys.Step):
		if m.paused && !m.finished {
			m.advance()
		}

	case key.Matches(msg, m.keys.Faster):
		m.tickRate = core.Clamp(m.tickRate*2, minTickRate, maxTickRate)

	case key.Matches(msg, m.keys.Slower):
		m.tickRate = core.Clamp(m.tickRate/2, minTickRate, maxTickRate)

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// handleTick keeps ticking while paused so resuming needs no new loop.
// The loop ends for good once the simulation finishes.
func (m WatchModel) handleTick() (tea.Model, tea.Cmd) {
	if m.finished {
		return m, nil
	}
	if !m.paused {
		m.advance()
	}
	if m.finished {
		return m, nil
	}
	return m, tickCmd(m.tickRate)
}

func (m *WatchModel) advance() {
	if !m.sim.Step() {
		m.finished = true
		return
	}
	if m.maxSteps > 0 && m.sim.Steps() >= m.maxSteps {
		m.finished = true
		m.capped = true
	}
}

// Paused reports whether the animation is paused.
func (m WatchModel) Paused() bool { return m.paused }

// Finished reports whether the animation has stopped advancing.
func (m WatchModel) Finished() bool { return m.finished }

// TickRate returns the current ticks per second.
func (m WatchModel) TickRate() int { return m.tickRate }

// View draws the title, the boxed map and the status line onto the screen
// buffer, with key help below it.
func (m WatchModel) View() string {
	if m.quitting {
		return ""
	}

	w, h := m.sim.Size()
	frame := core.NewRect(0, 1, w+2, h+2)
	inner := frame.Inner()

	m.screen.Clear()
	m.screen.DrawText(0, 0, m.title, core.ColorBrightWhite)
	m.screen.DrawBox(frame, core.ColorBlue)
	m.sim.Render(m.screen, inner.X, inner.Y)

	status, marker := m.statusParts()
	m.screen.DrawText(0, frame.Bottom(), status, core.ColorGray)
	if marker != "" {
		m.screen.DrawText(utf8.RuneCountInString(status)+2, frame.Bottom(), marker, core.ColorOrange)
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// statusParts returns the simulation status with the tick rate, and a
// marker for a paused or capped animation.
func (m WatchModel) statusParts() (status, marker string) {
	status = fmt.Sprintf("%s  %d/s", m.sim.Status(), m.tickRate)
	switch {
	case m.capped:
		marker = fmt.Sprintf("(stopped at %d steps)", m.maxSteps)
	case m.paused:
		marker = "[paused]"
	}
	return status, marker
}

func (m WatchModel) statusLine() string {
	status, marker := m.statusParts()
	if marker == "" {
		return status
	}
	return status + "  " + marker
}

// RunWatch animates sim in the alternate screen until the user quits.
func RunWatch(title string, sim Stepper, cfg config.WatchConfig) error {
	p := tea.NewProgram(
		NewWatchModel(title, sim, cfg),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
