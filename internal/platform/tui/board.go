package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/advent/internal/runner"
)

const (
	titleColumnMin = 18
	titleColumnMax = 28
)

// BoardModel is the Bubble Tea model for the results board.
type BoardModel struct {
	results  []runner.Result
	table    table.Model
	help     help.Model
	keys     BoardKeyMap
	width    int
	height   int
	quitting bool
}

// NewBoardModel creates a board showing results.
func NewBoardModel(results []runner.Result, width, height int) BoardModel {
	m := BoardModel{
		results: results,
		help:    help.New(),
		keys:    DefaultBoardKeyMap(),
		width:   width,
		height:  height,
	}
	m.table = m.createTable()
	m.table.SetRows(BoardRows(results))
	return m
}

func (m *BoardModel) createTable() table.Model {
	tw := titleWidth(m.width - 50)
	columns := []table.Column{
		{Title: "Day", Width: 4},
		{Title: "Title", Width: tw},
		{Title: "Part 1", Width: 14},
		{Title: "Part 2", Width: 14},
		{Title: "Time", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

func titleWidth(w int) int {
	return min(max(w, titleColumnMin), titleColumnMax)
}

// BoardRows formats results as table rows.
func BoardRows(results []runner.Result) []table.Row {
	rows := make([]table.Row, len(results))
	for i, r := range results {
		var elapsed time.Duration
		for _, p := range r.Parts {
			elapsed += p.Elapsed
		}
		rows[i] = table.Row{
			strconv.Itoa(r.Day),
			r.Title,
			answerCell(r, 1),
			answerCell(r, 2),
			elapsed.Round(time.Microsecond).String(),
		}
	}
	return rows
}

func answerCell(r runner.Result, part int) string {
	p, ok := r.Part(part)
	switch {
	case !ok:
		return "-"
	case p.Err != nil:
		return "error"
	default:
		return strconv.Itoa(p.Answer)
	}
}

// Init initializes the board model.
func (m BoardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the board.
func (m BoardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.table.SetRows(BoardRows(m.results))
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the board.
func (m BoardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(centerText("ADVENT OF CODE 2024", m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.tableContent()))
	b.WriteString("\n")

	summaryStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	b.WriteString(summaryStyle.Render(m.summary()))
	b.WriteString("\n")

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

func (m BoardModel) tableContent() string {
	if len(m.results) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No inputs found.\nSave puzzle inputs as dayN.txt in the input directory.")
	}
	return m.table.View()
}

func (m BoardModel) summary() string {
	var total time.Duration
	failed := 0
	for _, r := range m.results {
		for _, p := range r.Parts {
			total += p.Elapsed
		}
		if r.Failed() {
			failed++
		}
	}
	s := fmt.Sprintf("%d days solved in %s", len(m.results), total.Round(time.Microsecond))
	if failed > 0 {
		s += fmt.Sprintf(", %d with errors", failed)
	}
	return s
}

// centerText centers text within the given width.
func centerText(text string, width int) string {
	textWidth := lipgloss.Width(text)
	if textWidth >= width {
		return text
	}
	padding := (width - textWidth) / 2
	return strings.Repeat(" ", padding) + text
}

// RunBoard shows results in the alternate screen until the user quits.
func RunBoard(results []runner.Result, width, height int) error {
	p := tea.NewProgram(
		NewBoardModel(results, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
