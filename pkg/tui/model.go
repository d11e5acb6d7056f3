// Package tui is an interactive terminal front end: four card inputs and a
// live, scrollable list of solutions.
package tui

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wildfunctions/solve24/pkg/engine"
	"github.com/wildfunctions/solve24/pkg/expr"
	"github.com/wildfunctions/solve24/pkg/input"
	"github.com/wildfunctions/solve24/pkg/pool"
)

// Labels names the inputs in card order.
var Labels = [...]string{"top", "right", "bottom", "left"}

var defaultCard = [...]string{"1", "3", "4", "6"}

// headerHeight is the number of lines above the viewport.
const headerHeight = 9

// Model is the bubbletea model.
type Model struct {
	engine   *engine.Engine
	notation expr.Notation
	rng      *rand.Rand

	inputs   []textinput.Model
	focus    int
	viewport viewport.Model
	report   engine.Report
	err      error

	width  int
	height int
	styles Styles
}

// New creates a model showing the default card, already solved.
func New(e *engine.Engine, rng *rand.Rand) Model {
	notation, _ := expr.ParseNotation(e.Config().Notation)
	m := Model{
		engine:   e,
		notation: notation,
		rng:      rng,
		inputs:   make([]textinput.Model, len(Labels)),
		viewport: viewport.New(80, 20),
		styles:   DefaultStyles(),
	}
	for i := range m.inputs {
		ti := textinput.New()
		ti.CharLimit = 8
		ti.Width = 8
		ti.Prompt = ""
		ti.SetValue(defaultCard[i])
		m.inputs[i] = ti
	}
	m.inputs[0].Focus()
	m.solve()
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Numbers returns the parsed card values in input order.
func (m Model) Numbers() []float64 {
	nums := make([]float64, len(m.inputs))
	for i, ti := range m.inputs {
		nums[i] = input.ParseValue(ti.Value())
	}
	return nums
}

// Report returns the latest search result.
func (m Model) Report() engine.Report {
	return m.report
}

// Focus returns the index of the focused input.
func (m Model) Focus() int {
	return m.focus
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-headerHeight-1, 1)
		return m, nil

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "down":
			return m, m.setFocus((m.focus + 1) % len(m.inputs))
		case "shift+tab", "up":
			return m, m.setFocus((m.focus + len(m.inputs) - 1) % len(m.inputs))
		case "ctrl+r":
			m.deal()
			return m, nil
		case "pgup", "pgdown":
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}

	before := m.inputs[m.focus].Value()
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	cmds = append(cmds, cmd)
	if m.inputs[m.focus].Value() != before {
		m.solve()
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) setFocus(i int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = i
	return m.inputs[m.focus].Focus()
}

// deal replaces the card with random face values.
func (m *Model) deal() {
	for i, v := range pool.Deal(m.rng, len(m.inputs)) {
		m.inputs[i].SetValue(expr.FormatValue(v))
	}
	m.solve()
}

func (m *Model) solve() {
	c := m.engine.Card(m.Numbers())
	m.report, m.err = m.engine.Run(context.Background(), c)
	m.viewport.SetContent(m.renderResults())
	m.viewport.GotoTop()
}

func (m Model) renderResults() string {
	if m.err != nil {
		return m.styles.Empty.Render("Error: " + m.err.Error())
	}
	if m.report.Count == 0 {
		return m.styles.Empty.Render("No solutions.")
	}
	var sb strings.Builder
	for _, s := range m.report.Solutions {
		line := fmt.Sprintf("%d. %s = %s", s.Index, s.Render(m.notation), expr.FormatValue(s.Value))
		sb.WriteString(m.styles.Solution.Render(line))
		sb.WriteByte('\n')
		for _, step := range s.Steps {
			sb.WriteString(m.styles.Step.Render(step))
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func (m Model) renderInputs() string {
	rows := make([]string, len(m.inputs))
	for i, ti := range m.inputs {
		label := m.styles.Label
		if i == m.focus {
			label = m.styles.Focused
		}
		rows[i] = lipgloss.JoinHorizontal(lipgloss.Top, label.Render(Labels[i]), ti.View())
	}
	return m.styles.Card.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// View renders the model.
func (m Model) View() string {
	title := m.styles.Title.Render(fmt.Sprintf("solve %s", expr.FormatValue(m.engine.Config().Target)))

	summary := fmt.Sprintf("%d solutions", m.report.Count)
	if m.report.Count == 1 {
		summary = "1 solution"
	}
	if m.report.Truncated {
		summary += " (limit reached)"
	}

	footer := m.styles.Footer.Render("tab: next  ctrl+r: deal  pgup/pgdn: scroll  esc: quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		m.renderInputs(),
		summary,
		m.viewport.View(),
		footer,
	)
}

// Run starts the program on the alternate screen.
func Run(e *engine.Engine, rng *rand.Rand) error {
	p := tea.NewProgram(New(e, rng), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
