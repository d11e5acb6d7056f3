package tui

import (
	"math/rand"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wildfunctions/solve24/pkg/engine"
	"github.com/wildfunctions/solve24/pkg/pool"
)

func newModel(t *testing.T) Model {
	t.Helper()
	cfg := engine.DefaultConfig()
	cfg.Workers = 1
	e, err := engine.New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	return New(e, rand.New(rand.NewSource(1)))
}

func update(m Model, msg tea.Msg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func TestModel_DefaultCardIsSolved(t *testing.T) {
	m := newModel(t)

	if got := m.Numbers(); len(got) != 4 || got[0] != 1 || got[3] != 6 {
		t.Fatalf("Expected default card 1 3 4 6, got %v", got)
	}
	if m.Report().Count != 1 {
		t.Fatalf("Expected one solution, got %d", m.Report().Count)
	}
	view := m.View()
	for _, want := range []string{"1. (6/(1-(3/4))) = 24", "3 / 4 = 0.75", "1 solution", "top", "left"} {
		if !strings.Contains(view, want) {
			t.Errorf("Expected %q in view:\n%s", want, view)
		}
	}
}

func TestModel_FocusCycles(t *testing.T) {
	m := newModel(t)

	m, _ = update(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.Focus() != 1 {
		t.Errorf("Expected focus 1 after Tab, got %d", m.Focus())
	}
	for range 3 {
		m, _ = update(m, tea.KeyMsg{Type: tea.KeyTab})
	}
	if m.Focus() != 0 {
		t.Errorf("Expected focus to wrap to 0, got %d", m.Focus())
	}
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.Focus() != 3 {
		t.Errorf("Expected focus 3 after Shift+Tab, got %d", m.Focus())
	}
}

func TestModel_EditingResolves(t *testing.T) {
	m := newModel(t)

	m, _ = update(m, tea.KeyMsg{Type: tea.KeyBackspace})
	if got := m.Report().Numbers[0]; got != 0 {
		t.Errorf("Expected empty input to count as 0, got %v", got)
	}

	m, _ = update(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'1'}})
	if m.Report().Count != 1 || m.Report().Solutions[0].Infix != "(6/(1-(3/4)))" {
		t.Errorf("Expected the original solution back, got %+v", m.Report())
	}
}

func TestModel_NoSolutions(t *testing.T) {
	m := newModel(t)
	for i := range m.inputs {
		m.inputs[i].SetValue("1")
	}
	m.solve()

	if m.Report().Count != 0 {
		t.Fatalf("Expected no solutions, got %d", m.Report().Count)
	}
	if !strings.Contains(m.View(), "No solutions.") {
		t.Errorf("Expected No solutions. in view:\n%s", m.View())
	}
}

func TestModel_Deal(t *testing.T) {
	m := newModel(t)
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyCtrlR})

	nums := m.Numbers()
	for _, v := range nums {
		if v < pool.MinCard || v > pool.MaxCard {
			t.Errorf("Dealt value %v out of range", v)
		}
	}
	report := m.Report().Numbers
	for i := range nums {
		if report[i] != nums[i] {
			t.Fatalf("Report %v does not match dealt card %v", report, nums)
		}
	}
}

func TestModel_Quit(t *testing.T) {
	for _, key := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		m := newModel(t)
		_, cmd := update(m, tea.KeyMsg{Type: key})
		if cmd == nil {
			t.Fatalf("Expected quit command for %v", key)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("Expected QuitMsg for %v", key)
		}
	}
}

func TestModel_WindowSize(t *testing.T) {
	m := newModel(t)
	m, _ = update(m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if m.viewport.Width != 100 || m.viewport.Height != 40-headerHeight-1 {
		t.Errorf("Unexpected viewport size %dx%d", m.viewport.Width, m.viewport.Height)
	}

	m, _ = update(m, tea.WindowSizeMsg{Width: 10, Height: 2})
	if m.viewport.Height != 1 {
		t.Errorf("Expected viewport height clamped to 1, got %d", m.viewport.Height)
	}
}
