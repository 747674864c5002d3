package viz

import (
	"math"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func press(m Explorer, keys ...string) Explorer {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "left":
			msg = tea.KeyMsg{Type: tea.KeyLeft}
		case "right":
			msg = tea.KeyMsg{Type: tea.KeyRight}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(Explorer)
	}
	return m
}

func TestExplorerAdjust(t *testing.T) {
	m := NewExplorer(9.5, 2.0, 1.4)

	m = press(m, "right", "right")
	if m.CompressionRatio() != 10.5 {
		t.Errorf("expected compression ratio 10.5, got %f", m.CompressionRatio())
	}

	m = press(m, "down", "left")
	if math.Abs(m.CutoffRatio()-1.9) > 1e-9 {
		t.Errorf("expected cutoff 1.9, got %f", m.CutoffRatio())
	}

	m = press(m, "up", "up", "right")
	if math.Abs(m.Gamma()-1.41) > 1e-9 {
		t.Errorf("expected gamma 1.41 after wrapping to last param, got %f", m.Gamma())
	}
}

func TestExplorerClamps(t *testing.T) {
	m := NewExplorer(1.5, 2.0, 1.4)
	m = press(m, "left", "left", "left")
	if m.CompressionRatio() != 1 {
		t.Errorf("expected clamp at 1, got %f", m.CompressionRatio())
	}
}

func TestExplorerReset(t *testing.T) {
	m := NewExplorer(9.5, 2.0, 1.4)
	m = press(m, "right", "down", "right", "r")

	if m.CompressionRatio() != 9.5 || m.CutoffRatio() != 2.0 {
		t.Errorf("expected reset values, got r=%f rc=%f", m.CompressionRatio(), m.CutoffRatio())
	}
}

func TestExplorerUpdateDoesNotMutatePrevious(t *testing.T) {
	before := NewExplorer(9.5, 2.0, 1.4)
	_ = press(before, "right")

	if before.CompressionRatio() != 9.5 {
		t.Errorf("previous model mutated: %f", before.CompressionRatio())
	}
}

func TestExplorerView(t *testing.T) {
	m := NewExplorer(9.5, 2.0, 1.4)
	view := m.View()

	for _, want := range []string{"compression ratio", "otto efficiency", "59.36%", "diesel efficiency"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestExplorerViewShowsDomainError(t *testing.T) {
	m := NewExplorer(9.5, 1.1, 1.4)
	m = press(m, "down", "left")

	view := m.View()
	if !strings.Contains(view, "cutoff_ratio") {
		t.Error("expected domain error for cutoff ratio of 1 in view")
	}
	if !strings.Contains(view, "otto efficiency") {
		t.Error("otto efficiency should still render")
	}
}

func TestExplorerQuit(t *testing.T) {
	m := NewExplorer(9.5, 2.0, 1.4)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if next.(Explorer).View() != "" {
		t.Error("expected empty view after quit")
	}
}
