package viz

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/thermolab/internal/cycle"
	"github.com/san-kum/thermolab/internal/plot"
	"github.com/san-kum/thermolab/internal/thermo"
)

const (
	paramCompression = iota
	paramCutoff
	paramGamma
)

type param struct {
	name      string
	value     float64
	step      float64
	min, max  float64
	precision int
}

func (p *param) nudge(dir float64) {
	v := p.value + dir*p.step
	v = math.Round(v/p.step) * p.step
	p.value = math.Max(p.min, math.Min(p.max, v))
}

// Explorer is the Bubble Tea model for the efficiency explorer.
type Explorer struct {
	params   []param
	initial  []param
	selected int
	width    int
	sweep    []float64
	quitting bool
}

func NewExplorer(compressionRatio, cutoffRatio, gamma float64) Explorer {
	params := []param{
		{name: "compression ratio", value: compressionRatio, step: 0.5, min: 1, max: 30, precision: 1},
		{name: "cutoff ratio", value: cutoffRatio, step: 0.1, min: 1, max: 5, precision: 2},
		{name: "gamma", value: gamma, step: 0.01, min: 1.01, max: 1.8, precision: 2},
	}
	initial := make([]param, len(params))
	copy(initial, params)

	sweep, _ := cycle.Linspace(4, 24, 60)

	return Explorer{
		params:  params,
		initial: initial,
		width:   80,
		sweep:   sweep,
	}
}

func (m Explorer) CompressionRatio() float64 { return m.params[paramCompression].value }
func (m Explorer) CutoffRatio() float64      { return m.params[paramCutoff].value }
func (m Explorer) Gamma() float64            { return m.params[paramGamma].value }

func (m Explorer) Init() tea.Cmd {
	return nil
}

func (m Explorer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "up", "k":
			m.selected = (m.selected + len(m.params) - 1) % len(m.params)
		case "down", "j":
			m.selected = (m.selected + 1) % len(m.params)
		case "left", "h":
			m.params = m.cloneParams()
			m.params[m.selected].nudge(-1)
		case "right", "l":
			m.params = m.cloneParams()
			m.params[m.selected].nudge(1)
		case "r":
			m.params = make([]param, len(m.initial))
			copy(m.params, m.initial)
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
	}
	return m, nil
}

// cloneParams keeps value semantics across Update calls.
func (m Explorer) cloneParams() []param {
	out := make([]param, len(m.params))
	copy(out, m.params)
	return out
}

func (m Explorer) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render("THERMOLAB · cycle efficiency explorer"))
	b.WriteString("\n")

	for i, p := range m.params {
		label := labelStyle.Render(p.name)
		value := fmt.Sprintf("%.*f", p.precision, p.value)
		if i == m.selected {
			b.WriteString(activeParamStyle.Render("▸ ") + label + activeParamStyle.Render(value))
		} else {
			b.WriteString("  " + label + valueStyle.Render(value))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	r, rc, gamma := m.CompressionRatio(), m.CutoffRatio(), m.Gamma()
	b.WriteString(m.efficiencyLine("otto efficiency", func() (float64, error) {
		return thermo.OttoEfficiency(r, gamma)
	}))
	b.WriteString(m.efficiencyLine("diesel efficiency", func() (float64, error) {
		return thermo.DieselEfficiency(r, rc, gamma)
	}))

	b.WriteString(m.chart())
	b.WriteString(helpStyle.Render("↑/↓ select · ←/→ adjust · r reset · q quit"))

	return panelStyle.Render(b.String())
}

func (m Explorer) efficiencyLine(label string, eval func() (float64, error)) string {
	eff, err := eval()
	if err != nil {
		return labelStyle.Render(label) + errorStyle.Render(err.Error()) + "\n"
	}
	return Metric(label, fmt.Sprintf("%.2f%%", eff*100)) + "\n"
}

func (m Explorer) chart() string {
	cutoffs := []float64{m.CutoffRatio()}
	series, err := cycle.Comparison(m.sweep, cutoffs, m.Gamma())
	if err != nil {
		// Otto alone still has a valid curve when the cutoff is degenerate.
		series, err = cycle.Comparison(m.sweep, nil, m.Gamma())
		if err != nil {
			return ""
		}
	}

	opts := plot.DefaultOptions()
	opts.Height = 10
	opts.Width = max(m.width-20, 20)
	opts.Caption = "efficiency vs compression ratio (4-24)"
	return graphStyle.Render(plot.Lines(series, opts)) + "\n"
}

// RunExplorer starts the interactive explorer and blocks until it exits.
func RunExplorer(compressionRatio, cutoffRatio, gamma float64) error {
	p := tea.NewProgram(NewExplorer(compressionRatio, cutoffRatio, gamma))
	_, err := p.Run()
	return err
}
