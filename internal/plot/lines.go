package plot

import (
	"fmt"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/thermolab/internal/cycle"
)

var palette = []asciigraph.AnsiColor{
	asciigraph.Blue,
	asciigraph.Red,
	asciigraph.Green,
	asciigraph.Yellow,
}

// Options controls terminal chart size and labelling.
type Options struct {
	Height    int
	Width     int
	Caption   string
	Precision uint
	Color     bool
}

// DefaultOptions returns a 15x80 colored chart with three decimal places.
func DefaultOptions() Options {
	return Options{Height: 15, Width: 80, Precision: 3, Color: true}
}

// Lines draws every series against its sample index and appends a line
// naming the X range the index spans. Series are assumed to share X values,
// as produced by cycle.Comparison.
func Lines(series []cycle.Series, opts Options) string {
	var xs []float64
	data := make([][]float64, 0, len(series))
	legends := make([]string, 0, len(series))
	colors := make([]asciigraph.AnsiColor, 0, len(series))
	for i, s := range series {
		if s.Len() == 0 {
			continue
		}
		if xs == nil {
			xs = s.X
		}
		data = append(data, s.Y)
		legends = append(legends, s.Name)
		colors = append(colors, palette[i%len(palette)])
	}
	if len(data) == 0 {
		return ""
	}

	if opts.Height <= 0 {
		opts.Height = DefaultOptions().Height
	}
	if opts.Width <= 0 {
		opts.Width = DefaultOptions().Width
	}

	graphOpts := []asciigraph.Option{
		asciigraph.Height(opts.Height),
		asciigraph.Width(opts.Width),
		asciigraph.Precision(opts.Precision),
		asciigraph.SeriesLegends(legends...),
	}
	if opts.Caption != "" {
		graphOpts = append(graphOpts, asciigraph.Caption(opts.Caption))
	}
	if opts.Color {
		graphOpts = append(graphOpts, asciigraph.SeriesColors(colors...))
	}

	chart := asciigraph.PlotMany(data, graphOpts...)
	return chart + "\n" + xRange(xs)
}

func xRange(xs []float64) string {
	return fmt.Sprintf("x: %s .. %s (%d samples)", formatAxis(xs[0]), formatAxis(xs[len(xs)-1]), len(xs))
}
