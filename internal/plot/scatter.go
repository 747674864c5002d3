package plot

import (
	"fmt"
	"strings"

	"github.com/san-kum/thermolab/internal/cycle"
)

// Scatter draws a P-V loop on a framed character canvas with volume on the
// x-axis and pressure on the y-axis. Points are marked by traversal order:
// '.' early, 'o' middle, '●' late.
func Scatter(points []cycle.Point, width, height int) string {
	if len(points) == 0 || width < 2 || height < 2 {
		return ""
	}

	xMin, xMax := points[0].V, points[0].V
	yMin, yMax := points[0].P, points[0].P
	for _, pt := range points {
		xMin = min(xMin, pt.V)
		xMax = max(xMax, pt.V)
		yMin = min(yMin, pt.P)
		yMax = max(yMax, pt.P)
	}

	xRange := xMax - xMin
	yRange := yMax - yMin
	if xRange == 0 {
		xRange = 1
	}
	if yRange == 0 {
		yRange = 1
	}

	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = []rune(strings.Repeat(" ", width))
	}

	n := len(points)
	for i, pt := range points {
		px := int(float64(width-1) * (pt.V - xMin) / xRange)
		py := height - 1 - int(float64(height-1)*(pt.P-yMin)/yRange)
		if px < 0 || px >= width || py < 0 || py >= height {
			continue
		}
		switch {
		case i < n/3:
			canvas[py][px] = '.'
		case i < 2*n/3:
			canvas[py][px] = 'o'
		default:
			canvas[py][px] = '●'
		}
	}

	yTop := formatAxis(yMax)
	yMid := formatAxis((yMax + yMin) / 2)
	yBot := formatAxis(yMin)
	pad := max(len(yTop), len(yMid), len(yBot))
	blank := strings.Repeat(" ", pad)

	var sb strings.Builder
	fmt.Fprintf(&sb, "%*s ┌%s┐\n", pad, yTop, strings.Repeat("─", width))
	for i, row := range canvas {
		label := blank
		if i == height/2 {
			label = fmt.Sprintf("%*s", pad, yMid)
		}
		fmt.Fprintf(&sb, "%s │%s│\n", label, string(row))
	}
	fmt.Fprintf(&sb, "%*s └%s┘\n", pad, yBot, strings.Repeat("─", width))

	xLeft := formatAxis(xMin)
	xRight := formatAxis(xMax)
	gap := max(width-len(xLeft)-len(xRight)+2, 1)
	fmt.Fprintf(&sb, "%s  %s%s%s\n", blank, xLeft, strings.Repeat(" ", gap), xRight)

	return sb.String()
}

func formatAxis(v float64) string {
	return fmt.Sprintf("%.4g", v)
}
