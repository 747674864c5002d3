package plot

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/thermolab/internal/cycle"
)

var svgColors = []string{"#3b82f6", "#ef4444", "#22c55e", "#eab308"}

// SVG renders series as polylines scaled into a shared bounding box with 10%
// padding. Series with fewer than two points are skipped.
func SVG(series []cycle.Series, width, height int) string {
	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	drawn := 0
	for _, s := range series {
		if s.Len() < 2 || s.Validate() != nil {
			continue
		}
		drawn++
		for i := range s.X {
			minX = math.Min(minX, s.X[i])
			maxX = math.Max(maxX, s.X[i])
			minY = math.Min(minY, s.Y[i])
			maxY = math.Max(maxY, s.Y[i])
		}
	}
	if drawn == 0 {
		return ""
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	maxX += rangeX * 0.1
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeX = maxX - minX
	rangeY = maxY - minY

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#ffffff"/>
`, width, height, width, height)

	legendY := 16
	for i, s := range series {
		if s.Len() < 2 || s.Validate() != nil {
			continue
		}
		color := svgColors[i%len(svgColors)]

		sb.WriteString(`<path fill="none" stroke="`)
		sb.WriteString(color)
		sb.WriteString(`" stroke-width="1.5" d="M`)
		for j := range s.X {
			x := (s.X[j] - minX) / rangeX * float64(width)
			y := float64(height) - (s.Y[j]-minY)/rangeY*float64(height)
			if j > 0 {
				sb.WriteString(" L")
			}
			fmt.Fprintf(&sb, "%.1f,%.1f", x, y)
		}
		sb.WriteString("\"/>\n")

		fmt.Fprintf(&sb, `<text x="8" y="%d" font-family="monospace" font-size="12" fill="%s">%s</text>
`, legendY, color, escapeXML(s.Name))
		legendY += 16
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

// DiagramSVG renders a P-V loop with its efficiency in the legend.
func DiagramSVG(d *cycle.Diagram, width, height int) string {
	if d == nil {
		return ""
	}
	s := d.Series()
	s.Name = fmt.Sprintf("%s, efficiency %.1f%%", s.Name, d.Efficiency*100)
	return SVG([]cycle.Series{s}, width, height)
}

var xmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")

func escapeXML(s string) string {
	return xmlEscaper.Replace(s)
}
