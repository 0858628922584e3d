package diagram

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"
	"gonum.org/v1/gonum/floats"
)

var seriesColors = []asciigraph.AnsiColor{
	asciigraph.Blue,
	asciigraph.Red,
	asciigraph.Green,
	asciigraph.Orange,
}

// DrawASCIIChart renders every series at the given size. When all series
// have non-decreasing X they are resampled onto a shared X grid; otherwise
// Y is plotted against point order.
func DrawASCIIChart(chart Chart, width, height int) string {
	data := uniformSeries(chart, width)
	if data == nil {
		data = orderedSeries(chart)
	}
	if len(data) == 0 {
		return ""
	}

	colors := make([]asciigraph.AnsiColor, len(data))
	for i := range data {
		colors[i] = seriesColors[i%len(seriesColors)]
	}

	caption := chart.Title
	if chart.YLabel != "" {
		caption = fmt.Sprintf("%s (%s)", chart.Title, chart.YLabel)
	}

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(asciigraph.PlotMany(data,
		asciigraph.Width(width),
		asciigraph.Height(height),
		asciigraph.Precision(1),
		asciigraph.SeriesColors(colors...),
		asciigraph.Caption(caption),
	))
	sb.WriteString("\n")

	if len(data) > 1 {
		sb.WriteString("\n  Legend:\n")
		i := 0
		for _, s := range chart.Series {
			if len(s.Points) == 0 {
				continue
			}
			sb.WriteString(fmt.Sprintf("  %s── %s\x1b[0m\n", colors[i].String(), s.Name))
			i++
		}
	}

	return sb.String()
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len(title)
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

func orderedSeries(chart Chart) [][]float64 {
	var data [][]float64
	for _, s := range chart.Series {
		if len(s.Points) == 0 {
			continue
		}
		ys := make([]float64, len(s.Points))
		for i, p := range s.Points {
			ys[i] = p.Y
		}
		data = append(data, ys)
	}
	return data
}

// uniformSeries linearly interpolates each series at n evenly spaced X values
// across the chart's X extent, holding end values outside a series' own range.
// It returns nil when any series is too short or moves backwards in X.
func uniformSeries(chart Chart, n int) [][]float64 {
	minX, maxX, _, _ := chart.Bounds()
	if n < 2 || maxX <= minX {
		return nil
	}
	xs := floats.Span(make([]float64, n), minX, maxX)

	var data [][]float64
	for _, s := range chart.Series {
		if len(s.Points) == 0 {
			continue
		}
		if len(s.Points) < 2 {
			return nil
		}
		for i := 1; i < len(s.Points); i++ {
			if s.Points[i].X < s.Points[i-1].X {
				return nil
			}
		}

		ys := make([]float64, n)
		j := 0
		for i, x := range xs {
			for j < len(s.Points)-2 && s.Points[j+1].X < x {
				j++
			}
			a, b := s.Points[j], s.Points[j+1]
			switch {
			case x <= a.X:
				ys[i] = a.Y
			case x >= b.X || b.X == a.X:
				ys[i] = b.Y
			default:
				ys[i] = a.Y + (x-a.X)/(b.X-a.X)*(b.Y-a.Y)
			}
		}
		data = append(data, ys)
	}
	return data
}
