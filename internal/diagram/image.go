package diagram

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ErrEmptyChart is returned when a chart has no points to draw.
var ErrEmptyChart = errors.New("diagram: chart has no points")

// line colours, cycled per series
var palette = []color.RGBA{
	{R: 0, G: 0, B: 139, A: 255},
	{R: 255, G: 0, B: 0, A: 255},
	{R: 0, G: 100, B: 0, A: 255},
	{R: 255, G: 165, B: 0, A: 255},
	{R: 139, G: 69, B: 19, A: 255},
}

// ExportChart writes the chart as an image and returns the path written.
// The format follows the extension (png, svg, pdf); anything else gets ".png" appended.
func ExportChart(chart Chart, filename string) (string, error) {
	if chart.Len() == 0 {
		return "", ErrEmptyChart
	}

	p := plot.New()
	p.Title.Text = chart.Title
	p.X.Label.Text = chart.XLabel
	p.Y.Label.Text = chart.YLabel
	p.Legend.Top = true

	// Zero axes across the data extent
	minX, maxX, minY, maxY := chart.Bounds()
	if err := addZeroAxes(p, minX, maxX, minY, maxY); err != nil {
		return "", err
	}

	for i, s := range chart.Series {
		if len(s.Points) == 0 {
			continue
		}
		xys := make(plotter.XYs, len(s.Points))
		for j, pt := range s.Points {
			xys[j] = plotter.XY{X: pt.X, Y: pt.Y}
		}

		l, err := plotter.NewLine(xys)
		if err != nil {
			return "", err
		}
		l.LineStyle.Width = vg.Points(1.5)
		l.LineStyle.Color = palette[i%len(palette)]
		p.Add(l)
		if s.Name != "" {
			p.Legend.Add(s.Name, l)
		}
	}

	width := 8 * vg.Inch
	height := 6 * vg.Inch

	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", err
		}
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png", ".svg", ".pdf":
	default:
		filename += ".png"
	}
	if err := p.Save(width, height, filename); err != nil {
		return "", err
	}
	return filename, nil
}

func addZeroAxes(p *plot.Plot, minX, maxX, minY, maxY float64) error {
	axes := []plotter.XYs{
		{{X: minX, Y: 0}, {X: maxX, Y: 0}},
		{{X: 0, Y: minY}, {X: 0, Y: maxY}},
	}
	for _, pts := range axes {
		l, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		l.LineStyle.Width = vg.Points(1)
		l.LineStyle.Color = color.Gray{Y: 128}
		l.LineStyle.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
		p.Add(l)
	}
	return nil
}
