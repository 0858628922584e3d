package diagram

import "math"

// Point is one (x, y) sample of a series
type Point struct {
	X float64
	Y float64
}

// Series is a named, ordered line of points
type Series struct {
	Name   string
	Points []Point
}

// Chart is a titled set of series with axis labels
type Chart struct {
	Title  string
	XLabel string
	YLabel string
	Series []Series
}

// Bounds returns the extent of every point in the chart.
// An empty chart reports a zero box.
func (c Chart) Bounds() (minX, maxX, minY, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, s := range c.Series {
		for _, p := range s.Points {
			minX = math.Min(minX, p.X)
			maxX = math.Max(maxX, p.X)
			minY = math.Min(minY, p.Y)
			maxY = math.Max(maxY, p.Y)
		}
	}
	if math.IsInf(minX, 1) {
		return 0, 0, 0, 0
	}
	return minX, maxX, minY, maxY
}

// Len returns the total number of points
func (c Chart) Len() int {
	n := 0
	for _, s := range c.Series {
		n += len(s.Points)
	}
	return n
}
