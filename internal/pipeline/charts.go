package pipeline

import (
	"path/filepath"

	"github.com/alexiusacademia/strainlife/internal/cyclic"
	"github.com/alexiusacademia/strainlife/internal/diagram"
	"github.com/alexiusacademia/strainlife/internal/hysteresis"
	"github.com/alexiusacademia/strainlife/internal/loading"
	"github.com/alexiusacademia/strainlife/internal/specimen"
	"go.uber.org/zap"
)

// Output file stems
const (
	SpecimenFile   = "specimen"
	LoadingFile    = "loadingtype"
	HysteresisFile = "hysteresis"
)

// SpecimenChart plots the cyclic curve, plus the Neuber curve for notched specimens
func SpecimenChart(spec specimen.Config, skeleton, notch []cyclic.Point) diagram.Chart {
	chart := diagram.Chart{
		Title:  "Cyclic Stress-Strain Curve",
		XLabel: "Strain Amplitude",
		YLabel: "Stress Amplitude",
		Series: []diagram.Series{{Name: "Cyclic R-O", Points: curvePoints(skeleton)}},
	}
	if spec.IsNotched() {
		chart.XLabel = "Strain"
		chart.YLabel = "Stress"
		chart.Series = append(chart.Series, diagram.Series{Name: "Neuber curve", Points: curvePoints(notch)})
	}
	return chart
}

// LoadChart plots the applied history against reversal index
func LoadChart(levels loading.Sequence) diagram.Chart {
	samples := levels.Points()
	points := make([]diagram.Point, len(samples))
	for i, s := range samples {
		points[i] = diagram.Point{X: s.Index, Y: s.Level}
	}
	return diagram.Chart{
		Title:  "Loading History",
		XLabel: "Reversal",
		YLabel: "Stress",
		Series: []diagram.Series{{Name: "Loading", Points: points}},
	}
}

// HysteresisChart plots the traced stress-strain path
func HysteresisChart(path []hysteresis.PathPoint) diagram.Chart {
	points := make([]diagram.Point, len(path))
	for i, p := range path {
		points[i] = diagram.Point{X: p.Strain, Y: p.Stress}
	}
	return diagram.Chart{
		Title:  "Hysteresis",
		XLabel: "Strain",
		YLabel: "Stress",
		Series: []diagram.Series{{Name: "Loading", Points: points}},
	}
}

// Charts returns the three output charts keyed by file stem
func (r *Result) Charts() map[string]diagram.Chart {
	return map[string]diagram.Chart{
		SpecimenFile:   SpecimenChart(r.Specimen, r.Skeleton, r.Notch),
		LoadingFile:    LoadChart(r.Nominal),
		HysteresisFile: HysteresisChart(r.Path),
	}
}

// Export writes the three charts into dir and returns the written paths
// in specimen, loading, hysteresis order
func (r *Result) Export(logger *zap.Logger, dir, format string) ([]string, error) {
	charts := r.Charts()

	var written []string
	for _, stem := range []string{SpecimenFile, LoadingFile, HysteresisFile} {
		path, err := diagram.ExportChart(charts[stem], filepath.Join(dir, stem+"."+format))
		if err != nil {
			return written, err
		}
		logger.Info("chart written", zap.String("file", path))
		written = append(written, path)
	}
	return written, nil
}

func curvePoints(points []cyclic.Point) []diagram.Point {
	out := make([]diagram.Point, len(points))
	for i, p := range points {
		out[i] = diagram.Point{X: p.Strain, Y: p.Stress}
	}
	return out
}
