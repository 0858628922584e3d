package diagram_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexiusacademia/strainlife/internal/diagram"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleChart() diagram.Chart {
	return diagram.Chart{
		Title:  "Hysteresis",
		XLabel: "Strain",
		YLabel: "Stress",
		Series: []diagram.Series{
			{Name: "Loading", Points: []diagram.Point{{X: 0, Y: 0}, {X: 0.2, Y: 200}, {X: -0.3, Y: -300}}},
		},
	}
}

func TestChart_Bounds(t *testing.T) {
	minX, maxX, minY, maxY := sampleChart().Bounds()
	assert.Equal(t, -0.3, minX)
	assert.Equal(t, 0.2, maxX)
	assert.Equal(t, -300.0, minY)
	assert.Equal(t, 200.0, maxY)

	minX, maxX, minY, maxY = diagram.Chart{}.Bounds()
	assert.Equal(t, [4]float64{}, [4]float64{minX, maxX, minY, maxY})
}

func TestExportChart_PNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plots", "hysteresis.png")

	written, err := diagram.ExportChart(sampleChart(), path)
	require.NoError(t, err)
	assert.Equal(t, path, written)

	info, err := os.Stat(written)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestExportChart_DefaultsToPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "specimen")

	written, err := diagram.ExportChart(sampleChart(), path)
	require.NoError(t, err)
	assert.Equal(t, path+".png", written)
}

func TestExportChart_Empty(t *testing.T) {
	_, err := diagram.ExportChart(diagram.Chart{Title: "empty"}, filepath.Join(t.TempDir(), "x.png"))
	assert.ErrorIs(t, err, diagram.ErrEmptyChart)
}

func TestDrawASCIIChart(t *testing.T) {
	out := diagram.DrawASCIIChart(sampleChart(), 40, 8)
	assert.Contains(t, out, "Hysteresis (Stress)")
	assert.NotContains(t, out, "Legend")

	assert.Empty(t, diagram.DrawASCIIChart(diagram.Chart{}, 40, 8))
}

func TestDrawSummaryBox(t *testing.T) {
	out := diagram.DrawSummaryBox("RESULT", []string{"Cycles: 1"})
	assert.Contains(t, out, "RESULT")
	assert.Contains(t, out, "Cycles: 1")
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	err := diagram.WriteTable(&buf, []string{"#", "First", "Second"}, [][]string{{"1", "200", "-300"}})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, strings.ToLower(out), "first")
	assert.Contains(t, out, "-300")
}
