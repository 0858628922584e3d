package cyclic_test

import (
	"math"
	"testing"

	"github.com/alexiusacademia/strainlife/internal/cyclic"
	"github.com/alexiusacademia/strainlife/internal/material"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sae1015(t *testing.T) cyclic.Curve {
	t.Helper()
	m, err := material.Default().Lookup("SAE1015")
	require.NoError(t, err)
	return cyclic.New(m)
}

func TestStrainAt_Zero(t *testing.T) {
	c := sae1015(t)
	assert.Equal(t, 0.0, c.StrainAt(0, cyclic.Monotonic))
	assert.Equal(t, 0.0, c.StrainAt(0, cyclic.Massing))
}

func TestStrainAt_KnownValue(t *testing.T) {
	c := sae1015(t)
	// 100 * (200/207000 + (200/1349)^(1/0.282))
	want := 100 * (200.0/207000 + math.Pow(200.0/1349, 1/0.282))
	assert.InDelta(t, want, c.StrainAt(200, cyclic.Monotonic), 1e-12)
}

func TestStrainAt_Odd(t *testing.T) {
	c := sae1015(t)
	for _, s := range []float64{0.5, 1, 50, 228, 415, 1000} {
		for _, b := range []cyclic.Branch{cyclic.Monotonic, cyclic.Massing} {
			assert.Equal(t, -c.StrainAt(s, b), c.StrainAt(-s, b))
		}
	}
}

func TestStrainAt_StrictlyIncreasing(t *testing.T) {
	c := sae1015(t)
	for _, b := range []cyclic.Branch{cyclic.Monotonic, cyclic.Massing} {
		prev := c.StrainAt(0, b)
		for s := 1.0; s <= 800; s++ {
			cur := c.StrainAt(s, b)
			require.Greater(t, cur, prev, "branch %d at %.0f", b, s)
			prev = cur
		}
	}
}

func TestStrainAt_MassingIsDoubledSkeleton(t *testing.T) {
	c := sae1015(t)
	// A reversal of range 2σ on the Massing branch spans twice the skeleton strain at σ
	for _, s := range []float64{100, 200, 300} {
		assert.InDelta(t, 2*c.StrainAt(s, cyclic.Monotonic), c.StrainAt(2*s, cyclic.Massing), 1e-12)
	}
}

func TestIntegerSteps(t *testing.T) {
	assert.Equal(t, []float64{0, 1, 2, 3}, cyclic.IntegerSteps(3.7))
	assert.Equal(t, []float64{0}, cyclic.IntegerSteps(0.2))

	steps := cyclic.IntegerSteps(415)
	require.Len(t, steps, 416)
	for i, s := range steps {
		assert.Equal(t, float64(i), s)
	}
}

func TestSweep_SAE1015(t *testing.T) {
	c := sae1015(t)
	points := c.Sweep(415)

	require.Len(t, points, 416)
	assert.Equal(t, cyclic.Point{}, points[0])

	last := points[len(points)-1]
	assert.Equal(t, 415.0, last.Stress)
	assert.Greater(t, last.Strain, 0.0)
}
