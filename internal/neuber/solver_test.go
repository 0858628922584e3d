package neuber_test

import (
	"errors"
	"math"
	"testing"

	"github.com/alexiusacademia/strainlife/internal/cyclic"
	"github.com/alexiusacademia/strainlife/internal/material"
	"github.com/alexiusacademia/strainlife/internal/neuber"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSolver(t *testing.T, name string, kt float64) *neuber.Solver {
	t.Helper()
	m, err := material.Default().Lookup(name)
	require.NoError(t, err)
	return neuber.New(cyclic.New(m), kt)
}

func TestLocalStress_ZeroNominal(t *testing.T) {
	s := newSolver(t, "SAE1015", 2)
	got, err := s.LocalStress(0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)
}

func TestLocalStress_ResidualWithinTolerance(t *testing.T) {
	s := newSolver(t, "SAE1015", 2)
	for _, sn := range []float64{1, 10, 100, 200, 300, 415} {
		local, err := s.LocalStress(sn)
		require.NoError(t, err)

		lhs := math.Pow(sn*s.Kt, 2) / s.Curve.E
		rhs := local * s.Curve.StrainAt(local, cyclic.Monotonic) / cyclic.StrainScale
		assert.Less(t, math.Abs(lhs-rhs), 1e-6, "nominal %.0f", sn)
	}
}

func TestLocalStress_ElasticRangeMatchesKt(t *testing.T) {
	// Far below yield the plastic term is negligible, so σ ≈ kt·S
	s := newSolver(t, "SAE1015", 2)
	local, err := s.LocalStress(5)
	require.NoError(t, err)
	assert.InDelta(t, 10.0, local, 0.01)
}

func TestLocalStress_PlasticRangeBelowElastic(t *testing.T) {
	// Past yield the notch root yields, so σ < kt·S
	s := newSolver(t, "SAE1015", 2)
	local, err := s.LocalStress(300)
	require.NoError(t, err)
	assert.Less(t, local, 600.0)
	assert.Greater(t, local, 250.0)
}

func TestLocalStress_SignPreserved(t *testing.T) {
	s := newSolver(t, "SAE1015", 2)
	pos, err := s.LocalStress(250)
	require.NoError(t, err)
	neg, err := s.LocalStress(-250)
	require.NoError(t, err)
	assert.Equal(t, -pos, neg)
}

func TestLocalStress_Monotonic(t *testing.T) {
	for _, name := range material.Default().Names() {
		s := newSolver(t, name, 2.5)
		prev := 0.0
		for sn := 1.0; sn <= 600; sn += 7 {
			local, err := s.LocalStress(sn)
			require.NoError(t, err, name)
			require.GreaterOrEqual(t, local, prev, "%s at %.0f", name, sn)
			prev = local
		}
	}
}

func TestLocalStress_IterationCap(t *testing.T) {
	s := newSolver(t, "SAE1015", 2)
	s.MaxIterations = 3

	_, err := s.LocalStress(300)
	require.Error(t, err)
	assert.True(t, errors.Is(err, neuber.ErrNoConvergence))

	var cerr *neuber.ConvergenceError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, 300.0, cerr.Nominal)
	assert.Equal(t, 3, cerr.Iterations)
}

func TestLocalStress_InvalidParameters(t *testing.T) {
	s := newSolver(t, "SAE1015", 2)
	s.Tolerance = 0
	_, err := s.LocalStress(100)
	assert.Error(t, err)
}

func TestSweep(t *testing.T) {
	s := newSolver(t, "SAE1015", 2)
	samples, err := s.Sweep(415)
	require.NoError(t, err)
	require.Len(t, samples, 416)

	assert.Equal(t, neuber.Sample{}, samples[0])
	last := samples[415]
	assert.Equal(t, 415.0, last.Nominal)
	assert.Greater(t, last.Local, 0.0)
	assert.InDelta(t, s.Curve.StrainAt(last.Local, cyclic.Monotonic), last.Strain, 1e-15)
}
