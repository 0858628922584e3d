package loading_test

import (
	"errors"
	"testing"

	"github.com/alexiusacademia/strainlife/internal/loading"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_ConstantAmplitudeStress(t *testing.T) {
	levels, err := loading.Build(loading.Spec{
		Type:          loading.ConstantAmplitude,
		Input:         loading.StressControlled,
		FirstPeak:     200,
		SecondPeak:    -300,
		ScalingFactor: 1.0,
	})
	require.NoError(t, err)
	assert.Equal(t, loading.Sequence{200, -300, 200, -300, 200, -300, 200, -300, 200, -300, 200}, levels)
}

func TestBuild_ConstantAmplitudeScaled(t *testing.T) {
	levels, err := loading.Build(loading.Spec{
		Type:          loading.ConstantAmplitude,
		FirstPeak:     100,
		SecondPeak:    -50,
		ScalingFactor: 1.5,
		Repeats:       2,
	})
	require.NoError(t, err)
	assert.Equal(t, loading.Sequence{150, -75, 150, -75, 150}, levels)
}

func TestBuild_NotImplemented(t *testing.T) {
	tests := []struct {
		name string
		spec loading.Spec
	}{
		{"strain controlled", loading.Spec{Type: loading.ConstantAmplitude, Input: loading.StrainControlled}},
		{"block", loading.Spec{Type: loading.Block}},
		{"spectrum", loading.Spec{Type: loading.Spectrum}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := loading.Build(tc.spec)
			require.Error(t, err)
			assert.True(t, errors.Is(err, loading.ErrNotImplemented))
		})
	}
}

func TestNew_UnknownType(t *testing.T) {
	_, err := loading.New(loading.Spec{Type: "random"})
	assert.True(t, errors.Is(err, loading.ErrUnknownType))
}

func TestNew_UnknownInput(t *testing.T) {
	_, err := loading.New(loading.Spec{Type: loading.ConstantAmplitude, Input: "force"})
	assert.True(t, errors.Is(err, loading.ErrUnknownInput))
}

func TestSequence_Points(t *testing.T) {
	points := loading.Sequence{200, -300, 200}.Points()
	assert.Equal(t, []loading.Point{
		{Index: 0, Level: 0},
		{Index: 1, Level: 200},
		{Index: 2, Level: -300},
		{Index: 3, Level: 200},
	}, points)
}

func TestSequence_Range(t *testing.T) {
	lo, hi := loading.Sequence{200, -300, 150}.Range()
	assert.Equal(t, -300.0, lo)
	assert.Equal(t, 200.0, hi)

	lo, hi = loading.Sequence{}.Range()
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 0.0, hi)
}

func TestSequence_Map(t *testing.T) {
	doubled, err := loading.Sequence{1, -2}.Map(func(v float64) (float64, error) { return 2 * v, nil })
	require.NoError(t, err)
	assert.Equal(t, loading.Sequence{2, -4}, doubled)

	boom := errors.New("boom")
	_, err = loading.Sequence{1, -2}.Map(func(float64) (float64, error) { return 0, boom })
	assert.True(t, errors.Is(err, boom))
}
