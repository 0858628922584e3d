package material_test

import (
	"errors"
	"testing"

	"github.com/alexiusacademia/strainlife/internal/material"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup_SAE1015(t *testing.T) {
	m, err := material.Default().Lookup("SAE1015")
	require.NoError(t, err)

	assert.Equal(t, 207000.0, m.ElasticModulus)
	assert.Equal(t, 1349.0, m.CyclicStrengthCoefficient)
	assert.Equal(t, 0.282, m.CyclicHardeningExponent)
	assert.Equal(t, 415.0, m.UltimateStrength)
}

func TestLookup_UnknownMaterial(t *testing.T) {
	_, err := material.Default().Lookup("unobtainium")
	require.Error(t, err)
	assert.True(t, errors.Is(err, material.ErrUnknownMaterial))
	assert.Contains(t, err.Error(), "unobtainium")
}

func TestDefault_AllBuiltinsValid(t *testing.T) {
	table := material.Default()
	require.Len(t, table.Names(), 5)
	for _, m := range table.All() {
		assert.NoError(t, m.Validate(), m.Name)
	}
}

func TestWith_AddsAndReplaces(t *testing.T) {
	base := material.Default()
	custom := material.Model{
		Name:                      "SAE1015",
		UltimateStrength:          400,
		ElasticModulus:            200000,
		CyclicStrengthCoefficient: 1300,
		CyclicHardeningExponent:   0.25,
	}
	extra := material.Model{
		Name:                      "Test Steel",
		UltimateStrength:          500,
		ElasticModulus:            210000,
		CyclicStrengthCoefficient: 1000,
		CyclicHardeningExponent:   0.15,
	}

	table, err := base.With(custom, extra)
	require.NoError(t, err)

	m, err := table.Lookup("SAE1015")
	require.NoError(t, err)
	assert.Equal(t, 200000.0, m.ElasticModulus)

	_, err = table.Lookup("Test Steel")
	assert.NoError(t, err)

	// base table is untouched
	orig, err := base.Lookup("SAE1015")
	require.NoError(t, err)
	assert.Equal(t, 207000.0, orig.ElasticModulus)
	assert.Len(t, base.Names(), 5)
}

func TestWith_RejectsInvalid(t *testing.T) {
	_, err := material.Default().With(material.Model{Name: "broken", UltimateStrength: 1})
	require.Error(t, err)

	var verr *material.ValidationError
	assert.True(t, errors.As(err, &verr))
}
