package specimen_test

import (
	"errors"
	"testing"

	"github.com/alexiusacademia/strainlife/internal/specimen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSmooth(t *testing.T) {
	c := specimen.NewSmooth()
	assert.False(t, c.IsNotched())
	assert.Equal(t, 1.0, c.Kt)
	assert.NoError(t, c.Validate())
}

func TestNewNotched(t *testing.T) {
	c, err := specimen.NewNotched(2.0)
	require.NoError(t, err)
	assert.True(t, c.IsNotched())
	assert.Equal(t, 2.0, c.Kt)
}

func TestNewNotched_KtBelowOne(t *testing.T) {
	_, err := specimen.NewNotched(0.5)
	require.Error(t, err)

	var verr *specimen.ValidationError
	assert.True(t, errors.As(err, &verr))
}

func TestValidate_UnknownGeometry(t *testing.T) {
	err := specimen.Config{Geometry: "threaded"}.Validate()
	assert.True(t, errors.Is(err, specimen.ErrUnknownGeometry))
}
