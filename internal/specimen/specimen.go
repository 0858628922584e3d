package specimen

import (
	"errors"
	"fmt"
)

// Geometry identifies the specimen class
type Geometry string

const (
	Smooth  Geometry = "smooth"
	Notched Geometry = "notched"
)

// ErrUnknownGeometry is returned for a geometry tag other than smooth or notched.
var ErrUnknownGeometry = errors.New("specimen: unknown geometry")

// Config describes the specimen under test
type Config struct {
	Geometry Geometry `yaml:"geometry"`

	// Elastic stress-concentration factor, only meaningful for notched specimens
	Kt float64 `yaml:"kt"`
}

// NewSmooth returns an unnotched specimen (kt = 1)
func NewSmooth() Config {
	return Config{Geometry: Smooth, Kt: 1}
}

// NewNotched returns a notched specimen with the given stress-concentration factor
func NewNotched(kt float64) (Config, error) {
	c := Config{Geometry: Notched, Kt: kt}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// IsNotched reports whether the Neuber correction applies
func (c Config) IsNotched() bool {
	return c.Geometry == Notched
}

// Validate checks the geometry tag and kt
func (c Config) Validate() error {
	switch c.Geometry {
	case Smooth:
		return nil
	case Notched:
		if c.Kt < 1 {
			return &ValidationError{fmt.Sprintf("notched specimen requires kt >= 1, got %.3f", c.Kt)}
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownGeometry, c.Geometry)
	}
}

// ValidationError represents an invalid specimen definition
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}
