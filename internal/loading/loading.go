package loading

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Type identifies a loading history generator
type Type string

const (
	ConstantAmplitude Type = "constant-amplitude"
	Block             Type = "block"
	Spectrum          Type = "spectrum"
)

// Input selects the controlled quantity
type Input string

const (
	StressControlled Input = "stress"
	StrainControlled Input = "strain"
)

// DefaultRepeats is the number of full reversal pairs in a constant-amplitude history
const DefaultRepeats = 5

var (
	// ErrUnknownType is returned for a loading type with no registered builder.
	ErrUnknownType = errors.New("loading: unknown loading type")

	// ErrUnknownInput is returned for a control input other than stress or strain.
	ErrUnknownInput = errors.New("loading: unknown control input")

	// ErrNotImplemented is returned by loading strategies that have no generator yet.
	ErrNotImplemented = errors.New("loading: not implemented")
)

// Spec describes a load history
type Spec struct {
	Type          Type    `yaml:"type"`
	Input         Input   `yaml:"input"`
	FirstPeak     float64 `yaml:"first_peak"`
	SecondPeak    float64 `yaml:"second_peak"`
	ScalingFactor float64 `yaml:"scaling_factor"`
	Repeats       int     `yaml:"repeats"`
}

// Sequence is an ordered list of signed nominal reversal levels
type Sequence []float64

// Point is one (index, level) sample of the loading chart
type Point struct {
	Index float64
	Level float64
}

// Points returns the history as chart samples, starting from the unloaded state at index 0
func (s Sequence) Points() []Point {
	points := make([]Point, 0, len(s)+1)
	points = append(points, Point{})
	for i, level := range s {
		points = append(points, Point{Index: float64(i + 1), Level: level})
	}
	return points
}

// Range returns the lowest and highest level, or zeros for an empty sequence
func (s Sequence) Range() (lo, hi float64) {
	if len(s) == 0 {
		return 0, 0
	}
	return floats.Min(s), floats.Max(s)
}

// Map returns a new sequence with fn applied to every level
func (s Sequence) Map(fn func(float64) (float64, error)) (Sequence, error) {
	out := make(Sequence, len(s))
	for i, level := range s {
		v, err := fn(level)
		if err != nil {
			return nil, fmt.Errorf("reversal %d (%.4f): %w", i, level, err)
		}
		out[i] = v
	}
	return out, nil
}

// Builder expands a loading specification into reversal levels
type Builder interface {
	Build() (Sequence, error)
}

var registry = map[Type]func(Spec) Builder{
	ConstantAmplitude: func(s Spec) Builder {
		return &ConstantAmplitudeBuilder{
			Input:   s.Input,
			First:   s.FirstPeak,
			Second:  s.SecondPeak,
			Scale:   s.ScalingFactor,
			Repeats: s.Repeats,
		}
	},
	Block:    func(Spec) Builder { return unimplemented("block loading") },
	Spectrum: func(Spec) Builder { return unimplemented("spectrum loading") },
}

// New returns the builder registered for spec.Type
func New(spec Spec) (Builder, error) {
	switch spec.Input {
	case "", StressControlled, StrainControlled:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownInput, spec.Input)
	}

	factory, ok := registry[spec.Type]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, spec.Type)
	}
	return factory(spec), nil
}

// Build is a shortcut for New followed by Build
func Build(spec Spec) (Sequence, error) {
	b, err := New(spec)
	if err != nil {
		return nil, err
	}
	return b.Build()
}

// Types returns the registered loading types
func Types() []Type {
	return []Type{ConstantAmplitude, Block, Spectrum}
}

type unimplemented string

func (u unimplemented) Build() (Sequence, error) {
	return nil, fmt.Errorf("%w: %s", ErrNotImplemented, string(u))
}
