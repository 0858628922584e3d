package loading

import "fmt"

// ConstantAmplitudeBuilder repeats a two-level pattern [first, second]
// and closes the history on first, scaled by Scale
type ConstantAmplitudeBuilder struct {
	Input   Input
	First   float64
	Second  float64
	Scale   float64
	Repeats int // full reversal pairs, DefaultRepeats when zero
}

// Build returns [f, s, f, s, ..., f] with 2*Repeats+1 levels
func (b *ConstantAmplitudeBuilder) Build() (Sequence, error) {
	if b.Input == StrainControlled {
		return nil, fmt.Errorf("%w: strain-controlled constant amplitude loading", ErrNotImplemented)
	}

	repeats := b.Repeats
	if repeats <= 0 {
		repeats = DefaultRepeats
	}

	first := b.First * b.Scale
	second := b.Second * b.Scale

	levels := make(Sequence, 0, 2*repeats+1)
	for i := 0; i < repeats; i++ {
		levels = append(levels, first, second)
	}
	levels = append(levels, first)

	return levels, nil
}
