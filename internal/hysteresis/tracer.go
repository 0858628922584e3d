// Package hysteresis traces the local stress-strain path of a reversal
// history and detects closed loops with a memory rule: a leg that reaches
// the stress of an earlier open reversal closes that loop and continues on
// the branch the material was following before it.
package hysteresis

import (
	"errors"
	"fmt"
	"math"

	"github.com/alexiusacademia/strainlife/internal/cyclic"
	"go.uber.org/zap"
)

var (
	// ErrTooFewReversals is returned for histories with fewer than two levels.
	ErrTooFewReversals = errors.New("hysteresis: at least two reversal levels are required")

	// ErrNotAlternating is returned when consecutive levels are not turning points.
	ErrNotAlternating = errors.New("hysteresis: reversal levels must alternate in direction")

	// ErrUnknownPairing is returned for an unsupported cycle pairing rule.
	ErrUnknownPairing = errors.New("hysteresis: unknown cycle pairing")
)

// Pairing selects how the two turning values of a closed loop are reported
type Pairing string

const (
	// FirstMatch takes (levels[j-1], levels[j]) for the first j >= 1 where
	// levels[j] equals the closing reversal level. With repeated equal
	// levels this can name an earlier loop than the one that closed.
	FirstMatch Pairing = "first-match"

	// Anchors takes the stresses of the two memory anchors the loop spans.
	Anchors Pairing = "anchors"
)

// PathPoint is one (strain, stress) sample of the traced path
type PathPoint struct {
	Strain float64
	Stress float64
}

// Result is the output of one trace
type Result struct {
	Path   []PathPoint
	Cycles []Cycle
}

// Tracer walks reversal histories over a cyclic stress-strain curve
type Tracer struct {
	logger  *zap.Logger
	curve   cyclic.Curve
	Pairing Pairing
}

// NewTracer creates a tracer using first-match cycle pairing
func NewTracer(logger *zap.Logger, curve cyclic.Curve) *Tracer {
	return &Tracer{logger: logger, curve: curve, Pairing: FirstMatch}
}

// Validate checks that levels form a reversal history
func Validate(levels []float64) error {
	if len(levels) < 2 {
		return fmt.Errorf("%w: got %d", ErrTooFewReversals, len(levels))
	}
	for i := 1; i < len(levels); i++ {
		d := levels[i] - levels[i-1]
		if d == 0 {
			return fmt.Errorf("%w: levels %d and %d are equal (%.4f)", ErrNotAlternating, i-1, i, levels[i])
		}
		if i > 1 && math.Signbit(d) == math.Signbit(levels[i-1]-levels[i-2]) {
			return fmt.Errorf("%w: level %d (%.4f) continues the previous leg", ErrNotAlternating, i, levels[i])
		}
	}
	return nil
}

// Trace returns the stress-strain path and the distinct closed cycles of levels.
// Every call starts from an unloaded state.
func (t *Tracer) Trace(levels []float64) (*Result, error) {
	if err := Validate(levels); err != nil {
		return nil, err
	}
	switch t.Pairing {
	case FirstMatch, Anchors:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPairing, t.Pairing)
	}

	tr := &trace{
		Tracer: t,
		levels: levels,
		cycles: NewCycleSet(),
		dir:    math.Copysign(1, levels[0]-levels[1]),
	}

	for i, level := range levels {
		current := level
		over := false
		if math.Abs(level) >= tr.maxVal {
			// the leg runs to the mirrored previous extreme before joining the skeleton curve
			current = tr.dir * tr.maxVal
			over = true
		}

		if i > 0 {
			tr.reverse(level, math.Abs(current-levels[i-1]))
		}
		if over {
			tr.overload(level, current)
		}
		tr.dir = -tr.dir
	}

	t.logger.Debug("trace complete",
		zap.Int("reversals", len(levels)),
		zap.Int("points", len(tr.path)),
		zap.Int("cycles", tr.cycles.Len()))

	return &Result{Path: tr.path, Cycles: tr.cycles.Cycles()}, nil
}

// trace is the mutable state of a single Trace call
type trace struct {
	*Tracer

	levels []float64
	path   []PathPoint
	stack  Stack
	cycles *CycleSet

	maxVal float64 // largest |level| reached so far
	dir    float64 // +1 or -1, direction of the current leg
}

// reverse traces a leg of size delta ending at level, closing every inner loop it consumes
func (tr *trace) reverse(level, delta float64) {
	position := 0.0

	for tr.stack.Len() > 1 && delta+position >= tr.stack.Top().Delta {
		top := tr.stack.Top()
		tr.leg(top, position, top.Delta)

		delta += position - top.Delta
		position = tr.stack.Below().Delta

		closing := tr.stack.Pop()
		opening := tr.stack.Pop()
		tr.close(level, opening, closing)
	}

	if tr.stack.Len() > 0 {
		top := tr.stack.Top()
		end := delta + position
		tr.leg(top, position, end)
		tr.stack.Push(Coordinate{
			Strain: top.Strain + tr.curve.StrainAt(tr.dir*end, cyclic.Massing),
			Stress: top.Stress + tr.dir*end,
			Delta:  end,
		})
	}
}

// overload continues along the skeleton curve from |current| to |level| and resets the memory
func (tr *trace) overload(level, current float64) {
	for s := math.Abs(current); s <= math.Abs(level); s++ {
		tr.path = append(tr.path, PathPoint{
			Strain: tr.curve.StrainAt(s*tr.dir, cyclic.Monotonic),
			Stress: s * tr.dir,
		})
	}

	tr.stack.Reset(Coordinate{
		Strain: tr.curve.StrainAt(level, cyclic.Monotonic),
		Stress: level,
		Delta:  math.Inf(1),
	})

	tr.logger.Debug("overload", zap.Float64("level", level), zap.Float64("previous_max", tr.maxVal))
	tr.maxVal = math.Abs(level)
}

// leg appends Massing-branch points measured from anchor a, for unit steps s in [from, to]
func (tr *trace) leg(a Coordinate, from, to float64) {
	for s := from; s <= to; s++ {
		tr.path = append(tr.path, PathPoint{
			Strain: a.Strain + tr.curve.StrainAt(tr.dir*s, cyclic.Massing),
			Stress: a.Stress + tr.dir*s,
		})
	}
}

// close records the loop spanned by the popped anchors
func (tr *trace) close(level float64, opening, closing Coordinate) {
	var c Cycle
	switch tr.Pairing {
	case Anchors:
		c = Cycle{First: opening.Stress, Second: closing.Stress}
	default:
		j := 1
		for ; j < len(tr.levels); j++ {
			if tr.levels[j] == level {
				break
			}
		}
		c = Cycle{First: tr.levels[j-1], Second: tr.levels[j]}
	}

	if tr.cycles.Add(c) {
		tr.logger.Debug("cycle closed", zap.Float64("first", c.First), zap.Float64("second", c.Second))
	}
}
