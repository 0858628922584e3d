// Package neuber finds the local notch stress for a nominal stress with
// Neuber's rule:
//
//	(S·kt)² / E = σ·ε(σ)
//
// where ε is the monotonic branch of the cyclic stress-strain curve.
package neuber

import (
	"errors"
	"fmt"
	"math"

	"github.com/alexiusacademia/strainlife/internal/cyclic"
)

const (
	DefaultTolerance     = 1e-7  // absolute, on the energy residual
	DefaultMaxIterations = 5000  // bracket expansion + bisection steps
	DefaultInitialStep   = 100.0 // first upper bracket (MPa)
)

// ErrNoConvergence is returned when the iteration cap is reached.
var ErrNoConvergence = errors.New("neuber: solver did not converge")

// ConvergenceError carries the state of a failed solve
type ConvergenceError struct {
	Nominal    float64
	Iterations int
	Residual   float64
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("%v: nominal stress %.4f, %d iterations, residual %.3e",
		ErrNoConvergence, e.Nominal, e.Iterations, e.Residual)
}

func (e *ConvergenceError) Unwrap() error {
	return ErrNoConvergence
}

// Solver relates nominal stress to local notch stress
type Solver struct {
	Curve cyclic.Curve
	Kt    float64 // elastic stress-concentration factor

	Tolerance     float64
	MaxIterations int
	InitialStep   float64
}

// New creates a solver with default numerical parameters
func New(curve cyclic.Curve, kt float64) *Solver {
	return &Solver{
		Curve:         curve,
		Kt:            kt,
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
		InitialStep:   DefaultInitialStep,
	}
}

// Residual is σ·ε(σ) − (S·kt)²/E in unscaled strain units, evaluated on magnitudes.
// It is negative below the solution and positive above it.
func (s *Solver) Residual(nominal, local float64) float64 {
	sn, g := math.Abs(nominal), math.Abs(local)
	target := (sn * s.Kt) * (sn * s.Kt) / s.Curve.E
	return g*s.Curve.StrainAt(g, cyclic.Monotonic)/cyclic.StrainScale - target
}

// LocalStress returns the local stress satisfying Neuber's rule for the
// nominal stress. The sign of the result follows the sign of the input.
func (s *Solver) LocalStress(nominal float64) (float64, error) {
	if s.MaxIterations <= 0 || s.Tolerance <= 0 || s.InitialStep <= 0 {
		return 0, fmt.Errorf("neuber: invalid parameters: tolerance=%g, max iterations=%d, initial step=%g",
			s.Tolerance, s.MaxIterations, s.InitialStep)
	}
	if nominal == 0 {
		return 0, nil
	}

	f := func(g float64) float64 { return s.Residual(nominal, g) }

	// Expand the upper bracket until the residual changes sign
	lo, hi := 0.0, s.InitialStep
	iter := 0
	for f(hi) < 0 {
		lo = hi
		hi *= 2
		iter++
		if iter >= s.MaxIterations {
			return 0, &ConvergenceError{Nominal: nominal, Iterations: iter, Residual: f(hi)}
		}
	}

	// Bisect the bracket
	var r float64
	for ; iter < s.MaxIterations; iter++ {
		mid := lo + (hi-lo)/2
		r = f(mid)
		if math.Abs(r) < s.Tolerance {
			return math.Copysign(mid, nominal), nil
		}
		if mid == lo || mid == hi {
			// bracket collapsed to adjacent floats
			break
		}
		if r < 0 {
			lo = mid
		} else {
			hi = mid
		}
	}

	return 0, &ConvergenceError{Nominal: nominal, Iterations: iter, Residual: r}
}

// Sample is one point of the Neuber sweep
type Sample struct {
	Nominal float64 // S
	Local   float64 // σ
	Strain  float64 // ε(σ), scaled
}

// Sweep solves every integer nominal stress from 0 to limit
func (s *Solver) Sweep(limit float64) ([]Sample, error) {
	nominals := cyclic.IntegerSteps(limit)
	samples := make([]Sample, len(nominals))
	for i, sn := range nominals {
		local, err := s.LocalStress(sn)
		if err != nil {
			return nil, err
		}
		samples[i] = Sample{
			Nominal: sn,
			Local:   local,
			Strain:  s.Curve.StrainAt(local, cyclic.Monotonic),
		}
	}
	return samples, nil
}
