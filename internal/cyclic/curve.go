// Package cyclic evaluates the Ramberg-Osgood cyclic stress-strain curve.
//
// Strains are reported multiplied by StrainScale (percent strain).
package cyclic

import (
	"math"

	"github.com/alexiusacademia/strainlife/internal/material"
	"gonum.org/v1/gonum/floats"
)

// StrainScale converts the elastic + plastic strain sum to reported units
const StrainScale = 100.0

// Branch selects the monotonic curve or the doubled (Massing) loop branch
type Branch int

const (
	Monotonic Branch = 1 // skeleton curve, first loading and overloads
	Massing   Branch = 2 // reversal legs inside a hysteresis loop
)

// Curve is the cyclic stress-strain relation of one material
type Curve struct {
	E float64 // elastic modulus (MPa)
	H float64 // cyclic strength coefficient H' (MPa)
	N float64 // cyclic strain hardening exponent n'
}

// New builds the curve from the material constants
func New(m material.Model) Curve {
	return Curve{
		E: m.ElasticModulus,
		H: m.CyclicStrengthCoefficient,
		N: m.CyclicHardeningExponent,
	}
}

// StrainAt returns the scaled strain for a stress on the given branch.
// The function is odd: StrainAt(-s, b) == -StrainAt(s, b).
func (c Curve) StrainAt(stress float64, b Branch) float64 {
	k := float64(b)
	s := math.Abs(stress)

	// ε = σ/E + k(σ/(kH'))^(1/n')
	strain := StrainScale * (s/c.E + k*math.Pow(s/(k*c.H), 1/c.N))
	if stress < 0 {
		return -strain
	}
	return strain
}

// Point is one (strain, stress) sample of a curve
type Point struct {
	Strain float64
	Stress float64
}

// IntegerSteps returns 0, 1, 2, ... up to floor(limit)
func IntegerSteps(limit float64) []float64 {
	n := int(math.Floor(limit))
	if n < 1 {
		return []float64{0}
	}
	return floats.Span(make([]float64, n+1), 0, float64(n))
}

// Sweep samples the monotonic branch at every integer stress from 0 to limit
func (c Curve) Sweep(limit float64) []Point {
	stresses := IntegerSteps(limit)
	points := make([]Point, len(stresses))
	for i, s := range stresses {
		points[i] = Point{Strain: c.StrainAt(s, Monotonic), Stress: s}
	}
	return points
}
