package hysteresis

import "math"

// Cycle is one closed hysteresis loop identified by its two turning values.
// Equality is ordered: {a, b} and {b, a} are different cycles.
type Cycle struct {
	First  float64
	Second float64
}

// Range is the stress range of the loop
func (c Cycle) Range() float64 {
	return math.Abs(c.First - c.Second)
}

// Amplitude is half the stress range
func (c Cycle) Amplitude() float64 {
	return c.Range() / 2
}

// Mean is the mean stress of the loop
func (c Cycle) Mean() float64 {
	return (c.First + c.Second) / 2
}

// CycleSet holds distinct cycles in the order they were first closed
type CycleSet struct {
	seen  map[Cycle]struct{}
	order []Cycle
}

// NewCycleSet returns an empty set
func NewCycleSet() *CycleSet {
	return &CycleSet{seen: make(map[Cycle]struct{})}
}

// Add inserts c and reports whether it was not already present
func (s *CycleSet) Add(c Cycle) bool {
	if _, ok := s.seen[c]; ok {
		return false
	}
	s.seen[c] = struct{}{}
	s.order = append(s.order, c)
	return true
}

// Contains reports whether c has been recorded
func (s *CycleSet) Contains(c Cycle) bool {
	_, ok := s.seen[c]
	return ok
}

// Len returns the number of distinct cycles
func (s *CycleSet) Len() int {
	return len(s.order)
}

// Cycles returns a copy of the cycles in insertion order
func (s *CycleSet) Cycles() []Cycle {
	out := make([]Cycle, len(s.order))
	copy(out, s.order)
	return out
}
