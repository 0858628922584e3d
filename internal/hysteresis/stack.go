package hysteresis

// Coordinate is an anchor of the loop memory: a turning point on the traced
// path plus the stress distance from that anchor to its pending closure
type Coordinate struct {
	Strain float64
	Stress float64
	Delta  float64
}

// Stack is the LIFO memory of open loops since the last overload.
// Delta decreases strictly from bottom to top; the bottom entry is the last
// overload point with Delta = +Inf.
type Stack struct {
	items []Coordinate
}

// Len returns the number of open anchors
func (s *Stack) Len() int {
	return len(s.items)
}

// Push adds an anchor on top
func (s *Stack) Push(c Coordinate) {
	s.items = append(s.items, c)
}

// Top returns the innermost anchor. It panics on an empty stack.
func (s *Stack) Top() Coordinate {
	return s.items[len(s.items)-1]
}

// Below returns the anchor under the top. It panics when Len() < 2.
func (s *Stack) Below() Coordinate {
	return s.items[len(s.items)-2]
}

// Pop removes and returns the top anchor. It panics on an empty stack.
func (s *Stack) Pop() Coordinate {
	top := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return top
}

// Reset discards every anchor and starts over from c
func (s *Stack) Reset(c Coordinate) {
	s.items = append(s.items[:0], c)
}

// Decreasing reports whether Delta strictly decreases from bottom to top
func (s *Stack) Decreasing() bool {
	for i := 1; i < len(s.items); i++ {
		if s.items[i].Delta >= s.items[i-1].Delta {
			return false
		}
	}
	return true
}
