package hysteresis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStack_PushPopTop(t *testing.T) {
	var s Stack
	s.Reset(Coordinate{Stress: -300, Delta: math.Inf(1)})
	s.Push(Coordinate{Stress: 200, Delta: 500})
	s.Push(Coordinate{Stress: 0, Delta: 200})

	require.Equal(t, 3, s.Len())
	assert.True(t, s.Decreasing())
	assert.Equal(t, 0.0, s.Top().Stress)
	assert.Equal(t, 200.0, s.Below().Stress)

	assert.Equal(t, 200.0, s.Pop().Delta)
	assert.Equal(t, 500.0, s.Pop().Delta)
	assert.Equal(t, 1, s.Len())
	assert.True(t, math.IsInf(s.Top().Delta, 1))
}

func TestStack_Reset(t *testing.T) {
	var s Stack
	s.Push(Coordinate{Delta: 10})
	s.Push(Coordinate{Delta: 5})
	s.Reset(Coordinate{Stress: 400, Delta: math.Inf(1)})

	require.Equal(t, 1, s.Len())
	assert.Equal(t, 400.0, s.Top().Stress)
}

func TestStack_Decreasing(t *testing.T) {
	var s Stack
	s.Push(Coordinate{Delta: math.Inf(1)})
	s.Push(Coordinate{Delta: 300})
	s.Push(Coordinate{Delta: 300})
	assert.False(t, s.Decreasing())
}

func TestTrace_StackStaysDecreasing(t *testing.T) {
	tr := &trace{
		Tracer: &Tracer{curve: testCurve, Pairing: FirstMatch, logger: nopLogger},
		cycles: NewCycleSet(),
	}
	tr.levels = []float64{400, -350, 300, -250, 200, -150, 100, -50}
	tr.dir = 1

	for i, level := range tr.levels {
		current := level
		over := false
		if math.Abs(level) >= tr.maxVal {
			current = tr.dir * tr.maxVal
			over = true
		}
		if i > 0 {
			tr.reverse(level, math.Abs(current-tr.levels[i-1]))
		}
		if over {
			tr.overload(level, current)
		}
		tr.dir = -tr.dir

		require.True(t, tr.stack.Decreasing(), "after reversal %d", i)
	}

	// a converging history keeps every reversal open
	assert.Equal(t, 8, tr.stack.Len())
	assert.Equal(t, 0, tr.cycles.Len())
}
