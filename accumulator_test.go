package geodesic

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccumulator(t *testing.T) {
	var a Accumulator
	naive := 0.0
	a.Add(1e16)
	naive += 1e16
	for i := 0; i < 10; i++ {
		a.Add(1)
		naive++
	}
	a.Add(-1e16)
	naive -= 1e16
	assert.Equal(t, 10.0, a.Value())
	assert.NotEqual(t, 10.0, naive)

	assert.Equal(t, 15.0, a.Sum(5))
	assert.Equal(t, 10.0, a.Value())

	a.Negate()
	assert.Equal(t, -10.0, a.Value())

	a.Reset()
	assert.Zero(t, a.Value())

	a.Add(370)
	a.Remainder(360)
	assert.Equal(t, 10.0, a.Value())
	a.Add(-200)
	a.Remainder(360)
	assert.Equal(t, 170.0, a.Value())
}

func TestAccumulatorErrorTerm(t *testing.T) {
	var a Accumulator
	a.Add(1)
	a.Add(1e-20)
	assert.Equal(t, 1.0, a.Value())
	a.Add(-1)
	assert.Equal(t, 1e-20, a.Value())
}

func TestAccumulatorDrift(t *testing.T) {
	var a Accumulator
	naive := 0.0
	for i := 0; i < 100000; i++ {
		a.Add(0.1)
		naive += 0.1
	}
	assert.Equal(t, 10000.0, a.Value())
	assert.Greater(t, math.Abs(naive-10000), 1e-10)
}
