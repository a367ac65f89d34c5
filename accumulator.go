package geodesic

import "math"

// Accumulator sums a series of float64 values with roughly twice the
// working precision, keeping the rounding error of the running sum in a
// second term. The zero value is an empty sum.
type Accumulator struct {
	s, t float64
}

// Add y to the accumulator.
func (a *Accumulator) Add(y float64) {
	z, u := twoSum(y, a.t)
	a.s, a.t = twoSum(z, a.s)
	// The result is s + t + u exactly. If s became zero, t is too, and u
	// goes into s; otherwise u joins the error term.
	if a.s == 0 {
		a.s = u
	} else {
		a.t += u
	}
}

// Sum returns the value of the accumulator plus y without changing it.
func (a Accumulator) Sum(y float64) float64 {
	b := a
	b.Add(y)
	return b.s
}

// Value returns the rounded sum.
func (a Accumulator) Value() float64 {
	return a.s
}

// Negate the sum.
func (a *Accumulator) Negate() {
	a.s = -a.s
	a.t = -a.t
}

// Remainder reduces the sum to its IEEE remainder modulo y, in [-y/2, y/2].
func (a *Accumulator) Remainder(y float64) {
	a.s = math.Remainder(a.s, y)
	a.Add(0)
}

// Reset empties the accumulator.
func (a *Accumulator) Reset() {
	a.s, a.t = 0, 0
}
