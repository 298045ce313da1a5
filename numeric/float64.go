// Package numeric: native float64 instantiation of the arithmetic contract.

package numeric

import "math"

// Float64 implements Arithmetic[float64] over IEEE-754 double precision.
// The zero value is ready to use. Wide returns the receiver itself: the
// representation has no wider sibling, and the compensated Accumulator
// supplies the extra effective accuracy at this width.
type Float64 struct{}

// NewFloat64 returns the float64 arithmetic.
// Complexity: O(1).
func NewFloat64() Float64 { return Float64{} }

// Add returns a+b.
func (Float64) Add(a, b float64) float64 { return a + b }

// Sub returns a-b.
func (Float64) Sub(a, b float64) float64 { return a - b }

// Mul returns a*b.
func (Float64) Mul(a, b float64) float64 { return a * b }

// Div returns a/b.
func (Float64) Div(a, b float64) float64 { return a / b }

// Abs returns |a|.
func (Float64) Abs(a float64) float64 { return math.Abs(a) }

// Neg returns -a.
func (Float64) Neg(a float64) float64 { return -a }

// Cmp three-way compares a and b.
func (Float64) Cmp(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return +1
	default:
		return 0
	}
}

// Sign reports the sign of a.
func (f Float64) Sign(a float64) int { return f.Cmp(a, 0) }

// Sqrt returns √a; ok=false on a negative or non-finite result.
func (Float64) Sqrt(a float64) (float64, bool) {
	if a < 0 {
		return 0, false
	}
	r := math.Sqrt(a)
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0, false
	}

	return r, true
}

// Approx returns a unchanged (the representation is its own approximation).
func (Float64) Approx(a float64) float64 { return a }

// Round returns a unchanged (no excess precision exists at this width).
func (Float64) Round(a float64) float64 { return a }

// FromFloat64 returns v unchanged.
func (Float64) FromFloat64(v float64) float64 { return v }

// Zero returns 0.
func (Float64) Zero() float64 { return 0 }

// One returns 1.
func (Float64) One() float64 { return 1 }

// Clone returns a (float64 is a value type; every copy is independent).
func (Float64) Clone(a float64) float64 { return a }

// Wide returns the receiver: see the type comment.
func (f Float64) Wide() Arithmetic[float64] { return f }
