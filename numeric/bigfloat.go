// Package numeric: fixed-width binary floating-point instantiation of the
// arithmetic contract, backed by math/big at a configurable mantissa width.

package numeric

import "math/big"

const (
	// DefaultBigFloatPrec is the default mantissa precision in bits
	// (113 bits — the IEEE-754 binary128 significand width).
	DefaultBigFloatPrec = 113

	// wideBigFloatMargin is the extra mantissa width of the accumulator
	// arithmetic: 10 significant decimal digits ≈ 34 bits.
	wideBigFloatMargin = 34
)

// panicBigFloatPrecInvalid flags a nonsensical precision (programmer error).
const panicBigFloatPrecInvalid = "numeric: NewBigFloat: prec must be positive"

// BigFloat implements Arithmetic[*big.Float] at a fixed mantissa precision.
// Every operation allocates a fresh *big.Float rounded to that precision;
// operands are never mutated.
type BigFloat struct {
	prec uint // mantissa width in bits, > 0
}

// NewBigFloat returns a big.Float arithmetic at the given mantissa precision
// in bits. Panics on prec == 0 (programmer error, mirroring option
// constructors elsewhere in the module).
// Complexity: O(1).
func NewBigFloat(prec uint) BigFloat {
	if prec == 0 {
		panic(panicBigFloatPrecInvalid)
	}

	return BigFloat{prec: prec}
}

// Prec reports the working mantissa precision in bits.
func (f BigFloat) Prec() uint { return f.prec }

// out allocates a result operand at working precision.
func (f BigFloat) out() *big.Float { return new(big.Float).SetPrec(f.prec) }

// Add returns a+b rounded to working precision.
func (f BigFloat) Add(a, b *big.Float) *big.Float { return f.out().Add(a, b) }

// Sub returns a-b rounded to working precision.
func (f BigFloat) Sub(a, b *big.Float) *big.Float { return f.out().Sub(a, b) }

// Mul returns a*b rounded to working precision.
func (f BigFloat) Mul(a, b *big.Float) *big.Float { return f.out().Mul(a, b) }

// Div returns a/b rounded to working precision.
func (f BigFloat) Div(a, b *big.Float) *big.Float { return f.out().Quo(a, b) }

// Abs returns |a|.
func (f BigFloat) Abs(a *big.Float) *big.Float { return f.out().Abs(a) }

// Neg returns -a.
func (f BigFloat) Neg(a *big.Float) *big.Float { return f.out().Neg(a) }

// Cmp three-way compares a and b.
func (BigFloat) Cmp(a, b *big.Float) int { return a.Cmp(b) }

// Sign reports the sign of a.
func (BigFloat) Sign(a *big.Float) int { return a.Sign() }

// Sqrt returns √a rounded to working precision; ok=false for negative a.
func (f BigFloat) Sqrt(a *big.Float) (*big.Float, bool) {
	if a.Sign() < 0 {
		return f.Zero(), false
	}

	return f.out().Sqrt(a), true
}

// Approx returns the nearest float64 (±Inf on overflow) for threshold tests.
func (BigFloat) Approx(a *big.Float) float64 {
	v, _ := a.Float64()

	return v
}

// Round re-rounds a (e.g. a Wide accumulator sum) to working precision.
func (f BigFloat) Round(a *big.Float) *big.Float { return f.out().Set(a) }

// FromFloat64 converts a finite float64 at working precision.
func (f BigFloat) FromFloat64(v float64) *big.Float { return f.out().SetFloat64(v) }

// Zero returns a fresh 0.
func (f BigFloat) Zero() *big.Float { return f.out() }

// One returns a fresh 1.
func (f BigFloat) One() *big.Float { return f.out().SetInt64(1) }

// Clone returns an independent copy of a at a's own precision.
func (BigFloat) Clone(a *big.Float) *big.Float {
	return new(big.Float).SetPrec(a.Prec()).Set(a)
}

// Wide returns the accumulator arithmetic: working precision + 34 bits
// (≈ 10 significant decimal digits of safety margin).
func (f BigFloat) Wide() Arithmetic[*big.Float] {
	return BigFloat{prec: f.prec + wideBigFloatMargin}
}
