// Package numeric: arbitrary-precision decimal instantiation of the
// arithmetic contract, backed by gopkg.in/inf.v0 at a configurable scale.

package numeric

import (
	"math/big"
	"strconv"

	inf "gopkg.in/inf.v0"
)

const (
	// DefaultDecimalScale is the default number of decimal digits kept after
	// the point by the working arithmetic.
	DefaultDecimalScale inf.Scale = 34

	// wideDecimalMargin is the extra scale of the accumulator arithmetic
	// (+10 significant decimal digits).
	wideDecimalMargin inf.Scale = 10
)

// Panic messages (programmer errors; no magic strings at call sites).
const (
	panicDecimalScaleInvalid = "numeric: NewDecimal: scale must be positive"
	panicDecimalNotFinite    = "numeric: Decimal.FromFloat64: value must be finite"
)

// ten is the shared radix constant for scale shifts.
var ten = big.NewInt(10)

// Decimal implements Arithmetic[*inf.Dec] at a fixed decimal scale: every
// operation rounds its result to `scale` digits after the point using
// round-half-even. Operands are never mutated; results are fresh values.
type Decimal struct {
	scale inf.Scale // working scale (digits after the point), > 0
}

// NewDecimal returns a decimal arithmetic keeping `scale` digits after the
// point. Panics on scale <= 0 (programmer error).
// Complexity: O(1).
func NewDecimal(scale inf.Scale) Decimal {
	if scale <= 0 {
		panic(panicDecimalScaleInvalid)
	}

	return Decimal{scale: scale}
}

// Scale reports the working scale in decimal digits.
func (d Decimal) Scale() inf.Scale { return d.scale }

// round rounds z in place to the working scale, half-even.
func (d Decimal) round(z *inf.Dec) *inf.Dec {
	return z.Round(z, d.scale, inf.RoundHalfEven)
}

// Add returns a+b rounded to the working scale.
func (d Decimal) Add(a, b *inf.Dec) *inf.Dec { return d.round(new(inf.Dec).Add(a, b)) }

// Sub returns a-b rounded to the working scale.
func (d Decimal) Sub(a, b *inf.Dec) *inf.Dec { return d.round(new(inf.Dec).Sub(a, b)) }

// Mul returns a*b rounded to the working scale.
func (d Decimal) Mul(a, b *inf.Dec) *inf.Dec { return d.round(new(inf.Dec).Mul(a, b)) }

// Div returns a/b rounded (half-even) to the working scale. Division by an
// exact zero panics inside inf.Dec; kernels guard pivots before dividing.
func (d Decimal) Div(a, b *inf.Dec) *inf.Dec {
	return new(inf.Dec).QuoRound(a, b, d.scale, inf.RoundHalfEven)
}

// Abs returns |a| at a's own scale.
func (Decimal) Abs(a *inf.Dec) *inf.Dec { return new(inf.Dec).Abs(a) }

// Neg returns -a at a's own scale.
func (Decimal) Neg(a *inf.Dec) *inf.Dec { return new(inf.Dec).Neg(a) }

// Cmp three-way compares a and b (scale-independent value comparison).
func (Decimal) Cmp(a, b *inf.Dec) int { return a.Cmp(b) }

// Sign reports the sign of a.
func (Decimal) Sign(a *inf.Dec) int { return a.Sign() }

// Sqrt returns √a truncated to the working scale; ok=false for negative a.
// The root is taken exactly on integers: with t the working scale and a
// rescaled so its scale s satisfies s ≤ 2t, the result is
// ⌊√(unscaled(a)·10^(2t−s))⌋ · 10^(−t).
func (d Decimal) Sqrt(a *inf.Dec) (*inf.Dec, bool) {
	if a.Sign() < 0 {
		return new(inf.Dec), false
	}
	x := a
	if x.Scale() > 2*d.scale {
		x = new(inf.Dec).Round(a, 2*d.scale, inf.RoundHalfEven)
	}
	// shift ≥ 0 by the rescale above
	shift := int64(2*d.scale) - int64(x.Scale())
	u := new(big.Int).Set(x.UnscaledBig())
	if shift > 0 {
		u.Mul(u, new(big.Int).Exp(ten, big.NewInt(shift), nil))
	}
	r := new(big.Int).Sqrt(u)

	return new(inf.Dec).SetUnscaledBig(r).SetScale(d.scale), true
}

// Approx parses a into a float64 (±Inf on overflow) for threshold tests.
func (Decimal) Approx(a *inf.Dec) float64 {
	v, _ := strconv.ParseFloat(a.String(), 64)

	return v
}

// Round re-rounds a (e.g. a Wide accumulator sum) to the working scale.
func (d Decimal) Round(a *inf.Dec) *inf.Dec {
	return new(inf.Dec).Round(a, d.scale, inf.RoundHalfEven)
}

// FromFloat64 converts a finite float64 exactly (shortest decimal form),
// then rounds to the working scale. Panics on NaN/±Inf (programmer error:
// the wrapper layer owns finite-value validation).
func (d Decimal) FromFloat64(v float64) *inf.Dec {
	z, ok := new(inf.Dec).SetString(strconv.FormatFloat(v, 'f', -1, 64))
	if !ok {
		panic(panicDecimalNotFinite)
	}

	return d.round(z)
}

// Zero returns a fresh 0.
func (Decimal) Zero() *inf.Dec { return new(inf.Dec) }

// One returns a fresh 1.
func (Decimal) One() *inf.Dec { return inf.NewDec(1, 0) }

// Clone returns an independent copy of a.
func (Decimal) Clone(a *inf.Dec) *inf.Dec { return new(inf.Dec).Set(a) }

// Wide returns the accumulator arithmetic: working scale + 10 digits.
func (d Decimal) Wide() Arithmetic[*inf.Dec] {
	return Decimal{scale: d.scale + wideDecimalMargin}
}
