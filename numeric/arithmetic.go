// Package numeric: the arithmetic contract.
//
// Purpose:
//   - Declare the single interface every solver kernel is generic over.
//   - Pin down rounding, aliasing and widening semantics once, here.
//
// Notes:
//   - Implementations with pointer-backed values (BigFloat, Decimal) MUST
//     allocate fresh results and never mutate operands; Clone MUST return an
//     independent value. Value-backed implementations (Float64) satisfy both
//     for free.
//   - Approx is a diagnostic conversion for threshold tests only ("is this
//     effectively zero"); it is never fed back into the computation.

package numeric

// Arithmetic is the numeric operation contract of the solver engine.
// All results are rounded to the instantiation's working precision.
//
// Behavior highlights:
//   - Operands are never mutated; results never alias operands.
//   - Cmp returns -1/0/+1 for a<b / a==b / a>b; Sign likewise against zero.
//   - Sqrt reports ok=false instead of producing NaN on a negative or
//     otherwise unrepresentable argument.
//   - Wide returns an arithmetic of the same representation at the working
//     precision plus a fixed safety margin (reference: +10 significant
//     decimal digits), used only for cancellation-prone summation.
type Arithmetic[T any] interface {
	// Add returns a+b rounded to working precision.
	Add(a, b T) T
	// Sub returns a-b rounded to working precision.
	Sub(a, b T) T
	// Mul returns a*b rounded to working precision.
	Mul(a, b T) T
	// Div returns a/b rounded to working precision. Division by an exact
	// zero is a programmer error; kernels guard pivots before dividing.
	Div(a, b T) T
	// Abs returns |a|.
	Abs(a T) T
	// Neg returns -a.
	Neg(a T) T
	// Cmp three-way compares a and b: -1 if a<b, 0 if a==b, +1 if a>b.
	Cmp(a, b T) int
	// Sign reports -1/0/+1 for a<0 / a==0 / a>0.
	Sign(a T) int
	// Sqrt returns the square root of a rounded to working precision.
	// ok is false when a is negative or the result is not finite.
	Sqrt(a T) (r T, ok bool)
	// Approx converts a to a cheap float64 approximation for threshold
	// tests and diagnostics only.
	Approx(a T) float64
	// Round re-rounds a (possibly carrying excess precision, e.g. a Wide
	// accumulator sum) to the working precision.
	Round(a T) T
	// FromFloat64 converts a finite float64 into the representation.
	FromFloat64(v float64) T
	// Zero returns the additive identity.
	Zero() T
	// One returns the multiplicative identity.
	One() T
	// Clone returns an independent copy of a.
	Clone(a T) T
	// Wide returns the accumulator-precision variant of this arithmetic.
	Wide() Arithmetic[T]
}
