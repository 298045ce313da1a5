// Package numeric: compensated (Kahan) summation over any Arithmetic.
//
// Purpose:
//   - Provide the single accumulator used by the solver for dot products,
//     row-scale sums, residuals and norms.
//
// Notes:
//   - Callers construct the accumulator over a Wide() arithmetic; the
//     compensation term then recovers digits lost to cancellation even at
//     the widened precision.

package numeric

// Accumulator performs compensated (Kahan) summation in the precision of
// the arithmetic it was built with. The zero value is not usable; construct
// via NewAccumulator.
//
// Determinism:
//   - Purely sequential; identical inputs in identical order yield
//     identical sums.
//
// Complexity:
//   - O(1) per Add; O(1) space.
type Accumulator[T any] struct {
	ops  Arithmetic[T]
	sum  T // running sum
	comp T // running compensation (lost low-order bits)
}

// NewAccumulator returns a zeroed compensated accumulator over ops.
// Pass a Wide() arithmetic for cancellation-prone sums.
func NewAccumulator[T any](ops Arithmetic[T]) *Accumulator[T] {
	return &Accumulator[T]{ops: ops, sum: ops.Zero(), comp: ops.Zero()}
}

// Add folds v into the running sum with Kahan compensation.
func (a *Accumulator[T]) Add(v T) {
	y := a.ops.Sub(v, a.comp)
	t := a.ops.Add(a.sum, y)
	// (t - sum) - y recovers exactly what the addition rounded away.
	a.comp = a.ops.Sub(a.ops.Sub(t, a.sum), y)
	a.sum = t
}

// AddProduct folds x*y into the running sum (product taken at the
// accumulator's precision).
func (a *Accumulator[T]) AddProduct(x, y T) { a.Add(a.ops.Mul(x, y)) }

// Sub folds -v into the running sum.
func (a *Accumulator[T]) Sub(v T) { a.Add(a.ops.Neg(v)) }

// Sum returns the current compensated total as a fresh value. The running
// compensation holds the bits the last additions rounded away, so the best
// estimate is sum - comp, not sum alone.
func (a *Accumulator[T]) Sum() T { return a.ops.Sub(a.sum, a.comp) }

// Reset clears the accumulator for reuse.
func (a *Accumulator[T]) Reset() {
	a.sum = a.ops.Zero()
	a.comp = a.ops.Zero()
}
