// Package solver: derived quantities built from the decomposition —
// determinant, inverse, infinity norm and condition number.

package solver

import (
	"errors"
	"math"

	"github.com/katalvlaran/densolve/numeric"
)

// Determinant returns det(A) computed from the cached LU factors:
// parity × Πdiag(U) ÷ Πscales (the per-row division keeps intermediate
// magnitudes in range). A poisoned LU path yields exactly zero rather than
// an error — a zero pivot IS a zero determinant.
//
// Errors: none for singular matrices; only usage errors propagate.
//
// Complexity: O(n^3) on the first decomposition, O(n) afterwards.
func (s *Solver[T]) Determinant() (T, error) {
	ops := s.ops
	if err := s.ensureLU(); err != nil {
		if errors.Is(err, ErrNonInvertible) {
			s.lastCode = CodeOK

			return ops.Zero(), nil
		}

		return ops.Zero(), solverErrorf(opDeterminant, err)
	}

	det := ops.One()
	if s.lu.parity < 0 {
		det = ops.Neg(det)
	}
	// diag(U) carries the row scales of the permuted rows; dividing each
	// factor by scale[perm[i]] removes them exactly once.
	for i := 0; i < s.n; i++ {
		det = ops.Mul(det, s.lu.w.at(i, i))
		det = ops.Div(det, s.lu.scale[s.lu.perm[i]])
	}
	s.lastCode = CodeOK

	return det, nil
}

// Inverse returns A⁻¹ as a fresh grid, solving A·X = I on the cached LU
// factors. The inverse is cached after the first computation; the cache and
// every returned grid are independent copies, never aliases.
//
// Errors:
//   - ErrNonInvertible — the LU path is (or becomes) poisoned.
//
// Complexity: O(n^3) first call, O(n^2) per call afterwards (copy-out).
func (s *Solver[T]) Inverse() ([][]T, error) {
	inv, err := s.inverseDense()
	if err != nil {
		s.classify(err)

		return nil, solverErrorf(opInverse, err)
	}
	s.lastCode = CodeOK

	return inv.grid(s.ops), nil
}

// inverseDense computes and caches the inverse without touching the last
// code (top-level facades own code bookkeeping).
func (s *Solver[T]) inverseDense() (*dense[T], error) {
	if s.inv != nil {
		return s.inv, nil
	}
	if err := s.ensureLU(); err != nil {
		return nil, err
	}
	s.inv = s.luSolveDense(newIdentity(s.ops, s.n))

	return s.inv, nil
}

// Norm returns the infinity norm of the original matrix: the maximum over
// rows of the accumulator-precision compensated sum of absolute values.
//
// Complexity: O(n^2).
func (s *Solver[T]) Norm() (T, error) {
	nrm := s.gridNorm(s.a)
	s.lastCode = CodeOK

	return nrm, nil
}

// gridNorm computes the infinity norm of any grid at working precision.
func (s *Solver[T]) gridNorm(m *dense[T]) T {
	ops, wide := s.ops, s.wide
	best := ops.Zero()
	var i, j int
	var sum T
	for i = 0; i < m.r; i++ {
		acc := numeric.NewAccumulator(wide)
		for j = 0; j < m.c; j++ {
			acc.Add(ops.Abs(m.at(i, j)))
		}
		sum = ops.Round(acc.Sum())
		if i == 0 || ops.Cmp(sum, best) > 0 {
			best = sum
		}
	}

	return best
}

// ConditionNumber returns ‖A‖∞ · ‖A⁻¹‖∞ as a float64 diagnostic. A matrix
// marked non-invertible (or whose inversion fails here) yields +Inf rather
// than an error.
//
// Complexity: O(n^3) if the inverse is not yet cached, O(n^2) afterwards.
func (s *Solver[T]) ConditionNumber() (float64, error) {
	inv, err := s.inverseDense()
	if err != nil {
		if errors.Is(err, ErrNonInvertible) {
			s.lastCode = CodeOK

			return math.Inf(1), nil
		}

		return 0, solverErrorf(opConditionNumber, err)
	}
	s.lastCode = CodeOK

	return s.ops.Approx(s.gridNorm(s.a)) * s.ops.Approx(s.gridNorm(inv)), nil
}
