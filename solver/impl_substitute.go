// Package solver: triangular substitution kernels shared by both
// decomposition paths.
//
// Every dot product runs through the compensated accumulator at the widened
// precision: substitution subtracts nearly equal quantities, and rounding at
// the nominal precision there would mask genuine refinement progress.

package solver

import "github.com/katalvlaran/densolve/numeric"

// luSubstitute solves (L·U)·x = bp for a right-hand side already permuted
// and scaled to the cached LU factors: forward substitution through the
// unit-lower-triangular part (implicit unit diagonal), then backward
// substitution through the upper part including the diagonal division.
//
// Complexity: O(n^2).
func (s *Solver[T]) luSubstitute(bp []T) []T {
	ops, wide, w, n := s.ops, s.wide, s.lu.w, s.n
	var i, k int

	// Forward: y[i] = bp[i] - Σ_{k<i} L[i,k]·y[k]; diag(L) is implicitly 1.
	y := make([]T, n)
	for i = 0; i < n; i++ {
		acc := numeric.NewAccumulator(wide)
		acc.Add(bp[i])
		for k = 0; k < i; k++ {
			acc.Sub(wide.Mul(w.at(i, k), y[k]))
		}
		y[i] = ops.Round(acc.Sum())
	}

	// Backward: x[i] = (y[i] - Σ_{k>i} U[i,k]·x[k]) / U[i,i].
	x := make([]T, n)
	for i = n - 1; i >= 0; i-- {
		acc := numeric.NewAccumulator(wide)
		acc.Add(y[i])
		for k = i + 1; k < n; k++ {
			acc.Sub(wide.Mul(w.at(i, k), x[k]))
		}
		x[i] = ops.Div(ops.Round(acc.Sum()), w.at(i, i))
	}

	return x
}

// cholSubstitute solves (L·Lᵀ)·x = b on the cached Cholesky factor:
// forward through L, then backward through its transpose (read by column
// from the same lower-triangular storage).
//
// Complexity: O(n^2).
func (s *Solver[T]) cholSubstitute(b []T) []T {
	ops, wide, l, n := s.ops, s.wide, s.chol.l, s.n
	var i, k int

	// Forward: y[i] = (b[i] - Σ_{k<i} L[i,k]·y[k]) / L[i,i].
	y := make([]T, n)
	for i = 0; i < n; i++ {
		acc := numeric.NewAccumulator(wide)
		acc.Add(b[i])
		for k = 0; k < i; k++ {
			acc.Sub(wide.Mul(l.at(i, k), y[k]))
		}
		y[i] = ops.Div(ops.Round(acc.Sum()), l.at(i, i))
	}

	// Backward: x[i] = (y[i] - Σ_{k>i} L[k,i]·x[k]) / L[i,i].
	x := make([]T, n)
	for i = n - 1; i >= 0; i-- {
		acc := numeric.NewAccumulator(wide)
		acc.Add(y[i])
		for k = i + 1; k < n; k++ {
			acc.Sub(wide.Mul(l.at(k, i), x[k]))
		}
		x[i] = ops.Div(ops.Round(acc.Sum()), l.at(i, i))
	}

	return x
}
