// Package solver: the Cholesky decomposition engine.
//
// The Cholesky path is fully independent from LU: its own state machine, its
// own factor storage, its own poison flag. It applies no scaling and no
// pivoting — SPD matrices do not need them for stability the way general
// matrices do — and it reads the original matrix, never the LU working copy.

package solver

import (
	"math"

	"github.com/katalvlaran/densolve/numeric"
)

// ensureCholesky drives the Cholesky state machine. Ready reuses the cached
// factor; poisoned fails fast with the original failure reason.
//
// Implementation:
//   - Row i first verifies symmetry against the already-visited columns
//     (a[i][j] must equal a[j][i] exactly for j < i).
//   - Off-diagonal: L[i,j] = (a[i,j] - Σ_{k<j} L[i,k]·L[j,k]) / L[j,j].
//   - Diagonal: d = a[i,i] - Σ_{k<i} L[i,k]²; L[i,i] = √d. A negative d, a
//     failed square root, or a zero/non-finite root means the matrix is not
//     positive-definite.
//
// Errors:
//   - ErrAsymmetric — symmetry check failed; this path only is poisoned.
//   - ErrNonSPD     — symmetric but not positive-definite; ditto.
//
// Complexity:
//   - O(n^3) on the first call, O(1) afterwards.
func (s *Solver[T]) ensureCholesky() error {
	switch s.chol.state {
	case stateReady:
		return nil
	case statePoisoned:
		return s.chol.reason
	}

	ops, n := s.ops, s.n
	l := newDense(ops, n, n)
	var i, j, k int
	var sum, d, root T
	var ok bool
	for i = 0; i < n; i++ {
		for j = 0; j < i; j++ {
			if ops.Cmp(s.a.at(i, j), s.a.at(j, i)) != 0 {
				return s.poisonCholesky(ErrAsymmetric)
			}
		}
		for j = 0; j <= i; j++ {
			acc := numeric.NewAccumulator(s.wide)
			for k = 0; k < j; k++ {
				acc.AddProduct(l.at(i, k), l.at(j, k))
			}
			sum = ops.Round(acc.Sum())
			if j < i {
				l.set(i, j, ops.Div(ops.Sub(s.a.at(i, j), sum), l.at(j, j)))

				continue
			}
			d = ops.Sub(s.a.at(i, i), sum)
			if ops.Sign(d) < 0 {
				return s.poisonCholesky(ErrNonSPD)
			}
			root, ok = ops.Sqrt(d)
			if !ok || ops.Sign(root) == 0 || !isFinite(ops.Approx(root)) {
				return s.poisonCholesky(ErrNonSPD)
			}
			l.set(i, i, root)
		}
	}
	s.chol.l = l
	s.chol.state = stateReady

	return nil
}

// poisonCholesky latches the path's permanent failure and returns reason.
func (s *Solver[T]) poisonCholesky(reason error) error {
	s.chol.state = statePoisoned
	s.chol.reason = reason

	return reason
}

// isFinite reports whether the diagnostic approximation is a usable number.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// cholSolveVec solves A·x = b on the cached factor (ready state assumed).
// The input vector is read-only; the result is a fresh slice.
//
// Complexity: O(n^2).
func (s *Solver[T]) cholSolveVec(b []T) []T {
	return s.cholSubstitute(s.cloneVec(b))
}

// cholSolveDense solves A·X = B column-wise on the cached factor; results
// are identical to solving every column separately.
//
// Complexity: O(n^2 · cols).
func (s *Solver[T]) cholSolveDense(b *dense[T]) *dense[T] {
	x := newDense(s.ops, b.r, b.c)
	for j := 0; j < b.c; j++ {
		x.setColumn(j, s.cholSolveVec(b.column(s.ops, j)))
	}

	return x
}
