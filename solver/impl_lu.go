// Package solver: the scaling stage and the LU decomposition engine.
//
// Purpose:
//   - Build the scaled working copy once, then eliminate it in place into a
//     combined L/U matrix with partial pivoting.
//   - Latch the poison flag on the first failure so every later call through
//     the LU path fails fast without re-running elimination.
//
// Determinism:
//   - Fixed column order i=0..n-1; pivot ties keep the earliest row; fixed
//     elimination order below the pivot. Identical inputs yield identical
//     factors, permutations and parity.

package solver

import "github.com/katalvlaran/densolve/numeric"

// ensureLU drives the {undecomposed, ready, poisoned} state machine.
// Ready is a no-op reusing the cached factors; poisoned fails immediately.
//
// Implementation:
//   - Stage 1 (Scaling): row-normalize a fresh working copy (see luScale).
//   - Stage 2 (Elimination): for each column, select the largest-magnitude
//     pivot in [i, n), swap rows physically (working copy + permutation,
//     toggling parity), divide the sub-column by the pivot (the L part) and
//     update the trailing submatrix (the U part), skipping known zeros.
//
// Errors:
//   - ErrNonInvertible — a pivot's approximate magnitude is zero; the LU
//     path is poisoned permanently.
//
// Complexity:
//   - O(n^3) on the first call, O(1) afterwards.
func (s *Solver[T]) ensureLU() error {
	switch s.lu.state {
	case stateReady:
		return nil
	case statePoisoned:
		return ErrNonInvertible
	}

	s.luScale()

	ops, w, perm, n := s.ops, s.lu.w, s.lu.perm, s.n
	var i, j, k, p, r int
	var pivot, best, cand, mult, u T
	for i = 0; i < n; i++ {
		// Pivot search: earliest row maximizing |w[r][i]| over r in [i, n).
		p = i
		best = ops.Abs(w.at(i, i))
		for r = i + 1; r < n; r++ {
			cand = ops.Abs(w.at(r, i))
			if ops.Cmp(cand, best) > 0 {
				best, p = cand, r
			}
		}
		// Physical swap of the working-copy rows and the permutation entry;
		// parity flips on every exchange, even between identical rows.
		if p != i {
			w.swapRows(p, i)
			perm[p], perm[i] = perm[i], perm[p]
			s.lu.parity = -s.lu.parity
		}
		pivot = w.at(i, i)
		if ops.Approx(ops.Abs(pivot)) == 0 {
			s.lu.state = statePoisoned

			return ErrNonInvertible
		}
		// Eliminate below the pivot: store multipliers in place (L), update
		// the trailing row (U). Columns already zero in the pivot row are
		// skipped — they cannot change row j.
		for j = i + 1; j < n; j++ {
			if ops.Sign(w.at(j, i)) == 0 {
				continue
			}
			mult = ops.Div(w.at(j, i), pivot)
			w.set(j, i, mult)
			for k = i + 1; k < n; k++ {
				u = w.at(i, k)
				if ops.Sign(u) == 0 {
					continue
				}
				w.set(j, k, ops.Sub(w.at(j, k), ops.Mul(mult, u)))
			}
		}
	}
	s.lu.state = stateReady

	return nil
}

// luScale builds the scaled working copy and the row-scale vector.
// For each row: the accumulator-precision compensated sum of absolute
// values; a positive sum yields the reciprocal as the row's scale, a zero
// sum yields 1 (the zero row then surfaces as a zero pivot downstream).
// With scaling disabled the working copy is an unscaled clone and all
// scales are 1.
//
// Complexity: O(n^2).
func (s *Solver[T]) luScale() {
	ops, n := s.ops, s.n
	w := s.a.clone(ops)
	scale := make([]T, n)
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	if !s.opts.scaling {
		for i := range scale {
			scale[i] = ops.One()
		}
		s.lu.w, s.lu.scale, s.lu.perm, s.lu.parity = w, scale, perm, 1

		return
	}

	var i, j int
	var sum T
	for i = 0; i < n; i++ {
		acc := numeric.NewAccumulator(s.wide)
		for j = 0; j < n; j++ {
			acc.Add(ops.Abs(s.a.at(i, j)))
		}
		sum = acc.Sum()
		if s.wide.Sign(sum) > 0 {
			scale[i] = ops.Div(ops.One(), ops.Round(sum))
		} else {
			scale[i] = ops.One()
		}
		for j = 0; j < n; j++ {
			w.set(i, j, ops.Mul(w.at(i, j), scale[i]))
		}
	}
	s.lu.w, s.lu.scale, s.lu.perm, s.lu.parity = w, scale, perm, 1
}

// luPrepVec permutes and scales a right-hand side to match the cached
// decomposition: bp[i] = scale[perm[i]] * b[perm[i]]. Always a fresh slice —
// the caller's vector is never touched.
//
// Complexity: O(n).
func (s *Solver[T]) luPrepVec(b []T) []T {
	ops := s.ops
	bp := make([]T, s.n)
	for i := 0; i < s.n; i++ {
		src := s.lu.perm[i]
		bp[i] = ops.Mul(b[src], s.lu.scale[src])
	}

	return bp
}

// luSolveVec solves A·x = b on the cached factors (ready state assumed).
// The input vector is read-only; the result is a fresh slice.
//
// Complexity: O(n^2).
func (s *Solver[T]) luSolveVec(b []T) []T {
	return s.luSubstitute(s.luPrepVec(b))
}

// luSolveDense solves A·X = B column-wise on the cached factors. Solving
// all columns through the identical vector kernel guarantees results equal
// to solving each column separately.
//
// Complexity: O(n^2 · cols).
func (s *Solver[T]) luSolveDense(b *dense[T]) *dense[T] {
	x := newDense(s.ops, b.r, b.c)
	for j := 0; j < b.c; j++ {
		x.setColumn(j, s.luSolveVec(b.column(s.ops, j)))
	}

	return x
}
