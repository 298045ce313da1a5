// Package solver: iterative refinement.
//
// Refinement wraps any plain solve (LU or Cholesky, vector or matrix RHS) in
// a residual-correction loop: the residual R = A·x − b is computed at the
// accumulator precision, the cached decomposition solves A·Δ = R, and the
// candidate moves by −Δ·step. The step multiplier starts at 1 and halves on
// every non-improving iteration; once it falls below the configured floor
// the loop stops and returns the best candidate seen. The loop can therefore
// never return anything worse than the initial plain solve.

package solver

import "github.com/katalvlaran/densolve/numeric"

// residualVec computes R = A·x − b and the squared residual magnitude
// Σ R[i]², both at the accumulator precision. The returned vector is rounded
// to working precision (it becomes the next correction RHS); the magnitude
// stays wide so tiny genuine improvements remain visible to Cmp.
//
// Complexity: O(n^2).
func (s *Solver[T]) residualVec(x, b []T) ([]T, T) {
	wide, n := s.wide, s.n
	r := make([]T, n)
	mag := numeric.NewAccumulator(wide)
	var i, k int
	var ri T
	for i = 0; i < n; i++ {
		acc := numeric.NewAccumulator(wide)
		for k = 0; k < n; k++ {
			acc.AddProduct(s.a.at(i, k), x[k])
		}
		acc.Sub(b[i])
		ri = acc.Sum()
		mag.AddProduct(ri, ri)
		r[i] = s.ops.Round(ri)
	}

	return r, mag.Sum()
}

// residualDense is the matrix-RHS counterpart: R = A·X − B with the squared
// magnitude summed over all entries (an RMS-equivalent ordering).
//
// Complexity: O(n^2 · cols).
func (s *Solver[T]) residualDense(x, b *dense[T]) (*dense[T], T) {
	wide, n := s.wide, s.n
	r := newDense(s.ops, b.r, b.c)
	mag := numeric.NewAccumulator(wide)
	var i, j, k int
	var rij T
	for j = 0; j < b.c; j++ {
		for i = 0; i < n; i++ {
			acc := numeric.NewAccumulator(wide)
			for k = 0; k < n; k++ {
				acc.AddProduct(s.a.at(i, k), x.at(k, j))
			}
			acc.Sub(b.at(i, j))
			rij = acc.Sum()
			mag.AddProduct(rij, rij)
			r.set(i, j, s.ops.Round(rij))
		}
	}

	return r, mag.Sum()
}

// refineVec runs the refinement loop over a vector system. solve must be a
// plain solve bound to an already-cached decomposition (it cannot fail).
//
// Loop contract (per iteration, up to the configured cap):
//   - Strictly smaller residual magnitude than the best seen → record the
//     candidate as the new best; an exactly zero magnitude ends the loop.
//   - Otherwise halve the step; below the floor → stop with the best.
//   - Continue: Δ = solve(R); candidate ← candidate − Δ·step.
//
// Complexity: O(iters · n^2).
func (s *Solver[T]) refineVec(solve func([]T) []T, x0, b []T) []T {
	ops, wide := s.ops, s.wide
	cand := s.cloneVec(x0)
	best := s.cloneVec(x0)
	var bestMag T
	have := false
	step := 1.0
	for it := 0; it < s.opts.refineMaxIter; it++ {
		r, mag := s.residualVec(cand, b)
		if !have || wide.Cmp(mag, bestMag) < 0 {
			best = s.cloneVec(cand)
			bestMag = mag
			have = true
			if wide.Sign(mag) == 0 {
				break
			}
		} else {
			step /= 2
			if step < s.opts.refineStepFloor {
				break
			}
		}
		delta := solve(r)
		sf := ops.FromFloat64(step)
		for i := range cand {
			cand[i] = ops.Sub(cand[i], ops.Mul(delta[i], sf))
		}
	}

	return best
}

// refineDense is the matrix-RHS counterpart of refineVec.
//
// Complexity: O(iters · n^2 · cols).
func (s *Solver[T]) refineDense(solve func(*dense[T]) *dense[T], x0, b *dense[T]) *dense[T] {
	ops, wide := s.ops, s.wide
	cand := x0.clone(ops)
	best := x0.clone(ops)
	var bestMag T
	have := false
	step := 1.0
	for it := 0; it < s.opts.refineMaxIter; it++ {
		r, mag := s.residualDense(cand, b)
		if !have || wide.Cmp(mag, bestMag) < 0 {
			best = cand.clone(ops)
			bestMag = mag
			have = true
			if wide.Sign(mag) == 0 {
				break
			}
		} else {
			step /= 2
			if step < s.opts.refineStepFloor {
				break
			}
		}
		delta := solve(r)
		sf := ops.FromFloat64(step)
		for idx := range cand.data {
			cand.data[idx] = ops.Sub(cand.data[idx], ops.Mul(delta.data[idx], sf))
		}
	}

	return best
}
