// Package solver — public solve facades.
//
// Purpose:
//   - Provide thin, well-documented entry points over the decomposition and
//     refinement kernels; each facade validates, defensively copies, solves,
//     records the solution and sets the classification code.
//   - Avoid any logic duplication — facades compose kernels, never re-derive
//     them.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of kernels.
//   - Inputs are never mutated; returned slices never alias internal state.
//   - Classified failures (NON_INVERTIBLE / ASYMMETRIC / NON_SPD) overwrite
//     the last code; shape errors leave it untouched.

package solver

// Solve solves A·x = b through the LU path and returns a fresh solution
// vector. b is read-only for the whole call.
//
// Errors:
//   - ErrDimensionMismatch — len(b) != Size().
//   - ErrNonInvertible     — the LU path is (or becomes) poisoned.
//
// Complexity: O(n^3) on the first decomposition, O(n^2) afterwards.
func (s *Solver[T]) Solve(b []T) ([]T, error) {
	x, err := s.solveVecLU(opSolve, b)
	if err != nil {
		return nil, err
	}
	s.recordVec(MethodLU, x)

	return x, nil
}

// SolveAccurately is Solve followed by iterative refinement on the same
// cached decomposition; it never returns a worse solution than Solve.
//
// Errors: as Solve.
// Complexity: O(n^3) first call, O(iters · n^2) afterwards.
func (s *Solver[T]) SolveAccurately(b []T) ([]T, error) {
	x, err := s.solveVecLU(opSolve, b)
	if err != nil {
		return nil, err
	}
	x = s.refineVec(s.luSolveVec, x, b)
	s.recordVec(MethodLU, x)

	return x, nil
}

// SolveMatrix solves A·X = B for a matrix right-hand side (n rows, any
// column count) through the LU path. Columns are solved independently;
// results are identical to calling Solve per column.
//
// Errors:
//   - ErrDimensionMismatch / ErrBadShape — B has wrong shape.
//   - ErrNonInvertible                   — the LU path is poisoned.
//
// Complexity: O(n^3) first call, O(n^2 · cols) afterwards.
func (s *Solver[T]) SolveMatrix(b [][]T) ([][]T, error) {
	_, x, err := s.solveMatLU(opSolveMatrix, b)
	if err != nil {
		return nil, err
	}
	s.recordMat(MethodLU, x)

	return x.grid(s.ops), nil
}

// SolveMatrixAccurately is SolveMatrix followed by iterative refinement.
//
// Errors: as SolveMatrix.
func (s *Solver[T]) SolveMatrixAccurately(b [][]T) ([][]T, error) {
	bd, x, err := s.solveMatLU(opSolveMatrix, b)
	if err != nil {
		return nil, err
	}
	x = s.refineDense(s.luSolveDense, x, bd)
	s.recordMat(MethodLU, x)

	return x.grid(s.ops), nil
}

// SolveSPD solves A·x = b through the Cholesky path (symmetric
// positive-definite matrices only).
//
// Errors:
//   - ErrDimensionMismatch — len(b) != Size().
//   - ErrAsymmetric        — A differs from its transpose.
//   - ErrNonSPD            — A is symmetric but not positive-definite.
//
// Complexity: O(n^3) on the first decomposition, O(n^2) afterwards.
func (s *Solver[T]) SolveSPD(b []T) ([]T, error) {
	x, err := s.solveVecChol(opSolveSPD, b)
	if err != nil {
		return nil, err
	}
	s.recordVec(MethodCholesky, x)

	return x, nil
}

// SolveSPDAccurately is SolveSPD followed by iterative refinement.
//
// Errors: as SolveSPD.
func (s *Solver[T]) SolveSPDAccurately(b []T) ([]T, error) {
	x, err := s.solveVecChol(opSolveSPD, b)
	if err != nil {
		return nil, err
	}
	x = s.refineVec(s.cholSolveVec, x, b)
	s.recordVec(MethodCholesky, x)

	return x, nil
}

// SolveSPDMatrix solves A·X = B through the Cholesky path.
//
// Errors: as SolveSPD plus shape errors on B.
func (s *Solver[T]) SolveSPDMatrix(b [][]T) ([][]T, error) {
	_, x, err := s.solveMatChol(opSolveSPDMatrix, b)
	if err != nil {
		return nil, err
	}
	s.recordMat(MethodCholesky, x)

	return x.grid(s.ops), nil
}

// SolveSPDMatrixAccurately is SolveSPDMatrix followed by iterative
// refinement.
//
// Errors: as SolveSPDMatrix.
func (s *Solver[T]) SolveSPDMatrixAccurately(b [][]T) ([][]T, error) {
	bd, x, err := s.solveMatChol(opSolveSPDMatrix, b)
	if err != nil {
		return nil, err
	}
	x = s.refineDense(s.cholSolveDense, x, bd)
	s.recordMat(MethodCholesky, x)

	return x.grid(s.ops), nil
}

// ---------- shared facade plumbing ----------

// solveVecLU validates, decomposes and runs one plain LU vector solve.
func (s *Solver[T]) solveVecLU(tag string, b []T) ([]T, error) {
	if err := ValidateVecLen(b, s.n); err != nil {
		return nil, solverErrorf(tag, err)
	}
	if err := s.ensureLU(); err != nil {
		s.classify(err)

		return nil, solverErrorf(tag, err)
	}

	return s.luSolveVec(b), nil
}

// solveMatLU validates, copies B, decomposes and runs one LU matrix solve.
func (s *Solver[T]) solveMatLU(tag string, b [][]T) (*dense[T], *dense[T], error) {
	if _, err := ValidateRHSGrid(b, s.n); err != nil {
		return nil, nil, solverErrorf(tag, err)
	}
	if err := s.ensureLU(); err != nil {
		s.classify(err)

		return nil, nil, solverErrorf(tag, err)
	}
	bd := denseFromGrid(s.ops, b)

	return bd, s.luSolveDense(bd), nil
}

// solveVecChol validates, decomposes and runs one plain Cholesky solve.
func (s *Solver[T]) solveVecChol(tag string, b []T) ([]T, error) {
	if err := ValidateVecLen(b, s.n); err != nil {
		return nil, solverErrorf(tag, err)
	}
	if err := s.ensureCholesky(); err != nil {
		s.classify(err)

		return nil, solverErrorf(tag, err)
	}

	return s.cholSolveVec(b), nil
}

// solveMatChol validates, copies B, decomposes and runs one Cholesky matrix
// solve.
func (s *Solver[T]) solveMatChol(tag string, b [][]T) (*dense[T], *dense[T], error) {
	if _, err := ValidateRHSGrid(b, s.n); err != nil {
		return nil, nil, solverErrorf(tag, err)
	}
	if err := s.ensureCholesky(); err != nil {
		s.classify(err)

		return nil, nil, solverErrorf(tag, err)
	}
	bd := denseFromGrid(s.ops, b)

	return bd, s.cholSolveDense(bd), nil
}
