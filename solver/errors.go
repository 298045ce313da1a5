// Package solver: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the solver
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel panics on user-triggered error conditions; panics
// are reserved for programmer errors in option constructors.

package solver

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "solver: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with solverErrorf(tag, ErrX) at the
// facade — callers still match via errors.Is.
//
// The first three sentinels carry a Code classification (see types.go); the
// rest are shape/usage errors that never alter the solver's last code.

var (
	// ErrNonInvertible is returned when LU elimination meets a zero or
	// negligible pivot: the matrix is singular (or rank-deficient).
	ErrNonInvertible = errors.New("solver: matrix is not invertible")

	// ErrAsymmetric is returned when Cholesky is requested on a matrix that
	// fails the symmetry check.
	ErrAsymmetric = errors.New("solver: matrix is not symmetric")

	// ErrNonSPD is returned when Cholesky is requested on a symmetric matrix
	// that is not positive-definite.
	ErrNonSPD = errors.New("solver: matrix is not positive-definite")

	// ErrNilArithmetic indicates that a nil Arithmetic was passed to New.
	ErrNilArithmetic = errors.New("solver: nil arithmetic")

	// ErrBadShape is returned when an input grid is nil, empty or ragged.
	ErrBadShape = errors.New("solver: invalid grid shape")

	// ErrNonSquare signals that a square matrix was required but the input
	// wasn't.
	ErrNonSquare = errors.New("solver: matrix is not square")

	// ErrDimensionMismatch indicates a right-hand side whose dimensions do
	// not match the solver's matrix.
	ErrDimensionMismatch = errors.New("solver: dimension mismatch")

	// ErrNoSolution indicates that no solution of the requested shape has
	// been computed yet on this solver.
	ErrNoSolution = errors.New("solver: no solution computed yet")
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opNew             = "New"
	opSolve           = "Solve"
	opSolveMatrix     = "SolveMatrix"
	opSolveSPD        = "SolveSPD"
	opSolveSPDMatrix  = "SolveSPDMatrix"
	opInverse         = "Inverse"
	opDeterminant     = "Determinant"
	opNorm            = "Norm"
	opConditionNumber = "ConditionNumber"
	opDiagonal        = "Diagonal"
	opPermutation     = "Permutation"
	opLastSolution    = "LastSolution"
)

// solverErrorf wraps err with an operation tag, preserving the original error
// via %w so errors.Is/As keep matching. Call only with err != nil.
func solverErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
