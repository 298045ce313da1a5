// Package solver: the Solver type, construction and state accessors.
// Public operations (Solve, SolveSPD, Inverse, ...) live in api.go; the
// decomposition and refinement kernels live in the impl_* files.

package solver

import (
	"errors"

	"github.com/katalvlaran/densolve/numeric"
)

// luState is the LU decomposition path: scaled working copy (overwritten in
// place with the combined L/U factors), row scales, pivot permutation and
// swap parity. The working copy and permutation exist together or not at all.
type luState[T any] struct {
	state  decompState
	w      *dense[T] // scaled working copy → combined L/U in place
	scale  []T       // per-original-row scale factors
	perm   []int     // decomposed-row position → original row index
	parity int       // ±1, toggled on every pivot row exchange
}

// cholState is the independent Cholesky path: lower-triangular factor and
// its own poison reason (ErrAsymmetric or ErrNonSPD).
type cholState[T any] struct {
	state  decompState
	l      *dense[T] // lower-triangular factor
	reason error     // poison cause, set exactly once
}

// Solver solves dense linear systems over one immutable N×N matrix.
//
// A Solver owns its matrix for its lifetime: the grid passed to New is
// deep-copied and never mutated afterwards. Decomposition state is mutable
// instance state shared by all subsequent calls; a Solver is NOT safe for
// concurrent use — callers needing parallel solves create separate solvers
// over independent matrices.
//
// The two decomposition paths (LU, Cholesky) cache independently and poison
// independently: failing one and then using the other still succeeds when
// the matrix supports it.
type Solver[T any] struct {
	ops  numeric.Arithmetic[T] // working-precision arithmetic
	wide numeric.Arithmetic[T] // accumulator-precision arithmetic
	opts Options
	n    int       // side length, >= 1
	a    *dense[T] // the original matrix; never mutated

	lu   luState[T]
	chol cholState[T]

	inv *dense[T] // cached inverse, built on first request

	lastCode   Code
	lastMethod Method
	lastVec    []T       // most recent vector solution (copy)
	lastMat    *dense[T] // most recent matrix solution (copy)
}

// New constructs a Solver over a validated square grid. The grid is
// deep-copied; the caller keeps full ownership of its slices.
//
// Errors:
//   - ErrNilArithmetic — ops is nil.
//   - ErrBadShape      — nil/empty/ragged grid.
//   - ErrNonSquare     — rectangular but not square.
//
// Complexity: O(n^2) for the defensive copy.
func New[T any](ops numeric.Arithmetic[T], grid [][]T, opts ...Option) (*Solver[T], error) {
	if ops == nil {
		return nil, solverErrorf(opNew, ErrNilArithmetic)
	}
	n, err := ValidateSquareGrid(grid)
	if err != nil {
		return nil, solverErrorf(opNew, err)
	}

	return &Solver[T]{
		ops:  ops,
		wide: ops.Wide(),
		opts: gatherOptions(opts...),
		n:    n,
		a:    denseFromGrid(ops, grid),
		lu:   luState[T]{parity: 1},
	}, nil
}

// Size reports the side length N of the solver's matrix.
func (s *Solver[T]) Size() int { return s.n }

// LastCode reports the classification of the most recent top-level
// operation: CodeOK after a success, or the matching failure code.
func (s *Solver[T]) LastCode() Code { return s.lastCode }

// LastMethod reports which decomposition produced the last recorded
// solution (MethodNone before any solve).
func (s *Solver[T]) LastMethod() Method { return s.lastMethod }

// LastSolution returns a copy of the most recent vector solution.
//
// Errors:
//   - ErrNoSolution — no vector solve has succeeded yet.
func (s *Solver[T]) LastSolution() ([]T, error) {
	if s.lastVec == nil {
		return nil, solverErrorf(opLastSolution, ErrNoSolution)
	}

	return s.cloneVec(s.lastVec), nil
}

// LastMatrixSolution returns a copy of the most recent matrix solution.
//
// Errors:
//   - ErrNoSolution — no matrix solve has succeeded yet.
func (s *Solver[T]) LastMatrixSolution() ([][]T, error) {
	if s.lastMat == nil {
		return nil, solverErrorf(opLastSolution, ErrNoSolution)
	}

	return s.lastMat.grid(s.ops), nil
}

// Diagonal returns a copy of the cached LU diagonal (the U factor's
// diagonal over the scaled working copy), decomposing on first request.
// Diagnostics surface for the wrapper layer.
//
// Errors:
//   - ErrNonInvertible — the LU path is (or becomes) poisoned.
func (s *Solver[T]) Diagonal() ([]T, error) {
	if err := s.ensureLU(); err != nil {
		s.classify(err)

		return nil, solverErrorf(opDiagonal, err)
	}
	d := make([]T, s.n)
	for i := 0; i < s.n; i++ {
		d[i] = s.ops.Clone(s.lu.w.at(i, i))
	}
	s.lastCode = CodeOK

	return d, nil
}

// Permutation returns a copy of the cached pivot permutation
// (decomposed-row position → original row index), decomposing on first
// request.
//
// Errors:
//   - ErrNonInvertible — the LU path is (or becomes) poisoned.
func (s *Solver[T]) Permutation() ([]int, error) {
	if err := s.ensureLU(); err != nil {
		s.classify(err)

		return nil, solverErrorf(opPermutation, err)
	}
	p := make([]int, s.n)
	copy(p, s.lu.perm)
	s.lastCode = CodeOK

	return p, nil
}

// classify overwrites the last code for a classified failure; shape/usage
// errors leave the code untouched.
func (s *Solver[T]) classify(err error) {
	switch {
	case errors.Is(err, ErrNonInvertible):
		s.lastCode = CodeNonInvertible
	case errors.Is(err, ErrAsymmetric):
		s.lastCode = CodeAsymmetric
	case errors.Is(err, ErrNonSPD):
		s.lastCode = CodeNonSPD
	}
}

// recordVec stores the last vector solution and its method. The store is a
// copy, never an alias of caller- or callee-held slices.
func (s *Solver[T]) recordVec(m Method, x []T) {
	s.lastMethod = m
	s.lastVec = s.cloneVec(x)
	s.lastCode = CodeOK
}

// recordMat is the matrix-RHS counterpart of recordVec. X is cloned to
// decouple the record from the returned grid.
func (s *Solver[T]) recordMat(m Method, x *dense[T]) {
	s.lastMethod = m
	s.lastMat = x.clone(s.ops)
	s.lastCode = CodeOK
}

// cloneVec deep-copies a contract-value vector.
func (s *Solver[T]) cloneVec(v []T) []T {
	out := make([]T, len(v))
	for i, x := range v {
		out[i] = s.ops.Clone(x)
	}

	return out
}
