// Package solver_test: LU decomposition engine — determinants, pivoting and
// parity bookkeeping, row scaling, poisoning and diagnostics.
package solver_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/densolve/numeric"
	"github.com/katalvlaran/densolve/solver"
)

func TestDeterminantKnown3x3(t *testing.T) {
	t.Parallel()
	sv := mustSolver(t, [][]float64{{2, 1, 1}, {4, 3, 3}, {8, 7, 9}})

	det, err := sv.Determinant()
	require.NoError(t, err)
	require.InDelta(t, 4, det, 1e-10)
	require.Equal(t, solver.CodeOK, sv.LastCode())
}

// A pure row exchange must flip the determinant sign: the parity flag
// toggles exactly once per pivot exchange, never on a kept row (p == i).
func TestDeterminantSwapParity(t *testing.T) {
	t.Parallel()

	sv := mustSolver(t, [][]float64{{0, 1}, {1, 0}})
	det, err := sv.Determinant()
	require.NoError(t, err)
	require.InDelta(t, -1, det, 1e-15)

	// Identity: every pivot is already in place, parity stays +1.
	id := mustSolver(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}})
	det, err = id.Determinant()
	require.NoError(t, err)
	require.InDelta(t, 1, det, 1e-15)
}

// With scaling disabled the decimal determinant is exact.
func TestDeterminantExactDecimal(t *testing.T) {
	t.Parallel()
	d := numeric.NewDecimal(10)
	sv, err := solver.New(d, decimalGrid(d, [][]float64{{2, 0}, {0, 3}}), solver.WithScaling(false))
	require.NoError(t, err)

	det, err := sv.Determinant()
	require.NoError(t, err)
	require.Equal(t, 0, d.Cmp(det, d.FromFloat64(6)))
}

// Row scales divide back out of the determinant exactly once per row.
func TestDeterminantUnaffectedByScaling(t *testing.T) {
	t.Parallel()
	a := [][]float64{{2, 1, 1}, {4, 3, 3}, {8, 7, 9}}

	scaled := mustSolver(t, a, solver.WithScaling(true))
	unscaled := mustSolver(t, a, solver.WithScaling(false))

	d1, err := scaled.Determinant()
	require.NoError(t, err)
	d2, err := unscaled.Determinant()
	require.NoError(t, err)
	require.InDelta(t, d2, d1, 1e-9)
}

// TestZeroRow covers the singular path end to end: determinant exactly
// zero, NON_INVERTIBLE on solve, and a latched poison flag that fails fast.
func TestZeroRow(t *testing.T) {
	t.Parallel()
	sv := mustSolver(t, [][]float64{{1, 2, 3}, {0, 0, 0}, {4, 5, 6}})

	det, err := sv.Determinant()
	require.NoError(t, err)
	require.Equal(t, 0.0, det)

	_, err = sv.Solve([]float64{1, 1, 1})
	require.ErrorIs(t, err, solver.ErrNonInvertible)
	require.Equal(t, solver.CodeNonInvertible, sv.LastCode())

	// Poisoned: the second call fails identically without re-eliminating.
	_, err = sv.Solve([]float64{1, 1, 1})
	require.ErrorIs(t, err, solver.ErrNonInvertible)
	require.Equal(t, solver.CodeNonInvertible, sv.LastCode())

	// A later successful classified operation resets the code to OK.
	_, err = sv.Norm()
	require.NoError(t, err)
	require.Equal(t, solver.CodeOK, sv.LastCode())
}

// A swap between identical rows still toggles parity — and such a matrix is
// necessarily singular, which the engine reports through the usual path.
func TestIdenticalRowsSingular(t *testing.T) {
	t.Parallel()
	sv := mustSolver(t, [][]float64{{1, 1}, {2, 2}})

	det, err := sv.Determinant()
	require.NoError(t, err)
	require.Equal(t, 0.0, det)
	_, err = sv.Solve([]float64{1, 1})
	require.ErrorIs(t, err, solver.ErrNonInvertible)
}

// Pivot ties keep the earliest row: no exchange happens, so the
// permutation stays the identity.
func TestPivotTieKeepsEarliest(t *testing.T) {
	t.Parallel()
	sv := mustSolver(t, [][]float64{{1, 2}, {1, 3}}, solver.WithScaling(false))

	perm, err := sv.Permutation()
	require.NoError(t, err)
	require.Equal(t, []int{0, 1}, perm)

	det, err := sv.Determinant()
	require.NoError(t, err)
	require.InDelta(t, 1, det, 1e-15)
}

// TestPermutationAndDiagonal exposes the diagnostics surface: a matrix that
// forces one exchange reports the swapped permutation, and both accessors
// return copies.
func TestPermutationAndDiagonal(t *testing.T) {
	t.Parallel()
	sv := mustSolver(t, [][]float64{{1, 3}, {2, 1}}, solver.WithScaling(false))

	perm, err := sv.Permutation()
	require.NoError(t, err)
	require.Equal(t, []int{1, 0}, perm)

	diag, err := sv.Diagonal()
	require.NoError(t, err)
	require.Len(t, diag, 2)
	require.NotZero(t, diag[0])
	require.NotZero(t, diag[1])

	// Returned slices are copies of internal state.
	perm[0] = 99
	diag[0] = -1
	perm2, err := sv.Permutation()
	require.NoError(t, err)
	require.Equal(t, []int{1, 0}, perm2)
}

// TestDiagnosticsOnSingular: the diagnostics attempt the decomposition and
// surface NON_INVERTIBLE like any other LU-path call.
func TestDiagnosticsOnSingular(t *testing.T) {
	t.Parallel()
	sv := mustSolver(t, [][]float64{{0, 0}, {0, 0}})

	_, err := sv.Permutation()
	require.ErrorIs(t, err, solver.ErrNonInvertible)
	require.Equal(t, solver.CodeNonInvertible, sv.LastCode())
}

// TestScalingWideDynamicRange: rows spanning ~200 orders of magnitude still
// solve to high relative accuracy with the scaling stage on.
func TestScalingWideDynamicRange(t *testing.T) {
	t.Parallel()
	base := [][]float64{{4, 1, 1}, {1, 5, 2}, {1, 2, 6}}
	mags := []float64{1e100, 1, 1e-100}

	a := make([][]float64, 3)
	for i := range a {
		a[i] = make([]float64, 3)
		for j := range a[i] {
			a[i][j] = base[i][j] * mags[i]
		}
	}
	want := ones(3)
	b := matVec(a, want)

	sv := mustSolver(t, a, solver.WithScaling(true))
	x, err := sv.Solve(b)
	require.NoError(t, err)
	for i := range want {
		require.InEpsilon(t, want[i], x[i], 1e-9)
	}
}

// The 1×1 edge: smallest legal matrix.
func TestOneByOne(t *testing.T) {
	t.Parallel()
	sv := mustSolver(t, [][]float64{{4}})

	x, err := sv.Solve([]float64{8})
	require.NoError(t, err)
	require.Equal(t, []float64{2}, x)

	det, err := sv.Determinant()
	require.NoError(t, err)
	require.InDelta(t, 4, det, 1e-15)
}
