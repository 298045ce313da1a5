// Package solver_test contains the core solver scenarios: construction
// validation, vector solves, defensive-copy guarantees, solution records and
// error-code bookkeeping. Shared fixtures for the whole test package live at
// the top of this file.
package solver_test

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	inf "gopkg.in/inf.v0"

	"github.com/katalvlaran/densolve/numeric"
	"github.com/katalvlaran/densolve/solver"
)

// ---------- shared fixtures ----------

// ones returns a length-n vector of ones.
func ones(n int) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = 1
	}

	return v
}

// matVec computes A·x in plain float64 (test-side oracle only).
func matVec(a [][]float64, x []float64) []float64 {
	n := len(a)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			y[i] += a[i][j] * x[j]
		}
	}

	return y
}

// residualRMS measures ‖A·x − b‖ as a root-mean-square, evaluated at 200
// mantissa bits so the measurement itself never flattens small differences.
func residualRMS(a [][]float64, x, b []float64) float64 {
	const prec = 200
	n := len(a)
	sum := new(big.Float).SetPrec(prec)
	for i := 0; i < n; i++ {
		ri := new(big.Float).SetPrec(prec)
		for j := 0; j < n; j++ {
			term := new(big.Float).SetPrec(prec).SetFloat64(a[i][j])
			term.Mul(term, new(big.Float).SetPrec(prec).SetFloat64(x[j]))
			ri.Add(ri, term)
		}
		ri.Sub(ri, new(big.Float).SetPrec(prec).SetFloat64(b[i]))
		ri.Mul(ri, ri)
		sum.Add(sum, ri)
	}
	sum.Quo(sum, new(big.Float).SetPrec(prec).SetInt64(int64(n)))
	v, _ := sum.Sqrt(sum).Float64()

	return v
}

// randomMatrix builds a dense n×n matrix with entries in [-1, 1) from a
// seeded source (deterministic across runs).
func randomMatrix(r *rand.Rand, n int) [][]float64 {
	a := make([][]float64, n)
	for i := range a {
		a[i] = make([]float64, n)
		for j := range a[i] {
			a[i][j] = 2*r.Float64() - 1
		}
		a[i][i] += float64(n) // diagonal dominance keeps the fixture regular
	}

	return a
}

// hilbert builds the n×n Hilbert matrix, the classic ill-conditioned SPD
// fixture: H[i][j] = 1/(i+j+1).
func hilbert(n int) [][]float64 {
	h := make([][]float64, n)
	for i := range h {
		h[i] = make([]float64, n)
		for j := range h[i] {
			h[i][j] = 1 / float64(i+j+1)
		}
	}

	return h
}

// decimalGrid converts a float64 grid into inf.Dec contract values.
func decimalGrid(d numeric.Decimal, a [][]float64) [][]*inf.Dec {
	out := make([][]*inf.Dec, len(a))
	for i, row := range a {
		out[i] = make([]*inf.Dec, len(row))
		for j, v := range row {
			out[i][j] = d.FromFloat64(v)
		}
	}

	return out
}

// decimalVec converts a float64 vector into inf.Dec contract values.
func decimalVec(d numeric.Decimal, v []float64) []*inf.Dec {
	out := make([]*inf.Dec, len(v))
	for i, x := range v {
		out[i] = d.FromFloat64(x)
	}

	return out
}

// mustSolver builds a float64 solver or fails the test.
func mustSolver(t *testing.T, a [][]float64, opts ...solver.Option) *solver.Solver[float64] {
	t.Helper()
	s, err := solver.New[float64](numeric.NewFloat64(), a, opts...)
	require.NoError(t, err)

	return s
}

// ---------- suite ----------

// SolverSuite exercises the public vector-solve surface over float64.
type SolverSuite struct {
	suite.Suite
}

func TestSolverSuite(t *testing.T) { suite.Run(t, new(SolverSuite)) }

// TestKnownSystem verifies an exactly solvable 2×2 system.
func (s *SolverSuite) TestKnownSystem() {
	sv := mustSolver(s.T(), [][]float64{{3, 2}, {1, 4}})
	x, err := sv.Solve([]float64{7, 9})
	require.NoError(s.T(), err)
	require.InDelta(s.T(), 1, x[0], 1e-12)
	require.InDelta(s.T(), 2, x[1], 1e-12)
	require.Equal(s.T(), solver.CodeOK, sv.LastCode())
	require.Equal(s.T(), solver.MethodLU, sv.LastMethod())
}

// TestSolveDoesNotMutateRHS pins the defensive-copy guarantee on inputs.
func (s *SolverSuite) TestSolveDoesNotMutateRHS() {
	sv := mustSolver(s.T(), [][]float64{{4, 1}, {2, 3}})
	b := []float64{5, 6}
	saved := append([]float64(nil), b...)

	_, err := sv.Solve(b)
	require.NoError(s.T(), err)
	require.Equal(s.T(), saved, b)
}

// TestNoStateBleed: two solves on one solver are independently correct, and
// the solution record always reflects the latest one.
func (s *SolverSuite) TestNoStateBleed() {
	a := [][]float64{{5, 1, 0}, {1, 4, 2}, {0, 2, 6}}
	b1 := []float64{1, 2, 3}
	b2 := []float64{-4, 0, 9}

	sv := mustSolver(s.T(), a)
	x1, err := sv.Solve(b1)
	require.NoError(s.T(), err)
	x2, err := sv.Solve(b2)
	require.NoError(s.T(), err)

	fresh := mustSolver(s.T(), a)
	want2, err := fresh.Solve(b2)
	require.NoError(s.T(), err)
	require.Equal(s.T(), want2, x2, "second solve unaffected by the first")

	last, err := sv.LastSolution()
	require.NoError(s.T(), err)
	require.Equal(s.T(), want2, last)
	require.InDelta(s.T(), 0, residualRMS(a, x1, b1), 1e-12)
}

// TestLastSolutionIsACopy: mutating a returned solution never changes the
// stored record.
func (s *SolverSuite) TestLastSolutionIsACopy() {
	sv := mustSolver(s.T(), [][]float64{{2, 0}, {0, 2}})
	x, err := sv.Solve([]float64{2, 4})
	require.NoError(s.T(), err)

	x[0] = 1e9
	last, err := sv.LastSolution()
	require.NoError(s.T(), err)
	require.Equal(s.T(), []float64{1, 2}, last)
}

// TestLastSolutionBeforeAnySolve reports ErrNoSolution.
func (s *SolverSuite) TestLastSolutionBeforeAnySolve() {
	sv := mustSolver(s.T(), [][]float64{{1}})
	_, err := sv.LastSolution()
	require.ErrorIs(s.T(), err, solver.ErrNoSolution)
	_, err = sv.LastMatrixSolution()
	require.ErrorIs(s.T(), err, solver.ErrNoSolution)
	require.Equal(s.T(), solver.MethodNone, sv.LastMethod())
}

// TestDimensionMismatchLeavesCodeUntouched: shape errors are not
// classifications.
func (s *SolverSuite) TestDimensionMismatchLeavesCodeUntouched() {
	sv := mustSolver(s.T(), [][]float64{{1, 0}, {0, 1}})
	_, err := sv.Solve([]float64{1, 2, 3})
	require.ErrorIs(s.T(), err, solver.ErrDimensionMismatch)
	require.Equal(s.T(), solver.CodeOK, sv.LastCode())
}

// TestMatrixRHSMatchesPerColumn: SolveMatrix equals Solve per column.
func (s *SolverSuite) TestMatrixRHSMatchesPerColumn() {
	a := [][]float64{{3, 1, 2}, {0, 4, 1}, {2, 2, 5}}
	bm := [][]float64{{1, 4}, {2, 5}, {3, 6}}

	sv := mustSolver(s.T(), a)
	xm, err := sv.SolveMatrix(bm)
	require.NoError(s.T(), err)

	for col := 0; col < 2; col++ {
		bv := make([]float64, 3)
		for i := range bv {
			bv[i] = bm[i][col]
		}
		xv, errV := mustSolver(s.T(), a).Solve(bv)
		require.NoError(s.T(), errV)
		for i := range xv {
			require.Equal(s.T(), xv[i], xm[i][col])
		}
	}
	require.Equal(s.T(), solver.MethodLU, sv.LastMethod())
}

// ---------- construction validation (table style) ----------

func TestNewValidation(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name string
		grid [][]float64
		want error
	}{
		{"empty", [][]float64{}, solver.ErrBadShape},
		{"ragged", [][]float64{{1, 2}, {3}}, solver.ErrBadShape},
		{"rectangular", [][]float64{{1, 2, 3}, {4, 5, 6}}, solver.ErrNonSquare},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := solver.New[float64](numeric.NewFloat64(), tc.grid)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestNewNilArithmetic(t *testing.T) {
	t.Parallel()
	_, err := solver.New[float64](nil, [][]float64{{1}})
	require.ErrorIs(t, err, solver.ErrNilArithmetic)
}

// TestSolverOwnsItsMatrix: mutating the caller's grid after New does not
// change what the solver solves.
func TestSolverOwnsItsMatrix(t *testing.T) {
	t.Parallel()
	grid := [][]float64{{2, 0}, {0, 2}}
	sv := mustSolver(t, grid)
	grid[0][0] = 1e9

	x, err := sv.Solve([]float64{2, 4})
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2}, x)
}

// TestSolveBigFloatAndDecimal run the identical system through the other
// two contract instantiations.
func TestSolveBigFloat(t *testing.T) {
	t.Parallel()
	f := numeric.NewBigFloat(numeric.DefaultBigFloatPrec)
	grid := [][]*big.Float{
		{f.FromFloat64(3), f.FromFloat64(2)},
		{f.FromFloat64(1), f.FromFloat64(4)},
	}
	sv, err := solver.New[*big.Float](f, grid)
	require.NoError(t, err)

	x, err := sv.Solve([]*big.Float{f.FromFloat64(7), f.FromFloat64(9)})
	require.NoError(t, err)
	require.InDelta(t, 1, f.Approx(x[0]), 1e-20)
	require.InDelta(t, 2, f.Approx(x[1]), 1e-20)
}

func TestSolveDecimal(t *testing.T) {
	t.Parallel()
	d := numeric.NewDecimal(20)

	a := decimalGrid(d, [][]float64{{3, 2}, {1, 4}})
	sv, err := solver.New(d, a)
	require.NoError(t, err)

	x, err := sv.Solve(decimalVec(d, []float64{7, 9}))
	require.NoError(t, err)
	require.InDelta(t, 1, d.Approx(x[0]), 1e-15)
	require.InDelta(t, 2, d.Approx(x[1]), 1e-15)
}
