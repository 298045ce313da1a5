// Package solver implements a dense linear-system solver engine, generic
// over the numeric contract of package numeric.
//
// The solver provides:
//
//   - Solve / SolveMatrix — LU decomposition with partial pivoting and row
//     scaling, forward/backward substitution.
//   - SolveSPD / SolveSPDMatrix — Cholesky decomposition with symmetry and
//     positive-definiteness validation; independent caching from LU.
//   - SolveAccurately variants — iterative refinement with an adaptively
//     halved correction step, never worse than the plain solve.
//   - Determinant, Inverse, Norm (∞), ConditionNumber.
//
// A Solver owns one immutable square matrix for its lifetime. Each
// decomposition path runs at most once: factors are cached on success, and
// a failure poisons that path permanently so repeated calls fail fast and
// deterministically. Poisoning is per-path — a failed Cholesky never blocks
// LU, and vice versa.
//
// The engine is single-threaded and synchronous: no operation suspends or
// spawns work, and a Solver is not safe for concurrent use without external
// locking. Inputs are defensively copied and outputs are fresh copies, so
// later caller mutation can never corrupt earlier results.
//
// See the examples in this package and numeric for usage patterns.
package solver
