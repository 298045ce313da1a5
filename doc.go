// Package densolve is a dense linear-system solver engine: solve Ax=b and
// AX=B, compute inverses, determinants, norms and condition numbers — in the
// numeric precision your problem actually needs.
//
// 🚀 What is densolve?
//
//	A deterministic, single-pass library that brings together:
//		• One generic engine: LU with partial pivoting & row scaling,
//		  Cholesky with SPD validation, triangular substitution
//		• Iterative refinement: residual-correction loop with an
//		  adaptively shrinking step, never worse than the plain solve
//		• Three numeric precisions behind one contract: float64,
//		  fixed-width big.Float, arbitrary-precision decimal (inf.Dec)
//		• Derived quantities: determinant, inverse, ∞-norm, condition number
//
// ✨ Why choose densolve?
//
//   - Predictable – per-path poison flags, explicit error codes, no retries
//   - Honest numerics – compensated (Kahan) summation at a widened
//     accumulator precision for every cancellation-prone sum
//   - Pure Go – no cgo, no hidden deps
//   - Generic – the whole engine is written once against a numeric contract
//
// Under the hood, everything is organized under two subpackages:
//
//	numeric/ — the arithmetic contract and its float64 / big.Float / inf.Dec
//	           instantiations, plus the compensated accumulator
//	solver/  — the engine: scaling, LU, Cholesky, substitution, refinement,
//	           determinant/inverse/norm/condition number
//
// Quick sketch:
//
//	    A·x = b  →  scale rows → P·A = L·U → forward/backward substitute
//	             →  refine: x ← x − step·Δ  while the residual shrinks
//
// A solver instance owns its matrix for its lifetime and is not safe for
// concurrent use; create one solver per goroutine over independent matrices.
//
//	go get github.com/katalvlaran/densolve
package densolve
