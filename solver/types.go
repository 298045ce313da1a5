// Package solver: domain types shared across the engine.
// This file intentionally contains ONLY domain-facing enums and the internal
// decomposition state machine. Errors and options live in dedicated files
// (errors.go, options.go) per the module conventions.

package solver

// Code classifies the outcome of the most recent top-level operation.
// Every classified operation overwrites it: success resets to CodeOK,
// a failed decomposition sets the matching failure code. Shape/usage errors
// (bad dimensions, nil inputs) leave the code untouched.
type Code int

const (
	// CodeOK — the most recent operation succeeded.
	CodeOK Code = iota

	// CodeNonInvertible — LU elimination met a zero or negligible pivot.
	CodeNonInvertible

	// CodeAsymmetric — Cholesky was requested on an asymmetric matrix.
	CodeAsymmetric

	// CodeNonSPD — Cholesky was requested on a non-positive-definite matrix.
	CodeNonSPD
)

// String returns the wrapper-facing classification label.
func (c Code) String() string {
	switch c {
	case CodeNonInvertible:
		return "NON_INVERTIBLE"
	case CodeAsymmetric:
		return "ASYMMETRIC"
	case CodeNonSPD:
		return "NON_SPD"
	default:
		return "OK"
	}
}

// Method identifies which decomposition produced the last recorded solution.
type Method int

const (
	// MethodNone — no solution has been computed yet.
	MethodNone Method = iota

	// MethodLU — the last solution came through the LU path.
	MethodLU

	// MethodCholesky — the last solution came through the Cholesky path.
	MethodCholesky
)

// String names the method for diagnostics.
func (m Method) String() string {
	switch m {
	case MethodLU:
		return "LU"
	case MethodCholesky:
		return "Cholesky"
	default:
		return "None"
	}
}

// decompState is the per-path decomposition state machine. Once a path is
// poisoned it stays poisoned for the solver's lifetime; the two paths never
// invalidate each other.
type decompState uint8

const (
	stateUndecomposed decompState = iota // no attempt made yet
	stateReady                           // factors cached and reusable
	statePoisoned                        // first attempt failed; fail fast forever
)
