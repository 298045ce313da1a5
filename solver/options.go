// Package solver: functional configuration for the engine.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each knob impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: Options fields are unexported; public APIs consume ...Option.

package solver

import "math"

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultScaling row-normalizes the LU working copy before elimination.
	// Disable only for matrices whose rows are already comparably sized.
	DefaultScaling = true

	// DefaultRefineMaxIter caps the iterative-refinement loop.
	DefaultRefineMaxIter = 20

	// DefaultRefineStepFloor stops refinement once the adaptively halved
	// correction-step multiplier falls below this floor.
	DefaultRefineStepFloor = 0.125
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicRefineMaxIterInvalid   = "solver: WithRefineMaxIter: iterations must be positive"
	panicRefineStepFloorInvalid = "solver: WithRefineStepFloor: floor must be in (0, 1]"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options carries the solver configuration. Fields are unexported; construct
// through Option values passed to New.
type Options struct {
	scaling         bool    // row-normalize the LU working copy
	refineMaxIter   int     // refinement iteration cap, > 0
	refineStepFloor float64 // correction-step floor, in (0, 1]
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		scaling:         DefaultScaling,
		refineMaxIter:   DefaultRefineMaxIter,
		refineStepFloor: DefaultRefineStepFloor,
	}
}

// WithScaling toggles the row-scaling stage applied before LU decomposition.
// The Cholesky path never scales regardless of this switch.
func WithScaling(enabled bool) Option {
	return func(o *Options) { o.scaling = enabled }
}

// WithRefineMaxIter sets the iteration cap of the refinement loop.
// Panics on n <= 0.
func WithRefineMaxIter(n int) Option {
	if n <= 0 {
		panic(panicRefineMaxIterInvalid)
	}

	return func(o *Options) { o.refineMaxIter = n }
}

// WithRefineStepFloor sets the floor under the adaptively halved correction
// step. Panics unless 0 < floor <= 1 and floor is finite.
func WithRefineStepFloor(floor float64) Option {
	if math.IsNaN(floor) || floor <= 0 || floor > 1 {
		panic(panicRefineStepFloorInvalid)
	}

	return func(o *Options) { o.refineStepFloor = floor }
}

// gatherOptions folds opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
