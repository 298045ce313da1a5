// Package solver: central input validation.
// All public entry points validate through these helpers; kernels assume
// shapes already hold. Validators return plain sentinels — facades wrap them
// with an operation tag via solverErrorf.

package solver

// ValidateSquareGrid checks that grid is a non-empty, rectangular, square
// matrix and returns its side length.
//
// Errors:
//   - ErrBadShape  — nil/empty grid, nil/empty row, or ragged rows.
//   - ErrNonSquare — rectangular but rows != cols.
//
// Complexity: O(rows).
func ValidateSquareGrid[T any](grid [][]T) (int, error) {
	n := len(grid)
	if n == 0 {
		return 0, ErrBadShape
	}
	for _, row := range grid {
		if len(row) != len(grid[0]) || len(row) == 0 {
			return 0, ErrBadShape
		}
	}
	if len(grid[0]) != n {
		return 0, ErrNonSquare
	}

	return n, nil
}

// ValidateVecLen checks that v is a non-nil vector of length n.
//
// Errors:
//   - ErrDimensionMismatch — nil vector or wrong length.
//
// Complexity: O(1).
func ValidateVecLen[T any](v []T, n int) error {
	if len(v) != n {
		return ErrDimensionMismatch
	}

	return nil
}

// ValidateRHSGrid checks that b is a rectangular right-hand-side grid with
// exactly n rows and at least one column, and returns its column count.
//
// Errors:
//   - ErrDimensionMismatch — row count != n.
//   - ErrBadShape          — empty or ragged rows.
//
// Complexity: O(rows).
func ValidateRHSGrid[T any](b [][]T, n int) (int, error) {
	if len(b) != n {
		return 0, ErrDimensionMismatch
	}
	cols := len(b[0])
	if cols == 0 {
		return 0, ErrBadShape
	}
	for _, row := range b {
		if len(row) != cols {
			return 0, ErrBadShape
		}
	}

	return cols, nil
}
