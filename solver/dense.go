// Package solver: internal row-major grid storage.
// dense is the flat backing store for the matrix, the LU working copy, the
// Cholesky factor and matrix right-hand sides. It is unexported: the public
// surface exchanges [][]T grids, and every crossing of that boundary is a
// deep copy, so callers can never alias internal state.

package solver

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/densolve/numeric"
)

// dense is a row-major r×c grid of contract values.
// Indexing is unchecked: shapes are validated at the public boundary and all
// internal loops stay within them.
type dense[T any] struct {
	r, c int // number of rows and columns
	data []T // flat backing storage, length == r*c
}

// newDense allocates an r×c grid filled with ops.Zero().
// Complexity: O(r*c) time and memory.
func newDense[T any](ops numeric.Arithmetic[T], rows, cols int) *dense[T] {
	data := make([]T, rows*cols)
	for i := range data {
		data[i] = ops.Zero()
	}

	return &dense[T]{r: rows, c: cols, data: data}
}

// newIdentity allocates the n×n identity grid.
// Complexity: O(n^2).
func newIdentity[T any](ops numeric.Arithmetic[T], n int) *dense[T] {
	m := newDense(ops, n, n)
	for i := 0; i < n; i++ {
		m.data[i*n+i] = ops.One()
	}

	return m
}

// denseFromGrid deep-copies a rectangular grid (validated by the caller).
// Complexity: O(r*c).
func denseFromGrid[T any](ops numeric.Arithmetic[T], grid [][]T) *dense[T] {
	rows, cols := len(grid), len(grid[0])
	data := make([]T, rows*cols)
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			data[i*cols+j] = ops.Clone(grid[i][j])
		}
	}

	return &dense[T]{r: rows, c: cols, data: data}
}

// at reads element (i, j). Unchecked.
func (m *dense[T]) at(i, j int) T { return m.data[i*m.c+j] }

// set writes element (i, j). Unchecked.
func (m *dense[T]) set(i, j int, v T) { m.data[i*m.c+j] = v }

// swapRows exchanges rows a and b in place.
// Complexity: O(c).
func (m *dense[T]) swapRows(a, b int) {
	ra, rb := a*m.c, b*m.c
	for j := 0; j < m.c; j++ {
		m.data[ra+j], m.data[rb+j] = m.data[rb+j], m.data[ra+j]
	}
}

// clone returns an independent deep copy (element-wise Clone, so
// pointer-backed contract values do not alias).
// Complexity: O(r*c).
func (m *dense[T]) clone(ops numeric.Arithmetic[T]) *dense[T] {
	data := make([]T, len(m.data))
	for i, v := range m.data {
		data[i] = ops.Clone(v)
	}

	return &dense[T]{r: m.r, c: m.c, data: data}
}

// grid exports a deep-copied [][]T view for the public surface.
// Complexity: O(r*c).
func (m *dense[T]) grid(ops numeric.Arithmetic[T]) [][]T {
	out := make([][]T, m.r)
	var i, j int
	for i = 0; i < m.r; i++ {
		row := make([]T, m.c)
		for j = 0; j < m.c; j++ {
			row[j] = ops.Clone(m.data[i*m.c+j])
		}
		out[i] = row
	}

	return out
}

// column extracts a deep copy of column j.
// Complexity: O(r).
func (m *dense[T]) column(ops numeric.Arithmetic[T], j int) []T {
	out := make([]T, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = ops.Clone(m.data[i*m.c+j])
	}

	return out
}

// setColumn writes vector v into column j (values stored as given; callers
// pass freshly computed values).
// Complexity: O(r).
func (m *dense[T]) setColumn(j int, v []T) {
	for i := 0; i < m.r; i++ {
		m.data[i*m.c+j] = v[i]
	}
}

// String renders the grid row per line for debugging output.
func (m *dense[T]) String() string {
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			if j > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%v", m.data[i*m.c+j])
		}
		b.WriteByte('\n')
	}

	return b.String()
}
