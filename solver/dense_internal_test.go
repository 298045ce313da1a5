// White-box tests for the internal grid storage.
package solver

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/densolve/numeric"
)

func TestDenseSwapRows(t *testing.T) {
	t.Parallel()
	ops := numeric.NewFloat64()
	m := denseFromGrid[float64](ops, [][]float64{{1, 2}, {3, 4}})

	m.swapRows(0, 1)
	require.Equal(t, 3.0, m.at(0, 0))
	require.Equal(t, 1.0, m.at(1, 0))
}

func TestDenseCloneIsIndependent(t *testing.T) {
	t.Parallel()
	ops := numeric.NewFloat64()
	m := denseFromGrid[float64](ops, [][]float64{{1, 2}, {3, 4}})

	c := m.clone(ops)
	c.set(0, 0, 99)
	require.Equal(t, 1.0, m.at(0, 0))
}

func TestDenseColumnRoundTrip(t *testing.T) {
	t.Parallel()
	ops := numeric.NewFloat64()
	m := newDense(ops, 2, 2)
	m.setColumn(1, []float64{5, 6})

	require.Equal(t, []float64{5, 6}, m.column(ops, 1))
	require.Equal(t, 0.0, m.at(0, 0))
}

func TestDenseString(t *testing.T) {
	t.Parallel()
	ops := numeric.NewFloat64()
	m := denseFromGrid[float64](ops, [][]float64{{1, 2}, {3, 4}})

	require.Equal(t, "1 2\n3 4\n", m.String())
}

func TestNewIdentity(t *testing.T) {
	t.Parallel()
	id := newIdentity(numeric.NewFloat64(), 3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1
			}
			require.Equal(t, want, id.at(i, j))
		}
	}
}
