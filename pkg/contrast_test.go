package pkg

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

func TestHelmertMatrixK3(t *testing.T) {
	h := HelmertMatrix(3)
	require.Equal(t, 3, h.Rows())
	require.Equal(t, 3, h.Columns())
	require.Equal(t, []float64{
		1, -1.0 / 2, -1.0 / 3,
		1, 1.0 / 2, -1.0 / 3,
		1, 0, 2.0 / 3,
	}, h.Data())
}

func TestHelmertMatrixShape(t *testing.T) {
	for k := 1; k <= 6; k++ {
		h := HelmertMatrix(k)
		require.Equal(t, k, h.Rows())
		require.Equal(t, k, h.Columns())
	}
}

func TestHelmertMatrixOrthogonality(t *testing.T) {
	const k = 5
	h := HelmertMatrix(k)

	columns := make([][]float64, k)
	for j := 0; j < k; j++ {
		columns[j] = make([]float64, k)
		for i := 0; i < k; i++ {
			columns[j][i] = h.At(i, j)
		}
	}

	for i := 0; i < k; i++ {
		require.Equal(t, 1.0, columns[0][i])
	}
	for a := 1; a < k; a++ {
		require.InDelta(t, 0, floats.Sum(columns[a]), 1e-12)
		for b := a + 1; b < k; b++ {
			require.InDelta(t, 0, floats.Dot(columns[a], columns[b]), 1e-12)
		}
	}
}
