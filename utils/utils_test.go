package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestEye(t *testing.T) {
	I := Eye(3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if i == j {
				assert.Equal(t, 1.0, I.At(i, j))
			} else {
				assert.Equal(t, 0.0, I.At(i, j))
			}
		}
	}
}

func TestPCA(t *testing.T) {
	// Rank-1 data: the first component carries all the variance.
	Y := mat.NewDense(4, 3, []float64{
		1.0, 2.0, 3.0,
		2.0, 4.0, 6.0,
		3.0, 6.0, 9.0,
		4.0, 8.0, 12.0,
	})
	X := PCA(Y, 2)
	n, q := X.Dims()
	require.Equal(t, 4, n)
	require.Equal(t, 2, q)

	for j := 0; j < q; j++ {
		mean := 0.0
		norm := 0.0
		for i := 0; i < n; i++ {
			mean += X.At(i, j)
			norm += X.At(i, j) * X.At(i, j)
		}
		assert.InDelta(t, 0.0, mean/float64(n), 1e-10)
		if j == 1 {
			assert.InDelta(t, 0.0, norm, 1e-10)
		}
	}
}
