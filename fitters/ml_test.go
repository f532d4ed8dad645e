package fitters

import (
	"math"
	"testing"

	"github.com/lucasmaystre/golatent/base"
	"github.com/lucasmaystre/golatent/kern"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestMaximumLikelihoodRegression(t *testing.T) {
	kernel := kern.NewAdd(
		kern.NewExponential(1, 0.5, []float64{2.0}, false),
		kern.NewWhite(1, 0.5),
	)
	X := mat.NewDense(6, 1, []float64{0.0, 0.5, 1.0, 1.5, 2.0, 2.5})
	Y := mat.NewDense(6, 1, nil)
	for i := 0; i < 6; i++ {
		Y.Set(i, 0, math.Sin(X.At(i, 0)))
	}
	m := base.NewRegression(X, Y, kernel)

	before := m.LogLikelihood()
	after, err := MaximumLikelihood(m, 200, false)
	require.NoError(t, err)
	assert.Greater(t, after, before)

	// The model is left at the fitted parameters.
	assert.InDelta(t, after, m.LogLikelihood(), 1e-9)
}

func TestMaximumLikelihoodGPLVM(t *testing.T) {
	kernel := kern.NewAdd(
		kern.NewExponential(2, 1.0, nil, false),
		kern.NewWhite(2, 0.1),
	)
	Y := mat.NewDense(5, 3, []float64{
		0.5, -0.2, 1.0,
		1.3, 0.7, -0.5,
		-0.8, 1.1, 0.4,
		0.2, -1.0, 0.9,
		0.8, 0.3, -0.2,
	})
	m := base.NewGPLVM(Y, 2, kernel, nil)

	before := m.LogLikelihood()
	after, err := MaximumLikelihood(m, 50, false)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, after, before)
}
