package fitters

import (
	"fmt"

	"github.com/lucasmaystre/golatent/base"
	"gonum.org/v1/gonum/optimize"
)

// MaximumLikelihood fits a model by maximizing its marginal log-likelihood
// with L-BFGS over the model's flat parameter vector. The model is left at
// the best parameters found, and the corresponding log-likelihood is
// returned. maxIter bounds the number of major iterations; zero means no
// bound.
func MaximumLikelihood(m base.Model, maxIter int, verbose bool) (float64, error) {
	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			m.SetParams(x)
			return -m.LogLikelihood()
		},
		Grad: func(grad, x []float64) {
			m.SetParams(x)
			for i, g := range m.Gradients() {
				grad[i] = -g
			}
		},
	}
	settings := &optimize.Settings{
		MajorIterations: maxIter,
	}
	result, err := optimize.Minimize(problem, m.Params(), settings, &optimize.LBFGS{})
	if result != nil {
		m.SetParams(result.X)
	}
	if err != nil {
		return 0, err
	}
	if verbose {
		fmt.Printf("Fit finished: status %v, %v iterations, log-likelihood %.6f\n",
			result.Status, result.MajorIterations, -result.F)
	}
	return -result.F, nil
}
