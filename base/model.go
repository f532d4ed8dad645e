package base

import (
	"errors"
)

var ErrNotPosDef = errors.New("covariance matrix is not positive definite")
var ErrParamSize = errors.New("parameter vector has the wrong length")

// Model is an objective + gradient oracle over a flat parameter vector, as
// consumed by the fitters.
type Model interface {
	// Current flat parameter vector.
	Params() []float64

	// Overwrite the flat parameter vector.
	SetParams(params []float64)

	// Parameter names, aligned positionally with Params.
	ParamNames() []string

	// Marginal log-likelihood of the data under the current parameters.
	LogLikelihood() float64

	// Gradient of the log-likelihood w.r.t. the flat parameter vector.
	Gradients() []float64
}
