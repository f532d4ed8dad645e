package kern

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

var ErrParamSize = errors.New("parameter vector has the wrong length")
var ErrLengthscaleSize = errors.New("lengthscale vector has the wrong length")
var ErrNotUnivariate = errors.New("operation requires a 1-dimensional input space")
var ErrDimMismatch = errors.New("kernel parts have mismatched input dimensions")

// Kernel is a parametrized covariance function over a D-dimensional input
// space. Every output is accumulated into a caller-supplied target, so that
// composite kernels can sum the contributions of their parts without
// intermediate allocations; callers zero targets before the first
// contribution. A nil X2 means X2 = X.
type Kernel interface {
	// Dimensionality of the input space, :math:`D`.
	InputDim() int

	// Number of hyperparameters.
	NumParams() int

	// Current hyperparameter vector.
	Params() []float64

	// Overwrite the hyperparameter vector.
	SetParams(params []float64)

	// Hyperparameter names, aligned positionally with Params.
	ParamNames() []string

	// Covariance matrix between the rows of X and X2, added into target.
	K(X, X2 mat.Matrix, target *mat.Dense)

	// Diagonal of the covariance matrix of X, added into target.
	Kdiag(X mat.Matrix, target []float64)

	// Gradient of the loss w.r.t. the hyperparameters, added into target.
	// partial is the upstream gradient :math:`\partial L / \partial K`.
	DKdTheta(partial, X, X2 mat.Matrix, target []float64)

	// Gradient of the loss w.r.t. the hyperparameters through the
	// diagonal of K only, added into target.
	DKdiagDTheta(partial []float64, X mat.Matrix, target []float64)

	// Gradient of the loss w.r.t. the rows of X (the first argument
	// only), added into target (N x D).
	DKdX(partial, X, X2 mat.Matrix, target *mat.Dense)

	// Gradient of the diagonal of K w.r.t. X, added into target (N x D).
	DKdiagDX(X mat.Matrix, target *mat.Dense)

	// Short name, used to prefix parameter names in composite kernels.
	Name() string
}
