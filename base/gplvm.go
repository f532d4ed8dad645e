package base

import (
	"fmt"

	"github.com/lucasmaystre/golatent/kern"
	"github.com/lucasmaystre/golatent/utils"
	"gonum.org/v1/gonum/mat"
)

var (
	gplvm *GPLVM
	_     Model = gplvm // Check that GPLVM respects the Model interface.
)

// GPLVM is a Gaussian-process latent variable model: a regression model
// whose input locations are themselves free parameters, jointly optimized
// with the kernel hyperparameters. The flat parameter vector is the
// row-major flattening of the latent coordinates followed by the kernel's
// log-space hyperparameters.
type GPLVM struct {
	Regression
	latentDim int
}

// NewGPLVM builds a latent variable model for the observed data Y with
// latent dimensionality q. If X is nil, the latent coordinates are
// initialized by projecting Y onto its top q principal components.
func NewGPLVM(Y *mat.Dense, q int, kernel kern.Kernel, X *mat.Dense) *GPLVM {
	if X == nil {
		X = utils.PCA(Y, q)
	}
	return &GPLVM{
		Regression: *NewRegression(X, Y, kernel),
		latentDim:  q,
	}
}

func (m *GPLVM) LatentDim() int {
	return m.latentDim
}

func (m *GPLVM) Params() []float64 {
	n, q := m.x.Dims()
	params := make([]float64, 0, n*q+m.kernel.NumParams())
	for i := 0; i < n; i++ {
		for j := 0; j < q; j++ {
			params = append(params, m.x.At(i, j))
		}
	}
	return append(params, m.Regression.Params()...)
}

func (m *GPLVM) SetParams(params []float64) {
	n, q := m.x.Dims()
	if len(params) != n*q+m.kernel.NumParams() {
		panic(ErrParamSize)
	}
	// The latent block is copied into a fresh matrix; the model never
	// aliases the optimizer's buffer.
	latent := make([]float64, n*q)
	copy(latent, params[:n*q])
	m.x = mat.NewDense(n, q, latent)
	m.Regression.SetParams(params[n*q:])
}

func (m *GPLVM) ParamNames() []string {
	n, q := m.x.Dims()
	names := make([]string, 0, n*q+m.kernel.NumParams())
	for j := 0; j < q; j++ {
		for i := 0; i < n; i++ {
			names = append(names, fmt.Sprintf("X_%d_%d", i, j))
		}
	}
	return append(names, m.Regression.ParamNames()...)
}

func (m *GPLVM) Gradients() []float64 {
	dLdK := m.DLdK()
	dTheta := m.thetaGradients(dLdK)

	// X appears on both sides of the symmetric kernel matrix, so the
	// derivative w.r.t. its first occurrence is doubled.
	n, q := m.x.Dims()
	dX := mat.NewDense(n, q, nil)
	m.kernel.DKdX(dLdK, m.x, nil, dX)

	grad := make([]float64, 0, n*q+len(dTheta))
	for i := 0; i < n; i++ {
		for j := 0; j < q; j++ {
			grad = append(grad, 2.0*dX.At(i, j))
		}
	}
	return append(grad, dTheta...)
}
