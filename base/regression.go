package base

import (
	"math"

	"github.com/lucasmaystre/golatent/kern"
	"gonum.org/v1/gonum/mat"
)

var (
	regression *Regression
	_          Model = regression // Check that Regression respects the Model interface.
)

// Regression is a Gaussian-process regression model over fixed inputs X and
// observed outputs Y. Observation noise is part of the kernel (compose the
// signal kernel with a White part).
//
// The model exposes its kernel hyperparameters in log space, so that an
// unconstrained optimizer keeps them positive.
type Regression struct {
	kernel kern.Kernel
	x      *mat.Dense // n x q input locations
	y      *mat.Dense // n x p observed outputs
}

func NewRegression(X, Y *mat.Dense, kernel kern.Kernel) *Regression {
	return &Regression{
		kernel: kernel,
		x:      X,
		y:      Y,
	}
}

func (m *Regression) Kernel() kern.Kernel {
	return m.kernel
}

func (m *Regression) X() *mat.Dense {
	return m.x
}

func (m *Regression) Y() *mat.Dense {
	return m.y
}

func (m *Regression) Params() []float64 {
	params := m.kernel.Params()
	for i, p := range params {
		params[i] = math.Log(p)
	}
	return params
}

func (m *Regression) SetParams(params []float64) {
	if len(params) != m.kernel.NumParams() {
		panic(ErrParamSize)
	}
	raw := make([]float64, len(params))
	for i, p := range params {
		raw[i] = math.Exp(p)
	}
	m.kernel.SetParams(raw)
}

func (m *Regression) ParamNames() []string {
	names := m.kernel.ParamNames()
	for i, name := range names {
		names[i] = "log_" + name
	}
	return names
}

// cov returns the Cholesky factorization of the kernel matrix over the
// current inputs.
func (m *Regression) cov() *mat.Cholesky {
	n, _ := m.x.Dims()
	K := mat.NewDense(n, n, nil)
	m.kernel.K(m.x, nil, K)
	sym := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			sym.SetSym(i, j, K.At(i, j))
		}
	}
	var chol mat.Cholesky
	if !chol.Factorize(sym) {
		panic(ErrNotPosDef)
	}
	return &chol
}

func (m *Regression) LogLikelihood() float64 {
	chol := m.cov()
	n, p := m.y.Dims()

	// alpha = K^{-1} Y
	var alpha mat.Dense
	if err := chol.SolveTo(&alpha, m.y); err != nil {
		panic(ErrNotPosDef)
	}

	// ll = -1/2 * (p * logdet(K) + tr(Y.T alpha) + n * p * log(2 pi))
	trace := 0.0
	for i := 0; i < n; i++ {
		for j := 0; j < p; j++ {
			trace += m.y.At(i, j) * alpha.At(i, j)
		}
	}
	return -0.5 * (float64(p)*chol.LogDet() + trace +
		float64(n*p)*math.Log(2.0*math.Pi))
}

// DLdK returns the gradient of the log-likelihood w.r.t. each entry of the
// kernel matrix,
//
//	dL/dK = 1/2 * (alpha alpha.T - p * K^{-1}),  alpha = K^{-1} Y.
func (m *Regression) DLdK() *mat.Dense {
	chol := m.cov()
	n, p := m.y.Dims()
	var alpha mat.Dense
	if err := chol.SolveTo(&alpha, m.y); err != nil {
		panic(ErrNotPosDef)
	}
	var inv mat.SymDense
	if err := chol.InverseTo(&inv); err != nil {
		panic(ErrNotPosDef)
	}
	out := mat.NewDense(n, n, nil)
	out.Mul(&alpha, alpha.T())
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out.Set(i, j, 0.5*(out.At(i, j)-float64(p)*inv.At(i, j)))
		}
	}
	return out
}

// thetaGradients returns the gradient of the log-likelihood w.r.t. the
// log-space hyperparameter vector, given dL/dK.
func (m *Regression) thetaGradients(dLdK *mat.Dense) []float64 {
	grad := make([]float64, m.kernel.NumParams())
	m.kernel.DKdTheta(dLdK, m.x, nil, grad)
	// Chain rule for the log transform: dL/dlog(t) = t * dL/dt.
	for i, p := range m.kernel.Params() {
		grad[i] *= p
	}
	return grad
}

func (m *Regression) Gradients() []float64 {
	return m.thetaGradients(m.DLdK())
}

// Predict returns the predictive mean (s x p) and marginal variance (s) at
// the rows of Xnew.
func (m *Regression) Predict(Xnew *mat.Dense) (*mat.Dense, []float64) {
	chol := m.cov()
	s, _ := Xnew.Dims()
	n, _ := m.x.Dims()

	Kx := mat.NewDense(s, n, nil)
	m.kernel.K(Xnew, m.x, Kx)

	// mean = Kx K^{-1} Y
	var alpha mat.Dense
	if err := chol.SolveTo(&alpha, m.y); err != nil {
		panic(ErrNotPosDef)
	}
	var mean mat.Dense
	mean.Mul(Kx, &alpha)

	// var = kdiag(Xnew) - diag(Kx K^{-1} Kx.T)
	variance := make([]float64, s)
	m.kernel.Kdiag(Xnew, variance)
	var tmp mat.Dense
	if err := chol.SolveTo(&tmp, Kx.T()); err != nil {
		panic(ErrNotPosDef)
	}
	for i := 0; i < s; i++ {
		for j := 0; j < n; j++ {
			variance[i] -= Kx.At(i, j) * tmp.At(j, i)
		}
	}
	return &mean, variance
}
