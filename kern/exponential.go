package kern

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/integrate/quad"
	"gonum.org/v1/gonum/mat"
)

var (
	exponential *Exponential
	_           Kernel = exponential // Check that Exponential respects the Kernel interface.
)

// Exponential kernel (aka Ornstein-Uhlenbeck or Matern 1/2),
//
//	k(r) = variance * exp(-r),  r = sqrt(sum_d ((x_d - y_d) / l_d)^2).
//
// With ARD there is one lengthscale per input dimension, otherwise a single
// lengthscale is shared across dimensions.
type Exponential struct {
	dim         int
	ard         bool
	variance    float64
	lengthscale []float64

	// GramTol is the relative tolerance of the quadrature used by
	// GramMatrix.
	GramTol float64
}

func NewExponential(dim int, variance float64, lengthscale []float64, ard bool) *Exponential {
	size := 1
	if ard {
		size = dim
	}
	ls := make([]float64, size)
	if lengthscale == nil {
		for i := range ls {
			ls[i] = 1.0
		}
	} else {
		if len(lengthscale) != size {
			panic(ErrLengthscaleSize)
		}
		copy(ls, lengthscale)
	}
	return &Exponential{
		dim:         dim,
		ard:         ard,
		variance:    variance,
		lengthscale: ls,
		GramTol:     1e-8,
	}
}

func (k *Exponential) InputDim() int {
	return k.dim
}

func (k *Exponential) NumParams() int {
	return 1 + len(k.lengthscale)
}

func (k *Exponential) Name() string {
	if k.ard {
		return "exp_ard"
	}
	return "exp"
}

func (k *Exponential) Params() []float64 {
	params := make([]float64, k.NumParams())
	params[0] = k.variance
	copy(params[1:], k.lengthscale)
	return params
}

func (k *Exponential) SetParams(params []float64) {
	if len(params) != k.NumParams() {
		panic(ErrParamSize)
	}
	k.variance = params[0]
	copy(k.lengthscale, params[1:])
}

func (k *Exponential) ParamNames() []string {
	if !k.ard {
		return []string{"variance", "lengthscale"}
	}
	names := make([]string, k.NumParams())
	names[0] = "variance"
	for i := range k.lengthscale {
		names[1+i] = fmt.Sprintf("lengthscale_%d", i)
	}
	return names
}

// ell returns the lengthscale for input dimension d.
func (k *Exponential) ell(d int) float64 {
	if k.ard {
		return k.lengthscale[d]
	}
	return k.lengthscale[0]
}

// dist returns the scaled Euclidean distance between row i of X and row j
// of X2.
func (k *Exponential) dist(X, X2 mat.Matrix, i, j int) float64 {
	r2 := 0.0
	for d := 0; d < k.dim; d++ {
		diff := (X.At(i, d) - X2.At(j, d)) / k.ell(d)
		r2 += diff * diff
	}
	return math.Sqrt(r2)
}

func (k *Exponential) K(X, X2 mat.Matrix, target *mat.Dense) {
	if X2 == nil {
		X2 = X
	}
	n, _ := X.Dims()
	m, _ := X2.Dims()
	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			v := k.variance * math.Exp(-k.dist(X, X2, i, j))
			target.Set(i, j, target.At(i, j)+v)
		}
	}
}

func (k *Exponential) Kdiag(X mat.Matrix, target []float64) {
	// r = 0 on the diagonal, so k(r) = variance.
	n, _ := X.Dims()
	for i := 0; i < n; i++ {
		target[i] += k.variance
	}
}

func (k *Exponential) DKdTheta(partial, X, X2 mat.Matrix, target []float64) {
	if X2 == nil {
		X2 = X
	}
	n, _ := X.Dims()
	m, _ := X2.Dims()
	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			r := k.dist(X, X2, i, j)
			dvar := math.Exp(-r)
			p := partial.At(i, j)
			target[0] += dvar * p

			// 1/r is taken to be 0 when r == 0: the lengthscale
			// gradient vanishes for coincident rows (exact limit).
			if r == 0 {
				continue
			}
			if k.ard {
				for d := 0; d < k.dim; d++ {
					diff := X.At(i, d) - X2.At(j, d)
					l := k.lengthscale[d]
					target[1+d] += k.variance * dvar * diff * diff / (l * l * l) / r * p
				}
			} else {
				l := k.lengthscale[0]
				sum := 0.0
				for d := 0; d < k.dim; d++ {
					diff := X.At(i, d) - X2.At(j, d)
					sum += diff * diff
				}
				target[1] += k.variance * dvar * sum / (l * l * l) / r * p
			}
		}
	}
}

func (k *Exponential) DKdiagDTheta(partial []float64, X mat.Matrix, target []float64) {
	// The diagonal is constant in the lengthscale; only the variance
	// slot receives a contribution.
	for _, p := range partial {
		target[0] += p
	}
}

func (k *Exponential) DKdX(partial, X, X2 mat.Matrix, target *mat.Dense) {
	if X2 == nil {
		X2 = X
	}
	n, _ := X.Dims()
	m, _ := X2.Dims()
	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			r := k.dist(X, X2, i, j)
			if r == 0 {
				// Same masking as DKdTheta.
				continue
			}
			c := -k.variance * math.Exp(-r) / r * partial.At(i, j)
			for d := 0; d < k.dim; d++ {
				l := k.ell(d)
				diff := (X.At(i, d) - X2.At(j, d)) / (l * l)
				target.Set(i, d, target.At(i, d)+c*diff)
			}
		}
	}
}

func (k *Exponential) DKdiagDX(X mat.Matrix, target *mat.Dense) {
	// The diagonal does not depend on X.
}

// GramMatrix returns the Gram matrix of the functions F with respect to the
// RKHS norm induced by the kernel. F1 holds the derivatives of F. The use
// of this function is limited to a 1-dimensional input space.
func (k *Exponential) GramMatrix(F, F1 []func(float64) float64, lower, upper float64) *mat.Dense {
	if k.dim != 1 {
		panic(ErrNotUnivariate)
	}
	ell := k.lengthscale[0]
	// L is the differential operator associated to the kernel,
	//     L[f](x) = f(x) / l + f'(x).
	L := func(i int) func(float64) float64 {
		return func(x float64) float64 {
			return F[i](x)/ell + F1[i](x)
		}
	}
	n := len(F)
	G := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		li := L(i)
		for j := i; j < n; j++ {
			lj := L(j)
			v := adaptiveQuad(func(x float64) float64 {
				return li(x) * lj(x)
			}, lower, upper, k.GramTol)
			G.Set(i, j, v)
			G.Set(j, i, v)
		}
	}
	flower := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		flower.SetVec(i, F[i](lower))
	}
	// G = l / (2 * variance) * G + 1 / variance * outer(flower, flower)
	G.Scale(ell/(2.0*k.variance), G)
	var outer mat.Dense
	outer.Outer(1.0/k.variance, flower, flower)
	G.Add(G, &outer)
	return G
}

// adaptiveQuad integrates f over [lower, upper] with Gauss-Legendre rules of
// increasing order until two successive estimates agree to the relative
// tolerance tol.
func adaptiveQuad(f func(float64) float64, lower, upper, tol float64) float64 {
	const maxNodes = 4096
	prev := quad.Fixed(f, lower, upper, 16, nil, 0)
	for nodes := 32; nodes <= maxNodes; nodes *= 2 {
		next := quad.Fixed(f, lower, upper, nodes, nil, 0)
		if math.Abs(next-prev) <= tol*(1.0+math.Abs(next)) {
			return next
		}
		prev = next
	}
	return prev
}
