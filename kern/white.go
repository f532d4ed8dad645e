package kern

import (
	"gonum.org/v1/gonum/mat"
)

var (
	white *White
	_     Kernel = white // Check that White respects the Kernel interface.
)

// White noise kernel: k(x, y) = variance if x and y are the same sample,
// 0 otherwise. Off-diagonal blocks of a cross-covariance are always zero,
// so the kernel only contributes when X2 is absent.
type White struct {
	dim      int
	variance float64
}

func NewWhite(dim int, variance float64) *White {
	return &White{
		dim:      dim,
		variance: variance,
	}
}

func (k *White) InputDim() int {
	return k.dim
}

func (k *White) NumParams() int {
	return 1
}

func (k *White) Name() string {
	return "white"
}

func (k *White) Params() []float64 {
	return []float64{k.variance}
}

func (k *White) SetParams(params []float64) {
	if len(params) != 1 {
		panic(ErrParamSize)
	}
	k.variance = params[0]
}

func (k *White) ParamNames() []string {
	return []string{"variance"}
}

func (k *White) K(X, X2 mat.Matrix, target *mat.Dense) {
	if X2 != nil {
		return
	}
	n, _ := X.Dims()
	for i := 0; i < n; i++ {
		target.Set(i, i, target.At(i, i)+k.variance)
	}
}

func (k *White) Kdiag(X mat.Matrix, target []float64) {
	n, _ := X.Dims()
	for i := 0; i < n; i++ {
		target[i] += k.variance
	}
}

func (k *White) DKdTheta(partial, X, X2 mat.Matrix, target []float64) {
	if X2 != nil {
		return
	}
	n, _ := X.Dims()
	for i := 0; i < n; i++ {
		target[0] += partial.At(i, i)
	}
}

func (k *White) DKdiagDTheta(partial []float64, X mat.Matrix, target []float64) {
	for _, p := range partial {
		target[0] += p
	}
}

func (k *White) DKdX(partial, X, X2 mat.Matrix, target *mat.Dense) {
	// White noise does not depend on the input locations.
}

func (k *White) DKdiagDX(X mat.Matrix, target *mat.Dense) {
}
