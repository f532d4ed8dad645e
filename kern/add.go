package kern

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

var (
	add *Add
	_   Kernel = add // Check that Add respects the Kernel interface.
)

// Add is the sum of several kernel parts over the same input space. Its
// parameter vector is the concatenation of the parts' parameter vectors.
type Add struct {
	parts     []Kernel
	dim       int
	numParams int
}

func NewAdd(first, second Kernel) *Add {
	parts := make([]Kernel, 0, 2)
	switch first := first.(type) {
	case *Add:
		parts = append(parts, first.parts...)
	default:
		parts = append(parts, first)
	}
	switch second := second.(type) {
	case *Add:
		parts = append(parts, second.parts...)
	default:
		parts = append(parts, second)
	}
	dim := parts[0].InputDim()
	numParams := 0
	for _, part := range parts {
		if part.InputDim() != dim {
			panic(ErrDimMismatch)
		}
		numParams += part.NumParams()
	}
	return &Add{
		parts:     parts,
		dim:       dim,
		numParams: numParams,
	}
}

func (k *Add) InputDim() int {
	return k.dim
}

func (k *Add) NumParams() int {
	return k.numParams
}

func (k *Add) Name() string {
	return "add"
}

func (k *Add) Params() []float64 {
	params := make([]float64, 0, k.numParams)
	for _, part := range k.parts {
		params = append(params, part.Params()...)
	}
	return params
}

func (k *Add) SetParams(params []float64) {
	if len(params) != k.numParams {
		panic(ErrParamSize)
	}
	offset := 0
	for _, part := range k.parts {
		part.SetParams(params[offset : offset+part.NumParams()])
		offset += part.NumParams()
	}
}

func (k *Add) ParamNames() []string {
	names := make([]string, 0, k.numParams)
	for i, part := range k.parts {
		for _, name := range part.ParamNames() {
			names = append(names, fmt.Sprintf("%s_%d_%s", part.Name(), i, name))
		}
	}
	return names
}

func (k *Add) K(X, X2 mat.Matrix, target *mat.Dense) {
	for _, part := range k.parts {
		part.K(X, X2, target)
	}
}

func (k *Add) Kdiag(X mat.Matrix, target []float64) {
	for _, part := range k.parts {
		part.Kdiag(X, target)
	}
}

func (k *Add) DKdTheta(partial, X, X2 mat.Matrix, target []float64) {
	offset := 0
	for _, part := range k.parts {
		part.DKdTheta(partial, X, X2, target[offset:offset+part.NumParams()])
		offset += part.NumParams()
	}
}

func (k *Add) DKdiagDTheta(partial []float64, X mat.Matrix, target []float64) {
	offset := 0
	for _, part := range k.parts {
		part.DKdiagDTheta(partial, X, target[offset:offset+part.NumParams()])
		offset += part.NumParams()
	}
}

func (k *Add) DKdX(partial, X, X2 mat.Matrix, target *mat.Dense) {
	for _, part := range k.parts {
		part.DKdX(partial, X, X2, target)
	}
}

func (k *Add) DKdiagDX(X mat.Matrix, target *mat.Dense) {
	for _, part := range k.parts {
		part.DKdiagDX(X, target)
	}
}
