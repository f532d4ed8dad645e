package utils

import (
	"errors"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

var ErrPCA = errors.New("principal component decomposition failed")

// Identity Matrix.
func Eye(n int) *mat.Dense {
	out := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		out.Set(i, i, 1)
	}
	return out
}

// PCA projects the rows of Y onto their top q principal components.
func PCA(Y mat.Matrix, q int) *mat.Dense {
	n, p := Y.Dims()
	centered := mat.NewDense(n, p, nil)
	for j := 0; j < p; j++ {
		mean := 0.0
		for i := 0; i < n; i++ {
			mean += Y.At(i, j)
		}
		mean /= float64(n)
		for i := 0; i < n; i++ {
			centered.Set(i, j, Y.At(i, j)-mean)
		}
	}
	var pc stat.PC
	if ok := pc.PrincipalComponents(centered, nil); !ok {
		panic(ErrPCA)
	}
	var vecs mat.Dense
	pc.VectorsTo(&vecs)
	proj := mat.NewDense(n, q, nil)
	proj.Mul(centered, vecs.Slice(0, p, 0, q))
	return proj
}
