package pkg

import (
	"github.com/nlpodyssey/spago/pkg/mat"
)

// HelmertMatrix builds the k×k Helmert contrast matrix for a category
// cardinality k. Column 0 is the constant intercept column; contrast column c
// compares category c+1 against the mean of categories 1..c:
//
//	rows 1..c:   -1/(c+1)
//	row  c+1:     c/(c+1)
//	rows below:   0
//
// The matrix depends only on k, never on the data. Rows are selected by
// category code (code 1 selects row 0).
func HelmertMatrix(k int) *mat.Dense {
	h := mat.NewEmptyDense(k, k)
	for i := 0; i < k; i++ {
		h.Set(i, 0, 1.0)
	}
	for c := 1; c < k; c++ {
		for i := 0; i < c; i++ {
			h.Set(i, c, -1.0/float64(c+1))
		}
		h.Set(c, c, float64(c)/float64(c+1))
	}
	return h
}
