package pkg

import (
	"gonum.org/v1/gonum/stat"

	"helmert/pkg/io"
	"helmert/pkg/model"
)

// varianceThreshold marks a column as invariant when its sample variance is at
// or below this value. The intercept column is exactly constant, so it is
// always caught.
const varianceThreshold = 1e-5

// invariantColumns returns the names of the near-constant numeric columns of
// the fully expanded fit-time output. String columns have no variance and are
// never marked.
func invariantColumns(t *io.Table) model.ColumnSet {
	drop := model.NewColumnSet()
	for _, col := range t.Columns {
		if !col.Numeric() {
			continue
		}
		if stat.Variance(col.Floats, nil) <= varianceThreshold {
			drop.Add(col.Name)
		}
	}
	return drop
}
