package pkg

import (
	"fmt"
	"math"

	"helmert/pkg/io"
	"helmert/pkg/model"
)

// expandCategorical replaces every categorical column with its block of
// contrast columns. Each source column of trained cardinality k yields k
// output columns named <source>_0 .. <source>_k-1, where position 0 is the
// intercept. Rows carrying the unseen code expand to NaN across the whole
// block. The output holds the expanded blocks in processing order followed by
// the passthrough columns in their original order; the input table is never
// modified.
func expandCategorical(t *io.Table, metaData *model.Metadata) (*io.Table, error) {
	out := &io.Table{}
	for _, name := range metaData.CategoricalColumns {
		col, ok := t.ColumnByName(name)
		if !ok {
			return nil, fmt.Errorf("categorical column %s not found in input", name)
		}
		block, err := expandColumn(col, metaData.CategoryMaps[name])
		if err != nil {
			return nil, err
		}
		out.Columns = append(out.Columns, block...)
	}
	for _, col := range t.Columns {
		if metaData.Role(col.Name) == model.Categorical {
			continue
		}
		out.Columns = append(out.Columns, col.Copy())
	}
	return out, nil
}

func expandColumn(col *io.Column, categories model.CategoryMap) ([]*io.Column, error) {
	k := categories.Size()
	if k == 0 {
		return nil, fmt.Errorf("no categories trained for column %s", col.Name)
	}
	codes := categories.Encode(col.StringValues())
	contrasts := HelmertMatrix(k)

	block := make([]*io.Column, k)
	for j := range block {
		block[j] = &io.Column{
			Name:   fmt.Sprintf("%s_%d", col.Name, j),
			Floats: make([]float64, len(codes)),
		}
	}
	for i, code := range codes {
		for j := 0; j < k; j++ {
			if code == model.UnseenCode {
				block[j].Floats[i] = math.NaN()
			} else {
				block[j].Floats[i] = contrasts.At(code-1, j)
			}
		}
	}
	return block, nil
}

// dropColumns removes the named columns, preserving the order of the rest.
// Names absent from the table are ignored.
func dropColumns(t *io.Table, drop model.ColumnSet) *io.Table {
	if drop.Size() == 0 {
		return t
	}
	out := &io.Table{}
	for _, col := range t.Columns {
		if drop.Contains(col.Name) {
			continue
		}
		out.Columns = append(out.Columns, col)
	}
	return out
}
