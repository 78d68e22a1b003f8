package io

import (
	"fmt"
	"strconv"

	"github.com/nlpodyssey/spago/pkg/mat"
)

// Column is one named column of a Table. Exactly one of Floats and Strings is
// populated; string-backed columns are the ones auto-detected as categorical.
type Column struct {
	Name    string
	Floats  []float64
	Strings []string
}

func (c *Column) Numeric() bool {
	return c.Floats != nil
}

func (c *Column) Len() int {
	if c.Numeric() {
		return len(c.Floats)
	}
	return len(c.Strings)
}

// Cell renders the value at row i as a string.
func (c *Column) Cell(i int) string {
	if c.Numeric() {
		return strconv.FormatFloat(c.Floats[i], 'g', -1, 64)
	}
	return c.Strings[i]
}

// StringValues returns every cell of the column rendered as a string. Numeric
// columns are formatted, so a float column can still be treated as categorical
// when explicitly selected.
func (c *Column) StringValues() []string {
	if !c.Numeric() {
		return c.Strings
	}
	values := make([]string, len(c.Floats))
	for i := range c.Floats {
		values[i] = c.Cell(i)
	}
	return values
}

func (c *Column) Copy() *Column {
	out := &Column{Name: c.Name}
	if c.Floats != nil {
		out.Floats = append([]float64(nil), c.Floats...)
	}
	if c.Strings != nil {
		out.Strings = append([]string(nil), c.Strings...)
	}
	return out
}

// Table is the canonical in-memory dataset: an ordered sequence of named
// columns with rows aligned by position.
type Table struct {
	Columns []*Column
}

func NewTable(columns ...*Column) *Table {
	return &Table{Columns: columns}
}

func (t *Table) NumColumns() int {
	return len(t.Columns)
}

func (t *Table) NumRows() int {
	if len(t.Columns) == 0 {
		return 0
	}
	return t.Columns[0].Len()
}

func (t *Table) ColumnByName(name string) (*Column, bool) {
	for _, col := range t.Columns {
		if col.Name == name {
			return col, true
		}
	}
	return nil, false
}

// ColumnNames returns the column names in table order.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		names[i] = col.Name
	}
	return names
}

// Validate checks that all columns hold the same number of rows.
func (t *Table) Validate() error {
	if len(t.Columns) == 0 {
		return nil
	}
	rows := t.Columns[0].Len()
	for _, col := range t.Columns[1:] {
		if col.Len() != rows {
			return fmt.Errorf("column %s has %d rows, expected %d", col.Name, col.Len(), rows)
		}
	}
	return nil
}

// Matrix renders the table as a dense row-major matrix. It fails if any column
// is string backed, since those values have no numeric rendering.
func (t *Table) Matrix() (*mat.Dense, error) {
	for _, col := range t.Columns {
		if !col.Numeric() {
			return nil, fmt.Errorf("column %s is not numeric", col.Name)
		}
	}
	out := mat.NewEmptyDense(t.NumRows(), t.NumColumns())
	for j, col := range t.Columns {
		for i, value := range col.Floats {
			out.Set(i, j, value)
		}
	}
	return out, nil
}
