package model

// UnseenCode is the reserved code produced for values that were not present in
// the fit data. It is never assigned to a trained category.
const UnseenCode = 0

// CategoryMap implements a bidirectional mapping between a category value and
// its positive integer code
type CategoryMap struct {
	ValueToCode map[string]int
	CodeToValue map[int]string
}

func (m CategoryMap) Set(value string, code int) {
	m.ValueToCode[value] = code
	m.CodeToValue[code] = value
}

func (m CategoryMap) Size() int {
	return len(m.ValueToCode)
}

func (m CategoryMap) CodeFor(value string) (int, bool) {
	code, ok := m.ValueToCode[value]
	return code, ok
}

func NewCategoryMap() CategoryMap {
	return CategoryMap{
		ValueToCode: map[string]int{},
		CodeToValue: map[int]string{},
	}
}

// Learn assigns each newly seen distinct value the next unused code, starting
// at 1, in order of first appearance. Codes depend on the row order of the fit
// data, not on value ordering.
func (m CategoryMap) Learn(values []string) {
	for _, value := range values {
		if _, ok := m.ValueToCode[value]; !ok {
			m.Set(value, m.Size()+1)
		}
	}
}

// Encode maps each value to its trained code; values absent from the mapping
// encode as UnseenCode.
func (m CategoryMap) Encode(values []string) []int {
	codes := make([]int, len(values))
	for i, value := range values {
		code, ok := m.ValueToCode[value]
		if !ok {
			code = UnseenCode
		}
		codes[i] = code
	}
	return codes
}

// ColumnRole tags a fit-time column as categorical or passthrough
type ColumnRole int

const (
	Passthrough ColumnRole = iota
	Categorical
)

type Metadata struct {
	// Columns holds the fit-time column names in input order
	Columns []string

	// Roles holds the role resolved for each fit-time column, aligned with Columns
	Roles []ColumnRole

	// CategoricalColumns holds the categorical column names in processing order
	CategoricalColumns []string

	// CategoryMaps contains the trained category mapping for each categorical column
	CategoryMaps map[string]CategoryMap

	// NumColumns is the input column count recorded at fit time
	NumColumns int
}

func NewMetadata() *Metadata {
	return &Metadata{
		CategoryMaps: map[string]CategoryMap{},
	}
}

// Role returns the tag resolved for the named column at fit time. Columns
// unknown at fit time pass through.
func (d *Metadata) Role(name string) ColumnRole {
	for i, col := range d.Columns {
		if col == name {
			return d.Roles[i]
		}
	}
	return Passthrough
}

// Cardinality returns the number of distinct categories seen at fit time for
// the named column, or 0 if the column is not categorical.
func (d *Metadata) Cardinality(name string) int {
	return d.CategoryMaps[name].Size()
}
