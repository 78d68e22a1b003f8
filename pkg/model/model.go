package model

// ColumnSet is a set of output column names
type ColumnSet map[string]bool

func NewColumnSet(names ...string) ColumnSet {
	set := ColumnSet{}
	for _, name := range names {
		set.Add(name)
	}
	return set
}

func (s ColumnSet) Add(name string) {
	s[name] = true
}

func (s ColumnSet) Contains(name string) bool {
	return s[name]
}

func (s ColumnSet) Size() int {
	return len(s)
}

// Model is the fitted encoder snapshot. It is immutable once fit completes and
// may be shared by concurrent transforms.
type Model struct {
	MetaData *Metadata

	// DropColumns contains the invariant output columns removed from every
	// transform when pruning was enabled at fit time
	DropColumns ColumnSet
}
