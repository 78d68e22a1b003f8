package pkg

import "fmt"

// NotFittedError is returned by Transform when Fit has not been called.
type NotFittedError struct{}

func (e NotFittedError) Error() string {
	return "encoder must be fitted before it can be used to transform data"
}

// DimensionMismatchError is returned by Transform when the input column count
// differs from the one recorded at fit time.
type DimensionMismatchError struct {
	Expected int
	Actual   int
}

func (e DimensionMismatchError) Error() string {
	return fmt.Sprintf("unexpected input dimension %d, expected %d", e.Actual, e.Expected)
}
