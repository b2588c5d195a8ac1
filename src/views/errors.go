package views

import "fmt"

// EmptyInputError reports an aggregation that requires at least one row (or
// one non-missing value) receiving none. Downstream views that can express
// "no data" in their result shape do so instead of returning this error.
type EmptyInputError struct {
	Op string
}

func (e *EmptyInputError) Error() string {
	return fmt.Sprintf("%s: empty input", e.Op)
}
