package dataset

import "fmt"

// SchemaError reports a fatal data-shape problem: an empty or colliding
// normalized column name, a type mismatch, or inconsistent column lengths.
type SchemaError struct {
	Reason string
}

func (e *SchemaError) Error() string { return "schema error: " + e.Reason }

// MissingColumnError reports a requested column absent from the dataset
// after normalization.
type MissingColumnError struct {
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("missing column %q", e.Column)
}
