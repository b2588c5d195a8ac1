// Package dataset loads the life-expectancy CSV into an immutable,
// column-oriented table with a canonical schema.
//
// Missing values are first-class: numeric columns mark them as NaN, text
// columns as the empty string. Every accessor and derived operation treats
// the marker as "absent", never as zero. A Dataset is never mutated after
// construction; row selection produces a new Dataset sharing nothing mutable
// with downstream consumers.
package dataset

import (
	"fmt"
	"math"
	"sort"
)

// Canonical column names required by the pipeline.
const (
	ColYear           = "year"
	ColStatus         = "status"
	ColCountry        = "country"
	ColLifeExpectancy = "life_expectancy"
)

// Kind discriminates column storage.
type Kind int

const (
	Numeric Kind = iota
	Text
)

// Series is a single named column. Exactly one of Nums/Texts is populated,
// matching Kind. NaN (numeric) and "" (text) mark missing cells.
type Series struct {
	Name string
	Kind Kind
	Nums []float64
	Text []string
}

func (s Series) len() int {
	if s.Kind == Numeric {
		return len(s.Nums)
	}
	return len(s.Text)
}

// Dataset is an ordered collection of equal-length columns with unique
// canonical names. It is immutable after New; callers must not modify slices
// returned by accessors.
type Dataset struct {
	series []Series
	index  map[string]int
	rows   int
}

// New builds a Dataset from columns. All columns must have equal length and
// unique names; violations are schema errors.
func New(cols ...Series) (*Dataset, error) {
	d := &Dataset{index: make(map[string]int, len(cols))}
	for i, c := range cols {
		if c.Name == "" {
			return nil, &SchemaError{Reason: fmt.Sprintf("column %d has an empty name", i)}
		}
		if _, dup := d.index[c.Name]; dup {
			return nil, &SchemaError{Reason: fmt.Sprintf("duplicate column name %q", c.Name)}
		}
		if i == 0 {
			d.rows = c.len()
		} else if c.len() != d.rows {
			return nil, &SchemaError{Reason: fmt.Sprintf("column %q has %d rows, want %d", c.Name, c.len(), d.rows)}
		}
		d.index[c.Name] = i
		d.series = append(d.series, c)
	}
	return d, nil
}

// Rows reports the number of records.
func (d *Dataset) Rows() int { return d.rows }

// Names returns the column names in schema order.
func (d *Dataset) Names() []string {
	out := make([]string, len(d.series))
	for i, s := range d.series {
		out[i] = s.Name
	}
	return out
}

// Has reports whether a column exists.
func (d *Dataset) Has(name string) bool {
	_, ok := d.index[name]
	return ok
}

func (d *Dataset) col(name string) (Series, error) {
	i, ok := d.index[name]
	if !ok {
		return Series{}, &MissingColumnError{Column: name}
	}
	return d.series[i], nil
}

// Numeric returns the float values of a numeric column (NaN = missing).
// The returned slice is shared; callers must treat it as read-only.
func (d *Dataset) Numeric(name string) ([]float64, error) {
	s, err := d.col(name)
	if err != nil {
		return nil, err
	}
	if s.Kind != Numeric {
		return nil, &SchemaError{Reason: fmt.Sprintf("column %q is not numeric", name)}
	}
	return s.Nums, nil
}

// Texts returns the string values of a text column ("" = missing).
// The returned slice is shared; callers must treat it as read-only.
func (d *Dataset) Texts(name string) ([]string, error) {
	s, err := d.col(name)
	if err != nil {
		return nil, err
	}
	if s.Kind != Text {
		return nil, &SchemaError{Reason: fmt.Sprintf("column %q is not text", name)}
	}
	return s.Text, nil
}

// Ints returns a numeric column coerced to ints. Missing or fractional
// values are schema errors; the loader guarantees the year column is clean.
func (d *Dataset) Ints(name string) ([]int, error) {
	vals, err := d.Numeric(name)
	if err != nil {
		return nil, err
	}
	out := make([]int, len(vals))
	for i, v := range vals {
		if math.IsNaN(v) {
			return nil, &SchemaError{Reason: fmt.Sprintf("column %q has a missing value at row %d", name, i)}
		}
		if v != math.Trunc(v) {
			return nil, &SchemaError{Reason: fmt.Sprintf("column %q has non-integer value %v at row %d", name, v, i)}
		}
		out[i] = int(v)
	}
	return out, nil
}

// NumericNames returns the names of all numeric columns in schema order.
func (d *Dataset) NumericNames() []string {
	var out []string
	for _, s := range d.series {
		if s.Kind == Numeric {
			out = append(out, s.Name)
		}
	}
	return out
}

// Select returns a new Dataset holding the given rows, in the given order.
// Indices outside [0, Rows) panic: selection indices always originate from a
// scan of the same dataset.
func (d *Dataset) Select(rows []int) *Dataset {
	out := &Dataset{index: make(map[string]int, len(d.series)), rows: len(rows)}
	for i, s := range d.series {
		ns := Series{Name: s.Name, Kind: s.Kind}
		if s.Kind == Numeric {
			ns.Nums = make([]float64, len(rows))
			for j, r := range rows {
				ns.Nums[j] = s.Nums[r]
			}
		} else {
			ns.Text = make([]string, len(rows))
			for j, r := range rows {
				ns.Text[j] = s.Text[r]
			}
		}
		out.index[s.Name] = i
		out.series = append(out.series, ns)
	}
	return out
}

// DistinctInts returns the sorted distinct values of an integer column.
func (d *Dataset) DistinctInts(name string) ([]int, error) {
	vals, err := d.Ints(name)
	if err != nil {
		return nil, err
	}
	seen := make(map[int]bool, 32)
	var out []int
	for _, v := range vals {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	sort.Ints(out)
	return out, nil
}

// DistinctTexts returns the sorted distinct non-missing values of a text column.
func (d *Dataset) DistinctTexts(name string) ([]string, error) {
	vals, err := d.Texts(name)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool, 8)
	var out []string
	for _, v := range vals {
		if v == "" {
			continue
		}
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	sort.Strings(out)
	return out, nil
}
