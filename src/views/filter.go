// Package views turns a filtered dataset into the derived tables the charts
// consume: filter engine, yearly mean, top-N ranking, scatter projection,
// histogram, grouped five-number summaries and a pairwise-complete Pearson
// correlation matrix.
//
// Every function here is a pure, deterministic function of its inputs and
// never mutates the dataset it is given, so a host may recompute any number
// of views concurrently after a filter change without synchronization.
package views

import (
	"github.com/mvermaas/LifeExpectancyExplorer/src/dataset"
)

// YearSet and StatusSet are membership selections. A nil map is distinct
// from an empty one only by convention at call sites; Filter treats both as
// "select nothing".
type (
	YearSet   map[int]bool
	StatusSet map[string]bool
)

// YearSetOf builds a YearSet from a slice.
func YearSetOf(years []int) YearSet {
	s := make(YearSet, len(years))
	for _, y := range years {
		s[y] = true
	}
	return s
}

// StatusSetOf builds a StatusSet from a slice.
func StatusSetOf(statuses []string) StatusSet {
	s := make(StatusSet, len(statuses))
	for _, st := range statuses {
		s[st] = true
	}
	return s
}

// Filter returns the rows of d whose year is in years AND whose status is in
// statuses, in original order. An empty selection on either axis yields an
// empty dataset; that is a valid terminal state, not an error.
func Filter(d *dataset.Dataset, years YearSet, statuses StatusSet) (*dataset.Dataset, error) {
	rowYears, err := d.Ints(dataset.ColYear)
	if err != nil {
		return nil, err
	}
	rowStatuses, err := d.Texts(dataset.ColStatus)
	if err != nil {
		return nil, err
	}
	keep := make([]int, 0, d.Rows())
	for i := 0; i < d.Rows(); i++ {
		if years[rowYears[i]] && statuses[rowStatuses[i]] {
			keep = append(keep, i)
		}
	}
	return d.Select(keep), nil
}

// DefaultYears is the identity year selection: every distinct year present.
func DefaultYears(d *dataset.Dataset) (YearSet, error) {
	years, err := d.DistinctInts(dataset.ColYear)
	if err != nil {
		return nil, err
	}
	return YearSetOf(years), nil
}

// DefaultStatuses is the identity status selection: every distinct
// non-missing status present.
func DefaultStatuses(d *dataset.Dataset) (StatusSet, error) {
	statuses, err := d.DistinctTexts(dataset.ColStatus)
	if err != nil {
		return nil, err
	}
	return StatusSetOf(statuses), nil
}
