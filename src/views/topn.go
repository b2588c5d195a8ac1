package views

import (
	"math"
	"sort"

	"github.com/mvermaas/LifeExpectancyExplorer/src/dataset"
)

// TopNByLatestYear returns up to n rows of d from its latest year, ordered
// descending by valueCol. The sort is stable, so ties keep original row
// order; rows with a missing value rank below every present value. A
// zero-row dataset is an EmptyInputError: there is no latest year to rank.
func TopNByLatestYear(d *dataset.Dataset, valueCol string, n int) (*dataset.Dataset, error) {
	if d.Rows() == 0 {
		return nil, &EmptyInputError{Op: "top-n by latest year"}
	}
	years, err := d.Ints(dataset.ColYear)
	if err != nil {
		return nil, err
	}
	vals, err := d.Numeric(valueCol)
	if err != nil {
		return nil, err
	}
	latest := years[0]
	for _, y := range years[1:] {
		if y > latest {
			latest = y
		}
	}
	var rows []int
	for i, y := range years {
		if y == latest {
			rows = append(rows, i)
		}
	}
	sort.SliceStable(rows, func(a, b int) bool {
		va, vb := vals[rows[a]], vals[rows[b]]
		if math.IsNaN(va) {
			return false
		}
		if math.IsNaN(vb) {
			return true
		}
		return va > vb
	})
	if n >= 0 && n < len(rows) {
		rows = rows[:n]
	}
	return d.Select(rows), nil
}
