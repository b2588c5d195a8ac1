package views

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/mvermaas/LifeExpectancyExplorer/src/dataset"
)

// YearMean is one point of the yearly-mean series. Valid is false when the
// year had rows but no non-missing values for the column.
type YearMean struct {
	Year  int
	Mean  float64
	Valid bool
}

// YearlyMean computes the arithmetic mean of valueCol per distinct year in d,
// ordered ascending by year. Missing values are excluded from each mean; a
// year whose values are all missing yields Valid=false rather than an error.
// An empty dataset yields an empty series.
func YearlyMean(d *dataset.Dataset, valueCol string) ([]YearMean, error) {
	years, err := d.Ints(dataset.ColYear)
	if err != nil {
		return nil, err
	}
	vals, err := d.Numeric(valueCol)
	if err != nil {
		return nil, err
	}
	byYear := make(map[int][]float64)
	for i, y := range years {
		if !math.IsNaN(vals[i]) {
			byYear[y] = append(byYear[y], vals[i])
		} else if _, ok := byYear[y]; !ok {
			byYear[y] = nil // keep the year even if every value is missing
		}
	}
	order := make([]int, 0, len(byYear))
	for y := range byYear {
		order = append(order, y)
	}
	sort.Ints(order)

	out := make([]YearMean, 0, len(order))
	for _, y := range order {
		vs := byYear[y]
		if len(vs) == 0 {
			out = append(out, YearMean{Year: y})
			continue
		}
		out = append(out, YearMean{Year: y, Mean: stat.Mean(vs, nil), Valid: true})
	}
	return out, nil
}
