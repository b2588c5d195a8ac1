package views

import (
	"math"
	"sort"

	"github.com/mvermaas/LifeExpectancyExplorer/src/dataset"
)

// FiveNum is the five-number summary of one group's values.
type FiveNum struct {
	Group                 string
	N                     int
	Min, Q1, Med, Q3, Max float64
}

// GroupedFiveNum computes, per distinct value of groupCol, the five-number
// summary of the non-missing values of valueCol. Quartiles use linear
// interpolation at fractional ranks (the rank h = (n-1)p convention, matching
// the original dashboards). Groups are returned in sorted label order; a
// group whose values are all missing is omitted, since it has no summary.
func GroupedFiveNum(d *dataset.Dataset, groupCol, valueCol string) ([]FiveNum, error) {
	groups, err := d.Texts(groupCol)
	if err != nil {
		return nil, err
	}
	vals, err := d.Numeric(valueCol)
	if err != nil {
		return nil, err
	}
	byGroup := make(map[string][]float64)
	for i, g := range groups {
		if !math.IsNaN(vals[i]) {
			byGroup[g] = append(byGroup[g], vals[i])
		}
	}
	labels := make([]string, 0, len(byGroup))
	for g := range byGroup {
		labels = append(labels, g)
	}
	sort.Strings(labels)

	out := make([]FiveNum, 0, len(labels))
	for _, g := range labels {
		vs := byGroup[g]
		sort.Float64s(vs)
		out = append(out, FiveNum{
			Group: g,
			N:     len(vs),
			Min:   vs[0],
			Q1:    quantileLinear(vs, 0.25),
			Med:   quantileLinear(vs, 0.50),
			Q3:    quantileLinear(vs, 0.75),
			Max:   vs[len(vs)-1],
		})
	}
	return out, nil
}

// quantileLinear returns the p-quantile of sorted by linear interpolation at
// the fractional rank h = (len-1)*p.
func quantileLinear(sorted []float64, p float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}
	h := float64(len(sorted)-1) * p
	lo := int(math.Floor(h))
	hi := int(math.Ceil(h))
	if lo == hi {
		return sorted[lo]
	}
	return sorted[lo] + (h-float64(lo))*(sorted[hi]-sorted[lo])
}
