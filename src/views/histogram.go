package views

import (
	"fmt"
	"math"

	"github.com/mvermaas/LifeExpectancyExplorer/src/dataset"
)

// Histogram is a fixed-bucket distribution of one column. Edges has
// len(Counts)+1 entries; bucket i spans [Edges[i], Edges[i+1]) and the last
// bucket is closed on both ends so the maximum lands inside the range.
type Histogram struct {
	Column string
	Edges  []float64
	Counts []int
}

// Distribution bins the non-missing values of valueCol into buckets
// equal-width buckets spanning [min, max]. All-missing (or zero-row) input
// is an EmptyInputError, since no range exists to bin over.
func Distribution(d *dataset.Dataset, valueCol string, buckets int) (Histogram, error) {
	if buckets < 1 {
		return Histogram{}, fmt.Errorf("distribution: bucket count %d < 1", buckets)
	}
	vals, err := d.Numeric(valueCol)
	if err != nil {
		return Histogram{}, err
	}
	var present []float64
	for _, v := range vals {
		if !math.IsNaN(v) {
			present = append(present, v)
		}
	}
	if len(present) == 0 {
		return Histogram{}, &EmptyInputError{Op: "distribution of " + valueCol}
	}
	lo, hi := present[0], present[0]
	for _, v := range present[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	h := Histogram{Column: valueCol, Edges: make([]float64, buckets+1), Counts: make([]int, buckets)}
	width := (hi - lo) / float64(buckets)
	for i := range h.Edges {
		h.Edges[i] = lo + width*float64(i)
	}
	h.Edges[buckets] = hi // exact, no accumulation drift
	for _, v := range present {
		var idx int
		if width == 0 { // constant column: single degenerate range
			idx = buckets - 1
		} else {
			idx = int((v - lo) / width)
			if idx >= buckets { // v == hi belongs to the final closed bucket
				idx = buckets - 1
			}
		}
		h.Counts[idx]++
	}
	return h, nil
}
