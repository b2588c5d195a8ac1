package views

import (
	"math"

	"github.com/mvermaas/LifeExpectancyExplorer/src/dataset"
)

// ScatterData is the projection feeding one scatter chart: parallel slices
// of x, y and group label per retained row.
type ScatterData struct {
	XName, YName, GroupName string
	X, Y                    []float64
	Group                   []string
}

// ScatterSource projects d to (xCol, yCol, groupCol). Rows missing x or y
// are dropped; a missing group label is kept and forms its own group (the
// empty string).
func ScatterSource(d *dataset.Dataset, xCol, yCol, groupCol string) (ScatterData, error) {
	xs, err := d.Numeric(xCol)
	if err != nil {
		return ScatterData{}, err
	}
	ys, err := d.Numeric(yCol)
	if err != nil {
		return ScatterData{}, err
	}
	groups, err := d.Texts(groupCol)
	if err != nil {
		return ScatterData{}, err
	}
	out := ScatterData{XName: xCol, YName: yCol, GroupName: groupCol}
	for i := range xs {
		if math.IsNaN(xs[i]) || math.IsNaN(ys[i]) {
			continue
		}
		out.X = append(out.X, xs[i])
		out.Y = append(out.Y, ys[i])
		out.Group = append(out.Group, groups[i])
	}
	return out, nil
}

// Groups returns the distinct group labels in first-appearance order.
func (s ScatterData) Groups() []string {
	seen := make(map[string]bool, 4)
	var out []string
	for _, g := range s.Group {
		if !seen[g] {
			seen[g] = true
			out = append(out, g)
		}
	}
	return out
}
