package views

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/mvermaas/LifeExpectancyExplorer/src/dataset"
)

// CorrMatrix is a symmetric Pearson correlation matrix over Columns.
// R[i][j] is meaningful only where Defined[i][j] is true; an undefined
// entry (zero variance, or fewer than two pairwise-complete rows) carries
// NaN in R and false in Defined so it can never be mistaken for zero.
type CorrMatrix struct {
	Columns []string
	R       [][]float64
	Defined [][]bool
}

// Correlation computes the pairwise-complete Pearson correlation matrix of
// cols over d: each (i,j) uses exactly the rows where both columns are
// non-missing, independent of missingness elsewhere. Diagonal entries are
// exactly 1.0. A nil cols selects every numeric column of d.
func Correlation(d *dataset.Dataset, cols []string) (*CorrMatrix, error) {
	if cols == nil {
		cols = d.NumericNames()
	}
	data := make([][]float64, len(cols))
	for i, c := range cols {
		vals, err := d.Numeric(c)
		if err != nil {
			return nil, err
		}
		data[i] = vals
	}
	m := &CorrMatrix{
		Columns: cols,
		R:       make([][]float64, len(cols)),
		Defined: make([][]bool, len(cols)),
	}
	for i := range cols {
		m.R[i] = make([]float64, len(cols))
		m.Defined[i] = make([]bool, len(cols))
		m.R[i][i] = 1.0
		m.Defined[i][i] = true
	}
	for i := 0; i < len(cols); i++ {
		for j := i + 1; j < len(cols); j++ {
			r, ok := pairwisePearson(data[i], data[j])
			m.R[i][j], m.R[j][i] = r, r
			m.Defined[i][j], m.Defined[j][i] = ok, ok
		}
	}
	return m, nil
}

// pairwisePearson correlates x and y over their pairwise-complete rows.
// Undefined (ok=false) when fewer than two complete pairs exist or either
// side is constant over them.
func pairwisePearson(x, y []float64) (float64, bool) {
	var px, py []float64
	for k := range x {
		if math.IsNaN(x[k]) || math.IsNaN(y[k]) {
			continue
		}
		px = append(px, x[k])
		py = append(py, y[k])
	}
	if len(px) < 2 {
		return math.NaN(), false
	}
	r := stat.Correlation(px, py, nil)
	if math.IsNaN(r) { // zero variance on either side
		return math.NaN(), false
	}
	// Guard against float drift pushing |r| past 1.
	if r > 1 {
		r = 1
	} else if r < -1 {
		r = -1
	}
	return r, true
}
