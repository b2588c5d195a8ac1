package views

import (
	"errors"
	"math"
	"testing"

	"github.com/mvermaas/LifeExpectancyExplorer/src/dataset"
)

func TestTopNStableTies(t *testing.T) {
	d := mkDS(t,
		[]int{2015, 2015, 2015, 2015, 2015},
		[]string{"Developing", "Developing", "Developing", "Developing", "Developing"},
		[]float64{10, 30, 20, 30, 5},
	)
	top, err := TopNByLatestYear(d, dataset.ColLifeExpectancy, 3)
	if err != nil {
		t.Fatalf("top-n: %v", err)
	}
	vals, _ := top.Numeric(dataset.ColLifeExpectancy)
	want := []float64{30, 30, 20}
	for i := range want {
		if vals[i] != want[i] {
			t.Fatalf("rank %d = %v, want %v (all: %v)", i, vals[i], want[i], vals)
		}
	}
	countries, _ := top.Texts(dataset.ColCountry)
	// first-appearing 30 (row 1 -> C1) must precede the later one (row 3 -> C3)
	if countries[0] != "C1" || countries[1] != "C3" {
		t.Fatalf("tie order not stable: %v", countries)
	}
}

func TestTopNUsesLatestYearOnly(t *testing.T) {
	d := mkDS(t,
		[]int{2014, 2015, 2014, 2015},
		[]string{"Developed", "Developed", "Developed", "Developed"},
		[]float64{99, 70, 98, 60},
	)
	top, err := TopNByLatestYear(d, dataset.ColLifeExpectancy, 10)
	if err != nil {
		t.Fatalf("top-n: %v", err)
	}
	if top.Rows() != 2 {
		t.Fatalf("rows = %d, want 2 (2015 only)", top.Rows())
	}
	vals, _ := top.Numeric(dataset.ColLifeExpectancy)
	if vals[0] != 70 || vals[1] != 60 {
		t.Fatalf("2014 rows leaked into ranking: %v", vals)
	}
}

func TestTopNFewerRowsThanN(t *testing.T) {
	d := mkDS(t, []int{2015, 2015}, []string{"Developed", "Developed"}, []float64{70, 60})
	top, err := TopNByLatestYear(d, dataset.ColLifeExpectancy, 10)
	if err != nil {
		t.Fatalf("top-n: %v", err)
	}
	if top.Rows() != 2 {
		t.Fatalf("rows = %d, want 2", top.Rows())
	}
}

func TestTopNMissingValuesRankLast(t *testing.T) {
	d := mkDS(t,
		[]int{2015, 2015, 2015},
		[]string{"Developed", "Developed", "Developed"},
		[]float64{math.NaN(), 60, 70},
	)
	top, err := TopNByLatestYear(d, dataset.ColLifeExpectancy, 3)
	if err != nil {
		t.Fatalf("top-n: %v", err)
	}
	vals, _ := top.Numeric(dataset.ColLifeExpectancy)
	if vals[0] != 70 || vals[1] != 60 || !math.IsNaN(vals[2]) {
		t.Fatalf("missing value not ranked last: %v", vals)
	}
}

func TestTopNEmptyInput(t *testing.T) {
	d := mkDS(t, nil, nil, nil)
	_, err := TopNByLatestYear(d, dataset.ColLifeExpectancy, 3)
	var eie *EmptyInputError
	if !errors.As(err, &eie) {
		t.Fatalf("expected EmptyInputError, got %v", err)
	}
}
