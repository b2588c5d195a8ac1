package views

import (
	"fmt"
	"math"
	"testing"

	"github.com/mvermaas/LifeExpectancyExplorer/src/dataset"
)

// mkDS builds a dataset with the core columns plus any extras; countries
// default to C0..Cn when nil.
func mkDS(t *testing.T, years []int, statuses []string, life []float64, extra ...dataset.Series) *dataset.Dataset {
	t.Helper()
	nums := make([]float64, len(years))
	for i, y := range years {
		nums[i] = float64(y)
	}
	countries := make([]string, len(years))
	for i := range countries {
		countries[i] = fmt.Sprintf("C%d", i)
	}
	cols := []dataset.Series{
		{Name: dataset.ColYear, Kind: dataset.Numeric, Nums: nums},
		{Name: dataset.ColStatus, Kind: dataset.Text, Text: statuses},
		{Name: dataset.ColCountry, Kind: dataset.Text, Text: countries},
		{Name: dataset.ColLifeExpectancy, Kind: dataset.Numeric, Nums: life},
	}
	cols = append(cols, extra...)
	d, err := dataset.New(cols...)
	if err != nil {
		t.Fatalf("build dataset: %v", err)
	}
	return d
}

func TestFilterMembership(t *testing.T) {
	d := mkDS(t,
		[]int{2010, 2010, 2011, 2012},
		[]string{"Developed", "Developing", "Developed", "Developing"},
		[]float64{80, 65, 81, 66},
	)
	got, err := Filter(d, YearSetOf([]int{2010, 2011}), StatusSetOf([]string{"Developed"}))
	if err != nil {
		t.Fatalf("filter: %v", err)
	}
	if got.Rows() != 2 {
		t.Fatalf("rows = %d, want 2", got.Rows())
	}
	years, _ := got.Ints(dataset.ColYear)
	statuses, _ := got.Texts(dataset.ColStatus)
	for i := range years {
		if years[i] != 2010 && years[i] != 2011 {
			t.Fatalf("row %d has year %d outside selection", i, years[i])
		}
		if statuses[i] != "Developed" {
			t.Fatalf("row %d has status %q outside selection", i, statuses[i])
		}
	}
}

func TestFilterIdentity(t *testing.T) {
	d := mkDS(t,
		[]int{2010, 2011, 2012},
		[]string{"Developed", "Developing", "Developed"},
		[]float64{80, 65, 81},
	)
	allYears, err := DefaultYears(d)
	if err != nil {
		t.Fatalf("default years: %v", err)
	}
	allStatuses, err := DefaultStatuses(d)
	if err != nil {
		t.Fatalf("default statuses: %v", err)
	}
	got, err := Filter(d, allYears, allStatuses)
	if err != nil {
		t.Fatalf("filter: %v", err)
	}
	if got.Rows() != d.Rows() {
		t.Fatalf("identity filter dropped rows: %d != %d", got.Rows(), d.Rows())
	}
	before, _ := d.Texts(dataset.ColCountry)
	after, _ := got.Texts(dataset.ColCountry)
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("row order changed at %d: %q != %q", i, before[i], after[i])
		}
	}
}

func TestFilterEmptySelections(t *testing.T) {
	d := mkDS(t, []int{2010}, []string{"Developed"}, []float64{80})
	for _, tc := range []struct {
		name     string
		years    YearSet
		statuses StatusSet
	}{
		{"empty years", YearSet{}, StatusSetOf([]string{"Developed"})},
		{"empty statuses", YearSetOf([]int{2010}), StatusSet{}},
		{"both empty", YearSet{}, StatusSet{}},
	} {
		got, err := Filter(d, tc.years, tc.statuses)
		if err != nil {
			t.Fatalf("%s: filter errored: %v", tc.name, err)
		}
		if got.Rows() != 0 {
			t.Fatalf("%s: rows = %d, want 0", tc.name, got.Rows())
		}
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	d := mkDS(t, []int{2010, 2011}, []string{"Developed", "Developing"}, []float64{80, 65})
	if _, err := Filter(d, YearSetOf([]int{2011}), StatusSetOf([]string{"Developing"})); err != nil {
		t.Fatalf("filter: %v", err)
	}
	if d.Rows() != 2 {
		t.Fatalf("input mutated: rows = %d", d.Rows())
	}
	life, _ := d.Numeric(dataset.ColLifeExpectancy)
	if life[0] != 80 || math.IsNaN(life[1]) {
		t.Fatalf("input values mutated: %v", life)
	}
}
