package dataset

import (
	"errors"
	"math"
	"testing"
)

func testDS(t *testing.T) *Dataset {
	t.Helper()
	d, err := New(
		Series{Name: ColYear, Kind: Numeric, Nums: []float64{2010, 2010, 2011, 2011}},
		Series{Name: ColStatus, Kind: Text, Text: []string{"Developed", "Developing", "Developed", "Developing"}},
		Series{Name: ColCountry, Kind: Text, Text: []string{"A", "B", "A", "B"}},
		Series{Name: ColLifeExpectancy, Kind: Numeric, Nums: []float64{80, 65, 81, math.NaN()}},
	)
	if err != nil {
		t.Fatalf("new dataset: %v", err)
	}
	return d
}

func TestNewRejectsRaggedColumns(t *testing.T) {
	_, err := New(
		Series{Name: "a", Kind: Numeric, Nums: []float64{1, 2}},
		Series{Name: "b", Kind: Numeric, Nums: []float64{1}},
	)
	var se *SchemaError
	if !errors.As(err, &se) {
		t.Fatalf("expected SchemaError for ragged columns, got %v", err)
	}
}

func TestNewRejectsDuplicateNames(t *testing.T) {
	_, err := New(
		Series{Name: "a", Kind: Numeric, Nums: []float64{1}},
		Series{Name: "a", Kind: Numeric, Nums: []float64{2}},
	)
	var se *SchemaError
	if !errors.As(err, &se) {
		t.Fatalf("expected SchemaError for duplicate names, got %v", err)
	}
}

func TestMissingColumn(t *testing.T) {
	d := testDS(t)
	_, err := d.Numeric("no_such_column")
	var mce *MissingColumnError
	if !errors.As(err, &mce) {
		t.Fatalf("expected MissingColumnError, got %v", err)
	}
	if mce.Column != "no_such_column" {
		t.Fatalf("unexpected column in error: %q", mce.Column)
	}
}

func TestKindMismatch(t *testing.T) {
	d := testDS(t)
	if _, err := d.Numeric(ColStatus); err == nil {
		t.Fatal("expected error reading text column as numeric")
	}
	if _, err := d.Texts(ColYear); err == nil {
		t.Fatal("expected error reading numeric column as text")
	}
}

func TestSelectPreservesOrderAndContent(t *testing.T) {
	d := testDS(t)
	sub := d.Select([]int{2, 0})
	if sub.Rows() != 2 {
		t.Fatalf("rows = %d, want 2", sub.Rows())
	}
	years, err := sub.Ints(ColYear)
	if err != nil {
		t.Fatalf("ints: %v", err)
	}
	if years[0] != 2011 || years[1] != 2010 {
		t.Fatalf("unexpected years after select: %v", years)
	}
	countries, _ := sub.Texts(ColCountry)
	if countries[0] != "A" || countries[1] != "A" {
		t.Fatalf("unexpected countries after select: %v", countries)
	}
	// source dataset untouched
	if d.Rows() != 4 {
		t.Fatalf("source mutated: rows = %d", d.Rows())
	}
}

func TestDistinct(t *testing.T) {
	d := testDS(t)
	years, err := d.DistinctInts(ColYear)
	if err != nil {
		t.Fatalf("distinct years: %v", err)
	}
	if len(years) != 2 || years[0] != 2010 || years[1] != 2011 {
		t.Fatalf("unexpected distinct years: %v", years)
	}
	statuses, err := d.DistinctTexts(ColStatus)
	if err != nil {
		t.Fatalf("distinct statuses: %v", err)
	}
	if len(statuses) != 2 || statuses[0] != "Developed" || statuses[1] != "Developing" {
		t.Fatalf("unexpected distinct statuses: %v", statuses)
	}
}

func TestDistinctTextsSkipsMissing(t *testing.T) {
	d, err := New(Series{Name: ColStatus, Kind: Text, Text: []string{"Developed", "", "Developed"}})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	statuses, err := d.DistinctTexts(ColStatus)
	if err != nil {
		t.Fatalf("distinct: %v", err)
	}
	if len(statuses) != 1 || statuses[0] != "Developed" {
		t.Fatalf("missing status leaked into distinct set: %v", statuses)
	}
}

func TestIntsRejectsMissing(t *testing.T) {
	d, err := New(Series{Name: ColYear, Kind: Numeric, Nums: []float64{2010, math.NaN()}})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if _, err := d.Ints(ColYear); err == nil {
		t.Fatal("expected error for missing value in int column")
	}
}
