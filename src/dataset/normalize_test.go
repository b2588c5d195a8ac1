package dataset

import (
	"errors"
	"testing"
)

func TestNormalizeHeader(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Year", "year"},
		{" Life Expectancy ", "life_expectancy"},
		{"Adult Mortality", "adult_mortality"},
		{"under-five deaths ", "under_five_deaths"},
		{"thinness  1-19 years", "thinness_1_19_years"},
		{" BMI ", "bmi"},
		{"gdp", "gdp"},
	}
	for _, c := range cases {
		if got := NormalizeHeader(c.in); got != c.want {
			t.Fatalf("NormalizeHeader(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalizeHeaderIdempotent(t *testing.T) {
	raws := []string{"Year", " Life Expectancy ", "under-five deaths ", "thinness  1-19 years", "Status"}
	for _, r := range raws {
		once := NormalizeHeader(r)
		if twice := NormalizeHeader(once); twice != once {
			t.Fatalf("not idempotent for %q: %q -> %q", r, once, twice)
		}
	}
}

func TestNormalizeHeadersCollision(t *testing.T) {
	_, err := NormalizeHeaders([]string{"Life Expectancy", "life-expectancy"})
	var se *SchemaError
	if !errors.As(err, &se) {
		t.Fatalf("expected SchemaError for colliding headers, got %v", err)
	}
}

func TestNormalizeHeadersEmptyName(t *testing.T) {
	_, err := NormalizeHeaders([]string{"Year", "   "})
	var se *SchemaError
	if !errors.As(err, &se) {
		t.Fatalf("expected SchemaError for blank header, got %v", err)
	}
}

func TestNormalizeHeadersPreservesOrder(t *testing.T) {
	got, err := NormalizeHeaders([]string{"Year", "Status", "Country", "Life Expectancy"})
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	want := []string{"year", "status", "country", "life_expectancy"}
	if len(got) != len(want) {
		t.Fatalf("got %d names, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("name %d = %q, want %q", i, got[i], want[i])
		}
	}
}
