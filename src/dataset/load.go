package dataset

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/mvermaas/LifeExpectancyExplorer/src/logging"
)

// nanMarkers are the cell contents treated as missing when parsing.
var nanMarkers = []string{"", "NA", "N/A", "NaN", "nan"}

// requiredColumns must all be present after header normalization.
var requiredColumns = []string{ColYear, ColStatus, ColCountry, ColLifeExpectancy}

// Load reads the CSV at path into a Dataset: headers are normalized, column
// types are inferred (gota), required columns are validated, and rows with a
// missing year or status are dropped so that filter defaults are computed
// over one consistent population.
//
// The file is opened, parsed and closed inside this call; no handle escapes,
// including on parse failure.
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, &SchemaError{Reason: fmt.Sprintf("%s has no header row", path)}
	}
	canon, err := NormalizeHeaders(records[0])
	if err != nil {
		return nil, err
	}
	records[0] = canon

	// gota does the per-column type inference; unparseable columns fall back
	// to strings rather than failing the load.
	df := dataframe.LoadRecords(records,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues(nanMarkers),
	)
	if df.Err != nil {
		return nil, fmt.Errorf("build frame from %s: %w", path, df.Err)
	}

	cols := make([]Series, 0, len(canon))
	for _, name := range canon {
		ser := df.Col(name)
		if ser.Err != nil {
			return nil, fmt.Errorf("column %q: %w", name, ser.Err)
		}
		switch ser.Type() {
		case series.Int, series.Float:
			cols = append(cols, Series{Name: name, Kind: Numeric, Nums: ser.Float()})
		default:
			text := make([]string, ser.Len())
			for i := 0; i < ser.Len(); i++ {
				if e := ser.Elem(i); !e.IsNA() {
					text[i] = e.String()
				}
			}
			cols = append(cols, Series{Name: name, Kind: Text, Text: text})
		}
	}
	d, err := New(cols...)
	if err != nil {
		return nil, err
	}
	for _, req := range requiredColumns {
		if !d.Has(req) {
			return nil, &MissingColumnError{Column: req}
		}
	}
	years, err := d.Numeric(ColYear)
	if err != nil {
		return nil, err
	}
	statuses, err := d.Texts(ColStatus)
	if err != nil {
		return nil, err
	}

	// Missing-value policy: a row without a year or status can never match a
	// filter selection, so it is excluded up front.
	keep := make([]int, 0, d.Rows())
	for i := 0; i < d.Rows(); i++ {
		if math.IsNaN(years[i]) || statuses[i] == "" {
			continue
		}
		keep = append(keep, i)
	}
	if dropped := d.Rows() - len(keep); dropped > 0 {
		logging.Warnf("dropped %d of %d rows with missing year/status from %s", dropped, d.Rows(), path)
		d = d.Select(keep)
	}
	logging.Infof("loaded %d rows x %d columns from %s", d.Rows(), len(canon), path)
	return d, nil
}
