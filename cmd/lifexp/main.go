// Life Expectancy Explorer CLI.
//
// Headless companion to the desktop viewer: loads the life-expectancy CSV,
// applies year/status filters, prints the derived summaries to stdout, and
// can optionally write every chart as a PNG (-out) and the derived views as
// a JSON report (-report).
//
// The dataset is located either explicitly (-file) or by searching the
// working directory tree for the default file name, mirroring wherever a
// user may have dropped the CSV.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mvermaas/LifeExpectancyExplorer/src/charts"
	"github.com/mvermaas/LifeExpectancyExplorer/src/dataset"
	"github.com/mvermaas/LifeExpectancyExplorer/src/logging"
	"github.com/mvermaas/LifeExpectancyExplorer/src/views"
)

const defaultDataName = "LifeExpectancyData.csv"

func main() {
	var (
		fileFlag     = flag.String("file", "", "path to the life-expectancy CSV (empty: search for "+defaultDataName+" from the working directory)")
		yearsFlag    = flag.String("years", "all", "year selection: 'all', a list '2005,2010', or a range '2005-2015'")
		statusesFlag = flag.String("statuses", "all", "status selection: 'all' or a list 'Developed,Developing'")
		valueFlag    = flag.String("value", dataset.ColLifeExpectancy, "value column for trend, ranking, histogram and boxplot")
		xFlag        = flag.String("x", "gdp", "x column for the scatter view")
		topFlag      = flag.Int("top", 10, "number of countries in the latest-year ranking")
		bucketsFlag  = flag.Int("buckets", 20, "histogram bucket count")
		outFlag      = flag.String("out", "", "directory to write chart PNGs into (empty: no charts)")
		reportFlag   = flag.String("report", "", "path to write the derived views as JSON (empty: no report)")
		logLevel     = flag.String("log-level", "info", "log level: debug, info, warn, error")
	)
	flag.Parse()
	logging.SetLevel(*logLevel)

	if err := run(*fileFlag, *yearsFlag, *statusesFlag, *valueFlag, *xFlag, *topFlag, *bucketsFlag, *outFlag, *reportFlag); err != nil {
		logging.Errorf("%v", err)
		os.Exit(1)
	}
}

func run(file, yearsSpec, statusesSpec, valueCol, xCol string, topN, buckets int, outDir, reportPath string) error {
	if file == "" {
		found, err := dataset.FindDataFile(defaultDataName, ".")
		if err != nil {
			return err
		}
		file = found
	}
	ds, err := dataset.NewLoadCache().Load(file)
	if err != nil {
		return err
	}

	years, err := selectYears(ds, yearsSpec)
	if err != nil {
		return err
	}
	statuses, err := selectStatuses(ds, statusesSpec)
	if err != nil {
		return err
	}
	filtered, err := views.Filter(ds, years, statuses)
	if err != nil {
		return err
	}
	fmt.Printf("%d of %d rows match years=%s statuses=%s\n", filtered.Rows(), ds.Rows(), yearsSpec, statusesSpec)
	if filtered.Rows() == 0 {
		fmt.Println("nothing to summarize: the selection is empty")
		return nil
	}

	trend, err := views.YearlyMean(filtered, valueCol)
	if err != nil {
		return err
	}
	fmt.Printf("\nMean %s per year:\n", valueCol)
	for _, p := range trend {
		if p.Valid {
			fmt.Printf("  %d  %.2f\n", p.Year, p.Mean)
		} else {
			fmt.Printf("  %d  (no data)\n", p.Year)
		}
	}

	top, err := views.TopNByLatestYear(filtered, valueCol, topN)
	if err != nil {
		return err
	}
	topCountries, err := top.Texts(dataset.ColCountry)
	if err != nil {
		return err
	}
	topVals, err := top.Numeric(valueCol)
	if err != nil {
		return err
	}
	topYears, err := top.Ints(dataset.ColYear)
	if err != nil {
		return err
	}
	if top.Rows() > 0 {
		fmt.Printf("\nTop %d by %s in %d:\n", top.Rows(), valueCol, topYears[0])
		for i := 0; i < top.Rows(); i++ {
			fmt.Printf("  %2d. %-32s %.2f\n", i+1, topCountries[i], topVals[i])
		}
	}

	scatter, err := views.ScatterSource(filtered, xCol, valueCol, dataset.ColStatus)
	if err != nil {
		return err
	}
	hist, err := views.Distribution(filtered, valueCol, buckets)
	if err != nil {
		return err
	}
	box, err := views.GroupedFiveNum(filtered, dataset.ColStatus, valueCol)
	if err != nil {
		return err
	}
	fmt.Printf("\n%s five-number summary per status:\n", valueCol)
	for _, g := range box {
		fmt.Printf("  %-12s n=%-5d min=%.1f q1=%.1f med=%.1f q3=%.1f max=%.1f\n",
			g.Group, g.N, g.Min, g.Q1, g.Med, g.Q3, g.Max)
	}
	corr, err := views.Correlation(filtered, nil)
	if err != nil {
		return err
	}

	if reportPath != "" {
		if err := writeReport(reportPath, file, filtered.Rows(), trend, topCountries, topVals, hist, box, corr); err != nil {
			return err
		}
		fmt.Printf("\nwrote report to %s\n", reportPath)
	}
	if outDir != "" {
		if err := renderAll(outDir, valueCol, trend, topCountries, topVals, scatter, hist, box, corr); err != nil {
			return err
		}
		fmt.Printf("wrote charts to %s\n", outDir)
	}
	return nil
}

// selectYears resolves a -years spec against the dataset's distinct years.
func selectYears(d *dataset.Dataset, spec string) (views.YearSet, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" || strings.EqualFold(spec, "all") {
		return views.DefaultYears(d)
	}
	if lo, hi, ok := strings.Cut(spec, "-"); ok {
		from, err1 := strconv.Atoi(strings.TrimSpace(lo))
		to, err2 := strconv.Atoi(strings.TrimSpace(hi))
		if err1 != nil || err2 != nil || from > to {
			return nil, fmt.Errorf("bad year range %q", spec)
		}
		set := views.YearSet{}
		for y := from; y <= to; y++ {
			set[y] = true
		}
		return set, nil
	}
	set := views.YearSet{}
	for _, part := range strings.Split(spec, ",") {
		y, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("bad year %q in %q", part, spec)
		}
		set[y] = true
	}
	return set, nil
}

// selectStatuses resolves a -statuses spec against the dataset's distinct statuses.
func selectStatuses(d *dataset.Dataset, spec string) (views.StatusSet, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" || strings.EqualFold(spec, "all") {
		return views.DefaultStatuses(d)
	}
	set := views.StatusSet{}
	for _, part := range strings.Split(spec, ",") {
		if s := strings.TrimSpace(part); s != "" {
			set[s] = true
		}
	}
	if len(set) == 0 {
		return nil, fmt.Errorf("bad status list %q", spec)
	}
	return set, nil
}

// report is the JSON shape written by -report.
type report struct {
	File         string            `json:"file"`
	FilteredRows int               `json:"filtered_rows"`
	YearlyMean   []views.YearMean  `json:"yearly_mean"`
	TopCountries []rankedCountry   `json:"top_countries"`
	Histogram    views.Histogram   `json:"histogram"`
	FiveNum      []views.FiveNum   `json:"five_number_summaries"`
	Correlation  *views.CorrMatrix `json:"correlation"`
}

type rankedCountry struct {
	Country string  `json:"country"`
	Value   float64 `json:"value"`
}

func writeReport(path, file string, rows int, trend []views.YearMean, topCountries []string, topVals []float64, hist views.Histogram, box []views.FiveNum, corr *views.CorrMatrix) error {
	r := report{
		File:         file,
		FilteredRows: rows,
		YearlyMean:   trend,
		Histogram:    hist,
		FiveNum:      box,
		Correlation:  corr,
	}
	for i := range topCountries {
		r.TopCountries = append(r.TopCountries, rankedCountry{Country: topCountries[i], Value: topVals[i]})
	}
	b, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, append(b, '\n'), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// renderAll writes the full chart set under outDir, one PNG per view.
func renderAll(outDir, valueCol string, trend []views.YearMean, topCountries []string, topVals []float64, scatter views.ScatterData, hist views.Histogram, box []views.FiveNum, corr *views.CorrMatrix) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create out dir: %w", err)
	}
	const w, h = 1000, 500
	toRender := []struct {
		name   string
		render func() (image.Image, error)
	}{
		{"trend.png", func() (image.Image, error) {
			return charts.Line(trend, "Mean "+valueCol+" over time", valueCol, w, h)
		}},
		{"top_countries.png", func() (image.Image, error) {
			return charts.Bar(topCountries, topVals, "Top countries by "+valueCol, w, h)
		}},
		{"scatter.png", func() (image.Image, error) {
			return charts.Scatter(scatter, scatter.XName+" vs "+scatter.YName, w, h)
		}},
		{"distribution.png", func() (image.Image, error) {
			return charts.HistogramChart(hist, "Distribution of "+valueCol, w, h)
		}},
		{"by_status.png", func() (image.Image, error) {
			return charts.Boxplot(box, valueCol+" by status", valueCol, w, h)
		}},
		{"correlation.png", func() (image.Image, error) {
			return charts.Heatmap(corr, "Correlation matrix", 900, 700)
		}},
	}
	for _, r := range toRender {
		img, err := r.render()
		if err != nil {
			// a view with no drawable data is not fatal to the run
			logging.Warnf("skipping %s: %v", r.name, err)
			continue
		}
		if err := charts.WritePNG(filepath.Join(outDir, r.name), img); err != nil {
			return err
		}
		logging.Debugf("rendered %s", r.name)
	}
	return nil
}
