// Life Expectancy Explorer desktop viewer.
//
// Loads the life-expectancy CSV once, then recomputes the filtered dataset
// and every visible chart whenever a filter control changes. All derivation
// is done by src/views; this binary only owns widgets and image canvases.
package main

import (
	"flag"
	"fmt"
	"image"
	"path/filepath"
	"strconv"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/mvermaas/LifeExpectancyExplorer/src/charts"
	"github.com/mvermaas/LifeExpectancyExplorer/src/dataset"
	"github.com/mvermaas/LifeExpectancyExplorer/src/logging"
	"github.com/mvermaas/LifeExpectancyExplorer/src/views"
)

const (
	defaultDataName = "LifeExpectancyData.csv"
	chartW, chartH  = 1000, 520
	previewRows     = 12
)

type uiState struct {
	app      fyne.App
	window   fyne.Window
	filePath string

	cache    *dataset.LoadCache
	ds       *dataset.Dataset
	filtered *dataset.Dataset

	// filter state
	allYears    []int
	allStatuses []string
	yearFrom    int
	yearTo      int
	statusOn    map[string]bool
	valueCol    string
	xCol        string
	topN        int
	buckets     int

	// widgets
	table      *widget.Table
	countLabel *widget.Label
	topNLabel  *widget.Label

	trendImg   *canvas.Image
	topImg     *canvas.Image
	scatterImg *canvas.Image
	histImg    *canvas.Image
	boxImg     *canvas.Image
	corrImg    *canvas.Image
}

func main() {
	var fileFlag string
	var logLevel string
	flag.StringVar(&fileFlag, "file", "", "path to the life-expectancy CSV")
	flag.StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
	flag.Parse()
	logging.SetLevel(logLevel)

	a := app.NewWithID("com.lifexplorer.viewer")
	w := a.NewWindow("Life Expectancy Explorer")
	w.Resize(fyne.NewSize(1280, 860))

	state := &uiState{
		app:      a,
		window:   w,
		filePath: fileFlag,
		cache:    dataset.NewLoadCache(),
		statusOn: map[string]bool{},
		valueCol: a.Preferences().StringWithFallback("valueCol", dataset.ColLifeExpectancy),
		xCol:     a.Preferences().StringWithFallback("xCol", "gdp"),
		topN:     a.Preferences().IntWithFallback("topN", 10),
		buckets:  a.Preferences().IntWithFallback("buckets", 20),
	}
	if state.filePath == "" {
		found, err := dataset.FindDataFile(defaultDataName, ".")
		if err != nil {
			// show the message and halt: without a dataset there is nothing to explore
			dialog.ShowError(err, w)
			w.SetContent(widget.NewLabel(err.Error()))
			w.ShowAndRun()
			return
		}
		state.filePath = found
	}
	if err := loadData(state); err != nil {
		dialog.ShowError(err, w)
		w.SetContent(widget.NewLabel(err.Error()))
		w.ShowAndRun()
		return
	}

	buildUI(state)
	refilter(state)
	w.ShowAndRun()
}

// loadData (re)loads the dataset and derives the filter domains.
func loadData(state *uiState) error {
	ds, err := state.cache.Load(state.filePath)
	if err != nil {
		return err
	}
	state.ds = ds
	if state.allYears, err = ds.DistinctInts(dataset.ColYear); err != nil {
		return err
	}
	if state.allStatuses, err = ds.DistinctTexts(dataset.ColStatus); err != nil {
		return err
	}
	if len(state.allYears) == 0 {
		return fmt.Errorf("%s holds no usable rows", state.filePath)
	}
	state.yearFrom = state.app.Preferences().IntWithFallback("yearFrom", state.allYears[0])
	state.yearTo = state.app.Preferences().IntWithFallback("yearTo", state.allYears[len(state.allYears)-1])
	for _, s := range state.allStatuses {
		state.statusOn[s] = true
	}
	return nil
}

func savePrefs(state *uiState) {
	p := state.app.Preferences()
	p.SetInt("yearFrom", state.yearFrom)
	p.SetInt("yearTo", state.yearTo)
	p.SetString("valueCol", state.valueCol)
	p.SetString("xCol", state.xCol)
	p.SetInt("topN", state.topN)
	p.SetInt("buckets", state.buckets)
}

func buildUI(state *uiState) {
	yearOpts := make([]string, len(state.allYears))
	for i, y := range state.allYears {
		yearOpts[i] = strconv.Itoa(y)
	}
	fromSelect := widget.NewSelect(yearOpts, func(v string) {
		if y, err := strconv.Atoi(v); err == nil {
			state.yearFrom = y
			savePrefs(state)
			refilter(state)
		}
	})
	fromSelect.Selected = strconv.Itoa(state.yearFrom)
	toSelect := widget.NewSelect(yearOpts, func(v string) {
		if y, err := strconv.Atoi(v); err == nil {
			state.yearTo = y
			savePrefs(state)
			refilter(state)
		}
	})
	toSelect.Selected = strconv.Itoa(state.yearTo)

	statusBox := container.NewHBox()
	for _, s := range state.allStatuses {
		s := s
		chk := widget.NewCheck(s, func(on bool) {
			state.statusOn[s] = on
			refilter(state)
		})
		chk.SetChecked(true)
		statusBox.Add(chk)
	}

	numericOpts := []string{}
	for _, c := range state.ds.NumericNames() {
		if c != dataset.ColYear {
			numericOpts = append(numericOpts, c)
		}
	}
	valueSelect := widget.NewSelect(numericOpts, func(v string) {
		state.valueCol = v
		savePrefs(state)
		redrawCharts(state)
	})
	valueSelect.Selected = state.valueCol
	xSelect := widget.NewSelect(numericOpts, func(v string) {
		state.xCol = v
		savePrefs(state)
		redrawCharts(state)
	})
	xSelect.Selected = state.xCol

	// Top-N control: - [label] +
	state.topNLabel = widget.NewLabel(strconv.Itoa(state.topN))
	decN := widget.NewButton("-", func() {
		if state.topN > 3 {
			state.topN--
			state.topNLabel.SetText(strconv.Itoa(state.topN))
			savePrefs(state)
			redrawCharts(state)
		}
	})
	incN := widget.NewButton("+", func() {
		if state.topN < 50 {
			state.topN++
			state.topNLabel.SetText(strconv.Itoa(state.topN))
			savePrefs(state)
			redrawCharts(state)
		}
	})

	state.countLabel = widget.NewLabel("")
	top := container.NewVBox(
		container.NewHBox(
			widget.NewLabel(filepath.Base(state.filePath)),
			widget.NewLabel("From"), fromSelect,
			widget.NewLabel("To"), toSelect,
			widget.NewLabel("Status:"), statusBox,
		),
		container.NewHBox(
			widget.NewLabel("Value"), valueSelect,
			widget.NewLabel("X"), xSelect,
			widget.NewLabel("Top"), decN, state.topNLabel, incN,
			state.countLabel,
		),
	)

	state.trendImg = newChartCanvas()
	state.topImg = newChartCanvas()
	state.scatterImg = newChartCanvas()
	state.histImg = newChartCanvas()
	state.boxImg = newChartCanvas()
	state.corrImg = newChartCanvas()

	previewCols := []string{dataset.ColCountry, dataset.ColYear, dataset.ColStatus, dataset.ColLifeExpectancy}
	state.table = widget.NewTable(
		func() (int, int) {
			rows := previewRows
			if state.filtered != nil && state.filtered.Rows() < rows {
				rows = state.filtered.Rows()
			}
			return rows + 1, len(previewCols)
		},
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.TableCellID, o fyne.CanvasObject) {
			l := o.(*widget.Label)
			if id.Row == 0 {
				l.TextStyle = fyne.TextStyle{Bold: true}
				l.SetText(previewCols[id.Col])
				return
			}
			l.TextStyle = fyne.TextStyle{}
			l.SetText(previewCell(state.filtered, previewCols[id.Col], id.Row-1))
		},
	)
	for i := range previewCols {
		state.table.SetColumnWidth(i, 180)
	}

	tabs := container.NewAppTabs(
		container.NewTabItem("Data", state.table),
		container.NewTabItem("Trend", container.NewScroll(state.trendImg)),
		container.NewTabItem("Top Countries", container.NewScroll(state.topImg)),
		container.NewTabItem("Scatter", container.NewScroll(state.scatterImg)),
		container.NewTabItem("Distribution", container.NewScroll(state.histImg)),
		container.NewTabItem("By Status", container.NewScroll(state.boxImg)),
		container.NewTabItem("Correlation", container.NewScroll(state.corrImg)),
	)

	exportItem := fyne.NewMenuItem("Export Charts…", func() { exportCharts(state) })
	reloadItem := fyne.NewMenuItem("Reload Data", func() {
		state.cache.Invalidate(state.filePath)
		if err := loadData(state); err != nil {
			dialog.ShowError(err, state.window)
			return
		}
		refilter(state)
	})
	state.window.SetMainMenu(fyne.NewMainMenu(fyne.NewMenu("File", exportItem, reloadItem)))

	state.window.SetContent(container.NewBorder(top, nil, nil, nil, tabs))
}

func newChartCanvas() *canvas.Image {
	img := canvas.NewImageFromImage(charts.Blank(chartW, chartH))
	img.FillMode = canvas.ImageFillOriginal
	return img
}

func previewCell(d *dataset.Dataset, col string, row int) string {
	if d == nil || row >= d.Rows() {
		return ""
	}
	switch col {
	case dataset.ColYear:
		years, err := d.Ints(col)
		if err != nil {
			return ""
		}
		return strconv.Itoa(years[row])
	case dataset.ColLifeExpectancy:
		vals, err := d.Numeric(col)
		if err != nil {
			return ""
		}
		return fmt.Sprintf("%.1f", vals[row])
	default:
		vals, err := d.Texts(col)
		if err != nil {
			return ""
		}
		return vals[row]
	}
}

// selection returns the active year and status sets.
func selection(state *uiState) (views.YearSet, views.StatusSet) {
	years := views.YearSet{}
	for _, y := range state.allYears {
		if y >= state.yearFrom && y <= state.yearTo {
			years[y] = true
		}
	}
	statuses := views.StatusSet{}
	for s, on := range state.statusOn {
		if on {
			statuses[s] = true
		}
	}
	return years, statuses
}

// refilter recomputes the filtered dataset from the current selection and
// redraws everything that depends on it.
func refilter(state *uiState) {
	years, statuses := selection(state)
	filtered, err := views.Filter(state.ds, years, statuses)
	if err != nil {
		logging.Errorf("filter: %v", err)
		return
	}
	state.filtered = filtered
	state.countLabel.SetText(fmt.Sprintf("%d of %d rows selected", filtered.Rows(), state.ds.Rows()))
	if state.table != nil {
		state.table.Refresh()
	}
	redrawCharts(state)
}

// chartOrBlank resolves a render result the way the viewer always does:
// an empty selection or unrenderable view shows a blank canvas, not an error.
func chartOrBlank(img image.Image, err error, name string) image.Image {
	if err != nil {
		logging.Debugf("%s not rendered: %v", name, err)
		return charts.Blank(chartW, chartH)
	}
	return img
}

func redrawCharts(state *uiState) {
	if state.filtered == nil || state.trendImg == nil {
		return
	}
	state.trendImg.Image = renderTrend(state)
	state.topImg.Image = renderTopCountries(state)
	state.scatterImg.Image = renderScatter(state)
	state.histImg.Image = renderHistogram(state)
	state.boxImg.Image = renderBoxplot(state)
	state.corrImg.Image = renderCorrelation(state)
	for _, c := range []*canvas.Image{state.trendImg, state.topImg, state.scatterImg, state.histImg, state.boxImg, state.corrImg} {
		c.Refresh()
	}
}

func renderTrend(state *uiState) image.Image {
	series, err := views.YearlyMean(state.filtered, state.valueCol)
	if err != nil {
		return chartOrBlank(nil, err, "trend")
	}
	img, err := charts.Line(series, "Mean "+state.valueCol+" over time", state.valueCol, chartW, chartH)
	return chartOrBlank(img, err, "trend")
}

func renderTopCountries(state *uiState) image.Image {
	top, err := views.TopNByLatestYear(state.filtered, state.valueCol, state.topN)
	if err != nil {
		return chartOrBlank(nil, err, "top countries")
	}
	labels, err := top.Texts(dataset.ColCountry)
	if err != nil {
		return chartOrBlank(nil, err, "top countries")
	}
	vals, err := top.Numeric(state.valueCol)
	if err != nil {
		return chartOrBlank(nil, err, "top countries")
	}
	img, err := charts.Bar(labels, vals, fmt.Sprintf("Top %d countries by %s", len(labels), state.valueCol), chartW, chartH)
	return chartOrBlank(img, err, "top countries")
}

func renderScatter(state *uiState) image.Image {
	data, err := views.ScatterSource(state.filtered, state.xCol, state.valueCol, dataset.ColStatus)
	if err != nil {
		return chartOrBlank(nil, err, "scatter")
	}
	img, err := charts.Scatter(data, state.xCol+" vs "+state.valueCol, chartW, chartH)
	return chartOrBlank(img, err, "scatter")
}

func renderHistogram(state *uiState) image.Image {
	hist, err := views.Distribution(state.filtered, state.valueCol, state.buckets)
	if err != nil {
		return chartOrBlank(nil, err, "distribution")
	}
	img, err := charts.HistogramChart(hist, "Distribution of "+state.valueCol, chartW, chartH)
	return chartOrBlank(img, err, "distribution")
}

func renderBoxplot(state *uiState) image.Image {
	groups, err := views.GroupedFiveNum(state.filtered, dataset.ColStatus, state.valueCol)
	if err != nil {
		return chartOrBlank(nil, err, "boxplot")
	}
	img, err := charts.Boxplot(groups, state.valueCol+" by status", state.valueCol, chartW, chartH)
	return chartOrBlank(img, err, "boxplot")
}

func renderCorrelation(state *uiState) image.Image {
	m, err := views.Correlation(state.filtered, nil)
	if err != nil {
		return chartOrBlank(nil, err, "correlation")
	}
	img, err := charts.Heatmap(m, "Correlation matrix", chartW, chartH)
	return chartOrBlank(img, err, "correlation")
}

// exportCharts writes the current chart set into a user-chosen folder.
func exportCharts(state *uiState) {
	dialog.ShowFolderOpen(func(dir fyne.ListableURI, err error) {
		if err != nil || dir == nil {
			return
		}
		out := dir.Path()
		for name, img := range map[string]image.Image{
			"trend.png":         state.trendImg.Image,
			"top_countries.png": state.topImg.Image,
			"scatter.png":       state.scatterImg.Image,
			"distribution.png":  state.histImg.Image,
			"by_status.png":     state.boxImg.Image,
			"correlation.png":   state.corrImg.Image,
		} {
			if img == nil {
				continue
			}
			if err := charts.WritePNG(filepath.Join(out, name), img); err != nil {
				dialog.ShowError(err, state.window)
				return
			}
		}
		logging.Infof("exported charts to %s", out)
	}, state.window)
}
