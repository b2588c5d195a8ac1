// Package charts renders derived views as images: line, bar, scatter and
// histogram via go-chart, boxplot and correlation heatmap drawn directly
// (go-chart has no primitives for those). The package produces images only;
// it holds no UI state.
package charts

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/mvermaas/LifeExpectancyExplorer/src/views"
)

// pointStyle returns a style that renders points only (no connecting line).
func pointStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: 0,
		DotWidth:    4,
		DotColor:    col,
	}
}

// groupPalette cycles across scatter/box groups.
var groupPalette = []drawing.Color{
	chart.ColorBlue,
	chart.ColorRed,
	chart.ColorGreen,
	chart.ColorOrange,
	chart.ColorCyan,
	chart.ColorAlternateGray,
}

func renderToImage(ch chart.Chart) (image.Image, error) {
	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render chart: %w", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("decode rendered chart: %w", err)
	}
	return img, nil
}

// Line renders a yearly-mean series as a connected line. Years whose mean is
// missing are skipped, leaving a gap rather than plotting zero.
func Line(series []views.YearMean, title, yLabel string, w, h int) (image.Image, error) {
	var xs, ys []float64
	for _, p := range series {
		if !p.Valid {
			continue
		}
		xs = append(xs, float64(p.Year))
		ys = append(ys, p.Mean)
	}
	if len(xs) == 0 {
		return nil, &views.EmptyInputError{Op: "line chart"}
	}
	if len(xs) == 1 {
		// go-chart needs an x-range; pad a single point like the viewer does.
		xs = append(xs, xs[0]+1)
		ys = append(ys, ys[0])
	}
	ch := chart.Chart{
		Title:      title,
		Width:      w,
		Height:     h,
		Background: chart.Style{Padding: chart.Box{Top: 14, Left: 16, Right: 12, Bottom: 28}},
		XAxis:      chart.XAxis{Name: "Year"},
		YAxis:      chart.YAxis{Name: yLabel},
		Series: []chart.Series{chart.ContinuousSeries{
			Name:    yLabel,
			XValues: xs,
			YValues: ys,
			Style:   chart.Style{StrokeWidth: 2, StrokeColor: chart.ColorBlue, DotWidth: 3, DotColor: chart.ColorBlue},
		}},
	}
	flat := true
	for _, y := range ys[1:] {
		if y != ys[0] {
			flat = false
			break
		}
	}
	if flat { // a flat series has no drawable y-range of its own
		ch.YAxis.Range = &chart.ContinuousRange{Min: ys[0] - 1, Max: ys[0] + 1}
	}
	return renderToImage(ch)
}

// Bar renders labelled values as a bar chart, in the order given.
func Bar(labels []string, vals []float64, title string, w, h int) (image.Image, error) {
	if len(labels) == 0 {
		return nil, &views.EmptyInputError{Op: "bar chart"}
	}
	bars := make([]chart.Value, len(labels))
	for i := range labels {
		bars[i] = chart.Value{Label: labels[i], Value: vals[i], Style: chart.Style{FillColor: chart.ColorBlue, StrokeColor: chart.ColorBlue}}
	}
	ch := chart.BarChart{
		Title:      title,
		Width:      w,
		Height:     h,
		BarWidth:   max(18, (w-120)/(len(bars)*2)),
		Background: chart.Style{Padding: chart.Box{Top: 14, Left: 16, Right: 12, Bottom: 36}},
		Bars:       bars,
	}
	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render bar chart: %w", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("decode bar chart: %w", err)
	}
	return img, nil
}

// Scatter renders one point series per group, colored from groupPalette.
// The empty-string group (rows whose group value is missing) is labelled
// "(unknown)" in the legend but plotted like any other.
func Scatter(data views.ScatterData, title string, w, h int) (image.Image, error) {
	groups := data.Groups()
	if len(groups) == 0 {
		return nil, &views.EmptyInputError{Op: "scatter chart"}
	}
	var series []chart.Series
	for gi, g := range groups {
		var xs, ys []float64
		for i := range data.X {
			if data.Group[i] == g {
				xs = append(xs, data.X[i])
				ys = append(ys, data.Y[i])
			}
		}
		if len(xs) == 1 {
			// pad so a lone group still gives go-chart a drawable x-range
			xs = append(xs, xs[0]+1)
			ys = append(ys, ys[0])
		}
		name := g
		if name == "" {
			name = "(unknown)"
		}
		series = append(series, chart.ContinuousSeries{
			Name:    name,
			XValues: xs,
			YValues: ys,
			Style:   pointStyle(groupPalette[gi%len(groupPalette)]),
		})
	}
	ch := chart.Chart{
		Title:      title,
		Width:      w,
		Height:     h,
		Background: chart.Style{Padding: chart.Box{Top: 14, Left: 16, Right: 12, Bottom: 28}},
		XAxis:      chart.XAxis{Name: data.XName},
		YAxis:      chart.YAxis{Name: data.YName},
		Series:     series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	return renderToImage(ch)
}

// HistogramChart renders bucket counts as bars labelled by bucket range.
func HistogramChart(hist views.Histogram, title string, w, h int) (image.Image, error) {
	if len(hist.Counts) == 0 {
		return nil, &views.EmptyInputError{Op: "histogram chart"}
	}
	bars := make([]chart.Value, len(hist.Counts))
	for i, c := range hist.Counts {
		bars[i] = chart.Value{
			Label: fmt.Sprintf("%.0f", hist.Edges[i]),
			Value: float64(c),
			Style: chart.Style{FillColor: chart.ColorAlternateBlue, StrokeColor: chart.ColorBlue},
		}
	}
	ch := chart.BarChart{
		Title:      title,
		Width:      w,
		Height:     h,
		BarWidth:   max(10, (w-120)/(len(bars)+2)),
		BarSpacing: 2,
		Background: chart.Style{Padding: chart.Box{Top: 14, Left: 16, Right: 12, Bottom: 36}},
		Bars:       bars,
	}
	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render histogram: %w", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("decode histogram: %w", err)
	}
	return img, nil
}
