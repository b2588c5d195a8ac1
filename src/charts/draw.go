package charts

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/mvermaas/LifeExpectancyExplorer/src/views"
)

var (
	inkColor   = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	gridColor  = color.RGBA{R: 220, G: 220, B: 220, A: 255}
	boxFill    = color.RGBA{R: 140, G: 180, B: 235, A: 255}
	whiteColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// Blank returns a uniformly filled placeholder image, used by callers as a
// fallback when a chart cannot be rendered.
func Blank(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(whiteColor), image.Point{}, draw.Src)
	return img
}

// WritePNG encodes img to path.
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}

// drawString renders s at (x, y) in the 7x13 basic font; y is the baseline.
func drawString(dst *image.RGBA, x, y int, s string, col color.Color) {
	dr := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)},
	}
	dr.DrawString(s)
}

func stringWidth(s string) int {
	dr := &font.Drawer{Face: basicfont.Face7x13}
	return dr.MeasureString(s).Ceil()
}

func fillRect(dst *image.RGBA, r image.Rectangle, col color.Color) {
	draw.Draw(dst, r, image.NewUniform(col), image.Point{}, draw.Src)
}

func hline(dst *image.RGBA, x0, x1, y int, col color.Color) {
	fillRect(dst, image.Rect(x0, y, x1, y+1), col)
}

func vline(dst *image.RGBA, x, y0, y1 int, col color.Color) {
	fillRect(dst, image.Rect(x, y0, x+1, y1), col)
}

// Boxplot draws one box-and-whisker per group five-number summary.
func Boxplot(groups []views.FiveNum, title, yLabel string, w, h int) (image.Image, error) {
	if len(groups) == 0 {
		return nil, &views.EmptyInputError{Op: "boxplot"}
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	fillRect(img, img.Bounds(), whiteColor)

	const (
		marginLeft   = 70
		marginRight  = 20
		marginTop    = 36
		marginBottom = 40
	)
	plotW := w - marginLeft - marginRight
	plotH := h - marginTop - marginBottom

	lo, hi := groups[0].Min, groups[0].Max
	for _, g := range groups[1:] {
		lo = math.Min(lo, g.Min)
		hi = math.Max(hi, g.Max)
	}
	if hi == lo {
		hi = lo + 1 // degenerate range still needs a drawable scale
	}
	yFor := func(v float64) int {
		return marginTop + int(float64(plotH)*(hi-v)/(hi-lo))
	}

	drawString(img, marginLeft, 18, title, inkColor)
	drawString(img, 8, marginTop+12, yLabel, inkColor)

	// horizontal grid with tick labels
	for t := 0; t <= 4; t++ {
		v := lo + (hi-lo)*float64(t)/4
		y := yFor(v)
		hline(img, marginLeft, w-marginRight, y, gridColor)
		drawString(img, 8, y+4, fmt.Sprintf("%.1f", v), inkColor)
	}

	slot := plotW / len(groups)
	boxW := slot / 2
	if boxW < 10 {
		boxW = 10
	}
	for i, g := range groups {
		cx := marginLeft + slot*i + slot/2
		// whiskers
		vline(img, cx, yFor(g.Max), yFor(g.Min), inkColor)
		hline(img, cx-boxW/4, cx+boxW/4, yFor(g.Max), inkColor)
		hline(img, cx-boxW/4, cx+boxW/4, yFor(g.Min), inkColor)
		// interquartile box
		box := image.Rect(cx-boxW/2, yFor(g.Q3), cx+boxW/2, yFor(g.Q1))
		fillRect(img, box, boxFill)
		hline(img, box.Min.X, box.Max.X, box.Min.Y, inkColor)
		hline(img, box.Min.X, box.Max.X, box.Max.Y, inkColor)
		vline(img, box.Min.X, box.Min.Y, box.Max.Y, inkColor)
		vline(img, box.Max.X, box.Min.Y, box.Max.Y, inkColor)
		// median
		hline(img, box.Min.X, box.Max.X, yFor(g.Med), inkColor)

		label := g.Group
		if label == "" {
			label = "(unknown)"
		}
		drawString(img, cx-stringWidth(label)/2, h-marginBottom+18, label, inkColor)
		n := fmt.Sprintf("n=%d", g.N)
		drawString(img, cx-stringWidth(n)/2, h-marginBottom+32, n, inkColor)
	}
	return img, nil
}

// Heatmap draws a correlation matrix as a colored grid: blue for negative,
// white near zero, red for positive. Undefined entries render gray with no
// value, so "no correlation computable" never reads as zero correlation.
func Heatmap(m *views.CorrMatrix, title string, w, h int) (image.Image, error) {
	n := len(m.Columns)
	if n == 0 {
		return nil, &views.EmptyInputError{Op: "heatmap"}
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	fillRect(img, img.Bounds(), whiteColor)

	labelW := 0
	for _, c := range m.Columns {
		if lw := stringWidth(c); lw > labelW {
			labelW = lw
		}
	}
	const marginTop = 36
	marginLeft := labelW + 16
	cell := (w - marginLeft - 16) / n
	if ch := (h - marginTop - 24) / n; ch < cell {
		cell = ch
	}
	if cell < 14 {
		cell = 14
	}

	drawString(img, marginLeft, 18, title, inkColor)
	for i := 0; i < n; i++ {
		y0 := marginTop + i*cell
		drawString(img, 8, y0+cell/2+4, m.Columns[i], inkColor)
		drawString(img, marginLeft+i*cell+cell/2-4, marginTop+n*cell+16, fmt.Sprintf("%d", i+1), inkColor)
		for j := 0; j < n; j++ {
			x0 := marginLeft + j*cell
			rect := image.Rect(x0, y0, x0+cell-1, y0+cell-1)
			if !m.Defined[i][j] {
				fillRect(img, rect, color.RGBA{R: 200, G: 200, B: 200, A: 255})
				continue
			}
			fillRect(img, rect, corrColor(m.R[i][j]))
			if cell >= 34 {
				txt := fmt.Sprintf("%.2f", m.R[i][j])
				drawString(img, x0+(cell-stringWidth(txt))/2, y0+cell/2+4, txt, inkColor)
			}
		}
	}
	return img, nil
}

// corrColor maps r in [-1, 1] to a blue-white-red ramp.
func corrColor(r float64) color.RGBA {
	if r < -1 {
		r = -1
	} else if r > 1 {
		r = 1
	}
	fade := uint8(255 * (1 - math.Abs(r)))
	if r < 0 {
		return color.RGBA{R: fade, G: fade, B: 255, A: 255}
	}
	return color.RGBA{R: 255, G: fade, B: fade, A: 255}
}
