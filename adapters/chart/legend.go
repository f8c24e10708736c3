package chart

import (
	"math"

	"lightcurve/domain/lightcurve"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	legendGap      = 12
	legendPadding  = 8
	legendFontSize = 9.0
	legendRowH     = 16
	legendSwatch   = 14
	// rough glyph advance used to reserve room before a renderer exists
	legendCharW = 6
)

type legendEntry struct {
	label string
	color drawing.Color
	// radius in pixels, capped so K-style small markers stay visible
	radius float64
}

// legend is drawn outside the plot area against the right edge of the
// image, vertically centered on the canvas
type legend struct {
	title      string
	entries    []legendEntry
	imageWidth int
}

func newLegend(c lightcurve.Chart, imageWidth int) *legend {
	l := &legend{title: c.LegendTitle, imageWidth: imageWidth}
	for _, s := range c.LegendOrder() {
		l.entries = append(l.entries, legendEntry{
			label:  s.Band,
			color:  withOpacity(s.Style.Color, s.Style.Opacity),
			radius: math.Min(markerRadius(s.Style.MarkerSize), legendSwatch/2),
		})
	}
	return l
}

func (l *legend) width() int {
	longest := len([]rune(l.title))
	for _, e := range l.entries {
		if n := len([]rune(e.label)) + 3; n > longest {
			longest = n
		}
	}
	return longest*legendCharW + 2*legendPadding + legendSwatch
}

func (l *legend) height() int {
	return (len(l.entries)+1)*legendRowH + 2*legendPadding
}

func (l *legend) render(r gochart.Renderer, canvasBox gochart.Box, defaults gochart.Style) {
	right := l.imageWidth - legendGap
	left := right - l.width()
	top := (canvasBox.Top+canvasBox.Bottom)/2 - l.height()/2
	bottom := top + l.height()

	r.SetFillColor(drawing.ColorWhite)
	r.SetStrokeColor(drawing.Color{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff})
	r.SetStrokeWidth(1)
	r.MoveTo(left, top)
	r.LineTo(right, top)
	r.LineTo(right, bottom)
	r.LineTo(left, bottom)
	r.LineTo(left, top)
	r.Close()
	r.FillStroke()

	r.SetFont(defaults.GetFont())
	r.SetFontSize(legendFontSize)
	r.SetFontColor(drawing.ColorBlack)

	y := top + legendPadding + legendRowH
	titleBox := r.MeasureText(l.title)
	r.Text(l.title, left+(right-left-titleBox.Width())/2, y-4)

	for _, e := range l.entries {
		y += legendRowH
		cx := left + legendPadding + legendSwatch/2
		cy := y - legendRowH/2

		r.SetFillColor(e.color)
		r.SetStrokeColor(e.color)
		r.SetStrokeWidth(1)
		r.Circle(e.radius, cx, cy)
		r.FillStroke()

		r.SetFontColor(drawing.ColorBlack)
		r.Text(e.label, left+legendPadding+legendSwatch+legendPadding/2, y-4)
	}
}
