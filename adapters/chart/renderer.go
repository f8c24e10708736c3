// Package chart renders lightcurve charts with go-chart.
package chart

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"lightcurve/domain/lightcurve"
	"lightcurve/internal/errors"
	"lightcurve/ports"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// go-chart's default resolution, used to turn point sizes into pixels
const dpi = 92.0

// rangeMargin pads each axis by this fraction of the data span
const rangeMargin = 0.05

// Renderer draws scatter + error bar lightcurves
type Renderer struct {
	Width  int
	Height int
}

// NewRenderer creates a renderer producing width x height images
func NewRenderer(width, height int) *Renderer {
	return &Renderer{Width: width, Height: height}
}

// Render writes c to w in the given format
func (r *Renderer) Render(w io.Writer, format ports.ImageFormat, c lightcurve.Chart) error {
	var provider gochart.RendererProvider
	switch format {
	case ports.FormatSVG:
		provider = gochart.SVG
	case ports.FormatPNG:
		provider = gochart.PNG
	default:
		return errors.InvalidInput(fmt.Sprintf("unsupported image format %q", format))
	}

	if err := r.build(c).Render(provider, w); err != nil {
		return errors.Wrapf(err, "failed to render %s chart", format)
	}
	return nil
}

func (r *Renderer) build(c lightcurve.Chart) *gochart.Chart {
	var series []gochart.Series
	xs, ys := newBounds(), newBounds()

	for _, s := range c.Series {
		if s.Len() == 0 {
			continue
		}
		markerColor := withOpacity(s.Style.Color, s.Style.Opacity)

		series = append(series, gochart.ContinuousSeries{
			Name:    s.Band,
			YAxis:   gochart.YAxisSecondary,
			XValues: s.Time,
			YValues: s.Flux,
			Style: gochart.Style{
				StrokeWidth: gochart.Disabled,
				DotColor:    markerColor,
				DotWidth:    markerRadius(s.Style.MarkerSize),
			},
		})

		for i := range s.Time {
			lo, hi := s.Flux[i]-s.FluxErr[i], s.Flux[i]+s.FluxErr[i]
			xs.add(s.Time[i])
			ys.add(lo)
			ys.add(hi)
			series = append(series, gochart.ContinuousSeries{
				YAxis:   gochart.YAxisSecondary,
				XValues: []float64{s.Time[i], s.Time[i]},
				YValues: []float64{lo, hi},
				Style: gochart.Style{
					StrokeColor: markerColor,
					StrokeWidth: pointsToPixels(s.Style.LineWidth),
				},
			})
		}
	}

	if len(series) == 0 {
		// go-chart needs at least one series; an empty table still gets
		// its title, axes and legend frame
		series = append(series, gochart.ContinuousSeries{
			YAxis:   gochart.YAxisSecondary,
			XValues: []float64{0, 1},
			YValues: []float64{0, 1},
			Style: gochart.Style{
				Hidden:      true,
				StrokeWidth: gochart.Disabled,
			},
		})
	}

	// Flux lives on the secondary axis so it is drawn on the left. The
	// primary axis is hidden but still needs a non-zero range.
	legend := newLegend(c, r.Width)
	ch := &gochart.Chart{
		Title:  c.Title,
		Width:  r.Width,
		Height: r.Height,
		Background: gochart.Style{
			Padding: gochart.Box{Top: 50, Left: 20, Right: legend.width() + 2*legendGap, Bottom: 20},
		},
		XAxis: gochart.XAxis{
			Name:  c.XLabel,
			Range: xs.padded(),
		},
		YAxis: gochart.YAxis{
			Style: gochart.Hidden(),
			Range: ys.padded(),
		},
		YAxisSecondary: gochart.YAxis{
			Name:  c.YLabel,
			Range: ys.padded(),
		},
		Series: series,
	}
	ch.Elements = []gochart.Renderable{legend.render}
	return ch
}

func withOpacity(c color.RGBA, opacity float64) drawing.Color {
	opacity = math.Max(0, math.Min(1, opacity))
	return drawing.Color{R: c.R, G: c.G, B: c.B, A: uint8(math.Round(opacity * 255))}
}

// markerRadius converts a marker area in square points to a radius in pixels
func markerRadius(area float64) float64 {
	return pointsToPixels(math.Sqrt(area) / 2)
}

func pointsToPixels(pt float64) float64 {
	return pt * dpi / 72
}

type bounds struct {
	min, max float64
}

func newBounds() *bounds {
	return &bounds{min: math.Inf(1), max: math.Inf(-1)}
}

func (b *bounds) add(v float64) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return
	}
	b.min = math.Min(b.min, v)
	b.max = math.Max(b.max, v)
}

// padded returns the axis range with a margin. A zero span is widened by
// ±1 and an axis without finite values falls back to [0, 1].
func (b *bounds) padded() *gochart.ContinuousRange {
	lo, hi := b.min, b.max
	if lo > hi {
		return &gochart.ContinuousRange{Min: 0, Max: 1}
	}
	if span := hi - lo; span > 0 {
		lo -= span * rangeMargin
		hi += span * rangeMargin
	} else {
		lo--
		hi++
	}
	return &gochart.ContinuousRange{Min: lo, Max: hi}
}
