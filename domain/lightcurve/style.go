package lightcurve

import (
	"image/color"
	"sort"
)

// Style is the look of one band's scatter markers and error bars
type Style struct {
	Color color.RGBA
	// Layer orders drawing; lower layers are drawn first, underneath.
	Layer int
	// MarkerSize is the marker area in square points.
	MarkerSize float64
	// LineWidth is the error bar width in points.
	LineWidth float64
	// Opacity in [0, 1] applies to markers and error bars.
	Opacity float64
}

// DefaultStyle returns the style every band starts from
func DefaultStyle() Style {
	return Style{
		MarkerSize: 36,
		LineWidth:  1.5,
		Opacity:    1,
	}
}

// Palette is the color cycle assigned to bands in order
var Palette = []color.RGBA{
	{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff},
	{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff},
	{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff},
	{R: 0xd6, G: 0x27, B: 0x28, A: 0xff},
	{R: 0x94, G: 0x67, B: 0xbd, A: 0xff},
	{R: 0x8c, G: 0x56, B: 0x4b, A: 0xff},
	{R: 0xe3, G: 0x77, B: 0xc2, A: 0xff},
	{R: 0x7f, G: 0x7f, B: 0x7f, A: 0xff},
	{R: 0xbc, G: 0xbd, B: 0x22, A: 0xff},
	{R: 0x17, G: 0xbe, B: 0xcf, A: 0xff},
}

// StyleRule adjusts the style of a band
type StyleRule func(Style) Style

// StyleRules maps band values to their style adjustment
type StyleRules map[string]StyleRule

// DefaultStyleRules returns the built-in rules: the K band is pushed into
// the background.
func DefaultStyleRules() StyleRules {
	return StyleRules{"K": Deemphasize}
}

// Deemphasize draws a series underneath the others with half-size markers,
// half-width error bars and 50% opacity.
func Deemphasize(s Style) Style {
	s.Layer = -10
	s.MarkerSize *= 0.5
	s.LineWidth *= 0.5
	s.Opacity = 0.5
	return s
}

// Apply returns base adjusted by the rule registered for band, if any
func (r StyleRules) Apply(band string, base Style) Style {
	if rule, ok := r[band]; ok && rule != nil {
		return rule(base)
	}
	return base
}

// StyledSeries pairs a series with its resolved style
type StyledSeries struct {
	Series
	Style Style
}

// Chart is the renderer-independent description of a lightcurve plot
type Chart struct {
	Title       string
	XLabel      string
	YLabel      string
	LegendTitle string
	// Series are in drawing order (ascending layer).
	Series []StyledSeries
}

// NewChart assigns palette colors in band order, applies rules and orders
// the series for drawing. Bands on the same layer keep their band order.
func NewChart(series []Series, rules StyleRules) Chart {
	styled := make([]StyledSeries, len(series))
	for i, s := range series {
		base := DefaultStyle()
		base.Color = Palette[i%len(Palette)]
		styled[i] = StyledSeries{Series: s, Style: rules.Apply(s.Band, base)}
	}
	sort.SliceStable(styled, func(i, j int) bool {
		return styled[i].Style.Layer < styled[j].Style.Layer
	})

	return Chart{
		Title:       "Supernova Lightcurve",
		XLabel:      "Time",
		YLabel:      "Flux",
		LegendTitle: "Bands",
		Series:      styled,
	}
}

// LegendOrder returns the series in band order, as listed in the legend
func (c Chart) LegendOrder() []StyledSeries {
	out := append([]StyledSeries(nil), c.Series...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Band < out[j].Band })
	return out
}
