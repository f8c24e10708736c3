package ports

import (
	"io"

	"lightcurve/domain/lightcurve"
)

// ImageFormat names a chart output encoding; it doubles as the file extension
type ImageFormat string

const (
	FormatSVG ImageFormat = "svg"
	FormatPNG ImageFormat = "png"
)

// ChartFormats are written on every plot, vector first
var ChartFormats = []ImageFormat{FormatSVG, FormatPNG}

// ChartRenderer draws a lightcurve chart in the requested format
type ChartRenderer interface {
	Render(w io.Writer, format ImageFormat, chart lightcurve.Chart) error
}
