package app

import (
	"bufio"
	"context"
	"io"

	"lightcurve/domain/lightcurve"
	"lightcurve/domain/table"
	"lightcurve/internal"
	"lightcurve/internal/errors"
	"lightcurve/ports"
)

// PlotService renders the lightcurve chart of a table to image files
type PlotService struct {
	renderer ports.ChartRenderer
	rules    lightcurve.StyleRules
	logger   *internal.Logger
}

// NewPlotService creates a plot service. nil rules mean no band gets a
// style override; pass lightcurve.DefaultStyleRules() for the standard look.
func NewPlotService(renderer ports.ChartRenderer, rules lightcurve.StyleRules, logger *internal.Logger) *PlotService {
	return &PlotService{renderer: renderer, rules: rules, logger: logger}
}

// Chart builds the styled chart model for tbl
func (p *PlotService) Chart(tbl *table.Table) (lightcurve.Chart, error) {
	series, err := lightcurve.BuildSeries(tbl)
	if err != nil {
		return lightcurve.Chart{}, err
	}
	return lightcurve.NewChart(series, p.rules), nil
}

// Plot writes base.svg and base.png, replacing existing files, and returns
// the written paths.
func (p *PlotService) Plot(ctx context.Context, tbl *table.Table, base string) ([]string, error) {
	chart, err := p.Chart(tbl)
	if err != nil {
		return nil, err
	}
	p.logger.Debug("Plotting %d bands", len(chart.Series))

	paths := make([]string, 0, len(ports.ChartFormats))
	for _, format := range ports.ChartFormats {
		if err := ctx.Err(); err != nil {
			return paths, err
		}
		path := base + "." + string(format)
		err := writeFile(path, func(w io.Writer) error {
			bw := bufio.NewWriter(w)
			if err := p.renderer.Render(bw, format, chart); err != nil {
				return err
			}
			if err := bw.Flush(); err != nil {
				return errors.IOError(path, err)
			}
			return nil
		})
		if err != nil {
			return paths, err
		}
		paths = append(paths, path)
		p.logger.Info("Plot written to %s", path)
	}
	return paths, nil
}
