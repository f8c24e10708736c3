package container

import (
	"lightcurve/adapters/chart"
	"lightcurve/adapters/excel"
	"lightcurve/app"
	"lightcurve/domain/lightcurve"
	"lightcurve/internal"
	"lightcurve/internal/config"
	"lightcurve/internal/errors"
	"lightcurve/internal/profiling"
	"lightcurve/ports"
)

// Container holds the application's wired dependencies
type Container struct {
	Config *config.Config
	Logger *internal.Logger

	// NewReader opens .xlsx or CSV input, logging through Logger
	NewReader app.ReaderFactory
	Renderer  *chart.Renderer
	Summary   *app.SummaryService
	Plot      *app.PlotService
	Profiler  *profiling.Profiler
	Pipeline  *app.Pipeline
}

// New wires every component from cfg
func New(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, errors.ConfigInvalid("config cannot be nil")
	}

	logger := internal.NewLogger(internal.ParseLogLevel(cfg.Log.Level))
	c := &Container{
		Config: cfg,
		Logger: logger,
		NewReader: func(path string) ports.TableReader {
			return excel.NewDataReader(path, logger)
		},
		Renderer: chart.NewRenderer(cfg.Plot.Width, cfg.Plot.Height),
		Summary:  app.NewSummaryService(logger),
		Profiler: profiling.NewProfiler(),
	}
	c.Plot = app.NewPlotService(c.Renderer, lightcurve.DefaultStyleRules(), logger)
	c.Pipeline = app.NewPipeline(c.NewReader, c.Summary, c.Plot, c.Profiler, logger)

	return c, nil
}
