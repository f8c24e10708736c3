package app

import (
	"context"
	"io"
	"path/filepath"
	"strings"
	"time"

	"lightcurve/domain/core"
	"lightcurve/internal"
	"lightcurve/internal/config"
	"lightcurve/internal/errors"
	"lightcurve/internal/profiling"
	"lightcurve/ports"
)

// RunOptions selects the inputs and outputs of one pipeline run
type RunOptions struct {
	InputFile   string
	SummaryFile string
	PlotBase    string
	Plot        bool
	// ProfileFile is optional; ".html" selects HTML, anything else Markdown
	ProfileFile string
}

// OptionsFromConfig maps application configuration to run options
func OptionsFromConfig(cfg *config.Config) RunOptions {
	return RunOptions{
		InputFile:   cfg.Paths.InputFile,
		SummaryFile: cfg.Paths.SummaryFile,
		PlotBase:    cfg.Paths.PlotBase,
		Plot:        cfg.Plot.Enabled,
		ProfileFile: cfg.Paths.ProfileFile,
	}
}

// RunReport describes a completed run
type RunReport struct {
	RunID     core.RunID
	StartedAt core.Timestamp
	InputHash core.Hash
	Rows      int
	Columns   int
	Outputs   []string
	Elapsed   time.Duration
}

// ReaderFactory opens a table source for a path
type ReaderFactory func(path string) ports.TableReader

// Pipeline runs read -> summarize -> plot -> profile
type Pipeline struct {
	newReader ReaderFactory
	summary   *SummaryService
	plot      *PlotService
	profiler  *profiling.Profiler
	logger    *internal.Logger
}

// NewPipeline wires a pipeline from its stages
func NewPipeline(newReader ReaderFactory, summary *SummaryService, plot *PlotService, profiler *profiling.Profiler, logger *internal.Logger) *Pipeline {
	return &Pipeline{
		newReader: newReader,
		summary:   summary,
		plot:      plot,
		profiler:  profiler,
		logger:    logger,
	}
}

// Run executes one batch. The first failing stage aborts the run.
func (p *Pipeline) Run(ctx context.Context, opts RunOptions) (*RunReport, error) {
	report := &RunReport{RunID: core.NewRunID(), StartedAt: core.Now()}
	p.logger.Info("Run %s started for %s", report.RunID, opts.InputFile)

	reader := p.newReader(opts.InputFile)
	tbl, err := reader.ReadTable(ctx)
	if err != nil {
		return nil, err
	}
	report.Rows = tbl.NumRows()
	report.Columns = tbl.NumColumns()

	hash, err := core.HashFile(opts.InputFile)
	if err != nil {
		return nil, errors.IOError(opts.InputFile, err)
	}
	report.InputHash = hash
	p.logger.Debug("Input %s sha256 %s", opts.InputFile, hash.Short())

	if err := p.summary.Write(ctx, tbl, opts.SummaryFile); err != nil {
		return nil, errors.Wrap(err, "summary failed")
	}
	report.Outputs = append(report.Outputs, opts.SummaryFile)

	if opts.Plot {
		paths, err := p.plot.Plot(ctx, tbl, opts.PlotBase)
		if err != nil {
			return nil, errors.Wrap(err, "plot failed")
		}
		report.Outputs = append(report.Outputs, paths...)
	}

	if opts.ProfileFile != "" {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		profile := p.profiler.Profile(reader.Path(), tbl)
		if err := WriteProfile(opts.ProfileFile, profile); err != nil {
			return nil, errors.Wrap(err, "profile failed")
		}
		for _, w := range profile.Warnings {
			p.logger.Warn("%s", w)
		}
		report.Outputs = append(report.Outputs, opts.ProfileFile)
	}

	report.Elapsed = report.StartedAt.Since()
	p.logger.Info("Run %s finished in %s (%d rows, %d outputs)", report.RunID, report.Elapsed, report.Rows, len(report.Outputs))
	return report, nil
}

// WriteProfile writes the report as HTML when path ends in .html, else Markdown
func WriteProfile(path string, report *profiling.Report) error {
	var body []byte
	if strings.EqualFold(filepath.Ext(path), ".html") {
		body = profiling.RenderHTML(report)
	} else {
		body = []byte(profiling.RenderMarkdown(report))
	}
	return writeFile(path, func(w io.Writer) error {
		if _, err := w.Write(body); err != nil {
			return errors.IOError(path, err)
		}
		return nil
	})
}
