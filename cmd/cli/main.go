package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"

	"lightcurve/app"
	"lightcurve/domain/sequence"
	"lightcurve/internal/config"
	"lightcurve/internal/container"
	"lightcurve/internal/errors"
	"lightcurve/internal/profiling"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(errors.ExitCode(err))
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "lightcurve",
		Short:         "Summarize tabular observations and plot supernova lightcurves",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		newRunCmd(),
		newSummaryCmd(),
		newPlotCmd(),
		newProfileCmd(),
		newFibCmd(),
	)
	return rootCmd
}

// loadContainer reads .env and the environment, then wires the application
func loadContainer() (*container.Container, error) {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return container.New(cfg)
}

func newRunCmd() *cobra.Command {
	var input, summary, plotBase, profile string
	var noPlot bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the full read -> summarize -> plot pipeline",
		Long: `Run the full pipeline using paths from the environment (.env is honoured).

Environment:
- LIGHTCURVE_BASE_DIR (default: .)
- LIGHTCURVE_INPUT (default: $LIGHTCURVE_BASE_DIR/Data/data.csv)
- LIGHTCURVE_SUMMARY (default: $LIGHTCURVE_BASE_DIR/output_go.txt)
- LIGHTCURVE_PLOT_BASE (default: "$LIGHTCURVE_BASE_DIR/Supernova Lightcurve")
- LIGHTCURVE_PLOT (default: true)
- LIGHTCURVE_PROFILE (optional)

Flags override the environment.

Example: lightcurve run --input Data/data.csv --profile profile.html`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadContainer()
			if err != nil {
				return err
			}

			opts := app.OptionsFromConfig(c.Config)
			flags := cmd.Flags()
			if flags.Changed("input") {
				opts.InputFile = input
			}
			if flags.Changed("summary") {
				opts.SummaryFile = summary
			}
			if flags.Changed("plot-base") {
				opts.PlotBase = plotBase
			}
			if flags.Changed("profile") {
				opts.ProfileFile = profile
			}
			if noPlot {
				opts.Plot = false
			}

			report, err := c.Pipeline.Run(cmd.Context(), opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Run %s: %d rows, %d columns\n", report.RunID, report.Rows, report.Columns)
			for _, path := range report.Outputs {
				fmt.Fprintf(out, "  wrote %s\n", path)
			}
			fmt.Fprintf(out, "lightcurve took %v seconds\n", report.Elapsed.Seconds())
			return nil
		},
	}

	cmd.Flags().StringVar(&input, "input", "", "Input table (.csv or .xlsx)")
	cmd.Flags().StringVar(&summary, "summary", "", "Summary report path")
	cmd.Flags().StringVar(&plotBase, "plot-base", "", "Chart path without extension")
	cmd.Flags().StringVar(&profile, "profile", "", "Profile report path (.md or .html)")
	cmd.Flags().BoolVar(&noPlot, "no-plot", false, "Skip chart rendering")

	return cmd
}

func newSummaryCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "summary [input]",
		Short: "Print or write the header and row count report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadContainer()
			if err != nil {
				return err
			}
			tbl, err := c.NewReader(args[0]).ReadTable(cmd.Context())
			if err != nil {
				return err
			}

			if output != "" {
				return c.Summary.Write(cmd.Context(), tbl, output)
			}
			report, err := c.Summary.Format(tbl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), report)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: stdout)")
	return cmd
}

func newPlotCmd() *cobra.Command {
	var base string

	cmd := &cobra.Command{
		Use:   "plot [input]",
		Short: "Render the lightcurve chart as SVG and PNG",
		Long: `Render one scatter + error bar series per band.

Example: lightcurve plot Data/data.csv -o "Supernova Lightcurve"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadContainer()
			if err != nil {
				return err
			}
			tbl, err := c.NewReader(args[0]).ReadTable(cmd.Context())
			if err != nil {
				return err
			}

			paths, err := c.Plot.Plot(cmd.Context(), tbl, base)
			if err != nil {
				return err
			}
			for _, p := range paths {
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", p)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&base, "output", "o", "Supernova Lightcurve", "Chart path without extension")
	return cmd
}

func newProfileCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "profile [input]",
		Short: "Profile every column and, for lightcurve tables, every band",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadContainer()
			if err != nil {
				return err
			}
			reader := c.NewReader(args[0])
			tbl, err := reader.ReadTable(cmd.Context())
			if err != nil {
				return err
			}

			report := c.Profiler.Profile(reader.Path(), tbl)
			if output != "" {
				return app.WriteProfile(output, report)
			}
			return writeMarkdown(cmd.OutOrStdout(), report)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file, .md or .html (default: stdout)")
	return cmd
}

func newFibCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fib [n]",
		Short: "Print the n-th Fibonacci number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return errors.InvalidInput(fmt.Sprintf("invalid index %q", args[0]))
			}
			v, err := sequence.Fib(n)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), v.String())
			return nil
		},
	}
}

func writeMarkdown(w io.Writer, report *profiling.Report) error {
	_, err := io.WriteString(w, profiling.RenderMarkdown(report))
	return err
}
