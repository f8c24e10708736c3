package profiling

import (
	"fmt"
	"math"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

const reportTitle = "Table profile"

// RenderMarkdown renders the report as Markdown tables
func RenderMarkdown(r *Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", reportTitle)
	if r.Source != "" {
		fmt.Fprintf(&b, "Source: `%s`\n\n", r.Source)
	}
	fmt.Fprintf(&b, "Rows: %d, columns: %d\n\n", r.Rows, r.Columns)

	if len(r.Profiles) > 0 {
		b.WriteString("## Columns\n\n")
		b.WriteString("| Column | Kind | Non-empty | Distinct | Mean | Std dev | Min | Median | Max | Top values |\n")
		b.WriteString("|---|---|---:|---:|---:|---:|---:|---:|---:|---|\n")
		for _, p := range r.Profiles {
			mean, std, min, median, max := "", "", "", "", ""
			if p.Numeric != nil {
				mean, std = num(p.Numeric.Mean), num(p.Numeric.StdDev)
				min, median, max = num(p.Numeric.Min), num(p.Numeric.Median), num(p.Numeric.Max)
			}
			fmt.Fprintf(&b, "| %s | %s | %d | %d | %s | %s | %s | %s | %s | %s |\n",
				cell(p.Name), p.Kind, p.NonEmpty, p.Distinct, mean, std, min, median, max, cell(formatTop(p.TopValues)))
		}
		b.WriteString("\n")
	}

	if len(r.Bands) > 0 {
		b.WriteString("## Bands\n\n")
		b.WriteString("| Band | Points | First time | Last time | Mean flux | Mean flux error | Weighted | Peak flux | Peak time |\n")
		b.WriteString("|---|---:|---:|---:|---:|---:|---|---:|---:|\n")
		for _, s := range r.Bands {
			fmt.Fprintf(&b, "| %s | %d | %s | %s | %s | %s | %t | %s | %s |\n",
				cell(s.Band), s.Points, num(s.FirstTime), num(s.LastTime), num(s.MeanFlux),
				num(s.MeanFluxErr), s.Weighted, num(s.PeakFlux), num(s.PeakTime))
		}
		b.WriteString("\n")
	}

	if len(r.Warnings) > 0 {
		b.WriteString("## Warnings\n\n")
		for _, w := range r.Warnings {
			fmt.Fprintf(&b, "- %s\n", w)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// RenderHTML renders the report as a standalone HTML page
func RenderHTML(r *Report) []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := html.NewRenderer(html.RendererOptions{
		Title: reportTitle,
		Flags: html.CommonFlags | html.CompletePage,
	})
	return markdown.ToHTML([]byte(RenderMarkdown(r)), p, renderer)
}

func num(v float64) string {
	if math.IsNaN(v) {
		return "-"
	}
	return fmt.Sprintf("%.4g", v)
}

func formatTop(values []ValueCount) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%s (%d)", v.Value, v.Count)
	}
	return strings.Join(parts, ", ")
}

// cell escapes text for a Markdown table cell
func cell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}
