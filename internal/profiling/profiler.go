package profiling

import (
	"sort"
	"strconv"
	"strings"

	"lightcurve/domain/lightcurve"
	"lightcurve/domain/table"
)

// Kind classifies a column by its values
type Kind string

const (
	KindNumeric     Kind = "numeric"
	KindCategorical Kind = "categorical"
	KindEmpty       Kind = "empty"
)

// ValueCount is one entry of a categorical frequency table
type ValueCount struct {
	Value string
	Count int
}

// ColumnProfile describes one column
type ColumnProfile struct {
	Name     string
	Kind     Kind
	NonEmpty int
	Distinct int
	// Numeric is set for numeric columns only
	Numeric *NumericSummary
	// TopValues is set for categorical columns only
	TopValues []ValueCount
}

// Report is the profile of a whole table
type Report struct {
	Source   string
	Rows     int
	Columns  int
	Profiles []ColumnProfile
	// Bands is filled when the table has the lightcurve columns
	Bands    []lightcurve.BandStats
	Warnings []string
}

// Profiler builds column profiles
type Profiler struct {
	topN int
}

// NewProfiler creates a profiler listing the five most frequent values of
// categorical columns
func NewProfiler() *Profiler {
	return &Profiler{topN: 5}
}

// Profile analyzes every column of tbl in header order
func (p *Profiler) Profile(source string, tbl *table.Table) *Report {
	report := &Report{
		Source:  source,
		Rows:    tbl.NumRows(),
		Columns: tbl.NumColumns(),
	}

	for _, name := range tbl.Headers() {
		col, _ := tbl.Column(name)
		report.Profiles = append(report.Profiles, p.profileColumn(name, col))
	}

	if lightcurve.HasColumns(tbl) {
		series, err := lightcurve.BuildSeries(tbl)
		if err != nil {
			report.Warnings = append(report.Warnings, "band statistics skipped: "+err.Error())
		} else {
			report.Bands = lightcurve.ComputeAllBandStats(series)
		}
	}
	return report
}

func (p *Profiler) profileColumn(name string, values []string) ColumnProfile {
	profile := ColumnProfile{Name: name}

	counts := make(map[string]int)
	numbers := make([]float64, 0, len(values))
	numeric := true
	for _, raw := range values {
		v := strings.TrimSpace(raw)
		if v == "" {
			continue
		}
		profile.NonEmpty++
		counts[v]++
		if numeric {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				numeric = false
				continue
			}
			numbers = append(numbers, f)
		}
	}
	profile.Distinct = len(counts)

	switch {
	case profile.NonEmpty == 0:
		profile.Kind = KindEmpty
	case numeric:
		// numbers is non-empty here, so Summarize cannot fail
		summary, _ := Summarize(numbers)
		profile.Kind = KindNumeric
		profile.Numeric = &summary
	default:
		profile.Kind = KindCategorical
		profile.TopValues = topValues(counts, p.topN)
	}
	return profile
}

// topValues returns the n most frequent values, ties in lexicographic order
func topValues(counts map[string]int, n int) []ValueCount {
	out := make([]ValueCount, 0, len(counts))
	for v, c := range counts {
		out = append(out, ValueCount{Value: v, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Value < out[j].Value
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}
