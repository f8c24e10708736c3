// Package lightcurve turns a table of photometric observations into
// per-band series and the styled chart model the renderers draw.
package lightcurve

import (
	"fmt"

	"lightcurve/domain/table"
	"lightcurve/internal/errors"
)

// Required column names
const (
	ColumnBand    = "band"
	ColumnTime    = "time"
	ColumnFlux    = "flux"
	ColumnFluxErr = "e_flux"
)

// RequiredColumns lists the columns a lightcurve table must have
var RequiredColumns = []string{ColumnBand, ColumnTime, ColumnFlux, ColumnFluxErr}

// Series holds the observations of one band in table order
type Series struct {
	Band    string
	Time    []float64
	Flux    []float64
	FluxErr []float64
	// Rows are the source row indices
	Rows []int
}

// Len returns the number of observations
func (s Series) Len() int {
	return len(s.Rows)
}

// HasColumns reports whether tbl carries every required column
func HasColumns(tbl *table.Table) bool {
	for _, name := range RequiredColumns {
		if !tbl.HasColumn(name) {
			return false
		}
	}
	return true
}

// BuildSeries parses the numeric columns and splits the rows by band.
// Series are returned in lexicographic band order.
func BuildSeries(tbl *table.Table) ([]Series, error) {
	for _, name := range RequiredColumns {
		if !tbl.HasColumn(name) {
			return nil, errors.InvalidInput(fmt.Sprintf("lightcurve table is missing column %q", name))
		}
	}

	times, err := tbl.FloatColumn(ColumnTime)
	if err != nil {
		return nil, err
	}
	fluxes, err := tbl.FloatColumn(ColumnFlux)
	if err != nil {
		return nil, err
	}
	fluxErrs, err := tbl.FloatColumn(ColumnFluxErr)
	if err != nil {
		return nil, err
	}

	groups, err := tbl.Partition(ColumnBand)
	if err != nil {
		return nil, err
	}

	series := make([]Series, 0, len(groups))
	for _, band := range table.SortedKeys(groups) {
		rows := groups[band]
		s := Series{
			Band:    band,
			Time:    make([]float64, len(rows)),
			Flux:    make([]float64, len(rows)),
			FluxErr: make([]float64, len(rows)),
			Rows:    rows,
		}
		for i, row := range rows {
			s.Time[i] = times[row]
			s.Flux[i] = fluxes[row]
			s.FluxErr[i] = fluxErrs[row]
		}
		series = append(series, s)
	}
	return series, nil
}
