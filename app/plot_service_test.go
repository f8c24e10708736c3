package app

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"lightcurve/domain/lightcurve"
	"lightcurve/domain/table"
	"lightcurve/internal/errors"
	"lightcurve/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingRenderer writes the format name and remembers the charts it saw
type recordingRenderer struct {
	formats []ports.ImageFormat
	charts  []lightcurve.Chart
	failOn  ports.ImageFormat
}

func (r *recordingRenderer) Render(w io.Writer, format ports.ImageFormat, chart lightcurve.Chart) error {
	if format == r.failOn {
		return errors.InternalError("render failed")
	}
	r.formats = append(r.formats, format)
	r.charts = append(r.charts, chart)
	_, err := io.WriteString(w, string(format))
	return err
}

func lightcurveTable(t *testing.T) *table.Table {
	t.Helper()
	tbl := table.New([]string{"time", "flux", "e_flux", "band"})
	require.NoError(t, tbl.AppendRow([]string{"1.0", "5.0", "0.1", "V"}))
	require.NoError(t, tbl.AppendRow([]string{"2.0", "6.0", "0.2", "K"}))
	return tbl
}

func TestPlotWritesBothFormats(t *testing.T) {
	renderer := &recordingRenderer{}
	svc := NewPlotService(renderer, lightcurve.DefaultStyleRules(), quietLogger())
	base := filepath.Join(t.TempDir(), "Supernova Lightcurve")

	paths, err := svc.Plot(context.Background(), lightcurveTable(t), base)
	require.NoError(t, err)

	assert.Equal(t, []string{base + ".svg", base + ".png"}, paths)
	assert.Equal(t, []ports.ImageFormat{ports.FormatSVG, ports.FormatPNG}, renderer.formats)
	for _, p := range paths {
		body, err := os.ReadFile(p)
		require.NoError(t, err)
		assert.Equal(t, filepath.Ext(p)[1:], string(body))
	}

	chart := renderer.charts[0]
	require.Len(t, chart.Series, 2)
	assert.Equal(t, "K", chart.Series[0].Band)
	assert.Equal(t, 0.5, chart.Series[0].Style.Opacity)
	assert.Equal(t, "V", chart.Series[1].Band)
	assert.Equal(t, 1.0, chart.Series[1].Style.Opacity)
}

func TestPlotWithoutRulesKeepsDefaultStyle(t *testing.T) {
	svc := NewPlotService(&recordingRenderer{}, nil, quietLogger())

	chart, err := svc.Chart(lightcurveTable(t))
	require.NoError(t, err)
	for _, s := range chart.Series {
		assert.Equal(t, 0, s.Style.Layer)
		assert.Equal(t, 1.0, s.Style.Opacity)
	}
}

func TestPlotPropagatesErrors(t *testing.T) {
	dir := t.TempDir()

	bad := table.New([]string{"time", "flux", "e_flux", "band"})
	require.NoError(t, bad.AppendRow([]string{"1", "x", "0.1", "V"}))
	_, err := NewPlotService(&recordingRenderer{}, nil, quietLogger()).Plot(context.Background(), bad, filepath.Join(dir, "bad"))
	assert.True(t, errors.HasCode(err, errors.CodeNumericParse))
	_, statErr := os.Stat(filepath.Join(dir, "bad.svg"))
	assert.True(t, os.IsNotExist(statErr))

	renderer := &recordingRenderer{failOn: ports.FormatPNG}
	paths, err := NewPlotService(renderer, nil, quietLogger()).Plot(context.Background(), lightcurveTable(t), filepath.Join(dir, "half"))
	require.Error(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "half.svg")}, paths)
}
