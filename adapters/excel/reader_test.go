package excel

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"lightcurve/adapters/csv"
	"lightcurve/internal"
	"lightcurve/internal/errors"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T, rows [][]interface{}) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		r := row
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &r))
	}

	path := filepath.Join(t.TempDir(), "data.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestReadTable(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"time", "flux", "e_flux", "band"},
		{"1.0", "5.0", "0.1", "V"},
		{"2.0", "6.0", "0.2", "K"},
	})

	tbl, err := NewReader(path).ReadTable(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"time", "flux", "e_flux", "band"}, tbl.Headers())
	assert.Equal(t, 2, tbl.NumRows())
	band, _ := tbl.Column("band")
	assert.Equal(t, []string{"V", "K"}, band)
}

func TestReadTablePadsTrailingEmptyCells(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"a", "b", "c"},
		{"1"},
	})

	tbl, err := NewReader(path).ReadTable(context.Background())
	require.NoError(t, err)

	c, _ := tbl.Column("c")
	assert.Equal(t, []string{""}, c)
}

func TestReadTableRejectsLongRows(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"a"},
		{"1", "2"},
	})

	_, err := NewReader(path).ReadTable(context.Background())
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.CodeParse))
}

func TestReadTableMissingWorkbook(t *testing.T) {
	_, err := NewReader(filepath.Join(t.TempDir(), "none.xlsx")).ReadTable(context.Background())
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.CodeIO))
}

func TestNewDataReaderSelectsByExtension(t *testing.T) {
	logger := internal.NewLoggerWithWriter(internal.LogLevelError, io.Discard)

	_, isExcel := NewDataReader("data.XLSX", logger).(*Reader)
	assert.True(t, isExcel)

	_, isCSV := NewDataReader("data.csv", logger).(*csv.Reader)
	assert.True(t, isCSV)
	assert.Equal(t, "data.csv", NewDataReader("data.csv", logger).Path())
}

func TestNewDataReaderLogsThroughGivenLogger(t *testing.T) {
	color.NoColor = true
	workbook := writeWorkbook(t, [][]interface{}{{"a"}, {"1"}})
	sheet := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(sheet, []byte("a\n1\n"), 0644))

	var buf bytes.Buffer
	logger := internal.NewLoggerWithWriter(internal.LogLevelDebug, &buf)

	for _, path := range []string{workbook, sheet} {
		_, err := NewDataReader(path, logger).ReadTable(context.Background())
		require.NoError(t, err)
	}
	assert.Contains(t, buf.String(), "[DEBUG] [ExcelReader]")
	assert.Contains(t, buf.String(), "[DEBUG] [CSVReader]")
}
