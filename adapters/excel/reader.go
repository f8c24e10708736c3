package excel

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"lightcurve/adapters/csv"
	"lightcurve/domain/table"
	"lightcurve/internal"
	"lightcurve/internal/errors"
	"lightcurve/ports"

	"github.com/xuri/excelize/v2"
)

// Reader reads the first sheet of an .xlsx workbook into a table
type Reader struct {
	filePath string
	logger   *internal.Logger
}

// NewReader creates a workbook reader for filePath
func NewReader(filePath string) *Reader {
	return &Reader{filePath: filePath, logger: internal.DefaultLogger}
}

// WithLogger replaces the reader's logger
func (r *Reader) WithLogger(logger *internal.Logger) *Reader {
	r.logger = logger
	return r
}

// NewDataReader picks the workbook reader for .xlsx files and the CSV reader
// otherwise. Both log through logger.
func NewDataReader(filePath string, logger *internal.Logger) ports.TableReader {
	if strings.EqualFold(filepath.Ext(filePath), ".xlsx") {
		return NewReader(filePath).WithLogger(logger)
	}
	return csv.NewReader(filePath).WithLogger(logger)
}

// Path returns the workbook being read
func (r *Reader) Path() string {
	return r.filePath
}

// ReadTable reads the first sheet. The first row is the header; excelize
// drops trailing empty cells, so shorter rows are padded with empty strings.
func (r *Reader) ReadTable(ctx context.Context) (*table.Table, error) {
	startTime := time.Now()
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, errors.IOError(r.filePath, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return table.New(nil), nil
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, errors.IOError(r.filePath, err)
	}
	if len(rows) == 0 {
		return table.New(nil), nil
	}

	tbl := table.New(rows[0])
	for i, row := range rows[1:] {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if len(row) > tbl.Width() {
			return nil, errors.Wrapf(errors.ParseError(i+2, tbl.Width(), len(row)), "failed to parse %s", r.filePath)
		}
		padded := make([]string, tbl.Width())
		copy(padded, row)
		if err := tbl.AppendRow(padded); err != nil {
			return nil, err
		}
	}

	r.logger.Debug("[ExcelReader] sheet %q of %s read in %.2fms (%d columns, %d rows)",
		sheets[0], r.filePath, float64(time.Since(startTime).Nanoseconds())/1e6, tbl.NumColumns(), tbl.NumRows())
	return tbl, nil
}
