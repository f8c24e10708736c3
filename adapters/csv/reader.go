// Package csv reads headered, comma-delimited text files into tables.
//
// The format is deliberately naive: every line is split on ',' with no
// quoting or escaping, and every data line must carry exactly as many
// fields as the header line.
package csv

import (
	"bufio"
	"context"
	"io"
	"os"
	"strings"
	"time"

	"lightcurve/domain/table"
	"lightcurve/internal"
	"lightcurve/internal/errors"
)

const bom = "\uFEFF"

// Reader reads a CSV file into a table
type Reader struct {
	filePath string
	logger   *internal.Logger
}

// NewReader creates a reader for the file at filePath
func NewReader(filePath string) *Reader {
	return &Reader{filePath: filePath, logger: internal.DefaultLogger}
}

// WithLogger replaces the reader's logger
func (r *Reader) WithLogger(logger *internal.Logger) *Reader {
	r.logger = logger
	return r
}

// Path returns the file being read
func (r *Reader) Path() string {
	return r.filePath
}

// ReadTable reads the whole file. An empty file yields a table with no columns.
func (r *Reader) ReadTable(ctx context.Context) (*table.Table, error) {
	start := time.Now()
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, errors.IOError(r.filePath, err)
	}
	defer file.Close()

	tbl, err := Parse(ctx, file)
	if err != nil {
		if errors.GetCode(err) == errors.CodeIO {
			return nil, errors.IOError(r.filePath, err)
		}
		return nil, errors.Wrapf(err, "failed to parse %s", r.filePath)
	}

	r.logger.Debug("[CSVReader] %s read in %.2fms (%d columns, %d rows)",
		r.filePath, float64(time.Since(start).Nanoseconds())/1e6, tbl.NumColumns(), tbl.NumRows())
	return tbl, nil
}

// Parse reads comma-separated lines from src. Line numbers in errors are 1-based.
func Parse(ctx context.Context, src io.Reader) (*table.Table, error) {
	br := bufio.NewReader(src)
	var tbl *table.Table

	for lineNo := 1; ; lineNo++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		line, readErr := br.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return nil, errors.New(errors.CodeIO, readErr.Error())
		}
		if line == "" && readErr == io.EOF {
			break
		}

		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")
		fields := strings.Split(line, ",")

		if tbl == nil {
			fields[0] = strings.TrimPrefix(fields[0], bom)
			tbl = table.New(fields)
		} else {
			if len(fields) != tbl.Width() {
				return nil, errors.ParseError(lineNo, tbl.Width(), len(fields))
			}
			if err := tbl.AppendRow(fields); err != nil {
				return nil, err
			}
		}

		if readErr == io.EOF {
			break
		}
	}

	if tbl == nil {
		tbl = table.New(nil)
	}
	return tbl, nil
}
