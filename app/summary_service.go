package app

import (
	"context"
	"fmt"
	"io"
	"strings"
	"unicode"

	"lightcurve/domain/table"
	"lightcurve/internal"
	"lightcurve/internal/errors"
)

// SummaryService writes the two-line header/row-count report
type SummaryService struct {
	logger *internal.Logger
}

// NewSummaryService creates a summary service
func NewSummaryService(logger *internal.Logger) *SummaryService {
	return &SummaryService{logger: logger}
}

// Format renders the report. The row count is the length of the first column.
func (s *SummaryService) Format(tbl *table.Table) (string, error) {
	headers := tbl.Headers()
	if len(headers) == 0 {
		return "", errors.EmptyTable()
	}
	first, _ := tbl.Column(headers[0])

	lines := []string{
		fmt.Sprintf("Data has Headers: %s", FormatHeaderList(headers)),
		fmt.Sprintf("Data has %d elements", len(first)),
	}
	return strings.Join(lines, "\n"), nil
}

// Write formats the report and overwrites path with it
func (s *SummaryService) Write(ctx context.Context, tbl *table.Table, path string) error {
	report, err := s.Format(tbl)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := writeFile(path, func(w io.Writer) error {
		if _, err := io.WriteString(w, report); err != nil {
			return errors.IOError(path, err)
		}
		return nil
	}); err != nil {
		return err
	}
	s.logger.Info("Summary written to %s", path)
	return nil
}

// FormatHeaderList renders names as a bracketed list of quoted literals,
// e.g. ['time', 'flux'].
func FormatHeaderList(names []string) string {
	quoted := make([]string, len(names))
	for i, name := range names {
		quoted[i] = quoteLiteral(name)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

// quoteLiteral single-quotes s, switching to double quotes when s holds a
// single quote and no double quote.
func quoteLiteral(s string) string {
	quote := '\''
	if strings.ContainsRune(s, '\'') && !strings.ContainsRune(s, '"') {
		quote = '"'
	}

	var b strings.Builder
	b.WriteRune(quote)
	for _, r := range s {
		switch {
		case r == quote || r == '\\':
			b.WriteRune('\\')
			b.WriteRune(r)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case r == '\t':
			b.WriteString(`\t`)
		case unicode.IsPrint(r):
			b.WriteRune(r)
		case r < 0x100:
			fmt.Fprintf(&b, `\x%02x`, r)
		case r < 0x10000:
			fmt.Fprintf(&b, `\u%04x`, r)
		default:
			fmt.Fprintf(&b, `\U%08x`, r)
		}
	}
	b.WriteRune(quote)
	return b.String()
}
