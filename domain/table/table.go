// Package table holds the column-oriented container produced by the readers.
package table

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"lightcurve/internal/errors"
)

// Table maps column names to ordered sequences of raw string values.
// All columns have the same length. Column order follows the first
// occurrence of each name in the header; when a name repeats, the values
// of its last occurrence are kept.
type Table struct {
	headers []string
	// source[i] is the field index feeding headers[i]
	source  []int
	width   int
	columns map[string][]string
	rows    int
}

// New creates an empty table for the given header fields
func New(header []string) *Table {
	t := &Table{
		width:   len(header),
		columns: make(map[string][]string, len(header)),
	}
	position := make(map[string]int, len(header))
	for i, name := range header {
		if pos, seen := position[name]; seen {
			t.source[pos] = i
			continue
		}
		position[name] = len(t.headers)
		t.headers = append(t.headers, name)
		t.source = append(t.source, i)
		t.columns[name] = nil
	}
	return t
}

// FromColumns builds a table from named columns in the given order.
// Every column must have the same length.
func FromColumns(headers []string, values map[string][]string) (*Table, error) {
	t := New(headers)
	if len(t.headers) != len(headers) {
		return nil, errors.InvalidInput("duplicate column names")
	}
	rows := -1
	for _, name := range headers {
		col, ok := values[name]
		if !ok {
			return nil, errors.InvalidInput(fmt.Sprintf("no values for column %q", name))
		}
		if rows >= 0 && len(col) != rows {
			return nil, errors.InvalidInput(fmt.Sprintf("column %q has %d values, expected %d", name, len(col), rows))
		}
		rows = len(col)
		t.columns[name] = append([]string(nil), col...)
	}
	if rows > 0 {
		t.rows = rows
	}
	return t, nil
}

// AppendRow adds one data row. fields must match the header field count.
func (t *Table) AppendRow(fields []string) error {
	if len(fields) != t.width {
		return errors.New(errors.CodeParse, fmt.Sprintf("expected %d fields, got %d", t.width, len(fields)))
	}
	for i, name := range t.headers {
		t.columns[name] = append(t.columns[name], fields[t.source[i]])
	}
	t.rows++
	return nil
}

// Headers returns the unique column names in header order
func (t *Table) Headers() []string {
	return append([]string(nil), t.headers...)
}

// Width returns the number of fields each input row must carry
func (t *Table) Width() int {
	return t.width
}

// NumColumns returns the number of distinct columns
func (t *Table) NumColumns() int {
	return len(t.headers)
}

// NumRows returns the number of data rows
func (t *Table) NumRows() int {
	return t.rows
}

// HasColumn reports whether the table has a column called name
func (t *Table) HasColumn(name string) bool {
	_, ok := t.columns[name]
	return ok
}

// Column returns the raw values of a column. The slice must not be modified.
func (t *Table) Column(name string) ([]string, bool) {
	col, ok := t.columns[name]
	return col, ok
}

// Row materializes row i as a name to value map
func (t *Table) Row(i int) (map[string]string, error) {
	if i < 0 || i >= t.rows {
		return nil, errors.InvalidInput(fmt.Sprintf("row %d out of range [0, %d)", i, t.rows))
	}
	row := make(map[string]string, len(t.headers))
	for _, name := range t.headers {
		row[name] = t.columns[name][i]
	}
	return row, nil
}

// FloatColumn parses every value of a column as float64.
// Surrounding whitespace is ignored.
func (t *Table) FloatColumn(name string) ([]float64, error) {
	col, ok := t.columns[name]
	if !ok {
		return nil, errors.InvalidInput(fmt.Sprintf("missing column %q", name))
	}
	out := make([]float64, len(col))
	for i, raw := range col {
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, errors.NumericParse(name, i, raw, err)
		}
		out[i] = v
	}
	return out, nil
}

// Partition groups row indices by the distinct values of a column.
// Indices within a group keep table order; the groups are disjoint and
// together cover every row.
func (t *Table) Partition(name string) (map[string][]int, error) {
	col, ok := t.columns[name]
	if !ok {
		return nil, errors.InvalidInput(fmt.Sprintf("missing column %q", name))
	}
	groups := make(map[string][]int)
	for i, v := range col {
		groups[v] = append(groups[v], i)
	}
	return groups, nil
}

// SortedKeys returns the keys of a partition in lexicographic order
func SortedKeys(groups map[string][]int) []string {
	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
