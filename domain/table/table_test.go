package table

import (
	"testing"

	"lightcurve/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTable(t *testing.T) *Table {
	t.Helper()
	tbl := New([]string{"time", "flux", "e_flux", "band"})
	rows := [][]string{
		{"1.0", "5.0", "0.1", "V"},
		{"2.0", "6.0", "0.2", "K"},
		{"3.0", "7.0", "0.3", "V"},
		{"4.0", "4.5", "0.2", "B"},
	}
	for _, r := range rows {
		require.NoError(t, tbl.AppendRow(r))
	}
	return tbl
}

func TestUniformColumnLength(t *testing.T) {
	tbl := sampleTable(t)

	first, ok := tbl.Column(tbl.Headers()[0])
	require.True(t, ok)
	for _, name := range tbl.Headers() {
		col, ok := tbl.Column(name)
		require.True(t, ok)
		assert.Len(t, col, len(first), "column %s", name)
	}
	assert.Equal(t, 4, tbl.NumRows())
	assert.Equal(t, 4, tbl.NumColumns())
}

func TestAppendRowRejectsFieldCountMismatch(t *testing.T) {
	tbl := New([]string{"a", "b", "c"})

	err := tbl.AppendRow([]string{"1", "2"})
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.CodeParse))

	err = tbl.AppendRow([]string{"1", "2", "3", "4"})
	require.Error(t, err)
	assert.Equal(t, 0, tbl.NumRows())
}

func TestDuplicateHeaderLastOccurrenceWins(t *testing.T) {
	tbl := New([]string{"a", "b", "a"})
	require.NoError(t, tbl.AppendRow([]string{"first", "x", "last"}))

	assert.Equal(t, []string{"a", "b"}, tbl.Headers())
	assert.Equal(t, 3, tbl.Width())
	col, _ := tbl.Column("a")
	assert.Equal(t, []string{"last"}, col)
}

func TestRow(t *testing.T) {
	tbl := sampleTable(t)

	row, err := tbl.Row(1)
	require.NoError(t, err)
	assert.Equal(t, "K", row["band"])
	assert.Equal(t, "2.0", row["time"])

	_, err = tbl.Row(4)
	assert.Error(t, err)
}

func TestFloatColumn(t *testing.T) {
	tbl := New([]string{"x"})
	for _, v := range []string{"1", " 2.5 ", "-3e2"} {
		require.NoError(t, tbl.AppendRow([]string{v}))
	}

	vals, err := tbl.FloatColumn("x")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2.5, -300}, vals)

	require.NoError(t, tbl.AppendRow([]string{"n/a"}))
	_, err = tbl.FloatColumn("x")
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.CodeNumericParse))
	assert.Contains(t, err.Error(), `row 3`)

	_, err = tbl.FloatColumn("missing")
	assert.True(t, errors.HasCode(err, errors.CodeInvalidInput))
}

func TestPartitionCoversAllRowsDisjointly(t *testing.T) {
	tbl := sampleTable(t)

	groups, err := tbl.Partition("band")
	require.NoError(t, err)

	seen := make(map[int]string)
	for band, idx := range groups {
		for _, i := range idx {
			prev, dup := seen[i]
			assert.False(t, dup, "row %d in both %s and %s", i, prev, band)
			seen[i] = band
		}
	}
	assert.Len(t, seen, tbl.NumRows())
	assert.Equal(t, []int{0, 2}, groups["V"])
	assert.Equal(t, []string{"B", "K", "V"}, SortedKeys(groups))
}

func TestFromColumns(t *testing.T) {
	tbl, err := FromColumns([]string{"a", "b"}, map[string][]string{
		"a": {"1", "2", "3"},
		"b": {"x", "y", "z"},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, tbl.NumRows())

	_, err = FromColumns([]string{"a", "b"}, map[string][]string{
		"a": {"1"},
		"b": {"x", "y"},
	})
	assert.Error(t, err)

	_, err = FromColumns([]string{"a"}, map[string][]string{})
	assert.Error(t, err)
}
