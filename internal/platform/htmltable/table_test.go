package htmltable

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFirst(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		doc      string
		wantCols []string
		wantRows [][]string
	}{
		{
			name: "plain table with th header row",
			doc: `<html><body><table>
				<tr><th>a</th><th>b</th></tr>
				<tr><td> 1 </td><td>2</td></tr>
			</table></body></html>`,
			wantCols: []string{"0", "1"},
			wantRows: [][]string{{"a", "b"}, {"1", "2"}},
		},
		{
			name: "only the first table is returned",
			doc: `<table><tr><td>first</td></tr></table>
				<table><tr><td>second</td></tr></table>`,
			wantCols: []string{"0"},
			wantRows: [][]string{{"first"}},
		},
		{
			name: "colspan repeats the cell text",
			doc: `<table>
				<tr><td>h1</td><td>h2</td><td>h3</td></tr>
				<tr><td colspan="3">banner</td></tr>
			</table>`,
			wantCols: []string{"0", "1", "2"},
			wantRows: [][]string{{"h1", "h2", "h3"}, {"banner", "banner", "banner"}},
		},
		{
			name: "rowspan carries the cell into following rows",
			doc: `<table>
				<tr><td rowspan="2">x</td><td>1</td></tr>
				<tr><td>2</td></tr>
			</table>`,
			wantCols: []string{"0", "1"},
			wantRows: [][]string{{"x", "1"}, {"x", "2"}},
		},
		{
			name: "short rows are padded",
			doc: `<table>
				<tr><td>a</td><td>b</td></tr>
				<tr><td>c</td></tr>
			</table>`,
			wantCols: []string{"0", "1"},
			wantRows: [][]string{{"a", "b"}, {"c", ""}},
		},
		{
			name: "nested table rows are not merged into the outer table",
			doc: `<table>
				<tr><td>outer<table><tr><td>inner</td></tr></table></td></tr>
			</table>`,
			wantCols: []string{"0"},
			wantRows: [][]string{{"outerinner"}},
		},
		{
			name: "full-width space inside a cell is preserved",
			doc: "<table><tr><td>1101　台泥</td></tr></table>",
			wantCols: []string{"0"},
			wantRows: [][]string{{"1101　台泥"}},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tbl, err := ParseFirst(strings.NewReader(tt.doc))

			require.NoError(t, err)
			assert.Equal(t, tt.wantCols, tbl.Columns)
			assert.Equal(t, tt.wantRows, tbl.Rows)
		})
	}
}

func TestParseFirst_NoTable(t *testing.T) {
	t.Parallel()

	_, err := ParseFirst(strings.NewReader("<html><body><p>maintenance</p></body></html>"))

	assert.ErrorIs(t, err, ErrNoTable)
}

func sampleTable() *Table {
	return &Table{
		Columns: []string{"code", "name", "kind"},
		Rows: [][]string{
			{"1101", "TCC", "E"},
			{"0050", "ETF50", "F"},
			{"2330", "TSMC", "E"},
		},
	}
}

func TestTable_Filter(t *testing.T) {
	t.Parallel()

	tbl := sampleTable()
	out := tbl.Filter(func(row []string) bool { return tbl.Value(row, "kind") == "E" })

	assert.Equal(t, 2, out.Len())
	assert.Equal(t, []string{"1101", "TCC", "E"}, out.Rows[0])
	assert.Equal(t, 3, tbl.Len(), "source table must be unchanged")
}

func TestTable_Map(t *testing.T) {
	t.Parallel()

	tbl := sampleTable()
	out, err := tbl.Map(func(row []string) []string {
		row[1] = strings.ToLower(row[1])
		return row
	})

	require.NoError(t, err)
	assert.Equal(t, "tcc", out.Rows[0][1])
	assert.Equal(t, "TCC", tbl.Rows[0][1], "transform must not mutate the source rows")
}

func TestTable_Map_WidthMismatch(t *testing.T) {
	t.Parallel()

	_, err := sampleTable().Map(func(row []string) []string { return row[:1] })

	assert.Error(t, err)
}

func TestTable_DropColumns(t *testing.T) {
	t.Parallel()

	out, err := sampleTable().DropColumns("kind", "code")

	require.NoError(t, err)
	assert.Equal(t, []string{"name"}, out.Columns)
	assert.Equal(t, [][]string{{"TCC"}, {"ETF50"}, {"TSMC"}}, out.Rows)

	_, err = sampleTable().DropColumns("missing")
	assert.ErrorIs(t, err, ErrMissingColumn)
}

func TestTable_RenameColumns(t *testing.T) {
	t.Parallel()

	out, err := sampleTable().RenameColumns(map[string]string{"code": "symbol"})

	require.NoError(t, err)
	assert.Equal(t, []string{"symbol", "name", "kind"}, out.Columns)

	_, err = sampleTable().RenameColumns(map[string]string{"missing": "x"})
	assert.ErrorIs(t, err, ErrMissingColumn)
}

func TestTable_AppendColumn(t *testing.T) {
	t.Parallel()

	tbl := sampleTable()
	out := tbl.AppendColumn("tagged", func(row []string) string { return row[0] + ".TW" })

	assert.Equal(t, []string{"code", "name", "kind", "tagged"}, out.Columns)
	assert.Equal(t, "2330.TW", out.Rows[2][3])
	assert.Len(t, tbl.Columns, 3)
}

func TestTable_Value(t *testing.T) {
	t.Parallel()

	tbl := sampleTable()

	assert.Equal(t, "TSMC", tbl.Value(tbl.Rows[2], "name"))
	assert.Equal(t, "", tbl.Value(tbl.Rows[2], "missing"))
}
