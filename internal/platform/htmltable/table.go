package htmltable

import (
	"errors"
	"fmt"
	"slices"
)

// ErrMissingColumn is returned when an operation names a column the table does not have.
var ErrMissingColumn = errors.New("htmltable: missing column")

// Table is an untyped, row-major table of strings.
// Every row has len(Columns) cells.
type Table struct {
	Columns []string
	Rows    [][]string
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// ColumnIndex returns the position of the column named name.
func (t *Table) ColumnIndex(name string) (int, error) {
	i := slices.Index(t.Columns, name)
	if i < 0 {
		return -1, fmt.Errorf("%w: %q", ErrMissingColumn, name)
	}
	return i, nil
}

// Value returns the cell of row under column name, or "" if there is no such column.
func (t *Table) Value(row []string, name string) string {
	i := slices.Index(t.Columns, name)
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}

// Filter returns a new table holding the rows for which keep returns true.
func (t *Table) Filter(keep func(row []string) bool) *Table {
	out := &Table{Columns: slices.Clone(t.Columns)}
	for _, row := range t.Rows {
		if keep(row) {
			out.Rows = append(out.Rows, slices.Clone(row))
		}
	}
	return out
}

// Map applies fn to a copy of every row and returns the results as a new table.
// fn must return a row of the same width.
func (t *Table) Map(fn func(row []string) []string) (*Table, error) {
	out := &Table{Columns: slices.Clone(t.Columns), Rows: make([][]string, 0, len(t.Rows))}
	for i, row := range t.Rows {
		next := fn(slices.Clone(row))
		if len(next) != len(t.Columns) {
			return nil, fmt.Errorf("htmltable: row %d has %d cells after transform, want %d", i, len(next), len(t.Columns))
		}
		out.Rows = append(out.Rows, next)
	}
	return out, nil
}

// DropColumns returns a new table without the named columns.
// Every name must exist.
func (t *Table) DropColumns(names ...string) (*Table, error) {
	drop := make(map[int]bool, len(names))
	for _, name := range names {
		i, err := t.ColumnIndex(name)
		if err != nil {
			return nil, err
		}
		drop[i] = true
	}

	keep := func(cells []string) []string {
		out := make([]string, 0, len(cells)-len(drop))
		for i, c := range cells {
			if !drop[i] {
				out = append(out, c)
			}
		}
		return out
	}

	out := &Table{Columns: keep(t.Columns), Rows: make([][]string, 0, len(t.Rows))}
	for _, row := range t.Rows {
		out.Rows = append(out.Rows, keep(row))
	}
	return out, nil
}

// RenameColumns returns a new table with columns renamed according to names (old -> new).
// Every old name must exist.
func (t *Table) RenameColumns(names map[string]string) (*Table, error) {
	cols := slices.Clone(t.Columns)
	for from, to := range names {
		i, err := t.ColumnIndex(from)
		if err != nil {
			return nil, err
		}
		cols[i] = to
	}
	return &Table{Columns: cols, Rows: t.Rows}, nil
}

// AppendColumn returns a new table with a column derived from each row by fn.
func (t *Table) AppendColumn(name string, fn func(row []string) string) *Table {
	out := &Table{Columns: append(slices.Clone(t.Columns), name), Rows: make([][]string, 0, len(t.Rows))}
	for _, row := range t.Rows {
		out.Rows = append(out.Rows, append(slices.Clone(row), fn(row)))
	}
	return out
}
