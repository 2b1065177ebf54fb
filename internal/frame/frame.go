// Package frame provides the in-memory table a CSV file is loaded into
// before it is written to the database.
package frame

import (
	"fmt"

	"github.com/samber/lo"
)

// Frame is an ordered set of named columns and rows. Cells are nil (NULL),
// string, int64 or float64.
// Thread-Safety: NOT safe for concurrent mutation.
type Frame struct {
	columns []string
	index   map[string]int
	rows    [][]any
}

// New creates an empty frame with the given column names.
// Column names must be unique.
func New(columns []string) (*Frame, error) {
	index := make(map[string]int, len(columns))
	for i, c := range columns {
		if _, dup := index[c]; dup {
			return nil, fmt.Errorf("duplicate column %q", c)
		}
		index[c] = i
	}
	return &Frame{
		columns: append([]string(nil), columns...),
		index:   index,
	}, nil
}

// Append adds a row. The row must have exactly one cell per column.
func (f *Frame) Append(row []any) error {
	if len(row) != len(f.columns) {
		return fmt.Errorf("row has %d cells, frame has %d columns", len(row), len(f.columns))
	}
	f.rows = append(f.rows, row)
	return nil
}

// Columns returns the column names in header order.
func (f *Frame) Columns() []string {
	return append([]string(nil), f.columns...)
}

// Len returns the number of rows.
func (f *Frame) Len() int { return len(f.rows) }

// Has reports whether the frame has the named column.
func (f *Frame) Has(column string) bool {
	_, ok := f.index[column]
	return ok
}

// Rows returns the rows in insertion order. The slice is shared with the frame.
func (f *Frame) Rows() [][]any { return f.rows }

// Column returns the cells of one column, or nil if the column is absent.
func (f *Frame) Column(column string) []any {
	i, ok := f.index[column]
	if !ok {
		return nil
	}
	return lo.Map(f.rows, func(row []any, _ int) any { return row[i] })
}

// Project returns the subset of wanted that the frame has, in wanted order,
// together with rows restricted to those columns. Frame columns not in
// wanted are dropped.
func (f *Frame) Project(wanted []string) ([]string, [][]any) {
	columns := lo.Filter(wanted, func(c string, _ int) bool { return f.Has(c) })
	positions := lo.Map(columns, func(c string, _ int) int { return f.index[c] })

	rows := make([][]any, len(f.rows))
	for r, row := range f.rows {
		out := make([]any, len(positions))
		for i, p := range positions {
			out[i] = row[p]
		}
		rows[r] = out
	}
	return columns, rows
}
