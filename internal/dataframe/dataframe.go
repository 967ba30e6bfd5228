// Package dataframe provides Table, a named collection of equal-length columns
package dataframe

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/paveg/colframe/internal/config"
	"github.com/paveg/colframe/internal/errors"
	"github.com/paveg/colframe/internal/logging"
	"github.com/paveg/colframe/internal/monitoring"
	"github.com/paveg/colframe/internal/series"
	"github.com/paveg/colframe/internal/validation"
)

const opNew = "NewTable"

// Table represents a set of named columns sharing one row count
type Table struct {
	columns map[string]*series.Column
	order   []string // sorted column names
	rows    int
}

// New creates a Table from named columns. Every key must be non-empty, every
// column non-nil, and all columns the same length. The table retains each
// column; callers may release their own references afterwards.
func New(columns map[string]*series.Column) (*Table, error) {
	if err := validation.ValidateNotEmpty(len(columns), opNew); err != nil {
		return nil, err
	}

	names := slices.Sorted(maps.Keys(columns))
	lengths := make([]int, len(names))
	for i, name := range names {
		if err := validation.ValidateKey(name, opNew); err != nil {
			return nil, err
		}
		col := columns[name]
		if col == nil {
			return nil, errors.NewTypeMismatchError(opNew, name, "column", "nil")
		}
		lengths[i] = col.Len()
	}

	for _, n := range lengths[1:] {
		if n != lengths[0] {
			return nil, errors.NewColumnLengthsError(opNew, names, lengths)
		}
	}

	owned := make(map[string]*series.Column, len(names))
	for _, name := range names {
		col := columns[name]
		col.Retain()
		owned[name] = col
	}

	logging.Logger().Debug("table created", "rows", lengths[0], "columns", len(names))

	return &Table{
		columns: owned,
		order:   names,
		rows:    lengths[0],
	}, nil
}

// Columns returns the column names in sorted order
func (t *Table) Columns() []string {
	return slices.Clone(t.order)
}

// Len returns the number of rows
func (t *Table) Len() int {
	return t.rows
}

// Width returns the number of columns
func (t *Table) Width() int {
	return len(t.order)
}

// HasColumn checks if a column exists
func (t *Table) HasColumn(name string) bool {
	_, exists := t.columns[name]
	return exists
}

// Column returns the named column. The column is shared with the table; call
// Retain on it to keep it past the table's Release.
func (t *Table) Column(name string) (*series.Column, error) {
	if err := validation.ValidateColumns(t, "Column", name); err != nil {
		return nil, err
	}
	return t.columns[name], nil
}

// Filter returns a new table with the rows whose mask entry is true. The same
// positions are selected in every column.
func (t *Table) Filter(mask *series.Column) (*Table, error) {
	const op = "Filter"
	if mask == nil {
		return nil, errors.NewTypeMismatchError(op, "", series.KindBoolean.String(), "nil column")
	}
	if err := validation.ValidateLength(t.rows, mask.Len(), op, ""); err != nil {
		return nil, err
	}

	var out *Table
	err := monitoring.Default().RecordOperation("table.filter", t.rows, func() (int, error) {
		indices, err := t.columns[t.order[0]].Selection(mask)
		if err != nil {
			return 0, err
		}

		filtered := make(map[string]*series.Column, len(t.order))
		for _, name := range t.order {
			filtered[name] = t.columns[name].Take(indices)
		}
		out = &Table{
			columns: filtered,
			order:   slices.Clone(t.order),
			rows:    len(indices),
		}
		return out.rows, nil
	})
	if err != nil {
		return nil, err
	}

	logging.Logger().Debug("table filtered", "rows_in", t.rows, "rows_out", out.rows)
	return out, nil
}

// String returns a string representation of the Table
func (t *Table) String() string {
	limit := config.GetGlobalConfig().MaxDisplayValues

	parts := []string{fmt.Sprintf("Table[%dx%d]", t.rows, t.Width())}
	for _, name := range t.order {
		col := t.columns[name]
		parts = append(parts, fmt.Sprintf("  %s (%s): %s", name, col.Kind(), col.FormatValues(limit)))
	}
	return strings.Join(parts, "\n")
}

// Release releases every column held by the table
func (t *Table) Release() {
	for _, col := range t.columns {
		col.Release()
	}
}
