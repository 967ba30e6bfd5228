// Package testutil provides shared fixtures and assertions for tests across
// the colframe packages.
//
// It covers three recurring needs:
// - a checked allocator that fails the test when arrow memory leaks
// - the standard inventory table fixture
// - column and table assertions that compare values with nulls as nil
package testutil

import (
	"testing"

	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/paveg/colframe/internal/dataframe"
	"github.com/paveg/colframe/internal/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMemoryContext provides a checked allocator with leak detection.
type TestMemoryContext struct {
	Allocator *memory.CheckedAllocator
	tb        testing.TB
	released  bool
}

// Release asserts that every byte handed out by the allocator was returned.
// It is also registered with tb.Cleanup, so calling it is optional.
func (tmc *TestMemoryContext) Release() {
	if tmc.released {
		return
	}
	tmc.released = true
	tmc.Allocator.AssertSize(tmc.tb, 0)
}

// SetupMemoryTest creates a checked allocator for tests. Columns built from it
// must all be released before the test ends.
//
// Example usage:
//
//	mem := testutil.SetupMemoryTest(t)
//	defer mem.Release()
func SetupMemoryTest(tb testing.TB) *TestMemoryContext {
	tb.Helper()
	tmc := &TestMemoryContext{
		Allocator: memory.NewCheckedAllocator(memory.NewGoAllocator()),
		tb:        tb,
	}
	tb.Cleanup(tmc.Release)
	return tmc
}

// InventoryOption configures inventory table creation.
type InventoryOption func(*inventoryConfig)

type inventoryConfig struct {
	includeNulls bool
}

// WithNulls blanks one slot in every column of the inventory fixture:
// price of "T3B", sales of "F8D" and taxed of "C7X".
func WithNulls() InventoryOption {
	return func(cfg *inventoryConfig) {
		cfg.includeNulls = true
	}
}

// InventoryColumns builds the inventory fixture columns:
//
//   - SKU (text): ["X4E", "T3B", "F8D", "C7X"]
//   - price (float): [7.0, 3.5, 8.0, 6.0]
//   - sales (integer): [5, 3, 1, 10]
//   - taxed (boolean): [false, false, true, false]
//
// The caller owns the returned columns.
func InventoryColumns(tb testing.TB, mem memory.Allocator, opts ...InventoryOption) map[string]*series.Column {
	tb.Helper()

	cfg := &inventoryConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	data := map[string][]any{
		"SKU":   {"X4E", "T3B", "F8D", "C7X"},
		"price": {7.0, 3.5, 8.0, 6.0},
		"sales": {5, 3, 1, 10},
		"taxed": {false, false, true, false},
	}
	if cfg.includeNulls {
		data["price"][1] = nil
		data["sales"][2] = nil
		data["taxed"][3] = nil
	}

	columns := make(map[string]*series.Column, len(data))
	for name, values := range data {
		col, err := series.New(values, mem)
		require.NoError(tb, err, "building column %s", name)
		columns[name] = col
	}
	return columns
}

// CreateInventoryTable creates the inventory fixture as a Table.
//
// Example usage:
//
//	mem := testutil.SetupMemoryTest(t)
//	table := testutil.CreateInventoryTable(t, mem.Allocator)
//	defer table.Release()
func CreateInventoryTable(tb testing.TB, mem memory.Allocator, opts ...InventoryOption) *dataframe.Table {
	tb.Helper()

	columns := InventoryColumns(tb, mem, opts...)
	table, err := dataframe.New(columns)
	ReleaseColumns(columns)
	require.NoError(tb, err)
	return table
}

// ReleaseColumns releases every column in the map
func ReleaseColumns(columns map[string]*series.Column) {
	for _, col := range columns {
		if col != nil {
			col.Release()
		}
	}
}

// AssertColumnValues verifies the kind and ordered values of a column; nil
// stands for null.
func AssertColumnValues(tb testing.TB, col *series.Column, kind series.Kind, expected ...any) {
	tb.Helper()

	require.NotNil(tb, col, "column should not be nil")
	assert.Equal(tb, kind, col.Kind(), "column kind should match")
	assert.Equal(tb, expected, col.Values(), "column values should match")
}

// AssertTableEqual compares two tables column by column.
func AssertTableEqual(tb testing.TB, expected, actual *dataframe.Table) {
	tb.Helper()

	require.NotNil(tb, expected, "expected table should not be nil")
	require.NotNil(tb, actual, "actual table should not be nil")

	assert.Equal(tb, expected.Len(), actual.Len(), "table lengths should match")
	require.Equal(tb, expected.Columns(), actual.Columns(), "table columns should match")

	for _, name := range expected.Columns() {
		want, err := expected.Column(name)
		require.NoError(tb, err)
		got, err := actual.Column(name)
		require.NoError(tb, err)
		assert.True(tb, want.Equals(got), "column %s data should match: want %s, got %s", name, want, got)
	}
}
