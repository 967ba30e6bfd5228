package dataframe_test

import (
	"testing"

	"github.com/paveg/colframe/internal/config"
	"github.com/paveg/colframe/internal/dataframe"
	"github.com/paveg/colframe/internal/errors"
	"github.com/paveg/colframe/internal/series"
	"github.com/paveg/colframe/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustColumn(t *testing.T, values ...any) *series.Column {
	t.Helper()
	col, err := series.New(values, nil)
	require.NoError(t, err)
	return col
}

func TestNew(t *testing.T) {
	mem := testutil.SetupMemoryTest(t)

	columns := testutil.InventoryColumns(t, mem.Allocator)
	table, err := dataframe.New(columns)
	require.NoError(t, err)

	// the table keeps its own references
	testutil.ReleaseColumns(columns)
	defer table.Release()

	assert.Equal(t, 4, table.Len())
	assert.Equal(t, 4, table.Width())
	assert.Equal(t, []string{"SKU", "price", "sales", "taxed"}, table.Columns())
	assert.True(t, table.HasColumn("price"))
	assert.False(t, table.HasColumn("Price"))

	price, err := table.Column("price")
	require.NoError(t, err)
	testutil.AssertColumnValues(t, price, series.KindFloat, 7.0, 3.5, 8.0, 6.0)
}

func TestNew_Errors(t *testing.T) {
	a := mustColumn(t, 1, 2)
	defer a.Release()
	b := mustColumn(t, 1, 2, 3)
	defer b.Release()

	tests := []struct {
		name     string
		columns  map[string]*series.Column
		sentinel error
		message  string
	}{
		{
			name:     "no columns",
			columns:  map[string]*series.Column{},
			sentinel: errors.ErrEmptyInput,
		},
		{
			name:     "nil map",
			columns:  nil,
			sentinel: errors.ErrEmptyInput,
		},
		{
			name:     "empty name",
			columns:  map[string]*series.Column{"": a},
			sentinel: errors.ErrInvalidKey,
		},
		{
			name:     "nil column",
			columns:  map[string]*series.Column{"a": a, "b": nil},
			sentinel: errors.ErrTypeMismatch,
		},
		{
			name:     "unequal lengths",
			columns:  map[string]*series.Column{"a": a, "b": b},
			sentinel: errors.ErrLengthMismatch,
			message:  "a=2, b=3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := dataframe.New(tt.columns)
			assert.Nil(t, table)
			require.ErrorIs(t, err, tt.sentinel)
			if tt.message != "" {
				assert.Contains(t, err.Error(), tt.message)
			}
		})
	}
}

func TestColumn_NotFound(t *testing.T) {
	mem := testutil.SetupMemoryTest(t)
	table := testutil.CreateInventoryTable(t, mem.Allocator)
	defer table.Release()

	_, err := table.Column("prise")
	require.ErrorIs(t, err, errors.ErrKeyNotFound)
	assert.Contains(t, err.Error(), "did you mean 'price'?")

	_, err = table.Column("warehouse")
	require.ErrorIs(t, err, errors.ErrKeyNotFound)
	assert.Contains(t, err.Error(), "available columns")
}

func TestFilter_InventoryScenario(t *testing.T) {
	mem := testutil.SetupMemoryTest(t)
	table := testutil.CreateInventoryTable(t, mem.Allocator)
	defer table.Release()

	price, err := table.Column("price")
	require.NoError(t, err)
	sales, err := table.Column("sales")
	require.NoError(t, err)
	taxed, err := table.Column("taxed")
	require.NoError(t, err)

	shipped, err := price.Add(5.0)
	require.NoError(t, err)
	defer shipped.Release()
	expensive, err := shipped.Gt(10.0)
	require.NoError(t, err)
	defer expensive.Release()
	popular, err := sales.Gt(3)
	require.NoError(t, err)
	defer popular.Release()
	untaxed, err := taxed.Not()
	require.NoError(t, err)
	defer untaxed.Release()

	both, err := expensive.And(popular)
	require.NoError(t, err)
	defer both.Release()
	mask, err := both.And(untaxed)
	require.NoError(t, err)
	defer mask.Release()

	sku, err := table.Column("SKU")
	require.NoError(t, err)
	picked, err := sku.Filter(mask)
	require.NoError(t, err)
	defer picked.Release()
	testutil.AssertColumnValues(t, picked, series.KindText, "X4E", "C7X")

	filtered, err := table.Filter(mask)
	require.NoError(t, err)
	defer filtered.Release()

	assert.Equal(t, 2, filtered.Len())
	assert.Equal(t, table.Columns(), filtered.Columns())
	for name, expected := range map[string][]any{
		"SKU":   {"X4E", "C7X"},
		"price": {7.0, 6.0},
		"sales": {int64(5), int64(10)},
		"taxed": {false, false},
	} {
		col, err := filtered.Column(name)
		require.NoError(t, err)
		assert.Equal(t, expected, col.Values(), "column %s", name)
	}
}

func TestFilter_NullsInMaskAndData(t *testing.T) {
	mem := testutil.SetupMemoryTest(t)
	table := testutil.CreateInventoryTable(t, mem.Allocator, testutil.WithNulls())
	defer table.Release()

	sales, err := table.Column("sales")
	require.NoError(t, err)
	mask, err := sales.Ge(3)
	require.NoError(t, err)
	defer mask.Release()

	filtered, err := table.Filter(mask)
	require.NoError(t, err)
	defer filtered.Release()

	sku, err := filtered.Column("SKU")
	require.NoError(t, err)
	testutil.AssertColumnValues(t, sku, series.KindText, "X4E", "T3B", "C7X")

	price, err := filtered.Column("price")
	require.NoError(t, err)
	testutil.AssertColumnValues(t, price, series.KindFloat, 7.0, nil, 6.0)
}

func TestFilter_AllFalseYieldsEmptyTable(t *testing.T) {
	mem := testutil.SetupMemoryTest(t)
	table := testutil.CreateInventoryTable(t, mem.Allocator)
	defer table.Release()

	sales, err := table.Column("sales")
	require.NoError(t, err)
	mask, err := sales.Gt(100)
	require.NoError(t, err)
	defer mask.Release()

	filtered, err := table.Filter(mask)
	require.NoError(t, err)
	defer filtered.Release()

	assert.Equal(t, 0, filtered.Len())
	assert.Equal(t, 4, filtered.Width())
}

func TestFilter_Errors(t *testing.T) {
	mem := testutil.SetupMemoryTest(t)
	table := testutil.CreateInventoryTable(t, mem.Allocator)
	defer table.Release()

	short := mustColumn(t, true, false)
	defer short.Release()
	ints := mustColumn(t, 1, 0, 1, 0)
	defer ints.Release()

	_, err := table.Filter(short)
	assert.ErrorIs(t, err, errors.ErrLengthMismatch)

	_, err = table.Filter(ints)
	assert.ErrorIs(t, err, errors.ErrTypeMismatch)

	_, err = table.Filter(nil)
	assert.ErrorIs(t, err, errors.ErrTypeMismatch)
}

func TestString(t *testing.T) {
	mem := testutil.SetupMemoryTest(t)
	table := testutil.CreateInventoryTable(t, mem.Allocator)
	defer table.Release()

	expected := "Table[4x4]\n" +
		`  SKU (text): ["X4E", "T3B", "F8D", "C7X"]` + "\n" +
		"  price (float): [7.0, 3.5, 8.0, 6.0]\n" +
		"  sales (integer): [5, 3, 1, 10]\n" +
		"  taxed (boolean): [false, false, true, false]"
	assert.Equal(t, expected, table.String())
}

func TestString_Elision(t *testing.T) {
	original := config.GetGlobalConfig()
	defer config.SetGlobalConfig(original)

	cfg := config.NewConfig()
	cfg.MaxDisplayValues = 2
	config.SetGlobalConfig(cfg)

	mem := testutil.SetupMemoryTest(t)
	table := testutil.CreateInventoryTable(t, mem.Allocator)
	defer table.Release()

	assert.Contains(t, table.String(), "  sales (integer): [5, 3, ... (2 more)]")
}
