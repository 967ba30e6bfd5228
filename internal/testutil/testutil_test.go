package testutil_test

import (
	"testing"

	"github.com/paveg/colframe/internal/series"
	"github.com/paveg/colframe/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupMemoryTest(t *testing.T) {
	mem := testutil.SetupMemoryTest(t)
	defer mem.Release()

	require.NotNil(t, mem.Allocator)

	col, err := series.New([]any{"a", "b"}, mem.Allocator)
	require.NoError(t, err)
	assert.Positive(t, mem.Allocator.CurrentAlloc())

	col.Release()
	assert.Zero(t, mem.Allocator.CurrentAlloc())
}

func TestCreateInventoryTable(t *testing.T) {
	mem := testutil.SetupMemoryTest(t)

	t.Run("default", func(t *testing.T) {
		table := testutil.CreateInventoryTable(t, mem.Allocator)
		defer table.Release()

		assert.Equal(t, 4, table.Len())
		assert.Equal(t, []string{"SKU", "price", "sales", "taxed"}, table.Columns())

		sku, err := table.Column("SKU")
		require.NoError(t, err)
		testutil.AssertColumnValues(t, sku, series.KindText, "X4E", "T3B", "F8D", "C7X")

		sales, err := table.Column("sales")
		require.NoError(t, err)
		testutil.AssertColumnValues(t, sales, series.KindInteger, int64(5), int64(3), int64(1), int64(10))
	})

	t.Run("with nulls", func(t *testing.T) {
		table := testutil.CreateInventoryTable(t, mem.Allocator, testutil.WithNulls())
		defer table.Release()

		price, err := table.Column("price")
		require.NoError(t, err)
		testutil.AssertColumnValues(t, price, series.KindFloat, 7.0, nil, 8.0, 6.0)

		taxed, err := table.Column("taxed")
		require.NoError(t, err)
		assert.True(t, taxed.IsNull(3))
	})
}

func TestAssertTableEqual(t *testing.T) {
	mem := testutil.SetupMemoryTest(t)

	a := testutil.CreateInventoryTable(t, mem.Allocator)
	defer a.Release()
	b := testutil.CreateInventoryTable(t, mem.Allocator)
	defer b.Release()

	testutil.AssertTableEqual(t, a, b)
}
