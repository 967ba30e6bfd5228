package colframe_test

import (
	"errors"
	"testing"

	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/paveg/colframe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingResource struct {
	released *[]string
	name     string
}

func (r countingResource) Release() {
	*r.released = append(*r.released, r.name)
}

func TestMemoryManager_ReleaseOrder(t *testing.T) {
	var released []string
	manager := colframe.NewMemoryManager()

	manager.Track(countingResource{&released, "first"})
	manager.Track(countingResource{&released, "second"})
	manager.Track(nil)
	assert.Equal(t, 2, manager.Count())

	manager.ReleaseAll()
	assert.Equal(t, []string{"second", "first"}, released)
	assert.Zero(t, manager.Count())
}

func TestWithMemoryManager_ReleasesColumns(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	sentinel := errors.New("stop")
	err := colframe.WithMemoryManager(func(m *colframe.MemoryManager) error {
		col, err := colframe.ColumnOf([]float64{1.5, 2.5}, mem)
		require.NoError(t, err)
		m.Track(col)

		halved, err := col.Div(2)
		require.NoError(t, err)
		m.Track(halved)

		assert.Positive(t, mem.CurrentAlloc())
		return sentinel
	})
	assert.ErrorIs(t, err, sentinel)
}

func TestWithTable(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	err := colframe.WithTable(func() (*colframe.Table, error) {
		return inventory(t, mem), nil
	}, func(table *colframe.Table) error {
		assert.Equal(t, 4, table.Len())
		return nil
	})
	require.NoError(t, err)

	err = colframe.WithTable(func() (*colframe.Table, error) {
		return colframe.NewTable(nil)
	}, func(*colframe.Table) error {
		t.Fatal("fn must not run when the factory fails")
		return nil
	})
	assert.ErrorIs(t, err, colframe.ErrEmptyInput)
}
