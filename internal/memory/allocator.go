// Package memory selects the arrow allocator backing new columns.
//
// Columns are created on the allocator passed by the caller. When none is
// given, the global configuration decides between arrow's default allocator and
// a process-wide CheckedAllocator that tracks outstanding bytes, which makes
// leaked column references visible in tests and diagnostics.
package memory

import (
	"sync"

	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/paveg/colframe/internal/config"
)

var (
	checkedOnce sync.Once
	checked     *memory.CheckedAllocator
)

// Checked returns the shared checked allocator, creating it on first use.
func Checked() *memory.CheckedAllocator {
	checkedOnce.Do(func() {
		checked = memory.NewCheckedAllocator(memory.NewGoAllocator())
	})
	return checked
}

// Allocator returns the allocator selected by the global configuration.
func Allocator() memory.Allocator {
	if config.GetGlobalConfig().CheckedAllocator {
		return Checked()
	}
	return memory.DefaultAllocator
}

// Resolve returns mem, or the configured allocator when mem is nil.
func Resolve(mem memory.Allocator) memory.Allocator {
	if mem != nil {
		return mem
	}
	return Allocator()
}

// Outstanding reports the bytes currently held on the shared checked allocator.
// It is zero when checked allocation has never been enabled.
func Outstanding() int {
	if !config.GetGlobalConfig().CheckedAllocator && checked == nil {
		return 0
	}
	return Checked().CurrentAlloc()
}
