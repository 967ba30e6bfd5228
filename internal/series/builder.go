package series

import (
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
)

// typedBuilder is an arrow builder appending values of T
type typedBuilder[T any] interface {
	array.Builder
	Append(v T)
}

// typedArray is an arrow array exposing values of T
type typedArray[T any] interface {
	arrow.Array
	Value(i int) T
}

// slot yields the value at i and whether it is present
type slot[T any] func(i int) (T, bool)

func newBuilder[T Native](mem memory.Allocator) typedBuilder[T] {
	var zero T
	switch any(zero).(type) {
	case string:
		return any(array.NewStringBuilder(mem)).(typedBuilder[T])
	case bool:
		return any(array.NewBooleanBuilder(mem)).(typedBuilder[T])
	case int64:
		return any(array.NewInt64Builder(mem)).(typedBuilder[T])
	default:
		return any(array.NewFloat64Builder(mem)).(typedBuilder[T])
	}
}

// build materializes n slots into a new column of T's kind
func build[T Native](mem memory.Allocator, n int, at slot[T]) *Column {
	b := newBuilder[T](mem)
	defer b.Release()

	b.Reserve(n)
	for i := 0; i < n; i++ {
		if v, ok := at(i); ok {
			b.Append(v)
		} else {
			b.AppendNull()
		}
	}

	return &Column{
		kind:  kindFor[T](),
		array: b.NewArray(),
		mem:   mem,
	}
}

// slotsOf reads the column's own values as T. T must match the column kind.
func slotsOf[T Native](c *Column) slot[T] {
	arr := c.array.(typedArray[T])
	return func(i int) (T, bool) {
		if arr.IsNull(i) {
			var zero T
			return zero, false
		}
		return arr.Value(i), true
	}
}
