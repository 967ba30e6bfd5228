// Package series provides Column, an immutable, homogeneously typed, null-aware
// column backed by an Apache Arrow array.
//
// A column holds values of exactly one Kind. Absent values are recorded in the
// arrow validity bitmap, so every slot is either a value of the column's kind or
// null. Operators never mutate their receiver: arithmetic, comparison, logic and
// filtering all return a new Column.
package series

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/paveg/colframe/internal/config"
	"github.com/paveg/colframe/internal/errors"
	"github.com/paveg/colframe/internal/logging"
	colmem "github.com/paveg/colframe/internal/memory"
	"github.com/paveg/colframe/internal/validation"
)

const opNew = "New"

// Column represents a typed data column with Apache Arrow backend
type Column struct {
	kind  Kind
	array arrow.Array
	mem   memory.Allocator
}

// New creates a Column from dynamically typed values. A nil element is null.
// The kind is inferred from the first non-null element and every other
// non-null element must have that same kind.
func New(values []any, mem memory.Allocator) (*Column, error) {
	col, err := newFromValues(values, colmem.Resolve(mem))
	if err != nil {
		logging.Logger().Debug("column construction rejected",
			"size", len(values), "code", errors.CodeOf(err).String())
		return nil, err
	}
	return col, nil
}

func newFromValues(values []any, mem memory.Allocator) (*Column, error) {
	if err := validation.ValidateNotEmpty(len(values), opNew); err != nil {
		return nil, err
	}

	normalized := make([]any, len(values))
	var kind Kind
	for i, v := range values {
		k, nv, present, ok := classify(v)
		if !ok {
			if kind == 0 {
				return nil, errors.NewUnsupportedTypeError(opNew, fmt.Sprintf("%T", v))
			}
			return nil, errors.NewTypeMismatchError(opNew, "", kind.String(), fmt.Sprintf("%T at index %d", v, i))
		}
		if !present {
			continue
		}
		if kind == 0 {
			kind = k
		} else if k != kind {
			return nil, errors.NewTypeMismatchError(opNew, "", kind.String(), fmt.Sprintf("%s at index %d", k, i))
		}
		normalized[i] = nv
	}

	if kind == 0 {
		return nil, errors.NewIndeterminateTypeError(opNew)
	}

	n := len(normalized)
	switch kind {
	case KindText:
		return build[string](mem, n, anySlots[string](normalized)), nil
	case KindBoolean:
		return build[bool](mem, n, anySlots[bool](normalized)), nil
	case KindInteger:
		return build[int64](mem, n, anySlots[int64](normalized)), nil
	case KindFloat:
		return build[float64](mem, n, anySlots[float64](normalized)), nil
	default:
		return nil, errors.NewUnsupportedTypeError(opNew, kind.String())
	}
}

func anySlots[T Native](values []any) slot[T] {
	return func(i int) (T, bool) {
		v, ok := values[i].(T)
		return v, ok
	}
}

// Of creates a Column without nulls from a typed slice
func Of[T Native](values []T, mem memory.Allocator) (*Column, error) {
	if err := validation.ValidateNotEmpty(len(values), opNew); err != nil {
		return nil, err
	}
	return build[T](colmem.Resolve(mem), len(values), func(i int) (T, bool) {
		return values[i], true
	}), nil
}

// OfNullable creates a Column from a typed slice of pointers; nil pointers are null
func OfNullable[T Native](values []*T, mem memory.Allocator) (*Column, error) {
	if err := validation.ValidateNotEmpty(len(values), opNew); err != nil {
		return nil, err
	}

	allNull := true
	for _, v := range values {
		if v != nil {
			allNull = false
			break
		}
	}
	if allNull {
		return nil, errors.NewIndeterminateTypeError(opNew)
	}

	return build[T](colmem.Resolve(mem), len(values), func(i int) (T, bool) {
		if values[i] == nil {
			var zero T
			return zero, false
		}
		return *values[i], true
	}), nil
}

// Kind returns the element kind
func (c *Column) Kind() Kind {
	return c.kind
}

// Len returns the length of the column
func (c *Column) Len() int {
	return c.array.Len()
}

// NullN returns the number of null slots
func (c *Column) NullN() int {
	return c.array.NullN()
}

// DataType returns the Arrow data type
func (c *Column) DataType() arrow.DataType {
	return c.array.DataType()
}

// IsNull checks if the value at index is null. Out of range indexes are not null.
func (c *Column) IsNull(index int) bool {
	if index < 0 || index >= c.array.Len() {
		return false
	}
	return c.array.IsNull(index)
}

// At returns the value at index: a string, bool, int64 or float64 matching the
// column kind, or nil for a null slot.
func (c *Column) At(index int) (any, error) {
	if err := validation.ValidateIndex(index, c.Len(), "At"); err != nil {
		return nil, err
	}
	return c.value(index), nil
}

func (c *Column) value(i int) any {
	if c.array.IsNull(i) {
		return nil
	}
	switch arr := c.array.(type) {
	case *array.String:
		return arr.Value(i)
	case *array.Boolean:
		return arr.Value(i)
	case *array.Int64:
		return arr.Value(i)
	case *array.Float64:
		return arr.Value(i)
	default:
		return nil
	}
}

// Values returns every slot in order, with nil for nulls
func (c *Column) Values() []any {
	out := make([]any, c.Len())
	for i := range out {
		out[i] = c.value(i)
	}
	return out
}

// Array returns the underlying Arrow array (retains a reference)
func (c *Column) Array() arrow.Array {
	c.array.Retain()
	return c.array
}

// Retain increases the reference count of the underlying array
func (c *Column) Retain() {
	c.array.Retain()
}

// Release releases the underlying Arrow memory
func (c *Column) Release() {
	if c.array != nil {
		c.array.Release()
	}
}

// String returns the debug representation, e.g. Column[integer]([1, null, 3])
func (c *Column) String() string {
	return fmt.Sprintf("Column[%s](%s)", c.kind, c.FormatValues(config.GetGlobalConfig().MaxDisplayValues))
}

// FormatValues renders the ordered contents, eliding values past limit.
// A negative limit renders every value.
func (c *Column) FormatValues(limit int) string {
	n := c.Len()
	shown := n
	if limit >= 0 && limit < n {
		shown = limit
	}

	parts := make([]string, 0, shown+1)
	for i := 0; i < shown; i++ {
		parts = append(parts, formatValue(c.value(i)))
	}
	if shown < n {
		parts = append(parts, fmt.Sprintf("... (%d more)", n-shown))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func formatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case string:
		return strconv.Quote(x)
	case float64:
		s := strconv.FormatFloat(x, 'g', -1, 64)
		if !strings.ContainsAny(s, ".eIN") {
			s += ".0"
		}
		return s
	default:
		return fmt.Sprint(x)
	}
}
