package series

import (
	"github.com/paveg/colframe/internal/errors"
	"github.com/paveg/colframe/internal/validation"
)

// Filter returns a new column holding the slots whose mask entry is true, in
// their original order. Null and false mask entries drop the row. The result
// may be empty; the non-empty rule applies to construction input only.
func (c *Column) Filter(mask *Column) (*Column, error) {
	return c.record("filter", func() (*Column, error) {
		indices, err := c.Selection(mask)
		if err != nil {
			return nil, err
		}
		return c.Take(indices), nil
	})
}

// Selection validates mask against c and returns the positions it selects
func (c *Column) Selection(mask *Column) ([]int, error) {
	const name = "Filter"
	if mask == nil {
		return nil, errors.NewTypeMismatchError(name, "", KindBoolean.String(), "nil column")
	}
	if err := validation.NewCompoundValidator(
		validation.NewKindValidator(KindBoolean.String(), mask.kind.String(), name),
		validation.NewLengthValidator(c.Len(), mask.Len(), name, ""),
	).Validate(); err != nil {
		return nil, err
	}

	src := slotsOf[bool](mask)
	indices := make([]int, 0, mask.Len()-mask.NullN())
	for i := 0; i < mask.Len(); i++ {
		if v, ok := src(i); ok && v {
			indices = append(indices, i)
		}
	}
	return indices, nil
}

// Take returns a new column with the slots at the given positions. Positions
// must be in range; Selection produces valid ones.
func (c *Column) Take(indices []int) *Column {
	n := len(indices)
	switch c.kind {
	case KindText:
		return build[string](c.mem, n, gather(slotsOf[string](c), indices))
	case KindBoolean:
		return build[bool](c.mem, n, gather(slotsOf[bool](c), indices))
	case KindInteger:
		return build[int64](c.mem, n, gather(slotsOf[int64](c), indices))
	default:
		return build[float64](c.mem, n, gather(slotsOf[float64](c), indices))
	}
}

func gather[T any](src slot[T], indices []int) slot[T] {
	return func(i int) (T, bool) {
		return src(indices[i])
	}
}
