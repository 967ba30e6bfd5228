package series

import (
	"fmt"

	"github.com/paveg/colframe/internal/errors"
	"github.com/paveg/colframe/internal/monitoring"
)

// operand is the right-hand side of a binary operator: either a column or a
// scalar broadcast to the receiver's length.
type operand struct {
	kind   Kind
	n      int
	col    *Column
	scalar any
}

// resolveOperand accepts a *Column or a scalar Go value. Scalars are classified
// like construction input; a nil scalar cannot be broadcast.
func (c *Column) resolveOperand(op string, other any) (operand, error) {
	if col, ok := other.(*Column); ok {
		if col == nil {
			return operand{}, errors.NewTypeMismatchError(op, "", "column or scalar", "nil column")
		}
		return operand{kind: col.kind, n: col.Len(), col: col}, nil
	}

	kind, v, present, ok := classify(other)
	if !ok {
		return operand{}, errors.NewUnsupportedTypeError(op, fmt.Sprintf("%T", other))
	}
	if !present {
		return operand{}, errors.NewIndeterminateTypeError(op)
	}
	return operand{kind: kind, n: c.Len(), scalar: v}, nil
}

// numericSlots reads a numeric operand converted to T
func numericSlots[T int64 | float64](o operand) slot[T] {
	if o.col == nil {
		var v T
		switch s := o.scalar.(type) {
		case int64:
			v = T(s)
		case float64:
			v = T(s)
		}
		return func(int) (T, bool) { return v, true }
	}
	switch o.kind {
	case KindInteger:
		src := slotsOf[int64](o.col)
		return func(i int) (T, bool) {
			x, ok := src(i)
			return T(x), ok
		}
	default:
		src := slotsOf[float64](o.col)
		return func(i int) (T, bool) {
			x, ok := src(i)
			return T(x), ok
		}
	}
}

// asOperand wraps the receiver itself as an operand
func (c *Column) asOperand() operand {
	return operand{kind: c.kind, n: c.Len(), col: c}
}

// record runs fn under the metrics collector, attributing input and output rows
func (c *Column) record(op string, fn func() (*Column, error)) (*Column, error) {
	var out *Column
	err := monitoring.Default().RecordOperation("series."+op, c.Len(), func() (int, error) {
		var err error
		out, err = fn()
		if err != nil {
			return 0, err
		}
		return out.Len(), nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
