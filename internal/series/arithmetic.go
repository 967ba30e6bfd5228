package series

import (
	"github.com/paveg/colframe/internal/errors"
	"github.com/paveg/colframe/internal/validation"
	"golang.org/x/exp/constraints"
)

type arithOp int

const (
	opAdd arithOp = iota
	opSub
	opMul
	opDiv
)

var arithNames = map[arithOp]string{
	opAdd: "Add",
	opSub: "Sub",
	opMul: "Mul",
	opDiv: "Div",
}

// Add returns the element-wise sum with a column or numeric scalar
func (c *Column) Add(other any) (*Column, error) {
	return c.record("add", func() (*Column, error) { return c.arithmetic(opAdd, other) })
}

// Sub returns the element-wise difference with a column or numeric scalar
func (c *Column) Sub(other any) (*Column, error) {
	return c.record("sub", func() (*Column, error) { return c.arithmetic(opSub, other) })
}

// Mul returns the element-wise product with a column or numeric scalar
func (c *Column) Mul(other any) (*Column, error) {
	return c.record("mul", func() (*Column, error) { return c.arithmetic(opMul, other) })
}

// Div returns the element-wise quotient with a column or numeric scalar.
// The result is always a float column.
func (c *Column) Div(other any) (*Column, error) {
	return c.record("div", func() (*Column, error) { return c.arithmetic(opDiv, other) })
}

func (c *Column) arithmetic(op arithOp, other any) (*Column, error) {
	name := arithNames[op]

	rhs, err := c.resolveOperand(name, other)
	if err != nil {
		return nil, err
	}
	if !c.kind.IsNumeric() {
		return nil, errors.NewUnsupportedOperationError(name, c.kind.String())
	}
	if !rhs.kind.IsNumeric() {
		return nil, errors.NewUnsupportedOperationError(name, rhs.kind.String())
	}
	if err := validation.ValidateLength(c.Len(), rhs.n, name, ""); err != nil {
		return nil, err
	}

	result := promote(c.kind, rhs.kind)
	if op == opDiv {
		result = KindFloat
	}

	n := c.Len()
	switch result {
	case KindInteger:
		return build[int64](c.mem, n, combine(
			numericSlots[int64](c.asOperand()), numericSlots[int64](rhs), arithFunc[int64](op))), nil
	default:
		return build[float64](c.mem, n, combine(
			numericSlots[float64](c.asOperand()), numericSlots[float64](rhs), arithFunc[float64](op))), nil
	}
}

// arithFunc returns the scalar kernel for op. Integer overflow wraps.
func arithFunc[T constraints.Integer | constraints.Float](op arithOp) func(a, b T) T {
	switch op {
	case opAdd:
		return func(a, b T) T { return a + b }
	case opSub:
		return func(a, b T) T { return a - b }
	case opMul:
		return func(a, b T) T { return a * b }
	default:
		return func(a, b T) T { return a / b }
	}
}

// combine applies fn to slot pairs; a null on either side yields null
func combine[T, R any](left, right slot[T], fn func(a, b T) R) slot[R] {
	return func(i int) (R, bool) {
		a, okA := left(i)
		b, okB := right(i)
		if !okA || !okB {
			var zero R
			return zero, false
		}
		return fn(a, b), true
	}
}
