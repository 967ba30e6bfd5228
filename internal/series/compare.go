package series

import (
	"github.com/paveg/colframe/internal/errors"
	"github.com/paveg/colframe/internal/validation"
	"golang.org/x/exp/constraints"
)

type cmpOp int

const (
	opLt cmpOp = iota
	opLe
	opGt
	opGe
	opNe
)

var cmpNames = map[cmpOp]string{
	opLt: "Lt",
	opLe: "Le",
	opGt: "Gt",
	opGe: "Ge",
	opNe: "Ne",
}

// Lt returns a boolean column of c < other
func (c *Column) Lt(other any) (*Column, error) {
	return c.record("lt", func() (*Column, error) { return c.compare(opLt, other) })
}

// Le returns a boolean column of c <= other
func (c *Column) Le(other any) (*Column, error) {
	return c.record("le", func() (*Column, error) { return c.compare(opLe, other) })
}

// Gt returns a boolean column of c > other
func (c *Column) Gt(other any) (*Column, error) {
	return c.record("gt", func() (*Column, error) { return c.compare(opGt, other) })
}

// Ge returns a boolean column of c >= other
func (c *Column) Ge(other any) (*Column, error) {
	return c.record("ge", func() (*Column, error) { return c.compare(opGe, other) })
}

// Ne returns a boolean column of c != other. Like the ordering comparisons it
// applies to numeric columns only.
func (c *Column) Ne(other any) (*Column, error) {
	return c.record("ne", func() (*Column, error) { return c.compare(opNe, other) })
}

func (c *Column) compare(op cmpOp, other any) (*Column, error) {
	name := cmpNames[op]

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

	// Integers compare exactly unless a float is involved.
	n := c.Len()
	if promote(c.kind, rhs.kind) == KindInteger {
		return build[bool](c.mem, n, combine(
			numericSlots[int64](c.asOperand()), numericSlots[int64](rhs), cmpFunc[int64](op))), nil
	}
	return build[bool](c.mem, n, combine(
		numericSlots[float64](c.asOperand()), numericSlots[float64](rhs), cmpFunc[float64](op))), nil
}

func cmpFunc[T constraints.Ordered](op cmpOp) func(a, b T) bool {
	switch op {
	case opLt:
		return func(a, b T) bool { return a < b }
	case opLe:
		return func(a, b T) bool { return a <= b }
	case opGt:
		return func(a, b T) bool { return a > b }
	case opGe:
		return func(a, b T) bool { return a >= b }
	default:
		return func(a, b T) bool { return a != b }
	}
}

// Eq returns a boolean column of element-wise equality with another column of
// the same kind and length. Null on either side yields null.
func (c *Column) Eq(other *Column) (*Column, error) {
	return c.record("eq", func() (*Column, error) { return c.eq(other) })
}

func (c *Column) eq(other *Column) (*Column, error) {
	const name = "Eq"
	if other == nil {
		return nil, errors.NewTypeMismatchError(name, "", c.kind.String(), "nil column")
	}
	if err := validation.NewCompoundValidator(
		validation.NewKindValidator(c.kind.String(), other.kind.String(), name),
		validation.NewLengthValidator(c.Len(), other.Len(), name, ""),
	).Validate(); err != nil {
		return nil, err
	}

	n := c.Len()
	switch c.kind {
	case KindText:
		return build[bool](c.mem, n, combine(slotsOf[string](c), slotsOf[string](other), equal[string])), nil
	case KindBoolean:
		return build[bool](c.mem, n, combine(slotsOf[bool](c), slotsOf[bool](other), equal[bool])), nil
	case KindInteger:
		return build[bool](c.mem, n, combine(slotsOf[int64](c), slotsOf[int64](other), equal[int64])), nil
	case KindFloat:
		return build[bool](c.mem, n, combine(slotsOf[float64](c), slotsOf[float64](other), equal[float64])), nil
	default:
		return nil, errors.NewUnsupportedOperationError(name, c.kind.String())
	}
}

func equal[T comparable](a, b T) bool {
	return a == b
}
