package series

import (
	"github.com/paveg/colframe/internal/errors"
	"github.com/paveg/colframe/internal/validation"
)

// And returns the element-wise conjunction of two boolean columns
func (c *Column) And(other *Column) (*Column, error) {
	return c.record("and", func() (*Column, error) {
		return c.logical("And", other, func(a, b bool) bool { return a && b })
	})
}

// Or returns the element-wise disjunction of two boolean columns
func (c *Column) Or(other *Column) (*Column, error) {
	return c.record("or", func() (*Column, error) {
		return c.logical("Or", other, func(a, b bool) bool { return a || b })
	})
}

// Xor returns the element-wise exclusive or of two boolean columns
func (c *Column) Xor(other *Column) (*Column, error) {
	return c.record("xor", func() (*Column, error) {
		return c.logical("Xor", other, func(a, b bool) bool { return a != b })
	})
}

// logical applies fn where both sides are present. A null on either side
// yields null; there is no short-circuit on false or true.
func (c *Column) logical(name string, other *Column, fn func(a, b bool) bool) (*Column, error) {
	if other == nil {
		return nil, errors.NewTypeMismatchError(name, "", KindBoolean.String(), "nil column")
	}
	if err := validation.NewCompoundValidator(
		validation.NewKindValidator(KindBoolean.String(), c.kind.String(), name),
		validation.NewKindValidator(KindBoolean.String(), other.kind.String(), name),
		validation.NewLengthValidator(c.Len(), other.Len(), name, ""),
	).Validate(); err != nil {
		return nil, err
	}

	return build[bool](c.mem, c.Len(), combine(slotsOf[bool](c), slotsOf[bool](other), fn)), nil
}

// Not returns the element-wise negation of a boolean column; nulls stay null
func (c *Column) Not() (*Column, error) {
	return c.record("not", func() (*Column, error) {
		if c.kind != KindBoolean {
			return nil, errors.NewUnsupportedOperationError("Not", c.kind.String())
		}
		src := slotsOf[bool](c)
		return build[bool](c.mem, c.Len(), func(i int) (bool, bool) {
			v, ok := src(i)
			return !v, ok
		}), nil
	})
}
