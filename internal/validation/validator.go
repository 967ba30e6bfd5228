// Package validation provides input validation utilities for column and table
// operations. Each validator reports failures as a typed DataFrameError so the
// caller can return it unchanged.
package validation

import (
	"github.com/paveg/colframe/internal/errors"
)

// Validator interface for input validation
type Validator interface {
	Validate() error
}

// ColumnProvider interface for types that provide column information
type ColumnProvider interface {
	HasColumn(name string) bool
	Columns() []string
	Len() int
	Width() int
}

// ColumnValidator validates column existence
type ColumnValidator struct {
	df      ColumnProvider
	columns []string
	op      string
}

// NewColumnValidator creates a validator for column lookups
func NewColumnValidator(df ColumnProvider, op string, columns ...string) *ColumnValidator {
	return &ColumnValidator{
		df:      df,
		columns: columns,
		op:      op,
	}
}

// Validate checks if all columns exist in the table
func (v *ColumnValidator) Validate() error {
	for _, column := range v.columns {
		if !v.df.HasColumn(column) {
			return errors.NewKeyNotFoundError(v.op, column, v.df.Columns())
		}
	}
	return nil
}

// LengthValidator validates length consistency between two operands
type LengthValidator struct {
	expected int
	actual   int
	op       string
	column   string
}

// NewLengthValidator creates a validator for length consistency
func NewLengthValidator(expected, actual int, op, column string) *LengthValidator {
	return &LengthValidator{
		expected: expected,
		actual:   actual,
		op:       op,
		column:   column,
	}
}

// Validate checks if lengths match
func (v *LengthValidator) Validate() error {
	if v.expected != v.actual {
		return errors.NewLengthMismatchError(v.op, v.column, v.expected, v.actual)
	}
	return nil
}

// KindValidator validates that an operand has the expected element kind
type KindValidator struct {
	expected string
	actual   string
	op       string
}

// NewKindValidator creates a validator comparing kind names
func NewKindValidator(expected, actual, op string) *KindValidator {
	return &KindValidator{
		expected: expected,
		actual:   actual,
		op:       op,
	}
}

// Validate checks if the kinds agree
func (v *KindValidator) Validate() error {
	if v.expected != v.actual {
		return errors.NewTypeMismatchError(v.op, "", v.expected, v.actual)
	}
	return nil
}

// IndexValidator validates index bounds
type IndexValidator struct {
	index int
	max   int
	op    string
}

// NewIndexValidator creates a validator for index operations
func NewIndexValidator(index, maxIndex int, op string) *IndexValidator {
	return &IndexValidator{
		index: index,
		max:   maxIndex,
		op:    op,
	}
}

// Validate checks if index is within bounds
func (v *IndexValidator) Validate() error {
	if v.index < 0 || v.index >= v.max {
		return errors.NewIndexOutOfRangeError(v.op, v.index, v.max)
	}
	return nil
}

// NotEmptyValidator validates that construction input has at least one element
type NotEmptyValidator struct {
	size int
	op   string
}

// NewNotEmptyValidator creates a validator for non-empty input
func NewNotEmptyValidator(size int, op string) *NotEmptyValidator {
	return &NotEmptyValidator{
		size: size,
		op:   op,
	}
}

// Validate checks the input size
func (v *NotEmptyValidator) Validate() error {
	if v.size == 0 {
		return errors.NewEmptyInputError(v.op)
	}
	return nil
}

// KeyValidator validates a table column name
type KeyValidator struct {
	key string
	op  string
}

// NewKeyValidator creates a validator for column names
func NewKeyValidator(key, op string) *KeyValidator {
	return &KeyValidator{
		key: key,
		op:  op,
	}
}

// Validate checks that the name is usable as a column key
func (v *KeyValidator) Validate() error {
	if v.key == "" {
		return errors.NewInvalidKeyError(v.op, v.key, "column name must be a non-empty string")
	}
	return nil
}

// CompoundValidator combines multiple validators
type CompoundValidator struct {
	validators []Validator
}

// NewCompoundValidator creates a validator that checks multiple conditions
func NewCompoundValidator(validators ...Validator) *CompoundValidator {
	return &CompoundValidator{
		validators: validators,
	}
}

// Validate runs all validators and returns the first error encountered
func (v *CompoundValidator) Validate() error {
	for _, validator := range v.validators {
		if err := validator.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Convenience validation functions

// ValidateColumns is a convenience function for column validation
func ValidateColumns(df ColumnProvider, op string, columns ...string) error {
	return NewColumnValidator(df, op, columns...).Validate()
}

// ValidateLength is a convenience function for length validation
func ValidateLength(expected, actual int, op, column string) error {
	return NewLengthValidator(expected, actual, op, column).Validate()
}

// ValidateKind is a convenience function for kind validation
func ValidateKind(expected, actual, op string) error {
	return NewKindValidator(expected, actual, op).Validate()
}

// ValidateIndex is a convenience function for index validation
func ValidateIndex(index, maxIndex int, op string) error {
	return NewIndexValidator(index, maxIndex, op).Validate()
}

// ValidateNotEmpty is a convenience function for non-empty input validation
func ValidateNotEmpty(size int, op string) error {
	return NewNotEmptyValidator(size, op).Validate()
}

// ValidateKey is a convenience function for column name validation
func ValidateKey(key, op string) error {
	return NewKeyValidator(key, op).Validate()
}
