package errors

import (
	"fmt"
	"strings"
)

// NewEmptyInputError creates an error for zero-length construction input
func NewEmptyInputError(op string) *DataFrameError {
	return &DataFrameError{
		Op:      op,
		Code:    CodeEmptyInput,
		Message: "input must contain at least one element",
	}
}

// NewIndeterminateTypeError creates an error for input whose elements are all null
func NewIndeterminateTypeError(op string) *DataFrameError {
	return &DataFrameError{
		Op:      op,
		Code:    CodeIndeterminateType,
		Message: "cannot infer element kind: every element is null",
	}
}

// NewUnsupportedTypeError creates an error for unsupported data types
func NewUnsupportedTypeError(op, typeName string) *DataFrameError {
	return &DataFrameError{
		Op:      op,
		Code:    CodeUnsupportedType,
		Message: fmt.Sprintf("unsupported type: %s", typeName),
		Hint:    "supported element types are string, bool, signed integers and floats",
	}
}

// NewTypeMismatchError creates an error for an element, operand or mask of the wrong kind
func NewTypeMismatchError(op, column, expected, actual string) *DataFrameError {
	return &DataFrameError{
		Op:      op,
		Column:  column,
		Code:    CodeTypeMismatch,
		Message: fmt.Sprintf("type mismatch: expected %s, got %s", expected, actual),
	}
}

// NewLengthMismatchError creates an error for an operand or mask of the wrong length
func NewLengthMismatchError(op, column string, expected, actual int) *DataFrameError {
	return &DataFrameError{
		Op:      op,
		Column:  column,
		Code:    CodeLengthMismatch,
		Message: fmt.Sprintf("length mismatch: expected %d, got %d", expected, actual),
	}
}

// NewColumnLengthsError creates an error reporting every column length of a table
// whose columns disagree. Names and lengths are paired by position.
func NewColumnLengthsError(op string, names []string, lengths []int) *DataFrameError {
	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%s=%d", name, lengths[i])
	}
	return &DataFrameError{
		Op:      op,
		Code:    CodeLengthMismatch,
		Message: fmt.Sprintf("all columns must have the same length (found %s)", strings.Join(parts, ", ")),
	}
}

// NewIndexOutOfRangeError creates an error for integer indexing outside [0, length)
func NewIndexOutOfRangeError(op string, index, length int) *DataFrameError {
	return &DataFrameError{
		Op:      op,
		Code:    CodeIndexOutOfRange,
		Message: fmt.Sprintf("index %d out of range [0, %d)", index, length),
	}
}

// NewUnsupportedOperationError creates an error for an operator applied to a kind that lacks it
func NewUnsupportedOperationError(op, kind string) *DataFrameError {
	return &DataFrameError{
		Op:      op,
		Code:    CodeUnsupportedOperation,
		Message: fmt.Sprintf("operation not supported on %s columns", kind),
	}
}

// NewInvalidKeyError creates an error for an unusable table column name
func NewInvalidKeyError(op, key, reason string) *DataFrameError {
	return &DataFrameError{
		Op:      op,
		Column:  key,
		Code:    CodeInvalidKey,
		Message: reason,
	}
}

// NewKeyNotFoundError creates an error for lookups of non-existent columns.
// When a close match exists among available it is offered as a hint.
func NewKeyNotFoundError(op, key string, available []string) *DataFrameError {
	err := &DataFrameError{
		Op:      op,
		Column:  key,
		Code:    CodeKeyNotFound,
		Message: "column does not exist",
	}
	list := strings.Join(available, ", ")
	if suggestion := closestMatch(key, available); suggestion != "" {
		err.Hint = fmt.Sprintf("did you mean '%s'? available columns: [%s]", suggestion, list)
	} else if len(available) > 0 {
		err.Hint = fmt.Sprintf("available columns: [%s]", list)
	}
	return err
}
