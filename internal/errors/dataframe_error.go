// Package errors provides the typed error value returned by every column and
// table operation. Each error carries a Code naming the failure class so callers
// can match with errors.Is against the predefined sentinels.
package errors

import (
	"fmt"
	"strings"
)

// Code classifies a DataFrameError.
type Code int

const (
	CodeUnknown Code = iota
	CodeEmptyInput
	CodeIndeterminateType
	CodeUnsupportedType
	CodeTypeMismatch
	CodeLengthMismatch
	CodeIndexOutOfRange
	CodeUnsupportedOperation
	CodeInvalidKey
	CodeKeyNotFound
)

var codeNames = map[Code]string{
	CodeUnknown:              "Unknown",
	CodeEmptyInput:           "EmptyInput",
	CodeIndeterminateType:    "IndeterminateType",
	CodeUnsupportedType:      "UnsupportedType",
	CodeTypeMismatch:         "TypeMismatch",
	CodeLengthMismatch:       "LengthMismatch",
	CodeIndexOutOfRange:      "IndexOutOfRange",
	CodeUnsupportedOperation: "UnsupportedOperation",
	CodeInvalidKey:           "InvalidKey",
	CodeKeyNotFound:          "KeyNotFound",
}

func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Code(%d)", int(c))
}

// DataFrameError represents standardized errors across all column and table operations
type DataFrameError struct {
	Op      string // Operation name (e.g., "New", "Filter", "Add")
	Column  string // Column name if applicable
	Code    Code   // Failure class
	Message string // Human-readable error description
	Hint    string // Optional remediation hint
	Cause   error  // Underlying error cause
}

// Error implements the error interface
func (e *DataFrameError) Error() string {
	var b strings.Builder
	if e.Column != "" {
		fmt.Fprintf(&b, "%s operation failed on column '%s': %s", e.Op, e.Column, e.Message)
	} else {
		fmt.Fprintf(&b, "%s operation failed: %s", e.Op, e.Message)
	}
	if e.Hint != "" {
		b.WriteString(". Hint: ")
		b.WriteString(e.Hint)
	}
	return b.String()
}

// Unwrap returns the underlying cause for error wrapping support
func (e *DataFrameError) Unwrap() error {
	return e.Cause
}

// Is implements error equality checking for errors.Is().
// A target without an Op is a sentinel and matches on Code alone.
func (e *DataFrameError) Is(target error) bool {
	df, ok := target.(*DataFrameError)
	if !ok {
		return false
	}
	if df.Op == "" {
		return e.Code == df.Code
	}
	return e.Code == df.Code && e.Op == df.Op && e.Column == df.Column && e.Message == df.Message
}

// WithHint returns a copy of the error carrying the given hint
func (e *DataFrameError) WithHint(hint string) *DataFrameError {
	cp := *e
	cp.Hint = hint
	return &cp
}

// WithColumn returns a copy of the error attributed to the named column
func (e *DataFrameError) WithColumn(column string) *DataFrameError {
	cp := *e
	cp.Column = column
	return &cp
}

// Predefined sentinels, one per Code, for use with errors.Is
var (
	ErrEmptyInput           = &DataFrameError{Code: CodeEmptyInput, Message: "input must not be empty"}
	ErrIndeterminateType    = &DataFrameError{Code: CodeIndeterminateType, Message: "element kind cannot be inferred"}
	ErrUnsupportedType      = &DataFrameError{Code: CodeUnsupportedType, Message: "unsupported type"}
	ErrTypeMismatch         = &DataFrameError{Code: CodeTypeMismatch, Message: "type mismatch"}
	ErrLengthMismatch       = &DataFrameError{Code: CodeLengthMismatch, Message: "length mismatch"}
	ErrIndexOutOfRange      = &DataFrameError{Code: CodeIndexOutOfRange, Message: "index out of range"}
	ErrUnsupportedOperation = &DataFrameError{Code: CodeUnsupportedOperation, Message: "unsupported operation"}
	ErrInvalidKey           = &DataFrameError{Code: CodeInvalidKey, Message: "invalid key"}
	ErrKeyNotFound          = &DataFrameError{Code: CodeKeyNotFound, Message: "key not found"}
)

// CodeOf extracts the Code from err, or CodeUnknown when err is not a DataFrameError.
func CodeOf(err error) Code {
	for err != nil {
		if df, ok := err.(*DataFrameError); ok {
			return df.Code
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return CodeUnknown
		}
		err = u.Unwrap()
	}
	return CodeUnknown
}
