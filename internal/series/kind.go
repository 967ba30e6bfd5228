package series

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
)

// Kind is the element kind of a Column. The set is closed: every operator
// switches over these four values.
type Kind int

const (
	KindText Kind = iota + 1
	KindBoolean
	KindInteger
	KindFloat
)

// String returns the lower-case kind name used in errors and debug output
func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindBoolean:
		return "boolean"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// DataType returns the arrow type backing columns of this kind
func (k Kind) DataType() arrow.DataType {
	switch k {
	case KindText:
		return arrow.BinaryTypes.String
	case KindBoolean:
		return arrow.FixedWidthTypes.Boolean
	case KindInteger:
		return arrow.PrimitiveTypes.Int64
	case KindFloat:
		return arrow.PrimitiveTypes.Float64
	default:
		return arrow.Null
	}
}

// IsNumeric reports whether arithmetic and ordering comparisons apply
func (k Kind) IsNumeric() bool {
	return k == KindInteger || k == KindFloat
}

// Native is the set of Go types stored by columns, one per Kind.
type Native interface {
	string | bool | int64 | float64
}

func kindFor[T Native]() Kind {
	var zero T
	switch any(zero).(type) {
	case string:
		return KindText
	case bool:
		return KindBoolean
	case int64:
		return KindInteger
	default:
		return KindFloat
	}
}

// classify maps a dynamic Go value to its kind and normalized storage value.
// Signed integers widen to int64 and float32 widens to float64. Pointers to a
// Native type are dereferenced; a nil pointer is reported as absent.
func classify(v any) (kind Kind, normalized any, present bool, ok bool) {
	switch x := v.(type) {
	case nil:
		return 0, nil, false, true
	case string:
		return KindText, x, true, true
	case bool:
		return KindBoolean, x, true, true
	case int:
		return KindInteger, int64(x), true, true
	case int8:
		return KindInteger, int64(x), true, true
	case int16:
		return KindInteger, int64(x), true, true
	case int32:
		return KindInteger, int64(x), true, true
	case int64:
		return KindInteger, x, true, true
	case float32:
		return KindFloat, float64(x), true, true
	case float64:
		return KindFloat, x, true, true
	case *string:
		return derefKind(KindText, x)
	case *bool:
		return derefKind(KindBoolean, x)
	case *int64:
		return derefKind(KindInteger, x)
	case *float64:
		return derefKind(KindFloat, x)
	default:
		return 0, nil, false, false
	}
}

func derefKind[T Native](kind Kind, p *T) (Kind, any, bool, bool) {
	if p == nil {
		return kind, nil, false, true
	}
	return kind, *p, true, true
}

// promote returns the result kind of a binary arithmetic operation
func promote(left, right Kind) Kind {
	if left == KindFloat || right == KindFloat {
		return KindFloat
	}
	return KindInteger
}
