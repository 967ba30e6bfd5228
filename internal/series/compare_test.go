package series

import (
	"testing"

	"github.com/paveg/colframe/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompare(t *testing.T) {
	sales := mustNew(t, nil, 5, 3, 1, 10)
	defer sales.Release()
	price := mustNew(t, nil, 7.0, 3.5, 8.0, 6.0)
	defer price.Release()

	tests := []struct {
		name     string
		op       func() (*Column, error)
		expected []any
	}{
		{"int > int scalar", func() (*Column, error) { return sales.Gt(3) }, []any{true, false, false, true}},
		{"int >= int scalar", func() (*Column, error) { return sales.Ge(3) }, []any{true, true, false, true}},
		{"int < int scalar", func() (*Column, error) { return sales.Lt(3) }, []any{false, false, true, false}},
		{"int <= int scalar", func() (*Column, error) { return sales.Le(3) }, []any{false, true, true, false}},
		{"int != int scalar", func() (*Column, error) { return sales.Ne(3) }, []any{true, false, true, true}},
		{"float > float scalar", func() (*Column, error) { return price.Gt(6.0) }, []any{true, false, true, false}},
		{"int < float scalar", func() (*Column, error) { return sales.Lt(4.5) }, []any{false, true, true, false}},
		{"float vs int column", func() (*Column, error) { return price.Gt(sales) }, []any{true, true, true, false}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := tt.op()
			require.NoError(t, err)
			defer result.Release()

			assert.Equal(t, KindBoolean, result.Kind())
			assert.Equal(t, tt.expected, result.Values())
		})
	}
}

func TestCompare_IntegersAreExact(t *testing.T) {
	// 2^53 + 1 is not representable as a float64
	big := mustNew(t, nil, int64(1<<53+1))
	defer big.Release()

	result, err := big.Gt(int64(1 << 53))
	require.NoError(t, err)
	defer result.Release()

	assert.Equal(t, []any{true}, result.Values())
}

func TestCompare_NullPropagation(t *testing.T) {
	a := mustNew(t, nil, 1, nil, 3)
	defer a.Release()
	b := mustNew(t, nil, nil, 2, 1)
	defer b.Release()

	result, err := a.Gt(b)
	require.NoError(t, err)
	defer result.Release()

	assert.Equal(t, []any{nil, nil, true}, result.Values())
}

func TestCompare_Errors(t *testing.T) {
	ints := mustNew(t, nil, 1, 2, 3)
	defer ints.Release()
	short := mustNew(t, nil, 1.0, 2.0)
	defer short.Release()
	text := mustNew(t, nil, "a", "b", "c")
	defer text.Release()

	tests := []struct {
		name     string
		op       func() (*Column, error)
		sentinel error
	}{
		{"text receiver", func() (*Column, error) { return text.Lt("b") }, errors.ErrUnsupportedOperation},
		{"text operand", func() (*Column, error) { return ints.Ge(text) }, errors.ErrUnsupportedOperation},
		{"boolean scalar", func() (*Column, error) { return ints.Ne(true) }, errors.ErrUnsupportedOperation},
		{"length mismatch", func() (*Column, error) { return ints.Le(short) }, errors.ErrLengthMismatch},
		{"null scalar", func() (*Column, error) { return ints.Gt(nil) }, errors.ErrIndeterminateType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := tt.op()
			assert.Nil(t, result)
			assert.ErrorIs(t, err, tt.sentinel)
		})
	}
}

func TestEq(t *testing.T) {
	tests := []struct {
		name     string
		left     []any
		right    []any
		expected []any
	}{
		{"text", []any{"X4E", "T3B", nil}, []any{"X4E", "C7X", "F8D"}, []any{true, false, nil}},
		{"boolean", []any{true, false}, []any{true, true}, []any{true, false}},
		{"integer", []any{1, 2, 3}, []any{1, nil, 4}, []any{true, nil, false}},
		{"float", []any{0.5, 1.5}, []any{0.5, 2.5}, []any{true, false}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			left := mustNew(t, nil, tt.left...)
			defer left.Release()
			right := mustNew(t, nil, tt.right...)
			defer right.Release()

			result, err := left.Eq(right)
			require.NoError(t, err)
			defer result.Release()

			assert.Equal(t, KindBoolean, result.Kind())
			assert.Equal(t, tt.expected, result.Values())
		})
	}
}

func TestEq_Errors(t *testing.T) {
	ints := mustNew(t, nil, 1, 2)
	defer ints.Release()
	floats := mustNew(t, nil, 1.0, 2.0)
	defer floats.Release()
	longer := mustNew(t, nil, 1, 2, 3)
	defer longer.Release()

	_, err := ints.Eq(floats)
	assert.ErrorIs(t, err, errors.ErrTypeMismatch)

	_, err = ints.Eq(longer)
	assert.ErrorIs(t, err, errors.ErrLengthMismatch)

	_, err = ints.Eq(nil)
	assert.ErrorIs(t, err, errors.ErrTypeMismatch)

	// kind is checked before length
	_, err = floats.Eq(longer)
	assert.ErrorIs(t, err, errors.ErrTypeMismatch)
}
