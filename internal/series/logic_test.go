package series

import (
	"testing"

	"github.com/paveg/colframe/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogical(t *testing.T) {
	a := mustNew(t, nil, true, true, false, false, nil, false)
	defer a.Release()
	b := mustNew(t, nil, true, false, true, false, true, nil)
	defer b.Release()

	tests := []struct {
		name     string
		op       func(*Column) (*Column, error)
		expected []any
	}{
		{"and", a.And, []any{true, false, false, false, nil, nil}},
		{"or", a.Or, []any{true, true, true, false, nil, nil}},
		{"xor", a.Xor, []any{false, true, true, false, nil, nil}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := tt.op(b)
			require.NoError(t, err)
			defer result.Release()

			assert.Equal(t, KindBoolean, result.Kind())
			assert.Equal(t, tt.expected, result.Values())
		})
	}
}

func TestLogical_Errors(t *testing.T) {
	flags := mustNew(t, nil, true, false)
	defer flags.Release()
	ints := mustNew(t, nil, 1, 0)
	defer ints.Release()
	longer := mustNew(t, nil, true, false, true)
	defer longer.Release()

	_, err := flags.And(ints)
	assert.ErrorIs(t, err, errors.ErrTypeMismatch)

	_, err = ints.Or(flags)
	assert.ErrorIs(t, err, errors.ErrTypeMismatch)

	_, err = flags.Xor(longer)
	assert.ErrorIs(t, err, errors.ErrLengthMismatch)

	_, err = flags.And(nil)
	assert.ErrorIs(t, err, errors.ErrTypeMismatch)
}

func TestNot(t *testing.T) {
	flags := mustNew(t, nil, false, true, nil)
	defer flags.Release()

	result, err := flags.Not()
	require.NoError(t, err)
	defer result.Release()

	assert.Equal(t, []any{true, false, nil}, result.Values())
	assert.Equal(t, []any{false, true, nil}, flags.Values())

	ints := mustNew(t, nil, 1)
	defer ints.Release()
	_, err = ints.Not()
	assert.ErrorIs(t, err, errors.ErrUnsupportedOperation)
}
