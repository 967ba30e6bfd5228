package series

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFingerprint(t *testing.T) {
	a := mustNew(t, nil, 1, nil, 3)
	defer a.Release()
	b := mustNew(t, nil, 1, nil, 3)
	defer b.Release()
	c := mustNew(t, nil, 1, 2, 3)
	defer c.Release()
	f := mustNew(t, nil, 1.0, nil, 3.0)
	defer f.Release()

	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
	assert.NotEqual(t, a.Fingerprint(), c.Fingerprint())
	assert.NotEqual(t, a.Fingerprint(), f.Fingerprint())

	assert.True(t, a.Equals(b))
	assert.True(t, a.Equals(a))
	assert.False(t, a.Equals(c))
	assert.False(t, a.Equals(f))
	assert.False(t, a.Equals(nil))
}

func TestFingerprint_TextBoundaries(t *testing.T) {
	a := mustNew(t, nil, "ab", "c")
	defer a.Release()
	b := mustNew(t, nil, "a", "bc")
	defer b.Release()

	assert.NotEqual(t, a.Fingerprint(), b.Fingerprint())
	assert.False(t, a.Equals(b))
}

func TestEquals_DerivedColumns(t *testing.T) {
	src := mustNew(t, nil, "X4E", "T3B", nil, "C7X")
	defer src.Release()
	mask := mustNew(t, nil, true, false, true, true)
	defer mask.Release()

	filtered, err := src.Filter(mask)
	require.NoError(t, err)
	defer filtered.Release()

	expected := mustNew(t, nil, "X4E", nil, "C7X")
	defer expected.Release()

	assert.True(t, filtered.Equals(expected))
	assert.Equal(t, expected.Fingerprint(), filtered.Fingerprint())
}
