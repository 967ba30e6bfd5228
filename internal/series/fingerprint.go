package series

import (
	"encoding/binary"
	"math"

	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/cespare/xxhash/v2"
)

// Fingerprint returns a 64-bit hash of the column's kind and contents. Null
// slots hash identically regardless of the bytes underneath them.
func (c *Column) Fingerprint() uint64 {
	h := xxhash.New()
	var buf [9]byte

	buf[0] = byte(c.kind)
	binary.LittleEndian.PutUint64(buf[1:], uint64(c.Len())) //nolint:gosec // lengths are non-negative
	_, _ = h.Write(buf[:])

	for i := 0; i < c.Len(); i++ {
		if c.array.IsNull(i) {
			_, _ = h.Write([]byte{0})
			continue
		}
		buf[0] = 1
		switch arr := c.array.(type) {
		case *array.String:
			s := arr.Value(i)
			binary.LittleEndian.PutUint64(buf[1:], uint64(len(s)))
			_, _ = h.Write(buf[:])
			_, _ = h.WriteString(s)
		case *array.Boolean:
			buf[1] = 0
			if arr.Value(i) {
				buf[1] = 1
			}
			_, _ = h.Write(buf[:2])
		case *array.Int64:
			binary.LittleEndian.PutUint64(buf[1:], uint64(arr.Value(i))) //nolint:gosec // bit pattern only
			_, _ = h.Write(buf[:])
		case *array.Float64:
			binary.LittleEndian.PutUint64(buf[1:], math.Float64bits(arr.Value(i)))
			_, _ = h.Write(buf[:])
		}
	}

	return h.Sum64()
}

// Equals reports whether other has the same kind, length, null positions and
// values. Unlike Eq it compares whole columns and treats two nulls as equal.
func (c *Column) Equals(other *Column) bool {
	if other == nil {
		return false
	}
	if c == other {
		return true
	}
	if c.kind != other.kind || c.Len() != other.Len() || c.NullN() != other.NullN() {
		return false
	}
	if c.Fingerprint() != other.Fingerprint() {
		return false
	}
	return array.Equal(c.array, other.array)
}
