// Package encoding provides the small set of deterministic binary encoding
// helpers the core needs to build consensus-critical hash preimages. It is
// adapted from the teacher's encoding package: fixed little-endian integer
// widths and length-prefixed byte slices, so that encoding a struct field by
// field always yields the same bytes regardless of platform.
package encoding

import "encoding/binary"

// EncUint64 encodes a uint64 as 8 little-endian bytes.
func EncUint64(i uint64) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, i)
	return b
}

// DecUint64 decodes 8 little-endian bytes into a uint64. Shorter inputs are
// zero-padded, matching the teacher's lenient decode behavior.
func DecUint64(b []byte) uint64 {
	b2 := b
	if len(b2) < 8 {
		b2 = make([]byte, 8)
		copy(b2, b)
	}
	return binary.LittleEndian.Uint64(b2)
}

// EncBytes length-prefixes a byte slice so that concatenated encodings of
// variable-length fields remain unambiguous and therefore deterministic.
func EncBytes(b []byte) []byte {
	out := make([]byte, 0, 8+len(b))
	out = append(out, EncUint64(uint64(len(b)))...)
	out = append(out, b...)
	return out
}
