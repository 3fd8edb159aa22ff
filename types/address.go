package types

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"errors"
)

// AddressSize is the fixed width, in bytes, of an account identifier. It
// mirrors the teacher's fixed-width UnlockHash addressing.
const AddressSize = 36

// Address is an opaque, fixed-width account identifier. It is
// equality-comparable and totally ordered by lexicographic byte comparison.
type Address [AddressSize]byte

// ErrAddressWrongLen is returned when decoding a hex string of the wrong
// length into an Address.
var ErrAddressWrongLen = errors.New("types: encoded value has the wrong length to be an address")

// AddressFromBytes builds an Address from an arbitrary byte slice, copying
// at most AddressSize bytes and zero-padding the remainder.
func AddressFromBytes(b []byte) (a Address) {
	copy(a[:], b)
	return
}

// Cmp totally orders two addresses by lexicographic byte comparison, as
// required of the Address type.
func (a Address) Cmp(b Address) int {
	return bytes.Compare(a[:], b[:])
}

// IsZero reports whether a is the zero address.
func (a Address) IsZero() bool {
	return a == Address{}
}

// String renders the address as a lowercase hex string.
func (a Address) String() string {
	return hex.EncodeToString(a[:])
}

// MarshalJSON encodes the address as a hex string.
func (a Address) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// UnmarshalJSON decodes a hex string into the address.
func (a *Address) UnmarshalJSON(b []byte) error {
	if len(b) != AddressSize*2+2 {
		return ErrAddressWrongLen
	}
	decoded, err := hex.DecodeString(string(b[1 : len(b)-1]))
	if err != nil {
		return err
	}
	copy(a[:], decoded)
	return nil
}

// AddressSlice implements sort.Interface so addresses can be sorted
// lexicographically, as required for the wallet state checksum fold.
type AddressSlice []Address

func (s AddressSlice) Len() int           { return len(s) }
func (s AddressSlice) Less(i, j int) bool { return s[i].Cmp(s[j]) < 0 }
func (s AddressSlice) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }
