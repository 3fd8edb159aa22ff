package miner

import (
	"encoding/hex"

	"github.com/sagreta86/Ixian-DLT/types"
)

// BuildMask returns the leading-zero-bit bitmask a hash must satisfy at the
// given difficulty: floor(difficulty/8) leading 0xFF bytes, plus one
// trailing partial byte if difficulty isn't a multiple of 8. difficulty is
// clamped to [MinDifficulty, MaxDifficulty] first, matching the teacher's
// Target-comparison style in consensus/target.go adapted from a
// full-width numeric target to an explicit leading-bits mask.
func BuildMask(difficulty uint64) []byte {
	d := types.ClampDifficulty(difficulty)
	full := d / 8
	rem := d % 8

	mask := make([]byte, full, full+1)
	for i := range mask {
		mask[i] = 0xFF
	}
	if rem != 0 {
		mask = append(mask, byte(0xFF<<(8-rem)))
	}
	return mask
}

// Validate reports whether hashHex — an uppercase (or any-case) hex
// encoding of an Argon2id output — satisfies difficulty: every masked bit
// of the hash's leading bytes must be zero. Difficulty is threaded through
// as a parameter rather than a package-global, per spec §9's
// re-architecture note eliminating the source's racy static mutation.
func Validate(hashHex string, difficulty uint64) bool {
	hash, err := hex.DecodeString(hashHex)
	if err != nil {
		return false
	}
	mask := BuildMask(difficulty)
	if len(hash) < len(mask) {
		return false
	}
	for i, m := range mask {
		if hash[i]&m != 0 {
			return false
		}
	}
	return true
}
