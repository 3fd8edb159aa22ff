package miner

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"math/big"
	mrand "math/rand"
	"strings"

	"github.com/sagreta86/Ixian-DLT/internal/argon2id"
	"github.com/sagreta86/Ixian-DLT/types"
)

// seededRand returns a math/rand generator seeded from the system CSPRNG,
// grounded on the truechain minerva.Seal pattern
// (other_examples/.../consensus-minerva-sealer.go): a per-instance
// generator rather than a shared global one, so two Miner instances never
// walk the same nonce sequence (spec §9's RNG note).
func seededRand() *mrand.Rand {
	var seed int64
	b := make([]byte, 8)
	if _, err := rand.Read(b); err == nil {
		seed = int64(binary.LittleEndian.Uint64(b))
	} else {
		// crypto/rand is not expected to fail in practice; fall back to a
		// big.Int seed derived from the same entropy source attempt.
		n, _ := rand.Int(rand.Reader, big.NewInt(1<<62))
		if n != nil {
			seed = n.Int64()
		}
	}
	return mrand.New(mrand.NewSource(seed))
}

// generateNonce draws a 128-character nonce uniformly from the alphabet
// A-Z0-9, using rng. The RNG need not be cryptographic — only the puzzle
// search does — but must be seeded per spec §9.
func generateNonce(rng *mrand.Rand) string {
	var sb strings.Builder
	sb.Grow(types.NonceLength)
	for i := 0; i < types.NonceLength; i++ {
		sb.WriteByte(types.NonceAlphabet[rng.Intn(len(types.NonceAlphabet))])
	}
	return sb.String()
}

// computeHashHex computes the Argon2id proof-of-work hash for
// (blockChecksum, solver, nonce) and renders it as an uppercase hex
// string, the form the difficulty predicate and the wire format both
// expect (spec §4.2/§6).
//
// Password and salt are the ASCII bytes of the inputs' string forms:
// password is the concatenation of the block checksum's hex encoding and
// the solver address's hex encoding; salt is the nonce string itself
// (already restricted to the ASCII alphabet A-Z0-9).
func computeHashHex(blockChecksum []byte, solver types.Address, nonce string) string {
	password := []byte(hex.EncodeToString(blockChecksum) + solver.String())
	salt := []byte(nonce)
	sum := argon2id.Sum(password, salt)
	return strings.ToUpper(hex.EncodeToString(sum[:]))
}
