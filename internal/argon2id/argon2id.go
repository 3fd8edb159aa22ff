// Package argon2id wraps golang.org/x/crypto/argon2 with the fixed
// parameter set the proof-of-work primitive requires. It is the Go
// substitute for the original node's C FFI call into a prebuilt Argon2
// library (spec §1/§9): the spec treats Argon2id itself as a primitive, so
// this package's only job is pinning the parameters consensus depends on.
package argon2id

import (
	"golang.org/x/crypto/argon2"

	"github.com/sagreta86/Ixian-DLT/config"
)

// Sum computes the Argon2id hash of password salted by salt, using the
// consensus-fixed parameters (t=1, m=1024 KiB, p=4, out=32). Both password
// and salt are taken as raw bytes; callers are responsible for encoding
// their string forms as ASCII before calling Sum, per spec §4.2.
func Sum(password, salt []byte) [config.Argon2KeyLen]byte {
	out := argon2.IDKey(password, salt, config.Argon2Time, config.Argon2MemoryKiB, config.Argon2Threads, config.Argon2KeyLen)
	var result [config.Argon2KeyLen]byte
	copy(result[:], out)
	return result
}
