package types

import (
	"crypto/sha256"

	"github.com/sagreta86/Ixian-DLT/encoding"
)

// Wallet is an account record: the authoritative unit the WalletState maps
// addresses to.
type Wallet struct {
	ID      Address
	Balance Balance
	Nonce   uint64
	Data    []byte
}

// DefaultWallet returns the zero-initialized record for an address that has
// never been written: zero balance, zero nonce, no data. Reads of unknown
// addresses return this rather than failing.
func DefaultWallet(id Address) Wallet {
	return Wallet{ID: id}
}

// Copy returns a deep copy of the wallet so callers never observe or
// mutate state aliased with the WalletState's internal maps.
func (w Wallet) Copy() Wallet {
	c := w
	if w.Data != nil {
		c.Data = make([]byte, len(w.Data))
		copy(c.Data, w.Data)
	}
	return c
}

// Checksum returns a deterministic hash over the wallet's serialized
// fields. It is the per-wallet primitive the wallet state's consensus
// checksum fold is built from (spec §4.1), so its field order and encoding
// are a wire-compatibility contract and must not change.
func (w Wallet) Checksum() [32]byte {
	var buf []byte
	buf = append(buf, w.ID[:]...)
	buf = append(buf, encoding.EncBytes(w.Balance.Bytes())...)
	buf = append(buf, encoding.EncUint64(w.Nonce)...)
	buf = append(buf, encoding.EncBytes(w.Data)...)
	return sha256.Sum256(buf)
}
