package types

import "testing"

func TestWalletCopyIsDeep(t *testing.T) {
	w := Wallet{ID: AddressFromBytes([]byte{1}), Balance: NewBalance64(5), Data: []byte{1, 2, 3}}
	c := w.Copy()
	c.Data[0] = 99
	if w.Data[0] == 99 {
		t.Fatal("mutating the copy's Data mutated the original")
	}
}

func TestWalletChecksumDeterministic(t *testing.T) {
	w := Wallet{ID: AddressFromBytes([]byte{1}), Balance: NewBalance64(5), Nonce: 3}
	if w.Checksum() != w.Checksum() {
		t.Fatal("Checksum should be deterministic for identical wallets")
	}
}

func TestWalletChecksumSensitiveToEachField(t *testing.T) {
	base := Wallet{ID: AddressFromBytes([]byte{1}), Balance: NewBalance64(5), Nonce: 3, Data: []byte("x")}
	variants := []Wallet{
		{ID: AddressFromBytes([]byte{2}), Balance: base.Balance, Nonce: base.Nonce, Data: base.Data},
		{ID: base.ID, Balance: NewBalance64(6), Nonce: base.Nonce, Data: base.Data},
		{ID: base.ID, Balance: base.Balance, Nonce: 4, Data: base.Data},
		{ID: base.ID, Balance: base.Balance, Nonce: base.Nonce, Data: []byte("y")},
	}
	baseSum := base.Checksum()
	for i, v := range variants {
		if v.Checksum() == baseSum {
			t.Fatalf("variant %d did not change the checksum", i)
		}
	}
}

func TestDefaultWalletIsZeroValue(t *testing.T) {
	a := AddressFromBytes([]byte{7})
	w := DefaultWallet(a)
	if w.ID != a {
		t.Fatal("DefaultWallet should preserve the requested address")
	}
	if !w.Balance.IsZero() || w.Nonce != 0 || w.Data != nil {
		t.Fatal("DefaultWallet should otherwise be the zero value")
	}
}
