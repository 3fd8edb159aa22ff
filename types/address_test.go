package types

import (
	"encoding/json"
	"sort"
	"testing"
)

func TestAddressFromBytesZeroPads(t *testing.T) {
	a := AddressFromBytes([]byte{1, 2, 3})
	if a[0] != 1 || a[1] != 2 || a[2] != 3 {
		t.Fatalf("leading bytes not preserved: %v", a[:4])
	}
	for i := 3; i < AddressSize; i++ {
		if a[i] != 0 {
			t.Fatalf("byte %d not zero-padded: %d", i, a[i])
		}
	}
}

func TestAddressCmpTotalOrder(t *testing.T) {
	a := AddressFromBytes([]byte{1})
	b := AddressFromBytes([]byte{2})
	if a.Cmp(b) >= 0 {
		t.Fatal("expected a < b")
	}
	if b.Cmp(a) <= 0 {
		t.Fatal("expected b > a")
	}
	if a.Cmp(a) != 0 {
		t.Fatal("expected a == a")
	}
}

func TestAddressIsZero(t *testing.T) {
	var z Address
	if !z.IsZero() {
		t.Fatal("zero-value address should report IsZero")
	}
	nz := AddressFromBytes([]byte{1})
	if nz.IsZero() {
		t.Fatal("non-zero address should not report IsZero")
	}
}

func TestAddressJSONRoundTrip(t *testing.T) {
	a := AddressFromBytes([]byte("hello world"))
	b, err := json.Marshal(a)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var out Address
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if out != a {
		t.Fatalf("round trip mismatch: got %s, want %s", out, a)
	}
}

func TestAddressSliceSortsLexicographically(t *testing.T) {
	s := AddressSlice{
		AddressFromBytes([]byte{3}),
		AddressFromBytes([]byte{1}),
		AddressFromBytes([]byte{2}),
	}
	sort.Sort(s)
	for i := 0; i+1 < len(s); i++ {
		if s[i].Cmp(s[i+1]) >= 0 {
			t.Fatalf("slice not sorted at index %d: %v", i, s)
		}
	}
}
