package encoding

import "testing"

func TestEncDecUint64RoundTrip(t *testing.T) {
	for _, v := range []uint64{0, 1, 255, 1 << 40, ^uint64(0)} {
		if got := DecUint64(EncUint64(v)); got != v {
			t.Fatalf("round trip for %d produced %d", v, got)
		}
	}
}

func TestDecUint64ZeroPadsShortInput(t *testing.T) {
	if got := DecUint64([]byte{1}); got != 1 {
		t.Fatalf("DecUint64([]byte{1}) = %d, want 1", got)
	}
}

func TestEncBytesLengthPrefixed(t *testing.T) {
	enc := EncBytes([]byte("hello"))
	if len(enc) != 8+5 {
		t.Fatalf("encoded length = %d, want 13", len(enc))
	}
	if DecUint64(enc[:8]) != 5 {
		t.Fatal("length prefix does not match payload length")
	}
}

func TestEncBytesUnambiguousConcatenation(t *testing.T) {
	a := append(EncBytes([]byte("ab")), EncBytes([]byte("cde"))...)
	b := append(EncBytes([]byte("abc")), EncBytes([]byte("de"))...)
	if string(a) == string(b) {
		t.Fatal("length-prefixing should make differently split concatenations distinguishable")
	}
}
