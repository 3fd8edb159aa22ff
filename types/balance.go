package types

import (
	"errors"
	"math/big"
)

// CoinPrecision is the number of smallest units per whole coin. Balance
// stores amounts as an integer count of the smallest unit, so precision is
// fixed while the magnitude is unbounded.
const CoinPrecision = 1e8

// ErrNegativeBalance is returned whenever an operation would otherwise
// produce a negative Balance. The type's invariant is non-negativity.
var ErrNegativeBalance = errors.New("types: balance cannot be negative")

// Balance is an arbitrary-precision, non-negative integer count of the
// smallest denomination, supporting lossless addition. It is the Go
// equivalent of the teacher's big.Int-backed Currency type
// (types/currency_test.go), generalized from a fixed 128-bit width to an
// unbounded one so total supply can never overflow.
type Balance struct {
	i big.Int
}

// ZeroBalance is the additive identity.
func ZeroBalance() Balance {
	return Balance{}
}

// NewBalance constructs a Balance from a non-negative big.Int, copying it.
// It panics if b is negative, mirroring the teacher's refusal to construct
// a negative Currency.
func NewBalance(b *big.Int) Balance {
	if b.Sign() < 0 {
		panic(ErrNegativeBalance)
	}
	var c Balance
	c.i.Set(b)
	return c
}

// NewBalance64 constructs a Balance from a uint64 smallest-unit count.
func NewBalance64(x uint64) Balance {
	var c Balance
	c.i.SetUint64(x)
	return c
}

// Add returns the sum a+b. Addition never loses precision and never
// overflows.
func (a Balance) Add(b Balance) Balance {
	var c Balance
	c.i.Add(&a.i, &b.i)
	return c
}

// Sub returns a-b. It panics if the result would be negative; callers that
// need to test for insufficiency should use Cmp first.
func (a Balance) Sub(b Balance) Balance {
	var c Balance
	c.i.Sub(&a.i, &b.i)
	if c.i.Sign() < 0 {
		panic(ErrNegativeBalance)
	}
	return c
}

// Cmp compares two balances: -1 if a<b, 0 if a==b, 1 if a>b.
func (a Balance) Cmp(b Balance) int {
	return a.i.Cmp(&b.i)
}

// Cmp64 compares a balance against a uint64 smallest-unit count.
func (a Balance) Cmp64(x uint64) int {
	return a.Cmp(NewBalance64(x))
}

// IsZero reports whether the balance is exactly zero.
func (a Balance) IsZero() bool {
	return a.i.Sign() == 0
}

// Big returns the balance as a big.Int, safe for the caller to mutate.
func (a Balance) Big() *big.Int {
	return new(big.Int).Set(&a.i)
}

// String renders the balance's smallest-unit integer value in decimal.
func (a Balance) String() string {
	return a.i.String()
}

// Bytes returns the big-endian, unsigned byte representation of the
// balance, used when folding a Wallet into its deterministic checksum.
func (a Balance) Bytes() []byte {
	return a.i.Bytes()
}

// MarshalJSON encodes the balance as its decimal string, so arbitrarily
// large values survive round-tripping without losing precision to a
// floating-point JSON number.
func (a Balance) MarshalJSON() ([]byte, error) {
	return []byte(`"` + a.i.String() + `"`), nil
}

// UnmarshalJSON decodes a decimal string into the balance.
func (a *Balance) UnmarshalJSON(b []byte) error {
	if len(b) < 2 {
		return errors.New("types: invalid balance encoding")
	}
	s := string(b[1 : len(b)-1])
	_, ok := a.i.SetString(s, 10)
	if !ok {
		return errors.New("types: invalid balance encoding: " + s)
	}
	if a.i.Sign() < 0 {
		return ErrNegativeBalance
	}
	return nil
}
