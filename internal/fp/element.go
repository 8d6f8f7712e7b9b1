package fp

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// ErrDivisionByZero is returned by Inv when called on the zero element.
var ErrDivisionByZero = fmt.Errorf("rescue: division by zero")

// ErrRngFailure is returned when the OS entropy source is unavailable.
var ErrRngFailure = fmt.Errorf("rescue: rng failure")

// BYTES is the width of an Fp element's little-endian encoding.
const BYTES = Bytes

// Fp is an element of the field Z/pZ, p = 2^255-19, always held reduced
// to [0, p).
type Fp struct {
	v U256
}

// FpZero is the additive identity.
var FpZero = Fp{}

// FpOne is the multiplicative identity.
var FpOne = Fp{v: One}

// FromU256 wraps a U256, reducing it into [0, p).
func FromU256(v U256) Fp {
	return Fp{v: reduceFull(v)}
}

// FromUint64 builds an element from a small integer.
func FromUint64(v uint64) Fp {
	return FromU256(NewU256(v, 0, 0, 0))
}

// FromBytes builds an element from little-endian bytes, reducing whatever
// value they represent (no rejection of inputs >= p, matching the
// reference's permissive deserialization).
func FromBytes(b []byte) Fp {
	return FromU256(FromBytesLE(b))
}

// pBig is the field modulus as a math/big value, used only by the
// parameter-derivation path below where inputs are wider than 32 bytes
// and a fast fixed-width reduction no longer applies.
var pBig = func() *big.Int {
	b := P.ToBytesLE()
	return new(big.Int).SetBytes(reverseBytes(b[:]))
}()

func reverseBytes(b []byte) []byte {
	out := make([]byte, len(b))
	for i, v := range b {
		out[len(b)-1-i] = v
	}
	return out
}

// FromWideBytesLE reduces an arbitrary-length little-endian byte string
// modulo p. Round-constant sampling draws 48-byte buffers (32 bytes plus
// 16 bytes of bias-avoiding slack) per element, too wide for the U256 fast
// path, so this goes through math/big instead; it runs only during
// one-time parameter derivation, never on the hash/cipher hot path.
func FromWideBytesLE(b []byte) Fp {
	n := new(big.Int).SetBytes(reverseBytes(b))
	n.Mod(n, pBig)
	le := reverseBytes(n.Bytes())
	return FromBytes(le)
}

// Random draws a uniformly random field element by rejection-sampling
// 32-byte strings below p.
func Random() (Fp, error) {
	var buf [Bytes]byte
	for {
		if _, err := rand.Read(buf[:]); err != nil {
			return Fp{}, fmt.Errorf("%w: %v", ErrRngFailure, err)
		}
		v := FromBytesLE(buf[:])
		if v.Less(P) {
			return Fp{v: v}, nil
		}
	}
}

// Value exposes the underlying reduced U256.
func (x Fp) Value() U256 { return x.v }

// Add returns x+y.
func (x Fp) Add(y Fp) Fp { return Fp{v: Add(x.v, y.v)} }

// Sub returns x-y.
func (x Fp) Sub(y Fp) Fp { return Fp{v: Sub(x.v, y.v)} }

// Neg returns -x.
func (x Fp) Neg() Fp { return Fp{v: Neg(x.v)} }

// Mul returns x*y.
func (x Fp) Mul(y Fp) Fp { return Fp{v: Mul(x.v, y.v)} }

// Sqr returns x^2.
func (x Fp) Sqr() Fp { return Fp{v: Sqr(x.v)} }

// Pow5 returns x^5 via the specialized S-box chain.
func (x Fp) Pow5() Fp { return Fp{v: Pow5(x.v)} }

// Pow returns x^exp via the constant-time Montgomery ladder.
func (x Fp) Pow(exp U256) Fp { return Fp{v: Pow(x.v, exp)} }

// PowUint64 returns x^exp for a small exponent.
func (x Fp) PowUint64(exp uint64) Fp { return Fp{v: PowUint64(x.v, exp)} }

// Inv returns x^-1, or ErrDivisionByZero if x is zero.
func (x Fp) Inv() (Fp, error) {
	if x.IsZero() {
		return Fp{}, ErrDivisionByZero
	}
	return Fp{v: Inv(x.v)}, nil
}

// IsZero reports whether x is the additive identity.
func (x Fp) IsZero() bool { return x.v.IsZero() }

// IsOne reports whether x is the multiplicative identity.
func (x Fp) IsOne() bool { return x.v.IsOne() }

// Equal reports whether x == y.
func (x Fp) Equal(y Fp) bool { return x.v.Equal(y.v) }

// ToBytesLE serializes x to 32 little-endian bytes.
func (x Fp) ToBytesLE() [BYTES]byte { return x.v.ToBytesLE() }

// String renders x in decimal, for debugging and test failure messages.
func (x Fp) String() string {
	return u256ToDecimal(x.v)
}
