// Package fp implements 256-bit unsigned-integer and field arithmetic
// specialized for p = 2^255 - 19, the Curve25519 base field.
package fp

import "math/bits"

// Limbs is the number of 64-bit limbs in a U256.
const Limbs = 4

// Bytes is the number of bytes in a U256's little-endian encoding.
const Bytes = 32

// U256 is a 256-bit unsigned integer held as four 64-bit little-endian
// limbs: value = L[0] + L[1]*2^64 + L[2]*2^128 + L[3]*2^192. There is no
// hidden normalization; callers that need a canonical [0,p) value work at
// the Fp layer.
type U256 struct {
	L [Limbs]uint64
}

// U512 is the 512-bit intermediate produced by wide multiply/square.
type U512 struct {
	L [8]uint64
}

// Zero is the additive identity.
var Zero = U256{}

// One is the multiplicative identity.
var One = U256{L: [4]uint64{1, 0, 0, 0}}

// NewU256 builds a U256 from four little-endian limbs.
func NewU256(l0, l1, l2, l3 uint64) U256 {
	return U256{L: [4]uint64{l0, l1, l2, l3}}
}

// u256FromUint64 widens a 64-bit value.
func u256FromUint64(v uint64) U256 {
	return U256{L: [4]uint64{v, 0, 0, 0}}
}

// IsZero reports whether x is zero.
func (x U256) IsZero() bool {
	return (x.L[0] | x.L[1] | x.L[2] | x.L[3]) == 0
}

// IsOne reports whether x equals one.
func (x U256) IsOne() bool {
	return x.L[0] == 1 && (x.L[1]|x.L[2]|x.L[3]) == 0
}

// Bit returns bit pos (0 = LSB), or false for pos >= 256.
func (x U256) Bit(pos int) bool {
	if pos < 0 || pos >= 256 {
		return false
	}
	return (x.L[pos/64]>>uint(pos%64))&1 != 0
}

// BitLen returns the position of the highest set bit, plus one.
func (x U256) BitLen() int {
	for i := Limbs - 1; i >= 0; i-- {
		if x.L[i] != 0 {
			return i*64 + bits.Len64(x.L[i])
		}
	}
	return 0
}

// Equal reports whether x == y.
func (x U256) Equal(y U256) bool {
	return x.L[0] == y.L[0] && x.L[1] == y.L[1] && x.L[2] == y.L[2] && x.L[3] == y.L[3]
}

// Less reports whether x < y, comparing from the most significant limb down.
func (x U256) Less(y U256) bool {
	for i := Limbs - 1; i >= 0; i-- {
		if x.L[i] != y.L[i] {
			return x.L[i] < y.L[i]
		}
	}
	return false
}

// AddWithCarry returns x+y and the carry-out bit.
func AddWithCarry(x, y U256) (U256, bool) {
	var r U256
	var carry uint64
	for i := 0; i < Limbs; i++ {
		var c0, c1 uint64
		r.L[i], c0 = bits.Add64(x.L[i], carry, 0)
		r.L[i], c1 = bits.Add64(r.L[i], y.L[i], 0)
		carry = c0 + c1
	}
	return r, carry != 0
}

// SubWithBorrow returns x-y and the borrow-out bit.
func SubWithBorrow(x, y U256) (U256, bool) {
	var r U256
	var borrow uint64
	for i := 0; i < Limbs; i++ {
		var b0, b1 uint64
		r.L[i], b0 = bits.Sub64(x.L[i], borrow, 0)
		r.L[i], b1 = bits.Sub64(r.L[i], y.L[i], 0)
		borrow = b0 + b1
	}
	return r, borrow != 0
}

// Add returns x+y, wrapping mod 2^256.
func (x U256) Add(y U256) U256 {
	r, _ := AddWithCarry(x, y)
	return r
}

// Sub returns x-y, wrapping mod 2^256.
func (x U256) Sub(y U256) U256 {
	r, _ := SubWithBorrow(x, y)
	return r
}

// And, Or, Xor, Not are bitwise operations.
func (x U256) And(y U256) U256 {
	return NewU256(x.L[0]&y.L[0], x.L[1]&y.L[1], x.L[2]&y.L[2], x.L[3]&y.L[3])
}

func (x U256) Or(y U256) U256 {
	return NewU256(x.L[0]|y.L[0], x.L[1]|y.L[1], x.L[2]|y.L[2], x.L[3]|y.L[3])
}

func (x U256) Xor(y U256) U256 {
	return NewU256(x.L[0]^y.L[0], x.L[1]^y.L[1], x.L[2]^y.L[2], x.L[3]^y.L[3])
}

func (x U256) Not() U256 {
	return NewU256(^x.L[0], ^x.L[1], ^x.L[2], ^x.L[3])
}

// Shl returns x << n for 0 <= n < 256.
func (x U256) Shl(n uint) U256 {
	if n >= 256 {
		return U256{}
	}
	if n == 0 {
		return x
	}
	var r U256
	limbShift := n / 64
	bitShift := n % 64
	if bitShift == 0 {
		for i := int(limbShift); i < Limbs; i++ {
			r.L[i] = x.L[i-int(limbShift)]
		}
		return r
	}
	for i := int(limbShift); i < Limbs; i++ {
		r.L[i] = x.L[i-int(limbShift)] << bitShift
		if i > int(limbShift) {
			r.L[i] |= x.L[i-int(limbShift)-1] >> (64 - bitShift)
		}
	}
	return r
}

// Shr returns x >> n for 0 <= n < 256.
func (x U256) Shr(n uint) U256 {
	if n >= 256 {
		return U256{}
	}
	if n == 0 {
		return x
	}
	var r U256
	limbShift := n / 64
	bitShift := n % 64
	if bitShift == 0 {
		for i := 0; i < Limbs-int(limbShift); i++ {
			r.L[i] = x.L[i+int(limbShift)]
		}
		return r
	}
	for i := 0; i < Limbs-int(limbShift); i++ {
		r.L[i] = x.L[i+int(limbShift)] >> bitShift
		if i+int(limbShift)+1 < Limbs {
			r.L[i] |= x.L[i+int(limbShift)+1] << (64 - bitShift)
		}
	}
	return r
}

// ToBytesLE serializes x to 32 little-endian bytes.
func (x U256) ToBytesLE() [Bytes]byte {
	var out [Bytes]byte
	for i := 0; i < Limbs; i++ {
		for j := 0; j < 8; j++ {
			out[i*8+j] = byte(x.L[i] >> (j * 8))
		}
	}
	return out
}

// FromBytesLE deserializes up to 32 little-endian bytes (shorter inputs are
// zero-extended, longer inputs are truncated, matching the reference).
func FromBytesLE(b []byte) U256 {
	var x U256
	n := len(b)
	if n > Bytes {
		n = Bytes
	}
	for i := 0; i < n; i++ {
		x.L[i/8] |= uint64(b[i]) << uint((i % 8) * 8)
	}
	return x
}

// Low returns the low 256 bits of a U512.
func (x U512) Low() U256 {
	return NewU256(x.L[0], x.L[1], x.L[2], x.L[3])
}

// High returns the high 256 bits of a U512.
func (x U512) High() U256 {
	return NewU256(x.L[4], x.L[5], x.L[6], x.L[7])
}

// MulWide computes the full 512-bit product of a and b via schoolbook
// multiplication using math/bits' 64x64->128 primitives (the portable Go
// equivalent of the reference's __uint128_t fast path).
func MulWide(a, b U256) U512 {
	var r U512
	for i := 0; i < Limbs; i++ {
		var carry uint64
		for j := 0; j < Limbs; j++ {
			hi, lo := bits.Mul64(a.L[i], b.L[j])
			var c0, c1 uint64
			lo, c0 = bits.Add64(lo, r.L[i+j], 0)
			lo, c1 = bits.Add64(lo, carry, 0)
			r.L[i+j] = lo
			carry = hi + c0 + c1
		}
		r.L[i+Limbs] = carry
	}
	return r
}

// SqrWide computes the full 512-bit square of a. Implemented directly atop
// MulWide rather than the reference's cross-term-doubling trick: the
// schoolbook product already yields the identical 512-bit result, and
// math/bits' wide multiply makes the extra bookkeeping unnecessary.
func SqrWide(a U256) U512 {
	return MulWide(a, a)
}
