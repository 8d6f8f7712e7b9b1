package fp

import "math/bits"

// P is the field prime p = 2^255 - 19.
var P = NewU256(0xffffffffffffffed, 0xffffffffffffffff, 0xffffffffffffffff, 0x7fffffffffffffff)

// PMinus2 is p-2, the Fermat inversion exponent (kept for reference;
// Inv uses the fixed addition chain below rather than a generic Pow call).
var PMinus2 = NewU256(0xffffffffffffffeb, 0xffffffffffffffff, 0xffffffffffffffff, 0x7fffffffffffffff)

// reduceOnce subtracts p once if x >= p, via a constant-time select on the
// borrow flag. Assumes x is in [0, 2p).
func reduceOnce(x U256) U256 {
	diff, borrow := SubWithBorrow(x, P)
	return ctSelectU256(!borrow, diff, x)
}

// reduceFull reduces any x in [0, 2^256) down to [0, p) with two
// conditional subtractions, matching the reference's reduce_full.
func reduceFull(x U256) U256 {
	x = reduceOnce(x)
	x = reduceOnce(x)
	return x
}

// Add computes (a+b) mod p for a, b already in [0, p).
func Add(a, b U256) U256 {
	sum, carry := AddWithCarry(a, b)
	diff, borrow := SubWithBorrow(sum, P)
	useDiff := carry || !borrow
	return ctSelectU256(useDiff, diff, sum)
}

// Sub computes (a-b) mod p for a, b already in [0, p).
func Sub(a, b U256) U256 {
	diff, borrow := SubWithBorrow(a, b)
	sum, _ := AddWithCarry(diff, P)
	return ctSelectU256(borrow, sum, diff)
}

// Neg computes (-a) mod p, returning 0 when a is 0.
func Neg(a U256) U256 {
	diff, _ := SubWithBorrow(P, a)
	return ctSelectU256(a.IsZero(), U256{}, diff)
}

// reduce512 reduces a 512-bit product modulo p, exploiting 2^256 = 38 (mod p).
func reduce512(x U512) U256 {
	low := x.Low()
	high := x.High()

	var result U256
	var carry uint64
	for i := 0; i < Limbs; i++ {
		hi, lo := bits.Mul64(high.L[i], 38)
		var c0, c1 uint64
		lo, c0 = bits.Add64(lo, low.L[i], 0)
		lo, c1 = bits.Add64(lo, carry, 0)
		result.L[i] = lo
		carry = hi + c0 + c1
	}

	// carry here is at most a handful of bits; carry*38 still fits in 64 bits.
	extra := carry * 38
	r, c := AddWithCarry(result, u256FromUint64(extra))
	result = r
	if c {
		r2, c2 := AddWithCarry(result, u256FromUint64(38))
		result = r2
		if c2 {
			result.L[0] += 38
		}
	}

	result = reduceOnce(result)
	result = reduceOnce(result)
	return result
}

// Mul computes (a*b) mod p.
func Mul(a, b U256) U256 {
	return reduce512(MulWide(a, b))
}

// Sqr computes a^2 mod p.
func Sqr(a U256) U256 {
	return reduce512(SqrWide(a))
}

// Pow5 computes a^5 mod p via the specialized two-squarings-one-multiply
// chain, the dominant cost in the Rescue S-box for alpha=5.
func Pow5(a U256) U256 {
	a2 := Sqr(a)
	a4 := Sqr(a2)
	return Mul(a4, a)
}

// ctSelectU256 returns a if cond, else b, without branching on cond.
func ctSelectU256(cond bool, a, b U256) U256 {
	var mask uint64
	if cond {
		mask = ^uint64(0)
	}
	return NewU256(
		(b.L[0]&^mask)|(a.L[0]&mask),
		(b.L[1]&^mask)|(a.L[1]&mask),
		(b.L[2]&^mask)|(a.L[2]&mask),
		(b.L[3]&^mask)|(a.L[3]&mask),
	)
}

// Pow computes base^exp mod p using a 255-bit Montgomery ladder: every
// iteration computes r0*r1, r0^2 and r1^2 and selects both registers, so
// the operation sequence never depends on the exponent's bits.
func Pow(base, exp U256) U256 {
	r0 := One
	r1 := base
	for i := 254; i >= 0; i-- {
		bit := exp.Bit(i)
		r0r1 := Mul(r0, r1)
		r0Sqr := Sqr(r0)
		r1Sqr := Sqr(r1)
		r0 = ctSelectU256(bit, r0r1, r0Sqr)
		r1 = ctSelectU256(bit, r1Sqr, r0r1)
	}
	return r0
}

// PowUint64 computes base^exp mod p with a 64-bit Montgomery ladder.
func PowUint64(base U256, exp uint64) U256 {
	r0 := One
	r1 := base
	for i := 63; i >= 0; i-- {
		bit := (exp>>uint(i))&1 != 0
		r0r1 := Mul(r0, r1)
		r0Sqr := Sqr(r0)
		r1Sqr := Sqr(r1)
		r0 = ctSelectU256(bit, r0r1, r0Sqr)
		r1 = ctSelectU256(bit, r1Sqr, r0r1)
	}
	return r0
}

// Inv computes a^-1 mod p for a != 0 via Fermat's little theorem, using the
// fixed addition chain a^(2^n-1) for n in {2,4,5,10,20,40,50,100,200,250}
// combined with a^11 to reach a^(p-2) = a^(2^255-21). The caller is
// responsible for rejecting a == 0 (see Fp.Inv).
func Inv(a U256) U256 {
	t0 := Mul(Sqr(a), a) // a^3 = a^(2^2-1)

	t1 := Sqr(Sqr(t0))
	t1 = Mul(t1, t0) // a^15 = a^(2^4-1)

	t2 := Sqr(t1)
	t2 = Mul(t2, a) // a^31 = a^(2^5-1)

	t3 := t2
	for i := 0; i < 5; i++ {
		t3 = Sqr(t3)
	}
	t3 = Mul(t3, t2) // a^(2^10-1)

	t4 := t3
	for i := 0; i < 10; i++ {
		t4 = Sqr(t4)
	}
	t4 = Mul(t4, t3) // a^(2^20-1)

	t5 := t4
	for i := 0; i < 20; i++ {
		t5 = Sqr(t5)
	}
	t5 = Mul(t5, t4) // a^(2^40-1)

	t6 := t5
	for i := 0; i < 10; i++ {
		t6 = Sqr(t6)
	}
	t6 = Mul(t6, t3) // a^(2^50-1)

	t7 := t6
	for i := 0; i < 50; i++ {
		t7 = Sqr(t7)
	}
	t7 = Mul(t7, t6) // a^(2^100-1)

	t8 := t7
	for i := 0; i < 100; i++ {
		t8 = Sqr(t8)
	}
	t8 = Mul(t8, t7) // a^(2^200-1)

	t9 := t8
	for i := 0; i < 50; i++ {
		t9 = Sqr(t9)
	}
	t9 = Mul(t9, t6) // a^(2^250-1)

	t10 := t9
	for i := 0; i < 5; i++ {
		t10 = Sqr(t10)
	} // a^(2^255-32)

	a2 := Sqr(a)
	a3 := Mul(a2, a)
	a8 := Sqr(Sqr(a2))
	a11 := Mul(a8, a3)

	return Mul(t10, a11) // a^(2^255-21) = a^(p-2)
}

// CtEq reports whether a == b via a branch-free OR-of-XORs.
func CtEq(a, b U256) bool {
	diff := a.L[0] ^ b.L[0]
	diff |= a.L[1] ^ b.L[1]
	diff |= a.L[2] ^ b.L[2]
	diff |= a.L[3] ^ b.L[3]
	return diff == 0
}

// CtLessThan reports whether a < b via subtraction-borrow.
func CtLessThan(a, b U256) bool {
	_, borrow := SubWithBorrow(a, b)
	return borrow
}

// IsValidFieldElement reports whether x < p.
func IsValidFieldElement(x U256) bool {
	return x.Less(P)
}
