package ct

import (
	"math/big"

	"github.com/umbra-defi/rescue/internal/fp"
)

func leBytesToBig(b []byte) *big.Int {
	n := new(big.Int)
	for i := len(b) - 1; i >= 0; i-- {
		n.Lsh(n, 8)
		n.Or(n, big.NewInt(int64(b[i])))
	}
	return n
}

var pBig = func() *big.Int {
	b := fp.P.ToBytesLE()
	return leBytesToBig(b[:])
}()

// fieldBits is the bit width used for the two's-complement bit-adder:
// one more than p's bit length, enough headroom for a+b (< 2p) or the
// borrow-compensated a-b+p without overflowing the fixed-width adder.
var fieldBits = GetBinSize(pBig) + 1

func toBits(x fp.Fp) []bool {
	b := x.ToBytesLE()
	return ToBinLE(leBytesToBig(b[:]), fieldBits)
}

func fromBits(bits []bool) fp.Fp {
	n := FromBinLE(bits)
	be := n.Bytes() // big-endian, no leading zero padding
	le := make([]byte, len(be))
	for i, v := range be {
		le[len(be)-1-i] = v
	}
	return fp.FromBytes(le)
}

// FieldAdd computes (a+b) mod p by rippling the sum through a fixed-width
// bit-adder and conditionally subtracting p, the same two-step shape as the
// reference's field_add: add unconditionally, then select between the raw
// sum and the reduced difference with Select, which branches on the
// borrow flag.
func FieldAdd(a, b fp.Fp) fp.Fp {
	abits := toBits(a)
	bbits := toBits(b)
	pbits := ToBinLE(pBig, fieldBits)

	sum, _ := Adder(abits, bbits, false)
	diff, noBorrow := Adder(sum, pbits, true)

	result := Select(noBorrow, diff, sum)
	return fromBits(result)
}

// FieldSub computes (a-b) mod p: subtract, then conditionally add p back if
// the subtraction borrowed (a < b).
func FieldSub(a, b fp.Fp) fp.Fp {
	abits := toBits(a)
	bbits := toBits(b)
	pbits := ToBinLE(pBig, fieldBits)

	diff, noBorrow := Adder(abits, bbits, true)
	restored, _ := Adder(diff, pbits, false)

	result := Select(noBorrow, diff, restored)
	return fromBits(result)
}
