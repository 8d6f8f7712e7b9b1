package ct

import (
	"math/big"
	"testing"

	"github.com/umbra-defi/rescue/internal/fp"
)

func TestFieldAddMatchesFp(t *testing.T) {
	a := fp.FromUint64(123456789)
	b := fp.FromUint64(987654321)

	got := FieldAdd(a, b)
	want := a.Add(b)
	if !got.Equal(want) {
		t.Fatalf("FieldAdd(%s,%s) = %s, want %s", a, b, got, want)
	}
}

func TestFieldSubMatchesFp(t *testing.T) {
	a := fp.FromUint64(5)
	b := fp.FromUint64(9) // a < b, exercises the borrow/wraparound path

	got := FieldSub(a, b)
	want := a.Sub(b)
	if !got.Equal(want) {
		t.Fatalf("FieldSub(%s,%s) = %s, want %s", a, b, got, want)
	}
}

func TestFieldAddWrapsAroundP(t *testing.T) {
	// p-1 + 2 should wrap to 1.
	pMinus1 := fp.FromU256(fp.P.Sub(fp.NewU256(1, 0, 0, 0)))
	got := FieldAdd(pMinus1, fp.FromUint64(2))
	want := fp.FromUint64(1)
	if !got.Equal(want) {
		t.Fatalf("FieldAdd(p-1, 2) = %s, want %s", got, want)
	}
}

func TestAdderRoundTrip(t *testing.T) {
	n := 64
	a := ToBinLE(big.NewInt(12345), n)
	b := ToBinLE(big.NewInt(6789), n)

	sum, _ := Adder(a, b, false)
	got := FromBinLE(sum)
	if got.Uint64() != 12345+6789 {
		t.Fatalf("Adder sum = %d, want %d", got.Uint64(), 12345+6789)
	}

	diff, noBorrow := Adder(sum, b, true)
	if !noBorrow {
		t.Fatalf("expected no borrow subtracting b back out")
	}
	back := FromBinLE(diff)
	if back.Uint64() != 12345 {
		t.Fatalf("Adder diff = %d, want %d", back.Uint64(), 12345)
	}
}

func TestLt(t *testing.T) {
	n := 64
	small := ToBinLE(big.NewInt(3), n)
	big9 := ToBinLE(big.NewInt(9), n)

	if !Lt(small, big9) {
		t.Fatalf("Lt(3,9) = false, want true")
	}
	if Lt(big9, small) {
		t.Fatalf("Lt(9,3) = true, want false")
	}
}
