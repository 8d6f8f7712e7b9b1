package fp

import "testing"

func TestAddSubRoundTrip(t *testing.T) {
	a := FromUint64(123456789)
	b := FromUint64(987654321)

	sum := a.Add(b)
	back := sum.Sub(b)
	if !back.Equal(a) {
		t.Fatalf("(a+b)-b = %s, want %s", back, a)
	}
}

func TestNegIsAdditiveInverse(t *testing.T) {
	a := FromUint64(42)
	if !a.Add(a.Neg()).IsZero() {
		t.Fatalf("a + (-a) != 0")
	}
}

func TestMulInvIsOne(t *testing.T) {
	a := FromUint64(7)
	inv, err := a.Inv()
	if err != nil {
		t.Fatalf("Inv: %v", err)
	}
	if !a.Mul(inv).IsOne() {
		t.Fatalf("a * a^-1 != 1")
	}
}

func TestFermatLittleTheorem(t *testing.T) {
	pMinus1 := P.Sub(NewU256(1, 0, 0, 0))
	for _, v := range []uint64{1, 2, 7, 11, 999, 0xdeadbeef} {
		a := FromUint64(v)
		if !a.Pow(pMinus1).IsOne() {
			t.Fatalf("%s^(p-1) != 1", a)
		}
	}
}

func TestInvZeroErrors(t *testing.T) {
	if _, err := FpZero.Inv(); err != ErrDivisionByZero {
		t.Fatalf("Inv(0) error = %v, want ErrDivisionByZero", err)
	}
}

func TestPow5MatchesGenericPow(t *testing.T) {
	a := FromUint64(11)
	got := a.Pow5()
	want := a.PowUint64(5)
	if !got.Equal(want) {
		t.Fatalf("Pow5 = %s, want %s", got, want)
	}
}

func TestPowUint64Exponent0IsOne(t *testing.T) {
	a := FromUint64(999)
	if !a.PowUint64(0).IsOne() {
		t.Fatalf("a^0 != 1")
	}
}

func TestPowUint64Exponent1IsSelf(t *testing.T) {
	a := FromUint64(999)
	if !a.PowUint64(1).Equal(a) {
		t.Fatalf("a^1 != a")
	}
}

func TestFromU256ReducesOutOfRangeValues(t *testing.T) {
	// P+5 should reduce to 5.
	v := P.Add(NewU256(5, 0, 0, 0))
	got := FromU256(v)
	want := FromUint64(5)
	if !got.Equal(want) {
		t.Fatalf("FromU256(p+5) = %s, want %s", got, want)
	}
}

func TestToBytesLERoundTrip(t *testing.T) {
	a := FromUint64(0xdeadbeef)
	b := a.ToBytesLE()
	back := FromBytes(b[:])
	if !back.Equal(a) {
		t.Fatalf("round trip through bytes failed: got %s, want %s", back, a)
	}
}

func TestStringDecimalForSmallValues(t *testing.T) {
	cases := map[uint64]string{
		0:          "0",
		1:          "1",
		9:          "9",
		10:         "10",
		1000000000: "1000000000",
	}
	for v, want := range cases {
		got := FromUint64(v).String()
		if got != want {
			t.Fatalf("String(%d) = %q, want %q", v, got, want)
		}
	}
}

func TestRandomIsBelowP(t *testing.T) {
	for i := 0; i < 64; i++ {
		v, err := Random()
		if err != nil {
			t.Fatalf("Random: %v", err)
		}
		if !v.Value().Less(P) {
			t.Fatalf("Random produced a value >= p")
		}
	}
}

func TestMulWideAndSqrWideAgree(t *testing.T) {
	a := NewU256(0x0123456789abcdef, 0xfedcba9876543210, 1, 2)
	got := SqrWide(a)
	want := MulWide(a, a)
	if got != want {
		t.Fatalf("SqrWide(a) != MulWide(a,a)")
	}
}
