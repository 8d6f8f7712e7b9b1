package rescue

import (
	"errors"
	"testing"

	"github.com/umbra-defi/rescue/internal/fp"
)

func vec(vals ...uint64) []fp.Fp {
	out := make([]fp.Fp, len(vals))
	for i, v := range vals {
		out[i] = fp.FromUint64(v)
	}
	return out
}

func TestIdentityMatMul(t *testing.T) {
	m, err := NewMatrixFromRows([][]fp.Fp{vec(1, 2), vec(3, 4)})
	if err != nil {
		t.Fatal(err)
	}
	id := Identity(2)
	got, err := id.MatMul(m)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(m) {
		t.Fatalf("identity * m != m")
	}
}

func TestMatMulShapeMismatch(t *testing.T) {
	a := NewMatrix(2, 3)
	b := NewMatrix(2, 3)
	if _, err := a.MatMul(b); !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("err = %v, want ErrShapeMismatch", err)
	}
}

func TestAddSubRoundTripBothModes(t *testing.T) {
	a, _ := NewMatrixFromRows([][]fp.Fp{vec(1, 2, 3)})
	b, _ := NewMatrixFromRows([][]fp.Fp{vec(4, 5, 6)})

	for _, constantTime := range []bool{false, true} {
		sum, err := a.Add(b, constantTime)
		if err != nil {
			t.Fatal(err)
		}
		back, err := sum.Sub(b, constantTime)
		if err != nil {
			t.Fatal(err)
		}
		if !back.Equal(a) {
			t.Fatalf("constantTime=%v: (a+b)-b != a", constantTime)
		}
	}
}

func TestDetOfIdentityIsOne(t *testing.T) {
	id := Identity(4)
	det, err := id.Det()
	if err != nil {
		t.Fatal(err)
	}
	if !det.IsOne() {
		t.Fatalf("det(I) = %s, want 1", det)
	}
}

func TestDetOfSingularMatrixIsZero(t *testing.T) {
	m, err := NewMatrixFromRows([][]fp.Fp{vec(1, 2), vec(2, 4)})
	if err != nil {
		t.Fatal(err)
	}
	det, err := m.Det()
	if err != nil {
		t.Fatal(err)
	}
	if !det.IsZero() {
		t.Fatalf("det of singular matrix = %s, want 0", det)
	}
}

func TestDetNonSquareErrors(t *testing.T) {
	m := NewMatrix(2, 3)
	if _, err := m.Det(); err != ErrNotSquare {
		t.Fatalf("err = %v, want ErrNotSquare", err)
	}
}

func TestToVectorRequiresSingleColumn(t *testing.T) {
	m := NewMatrix(2, 3)
	if _, err := m.ToVector(); err != ErrNotColumnVector {
		t.Fatalf("err = %v, want ErrNotColumnVector", err)
	}
}

func TestTransposeTwice(t *testing.T) {
	m, _ := NewMatrixFromRows([][]fp.Fp{vec(1, 2, 3), vec(4, 5, 6)})
	got := m.Transpose().Transpose()
	if !got.Equal(m) {
		t.Fatalf("transpose twice != original")
	}
}

func TestPowUint64AlphaFivePath(t *testing.T) {
	m, _ := NewMatrixFromRows([][]fp.Fp{vec(2, 3)})
	got := m.PowUint64(5)
	want := m.Pow(fp.NewU256(5, 0, 0, 0))
	if !got.Equal(want) {
		t.Fatalf("PowUint64(5) fast path disagrees with generic Pow")
	}
}
