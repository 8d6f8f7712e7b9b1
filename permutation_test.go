package rescue

import (
	"errors"
	"testing"

	"github.com/umbra-defi/rescue/internal/fp"
)

func TestHashPermuteInverseRoundTrip(t *testing.T) {
	d, err := NewHashDesc(12, 5)
	if err != nil {
		t.Fatal(err)
	}
	state := NewColumnVector(vec(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12))

	permuted, err := d.Permute(state)
	if err != nil {
		t.Fatal(err)
	}
	back, err := d.PermuteInverse(permuted)
	if err != nil {
		t.Fatal(err)
	}
	if !back.Equal(state) {
		t.Fatalf("PermuteInverse(Permute(state)) != state")
	}
}

func TestCipherPermuteInverseRoundTrip(t *testing.T) {
	d, err := NewCipherDesc([]fp.Fp{fp.FromUint64(1), fp.FromUint64(2), fp.FromUint64(3), fp.FromUint64(4), fp.FromUint64(5)})
	if err != nil {
		t.Fatal(err)
	}
	state := NewColumnVector(vec(9, 8, 7, 6, 5))

	permuted, err := d.Permute(state)
	if err != nil {
		t.Fatal(err)
	}
	back, err := d.PermuteInverse(permuted)
	if err != nil {
		t.Fatal(err)
	}
	if !back.Equal(state) {
		t.Fatalf("PermuteInverse(Permute(state)) != state")
	}
}

func TestPermuteIsDeterministic(t *testing.T) {
	d, err := NewHashDesc(12, 5)
	if err != nil {
		t.Fatal(err)
	}
	state := NewColumnVector(vec(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12))

	a, err := d.Permute(state)
	if err != nil {
		t.Fatal(err)
	}
	b, err := d.Permute(state)
	if err != nil {
		t.Fatal(err)
	}
	if !a.Equal(b) {
		t.Fatalf("Permute is not deterministic for identical inputs")
	}
}

func TestCipherDescRejectsShortKey(t *testing.T) {
	if _, err := NewCipherDesc([]fp.Fp{fp.FromUint64(1)}); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("err = %v, want ErrInvalidArgument", err)
	}
}

func TestHashDescRejectsCapacityNotLessThanM(t *testing.T) {
	if _, err := NewHashDesc(5, 5); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("err = %v, want ErrInvalidArgument", err)
	}
}
