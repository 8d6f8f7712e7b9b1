package rescue

import (
	"errors"
	"testing"
)

func TestHashIsDeterministic(t *testing.T) {
	h, err := NewDefaultHash()
	if err != nil {
		t.Fatal(err)
	}
	msg := vec(1, 2, 3, 4, 5)

	a, err := h.Digest(msg)
	if err != nil {
		t.Fatal(err)
	}
	b, err := h.Digest(msg)
	if err != nil {
		t.Fatal(err)
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			t.Fatalf("digest[%d] differs across identical calls", i)
		}
	}
}

func TestHashAvalanche(t *testing.T) {
	h, err := NewDefaultHash()
	if err != nil {
		t.Fatal(err)
	}
	a, err := h.Digest(vec(1, 2, 3, 4, 5))
	if err != nil {
		t.Fatal(err)
	}
	b, err := h.Digest(vec(1, 2, 3, 4, 6)) // one-element perturbation
	if err != nil {
		t.Fatal(err)
	}
	equal := true
	for i := range a {
		if !a[i].Equal(b[i]) {
			equal = false
			break
		}
	}
	if equal {
		t.Fatalf("digests of differing messages collided")
	}
}

func TestHashPaddingDistinguishesLengths(t *testing.T) {
	h, err := NewDefaultHash()
	if err != nil {
		t.Fatal(err)
	}
	// "1,2,3" and "1,2,3,0" must not hash the same despite differing only
	// by a trailing zero, since Algorithm 2's padding is length-sensitive.
	a, err := h.Digest(vec(1, 2, 3))
	if err != nil {
		t.Fatal(err)
	}
	b, err := h.Digest(vec(1, 2, 3, 0))
	if err != nil {
		t.Fatal(err)
	}
	equal := true
	for i := range a {
		if !a[i].Equal(b[i]) {
			equal = false
			break
		}
	}
	if equal {
		t.Fatalf("padding failed to distinguish differing-length messages")
	}
}

func TestHashEmptyMessageStillAbsorbsOneBlock(t *testing.T) {
	h, err := NewDefaultHash()
	if err != nil {
		t.Fatal(err)
	}
	digest, err := h.Digest(nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(digest) != 5 {
		t.Fatalf("len(digest) = %d, want 5", len(digest))
	}
}

func TestNewHashRejectsBadDigestLength(t *testing.T) {
	if _, err := NewHash(7, 5, 13); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("err = %v, want ErrInvalidArgument", err)
	}
}

func TestNewHashRejectsNonPositiveRateOrCapacity(t *testing.T) {
	if _, err := NewHash(0, 5, 1); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("rate=0: err = %v, want ErrInvalidArgument", err)
	}
	if _, err := NewHash(7, 0, 1); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("capacity=0: err = %v, want ErrInvalidArgument", err)
	}
}

func TestDigestLengthMatchesRequest(t *testing.T) {
	h, err := NewHash(7, 5, 3)
	if err != nil {
		t.Fatal(err)
	}
	digest, err := h.Digest(vec(1, 2, 3))
	if err != nil {
		t.Fatal(err)
	}
	if len(digest) != 3 {
		t.Fatalf("len(digest) = %d, want 3", len(digest))
	}
}
