package rescue

import "testing"

func TestShakeXOFSingleShotSqueeze(t *testing.T) {
	x := newShakeXOF("test seed")
	if _, err := x.Squeeze(32); err != nil {
		t.Fatal(err)
	}
	if _, err := x.Squeeze(32); err != ErrAlreadyFinalized {
		t.Fatalf("second Squeeze err = %v, want ErrAlreadyFinalized", err)
	}
}

func TestShakeXOFIsDeterministicForSameSeed(t *testing.T) {
	a, err := newShakeXOF("same seed").Squeeze(48)
	if err != nil {
		t.Fatal(err)
	}
	b, err := newShakeXOF("same seed").Squeeze(48)
	if err != nil {
		t.Fatal(err)
	}
	if string(a) != string(b) {
		t.Fatalf("same seed produced different output")
	}
}

func TestShakeXOFDiffersForDifferentSeeds(t *testing.T) {
	a, err := newShakeXOF("seed one").Squeeze(48)
	if err != nil {
		t.Fatal(err)
	}
	b, err := newShakeXOF("seed two").Squeeze(48)
	if err != nil {
		t.Fatal(err)
	}
	if string(a) == string(b) {
		t.Fatalf("different seeds produced identical output")
	}
}

func TestGenerateNonceLength(t *testing.T) {
	n, err := GenerateNonce()
	if err != nil {
		t.Fatal(err)
	}
	if len(n) != 16 {
		t.Fatalf("len(nonce) = %d, want 16", len(n))
	}
}
