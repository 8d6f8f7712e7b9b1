package rescue

import (
	"errors"
	"testing"

	"github.com/umbra-defi/rescue/internal/fp"
)

func testSecret() [CipherSecretSize]byte {
	var s [CipherSecretSize]byte
	for i := range s {
		s[i] = byte(i)
	}
	return s
}

func TestCipherEncryptDecryptRoundTrip(t *testing.T) {
	c, err := NewCipher(testSecret())
	if err != nil {
		t.Fatal(err)
	}
	var nonce [CipherNonceSize]byte // all-zero nonce

	plaintext := []fp.Fp{fp.FromUint64(1), fp.FromUint64(2), fp.FromUint64(3), fp.FromUint64(4), fp.FromUint64(5)}

	ciphertext, err := c.EncryptRaw(plaintext, nonce)
	if err != nil {
		t.Fatal(err)
	}
	if len(ciphertext) != len(plaintext) {
		t.Fatalf("len(ciphertext) = %d, want %d", len(ciphertext), len(plaintext))
	}

	decrypted, err := c.DecryptRaw(ciphertext, nonce)
	if err != nil {
		t.Fatal(err)
	}
	for i := range plaintext {
		if !plaintext[i].Equal(decrypted[i]) {
			t.Fatalf("decrypted[%d] = %s, want %s", i, decrypted[i], plaintext[i])
		}
	}
}

func TestCipherSpansMultipleBlocks(t *testing.T) {
	c, err := NewCipher(testSecret())
	if err != nil {
		t.Fatal(err)
	}
	var nonce [CipherNonceSize]byte

	plaintext := vec(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12) // 3 blocks of 5, last partial

	ciphertext, err := c.EncryptRaw(plaintext, nonce)
	if err != nil {
		t.Fatal(err)
	}
	decrypted, err := c.DecryptRaw(ciphertext, nonce)
	if err != nil {
		t.Fatal(err)
	}
	for i := range plaintext {
		if !plaintext[i].Equal(decrypted[i]) {
			t.Fatalf("decrypted[%d] = %s, want %s", i, decrypted[i], plaintext[i])
		}
	}
}

func TestCipherKeystreamDiffersAcrossNonces(t *testing.T) {
	c, err := NewCipher(testSecret())
	if err != nil {
		t.Fatal(err)
	}
	var nonceA, nonceB [CipherNonceSize]byte
	nonceB[0] = 1 // distinct nonce

	plaintext := vec(1, 2, 3, 4, 5)

	ctA, err := c.EncryptRaw(plaintext, nonceA)
	if err != nil {
		t.Fatal(err)
	}
	ctB, err := c.EncryptRaw(plaintext, nonceB)
	if err != nil {
		t.Fatal(err)
	}
	equal := true
	for i := range ctA {
		if !ctA[i].Equal(ctB[i]) {
			equal = false
			break
		}
	}
	if equal {
		t.Fatalf("ciphertexts under distinct nonces collided")
	}
}

func TestCipherEmptyPlaintext(t *testing.T) {
	c, err := NewCipher(testSecret())
	if err != nil {
		t.Fatal(err)
	}
	var nonce [CipherNonceSize]byte
	ct, err := c.EncryptRaw(nil, nonce)
	if err != nil {
		t.Fatal(err)
	}
	if len(ct) != 0 {
		t.Fatalf("len(ct) = %d, want 0", len(ct))
	}
}

func TestNewCipherRejectsWrongSecretLength(t *testing.T) {
	if _, err := deriveKey(make([]byte, 31)); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("err = %v, want ErrInvalidArgument", err)
	}
}

func TestEncryptBytesRejectsWrongNonceLength(t *testing.T) {
	c, err := NewCipher(testSecret())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := c.EncryptBytes(vec(1), make([]byte, 15)); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("err = %v, want ErrInvalidArgument", err)
	}
}

func TestEncryptDecryptSerializedRoundTrip(t *testing.T) {
	c, err := NewCipher(testSecret())
	if err != nil {
		t.Fatal(err)
	}
	var nonce [CipherNonceSize]byte
	plaintext := vec(1, 2, 3, 4, 5)

	serialized, err := c.Encrypt(plaintext, nonce)
	if err != nil {
		t.Fatal(err)
	}
	back, err := c.Decrypt(serialized, nonce)
	if err != nil {
		t.Fatal(err)
	}
	for i := range plaintext {
		if !plaintext[i].Equal(back[i]) {
			t.Fatalf("serialized round trip failed at index %d", i)
		}
	}
}

func TestGenerateNonceProducesDistinctValues(t *testing.T) {
	a, err := GenerateNonce()
	if err != nil {
		t.Fatal(err)
	}
	b, err := GenerateNonce()
	if err != nil {
		t.Fatal(err)
	}
	if a == b {
		t.Fatalf("two independently generated nonces collided (astronomically unlikely unless RNG is broken)")
	}
}
