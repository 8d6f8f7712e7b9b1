package rescue

import (
	"fmt"

	"github.com/umbra-defi/rescue/internal/ct"
	"github.com/umbra-defi/rescue/internal/fp"
)

// CipherSecretSize, CipherNonceSize, and CipherBlockSize fix the shapes the
// CTR construction operates on: a 32-byte shared secret, a 16-byte nonce,
// and a 5-field-element block (the cipher's key schedule is always built
// from a 5-element KDF output).
const (
	CipherSecretSize = 32
	CipherNonceSize  = 16
	CipherBlockSize  = 5
)

// Cipher is a Rescue CTR-mode stream cipher keyed by a 32-byte shared
// secret via the NIST SP 800-56C-shaped KDF below.
type Cipher struct {
	desc *Desc
}

// NewCipher derives a cipher key from a 32-byte shared secret and builds
// the corresponding permutation schedule.
func NewCipher(sharedSecret [CipherSecretSize]byte) (*Cipher, error) {
	key, err := deriveKey(sharedSecret[:])
	if err != nil {
		return nil, err
	}
	desc, err := NewCipherDesc(key)
	if err != nil {
		return nil, err
	}
	return &Cipher{desc: desc}, nil
}

// deriveKey implements the NIST SP 800-56C Option 1-shaped KDF: hash
// [counter=1, Z=shared_secret, FixedInfo=L=BlockSize] through the default
// sponge (rate=7, capacity=5, digest=5) to produce the cipher's 5-element key.
func deriveKey(sharedSecret []byte) ([]fp.Fp, error) {
	if len(sharedSecret) != CipherSecretSize {
		return nil, fmt.Errorf("%w: shared secret must be %d bytes", ErrInvalidArgument, CipherSecretSize)
	}
	hasher, err := NewDefaultHash()
	if err != nil {
		return nil, err
	}
	secretValue := fp.FromBytes(sharedSecret)
	kdfInput := []fp.Fp{
		fp.FromUint64(1),
		secretValue,
		fp.FromUint64(CipherBlockSize),
	}
	return hasher.Digest(kdfInput)
}

// generateCounter builds the per-block counter vectors [nonce, blockIndex,
// 0, 0, 0] that CTR mode permutes into a keystream block.
func generateCounter(nonce fp.Fp, nBlocks int) []fp.Fp {
	counter := make([]fp.Fp, 0, nBlocks*CipherBlockSize)
	for block := 0; block < nBlocks; block++ {
		counter = append(counter, nonce, fp.FromUint64(uint64(block)))
		for j := 2; j < CipherBlockSize; j++ {
			counter = append(counter, fp.FpZero)
		}
	}
	return counter
}

// EncryptRaw XORs (field-adds) plaintext with the Rescue CTR keystream
// derived from nonce, returning one field element of ciphertext per
// plaintext element.
func (c *Cipher) EncryptRaw(plaintext []fp.Fp, nonce [CipherNonceSize]byte) ([]fp.Fp, error) {
	if len(plaintext) == 0 {
		return nil, nil
	}
	return c.processRaw(plaintext, nonce, true)
}

// DecryptRaw inverts EncryptRaw.
func (c *Cipher) DecryptRaw(ciphertext []fp.Fp, nonce [CipherNonceSize]byte) ([]fp.Fp, error) {
	if len(ciphertext) == 0 {
		return nil, nil
	}
	return c.processRaw(ciphertext, nonce, false)
}

func (c *Cipher) processRaw(data []fp.Fp, nonce [CipherNonceSize]byte, encrypt bool) ([]fp.Fp, error) {
	nBlocks := (len(data) + CipherBlockSize - 1) / CipherBlockSize
	nonceElem := fp.FromBytes(nonce[:])
	counter := generateCounter(nonceElem, nBlocks)

	out := make([]fp.Fp, 0, len(data))
	for block := 0; block < nBlocks; block++ {
		offset := block * CipherBlockSize
		blockCounter := counter[offset : offset+CipherBlockSize]
		keystream, err := c.desc.Permute(NewColumnVector(blockCounter))
		if err != nil {
			return nil, err
		}
		ks, err := keystream.ToVector()
		if err != nil {
			return nil, err
		}

		start := block * CipherBlockSize
		end := start + CipherBlockSize
		if end > len(data) {
			end = len(data)
		}
		for i := start; i < end; i++ {
			idx := i - start
			if encrypt {
				out = append(out, ct.FieldAdd(data[i], ks[idx]))
			} else {
				out = append(out, ct.FieldSub(data[i], ks[idx]))
			}
		}
	}
	return out, nil
}

// Encrypt serializes EncryptRaw's output to 32-byte-per-element ciphertext.
func (c *Cipher) Encrypt(plaintext []fp.Fp, nonce [CipherNonceSize]byte) ([][fp.BYTES]byte, error) {
	raw, err := c.EncryptRaw(plaintext, nonce)
	if err != nil {
		return nil, err
	}
	out := make([][fp.BYTES]byte, len(raw))
	for i, elem := range raw {
		out[i] = elem.ToBytesLE()
	}
	return out, nil
}

// Decrypt deserializes 32-byte-per-element ciphertext and inverts Encrypt.
func (c *Cipher) Decrypt(ciphertext [][fp.BYTES]byte, nonce [CipherNonceSize]byte) ([]fp.Fp, error) {
	raw := make([]fp.Fp, len(ciphertext))
	for i, b := range ciphertext {
		raw[i] = fp.FromBytes(b[:])
	}
	return c.DecryptRaw(raw, nonce)
}

// EncryptBytes and DecryptBytes accept the nonce as a slice, validating its
// length, for callers that did not already have a [16]byte in hand.
func (c *Cipher) EncryptBytes(plaintext []fp.Fp, nonce []byte) ([][fp.BYTES]byte, error) {
	n, err := fixedNonce(nonce)
	if err != nil {
		return nil, err
	}
	return c.Encrypt(plaintext, n)
}

func (c *Cipher) DecryptBytes(ciphertext [][fp.BYTES]byte, nonce []byte) ([]fp.Fp, error) {
	n, err := fixedNonce(nonce)
	if err != nil {
		return nil, err
	}
	return c.Decrypt(ciphertext, n)
}

func fixedNonce(nonce []byte) ([CipherNonceSize]byte, error) {
	var out [CipherNonceSize]byte
	if len(nonce) != CipherNonceSize {
		return out, fmt.Errorf("%w: nonce must be %d bytes", ErrInvalidArgument, CipherNonceSize)
	}
	copy(out[:], nonce)
	return out, nil
}
