package rescue

import (
	"crypto/rand"
	"fmt"

	"golang.org/x/crypto/sha3"

	"github.com/umbra-defi/rescue/internal/fp"
)

// shakeXOF wraps a SHAKE256 state, enforcing the reference's single-shot
// squeeze: once Squeeze has been called, the absorbed input is finalized
// and a second call is rejected rather than silently continuing the
// stream, matching @arcium-hq/client's Shake256.xof behavior.
type shakeXOF struct {
	state     sha3.ShakeHash
	finalized bool
}

// newShakeXOF seeds a SHAKE256 state with the given domain string.
func newShakeXOF(seed string) *shakeXOF {
	s := sha3.NewShake256()
	s.Write([]byte(seed))
	return &shakeXOF{state: s}
}

// Squeeze returns the first length bytes of output. It may be called at
// most once per shakeXOF.
func (x *shakeXOF) Squeeze(length int) ([]byte, error) {
	if x.finalized {
		return nil, ErrAlreadyFinalized
	}
	x.finalized = true
	out := make([]byte, length)
	if _, err := x.state.Read(out); err != nil {
		return nil, fmt.Errorf("rescue: xof squeeze failed: %w", err)
	}
	return out, nil
}

// randomBytes fills and returns n bytes of OS randomness.
func randomBytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRngFailure, err)
	}
	return buf, nil
}

// randomFieldElement draws a uniformly random element of F_p.
func randomFieldElement() (fp.Fp, error) {
	return fp.Random()
}

// GenerateNonce returns 16 bytes of fresh randomness suitable for use as a
// CTR cipher nonce.
func GenerateNonce() ([16]byte, error) {
	var out [16]byte
	b, err := randomBytes(16)
	if err != nil {
		return out, err
	}
	copy(out[:], b)
	return out, nil
}
