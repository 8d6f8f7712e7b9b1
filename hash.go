package rescue

import (
	"fmt"

	"github.com/umbra-defi/rescue/internal/fp"
)

// Hash is a Rescue-Prime sponge instance with a fixed rate, capacity, and
// output length.
type Hash struct {
	desc         *Desc
	rate         int
	capacity     int
	digestLength int
}

// NewHash builds a sponge with the given rate, capacity, and output
// length (digestLength must be <= rate+capacity).
func NewHash(rate, capacity, digestLength int) (*Hash, error) {
	if rate <= 0 {
		return nil, fmt.Errorf("%w: rate must be positive", ErrInvalidArgument)
	}
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity must be positive", ErrInvalidArgument)
	}
	if digestLength <= 0 || digestLength > rate+capacity {
		return nil, fmt.Errorf("%w: digest length must be in (0, rate+capacity]", ErrInvalidArgument)
	}
	desc, err := NewHashDesc(rate+capacity, capacity)
	if err != nil {
		return nil, err
	}
	return &Hash{desc: desc, rate: rate, capacity: capacity, digestLength: digestLength}, nil
}

// NewDefaultHash builds the standard rate=7, capacity=5, digestLength=5
// instance (state width m=12).
func NewDefaultHash() (*Hash, error) {
	return NewHash(7, 5, 5)
}

// Digest hashes message and returns digestLength field elements. The
// message is padded (Algorithm 2): append a single one element, then zero
// elements, up to the next multiple of rate — applied even to an empty
// message, which still absorbs one full padded block.
func (h *Hash) Digest(message []fp.Fp) ([]fp.Fp, error) {
	padded := make([]fp.Fp, 0, len(message)+h.rate)
	padded = append(padded, message...)
	padded = append(padded, fp.FpOne)
	for len(padded)%h.rate != 0 {
		padded = append(padded, fp.FpZero)
	}

	state := NewColumnVector(make([]fp.Fp, h.rate+h.capacity))

	for offset := 0; offset < len(padded); offset += h.rate {
		chunk := make([]fp.Fp, h.rate+h.capacity)
		copy(chunk, padded[offset:offset+h.rate])
		chunkMat := NewColumnVector(chunk)

		absorbed, err := state.Add(chunkMat, true) // sponge absorb is always constant-time
		if err != nil {
			return nil, err
		}
		state, err = h.desc.Permute(absorbed)
		if err != nil {
			return nil, err
		}
	}

	out, err := state.ToVector()
	if err != nil {
		return nil, err
	}
	return out[:h.digestLength], nil
}
