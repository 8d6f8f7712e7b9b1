package rescue

import (
	"fmt"

	"github.com/umbra-defi/rescue/internal/fp"
)

// descMode tags whether a Desc was built for the cipher or the hash, the
// Go equivalent of the reference's std::variant<CipherMode, HashMode>.
type descMode int

const (
	modeCipher descMode = iota
	modeHash
)

// Desc holds everything derived once at construction time and reused on
// every Permute/PermuteInverse call: the S-box exponents, round count, MDS
// matrix and its inverse, and the expanded round-key schedule.
type Desc struct {
	mode     descMode
	m        int
	capacity int // hash mode only

	alpha        uint64
	alphaInverse fp.U256
	nRounds      int

	mdsMat        *Matrix
	mdsMatInverse *Matrix

	roundKeys []*Matrix // length 2*nRounds+1, each an m x 1 column vector
}

// NewCipherDesc builds a Desc for CTR-cipher use from a key of at least 2
// field elements (the key also fixes the state width m).
func NewCipherDesc(key []fp.Fp) (*Desc, error) {
	if len(key) < 2 {
		return nil, fmt.Errorf("%w: cipher key must have at least 2 elements", ErrInvalidArgument)
	}
	d := &Desc{mode: modeCipher, m: len(key)}
	if err := d.initCommon(key); err != nil {
		return nil, err
	}
	return d, nil
}

// NewHashDesc builds a Desc for sponge-hash use with state width m and
// capacity < m (the remaining rate = m-capacity elements are absorbed per
// permutation call).
func NewHashDesc(m, capacity int) (*Desc, error) {
	if m <= capacity {
		return nil, fmt.Errorf("%w: state size m must be greater than capacity", ErrInvalidArgument)
	}
	d := &Desc{mode: modeHash, m: m, capacity: capacity}
	if err := d.initCommon(nil); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Desc) initCommon(cipherKey []fp.Fp) error {
	alpha, alphaInverse, err := getAlphaAndInverse()
	if err != nil {
		return err
	}
	d.alpha = alpha
	d.alphaInverse = alphaInverse

	d.nRounds = getNRounds(d.mode == modeCipher, uint64(d.capacity), alpha, d.m)

	mds, err := buildCauchyMatrix(d.m)
	if err != nil {
		return err
	}
	d.mdsMat = mds

	mdsInv, err := buildInverseCauchyMatrix(d.m)
	if err != nil {
		return err
	}
	d.mdsMatInverse = mdsInv

	constants, err := d.sampleConstants()
	if err != nil {
		return err
	}

	if d.mode == modeCipher {
		keyVec := NewColumnVector(cipherKey)
		schedule, err := d.rescuePermutation(constants, keyVec)
		if err != nil {
			return err
		}
		d.roundKeys = schedule
	} else {
		d.roundKeys = constants
	}
	return nil
}

// sboxPow picks the S-box exponent for a given round parity: the cipher
// alternates alpha_inverse/alpha, the hash alternates alpha/alpha_inverse.
func (d *Desc) sboxPow(s *Matrix, even bool) *Matrix {
	usesAlpha := (d.mode == modeCipher) != even // cipher: even->inverse,odd->alpha; hash: even->alpha,odd->inverse
	if usesAlpha {
		return s.PowUint64(d.alpha)
	}
	return s.Pow(d.alphaInverse)
}

// rescuePermutation runs the forward permutation round structure, used
// both for the actual message permutation and — fed the sampled round
// constants as "subkeys" and the cipher key as the initial "state" — for
// deriving the cipher's expanded round-key schedule.
func (d *Desc) rescuePermutation(subkeys []*Matrix, state *Matrix) ([]*Matrix, error) {
	states := make([]*Matrix, 0, len(subkeys))
	s0, err := state.Add(subkeys[0], false)
	if err != nil {
		return nil, err
	}
	states = append(states, s0)

	for r := 0; r < len(subkeys)-1; r++ {
		s := states[r]
		s = d.sboxPow(s, r%2 == 0)

		mixed, err := d.mdsMat.MatMul(s)
		if err != nil {
			return nil, err
		}
		next, err := mixed.Add(subkeys[r+1], false)
		if err != nil {
			return nil, err
		}
		states = append(states, next)
	}
	return states, nil
}

// rescuePermutationInverse undoes rescuePermutation: every round strips
// its round key, applies the inverse MDS matrix, then the inverse S-box,
// walking subkeys in reverse order.
func (d *Desc) rescuePermutationInverse(subkeys []*Matrix, state *Matrix) ([]*Matrix, error) {
	states := make([]*Matrix, 0, len(subkeys)+1)
	states = append(states, state)

	for r := 0; r < len(subkeys)-1; r++ {
		s := states[r]
		diff, err := s.Sub(subkeys[len(subkeys)-1-r], false)
		if err != nil {
			return nil, err
		}
		mixed, err := d.mdsMatInverse.MatMul(diff)
		if err != nil {
			return nil, err
		}
		mixed = d.sboxPow(mixed, r%2 == 0)
		states = append(states, mixed)
	}

	last, err := states[len(states)-1].Sub(subkeys[0], false)
	if err != nil {
		return nil, err
	}
	states = append(states, last)
	return states[1:], nil
}

// Permute runs the full forward permutation on state, a 1-column matrix of
// m field elements, and returns the resulting state.
func (d *Desc) Permute(state *Matrix) (*Matrix, error) {
	states, err := d.rescuePermutation(d.roundKeys, state)
	if err != nil {
		return nil, err
	}
	return states[2*d.nRounds], nil
}

// PermuteInverse inverts Permute.
func (d *Desc) PermuteInverse(state *Matrix) (*Matrix, error) {
	states, err := d.rescuePermutationInverse(d.roundKeys, state)
	if err != nil {
		return nil, err
	}
	return states[2*d.nRounds], nil
}

// sampleConstants draws the round constants (cipher: an affine recurrence
// seeded by a sampled matrix; hash: i.i.d. elements per round) via
// SHAKE256, following Algorithm 3's domain-separated seed strings.
func (d *Desc) sampleConstants() ([]*Matrix, error) {
	const bufferLen = (255+7)/8 + 16 // Fp::BITS=255, plus 16 bytes of bias-avoiding slack

	if d.mode == modeCipher {
		return d.sampleCipherConstants(bufferLen)
	}
	return d.sampleHashConstants(bufferLen)
}

func (d *Desc) sampleCipherConstants(bufferLen int) ([]*Matrix, error) {
	m := d.m
	xof := newShakeXOF("encrypt everything, compute anything")

	nElements := m*m + 2*m
	randomness, err := xof.Squeeze(nElements * bufferLen)
	if err != nil {
		return nil, err
	}

	elems := make([]fp.Fp, nElements)
	for i := 0; i < nElements; i++ {
		chunk := randomness[i*bufferLen : (i+1)*bufferLen]
		elems[i] = fp.FromWideBytesLE(chunk)
	}

	idx := 0
	matRows := make([][]fp.Fp, m)
	for i := 0; i < m; i++ {
		matRows[i] = make([]fp.Fp, m)
		for j := 0; j < m; j++ {
			matRows[i][j] = elems[idx]
			idx++
		}
	}
	mat, err := NewMatrixFromRows(matRows)
	if err != nil {
		return nil, err
	}

	initVec := make([]fp.Fp, m)
	copy(initVec, elems[idx:idx+m])
	idx += m
	affineVec := make([]fp.Fp, m)
	copy(affineVec, elems[idx:idx+m])

	initial := NewColumnVector(initVec)
	affine := NewColumnVector(affineVec)

	// Resample on a singular sampled matrix using fresh OS randomness
	// rather than continuing the (already finalized, single-shot) XOF
	// stream. This is the reference's own behavior; the standard cipher
	// width m=5 never samples a singular matrix, so in practice only other
	// key lengths could reach it. Preserved for bit-exact interop rather
	// than "fixed".
	for {
		det, err := mat.Det()
		if err != nil {
			return nil, err
		}
		if !det.IsZero() {
			break
		}
		fresh, err := randomBytes(m * m * bufferLen)
		if err != nil {
			return nil, err
		}
		for i := 0; i < m; i++ {
			for j := 0; j < m; j++ {
				offset := (i*m + j) * bufferLen
				matRows[i][j] = fp.FromWideBytesLE(fresh[offset : offset+bufferLen])
			}
		}
		mat, err = NewMatrixFromRows(matRows)
		if err != nil {
			return nil, err
		}
	}

	roundConstants := make([]*Matrix, 0, 2*d.nRounds+1)
	roundConstants = append(roundConstants, initial)
	for r := 0; r < 2*d.nRounds; r++ {
		mixed, err := mat.MatMul(roundConstants[r])
		if err != nil {
			return nil, err
		}
		next, err := mixed.Add(affine, false)
		if err != nil {
			return nil, err
		}
		roundConstants = append(roundConstants, next)
	}
	return roundConstants, nil
}

func (d *Desc) sampleHashConstants(bufferLen int) ([]*Matrix, error) {
	m := d.m
	seed := fmt.Sprintf("Rescue-XLIX(%s,%d,%d,%d)", bigP().String(), m, d.capacity, securityLevelHashFunction)
	xof := newShakeXOF(seed)

	roundConstants := make([]*Matrix, 0, 2*d.nRounds+1)
	roundConstants = append(roundConstants, NewColumnVector(make([]fp.Fp, m)))

	nElements := 2 * m * d.nRounds
	randomness, err := xof.Squeeze(nElements * bufferLen)
	if err != nil {
		return nil, err
	}

	for r := 0; r < 2*d.nRounds; r++ {
		data := make([]fp.Fp, m)
		for i := 0; i < m; i++ {
			offset := (r*m + i) * bufferLen
			data[i] = fp.FromWideBytesLE(randomness[offset : offset+bufferLen])
		}
		roundConstants = append(roundConstants, NewColumnVector(data))
	}
	return roundConstants, nil
}
