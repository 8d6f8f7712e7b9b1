// Package rescue implements the Rescue-Prime sponge hash and the Rescue
// CTR-mode stream cipher over the Curve25519 base field F_p,
// p = 2^255 - 19, bit-compatible with the @arcium-hq/client reference
// implementation.
package rescue

import (
	"fmt"

	"github.com/umbra-defi/rescue/internal/fp"
)

// ErrInvalidArgument covers malformed constructor/call arguments: bad
// dimensions, out-of-range lengths, zero-sized rate/capacity, and the like.
var ErrInvalidArgument = fmt.Errorf("rescue: invalid argument")

// ErrDivisionByZero is returned when a field inversion is attempted on zero.
var ErrDivisionByZero = fp.ErrDivisionByZero

// ErrShapeMismatch is returned by matrix operations whose operand
// dimensions are incompatible.
var ErrShapeMismatch = fmt.Errorf("rescue: matrix shape mismatch")

// ErrNotSquare is returned by operations that require a square matrix
// (the determinant).
var ErrNotSquare = fmt.Errorf("rescue: matrix is not square")

// ErrNotColumnVector is returned by ToVector when called on a matrix with
// more than one column.
var ErrNotColumnVector = fmt.Errorf("rescue: matrix is not a column vector")

// ErrAlreadyFinalized is returned by a second call to an XOF's Squeeze,
// matching the reference's single-shot SHAKE256 semantics.
var ErrAlreadyFinalized = fmt.Errorf("rescue: xof already finalized")

// ErrRngFailure is returned when the OS entropy source is unavailable.
var ErrRngFailure = fp.ErrRngFailure

// ErrInternalInvariant signals a condition the algorithm's own design
// guarantees cannot occur (e.g. no candidate prime alpha that avoids
// dividing p-1); seeing it means a parameter build went wrong upstream.
var ErrInternalInvariant = fmt.Errorf("rescue: internal invariant violated")
