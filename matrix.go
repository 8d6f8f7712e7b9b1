package rescue

import (
	"fmt"

	"github.com/umbra-defi/rescue/internal/ct"
	"github.com/umbra-defi/rescue/internal/fp"
)

// Matrix is a dense, row-major matrix of field elements.
type Matrix struct {
	rows, cols int
	data       []fp.Fp
}

// NewMatrix builds a rows x cols matrix of zeros.
func NewMatrix(rows, cols int) *Matrix {
	return &Matrix{rows: rows, cols: cols, data: make([]fp.Fp, rows*cols)}
}

// NewMatrixFromRows builds a matrix from nested rows, validating that every
// row has the same length.
func NewMatrixFromRows(rows [][]fp.Fp) (*Matrix, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: matrix has no rows", ErrInvalidArgument)
	}
	cols := len(rows[0])
	m := NewMatrix(len(rows), cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has length %d, want %d", ErrInvalidArgument, i, len(row), cols)
		}
		copy(m.data[i*cols:(i+1)*cols], row)
	}
	return m, nil
}

// NewColumnVector builds an n x 1 matrix from a flat slice.
func NewColumnVector(values []fp.Fp) *Matrix {
	m := NewMatrix(len(values), 1)
	copy(m.data, values)
	return m
}

// Identity builds the n x n identity matrix.
func Identity(n int) *Matrix {
	m := NewMatrix(n, n)
	for i := 0; i < n; i++ {
		m.data[i*n+i] = fp.FpOne
	}
	return m
}

// Zeros builds an n x n zero matrix.
func Zeros(n int) *Matrix {
	return NewMatrix(n, n)
}

// RandomMatrix builds an n x n matrix of uniformly random field elements.
func RandomMatrix(n int) (*Matrix, error) {
	m := NewMatrix(n, n)
	for i := range m.data {
		v, err := fp.Random()
		if err != nil {
			return nil, err
		}
		m.data[i] = v
	}
	return m, nil
}

// Rows and Cols report the matrix's dimensions.
func (m *Matrix) Rows() int { return m.rows }
func (m *Matrix) Cols() int { return m.cols }

// At returns the element at (i, j), panicking if out of range (the
// reference throws out_of_range; Go callers are expected to stay within
// dimensions they themselves chose).
func (m *Matrix) At(i, j int) fp.Fp {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic("rescue: matrix index out of range")
	}
	return m.data[i*m.cols+j]
}

// Set assigns the element at (i, j).
func (m *Matrix) Set(i, j int, v fp.Fp) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic("rescue: matrix index out of range")
	}
	m.data[i*m.cols+j] = v
}

// Row returns a copy of row i.
func (m *Matrix) Row(i int) []fp.Fp {
	if i < 0 || i >= m.rows {
		panic("rescue: matrix row out of range")
	}
	out := make([]fp.Fp, m.cols)
	copy(out, m.data[i*m.cols:(i+1)*m.cols])
	return out
}

// Col returns a copy of column j.
func (m *Matrix) Col(j int) []fp.Fp {
	if j < 0 || j >= m.cols {
		panic("rescue: matrix column out of range")
	}
	out := make([]fp.Fp, m.rows)
	for i := 0; i < m.rows; i++ {
		out[i] = m.data[i*m.cols+j]
	}
	return out
}

// MatMul computes m*other, returning ErrShapeMismatch when m.cols != other.rows.
func (m *Matrix) MatMul(other *Matrix) (*Matrix, error) {
	if m.cols != other.rows {
		return nil, fmt.Errorf("%w: (%dx%d)*(%dx%d)", ErrShapeMismatch, m.rows, m.cols, other.rows, other.cols)
	}
	out := NewMatrix(m.rows, other.cols)
	for i := 0; i < m.rows; i++ {
		for k := 0; k < m.cols; k++ {
			a := m.data[i*m.cols+k]
			if a.IsZero() {
				continue
			}
			for j := 0; j < other.cols; j++ {
				out.data[i*out.cols+j] = out.data[i*out.cols+j].Add(a.Mul(other.data[k*other.cols+j]))
			}
		}
	}
	return out, nil
}

// Add returns m+other, element-wise. When constantTime is true the addition
// goes through the bit-adder layer (ct.FieldAdd) instead of the field's own
// branch-free masked arithmetic, matching the reference's optional
// constant_time flag on Matrix::add.
func (m *Matrix) Add(other *Matrix, constantTime bool) (*Matrix, error) {
	if m.rows != other.rows || m.cols != other.cols {
		return nil, fmt.Errorf("%w: (%dx%d)+(%dx%d)", ErrShapeMismatch, m.rows, m.cols, other.rows, other.cols)
	}
	out := NewMatrix(m.rows, m.cols)
	for i := range m.data {
		if constantTime {
			out.data[i] = ct.FieldAdd(m.data[i], other.data[i])
		} else {
			out.data[i] = m.data[i].Add(other.data[i])
		}
	}
	return out, nil
}

// Sub returns m-other, element-wise, with the same constant-time option as Add.
func (m *Matrix) Sub(other *Matrix, constantTime bool) (*Matrix, error) {
	if m.rows != other.rows || m.cols != other.cols {
		return nil, fmt.Errorf("%w: (%dx%d)-(%dx%d)", ErrShapeMismatch, m.rows, m.cols, other.rows, other.cols)
	}
	out := NewMatrix(m.rows, m.cols)
	for i := range m.data {
		if constantTime {
			out.data[i] = ct.FieldSub(m.data[i], other.data[i])
		} else {
			out.data[i] = m.data[i].Sub(other.data[i])
		}
	}
	return out, nil
}

// ScalarMul returns m scaled by s.
func (m *Matrix) ScalarMul(s fp.Fp) *Matrix {
	out := NewMatrix(m.rows, m.cols)
	for i := range m.data {
		out.data[i] = m.data[i].Mul(s)
	}
	return out
}

// Pow raises every entry to exp independently — this is the Rescue S-box
// applied to a whole state vector at once, not a linear-algebra matrix
// power. exp is either alpha (5) on odd-indexed rounds or alpha's modular
// inverse mod p-1 on even-indexed rounds (or vice versa in hash mode), so
// it may be as wide as p-1 itself; U256 covers both cases.
func (m *Matrix) Pow(exp fp.U256) *Matrix {
	out := NewMatrix(m.rows, m.cols)
	for i := range m.data {
		out.data[i] = m.data[i].Pow(exp)
	}
	return out
}

// PowUint64 is Pow specialized to a small exponent, used for the alpha=5
// S-box fast path via Fp.Pow5 when exp == 5.
func (m *Matrix) PowUint64(exp uint64) *Matrix {
	out := NewMatrix(m.rows, m.cols)
	if exp == 5 {
		for i := range m.data {
			out.data[i] = m.data[i].Pow5()
		}
		return out
	}
	for i := range m.data {
		out.data[i] = m.data[i].PowUint64(exp)
	}
	return out
}

// Transpose returns the transpose of m.
func (m *Matrix) Transpose() *Matrix {
	out := NewMatrix(m.cols, m.rows)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			out.data[j*out.cols+i] = m.data[i*m.cols+j]
		}
	}
	return out
}

// Equal reports whether m and other have the same shape and entries.
func (m *Matrix) Equal(other *Matrix) bool {
	if m.rows != other.rows || m.cols != other.cols {
		return false
	}
	for i := range m.data {
		if !m.data[i].Equal(other.data[i]) {
			return false
		}
	}
	return true
}

// ToVector returns the flat contents of a column vector (cols == 1),
// or ErrNotColumnVector otherwise.
func (m *Matrix) ToVector() ([]fp.Fp, error) {
	if m.cols != 1 {
		return nil, ErrNotColumnVector
	}
	out := make([]fp.Fp, m.rows)
	copy(out, m.data)
	return out, nil
}

// Det computes the determinant of a square matrix via Gauss elimination.
// Rows are partitioned at each step into those with a zero leading entry
// and those without; if every row has a zero leading entry the matrix is
// singular and Det returns zero. The exact order in which surviving rows
// are rebuilt (eliminated non-zero rows first, then the zero-leading rows)
// matters only for which row becomes the next pivot, not for the result,
// but is kept identical to the reference for bit-exact determinism on
// singular-detection paths that feed back into round-constant resampling.
func (m *Matrix) Det() (fp.Fp, error) {
	if m.rows != m.cols {
		return fp.Fp{}, ErrNotSquare
	}
	n := m.rows
	if n == 1 {
		return m.data[0], nil
	}

	rowsData := make([][]fp.Fp, n)
	for i := 0; i < n; i++ {
		rowsData[i] = m.Row(i)
	}

	detValue := fp.FpOne
	for col := 0; col < n; col++ {
		width := len(rowsData[0])
		if width == 0 {
			break
		}

		var lzRows, nlzRows [][]fp.Fp
		for _, row := range rowsData {
			if row[0].IsZero() {
				lzRows = append(lzRows, row)
			} else {
				nlzRows = append(nlzRows, row)
			}
		}

		if len(nlzRows) == 0 {
			return fp.FpZero, nil
		}

		pivotRow := nlzRows[0]
		pivot := pivotRow[0]
		detValue = detValue.Mul(pivot)

		pivotInv, err := pivot.Inv()
		if err != nil {
			return fp.Fp{}, err
		}
		normalized := make([]fp.Fp, width)
		for j := 0; j < width; j++ {
			normalized[j] = pivotRow[j].Mul(pivotInv)
		}

		var processed [][]fp.Fp
		for _, row := range nlzRows[1:] {
			lead := row[0]
			reduced := make([]fp.Fp, width)
			for j := 0; j < width; j++ {
				reduced[j] = row[j].Sub(lead.Mul(normalized[j]))
			}
			processed = append(processed, reduced[1:])
		}

		var zeroTrimmed [][]fp.Fp
		for _, row := range lzRows {
			zeroTrimmed = append(zeroTrimmed, row[1:])
		}

		rowsData = append(processed, zeroTrimmed...)
	}

	return detValue, nil
}
