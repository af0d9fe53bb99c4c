// SPDX-License-Identifier: MIT
// Package matrix: constructors & factories.
//
// Purpose:
//   - Provide thin, well-documented entry points that build complete matrices
//     (zero, ones, identity, from a flat sequence) for both storage kinds.
//   - Centralize "result of the same kind as the operand" allocation (newLike)
//     so every kernel honours the value-type contract identically.
//
// Determinism & Policy:
//   - Fixed i→j fill order; factories never leave a dense matrix incomplete.
//   - Results inherit the numeric policy of the operand they are built from.

package matrix

// fillFunc computes the value of entry (i, j) during construction.
type fillFunc func(i, j int) float64

// fillDense builds a complete r×c Dense by evaluating f at every index.
// Complexity: O(r*c).
func fillDense(rows, cols int, f fillFunc, opts ...Option) (*Dense, error) {
	m, err := NewDense(rows, cols, opts...)
	if err != nil {
		return nil, err
	}
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if err = m.Set(i, j, f(i, j)); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}

// fillSparse builds an r×c Sparse by evaluating f at every index; zeros are
// dropped by Set.
func fillSparse(rows, cols int, f fillFunc, opts ...Option) (*Sparse, error) {
	m, err := NewSparse(rows, cols, opts...)
	if err != nil {
		return nil, err
	}
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if err = m.Set(i, j, f(i, j)); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}

func constant(v float64) fillFunc { return func(int, int) float64 { return v } }

func eye(i, j int) float64 {
	if i == j {
		return 1
	}

	return 0
}

// flat reads a row-major sequence; the caller guarantees len(values) == rows*cols.
func flat(cols int, values []float64) fillFunc {
	return func(i, j int) float64 { return values[i*cols+j] }
}

// ---------- Dense factories ----------

// Zeros returns a complete rows×cols dense matrix of zeros.
// Complexity: O(r*c).
func Zeros(rows, cols int, opts ...Option) (*Dense, error) {
	return fillDense(rows, cols, constant(0), opts...)
}

// Ones returns a complete n×n dense matrix of ones.
func Ones(n int, opts ...Option) (*Dense, error) {
	return fillDense(n, n, constant(1), opts...)
}

// Identity returns I_n (ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2).
func Identity(n int, opts ...Option) (*Dense, error) {
	return fillDense(n, n, eye, opts...)
}

// FromSlice builds a rows×cols dense matrix from a row-major flat sequence.
// Returns ErrShapeMismatch when len(values) != rows*cols.
func FromSlice(rows, cols int, values []float64, opts ...Option) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	if len(values) != rows*cols {
		return nil, matrixErrorf("FromSlice", ErrShapeMismatch)
	}

	return fillDense(rows, cols, flat(cols, values), opts...)
}

// ---------- Sparse factories ----------

// SparseZeros returns a rows×cols sparse matrix with no stored entries.
func SparseZeros(rows, cols int, opts ...Option) (*Sparse, error) {
	return NewSparse(rows, cols, opts...)
}

// SparseOnes returns an n×n sparse matrix of ones (every entry stored).
func SparseOnes(n int, opts ...Option) (*Sparse, error) {
	return fillSparse(n, n, constant(1), opts...)
}

// SparseIdentity returns I_n with exactly n stored entries.
func SparseIdentity(n int, opts ...Option) (*Sparse, error) {
	m, err := NewSparse(n, n, opts...)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[Index{Row: i, Col: i}] = 1
	}

	return m, nil
}

// SparseFromSlice builds a sparse matrix from a row-major flat sequence,
// storing only the non-zero values.
func SparseFromSlice(rows, cols int, values []float64, opts ...Option) (*Sparse, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	if len(values) != rows*cols {
		return nil, matrixErrorf("SparseFromSlice", ErrShapeMismatch)
	}

	return fillSparse(rows, cols, flat(cols, values), opts...)
}

// ---------- Kind-preserving helpers ----------

// policyOf returns the numeric policy option carried by m (default when unknown).
func policyOf(m Matrix) Option {
	if pc, ok := m.(policyCarrier); ok {
		return WithValidateNaNInf(pc.finiteOnly())
	}

	return WithValidateNaNInf(DefaultValidateNaNInf)
}

// newLike allocates an empty rows×cols matrix of the same kind and numeric
// policy as m. Dense results must be filled completely by the caller.
func newLike(m Matrix, rows, cols int) (Matrix, error) {
	if m.Kind() == KindSparse {
		return NewSparse(rows, cols, policyOf(m))
	}

	return NewDense(rows, cols, policyOf(m))
}

// ZerosLike returns a rows×cols zero matrix of the same kind and policy as m:
// a complete zero Dense, or an empty Sparse.
func ZerosLike(m Matrix, rows, cols int) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}
	if m.Kind() == KindSparse {
		return NewSparse(rows, cols, policyOf(m))
	}

	return Zeros(rows, cols, policyOf(m))
}

// IdentityLike returns I_n of the same kind and policy as m, n = m.Rows().
// Requires a square m.
func IdentityLike(m Matrix) (Matrix, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}
	if m.Kind() == KindSparse {
		return SparseIdentity(m.Rows(), policyOf(m))
	}

	return Identity(m.Rows(), policyOf(m))
}
