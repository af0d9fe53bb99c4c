// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// transpose, slicing, horizontal concatenation, scalar and elementwise
// products, matrix product, sum, difference and negation. All functions
// perform strict fail-fast validation and return clear errors on shape
// mismatches; the Must* twins are the unchecked variants for callers that have
// already validated their operands.
//
// Purpose:
//   - Implement the operator contract ONCE against the Matrix interface, with
//     *Sparse fast paths that touch stored entries only.
//   - Preserve the value-type contract: operands are never mutated, every
//     result is a fresh matrix of the left operand's kind and numeric policy.
//
// Notes:
//   - A dense operand that is incomplete surfaces ErrEntryNotFound from the
//     first missing read; nothing is silently treated as zero.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// ZeroSum is the initial value of every accumulation.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opNeg       = "Neg"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opHadamard  = "Hadamard"
	opSlice     = "Slice"
	opConcat    = "Concat"
)

// placeFunc maps a source entry to its destination; ok=false drops it.
// Every placeFunc used here maps a zero value to a zero value, which is what
// allows the sparse path to visit stored entries only.
type placeFunc func(i, j int, v float64) (di, dj int, dv float64, ok bool)

// blankLike allocates a rows×cols result of m's kind and policy whose unset
// entries already read as zero (complete zero Dense / empty Sparse).
func blankLike(m Matrix, rows, cols int) (Matrix, error) {
	if m.Kind() == KindSparse {
		return NewSparse(rows, cols, policyOf(m))
	}

	return Zeros(rows, cols, policyOf(m))
}

// remap builds a rows×cols result by routing every entry of m through place.
//
// Implementation:
//   - Stage 1: allocate a zeroed result of m's kind.
//   - Stage 2: sparse source → visit stored entries (row-major); any other
//     source → fixed i→j loop through At so missing dense entries fail loudly.
//
// Complexity:
//   - Time O(r*c) dense, O(nnz log nnz) sparse.
func remap(tag string, m Matrix, rows, cols int, place placeFunc) (Matrix, error) {
	res, err := blankLike(m, rows, cols)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}

	write := func(i, j int, v float64) error {
		di, dj, dv, ok := place(i, j, v)
		if !ok {
			return nil
		}
		if err := res.Set(di, dj, dv); err != nil {
			return setErrorf(tag, di, dj, err)
		}

		return nil
	}

	if s, ok := m.(*Sparse); ok {
		var werr error
		s.Do(func(i, j int, v float64) bool {
			werr = write(i, j, v)
			return werr == nil
		})
		if werr != nil {
			return nil, werr
		}

		return res, nil
	}

	var (
		i, j int
		v    float64
	)
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, atErrorf(tag, i, j, err)
			}
			if err = write(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Entry (i,j) moves to (j,i). Complexity: O(r*c) dense, O(nnz) sparse.
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	return remap(opTranspose, m, m.Cols(), m.Rows(), func(i, j int, v float64) (int, int, float64, bool) {
		return j, i, v, true
	})
}

// Scale returns a new matrix whose elements are k * m[i,j].
func Scale(m Matrix, k float64) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	return remap(opScale, m, m.Rows(), m.Cols(), func(i, j int, v float64) (int, int, float64, bool) {
		return i, j, k * v, true
	})
}

// Neg returns the entrywise additive inverse −m.
func Neg(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opNeg, err)
	}

	return remap(opNeg, m, m.Rows(), m.Cols(), func(i, j int, v float64) (int, int, float64, bool) {
		return i, j, -v, true
	})
}

// Slice returns the inclusive window rows r0..r1, columns c0..c1 of m as a
// new (r1-r0+1)×(c1-c0+1) matrix re-indexed from zero.
//
// Errors:
//   - ErrIndexOutOfBounds unless 0 ≤ r0 ≤ r1 < Rows and 0 ≤ c0 ≤ c1 < Cols.
//
// Complexity:
//   - Time O(r*c) dense (full scan through At), O(nnz) sparse.
func Slice(m Matrix, r0, r1, c0, c1 int) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opSlice, err)
	}
	if err := validateSliceBounds(m, r0, r1, c0, c1); err != nil {
		return nil, matrixErrorf(opSlice, err)
	}
	if d, ok := m.(*Dense); ok {
		// Only the window is read: entries outside it may legitimately be unset.
		return sliceDense(d, r0, r1, c0, c1)
	}

	return remap(opSlice, m, r1-r0+1, c1-c0+1, func(i, j int, v float64) (int, int, float64, bool) {
		if i < r0 || i > r1 || j < c0 || j > c1 {
			return 0, 0, 0, false
		}
		return i - r0, j - c0, v, true
	})
}

// sliceDense copies the window of a dense matrix without touching the rest.
func sliceDense(d *Dense, r0, r1, c0, c1 int) (Matrix, error) {
	res, err := NewDense(r1-r0+1, c1-c0+1, policyOf(d))
	if err != nil {
		return nil, matrixErrorf(opSlice, err)
	}
	var (
		i, j int
		v    float64
	)
	for i = r0; i <= r1; i++ {
		for j = c0; j <= c1; j++ {
			if v, err = d.At(i, j); err != nil {
				return nil, atErrorf(opSlice, i, j, err)
			}
			res.data[Index{Row: i - r0, Col: j - c0}] = v
		}
	}

	return res, nil
}

// MustSlice is the unchecked Slice: the caller guarantees the window is valid.
// It panics on any error.
func MustSlice(m Matrix, r0, r1, c0, c1 int) Matrix {
	return must(Slice(m, r0, r1, c0, c1))
}

// Concat joins a and b horizontally: [a | b]. Rows must match; the result has
// a.Cols()+b.Cols() columns and a's kind.
func Concat(a, b Matrix) (Matrix, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opConcat, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opConcat, err)
	}
	if a.Rows() != b.Rows() {
		return nil, matrixErrorf(opConcat, ErrShapeMismatch)
	}
	left, err := remap(opConcat, a, a.Rows(), a.Cols()+b.Cols(), func(i, j int, v float64) (int, int, float64, bool) {
		return i, j, v, true
	})
	if err != nil {
		return nil, err
	}
	// Route b's entries into the right block of the already-allocated result.
	off := a.Cols()
	copyInto := func(i, j int, v float64) error {
		if err := left.Set(i, off+j, v); err != nil {
			return setErrorf(opConcat, i, off+j, err)
		}
		return nil
	}
	if s, ok := b.(*Sparse); ok {
		var werr error
		s.Do(func(i, j int, v float64) bool {
			werr = copyInto(i, j, v)
			return werr == nil
		})
		if werr != nil {
			return nil, werr
		}

		return left, nil
	}
	var v float64
	for i := 0; i < b.Rows(); i++ {
		for j := 0; j < b.Cols(); j++ {
			if v, err = b.At(i, j); err != nil {
				return nil, atErrorf(opConcat, i, j, err)
			}
			if err = copyInto(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return left, nil
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b).
//   - Stage 2: Sparse+Sparse → walk the union of stored entries; otherwise a
//     fixed i→j loop through At/Set into a result of a's kind.
//
// Complexity:
//   - Time O(r*c), or O(nnz(a)+nnz(b)) on the sparse fast path.
func addSub(a, b Matrix, sign float64, opTag string) (Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	rows, cols := a.Rows(), a.Cols()

	if sa, okA := a.(*Sparse); okA {
		if sb, okB := b.(*Sparse); okB {
			res, err := NewSparse(rows, cols, policyOf(a))
			if err != nil {
				return nil, matrixErrorf(opTag, err)
			}
			for k, v := range sa.data {
				res.data[k] = v
			}
			for _, k := range sb.Indices() {
				if err = res.Set(k.Row, k.Col, res.data[k]+sign*sb.data[k]); err != nil {
					return nil, setErrorf(opTag, k.Row, k.Col, err)
				}
			}

			return res, nil
		}
	}

	return zipWith(opTag, a, b, func(x, y float64) float64 { return x + sign*y })
}

// zipWith combines two same-shape matrices entry by entry in fixed i→j order.
// Assumes shapes were validated by the caller.
func zipWith(tag string, a, b Matrix, f func(x, y float64) float64) (Matrix, error) {
	rows, cols := a.Rows(), a.Cols()
	res, err := newLike(a, rows, cols)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	var (
		i, j   int
		av, bv float64
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, atErrorf(tag, i, j, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, atErrorf(tag, i, j, err)
			}
			if err = res.Set(i, j, f(av, bv)); err != nil {
				return nil, setErrorf(tag, i, j, err)
			}
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh result of A's kind.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrShapeMismatch (shape mismatch),
//     ErrEntryNotFound (incomplete dense operand).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) dense / O(nnz) sparse.
func Add(a, b Matrix) (Matrix, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B.
// Same contract as Add.
func Sub(a, b Matrix) (Matrix, error) { return addSub(a, b, -1, opSub) }

// MustAdd is the unchecked Add; it panics when the operands are not conformant.
func MustAdd(a, b Matrix) Matrix { return must(Add(a, b)) }

// MustSub is the unchecked Sub; it panics when the operands are not conformant.
func MustSub(a, b Matrix) Matrix { return must(Sub(a, b)) }

// Hadamard computes the elementwise product (a ⊙ b).
// Both inputs must have identical shapes; a sparse left operand only visits
// its stored entries. A dense right operand is still read in full, so an
// incomplete one fails with ErrEntryNotFound whatever the kind of a.
func Hadamard(a, b Matrix) (Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}
	if _, ok := a.(*Sparse); ok {
		if _, sparseB := b.(*Sparse); !sparseB {
			if _, err := ToRows(b); err != nil {
				return nil, matrixErrorf(opHadamard, err)
			}
		}

		return remapPair(opHadamard, a, b)
	}

	return zipWith(opHadamard, a, b, func(x, y float64) float64 { return x * y })
}

// remapPair multiplies every stored entry of sparse a by b at the same index.
func remapPair(tag string, a, b Matrix) (Matrix, error) {
	var rerr error
	res, err := remap(tag, a, a.Rows(), a.Cols(), func(i, j int, v float64) (int, int, float64, bool) {
		bv, e := b.At(i, j)
		if e != nil {
			rerr = atErrorf(tag, i, j, e)
			return 0, 0, 0, false
		}
		return i, j, v * bv, true
	})
	if err != nil {
		return nil, err
	}
	if rerr != nil {
		return nil, rerr
	}

	return res, nil
}

// Mul performs the standard matrix product C = A × B (O(rows·inner·cols)).
//
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: Sparse A → accumulate products of stored entries of A against
//     the stored rows of B. Otherwise copy both operands into row slices and
//     run i→k→j with a zero-skip on A[i,k] (floats.AddScaled on whole rows).
//
// Errors:
//   - ErrNilMatrix, ErrShapeMismatch, ErrEntryNotFound.
//
// Complexity:
//   - Time O(r*n*c) dense; proportional to the number of non-zero products
//     on the sparse path. Space O(r*c).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if sa, ok := a.(*Sparse); ok {
		return mulSparse(sa, b)
	}

	aRows, err := ToRows(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	bRows, err := ToRows(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	out := make([][]float64, a.Rows())
	var (
		i, k int
		av   float64
	)
	for i = 0; i < a.Rows(); i++ {
		out[i] = make([]float64, b.Cols())
		for k = 0; k < a.Cols(); k++ {
			av = aRows[i][k]
			if av == 0 {
				continue // skip zero for performance
			}
			floats.AddScaled(out[i], av, bRows[k])
		}
	}

	return FromRowsLike(a, out)
}

// mulSparse multiplies a sparse left operand by any right operand.
func mulSparse(a *Sparse, b Matrix) (Matrix, error) {
	// Group the right operand's non-zeros by row once.
	type entry struct {
		col int
		v   float64
	}
	bByRow := make([][]entry, b.Rows())
	if sb, ok := b.(*Sparse); ok {
		sb.Do(func(i, j int, v float64) bool {
			bByRow[i] = append(bByRow[i], entry{col: j, v: v})
			return true
		})
	} else {
		rows, err := ToRows(b)
		if err != nil {
			return nil, matrixErrorf(opMul, err)
		}
		for i, row := range rows {
			for j, v := range row {
				if v != 0 {
					bByRow[i] = append(bByRow[i], entry{col: j, v: v})
				}
			}
		}
	}

	res, err := NewSparse(a.Rows(), b.Cols(), policyOf(a))
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	acc := make(map[Index]float64)
	a.Do(func(i, k int, av float64) bool {
		for _, e := range bByRow[k] {
			acc[Index{Row: i, Col: e.col}] += av * e.v
		}
		return true
	})
	for k, v := range acc {
		if err = res.Set(k.Row, k.Col, v); err != nil {
			return nil, setErrorf(opMul, k.Row, k.Col, err)
		}
	}

	return res, nil
}

// MustMul is the unchecked Mul; it panics when a.Cols() != b.Rows().
func MustMul(a, b Matrix) Matrix { return must(Mul(a, b)) }

// must unwraps a kernel result for the unchecked Must* helpers.
func must(m Matrix, err error) Matrix {
	if err != nil {
		panic(fmt.Sprintf("matrix: unchecked operation failed: %v", err))
	}

	return m
}
