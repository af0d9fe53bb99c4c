// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by both storage kinds.
// This file intentionally contains ONLY domain-facing types (Index, Kind) and
// the public Matrix interface. Errors and options live in dedicated files
// (errors.go, options.go) per the package conventions.
package matrix

import "fmt"

// Index is a zero-based (row, column) pair identifying one matrix entry.
// Valid rows are [0, Rows()), valid columns are [0, Cols()).
type Index struct {
	Row int // zero-based row
	Col int // zero-based column
}

// String renders the index as "(row,col)".
func (ix Index) String() string { return fmt.Sprintf("(%d,%d)", ix.Row, ix.Col) }

// less orders indices row-major; used to make sparse traversal deterministic.
func (ix Index) less(o Index) bool {
	if ix.Row != o.Row {
		return ix.Row < o.Row
	}

	return ix.Col < o.Col
}

// compareIndex is the three-way form of less for slices.SortFunc.
func compareIndex(a, b Index) int {
	switch {
	case a.less(b):
		return -1
	case b.less(a):
		return 1
	default:
		return 0
	}
}

// Kind names the storage model behind a Matrix.
type Kind int

const (
	// KindDense stores an entry for (ideally) every index.
	KindDense Kind = iota

	// KindSparse stores only non-zero entries; absent entries read as zero.
	KindSparse
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindDense:
		return "dense"
	case KindSparse:
		return "sparse"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Matrix is a fixed-shape two-dimensional container of float64 values.
// The shape is set at construction and never changes.
//
// Every algebraic kernel in this package (and the solver packages) is written
// against this interface; *Dense and *Sparse are the two implementations and
// behave identically under the shared operator contract.
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix.
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrIndexOutOfBounds outside the shape. A dense matrix returns
	// ErrEntryNotFound for an in-bounds index that was never written; a sparse
	// matrix returns 0 for any missing index.
	// Complexity: O(1) expected.
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrIndexOutOfBounds if indices are invalid (the matrix is left
	// untouched) and ErrNaNInf when the numeric policy rejects v.
	// Complexity: O(1) expected.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	// Complexity: O(stored entries).
	Clone() Matrix

	// Kind reports the storage model.
	Kind() Kind
}

// policyCarrier exposes the per-instance numeric policy so results built from
// an operand inherit it.
type policyCarrier interface {
	finiteOnly() bool
}
