// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package and by the solver packages (gauss, cofactor, iterative). All
// algorithms MUST return these sentinels (optionally wrapped) and tests MUST
// check them via errors.Is. No algorithm should panic on user-triggered error
// conditions; the explicitly unchecked Must* helpers are the only exception.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// from validators; kernels wrap at the call site with matrixErrorf(tag, err)
// and callers still match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape/index/NaN -> missing entry -> dimension mismatch -> singular.

var (
	// ErrEntryNotFound is returned by a dense read of an in-bounds index that was
	// never written. It indicates a construction bug, never "legitimately zero".
	ErrEntryNotFound = errors.New("matrix: entry not found")

	// ErrIndexOutOfBounds indicates that a row or column index lies outside the
	// declared shape. Public indexers (At/Set) and checked slicing return it.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrShapeMismatch indicates incompatible operand shapes, e.g. Add/Sub of
	// different shapes or Mul where a.Cols != b.Rows.
	ErrShapeMismatch = errors.New("matrix: shape mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrSingular is returned when a solver meets a zero pivot (Gaussian
	// elimination) or a zero determinant (adjoint inversion). Always recoverable.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required by the numeric policy (Set, tolerances).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// atErrorf attaches coordinates to a failed element read inside a kernel.
func atErrorf(tag string, i, j int, err error) error {
	return matrixErrorf(tag, fmt.Errorf("At(%d,%d): %w", i, j, err))
}

// setErrorf attaches coordinates to a failed element write inside a kernel.
func setErrorf(tag string, i, j int, err error) error {
	return matrixErrorf(tag, fmt.Errorf("Set(%d,%d): %w", i, j, err))
}
