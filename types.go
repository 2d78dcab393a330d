// SPDX-License-Identifier: MIT

// Package dmat: domain types shared across the package.
// This file intentionally contains ONLY the public Matrix interface and the
// operation tag constants. Errors live in errors.go, the concrete value type
// in dense.go, per the package-wide one-file-per-concern convention.
package dmat

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd        = "Add"
	opSub        = "Sub"
	opScale      = "Scale"
	opMul        = "Mul"
	opTranspose  = "Transpose"
	opTrace      = "Trace"
	opDet        = "Det"
	opDetCofact  = "DetCofactor"
	opDetGauss   = "DetGauss"
	opMinor      = "Minor"
	opFromGrid   = "NewFromGrid"
	opPredicates = "Predicates"
)

// Matrix represents a two-dimensional mutable array of float64 values.
// Dense is the canonical implementation; kernels accept any Matrix but unlock
// a flat-slice fast path when handed a *Dense.
//
// A Matrix with Rows() == 0 is the "null matrix" (uninitialized): it owns no
// backing grid and is rejected by every operation that requires data.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix (0 when uninitialized).
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix (0 when uninitialized).
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrIndexOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	// Complexity: O(1).
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrIndexOutOfRange if indices are invalid.
	// Complexity: O(1).
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original: copies never alias
	// the source's backing grid.
	// Complexity: O(rows*cols).
	Clone() Matrix
}
