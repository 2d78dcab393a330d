// SPDX-License-Identifier: MIT
// Package dmat: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the dmat
// package, plus the stable machine-readable code mapping. All operations MUST
// return these sentinels and tests MUST check them via errors.Is. No operation
// panics on user-triggered error conditions (the Abort failure policy is an
// explicit, caller-selected exception applied at the Engine boundary).

package dmat

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "dmat: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// null state -> dimension mismatch -> index out of range.
// Validators always check nullity before any dimensional property.

var (
	// ErrNullMatrix is returned when a matrix or grid reference is absent, or
	// the matrix is uninitialized (zero rows) where a populated matrix was
	// required. Distinct from a zero matrix, which is populated with 0.0 cells.
	ErrNullMatrix = errors.New("dmat: matrix is nil or uninitialized")

	// ErrDimensionMismatch indicates a violated dimensional precondition:
	// non-square where square is required, differing shapes for elementwise
	// operations, or Mul where a.Cols() != b.Rows().
	ErrDimensionMismatch = errors.New("dmat: dimension mismatch")

	// ErrIndexOutOfRange indicates that a row or column index is outside valid
	// bounds. Public indexers (At/Set/Row/Minor) MUST return this, not panic.
	ErrIndexOutOfRange = errors.New("dmat: index out of range")
)

// Derived sentinels. Each wraps ErrDimensionMismatch so that callers matching
// on the broad kind (errors.Is(err, ErrDimensionMismatch)) keep working while
// more precise matching stays available.

// ErrRaggedGrid signals that a literal grid has rows of non-uniform length.
// Ragged grids are structurally invalid and must never back a Dense.
var ErrRaggedGrid = fmt.Errorf("dmat: ragged grid: %w", ErrDimensionMismatch)

// ErrNegativeDimensions signals that a requested shape has rows < 0 or
// cols < 0. Zero dimensions are legal and yield an uninitialized matrix.
var ErrNegativeDimensions = fmt.Errorf("dmat: negative dimensions: %w", ErrDimensionMismatch)

// ErrNotDiagonal signals that a diagonal matrix was required but an
// off-diagonal cell is non-zero (or the matrix is not square).
var ErrNotDiagonal = fmt.Errorf("dmat: matrix is not diagonal: %w", ErrDimensionMismatch)

// ErrNotIdentity signals that an identity matrix was required but a cell
// deviates from the identity pattern (or the matrix is not square).
var ErrNotIdentity = fmt.Errorf("dmat: matrix is not identity: %w", ErrDimensionMismatch)

// Stable machine-readable codes for the three error kinds. These are part of
// the public contract and must never be renumbered or reworded.
const (
	// CodeNullState is the stable code for ErrNullMatrix-class failures.
	CodeNullState = "NULL_STATE"
	// CodeDimensionMismatch is the stable code for ErrDimensionMismatch-class
	// failures (including ragged grids and negative dimensions).
	CodeDimensionMismatch = "DIM_MISMATCH"
	// CodeIndexOutOfRange is the stable code for ErrIndexOutOfRange failures.
	CodeIndexOutOfRange = "INDEX_RANGE"
)

// Code maps err to its stable machine-readable code, or "" when err does not
// belong to the dmat error set. Matching is performed via errors.Is, so both
// bare sentinels and wrapped errors resolve to the same code.
//
// Priority mirrors the documented error priority: null state is reported
// before dimensional issues, which are reported before index issues.
// Complexity: O(depth of the wrap chain).
func Code(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNullMatrix):
		return CodeNullState
	case errors.Is(err, ErrDimensionMismatch):
		return CodeDimensionMismatch
	case errors.Is(err, ErrIndexOutOfRange):
		return CodeIndexOutOfRange
	default:
		return ""
	}
}
