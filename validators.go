// SPDX-License-Identifier: MIT
// Package: dmat
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels/facades minimal by delegating null/shape checks here.
//  - Return plain sentinel errors (wrapped only with a validator tag) so call
//    sites can wrap uniformly with their operation tag.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.
//  - Structural checks (diagonal/identity) run O(n²) over the cells.
//
// Note:
//  - Each composite validator follows a fixed sequence (e.g. NotNull → Shape).
//  - Each validator documents what it validates and what it assumes: in
//    particular, ValidateSameShape and ValidateSquare assume non-null input —
//    composite validators (ValidateBinarySameShape, ValidateSquareNonNull)
//    perform the null check first, and every public operation goes through a
//    composite. Null checks are never skipped at an operation boundary.

package dmat

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// matrixErrorf wraps err with an operation tag, preserving the original error
// via %w so errors.Is/As keep matching. Use only when err != nil.
// Complexity: O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNull ensures the matrix reference is present AND initialized.
//
// Both failure modes collapse into ErrNullMatrix: a nil interface, a typed
// nil *Dense, and a constructed-empty matrix (zero rows) are all "null" —
// none of them owns a populated grid.
// Complexity: O(1).
func ValidateNotNull(m Matrix) error {
	// Nil interface: nothing to inspect.
	if m == nil {
		return validatorErrorf("ValidateNotNull", ErrNullMatrix)
	}
	// Typed-nil *Dense would panic on Rows(); reject it explicitly.
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNull", ErrNullMatrix)
	}
	// Constructed-empty (uninitialized) state: zero rows means no grid.
	if m.Rows() == 0 {
		return validatorErrorf("ValidateNotNull", ErrNullMatrix)
	}
	return nil
}

// ValidateGrid ensures a raw literal grid is present, non-empty and
// rectangular. Ragged grids must never back a Dense.
//
// Errors: ErrNullMatrix (nil/empty grid), ErrRaggedGrid (non-uniform rows).
// Complexity: O(r) — row lengths only, cells are not inspected.
func ValidateGrid(grid [][]float64) error {
	// Absent or zero-row grid is the null state.
	if len(grid) == 0 {
		return validatorErrorf("ValidateGrid", ErrNullMatrix)
	}
	// Every row must match the first row's length exactly.
	want := len(grid[0])
	for i := 1; i < len(grid); i++ {
		if len(grid[i]) != want {
			return validatorErrorf("ValidateGrid",
				fmt.Errorf("row %d has %d cols, want %d: %w", i, len(grid[i]), want, ErrRaggedGrid))
		}
	}
	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
//
// Implementation: assumes a and b are not null (caller must ensure — use
// ValidateBinarySameShape at operation boundaries).
// Errors: ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}
	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
//
// Implementation: assumes m is not null (use ValidateSquareNonNull otherwise).
// Errors: ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrDimensionMismatch)
	}
	return nil
}

// ValidateBinarySameShape — composite: NotNull(a) → NotNull(b) → SameShape.
//
// Errors: ErrNullMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateBinarySameShape(a, b Matrix) error {
	if err := ValidateNotNull(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNull(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	return nil
}

// ValidateSquareNonNull — composite: NotNull → Square.
//
// Errors: ErrNullMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSquareNonNull(m Matrix) error {
	if err := ValidateNotNull(m); err != nil {
		return validatorErrorf("ValidateSquareNonNull", err)
	}
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSquareNonNull", err)
	}
	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows, inputs non-null.
// The inner-dimension check is always performed here — multiplication never
// proceeds on incompatible shapes.
//
// Errors: ErrNullMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNull(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNull(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible",
			fmt.Errorf("inner dims %d vs %d: %w", a.Cols(), b.Rows(), ErrDimensionMismatch))
	}
	return nil
}

// ValidateDiagonal — composite: NotNull → Square → IsDiagonal.
// Fails with ErrNotDiagonal (a DimensionMismatch-class sentinel) when any
// off-diagonal cell is non-zero, or when m is not square.
//
// Errors: ErrNullMatrix, ErrDimensionMismatch, ErrNotDiagonal.
// Complexity: O(n²).
func ValidateDiagonal(m Matrix) error {
	if err := ValidateNotNull(m); err != nil {
		return validatorErrorf("ValidateDiagonal", err)
	}
	ok, err := IsDiagonal(m)
	if err != nil {
		return validatorErrorf("ValidateDiagonal", err)
	}
	if !ok {
		return validatorErrorf("ValidateDiagonal", ErrNotDiagonal)
	}
	return nil
}

// ValidateIdentity — composite: NotNull → Square → IsIdentity.
// Fails with ErrNotIdentity when the identity pattern is violated.
//
// Errors: ErrNullMatrix, ErrDimensionMismatch, ErrNotIdentity.
// Complexity: O(n²).
func ValidateIdentity(m Matrix) error {
	if err := ValidateNotNull(m); err != nil {
		return validatorErrorf("ValidateIdentity", err)
	}
	ok, err := IsIdentity(m)
	if err != nil {
		return validatorErrorf("ValidateIdentity", err)
	}
	if !ok {
		return validatorErrorf("ValidateIdentity", ErrNotIdentity)
	}
	return nil
}
