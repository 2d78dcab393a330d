// SPDX-License-Identifier: MIT
// Package: dmat
//
// Purpose:
//   - Structural predicates over an initialized matrix: squareness,
//     diagonality, identity, triangularity, permutation structure.
//
// Policy:
//   - All comparisons are EXACT (== 0.0, == 1.0). Predicates classify the
//     stored values, they do not apply a numeric tolerance; callers that need
//     approximate classification should sanitize first.
//   - A null (uninitialized) matrix fails with ErrNullMatrix instead of
//     silently answering false — masking a programmer error behind a boolean
//     is worse than failing fast. IsSquare is the one exception: squareness
//     is meaningless on the null matrix and simply reports false.
//   - A non-square matrix is NOT an error for the square-only predicates:
//     they just answer false.
//
// Determinism & Performance:
//   - Fixed i→j scan orders, early exit on the first violation, O(n²) worst
//     case, zero allocations on the Dense fast path.

package dmat

// IsSquare reports whether m has the same number of rows and columns.
// False on nil or uninitialized input (squareness is meaningless there).
// Complexity: O(1).
func IsSquare(m Matrix) bool {
	if err := ValidateNotNull(m); err != nil {
		return false
	}
	return m.Rows() == m.Cols()
}

// IsDiagonal reports whether m is square with every off-diagonal cell exactly
// 0.0. Diagonal cells may hold any value (including 0.0).
//
// Errors: ErrNullMatrix on uninitialized input.
// Complexity: O(n²), early exit on the first non-zero off-diagonal cell.
func IsDiagonal(m Matrix) (bool, error) {
	return scanCells(m, func(i, j int, v float64) bool {
		return i == j || v == 0.0 // off-diagonal must be exactly zero
	})
}

// IsIdentity reports whether m is square with exactly 1.0 on the main
// diagonal and exactly 0.0 everywhere else.
//
// Errors: ErrNullMatrix on uninitialized input.
// Complexity: O(n²), early exit on the first deviating cell.
func IsIdentity(m Matrix) (bool, error) {
	return scanCells(m, func(i, j int, v float64) bool {
		if i == j {
			return v == 1.0 // diagonal must be exactly one
		}
		return v == 0.0 // off-diagonal must be exactly zero
	})
}

// IsUpperTriangular reports whether m is square with every cell strictly
// below the main diagonal exactly 0.0.
//
// Errors: ErrNullMatrix on uninitialized input.
// Complexity: O(n²), early exit on the first violation.
func IsUpperTriangular(m Matrix) (bool, error) {
	return scanCells(m, func(i, j int, v float64) bool {
		return i <= j || v == 0.0 // below-diagonal must be exactly zero
	})
}

// IsLowerTriangular reports whether m is square with every cell strictly
// above the main diagonal exactly 0.0.
//
// Errors: ErrNullMatrix on uninitialized input.
// Complexity: O(n²), early exit on the first violation.
func IsLowerTriangular(m Matrix) (bool, error) {
	return scanCells(m, func(i, j int, v float64) bool {
		return i >= j || v == 0.0 // above-diagonal must be exactly zero
	})
}

// IsPermutation reports whether m is square and every row AND every column
// contains exactly one 1.0 with all remaining cells exactly 0.0.
//
// Errors: ErrNullMatrix on uninitialized input.
// Complexity: O(n²) with O(n) column counters; early exit on any cell that is
// neither 0.0 nor 1.0, or on a second 1.0 in a row.
func IsPermutation(m Matrix) (bool, error) {
	// Null check first, squareness answers false.
	if err := ValidateNotNull(m); err != nil {
		return false, matrixErrorf(opPredicates, err)
	}
	n := m.Rows()
	if n != m.Cols() {
		return false, nil // non-square can never be a permutation matrix
	}

	colOnes := make([]int, n) // per-column count of exact 1.0 cells
	var v float64
	var err error
	var i, j, rowOnes int
	for i = 0; i < n; i++ {
		rowOnes = 0 // reset the per-row counter
		for j = 0; j < n; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return false, matrixErrorf(opPredicates, err)
			}
			switch v {
			case 1.0:
				rowOnes++
				colOnes[j]++
				// A second one in this row or column breaks the structure.
				if rowOnes > 1 || colOnes[j] > 1 {
					return false, nil
				}
			case 0.0:
				// zeros are fine anywhere
			default:
				return false, nil // any other value disqualifies immediately
			}
		}
		if rowOnes != 1 {
			return false, nil // each row needs exactly one 1.0
		}
	}
	// Every row had exactly one 1.0; verify the same holds per column.
	for j = 0; j < n; j++ {
		if colOnes[j] != 1 {
			return false, nil
		}
	}
	return true, nil
}

// scanCells is the shared predicate kernel: null check, squareness answers
// false, then every cell is tested against ok(i, j, v) with early exit.
// The Dense fast path reads the flat buffer directly.
func scanCells(m Matrix, ok func(i, j int, v float64) bool) (bool, error) {
	// Null check first — structural predicates refuse the null matrix.
	if err := ValidateNotNull(m); err != nil {
		return false, matrixErrorf(opPredicates, err)
	}
	n := m.Rows()
	if n != m.Cols() {
		return false, nil // square-only predicates answer false here
	}

	// Fast path: direct flat-slice reads on *Dense.
	if d, isDense := m.(*Dense); isDense {
		for i := 0; i < n; i++ {
			base := i * n
			for j := 0; j < n; j++ {
				if !ok(i, j, d.data[base+j]) {
					return false, nil // early exit on first violation
				}
			}
		}
		return true, nil
	}

	// Generic fallback via At (bounds-safe after shape validation).
	var v float64
	var err error
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return false, matrixErrorf(opPredicates, err)
			}
			if !ok(i, j, v) {
				return false, nil
			}
		}
	}
	return true, nil
}
