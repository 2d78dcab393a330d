// SPDX-License-Identifier: MIT
// Package dmat: determinant kernels — recursive cofactor (Laplace) expansion
// and Gaussian elimination with partial pivoting.
//
// Purpose:
//   - Provide two interchangeable determinant algorithms over the same value
//     type: exact-structure cofactor expansion for small n, cubic Gaussian
//     elimination for larger n. Both agree within floating tolerance.
//
// Policy:
//   - A singular matrix is a SUCCESSFUL result (0.0), never an error.
//   - The caller's matrix is never mutated: Gaussian elimination works on a
//     private scratch copy of the grid.
//   - The 0×0 matrix has determinant 1.0 (empty product); it is the single
//     place where an uninitialized matrix is accepted, because identity(0)
//     must satisfy det == 1.0.
//
// Determinism & Performance:
//   - Fixed pivot scan and elimination orders; no randomization.
//   - Cofactor expansion is O(n!) — intended for n ≤ ~6. Gaussian elimination
//     is O(n³). Engine.Det dispatches between them on a size cutoff.

package dmat

import (
	"fmt"
	"math"
)

// validateDeterminant admits nil-safe square input, tolerating the 0×0 case.
// Unlike ValidateSquareNonNull, an initialized-empty matrix passes — its
// determinant is the empty product.
func validateDeterminant(m Matrix, opTag string) error {
	// Reject absent references outright.
	if m == nil {
		return matrixErrorf(opTag, validatorErrorf("ValidateNotNull", ErrNullMatrix))
	}
	if d, isDense := m.(*Dense); isDense && d == nil {
		return matrixErrorf(opTag, validatorErrorf("ValidateNotNull", ErrNullMatrix))
	}
	// Squareness (0 == 0 passes for the empty-product case).
	if m.Rows() != m.Cols() {
		return matrixErrorf(opTag, validatorErrorf("ValidateSquare", ErrDimensionMismatch))
	}
	return nil
}

// DetCofactor computes the determinant by recursive Laplace expansion along
// row 0: det = Σ_j sign_j * m[0,j] * det(minor(m, 0, j)), where sign_j
// alternates +1, −1, +1, … The alternation is carried by flipping a ±1.0
// factor — an exact operation, never a floating-point power.
//
// Implementation:
//   - Stage 1: validateDeterminant (null / square guards).
//   - Stage 2: base cases n==0 → 1.0 (empty product), n==1 → sole cell.
//   - Stage 3: expand along row 0, recursing into Minor(m, 0, j); zero
//     coefficients skip the recursion entirely.
//
// Errors: ErrNullMatrix, ErrDimensionMismatch (non-square).
//
// Complexity: Time O(n!), Space O(n²) per recursion level. Intended for
// small matrices (n ≤ ~6); use DetGauss beyond that.
func DetCofactor(m Matrix) (float64, error) {
	// Validate null/square before any data access.
	if err := validateDeterminant(m, opDetCofact); err != nil {
		return 0, err
	}
	n := m.Rows()

	// Base case: determinant of the 0×0 matrix is the empty product.
	if n == 0 {
		return 1.0, nil
	}
	// Base case: 1×1 determinant is the sole cell.
	if n == 1 {
		v, err := m.At(0, 0)
		if err != nil {
			return 0, matrixErrorf(opDetCofact, err)
		}
		return v, nil
	}

	// Expand along row 0 with exact sign alternation.
	var (
		det   float64       // accumulated determinant
		sign  float64 = 1.0 // (−1)^j carried by flipping, not by math.Pow
		coeff float64       // m[0,j]
		sub   Matrix        // minor(m, 0, j)
		sd    float64       // det of the minor
		err   error
	)
	for j := 0; j < n; j++ {
		coeff, err = m.At(0, j)
		if err != nil {
			return 0, matrixErrorf(opDetCofact, fmt.Errorf("At(0,%d): %w", j, err))
		}
		// Zero coefficient contributes nothing; skip the factorial recursion.
		if coeff != 0 {
			sub, err = Minor(m, 0, j)
			if err != nil {
				return 0, matrixErrorf(opDetCofact, err)
			}
			sd, err = DetCofactor(sub)
			if err != nil {
				return 0, err // already tagged by the recursive call
			}
			det += sign * coeff * sd
		}
		sign = -sign // exact alternation: +1, −1, +1, …
	}
	return det, nil
}

// DetGauss computes the determinant by Gaussian elimination with partial
// pivoting. The caller's matrix is never mutated — elimination runs on a
// private scratch copy of the grid.
//
// Implementation:
//   - Stage 1: validateDeterminant; n==0 → 1.0; identity short-circuit → 1.0.
//   - Stage 2: copy the grid into a flat scratch buffer.
//   - Stage 3: for each pivot column c, pick the row in [c, n) with the
//     largest |entry| in column c (partial pivoting for numerical stability);
//     an all-zero pivot column means the matrix is singular → 0.0, a normal
//     successful outcome; a row swap flips the accumulator's sign; multiply
//     the accumulator by the pivot and eliminate below it.
//
// Errors: ErrNullMatrix, ErrDimensionMismatch (non-square).
//
// Determinism: fixed c→row scan orders; ties in the pivot scan resolve to the
// smallest row index.
// Complexity: Time O(n³), Space O(n²) for the scratch copy.
//
// Notes:
//   - Near-singular matrices can yield numerically unstable small values;
//     that is inherent to floating elimination, not a defect.
func DetGauss(m Matrix) (float64, error) {
	// Validate null/square before any data access.
	if err := validateDeterminant(m, opDetGauss); err != nil {
		return 0, err
	}
	n := m.Rows()

	// Determinant of the 0×0 matrix is the empty product.
	if n == 0 {
		return 1.0, nil
	}
	// Identity short-circuit: no elimination needed.
	if ok, err := IsIdentity(m); err != nil {
		return 0, matrixErrorf(opDetGauss, err)
	} else if ok {
		return 1.0, nil
	}

	// Copy the grid into a flat row-major scratch buffer (never mutate m).
	w := make([]float64, n*n)
	if dm, isDense := m.(*Dense); isDense {
		copy(w, dm.data) // fast path: one bulk copy
	} else {
		var v float64
		var err error
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				v, err = m.At(i, j)
				if err != nil {
					return 0, matrixErrorf(opDetGauss, fmt.Errorf("At(%d,%d): %w", i, j, err))
				}
				w[i*n+j] = v
			}
		}
	}

	det := 1.0 // running determinant accumulator
	var (
		c, r, k  int     // loop iterators
		pivotRow int     // row selected by partial pivoting
		best     float64 // |w[pivotRow, c]|
		abs      float64 // |candidate|
		pivot    float64 // w[c, c] after the swap
		factor   float64 // elimination multiplier
	)
	for c = 0; c < n; c++ {
		// Partial pivoting: largest absolute value in column c, rows [c, n).
		pivotRow, best = c, math.Abs(w[c*n+c])
		for r = c + 1; r < n; r++ {
			abs = math.Abs(w[r*n+c])
			if abs > best {
				pivotRow, best = r, abs
			}
		}
		// No row has a nonzero entry in this column: singular, det == 0.
		if w[pivotRow*n+c] == 0.0 {
			return 0.0, nil
		}
		// Swap rows if needed; each swap flips the determinant's sign.
		if pivotRow != c {
			rowC, rowP := w[c*n:(c+1)*n], w[pivotRow*n:(pivotRow+1)*n]
			for k = 0; k < n; k++ {
				rowC[k], rowP[k] = rowP[k], rowC[k]
			}
			det = -det
		}
		// Fold the pivot into the accumulator, then eliminate below it.
		pivot = w[c*n+c]
		det *= pivot
		for r = c + 1; r < n; r++ {
			factor = w[r*n+c] / pivot
			if factor == 0 {
				continue // row already eliminated in this column
			}
			for k = c; k < n; k++ {
				w[r*n+k] -= factor * w[c*n+k]
			}
		}
	}
	return det, nil
}

// DetCofactorGrid is the raw-grid entry point for DetCofactor: the grid is
// wrapped into a Dense first (validated and deep-copied), then expanded.
//
// Errors: ErrNullMatrix (nil/empty grid), ErrRaggedGrid, ErrDimensionMismatch.
// Complexity: as DetCofactor plus an O(n²) copy.
func DetCofactorGrid(grid [][]float64) (float64, error) {
	m, err := NewFromGrid(grid)
	if err != nil {
		return 0, matrixErrorf(opDetCofact, err)
	}
	return DetCofactor(m)
}

// DetGaussGrid is the raw-grid entry point for DetGauss: the grid is wrapped
// into a Dense first (validated and deep-copied), then eliminated.
//
// Errors: ErrNullMatrix (nil/empty grid), ErrRaggedGrid, ErrDimensionMismatch.
// Complexity: as DetGauss plus an O(n²) copy.
func DetGaussGrid(grid [][]float64) (float64, error) {
	m, err := NewFromGrid(grid)
	if err != nil {
		return 0, matrixErrorf(opDetGauss, err)
	}
	return DetGauss(m)
}
