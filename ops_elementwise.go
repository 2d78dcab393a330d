// SPDX-License-Identifier: MIT
// Package dmat: elementwise kernels — addition, subtraction, scalar scaling.
// All functions perform strict fail-fast validation before touching data,
// never mutate their inputs, and return a freshly allocated Dense. Mutating
// variants live in inplace.go as thin wrappers over these pure kernels.

package dmat

import "fmt"

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Internal helper for Add/Sub to share validation, allocation and fast path.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b); allocate Dense(rows, cols).
//   - Stage 2: Fast path if both are *Dense — single flat loop 0..n-1.
//     Otherwise fallback At/Set with fixed i→j order.
//
// Errors:
//   - ErrNullMatrix         (nil/uninitialized operand).
//   - ErrDimensionMismatch  (shape difference).
//
// Determinism:
//   - Flat 0..(r*c−1) in the fast path; fixed i→j nesting in the fallback.
//
// Complexity: Time O(r*c), Space O(r*c) for the new result.
func addSub(a, b Matrix, sign float64, opTag string) (*Dense, error) {
	// Validate presence and matching shapes (null check always comes first).
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Allocate result Dense.
	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Fast path: *Dense with *Dense → single flat loop.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			length := rows * cols
			for idx := 0; idx < length; idx++ { // deterministic 0..n-1
				res.data[idx] = da.data[idx] + sign*db.data[idx]
			}
			return res, nil
		}
	}

	// Fallback: interface path with fixed i→j order.
	var i, j int       // loop iterators (deterministic order)
	var av, bv float64 // element temporaries
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			av, err = a.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			bv, err = b.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if err = res.Set(i, j, av+sign*bv); err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}
	return res, nil
}

// Add computes the elementwise sum C = A + B and returns a fresh Dense.
// Inputs are never mutated; operands must be non-null with identical shapes.
//
// Errors: ErrNullMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the elementwise difference C = A - B and returns a fresh Dense.
// Inputs are never mutated; operands must be non-null with identical shapes.
//
// Errors: ErrNullMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*c), Space O(r*c).
func Sub(a, b Matrix) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Scale returns a new matrix whose elements are alpha * m[i,j].
// No dimension constraint: the result always has m's shape. The input is
// validated non-null and never mutated.
//
// Implementation:
//   - Stage 1: ValidateNotNull(m); allocate Dense(rows, cols).
//   - Stage 2: If *Dense, flat multiply; else generic i→j At/Set scaling.
//
// Errors: ErrNullMatrix.
// Complexity: Time O(r*c), Space O(r*c).
//
// Notes:
//   - alpha = 0 yields an explicit zero matrix of the same shape.
//   - NaN/Inf alphas propagate into the result unchecked; the package has no
//     finite-value ingestion policy.
func Scale(m Matrix, alpha float64) (*Dense, error) {
	// Validate input non-null.
	if err := ValidateNotNull(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	// Allocate result Dense.
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	// Fast path: flat slice multiply.
	if dm, ok := m.(*Dense); ok {
		length := rows * cols
		for idx := 0; idx < length; idx++ {
			res.data[idx] = alpha * dm.data[idx]
		}
		return res, nil
	}

	// Fallback: generic interface loop.
	var v float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opScale, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if err = res.Set(i, j, alpha*v); err != nil {
				return nil, matrixErrorf(opScale, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}
	return res, nil
}
