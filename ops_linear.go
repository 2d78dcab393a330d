// SPDX-License-Identifier: MIT
// Package dmat: linear kernels — matrix product, transpose, trace.
// All functions perform strict fail-fast validation and return clear errors
// on dimension mismatches; inputs are never mutated.

package dmat

import "fmt"

// Mul performs standard matrix multiplication C = A × B (no aliasing).
//
// Implementation:
//   - Stage 1: ValidateMulCompatible — non-null operands and A.Cols == B.Rows.
//     The inner-dimension check is unconditional; incompatible shapes never
//     reach the loops.
//   - Stage 2: If A and B are *Dense, use i→k→j with row-major strides and
//     zero-skip on A[i,k]; otherwise the classic i→j→k inner-product order.
//
// Inputs:
//   - a: left matrix with shape (r × n).
//   - b: right matrix with shape (n × c).
//
// Returns:
//   - *Dense: new C with shape (r × c), C[i,j] = Σ_k A[i,k]*B[k,j].
//
// Errors: ErrNullMatrix, ErrDimensionMismatch (inner mismatch).
//
// Determinism: fixed loop orders (i→k→j fast path, i→j→k fallback).
// Complexity: Time O(r*n*c), Space O(r*c). Correctness over speed — this is
// the plain cubic method, no blocking or striding.
func Mul(a, b Matrix) (*Dense, error) {
	// Validate inputs via the canonical validator.
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Allocate result Dense.
	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var (
		i, j, k         int // loop iterators
		av, bv, current float64
	)
	// Fast path for two Dense matrices.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			// row-major multiplication into res.data
			// da.data layout: i*aCols + k
			// db.data layout: k*bCols + j
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					if av == 0 {
						continue // skip zero for performance
					}
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}
			return res, nil
		}
	}

	// Fallback: generic interface triple loop (i→j→k).
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = 0.0
			for k = 0; k < aCols; k++ {
				av, err = a.At(i, k)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				if av == 0 {
					continue // skip zero for performance
				}
				bv, err = b.At(k, j)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				current += av * bv // accumulate inner product
			}
			if err = res.Set(i, j, current); err != nil {
				return nil, matrixErrorf(opMul, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}
	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// The input is validated non-null and never mutated. Applying Transpose twice
// yields a matrix equal in value to the original.
//
// Implementation:
//   - Stage 1: ValidateNotNull(m); allocate Dense(cols, rows).
//   - Stage 2: If m is *Dense, contiguous flat-slice mapping; else generic
//     i→j loop via At/Set.
//
// Errors: ErrNullMatrix.
// Complexity: Time O(r*c), Space O(r*c) for the returned matrix.
func Transpose(m Matrix) (*Dense, error) {
	// Validate input non-null.
	if err := ValidateNotNull(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	// Allocate result Dense with flipped dimensions.
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows) // dims flipped
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	// Fast path for Dense → Dense.
	var i, j int // loop iterators
	if dm, ok := m.(*Dense); ok {
		// data[i*cols + j] → res.data[j*rows + i]
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[baseSrc+j]
			}
		}
		return res, nil
	}

	// Fallback: generic interface loop.
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if err = res.Set(j, i, v); err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("Set(%d,%d): %w", j, i, err))
			}
		}
	}
	return res, nil
}

// Trace returns the sum of the main-diagonal elements of a square matrix.
//
// Errors: ErrNullMatrix (nil/uninitialized), ErrDimensionMismatch (non-square).
// Complexity: Time O(n), Space O(1).
func Trace(m Matrix) (float64, error) {
	// Null check first, then squareness.
	if err := ValidateSquareNonNull(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}
	n := m.Rows()

	// Fast path: stride the flat buffer along the diagonal.
	if dm, ok := m.(*Dense); ok {
		sum := 0.0
		for i := 0; i < n; i++ {
			sum += dm.data[i*n+i]
		}
		return sum, nil
	}

	// Generic fallback.
	var sum, v float64
	var err error
	for i := 0; i < n; i++ {
		v, err = m.At(i, i)
		if err != nil {
			return 0, matrixErrorf(opTrace, fmt.Errorf("At(%d,%d): %w", i, i, err))
		}
		sum += v
	}
	return sum, nil
}
