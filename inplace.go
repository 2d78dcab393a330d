// SPDX-License-Identifier: MIT
// Package dmat: in-place mutation wrappers.
// The pure kernels (Add/Sub/Scale/Transpose) are the primary representation;
// each mutating variant is a thin wrapper that computes the pure result and
// replaces the receiver's backing storage. No arithmetic logic is duplicated
// here. On error the receiver is left untouched.

package dmat

// adopt replaces m's grid and cached dimensions with src's. src must be a
// freshly computed result exclusively owned by the caller — adopt does not
// copy, it takes ownership of src's backing slice.
// Complexity: O(1).
func (m *Dense) adopt(src *Dense) {
	m.r, m.c, m.data = src.r, src.c, src.data
}

// AddInPlace sets m = m + b, replacing m's backing grid with the sum.
// Shape rules are those of Add; on error m is unchanged.
//
// Errors: ErrNullMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*c), Space O(r*c) for the transient result.
func (m *Dense) AddInPlace(b Matrix) error {
	res, err := Add(m, b)
	if err != nil {
		return err
	}
	m.adopt(res)
	return nil
}

// SubInPlace sets m = m - b, replacing m's backing grid with the difference.
// Shape rules are those of Sub; on error m is unchanged.
//
// Errors: ErrNullMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*c), Space O(r*c) for the transient result.
func (m *Dense) SubInPlace(b Matrix) error {
	res, err := Sub(m, b)
	if err != nil {
		return err
	}
	m.adopt(res)
	return nil
}

// ScaleInPlace multiplies every cell of m by alpha, writing directly into the
// existing backing grid (no reallocation — the shape cannot change).
//
// Errors: ErrNullMatrix.
// Complexity: Time O(r*c), Space O(1).
func (m *Dense) ScaleInPlace(alpha float64) error {
	if err := ValidateNotNull(m); err != nil {
		return matrixErrorf(opScale, err)
	}
	// Single deterministic pass over the flat buffer.
	for idx := range m.data {
		m.data[idx] *= alpha
	}
	return nil
}

// TransposeInPlace transposes m in place. A square matrix swaps cells within
// the same backing grid (no allocation); a non-square matrix swaps the cached
// row/column counts and replaces the backing grid with the freshly computed
// transpose — a full reallocation, not a view.
//
// Errors: ErrNullMatrix.
// Complexity: Time O(r*c); Space O(1) square, O(r*c) non-square.
func (m *Dense) TransposeInPlace() error {
	if err := ValidateNotNull(m); err != nil {
		return matrixErrorf(opTranspose, err)
	}

	// Square: swap the strict upper triangle with the strict lower triangle
	// inside the existing buffer.
	if m.r == m.c {
		n := m.r
		var i, j int
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				m.data[i*n+j], m.data[j*n+i] = m.data[j*n+i], m.data[i*n+j]
			}
		}
		return nil
	}

	// Non-square: materialize the transpose and adopt its storage, which
	// swaps the owner's dimensions as a side effect.
	res, err := Transpose(m)
	if err != nil {
		return err
	}
	m.adopt(res)
	return nil
}
