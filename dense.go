// SPDX-License-Identifier: MIT
// Package dmat: Dense value type and construction variants.
// Dense is a concrete, row-major implementation of the Matrix interface,
// storing elements in a flat slice for performance and cache friendliness.
// Every construction variant produces an independent, exclusively-owned grid:
// literal input is deep-copied, results never alias caller memory.

package dmat

import (
	"fmt"
	"strings"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
// The zero value of Dense is the null (uninitialized) matrix: r==c==0 and a
// nil backing slice. Rectangularity is guaranteed by construction — a Dense
// can never be ragged.
type Dense struct {
	r, c int       // cached number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// NewEmpty returns the null (uninitialized) matrix: zero rows, zero columns,
// no backing grid. Every data-bearing operation rejects it with ErrNullMatrix.
// Complexity: O(1).
func NewEmpty() *Dense {
	return &Dense{} // zero value is the null matrix
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): reject negative dimensions; zero dimensions are legal
// and collapse to the null matrix (an empty-shaped grid).
// Stage 2 (Prepare): allocate the flat backing slice.
// Stage 3 (Finalize): return the new Dense.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	// Validate dimensions: negative is a caller bug, zero is a legal shape.
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrNegativeDimensions)
	}
	// A zero-area grid has no cells to own; normalize to the null matrix.
	if rows == 0 || cols == 0 {
		return NewEmpty(), nil
	}
	// Allocate flat slice (zeroed by the runtime).
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewConstant creates an r×c Dense matrix with every cell set to v.
// Shape rules are identical to NewDense.
// Complexity: O(r*c) time and memory.
func NewConstant(rows, cols int, v float64) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("NewConstant(%d,%d): %w", rows, cols, err)
	}
	// Fill the flat buffer in one deterministic pass.
	for idx := range m.data {
		m.data[idx] = v
	}
	return m, nil
}

// NewFromGrid creates a Dense by deep-copying the given rectangular grid.
// Stage 1 (Validate): ValidateGrid rejects nil/empty grids (ErrNullMatrix)
// and ragged grids (ErrRaggedGrid).
// Stage 2 (Copy): each row is copied into the flat backing slice; the result
// never aliases the caller's grid.
// Complexity: O(r*c) time and memory.
func NewFromGrid(grid [][]float64) (*Dense, error) {
	// Validate structure before any allocation.
	if err := ValidateGrid(grid); err != nil {
		return nil, matrixErrorf(opFromGrid, err)
	}
	rows, cols := len(grid), len(grid[0])
	// A grid of empty rows carries no cells; normalize to the null matrix.
	if cols == 0 {
		return NewEmpty(), nil
	}
	m := &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}
	// Deep-copy row by row into the row-major buffer.
	for i := 0; i < rows; i++ {
		copy(m.data[i*cols:(i+1)*cols], grid[i])
	}
	return m, nil
}

// NewIdentity creates the n×n identity matrix: 1.0 on the main diagonal,
// 0.0 elsewhere. n must be ≥ 0; n == 0 yields the null matrix.
// Complexity: O(n²) time and memory.
func NewIdentity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("NewIdentity(%d): %w", n, err)
	}
	// Set the main diagonal; the rest is already zeroed.
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1.0
	}
	return m, nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Dense) Rows() int {
	return m.r // return cached row count
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Dense) Cols() int {
	return m.c // return cached column count
}

// IsEmpty reports whether m is the null (uninitialized) matrix.
// Complexity: O(1).
func (m *Dense) IsEmpty() bool {
	return m == nil || m.r == 0
}

// indexOf computes the flat index for (row, col) or returns ErrIndexOutOfRange.
// Stage 1 (Validate): check 0 ≤ row < r and 0 ≤ col < c.
// Stage 2 (Execute): compute and return the linear index.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	// Validate row index.
	if row < 0 || row >= m.r {
		return 0, denseErrorf(method, row, col, ErrIndexOutOfRange)
	}
	// Validate column index.
	if col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrIndexOutOfRange)
	}
	// Compute flat offset.
	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): read from the flat slice.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}
	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): write into the flat slice.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v
	return nil
}

// Row returns a copy of row i. The returned slice never aliases the backing
// grid, so the caller may mutate it freely.
// Returns ErrIndexOutOfRange if i is outside [0, Rows()).
// Complexity: O(c) time and memory.
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf("Row", i, 0, ErrIndexOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])
	return out, nil
}

// Grid exports the matrix as a freshly allocated [][]float64. The result is a
// deep copy: mutating it never touches m. The null matrix exports nil.
// Complexity: O(r*c) time and memory.
func (m *Dense) Grid() [][]float64 {
	if m.IsEmpty() {
		return nil // null matrix owns no grid
	}
	out := make([][]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = make([]float64, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}
	return out
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory for the copy.
func (m *Dense) Clone() Matrix {
	// Allocate a new slice and copy all elements; nil data stays nil.
	var copyData []float64
	if m.data != nil {
		copyData = make([]float64, len(m.data))
		copy(copyData, m.data)
	}
	return &Dense{r: m.r, c: m.c, data: copyData}
}

// String implements fmt.Stringer for easy debugging: one bracketed row per
// line, e.g. "[1, 2]\n[3, 4]\n". Human-readable diagnostic only — the format
// is not part of any parsing contract. The null matrix renders as "[]\n".
// Complexity: O(r*c) for string construction.
func (m *Dense) String() string {
	if m.IsEmpty() {
		return "[]\n"
	}
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ { // iterate over rows
		sb.WriteByte('[') // open row
		for j = 0; j < m.c; j++ { // iterate over columns
			if j > 0 {
				sb.WriteString(", ") // separate values with comma
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
		}
		sb.WriteString("]\n") // close row
	}
	return sb.String()
}

// Minor returns a new (r-1)×(c-1) matrix produced by deleting row dropRow and
// column dropCol from m, preserving the relative order of the remaining rows
// and columns. Minors are the building block of cofactor expansion.
//
// Implementation:
//   - Stage 1: ValidateNotNull(m); bounds-check dropRow/dropCol.
//   - Stage 2: Fast-path on *Dense copies contiguous row segments around the
//     dropped column; fallback walks At with skip indices.
//
// Errors:
//   - ErrNullMatrix      (nil or uninitialized m).
//   - ErrIndexOutOfRange (dropRow/dropCol outside the valid bounds).
//
// Complexity: O(r*c) time and memory.
func Minor(m Matrix, dropRow, dropCol int) (Matrix, error) {
	// Validate presence before touching any dimension.
	if err := ValidateNotNull(m); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	rows, cols := m.Rows(), m.Cols()
	// Bounds-check the dropped row and column.
	if dropRow < 0 || dropRow >= rows {
		return nil, matrixErrorf(opMinor, fmt.Errorf("row %d: %w", dropRow, ErrIndexOutOfRange))
	}
	if dropCol < 0 || dropCol >= cols {
		return nil, matrixErrorf(opMinor, fmt.Errorf("col %d: %w", dropCol, ErrIndexOutOfRange))
	}

	// Allocate the (r-1)×(c-1) result; a 1×1 parent yields the null matrix.
	res, err := NewDense(rows-1, cols-1)
	if err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	if res.IsEmpty() {
		return res, nil // nothing to copy
	}

	// Fast-path: copy contiguous segments of each kept row around dropCol.
	if dm, ok := m.(*Dense); ok {
		dst := 0
		for i := 0; i < rows; i++ {
			if i == dropRow {
				continue // skip the dropped row entirely
			}
			base := i * cols
			// Left segment [0, dropCol), then right segment (dropCol, cols).
			dst += copy(res.data[dst:], dm.data[base:base+dropCol])
			dst += copy(res.data[dst:], dm.data[base+dropCol+1:base+cols])
		}
		return res, nil
	}

	// Fallback: generic interface walk with skip indices.
	var v float64
	ri := 0 // destination row index
	for i := 0; i < rows; i++ {
		if i == dropRow {
			continue
		}
		rj := 0 // destination column index
		for j := 0; j < cols; j++ {
			if j == dropCol {
				continue
			}
			v, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opMinor, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if err = res.Set(ri, rj, v); err != nil {
				return nil, matrixErrorf(opMinor, fmt.Errorf("Set(%d,%d): %w", ri, rj, err))
			}
			rj++
		}
		ri++
	}
	return res, nil
}
