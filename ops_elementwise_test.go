// SPDX-License-Identifier: MIT
// Package dmat_test: unit tests for the elementwise kernels (Add/Sub/Scale)
// and their in-place wrappers.
package dmat_test

import (
	"testing"

	"github.com/katalvlaran/dmat"
	"github.com/stretchr/testify/require"
)

// TestAddConcrete pins the spec scenario [[1,2],[3,4]] + [[5,6],[7,8]].
func TestAddConcrete(t *testing.T) {
	a := mustFromGrid(t, [][]float64{{1, 2}, {3, 4}})
	b := mustFromGrid(t, [][]float64{{5, 6}, {7, 8}})

	sum, err := dmat.Add(a, b)
	require.NoError(t, err)
	requireGridEqual(t, mustFromGrid(t, [][]float64{{6, 8}, {10, 12}}), sum)

	// Inputs are never mutated by the pure kernel.
	requireGridEqual(t, mustFromGrid(t, [][]float64{{1, 2}, {3, 4}}), a)
}

// TestAddSubRoundTrip verifies add(a,b) then subtract(result,b) equals a.
func TestAddSubRoundTrip(t *testing.T) {
	a := mustFromGrid(t, randomGrid(4, 1))
	b := mustFromGrid(t, randomGrid(4, 2))

	sum, err := dmat.Add(a, b)
	require.NoError(t, err)
	back, err := dmat.Sub(sum, b)
	require.NoError(t, err)

	requireGridEqual(t, a, back) // round-trip within floating tolerance
}

// TestAddSubValidation covers null and mismatched-shape failures.
func TestAddSubValidation(t *testing.T) {
	a := mustFromGrid(t, [][]float64{{1, 2}, {3, 4}})
	rect := mustFromGrid(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	_, err := dmat.Add(a, rect) // 2×2 vs 2×3
	require.ErrorIs(t, err, dmat.ErrDimensionMismatch)

	_, err = dmat.Sub(rect, a)
	require.ErrorIs(t, err, dmat.ErrDimensionMismatch)

	_, err = dmat.Add(dmat.NewEmpty(), a) // uninitialized left operand
	require.ErrorIs(t, err, dmat.ErrNullMatrix)

	_, err = dmat.Sub(a, nil) // absent right operand
	require.ErrorIs(t, err, dmat.ErrNullMatrix)
}

// TestScale verifies scalar multiplication, shape preservation and the
// zero-scalar case.
func TestScale(t *testing.T) {
	m := mustFromGrid(t, [][]float64{{1, -2, 3}, {4, 5, -6}})

	doubled, err := dmat.Scale(m, 2)
	require.NoError(t, err)
	requireGridEqual(t, mustFromGrid(t, [][]float64{{2, -4, 6}, {8, 10, -12}}), doubled)
	require.Equal(t, m.Rows(), doubled.Rows()) // same shape, no constraint
	require.Equal(t, m.Cols(), doubled.Cols())

	zeroed, err := dmat.Scale(m, 0)
	require.NoError(t, err)
	requireGridEqual(t, mustFromGrid(t, [][]float64{{0, 0, 0}, {0, 0, 0}}), zeroed)

	_, err = dmat.Scale(dmat.NewEmpty(), 3)
	require.ErrorIs(t, err, dmat.ErrNullMatrix)
}

// TestElementwiseFallbackPath ensures the generic interface path computes
// exactly what the Dense fast path computes.
func TestElementwiseFallbackPath(t *testing.T) {
	a := mustFromGrid(t, randomGrid(3, 3))
	b := mustFromGrid(t, randomGrid(3, 4))

	fast, err := dmat.Add(a, b)
	require.NoError(t, err)
	slow, err := dmat.Add(hide{a}, b) // de-opt only one operand
	require.NoError(t, err)
	requireGridEqual(t, fast, slow)

	fastScale, err := dmat.Scale(a, -1.5)
	require.NoError(t, err)
	slowScale, err := dmat.Scale(hide{a}, -1.5)
	require.NoError(t, err)
	requireGridEqual(t, fastScale, slowScale)
}

// TestInPlaceWrappers verifies the mutating variants replace the receiver's
// grid and leave it untouched on error.
func TestInPlaceWrappers(t *testing.T) {
	a := mustFromGrid(t, [][]float64{{1, 2}, {3, 4}})
	b := mustFromGrid(t, [][]float64{{5, 6}, {7, 8}})

	require.NoError(t, a.AddInPlace(b))
	requireGridEqual(t, mustFromGrid(t, [][]float64{{6, 8}, {10, 12}}), a)

	require.NoError(t, a.SubInPlace(b))
	requireGridEqual(t, mustFromGrid(t, [][]float64{{1, 2}, {3, 4}}), a)

	require.NoError(t, a.ScaleInPlace(10))
	requireGridEqual(t, mustFromGrid(t, [][]float64{{10, 20}, {30, 40}}), a)

	// Failed mutation leaves the receiver unchanged.
	rect := mustFromGrid(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	err := a.AddInPlace(rect)
	require.ErrorIs(t, err, dmat.ErrDimensionMismatch)
	requireGridEqual(t, mustFromGrid(t, [][]float64{{10, 20}, {30, 40}}), a)
}
