// SPDX-License-Identifier: MIT
// Package dmat_test contains shared test helpers.
//
// Purpose:
//   - Provide small, deterministic fixtures and utilities for the kernels.
//   - Keep all data finite and well-formed; no randomness without a fixed seed.

package dmat_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/dmat"
	"github.com/stretchr/testify/require"
)

// eps is the shared absolute/relative tolerance for floating comparisons.
const eps = 1e-9

// hide wraps any Matrix to mask its concrete type from type assertions,
// forcing the generic (non-*Dense) fallback path in the code under test.
// Wrap only the operand you want to de-opt; keep the other one *Dense to
// isolate path differences.
type hide struct{ dmat.Matrix }

// mustFromGrid builds a *Dense from a literal grid or aborts the test.
func mustFromGrid(t *testing.T, grid [][]float64) *dmat.Dense {
	t.Helper()
	m, err := dmat.NewFromGrid(grid)
	require.NoError(t, err) // fixture grids are always well-formed
	return m
}

// mustIdentity builds the n×n identity or aborts the test.
func mustIdentity(t *testing.T, n int) *dmat.Dense {
	t.Helper()
	m, err := dmat.NewIdentity(n)
	require.NoError(t, err)
	return m
}

// randomGrid produces an n×n grid of values in [-5, 5) from a fixed seed,
// so every run sees the same matrices.
func randomGrid(n int, seed int64) [][]float64 {
	rng := rand.New(rand.NewSource(seed)) // deterministic stream
	grid := make([][]float64, n)
	for i := range grid {
		grid[i] = make([]float64, n)
		for j := range grid[i] {
			grid[i][j] = rng.Float64()*10 - 5
		}
	}
	return grid
}

// requireGridEqual asserts two matrices agree cell-by-cell within eps.
func requireGridEqual(t *testing.T, want, got dmat.Matrix) {
	t.Helper()
	require.Equal(t, want.Rows(), got.Rows()) // shapes must match first
	require.Equal(t, want.Cols(), got.Cols())
	for i := 0; i < want.Rows(); i++ {
		for j := 0; j < want.Cols(); j++ {
			wv, err := want.At(i, j)
			require.NoError(t, err)
			gv, err := got.At(i, j)
			require.NoError(t, err)
			require.InDelta(t, wv, gv, eps, "cell (%d,%d)", i, j)
		}
	}
}
