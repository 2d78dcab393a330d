// SPDX-License-Identifier: MIT
// Package dmat_test: unit tests for the functional options and the Engine
// facade — failure-policy behavior and determinant dispatch.
package dmat_test

import (
	"testing"

	"github.com/katalvlaran/dmat"
	"github.com/stretchr/testify/require"
)

// TestEngineDefaultsPropagate verifies the zero-option Engine returns errors
// instead of panicking.
func TestEngineDefaultsPropagate(t *testing.T) {
	e := dmat.NewEngine()

	_, err := e.Add(dmat.NewEmpty(), mustIdentity(t, 2))
	require.ErrorIs(t, err, dmat.ErrNullMatrix) // propagated, no panic

	_, err = e.Mul(mustIdentity(t, 2), mustIdentity(t, 3))
	require.ErrorIs(t, err, dmat.ErrDimensionMismatch)
}

// TestEngineAbortPanics verifies PolicyAbort escalates validation errors to
// panics while leaving successful calls untouched.
func TestEngineAbortPanics(t *testing.T) {
	e := dmat.NewEngine(dmat.WithFailurePolicy(dmat.PolicyAbort))

	require.Panics(t, func() {
		_, _ = e.Add(dmat.NewEmpty(), mustIdentity(t, 2)) // null operand must panic
	})
	require.Panics(t, func() {
		_, _ = e.Det(mustFromGrid(t, [][]float64{{1, 2, 3}, {4, 5, 6}})) // non-square must panic
	})

	// Valid input is unaffected by the policy.
	sum, err := e.Add(mustIdentity(t, 2), mustIdentity(t, 2))
	require.NoError(t, err)
	requireGridEqual(t, mustFromGrid(t, [][]float64{{2, 0}, {0, 2}}), sum)
}

// TestEngineOperationsDelegate spot-checks that Engine methods compute the
// same results as the package-level kernels.
func TestEngineOperationsDelegate(t *testing.T) {
	e := dmat.NewEngine()
	a := mustFromGrid(t, [][]float64{{1, 2}, {3, 4}})
	b := mustFromGrid(t, [][]float64{{5, 6}, {7, 8}})

	sum, err := e.Add(a, b)
	require.NoError(t, err)
	requireGridEqual(t, mustFromGrid(t, [][]float64{{6, 8}, {10, 12}}), sum)

	diff, err := e.Sub(a, b)
	require.NoError(t, err)
	requireGridEqual(t, mustFromGrid(t, [][]float64{{-4, -4}, {-4, -4}}), diff)

	scaled, err := e.Scale(a, 2)
	require.NoError(t, err)
	requireGridEqual(t, mustFromGrid(t, [][]float64{{2, 4}, {6, 8}}), scaled)

	prod, err := e.Mul(a, b)
	require.NoError(t, err)
	requireGridEqual(t, mustFromGrid(t, [][]float64{{19, 22}, {43, 50}}), prod)

	at, err := e.Transpose(a)
	require.NoError(t, err)
	requireGridEqual(t, mustFromGrid(t, [][]float64{{1, 3}, {2, 4}}), at)

	tr, err := e.Trace(a)
	require.NoError(t, err)
	require.InDelta(t, 5.0, tr, eps)

	det, err := e.Det(a)
	require.NoError(t, err)
	require.InDelta(t, -2.0, det, eps)
}

// TestEngineDetDispatch verifies the size cutoff routes to the expected
// algorithm: both branches must return the same value, so the dispatch is
// observable only through agreement across cutoff settings.
func TestEngineDetDispatch(t *testing.T) {
	m := mustFromGrid(t, randomGrid(7, 77)) // above the default cutoff of 6

	gaussOnly := dmat.NewEngine(dmat.WithCofactorCutoff(1)) // force Gauss for n ≥ 2
	wide := dmat.NewEngine(dmat.WithCofactorCutoff(8))      // force cofactor up to n = 8

	dg, err := gaussOnly.Det(m)
	require.NoError(t, err)
	dc, err := wide.Det(m)
	require.NoError(t, err)
	require.InDelta(t, dg, dc, eps*(1+absf(dg))) // same value either way

	// The default engine handles n=7 via Gauss without issue.
	def, err := dmat.NewEngine().Det(m)
	require.NoError(t, err)
	require.InDelta(t, dg, def, eps*(1+absf(dg)))
}

// TestOptionConstructorsPanic pins the strict option validation contract.
func TestOptionConstructorsPanic(t *testing.T) {
	require.Panics(t, func() { dmat.WithFailurePolicy(dmat.FailurePolicy(42)) })
	require.Panics(t, func() { dmat.WithCofactorCutoff(0) })
	require.NotPanics(t, func() { dmat.WithCofactorCutoff(1) })
}
