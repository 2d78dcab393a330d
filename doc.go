// Package dmat is a small educational dense-matrix library: construction,
// elementwise arithmetic, matrix multiplication, transposition, trace,
// determinants (two algorithms) and structural predicates.
//
// The dmat package provides:
//
//   - Dense, a row-major float64 matrix behind a minimal Matrix interface,
//     with construction variants (empty, zero-filled, constant-filled,
//     from a literal grid, identity) that always own their backing grid.
//   - Central validators (ValidateNotNull, ValidateBinarySameShape,
//     ValidateMulCompatible, …) that gate every operation before any data is
//     touched, failing fast with errors.Is-matchable sentinels.
//   - Pure kernels — Add, Sub, Scale, Mul, Transpose, Trace — plus thin
//     in-place wrappers on *Dense that replace the owner's grid.
//   - Two interchangeable determinant algorithms: DetCofactor (Laplace
//     expansion, exact structure, O(n!), for small n) and DetGauss (partial
//     pivoting, O(n³)); a singular matrix yields 0.0 as a successful result.
//   - Structural predicates: IsSquare, IsDiagonal, IsIdentity,
//     IsUpperTriangular, IsLowerTriangular, IsPermutation.
//   - Engine, a functional-options facade (failure policy, determinant
//     dispatch cutoff) with no global state.
//
// Everything is synchronous and single-owner: operations either complete or
// fail immediately with a typed error, matrices require external
// synchronization when shared across goroutines, and deep copies (Clone,
// Grid) never alias the source.
//
// See the examples in this package for usage patterns.
package dmat
