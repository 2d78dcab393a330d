// SPDX-License-Identifier: MIT

// Package dmat: functional configuration and the Engine facade.
// This file defines:
//   - FailurePolicy (explicit, caller-supplied error-handling behavior),
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - Engine, a configured facade over the package-level kernels.
//
// Design goals:
//   - Deterministic behavior: no global state, no environment sniffing. The
//     failure policy is a value handed in at the boundary, never a process-wide
//     switch — code that needs a different policy builds a different Engine.
//   - No dead switches: each option impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid option parameters
//     (programmer error at configuration time, not at operation time).
package dmat

// FailurePolicy selects what an Engine does when a validation error occurs.
type FailurePolicy int

const (
	// PolicyPropagate returns validation errors to the caller (default).
	PolicyPropagate FailurePolicy = iota

	// PolicyAbort panics with the validation error instead of returning it.
	// This is the in-process analog of "terminate on failure" for callers
	// that treat any dimensional violation as an unrecoverable bug; a library
	// must never call os.Exit, so abort means panic by contract.
	PolicyAbort
)

// DEFAULTS — single source of truth for zero-value behavior.
const (
	// DefaultFailurePolicy propagates errors; aborting is strictly opt-in.
	DefaultFailurePolicy = PolicyPropagate

	// DefaultCofactorCutoff is the largest dimension for which Engine.Det
	// prefers cofactor expansion over Gaussian elimination. Expansion is
	// O(n!), so the cutoff stays small.
	DefaultCofactorCutoff = 6
)

// Internal panic messages (no magic strings).
const (
	panicFailurePolicyInvalid  = "dmat: WithFailurePolicy: unknown policy value"
	panicCofactorCutoffInvalid = "dmat: WithCofactorCutoff: cutoff must be >= 1"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported to prevent external mutation; public entry points
// accept `...Option` and resolve them via gatherOptions.
type Options struct {
	policy         FailurePolicy // DefaultFailurePolicy
	cofactorCutoff int           // DefaultCofactorCutoff
}

// WithFailurePolicy selects the Engine's error-handling behavior.
// Panics with a stable message when p is not a declared policy value.
func WithFailurePolicy(p FailurePolicy) Option {
	// Validate eagerly: a bogus policy is a programmer error.
	if p != PolicyPropagate && p != PolicyAbort {
		panic(panicFailurePolicyInvalid)
	}
	return func(o *Options) { o.policy = p }
}

// WithCofactorCutoff sets the dimension threshold at which Engine.Det
// switches from cofactor expansion to Gaussian elimination.
// Panics with a stable message when cutoff < 1.
func WithCofactorCutoff(cutoff int) Option {
	// Validate eagerly: a non-positive cutoff would disable both branches.
	if cutoff < 1 {
		panic(panicCofactorCutoffInvalid)
	}
	return func(o *Options) { o.cofactorCutoff = cutoff }
}

// gatherOptions resolves defaults then applies each setter in order.
func gatherOptions(opts ...Option) Options {
	o := Options{
		policy:         DefaultFailurePolicy,
		cofactorCutoff: DefaultCofactorCutoff,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Engine bundles the package-level kernels behind a fixed configuration.
// It carries no mutable state and is safe to share between goroutines as a
// read-only value; the matrices it operates on follow the package's
// single-owner model and still require external synchronization if shared.
type Engine struct {
	opts Options
}

// NewEngine builds an Engine from the given options. Zero options yield the
// default configuration (propagate errors, cutoff 6).
func NewEngine(opts ...Option) *Engine {
	return &Engine{opts: gatherOptions(opts...)}
}

// fail applies the configured failure policy to err: under PolicyAbort a
// non-nil err panics, otherwise it is returned unchanged.
func (e *Engine) fail(err error) error {
	if err != nil && e.opts.policy == PolicyAbort {
		panic(err)
	}
	return err
}

// Add applies the configured policy around the package-level Add.
func (e *Engine) Add(a, b Matrix) (*Dense, error) {
	res, err := Add(a, b)
	return res, e.fail(err)
}

// Sub applies the configured policy around the package-level Sub.
func (e *Engine) Sub(a, b Matrix) (*Dense, error) {
	res, err := Sub(a, b)
	return res, e.fail(err)
}

// Scale applies the configured policy around the package-level Scale.
func (e *Engine) Scale(m Matrix, alpha float64) (*Dense, error) {
	res, err := Scale(m, alpha)
	return res, e.fail(err)
}

// Mul applies the configured policy around the package-level Mul.
func (e *Engine) Mul(a, b Matrix) (*Dense, error) {
	res, err := Mul(a, b)
	return res, e.fail(err)
}

// Transpose applies the configured policy around the package-level Transpose.
func (e *Engine) Transpose(m Matrix) (*Dense, error) {
	res, err := Transpose(m)
	return res, e.fail(err)
}

// Trace applies the configured policy around the package-level Trace.
func (e *Engine) Trace(m Matrix) (float64, error) {
	v, err := Trace(m)
	return v, e.fail(err)
}

// DetCofactor applies the configured policy around the package-level DetCofactor.
func (e *Engine) DetCofactor(m Matrix) (float64, error) {
	v, err := DetCofactor(m)
	return v, e.fail(err)
}

// DetGauss applies the configured policy around the package-level DetGauss.
func (e *Engine) DetGauss(m Matrix) (float64, error) {
	v, err := DetGauss(m)
	return v, e.fail(err)
}

// Det computes the determinant, dispatching on the matrix dimension: cofactor
// expansion up to the configured cutoff (exact structure, O(n!)), Gaussian
// elimination beyond it (O(n³)). Both branches agree within floating
// tolerance, so the dispatch is an implementation detail, not a semantic one.
//
// Errors: ErrNullMatrix, ErrDimensionMismatch — under PolicyAbort these panic.
func (e *Engine) Det(m Matrix) (float64, error) {
	// Validate here so dispatch reads a trustworthy dimension.
	if err := validateDeterminant(m, opDet); err != nil {
		return 0, e.fail(err)
	}
	if m.Rows() <= e.opts.cofactorCutoff {
		v, err := DetCofactor(m)
		return v, e.fail(err)
	}
	v, err := DetGauss(m)
	return v, e.fail(err)
}
