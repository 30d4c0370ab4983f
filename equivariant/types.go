// Package equivariant: sentinel errors and functional options for orbit
// discovery and basis extraction.
package equivariant

import (
	"context"
	"errors"
	"math"
)

var (
	// ErrMatrixNil is returned when a nil Matrix is passed to Orbits or Basis.
	ErrMatrixNil = errors.New("equivariant: matrix is nil")

	// ErrNotGeneralizedPermutation indicates the input matrix violates the
	// generalized-permutation shape: some row or column does not carry
	// exactly one nonzero entry of magnitude 1.
	ErrNotGeneralizedPermutation = errors.New("equivariant: matrix is not a generalized permutation")
)

// DefaultEpsilon is the tolerance used to classify entries as zero, +1 or −1.
const DefaultEpsilon = 1e-9

// panic message for nonsensical option values (programmer error).
const panicEpsilonInvalid = "equivariant: WithEpsilon: eps must be finite, non-negative"

// ProgressFunc observes orbit discovery: done coordinates assigned so far
// out of total. Purely observational; it has no effect on results.
type ProgressFunc func(done, total int)

// Option configures optional behavior of Orbits and Basis.
type Option func(*Options)

// Options holds configurable parameters for orbit discovery and basis
// extraction. Complexity stays O(d) when hooks are O(1).
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// Cancelling the context aborts orbit discovery early.
	Ctx context.Context

	// OnProgress, if non-nil, is invoked once per coordinate as it is
	// assigned to an orbit.
	OnProgress ProgressFunc

	// Eps is the tolerance for entry classification. Default DefaultEpsilon.
	Eps float64
}

// DefaultOptions returns an Options struct with a background context, no
// progress hook, and the default tolerance.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		OnProgress: nil,
		Eps:        DefaultEpsilon,
	}
}

// WithContext returns an Option that sets the context for discovery.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnProgress returns an Option that installs fn as the per-coordinate
// progress hook.
func WithOnProgress(fn ProgressFunc) Option {
	return func(o *Options) {
		o.OnProgress = fn
	}
}

// WithEpsilon returns an Option that sets the entry-classification
// tolerance. Panics on NaN, ±Inf or negative values (programmer error).
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.Eps = eps }
}

// gatherOptions applies user setters on top of defaults (last-writer-wins).
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, set := range opts {
		set(&o)
	}

	return o
}
