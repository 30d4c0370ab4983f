// Package group: sentinel errors, functional options, and the Group
// capability interface shared by the concrete group types.
package group

import (
	"errors"
	"math"

	"github.com/katalvlaran/symmetry/genmat"
)

var (
	// ErrNoGenerators is returned when a group is constructed from an empty
	// generator list.
	ErrNoGenerators = errors.New("group: no generators provided")

	// ErrMalformedGenerator indicates a generator whose columns are not
	// orthonormal (some column norm differs from 1 beyond eps).
	ErrMalformedGenerator = errors.New("group: generator is not column-orthonormal")

	// ErrIdentityGenerator indicates a required-nontrivial generator equal to
	// the identity matrix.
	ErrIdentityGenerator = errors.New("group: generator equals the identity")

	// ErrNotInvolutive indicates a generator h with h·h ≠ I.
	ErrNotInvolutive = errors.New("group: generator squared is not the identity")

	// ErrClosure indicates a composed element (e.g. Klein four's a·b) that
	// fails its involution or non-triviality requirement.
	ErrClosure = errors.New("group: composed generators violate closure")

	// ErrInfeasibleConstruction indicates canonical-construction preconditions
	// were violated (e.g. invDims ≥ d−1, or a Klein four dimension that is not
	// a multiple of 4).
	ErrInfeasibleConstruction = errors.New("group: canonical construction infeasible")
)

// DefaultEpsilon is the non-negative tolerance used by all trace, norm and
// diagonal comparisons.
const DefaultEpsilon = 1e-9

// panic message for nonsensical option values (programmer error).
const panicEpsilonInvalid = "group: WithEpsilon: eps must be finite, non-negative"

// AdjustFunc observes a silent parity adjustment during canonical
// construction: requested is the caller's invariant-dimension count, granted
// the count the construction will actually deliver. Purely observational.
type AdjustFunc func(requested, granted int)

// Option mutates construction options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	eps      float64    // numeric tolerance, >= 0
	onAdjust AdjustFunc // parity-adjustment hook, may be nil
}

// DefaultOptions returns the documented defaults: DefaultEpsilon tolerance
// and no adjustment hook.
func DefaultOptions() Options {
	return Options{eps: DefaultEpsilon, onAdjust: nil}
}

// WithEpsilon sets the numeric tolerance used by orthonormality, identity
// and involution checks. Panics on NaN, ±Inf or negative values
// (programmer error; strict option constructors panic rather than return).
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithOnAdjust installs fn as the parity-adjustment hook of
// CanonicalOrderTwo. The hook fires exactly when an odd invariant-dimension
// request on an even dimension is rounded up to the next even number.
func WithOnAdjust(fn AdjustFunc) Option {
	return func(o *Options) { o.onAdjust = fn }
}

// gatherOptions applies user setters on top of defaults (last-writer-wins).
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, set := range opts {
		set(&o)
	}

	return o
}

// Group is the capability interface implemented by every concrete group
// type. There is intentionally no "base implementation" of DiscreteActions:
// element enumeration is a compile-time requirement of each concrete type,
// never a runtime not-implemented surprise.
type Group interface {
	// Dimension returns the size d of the acted-upon vector space.
	Dimension() int

	// Generators returns the ordered nontrivial generator matrices.
	Generators() []genmat.Matrix

	// DiscreteActions enumerates every group element, identity included.
	DiscreteActions() []genmat.Matrix

	// GeneratorTraces returns each generator's trace (its character).
	GeneratorTraces() []float64
}

// Compile-time interface checks for the concrete group types.
var (
	_ Group = (*OrderTwo)(nil)
	_ Group = (*KleinFour)(nil)
)
