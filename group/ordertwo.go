// Package group: OrderTwo is the reflection-type group {I, h} over a single
// involutive, non-identity generator, plus its canonical construction for an
// arbitrary vector-space dimension with a controllable number of pointwise
// invariant coordinates.
package group

import (
	"fmt"

	"github.com/katalvlaran/symmetry/genmat"
)

// OrderTwo is a concrete group over one generator h with h ≠ I and h·h = I.
type OrderTwo struct {
	*Core
}

// NewOrderTwo validates h and constructs the order-2 group it generates.
//
// Stage 1 (Validate): shared Core validation (orthonormal columns, storage
// unification, invariant dimensions).
// Stage 2 (Algebra): reject the identity (trace(h) = d) with
// ErrIdentityGenerator; reject non-involutions (trace(h·h) ≠ d) with
// ErrNotInvolutive. Both checks run on traces — sufficient because h·h is
// itself a generalized permutation matrix.
//
// Complexity: O(d) sparse, O(d²) dense (dominated by the product h·h).
func NewOrderTwo(h genmat.Matrix, opts ...Option) (*OrderTwo, error) {
	o := gatherOptions(opts...)

	// 1. Shared validation over the single-generator list.
	core, err := newCore([]genmat.Matrix{h}, o)
	if err != nil {
		return nil, err
	}
	gen := core.gens[0] // storage-unified form

	// 2. The generator must not be the identity.
	isEye, err := isIdentityByTrace(gen, core.d, o.eps)
	if err != nil {
		return nil, fmt.Errorf("group: OrderTwo: %w", err)
	}
	if isEye {
		return nil, ErrIdentityGenerator
	}

	// 3. The generator must be involutive: h·h = I.
	hh, err := genmat.Mul(gen, gen)
	if err != nil {
		return nil, fmt.Errorf("group: OrderTwo: %w", err)
	}
	isInv, err := isIdentityByTrace(hh, core.d, o.eps)
	if err != nil {
		return nil, fmt.Errorf("group: OrderTwo: %w", err)
	}
	if !isInv {
		return nil, ErrNotInvolutive
	}

	return &OrderTwo{Core: core}, nil
}

// DiscreteActions returns the two group elements [I, h], with the identity
// materialized in the group's unified storage kind.
func (g *OrderTwo) DiscreteActions() []genmat.Matrix {
	return []genmat.Matrix{g.identityLike(), g.gens[0]}
}

// String implements fmt.Stringer.
func (g *OrderTwo) String() string { return fmt.Sprintf("C2[d:%d]", g.d) }

// CanonicalOrderTwo synthesizes the canonical order-2 group for dimension d
// with invDims pointwise-invariant coordinates.
//
// The generator starts as the reversal permutation p[i] = d−1−i with all +1
// signs, then is adjusted for parity:
//
//   - Odd d: the reversal fixes the middle coordinate. An even invDims
//     request flips the middle sign (removing that automatic fixed point);
//     an odd request spends one unit of the invariant budget on it.
//   - Even d: the reversal has no natural fixed point, so an odd invDims
//     request is infeasible as stated; it is rounded up to the next even
//     number and the adjustment is reported through the WithOnAdjust hook.
//
// The remaining budget n = id/2 is paid by swapping the relative block order
// of the first and last n positions of the permutation array, which turns
// those 2n positions into fixed points of the composed permutation.
//
// Preconditions: d > 0, 0 ≤ invDims < d−1 (at least one non-invariant
// coordinate pair must remain to carry the nontrivial action); violations
// return ErrInfeasibleConstruction.
//
// Postcondition: the constructed group's NumInvariantDimensions equals the
// (possibly parity-adjusted) invDims; a mismatch indicates a construction
// bug and is returned as a wrapped ErrInfeasibleConstruction rather than a
// silently wrong group.
//
// Complexity: O(d).
func CanonicalOrderTwo(d, invDims int, opts ...Option) (*OrderTwo, error) {
	o := gatherOptions(opts...)

	// 1. Preconditions.
	if d <= 0 {
		return nil, fmt.Errorf("group: CanonicalOrderTwo: dimension %d: %w", d, ErrInfeasibleConstruction)
	}
	if invDims < 0 || invDims >= d-1 {
		return nil, fmt.Errorf("group: CanonicalOrderTwo: invDims %d of d=%d: %w", invDims, d, ErrInfeasibleConstruction)
	}

	// 2. Fully equivariant starting point: reversal with all +1 signs.
	p := make([]int, d)
	r := make([]float64, d)
	var i int
	for i = 0; i < d; i++ {
		p[i] = d - 1 - i
		r[i] = 1
	}

	// 3. Parity handling of the invariant budget.
	id := invDims      // internal budget counter
	granted := invDims // what the construction will actually deliver
	if d%2 > 0 {       // odd d: the reversal has a fixed middle coordinate
		if id%2 == 0 {
			r[d/2] = -1 // remove the automatic middle fixed point
		} else {
			id-- // the middle point itself pays one unit of the budget
		}
	} else if id%2 > 0 { // even d cannot host an odd invariant count
		granted++
		id = granted
		if o.onAdjust != nil {
			o.onAdjust(invDims, granted)
		}
	}

	// 4. Force 2n coordinates into fixed points: swap the relative block
	// order of the first and last n positions of the reversal.
	if n := id / 2; n > 0 {
		pc := append([]int(nil), p...)
		for i = 0; i < n; i++ {
			p[i] = pc[d-1-i]     // first n ← reversed tail block
			p[d-n+i] = pc[n-1-i] // last n  ← reversed head block
		}
	}

	// 5. Materialize the generator and construct the group.
	h, err := genmat.OnelineToMatrix(p, r)
	if err != nil {
		return nil, fmt.Errorf("group: CanonicalOrderTwo: %w", err)
	}
	g, err := NewOrderTwo(h, opts...)
	if err != nil {
		return nil, fmt.Errorf("group: CanonicalOrderTwo: %w", err)
	}

	// 6. Postcondition: the granted invariant count must hold exactly.
	if got := g.NumInvariantDimensions(); got != granted {
		return nil, fmt.Errorf("group: CanonicalOrderTwo: built %d invariant dimensions, want %d: %w",
			got, granted, ErrInfeasibleConstruction)
	}

	return g, nil
}
