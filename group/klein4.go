// Package group: KleinFour is the abelian group {I, a, b, a·b} over two
// commuting involutions whose product is itself a nontrivial involution,
// plus its canonical construction for dimensions divisible by 4.
package group

import (
	"fmt"
	"math"

	"github.com/katalvlaran/symmetry/genmat"
)

// KleinFour is a concrete group over two generators a, b satisfying
// a·a = I, b·b = I, (a·b)·(a·b) = I and a·b ≠ I, so that {I, a, b, a·b}
// is closed and every non-identity element is self-inverse.
type KleinFour struct {
	*Core
	ab genmat.Matrix // cached product a·b, validated at construction
}

// NewKleinFour validates the generator pair and constructs the Klein
// four-group it generates.
//
// Stage 1 (Validate): shared Core validation over both generators
// (dimension equality enforced there).
// Stage 2 (Algebra): each generator must be involutive and non-identity
// (ErrNotInvolutive / ErrIdentityGenerator, as for OrderTwo); the product
// a·b must be involutive and non-identity (ErrClosure), which makes the
// four elements pairwise distinct and closed under composition.
//
// Complexity: O(d) sparse, O(d²) dense (three generalized-permutation
// products and their traces).
func NewKleinFour(a, b genmat.Matrix, opts ...Option) (*KleinFour, error) {
	o := gatherOptions(opts...)

	// 1. Shared validation; unifies storage and fixes generator order (a, b).
	core, err := newCore([]genmat.Matrix{a, b}, o)
	if err != nil {
		return nil, err
	}

	// 2. Each generator is a nontrivial involution.
	for i, gen := range core.gens {
		isEye, trErr := isIdentityByTrace(gen, core.d, o.eps)
		if trErr != nil {
			return nil, fmt.Errorf("group: KleinFour: generator %d: %w", i, trErr)
		}
		if isEye {
			return nil, fmt.Errorf("group: KleinFour: generator %d: %w", i, ErrIdentityGenerator)
		}
		sq, mulErr := genmat.Mul(gen, gen)
		if mulErr != nil {
			return nil, fmt.Errorf("group: KleinFour: generator %d: %w", i, mulErr)
		}
		isInv, trErr := isIdentityByTrace(sq, core.d, o.eps)
		if trErr != nil {
			return nil, fmt.Errorf("group: KleinFour: generator %d: %w", i, trErr)
		}
		if !isInv {
			return nil, fmt.Errorf("group: KleinFour: generator %d: %w", i, ErrNotInvolutive)
		}
	}

	// 3. Closure: a·b must be a nontrivial involution as well.
	ab, err := genmat.Mul(core.gens[0], core.gens[1])
	if err != nil {
		return nil, fmt.Errorf("group: KleinFour: %w", err)
	}
	abIsEye, err := isIdentityByTrace(ab, core.d, o.eps)
	if err != nil {
		return nil, fmt.Errorf("group: KleinFour: %w", err)
	}
	if abIsEye { // a·b = I collapses the four elements into two
		return nil, fmt.Errorf("group: KleinFour: a·b equals the identity: %w", ErrClosure)
	}
	abab, err := genmat.Mul(ab, ab)
	if err != nil {
		return nil, fmt.Errorf("group: KleinFour: %w", err)
	}
	abInv, err := isIdentityByTrace(abab, core.d, o.eps)
	if err != nil {
		return nil, fmt.Errorf("group: KleinFour: %w", err)
	}
	if !abInv {
		return nil, fmt.Errorf("group: KleinFour: a·b is not involutive: %w", ErrClosure)
	}

	return &KleinFour{Core: core, ab: ab}, nil
}

// DiscreteActions returns the four group elements [I, a, b, a·b], with the
// identity materialized in the group's unified storage kind.
func (g *KleinFour) DiscreteActions() []genmat.Matrix {
	return []genmat.Matrix{g.identityLike(), g.gens[0], g.gens[1], g.ab}
}

// IsCanonical reports whether the group is in the strictest canonical form:
// every generator trace is exactly 0 within eps (no fixed points at all).
func (g *KleinFour) IsCanonical() bool {
	for _, tr := range g.traces {
		if math.Abs(tr) > g.eps {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer.
func (g *KleinFour) String() string { return fmt.Sprintf("V4[d:%d]", g.d) }

// CanonicalKleinFour synthesizes the canonical Klein four-group for
// dimension d.
//
// Generator a is the full reversal (one-line [d−1, …, 0], all +1 signs).
// Generator b splits {0, …, d−1} into four equal contiguous quarter blocks
// idx0‖idx1‖idx2‖idx3 and permutes them to idx2‖idx3‖idx0‖idx1 — a
// fixed-point-free double transposition.
//
// Dimensions with d mod 4 ≠ 0 would need special sign and placement
// handling for the remainder coordinates to keep every representation
// irreducible; that path is intentionally unimplemented and fails fast with
// ErrInfeasibleConstruction instead of producing an incorrect group.
//
// Complexity: O(d).
func CanonicalKleinFour(d int, opts ...Option) (*KleinFour, error) {
	// 1. Preconditions, including the unimplemented remainder path.
	if d <= 0 {
		return nil, fmt.Errorf("group: CanonicalKleinFour: dimension %d: %w", d, ErrInfeasibleConstruction)
	}
	if d%4 != 0 {
		return nil, fmt.Errorf("group: CanonicalKleinFour: dimension %d is not a multiple of 4: %w",
			d, ErrInfeasibleConstruction)
	}

	// 2. a: full reversal. b: quarter blocks reordered idx2‖idx3‖idx0‖idx1,
	// i.e. position i takes value (i + d/2) mod d.
	a := make([]int, d)
	b := make([]int, d)
	half := d / 2
	for i := 0; i < d; i++ {
		a[i] = d - 1 - i
		b[i] = (i + half) % d
	}

	repA, err := genmat.OnelineToMatrix(a, nil)
	if err != nil {
		return nil, fmt.Errorf("group: CanonicalKleinFour: %w", err)
	}
	repB, err := genmat.OnelineToMatrix(b, nil)
	if err != nil {
		return nil, fmt.Errorf("group: CanonicalKleinFour: %w", err)
	}

	// 3. Full validation path; canonical generators must pass it like any
	// caller-supplied pair.
	g, err := NewKleinFour(repA, repB, opts...)
	if err != nil {
		return nil, fmt.Errorf("group: CanonicalKleinFour: %w", err)
	}

	return g, nil
}
