package group_test

import (
	"testing"

	"github.com/katalvlaran/symmetry/genmat"
	"github.com/katalvlaran/symmetry/group"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCanonicalKleinFour_D8 verifies the d=8 canonical construction:
// four discrete actions, canonical form (all generator traces 0).
func TestCanonicalKleinFour_D8(t *testing.T) {
	g, err := group.CanonicalKleinFour(8)
	require.NoError(t, err)

	assert.Equal(t, 8, g.Dimension())
	assert.True(t, g.IsCanonical(), "trace-0 generators are the canonical form")

	actions := g.DiscreteActions()
	require.Len(t, actions, 4, "Klein four-group has exactly four elements")

	tr, err := genmat.Trace(actions[0])
	require.NoError(t, err)
	assert.Equal(t, 8.0, tr, "first action is the identity")
}

// TestCanonicalKleinFour_NotMultipleOfFour verifies the unimplemented
// remainder path fails fast instead of returning a wrong group.
func TestCanonicalKleinFour_NotMultipleOfFour(t *testing.T) {
	_, err := group.CanonicalKleinFour(6)
	assert.ErrorIs(t, err, group.ErrInfeasibleConstruction, "6 mod 4 != 0 must be rejected")
}

// TestKleinFour_ActionsFormAGroup verifies the algebraic properties of the
// four returned actions: pairwise distinct, each self-inverse, and closed
// under composition.
func TestKleinFour_ActionsFormAGroup(t *testing.T) {
	g, err := group.CanonicalKleinFour(4)
	require.NoError(t, err)
	actions := g.DiscreteActions()
	require.Len(t, actions, 4)

	id := actions[0]

	// Pairwise distinct.
	for i := 0; i < len(actions); i++ {
		for j := i + 1; j < len(actions); j++ {
			same, cmpErr := genmat.AllClose(actions[i], actions[j], 0)
			require.NoError(t, cmpErr)
			assert.False(t, same, "actions %d and %d must differ", i, j)
		}
	}

	// Every element is its own inverse and products stay inside the set.
	for i, x := range actions {
		for j, y := range actions {
			prod, mulErr := genmat.Mul(x, y)
			require.NoError(t, mulErr)
			if i == j {
				same, cmpErr := genmat.AllClose(prod, id, 0)
				require.NoError(t, cmpErr)
				assert.True(t, same, "action %d must be self-inverse", i)

				continue
			}
			inSet := false
			for _, z := range actions {
				same, cmpErr := genmat.AllClose(prod, z, 0)
				require.NoError(t, cmpErr)
				if same {
					inSet = true

					break
				}
			}
			assert.True(t, inSet, "product of actions %d·%d must close on the set", i, j)
		}
	}
}

// TestKleinFour_RejectsCollapsedProduct verifies a = b is refused: the
// product a·b is then the identity, collapsing the four elements.
func TestKleinFour_RejectsCollapsedProduct(t *testing.T) {
	a := mustOneline(t, reversal(4), nil)
	b := mustOneline(t, reversal(4), nil)

	_, err := group.NewKleinFour(a, b)
	assert.ErrorIs(t, err, group.ErrClosure)
}

// TestKleinFour_RejectsNonInvolutiveMember verifies a 4-cycle generator is
// refused with ErrNotInvolutive.
func TestKleinFour_RejectsNonInvolutiveMember(t *testing.T) {
	a := mustOneline(t, reversal(4), nil)
	b := mustOneline(t, []int{1, 2, 3, 0}, nil) // order 4, not 2

	_, err := group.NewKleinFour(a, b)
	assert.ErrorIs(t, err, group.ErrNotInvolutive)
}

// TestKleinFour_RejectsIdentityMember verifies an identity generator is
// refused with ErrIdentityGenerator.
func TestKleinFour_RejectsIdentityMember(t *testing.T) {
	a := mustOneline(t, reversal(4), nil)
	b := mustOneline(t, []int{0, 1, 2, 3}, nil)

	_, err := group.NewKleinFour(a, b)
	assert.ErrorIs(t, err, group.ErrIdentityGenerator)
}

// TestKleinFour_NonCanonicalPair verifies a valid but fixed-point-carrying
// generator pair is accepted yet reported as non-canonical.
func TestKleinFour_NonCanonicalPair(t *testing.T) {
	a := mustOneline(t, []int{1, 0, 2, 3}, nil) // swaps (0 1), fixes 2, 3
	b := mustOneline(t, []int{0, 1, 3, 2}, nil) // swaps (2 3), fixes 0, 1

	g, err := group.NewKleinFour(a, b)
	require.NoError(t, err)

	assert.False(t, g.IsCanonical(), "trace-2 generators are not canonical")
	assert.Equal(t, []float64{2, 2}, g.GeneratorTraces())
	assert.Zero(t, g.NumInvariantDimensions(), "no coordinate is fixed by both generators")
}
