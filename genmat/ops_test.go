package genmat_test

import (
	"testing"

	"github.com/katalvlaran/symmetry/genmat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// antiDiagonal builds the d×d reversal permutation in the requested storage.
func antiDiagonal(t *testing.T, d int, sparse bool) genmat.Matrix {
	t.Helper()
	p := make([]int, d)
	for i := range p {
		p[i] = d - 1 - i
	}
	s, err := genmat.OnelineToMatrix(p, nil)
	require.NoError(t, err)
	if sparse {
		return s
	}
	dm, err := genmat.ToDense(s)
	require.NoError(t, err)

	return dm
}

// TestMul_DenseReversalSquaresToIdentity verifies the dense fast path:
// the anti-diagonal reversal is an involution, h·h = I.
func TestMul_DenseReversalSquaresToIdentity(t *testing.T) {
	h := antiDiagonal(t, 4, false)

	hh, err := genmat.Mul(h, h)
	require.NoError(t, err)

	id, err := genmat.Identity(4)
	require.NoError(t, err)
	same, err := genmat.AllClose(hh, id, 0)
	require.NoError(t, err)
	assert.True(t, same, "reversal squared must be the identity")
}

// TestMul_COOFastPath verifies the sparse triplet join yields the same
// product as the dense path and stays in sparse storage.
func TestMul_COOFastPath(t *testing.T) {
	a := antiDiagonal(t, 5, true)

	ab, err := genmat.Mul(a, a)
	require.NoError(t, err)
	assert.Equal(t, genmat.KindSparse, ab.Kind(), "COO×COO stays sparse")

	id, err := genmat.SparseIdentity(5)
	require.NoError(t, err)
	same, err := genmat.AllClose(ab, id, 0)
	require.NoError(t, err)
	assert.True(t, same)
}

// TestMul_MixedStorage verifies the generic fallback across Dense×COO.
func TestMul_MixedStorage(t *testing.T) {
	dm := antiDiagonal(t, 3, false)
	sm := antiDiagonal(t, 3, true)

	prod, err := genmat.Mul(dm, sm)
	require.NoError(t, err)

	id, err := genmat.Identity(3)
	require.NoError(t, err)
	same, err := genmat.AllClose(prod, id, 0)
	require.NoError(t, err)
	assert.True(t, same, "mixed-storage product of inverse pair is I")
}

// TestMul_Errors verifies nil and shape guards.
func TestMul_Errors(t *testing.T) {
	m, err := genmat.Identity(2)
	require.NoError(t, err)

	_, err = genmat.Mul(nil, m)
	assert.ErrorIs(t, err, genmat.ErrNilMatrix)

	wide, err := genmat.NewDense(2, 3)
	require.NoError(t, err)
	_, err = genmat.Mul(wide, wide)
	assert.ErrorIs(t, err, genmat.ErrDimensionMismatch, "2×3 · 2×3 must not conform")
}

// TestTrace_NonSquare verifies the square guard on Trace.
func TestTrace_NonSquare(t *testing.T) {
	wide, err := genmat.NewDense(2, 3)
	require.NoError(t, err)

	_, err = genmat.Trace(wide)
	assert.ErrorIs(t, err, genmat.ErrDimensionMismatch)
}

// TestColumnNorms_GeneralizedPermutation verifies every column of a signed
// permutation has unit norm, in both storages.
func TestColumnNorms_GeneralizedPermutation(t *testing.T) {
	s, err := genmat.OnelineToMatrix([]int{1, 0, 2}, []float64{1, -1, 1})
	require.NoError(t, err)

	norms, err := genmat.ColumnNorms(s)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1, 1}, norms, "sparse column norms")

	dm, err := genmat.ToDense(s)
	require.NoError(t, err)
	norms, err = genmat.ColumnNorms(dm)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1, 1}, norms, "dense column norms")
}

// TestAllClose_ShapeAndTolerance verifies the shape guard and that eps
// bounds elementwise disagreement.
func TestAllClose_ShapeAndTolerance(t *testing.T) {
	a, err := genmat.Identity(2)
	require.NoError(t, err)
	b, err := genmat.Identity(3)
	require.NoError(t, err)

	_, err = genmat.AllClose(a, b, 0)
	assert.ErrorIs(t, err, genmat.ErrDimensionMismatch)

	c, err := genmat.Identity(2)
	require.NoError(t, err)
	require.NoError(t, c.Set(0, 0, 1+1e-12))

	ok, err := genmat.AllClose(a, c, 1e-9)
	require.NoError(t, err)
	assert.True(t, ok, "within eps")

	ok, err = genmat.AllClose(a, c, 0)
	require.NoError(t, err)
	assert.False(t, ok, "exact comparison sees the perturbation")
}
