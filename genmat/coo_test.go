package genmat_test

import (
	"testing"

	"github.com/katalvlaran/symmetry/genmat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewCOO_Validation exercises the ingestion guards: parallel slice
// lengths, coordinate bounds, and duplicate coordinates.
func TestNewCOO_Validation(t *testing.T) {
	_, err := genmat.NewCOO(2, 2, []int{0}, []int{0, 1}, []float64{1, 1})
	assert.ErrorIs(t, err, genmat.ErrDimensionMismatch, "non-parallel slices")

	_, err = genmat.NewCOO(2, 2, []int{0, 2}, []int{0, 1}, []float64{1, 1})
	assert.ErrorIs(t, err, genmat.ErrOutOfRange, "row coordinate out of range")

	_, err = genmat.NewCOO(2, 2, []int{0, 0}, []int{1, 1}, []float64{1, -1})
	assert.ErrorIs(t, err, genmat.ErrDuplicateEntry, "duplicate coordinate")

	_, err = genmat.NewCOO(0, 2, nil, nil, nil)
	assert.ErrorIs(t, err, genmat.ErrBadShape, "zero rows")
}

// TestCOO_AtAbsentReadsZero verifies that coordinates without a triplet read
// as zero while stored triplets read back their value.
func TestCOO_AtAbsentReadsZero(t *testing.T) {
	m, err := genmat.NewCOO(2, 2, []int{0}, []int{1}, []float64{-1})
	require.NoError(t, err)

	v, err := m.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, -1.0, v)

	v, err = m.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, v, "absent coordinate reads as zero")

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, genmat.ErrOutOfRange)
}

// TestCOO_SetUpdateAppendNoop verifies the three Set behaviors: in-place
// update, append of a new triplet, and the explicit-zero no-op.
func TestCOO_SetUpdateAppendNoop(t *testing.T) {
	m, err := genmat.NewCOO(2, 2, []int{0}, []int{0}, []float64{1})
	require.NoError(t, err)

	require.NoError(t, m.Set(0, 0, -1)) // update
	require.NoError(t, m.Set(1, 1, 1))  // append
	require.NoError(t, m.Set(1, 0, 0))  // zero no-op
	assert.Equal(t, 2, m.NNZ(), "explicit zero must not materialize a triplet")

	v, err := m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, -1.0, v)
}

// TestCOO_DiagonalAndSparseIdentity verifies diagonal extraction and the
// sparse identity constructor.
func TestCOO_DiagonalAndSparseIdentity(t *testing.T) {
	id, err := genmat.SparseIdentity(3)
	require.NoError(t, err)

	assert.Equal(t, genmat.KindSparse, id.Kind())
	assert.Equal(t, []float64{1, 1, 1}, id.Diagonal())
	assert.Equal(t, 3, id.NNZ())

	_, err = genmat.SparseIdentity(0)
	assert.ErrorIs(t, err, genmat.ErrBadShape)
}

// TestCOO_ConversionRoundTrip verifies ToDense∘ToCOO preserves every entry.
func TestCOO_ConversionRoundTrip(t *testing.T) {
	s, err := genmat.NewCOO(3, 3, []int{0, 1, 2}, []int{1, 0, 2}, []float64{1, -1, 1})
	require.NoError(t, err)

	d, err := genmat.ToDense(s)
	require.NoError(t, err)
	back, err := genmat.ToCOO(d)
	require.NoError(t, err)

	same, err := genmat.AllClose(s, back, 0)
	require.NoError(t, err)
	assert.True(t, same, "COO → Dense → COO must be lossless")
}
