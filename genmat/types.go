// SPDX-License-Identifier: MIT
// Package genmat: domain-facing types shared by both storage backends.
// Errors live in errors.go; kernels in ops.go; backends in dense.go / coo.go.
package genmat

// Kind tags the storage representation of a Matrix. It is resolved once at
// construction and carried by the value, so callers dispatch on the tag
// instead of re-detecting sparsity at every operation.
type Kind uint8

const (
	// KindDense marks row-major flat-slice storage (Dense).
	KindDense Kind = iota

	// KindSparse marks coordinate-format triplet storage (COO).
	KindSparse
)

// String returns a human-readable tag name for debugging output.
func (k Kind) String() string {
	if k == KindSparse {
		return "sparse"
	}

	return "dense"
}

// Matrix represents a two-dimensional mutable array of float64 values.
// Both Dense and COO implement it; shared kernels (Mul, Trace, …) accept the
// interface and fast-path on the concrete types.
//
// Complexity notes: all methods are O(1) on Dense except Diagonal and Clone;
// COO indexers are O(nnz).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Diagonal returns a fresh slice of the min(Rows,Cols) diagonal entries.
	Diagonal() []float64

	// Kind reports the storage representation of the matrix.
	Kind() Kind

	// Clone returns a deep copy of the matrix, independent of the original.
	Clone() Matrix
}
