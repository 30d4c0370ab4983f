// SPDX-License-Identifier: MIT
// Package genmat: shared kernels over any Matrix implementation — matrix
// multiplication, trace, column norms, tolerance comparison, and storage
// conversion. All kernels perform strict fail-fast validation and return
// plain sentinels wrapped with an operation tag.
//
// Purpose:
//   - Declare the canonical linear-algebra kernels used across the module.
//   - Keep backends (dense.go, coo.go) free of cross-type logic.
//
// Determinism:
//   - Fixed loop orders everywhere; no data-dependent iteration.

package genmat

import (
	"fmt"
	"math"
)

// Operation name constants for unified error wrapping (no magic strings).
const (
	opMul      = "Mul"
	opTrace    = "Trace"
	opNorms    = "ColumnNorms"
	opHasNeg   = "HasNegative"
	opAllClose = "AllClose"
	opToDense  = "ToDense"
	opToCOO    = "ToCOO"
)

// genmatErrorf wraps err with an operation tag, preserving the original
// sentinel for errors.Is/As. Call only with err != nil.
func genmatErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix otherwise. Complexity: O(1).
func validateNotNil(m Matrix) error {
	if m == nil {
		return ErrNilMatrix
	}

	return nil
}

// validateSquare checks that m is square (Rows == Cols).
// Returns ErrDimensionMismatch otherwise. Complexity: O(1).
func validateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return ErrDimensionMismatch
	}

	return nil
}

// Mul computes the matrix product a·b into a freshly allocated matrix.
// Stage 1 (Validate): non-nil operands, a.Cols == b.Rows.
// Stage 2 (Execute): COO×COO fast path, Dense×Dense fast path, or the
// generic At/Set fallback in fixed i→j→k order.
// Stage 3 (Finalize): return the product; operands are never mutated.
//
// The COO fast path exploits the generalized-permutation shape: it walks
// a's triplets once and joins them against an index of b's rows, so the
// product of two d×d generalized permutations costs O(d), not O(d³).
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(nnz_a + nnz_b) sparse; O(r·k·c) dense/generic.
func Mul(a, b Matrix) (Matrix, error) {
	// 1. Validate operands.
	if err := validateNotNil(a); err != nil {
		return nil, genmatErrorf(opMul, err)
	}
	if err := validateNotNil(b); err != nil {
		return nil, genmatErrorf(opMul, err)
	}
	if a.Cols() != b.Rows() {
		return nil, genmatErrorf(opMul, ErrDimensionMismatch)
	}

	// 2a. Sparse fast path: triplet join.
	if sa, okA := a.(*COO); okA {
		if sb, okB := b.(*COO); okB {
			return mulCOO(sa, sb)
		}
	}

	// 2b. Dense fast path: flat-slice triple loop.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			return mulDense(da, db)
		}
	}

	// 2c. Generic fallback over the interface.
	return mulGeneric(a, b)
}

// mulDense multiplies two Dense matrices with direct slice access.
// Loop order i→k→j keeps the inner loop cache-friendly on row-major data.
func mulDense(a, b *Dense) (*Dense, error) {
	res, err := NewDense(a.r, b.c)
	if err != nil {
		return nil, genmatErrorf(opMul, err)
	}
	var i, j, k int
	var aik float64
	for i = 0; i < a.r; i++ {
		for k = 0; k < a.c; k++ {
			aik = a.data[i*a.c+k]
			if aik == 0 { // generalized permutations are mostly zeros
				continue
			}
			for j = 0; j < b.c; j++ {
				res.data[i*b.c+j] += aik * b.data[k*b.c+j]
			}
		}
	}

	return res, nil
}

// mulCOO multiplies two COO matrices by joining a's column coordinates
// against an index of b's row coordinates, accumulating duplicate output
// coordinates on the fly.
func mulCOO(a, b *COO) (*COO, error) {
	// Index b's triplets by row for O(1) joins.
	byRow := make(map[int][]int, b.r)
	var k int
	for k = range b.row {
		byRow[b.row[k]] = append(byRow[b.row[k]], k)
	}

	// Accumulate products per output coordinate.
	acc := make(map[pairKey]float64, len(a.row))
	order := make([]pairKey, 0, len(a.row)) // first-touch order for determinism
	var kb int
	for k = range a.row {
		for _, kb = range byRow[a.col[k]] {
			key := pairKey{i: a.row[k], j: b.col[kb]}
			if _, ok := acc[key]; !ok {
				order = append(order, key)
			}
			acc[key] += a.val[k] * b.val[kb]
		}
	}

	// Materialize nonzero accumulators in first-touch order.
	res := &COO{r: a.r, c: b.c}
	for _, key := range order {
		if acc[key] == 0 { // exact cancellation; drop the coordinate
			continue
		}
		res.row = append(res.row, key.i)
		res.col = append(res.col, key.j)
		res.val = append(res.val, acc[key])
	}

	return res, nil
}

// mulGeneric multiplies via the Matrix interface in fixed i→j→k order.
func mulGeneric(a, b Matrix) (Matrix, error) {
	res, err := NewDense(a.Rows(), b.Cols())
	if err != nil {
		return nil, genmatErrorf(opMul, err)
	}
	var i, j, k int
	var av, bv, sum float64
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < b.Cols(); j++ {
			sum = 0
			for k = 0; k < a.Cols(); k++ {
				av, _ = a.At(i, k) // bounds proven by loop ranges
				bv, _ = b.At(k, j)
				sum += av * bv
			}
			res.data[i*res.c+j] = sum
		}
	}

	return res, nil
}

// Trace returns the sum of diagonal entries of a square matrix — the
// "character" of a group element's matrix representation.
// Errors: ErrNilMatrix, ErrDimensionMismatch (non-square).
// Complexity: O(d) dense, O(nnz) sparse.
func Trace(m Matrix) (float64, error) {
	if err := validateNotNil(m); err != nil {
		return 0, genmatErrorf(opTrace, err)
	}
	if err := validateSquare(m); err != nil {
		return 0, genmatErrorf(opTrace, err)
	}

	var tr float64
	for _, v := range m.Diagonal() {
		tr += v
	}

	return tr, nil
}

// ColumnNorms returns the Euclidean norm of every column.
// For a column-orthonormal generator every entry of the result is exactly 1.
// Errors: ErrNilMatrix.
// Complexity: O(r·c) dense/generic, O(nnz) sparse.
func ColumnNorms(m Matrix) ([]float64, error) {
	if err := validateNotNil(m); err != nil {
		return nil, genmatErrorf(opNorms, err)
	}

	sq := make([]float64, m.Cols())

	switch t := m.(type) {
	case *Dense:
		var i, j int
		for i = 0; i < t.r; i++ { // accumulate squares row by row
			for j = 0; j < t.c; j++ {
				sq[j] += t.data[i*t.c+j] * t.data[i*t.c+j]
			}
		}
	case *COO:
		for k := range t.row { // one pass over triplets
			sq[t.col[k]] += t.val[k] * t.val[k]
		}
	default:
		var i, j int
		var v float64
		for i = 0; i < m.Rows(); i++ {
			for j = 0; j < m.Cols(); j++ {
				v, _ = m.At(i, j)
				sq[j] += v * v
			}
		}
	}

	for j := range sq {
		sq[j] = math.Sqrt(sq[j])
	}

	return sq, nil
}

// HasNegative reports whether any entry of m is negative.
// A generalized permutation with a negative entry is signed; one without is
// a pure permutation.
// Errors: ErrNilMatrix.
// Complexity: O(nnz) sparse, O(r·c) otherwise.
func HasNegative(m Matrix) (bool, error) {
	if err := validateNotNil(m); err != nil {
		return false, genmatErrorf(opHasNeg, err)
	}

	switch t := m.(type) {
	case *COO:
		for _, v := range t.val {
			if v < 0 {
				return true, nil
			}
		}
	case *Dense:
		for _, v := range t.data {
			if v < 0 {
				return true, nil
			}
		}
	default:
		var i, j int
		var v float64
		for i = 0; i < m.Rows(); i++ {
			for j = 0; j < m.Cols(); j++ {
				v, _ = m.At(i, j)
				if v < 0 {
					return true, nil
				}
			}
		}
	}

	return false, nil
}

// AllClose reports whether a and b agree elementwise within eps, across any
// storage combination.
// Errors: ErrNilMatrix, ErrDimensionMismatch (shape disagreement).
// Complexity: O(r·c).
func AllClose(a, b Matrix, eps float64) (bool, error) {
	if err := validateNotNil(a); err != nil {
		return false, genmatErrorf(opAllClose, err)
	}
	if err := validateNotNil(b); err != nil {
		return false, genmatErrorf(opAllClose, err)
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false, genmatErrorf(opAllClose, ErrDimensionMismatch)
	}

	var i, j int
	var av, bv float64
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			av, _ = a.At(i, j)
			bv, _ = b.At(i, j)
			if math.Abs(av-bv) > eps {
				return false, nil
			}
		}
	}

	return true, nil
}

// ToDense converts any Matrix into Dense storage; a Dense input is returned
// as-is (no copy). Complexity: O(r·c) on conversion.
func ToDense(m Matrix) (*Dense, error) {
	if err := validateNotNil(m); err != nil {
		return nil, genmatErrorf(opToDense, err)
	}
	if d, ok := m.(*Dense); ok {
		return d, nil
	}

	res, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, genmatErrorf(opToDense, err)
	}
	if s, ok := m.(*COO); ok { // sparse fast path: one triplet pass
		for k := range s.row {
			res.data[s.row[k]*res.c+s.col[k]] = s.val[k]
		}

		return res, nil
	}
	var i, j int
	var v float64
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			v, _ = m.At(i, j)
			res.data[i*res.c+j] = v
		}
	}

	return res, nil
}

// ToCOO converts any Matrix into COO storage; a COO input is returned as-is
// (no copy). Zero entries are not materialized.
// Complexity: O(r·c) scan on conversion.
func ToCOO(m Matrix) (*COO, error) {
	if err := validateNotNil(m); err != nil {
		return nil, genmatErrorf(opToCOO, err)
	}
	if s, ok := m.(*COO); ok {
		return s, nil
	}

	res := &COO{r: m.Rows(), c: m.Cols()}
	if res.r <= 0 || res.c < 0 {
		return nil, genmatErrorf(opToCOO, ErrBadShape)
	}
	var i, j int
	var v float64
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			v, _ = m.At(i, j)
			if v != 0 {
				res.row = append(res.row, i)
				res.col = append(res.col, j)
				res.val = append(res.val, v)
			}
		}
	}

	return res, nil
}
