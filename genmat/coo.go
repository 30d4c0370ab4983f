// SPDX-License-Identifier: MIT
// Package genmat: COO is a coordinate-format sparse implementation of the
// Matrix interface, storing nonzero entries as parallel (row, col, val)
// triplet slices. It is the storage of choice for large generalized
// permutations, which carry exactly one nonzero per row.
package genmat

import "fmt"

// cooErrorf wraps an underlying error with COO method context.
func cooErrorf(method string, err error) error {
	return fmt.Errorf("COO.%s: %w", method, err)
}

// pairKey is an ordered coordinate pair used to detect duplicate triplets
// during ingestion. Using ints keeps the key compact and hash-friendly.
type pairKey struct {
	i int // row index
	j int // column index
}

// COO is a sparse matrix in coordinate (triplet) format.
// The three entry slices are parallel: entry k lives at (row[k], col[k])
// with value val[k]. Triplet order is preserved from construction.
type COO struct {
	r, c int       // logical shape
	row  []int     // row index per nonzero
	col  []int     // column index per nonzero
	val  []float64 // value per nonzero
}

// NewCOO creates an rows×cols sparse matrix from triplet slices.
// The input slices are copied; callers may reuse them afterwards.
// Stage 1 (Validate): shape, parallel lengths, bounds, duplicates.
// Stage 2 (Prepare): copy triplets into fresh backing slices.
// Stage 3 (Finalize): return the new COO.
// Complexity: O(nnz) time and memory.
func NewCOO(rows, cols int, row, col []int, val []float64) (*COO, error) {
	// 1. Validate logical shape.
	if rows <= 0 || cols < 0 {
		return nil, ErrBadShape
	}

	// 2. Triplet slices must be parallel.
	if len(row) != len(col) || len(row) != len(val) {
		return nil, cooErrorf("New", ErrDimensionMismatch)
	}

	// 3. Bounds-check every coordinate and reject duplicates.
	seen := make(map[pairKey]struct{}, len(row))
	var k int
	for k = range row {
		if row[k] < 0 || row[k] >= rows || col[k] < 0 || col[k] >= cols {
			return nil, cooErrorf("New", ErrOutOfRange)
		}
		key := pairKey{i: row[k], j: col[k]}
		if _, dup := seen[key]; dup {
			return nil, cooErrorf("New", ErrDuplicateEntry)
		}
		seen[key] = struct{}{}
	}

	// 4. Copy triplets so the value owns its storage.
	m := &COO{
		r:   rows,
		c:   cols,
		row: append([]int(nil), row...),
		col: append([]int(nil), col...),
		val: append([]float64(nil), val...),
	}

	return m, nil
}

// SparseIdentity returns the d×d identity in COO form.
// Complexity: O(d) time and memory.
func SparseIdentity(d int) (*COO, error) {
	if d <= 0 {
		return nil, ErrBadShape
	}
	row := make([]int, d)
	col := make([]int, d)
	val := make([]float64, d)
	for i := 0; i < d; i++ {
		row[i], col[i], val[i] = i, i, 1
	}

	return &COO{r: d, c: d, row: row, col: col, val: val}, nil
}

// Rows returns the number of rows in the matrix. Complexity: O(1).
func (m *COO) Rows() int { return m.r }

// Cols returns the number of columns in the matrix. Complexity: O(1).
func (m *COO) Cols() int { return m.c }

// Kind reports sparse storage. Complexity: O(1).
func (m *COO) Kind() Kind { return KindSparse }

// NNZ returns the number of stored triplets. Complexity: O(1).
func (m *COO) NNZ() int { return len(m.val) }

// Triplets returns copies of the (row, col, val) entry slices in storage
// order. Complexity: O(nnz).
func (m *COO) Triplets() (row, col []int, val []float64) {
	return append([]int(nil), m.row...),
		append([]int(nil), m.col...),
		append([]float64(nil), m.val...)
}

// inBounds validates a coordinate against the logical shape.
func (m *COO) inBounds(i, j int) bool {
	return i >= 0 && i < m.r && j >= 0 && j < m.c
}

// At retrieves the element at (i, j); absent coordinates read as zero.
// Returns ErrOutOfRange on invalid indices. Complexity: O(nnz).
func (m *COO) At(i, j int) (float64, error) {
	if !m.inBounds(i, j) {
		return 0, cooErrorf("At", ErrOutOfRange)
	}
	for k := range m.row { // linear triplet scan
		if m.row[k] == i && m.col[k] == j {
			return m.val[k], nil
		}
	}

	return 0, nil
}

// Set assigns v at (i, j), updating an existing triplet or appending a new
// one. Setting an absent coordinate to zero is a no-op (no triplet stored).
// Returns ErrOutOfRange on invalid indices. Complexity: O(nnz).
func (m *COO) Set(i, j int, v float64) error {
	if !m.inBounds(i, j) {
		return cooErrorf("Set", ErrOutOfRange)
	}
	for k := range m.row { // update in place when present
		if m.row[k] == i && m.col[k] == j {
			m.val[k] = v

			return nil
		}
	}
	if v == 0 { // do not materialize explicit zeros
		return nil
	}
	m.row = append(m.row, i)
	m.col = append(m.col, j)
	m.val = append(m.val, v)

	return nil
}

// Diagonal returns a fresh slice with the min(r,c) diagonal entries;
// coordinates without a stored triplet read as zero.
// Complexity: O(nnz + min(r,c)).
func (m *COO) Diagonal() []float64 {
	n := m.r
	if m.c < n {
		n = m.c
	}
	diag := make([]float64, n)
	for k := range m.row {
		if m.row[k] == m.col[k] && m.row[k] < n {
			diag[m.row[k]] = m.val[k]
		}
	}

	return diag
}

// Clone returns a deep copy of the COO matrix.
// Complexity: O(nnz) time and memory.
func (m *COO) Clone() Matrix {
	return &COO{
		r:   m.r,
		c:   m.c,
		row: append([]int(nil), m.row...),
		col: append([]int(nil), m.col...),
		val: append([]float64(nil), m.val...),
	}
}

// String implements fmt.Stringer, listing triplets in storage order.
// Complexity: O(nnz).
func (m *COO) String() string {
	s := fmt.Sprintf("COO(%dx%d, nnz=%d)", m.r, m.c, len(m.val))
	for k := range m.row {
		s += fmt.Sprintf(" (%d,%d)=%g", m.row[k], m.col[k], m.val[k])
	}

	return s
}
