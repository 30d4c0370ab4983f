// SPDX-License-Identifier: MIT
// Package genmat: one-line permutation notation → generalized permutation
// matrix. A one-line notation lists, for each row i, the column |p[i]|
// carrying that row's single nonzero entry; the optional signs vector
// supplies the ±1 value placed there. Negative notation entries are an
// overloaded index-with-reflection encoding and are read by absolute value.
package genmat

// OnelineToMatrix builds a sparse d×d generalized permutation matrix from a
// one-line notation and an optional signs vector.
//
// Stage 1 (Validate): notation must be a permutation of {0, …, d−1} — each
// |p[i]| in range and all values pairwise distinct (uniqueness count == d);
// signs, when non-nil, must have length d.
// Stage 2 (Execute): place signs[i] at coordinate (i, |p[i]|).
// Stage 3 (Finalize): return the COO matrix.
//
// A nil signs vector defaults to all +1 (a pure permutation matrix).
//
// Errors:
//   - ErrBadShape           — empty notation.
//   - ErrInvalidPermutation — duplicate or out-of-range notation value.
//   - ErrDimensionMismatch  — len(signs) != len(notation).
//
// Complexity: O(d) time and memory.
func OnelineToMatrix(notation []int, signs []float64) (*COO, error) {
	// 1. Shape and sign-vector length.
	d := len(notation)
	if d == 0 {
		return nil, ErrBadShape
	}
	if signs != nil && len(signs) != d {
		return nil, ErrDimensionMismatch
	}

	// 2. Uniqueness count: d distinct in-range column targets.
	seen := make(map[int]struct{}, d)
	cols := make([]int, d)
	var i, target int
	for i = 0; i < d; i++ {
		target = notation[i]
		if target < 0 { // index-with-reflection encoding
			target = -target
		}
		if target >= d {
			return nil, ErrInvalidPermutation
		}
		if _, dup := seen[target]; dup {
			return nil, ErrInvalidPermutation
		}
		seen[target] = struct{}{}
		cols[i] = target
	}

	// 3. Rows are 0..d-1 in order; values come from signs (default +1).
	rows := make([]int, d)
	vals := make([]float64, d)
	for i = 0; i < d; i++ {
		rows[i] = i
		if signs == nil {
			vals[i] = 1
		} else {
			vals[i] = signs[i]
		}
	}

	return &COO{r: d, c: d, row: rows, col: cols, val: vals}, nil
}
