// Package equivariant: orbit decomposition of a generalized permutation and
// the combinatorial fixed-point basis derived from cycle sign-products.
//
// Complexity:
//
//   - Time:   O(d) for orbit discovery plus O(d) total across all
//     sign-product computations (O(nnz) row extraction on sparse input)
//   - Memory: O(d) for the permutation vector, visitation flags and output
package equivariant

import (
	"fmt"
	"math"

	"github.com/katalvlaran/symmetry/genmat"
)

// Orbits partitions {0, …, d−1} into orbits (cycles) of P's underlying
// unsigned permutation. Every index belongs to exactly one orbit; orbits
// are returned in ascending order of their minimum index, and each orbit's
// traversal starts at that minimum.
//
// Returns ErrMatrixNil, genmat.ErrDimensionMismatch (non-square), or
// ErrNotGeneralizedPermutation; context cancellation surfaces as ctx.Err().
func Orbits(p genmat.Matrix, opts ...Option) ([][]int, error) {
	o := gatherOptions(opts...)

	w, _, err := signedPermutation(p, o.Eps)
	if err != nil {
		return nil, fmt.Errorf("equivariant: Orbits: %w", err)
	}

	return orbitsOf(w, o)
}

// Basis computes the equivariant basis Q of P: a d×b dense matrix whose
// columns are the fixed vectors of P's action, one per orbit with cycle
// sign-product +1. Orbits with sign-product −1 contribute no column, so
// b is at most the number of orbits.
//
// Per contributing orbit [a₀, …, a_{k−1}] with row signs s₀, …, s_{k−1} in
// traversal order, position a_j receives the suffix product s_j · … · s_{k−2}
// (the last position receives 1) — the unique solution, up to scale, of the
// fixed-point recurrence x_j = s_j · x_{j+1} around the cycle.
//
// Guarantees: P·Q = Q (exactly, for ±1 entries); columns have disjoint
// supports and are therefore linearly independent.
//
// Returns ErrMatrixNil, genmat.ErrDimensionMismatch (non-square), or
// ErrNotGeneralizedPermutation; context cancellation surfaces as ctx.Err().
func Basis(p genmat.Matrix, opts ...Option) (*genmat.Dense, error) {
	o := gatherOptions(opts...)

	// 1. Underlying permutation and per-row signs.
	w, s, err := signedPermutation(p, o.Eps)
	if err != nil {
		return nil, fmt.Errorf("equivariant: Basis: %w", err)
	}

	// 2. Cycle decomposition (honors context and progress hooks).
	orbits, err := orbitsOf(w, o)
	if err != nil {
		return nil, fmt.Errorf("equivariant: Basis: %w", err)
	}

	// 3. Count contributing orbits: cycle sign-product +1.
	d := len(w)
	positive := make([]bool, len(orbits))
	b := 0
	var prod float64
	for i, orb := range orbits {
		prod = 1
		for _, idx := range orb {
			prod *= s[idx]
		}
		if prod > 0 { // products of ±1 entries land on ±1
			positive[i] = true
			b++
		}
	}

	// 4. Assemble columns: suffix sign-products along each positive orbit.
	q, err := genmat.NewDense(d, b)
	if err != nil {
		return nil, fmt.Errorf("equivariant: Basis: %w", err)
	}
	col := 0
	var j, k int
	for i, orb := range orbits {
		if !positive[i] {
			continue
		}
		k = len(orb)
		vals := make([]float64, k)
		vals[k-1] = 1
		for j = k - 2; j >= 0; j-- {
			vals[j] = s[orb[j]] * vals[j+1]
		}
		for j = 0; j < k; j++ {
			_ = q.Set(orb[j], col, vals[j]) // indices proven in range
		}
		col++
	}

	return q, nil
}

// signedPermutation derives, for each row i of p, the column w[i] of its
// single nonzero entry and that entry's value s[i]. It validates the full
// generalized-permutation shape: square, exactly one nonzero of magnitude 1
// per row, and w a bijection on {0, …, d−1}.
func signedPermutation(p genmat.Matrix, eps float64) (w []int, s []float64, err error) {
	// 1. Structural guards.
	if p == nil {
		return nil, nil, ErrMatrixNil
	}
	d := p.Rows()
	if p.Cols() != d {
		return nil, nil, genmat.ErrDimensionMismatch
	}

	w = make([]int, d)
	s = make([]float64, d)
	found := make([]bool, d) // row has its nonzero located

	// 2. Locate the single nonzero per row; sparse inputs in one triplet
	// pass, everything else by row scan.
	if sp, ok := p.(*genmat.COO); ok {
		rows, cols, vals := sp.Triplets()
		for t := range vals {
			if math.Abs(vals[t]) <= eps { // stored explicit zero
				continue
			}
			if found[rows[t]] {
				return nil, nil, ErrNotGeneralizedPermutation
			}
			found[rows[t]] = true
			w[rows[t]] = cols[t]
			s[rows[t]] = vals[t]
		}
	} else {
		var i, j int
		var v float64
		for i = 0; i < d; i++ {
			for j = 0; j < d; j++ {
				v, _ = p.At(i, j) // bounds proven by loop ranges
				if math.Abs(v) <= eps {
					continue
				}
				if found[i] {
					return nil, nil, ErrNotGeneralizedPermutation
				}
				found[i] = true
				w[i] = j
				s[i] = v
			}
		}
	}

	// 3. Every row carries a ±1; every column is hit exactly once.
	hit := make([]bool, d)
	for i := 0; i < d; i++ {
		if !found[i] || math.Abs(math.Abs(s[i])-1) > eps {
			return nil, nil, ErrNotGeneralizedPermutation
		}
		if hit[w[i]] {
			return nil, nil, ErrNotGeneralizedPermutation
		}
		hit[w[i]] = true
	}

	return w, s, nil
}

// orbitsOf decomposes the bijection w into cycles by an ascending scan over
// unvisited indices. The scan order makes orbit discovery deterministic:
// orbits appear by ascending minimum index.
func orbitsOf(w []int, o Options) ([][]int, error) {
	d := len(w)
	visited := make([]bool, d)
	orbits := make([][]int, 0)
	done := 0

	var a int
	for start := 0; start < d; start++ {
		if visited[start] {
			continue
		}

		// Cancellation check once per orbit.
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		// Follow w from the orbit's minimum index until it closes.
		orbit := make([]int, 0, 2)
		for a = start; !visited[a]; a = w[a] {
			visited[a] = true
			orbit = append(orbit, a)
			done++
			if o.OnProgress != nil {
				o.OnProgress(done, d)
			}
		}
		orbits = append(orbits, orbit)
	}

	return orbits, nil
}
