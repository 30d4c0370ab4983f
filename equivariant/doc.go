// Package equivariant computes bases of fixed-point subspaces of
// generalized-permutation actions — without eigendecomposition.
//
// 🚀 What is equivariant?
//
//	Given a d×d generalized permutation matrix P (one ±1 entry per row and
//	column), the package:
//	  • decomposes {0, …, d−1} into orbits (cycles) of P's underlying
//	    unsigned permutation — Orbits(P)
//	  • derives, per orbit, either zero or one fixed vector of P from the
//	    signed product around the cycle — Basis(P)
//
// The returned basis Q satisfies P·Q = Q exactly; its columns have disjoint
// supports (one orbit each), hence are linearly independent. An orbit whose
// accumulated sign-product is −1 admits no nonzero fixed vector (the
// fixed-point recurrence around the cycle is anti-periodic) and contributes
// no column.
//
// ✨ Why this algorithm?
//
//   - O(d) total: orbit discovery plus all sign products are linear in the
//     dimension — dense eigendecomposition at O(d³) is infeasible at the
//     scales this is built for
//   - Deterministic: orbits are discovered in ascending order of their
//     minimum index, so column order is stable across runs
//   - Observable: WithOnProgress reports per-coordinate progress and
//     WithContext allows cancelling discovery over very large d
//
// Errors:
//
//   - ErrMatrixNil, ErrNotGeneralizedPermutation,
//     genmat.ErrDimensionMismatch (non-square input)
package equivariant
