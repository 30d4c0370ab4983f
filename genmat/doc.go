// Package genmat provides storage primitives for generalized permutation
// matrices: square matrices with exactly one nonzero entry per row and
// column, each entry equal to +1 or −1.
//
// 🚀 What is genmat?
//
//	The numeric foundation the group and equivariant packages build on:
//	  • Matrix — minimal mutable 2-D interface (Rows/Cols/At/Set/Diagonal/Kind/Clone)
//	  • Dense  — row-major flat-slice implementation
//	  • COO    — coordinate-format sparse implementation (row/col/val triplets)
//	  • Shared kernels: Mul, Trace, ColumnNorms, AllClose, ToDense/ToCOO
//	  • OnelineToMatrix — one-line permutation notation + signs → sparse matrix
//
// ✨ Key properties:
//
//   - Explicit storage-kind tag (KindDense/KindSparse), resolved once at
//     construction — no duck-typed sparsity checks scattered through callers
//   - Strict fail-fast validation with package sentinel errors (errors.Is)
//   - Deterministic loop orders everywhere; no global state
//
// Complexity:
//
//   - Dense At/Set O(1); COO At O(nnz), Set O(nnz)
//   - Mul: O(r·c·k) generic, O(nnz_a + nnz_b) for COO×COO generalized permutations
//
// Errors:
//
//   - ErrBadShape, ErrOutOfRange, ErrNilMatrix, ErrDimensionMismatch,
//     ErrDuplicateEntry, ErrInvalidPermutation
package genmat
