// Package group defines finite symmetry groups acting on a vector space
// through sets of discrete generalized-permutation generator matrices, and
// validates the algebraic properties required for those matrices to generate
// a proper group.
//
// 🚀 What is group?
//
//	Construction-time validation plus derived metadata for two concrete
//	group families:
//	  • OrderTwo  — reflection-type group {I, h} over one involutive generator
//	  • KleinFour — abelian group {I, a, b, a·b} over two commuting involutions
//	Both refine a shared Core holding dimension, storage kind, pure-permutation
//	flag, generator traces ("characters") and invariant-dimension bookkeeping.
//
// ✨ Key features:
//   - Fail-fast: every algebraic violation surfaces as a sentinel error at
//     construction; no partially constructed group is ever returned
//   - Involution checks run on traces, not full matrix comparison — valid
//     because a squared generalized permutation is itself a generalized
//     permutation, whose trace equals d iff it is exactly the identity
//   - Canonical constructors synthesize reference generators for any
//     dimension, controlling how many coordinates stay pointwise invariant
//   - Exact-match Key() for memoization maps; structural Equal via go-cmp
//
// Errors:
//
//   - ErrNoGenerators, ErrMalformedGenerator, ErrIdentityGenerator,
//     ErrNotInvolutive, ErrClosure, ErrInfeasibleConstruction,
//     genmat.ErrDimensionMismatch (unequal generator sizes)
//
// Complexity:
//
//   - Validation: O(Σ nnz) sparse, O(n·d²) dense (n = #generators)
//   - Canonical construction: O(d)
package group
