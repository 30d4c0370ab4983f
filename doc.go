// Package symmetry is an in-memory toolkit for finite symmetry groups acting
// on vector spaces through discrete generalized-permutation generators —
// from matrix storage to equivariant fixed-point bases.
//
// 🚀 What is symmetry?
//
//	A deterministic, fail-fast library that brings together:
//		• Storage primitives: dense & sparse (COO) generalized-permutation matrices
//		• Group construction: validated order-2 (reflection) and Klein four-groups
//		• Canonical synthesis: parameterized generators for any vector-space dimension
//		• Equivariant bases: fixed-point subspace bases in O(d), no eigendecomposition
//
// ✨ Why choose symmetry?
//
//   - Fail-fast guarantees – every group is fully validated at construction
//   - Scales to large d – orbit decomposition replaces O(d³) spectral methods
//   - Deterministic – stable orbit ordering, no global state, no randomness
//   - Extensible – context cancellation and progress hooks on long scans
//
// Under the hood, everything is organized under three subpackages:
//
//	genmat/      — Matrix interface, Dense & COO storage, one-line notation builder
//	group/       — generator validation, Core metadata, OrderTwo & KleinFour groups
//	equivariant/ — orbit decomposition and fixed-point basis solver
//
// Quick ASCII example:
//
//	    ⎡ .  .  .  1 ⎤
//	    ⎢ .  .  1  . ⎥      the anti-diagonal reversal: an order-2 generator
//	    ⎢ .  1  .  . ⎥      with two orbits {0,3} and {1,2}, hence a
//	    ⎣ 1  .  .  . ⎦      two-column equivariant basis.
//
// Dive into each package's doc.go for algorithms, complexity notes and
// runnable examples.
//
//	go get github.com/katalvlaran/symmetry
package symmetry
