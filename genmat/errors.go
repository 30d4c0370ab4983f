// SPDX-License-Identifier: MIT
// Package genmat: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the genmat
// package. All functions MUST return these sentinels and tests MUST check them
// via errors.Is. No function panics on user-triggered error conditions.

package genmat

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "genmat: ..." for consistency and to allow
// easy grepping across logs. Do not %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.

var (
	// ErrBadShape is returned when a requested shape is invalid
	// (rows <= 0, or a negative column count).
	ErrBadShape = errors.New("genmat: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside
	// valid bounds. Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("genmat: index out of range")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("genmat: nil matrix")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Mul where a.Cols != b.Rows, or a signs vector whose length differs
	// from the one-line notation.
	ErrDimensionMismatch = errors.New("genmat: dimension mismatch")

	// ErrDuplicateEntry signals that two COO triplets address the same
	// (row, col) coordinate. Duplicate coordinates are disallowed because a
	// generalized permutation has at most one entry per cell.
	ErrDuplicateEntry = errors.New("genmat: duplicate sparse entry")

	// ErrInvalidPermutation signals that a one-line notation is not a
	// permutation of {0, …, d−1} (duplicate or out-of-range values).
	ErrInvalidPermutation = errors.New("genmat: not a valid permutation")
)
