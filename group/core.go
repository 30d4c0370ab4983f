// Package group: Core holds a validated generator set plus the metadata
// derived from it (dimension, storage kind, pure-permutation flag, traces,
// invariant dimensions). Both concrete group types embed it.
package group

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/katalvlaran/symmetry/genmat"
)

// diagonalTiling is the number of times the generator list is replicated
// when computing invariant dimensions. The replication guards the check
// against very short generator lists (1–2 generators); it does not change
// the mathematical definition of invariance.
const diagonalTiling = 4

// Core is the validated state shared by every concrete group.
// It is an immutable value object: no mutation after construction, and
// hashing/equality derive from the exact generator matrix content.
type Core struct {
	d      int              // dimension of the acted-upon vector space
	gens   []genmat.Matrix  // ordered generator matrices, storage-unified
	kind   genmat.Kind      // unified storage representation
	perm   bool             // true iff no generator carries a negative entry
	traces []float64        // trace ("character") per generator, in order
	inv    map[int]struct{} // indices fixed (diagonal +1) by every generator
	eps    float64          // numeric tolerance the group was validated under
}

// newCore validates a candidate generator set and assembles the shared Core.
//
// Stage 1 (Validate): non-empty list; every generator square of equal size;
// every generator column-orthonormal within eps.
// Stage 2 (Unify): one sparse generator forces the whole set into COO
// storage; otherwise the set is unified to Dense.
// Stage 3 (Derive): pure-permutation flag, per-generator traces, and the
// invariant-dimension set from tiled diagonals.
//
// Errors: ErrNoGenerators, genmat.ErrDimensionMismatch (with the offending
// index), ErrMalformedGenerator (with the offending index).
func newCore(gens []genmat.Matrix, o Options) (*Core, error) {
	// 1. A group needs at least one nontrivial generator.
	if len(gens) == 0 {
		return nil, ErrNoGenerators
	}

	// 2. Dimension comes from the first generator; all must match it.
	var d, i int
	var h genmat.Matrix
	for i, h = range gens {
		if h == nil {
			return nil, fmt.Errorf("group: generator %d: %w", i, genmat.ErrNilMatrix)
		}
		if i == 0 {
			d = h.Rows()
		}
		if h.Rows() != d || h.Cols() != d {
			return nil, fmt.Errorf("group: generator %d: %w", i, genmat.ErrDimensionMismatch)
		}
	}

	c := &Core{d: d, kind: genmat.KindDense, perm: true, eps: o.eps}

	// 3. Column-orthonormality per generator; detect signs and sparsity.
	var norms []float64
	var err error
	var neg bool
	for i, h = range gens {
		norms, err = genmat.ColumnNorms(h)
		if err != nil {
			return nil, fmt.Errorf("group: generator %d: %w", i, err)
		}
		for _, n := range norms {
			if math.Abs(n-1) > o.eps {
				return nil, fmt.Errorf("group: generator %d: %w", i, ErrMalformedGenerator)
			}
		}
		if neg, err = genmat.HasNegative(h); err != nil {
			return nil, fmt.Errorf("group: generator %d: %w", i, err)
		}
		if neg {
			c.perm = false
		}
		if h.Kind() == genmat.KindSparse {
			c.kind = genmat.KindSparse
		}
	}

	// 4. Unify storage: mixed dense/sparse sets collapse to the sparse form.
	c.gens = make([]genmat.Matrix, len(gens))
	for i, h = range gens {
		if c.kind == genmat.KindSparse {
			if c.gens[i], err = genmat.ToCOO(h); err != nil {
				return nil, fmt.Errorf("group: generator %d: %w", i, err)
			}
		} else {
			if c.gens[i], err = genmat.ToDense(h); err != nil {
				return nil, fmt.Errorf("group: generator %d: %w", i, err)
			}
		}
	}

	// 5. Traces, one per generator, in generator order.
	c.traces = make([]float64, len(c.gens))
	for i, h = range c.gens {
		c.traces[i], _ = genmat.Trace(h) // square already proven
	}

	// 6. Invariant dimensions from tiled diagonals: dimension i is invariant
	// iff every tiled generator's diagonal entry i equals 1 within eps.
	diags := make([][]float64, 0, diagonalTiling*len(c.gens))
	for rep := 0; rep < diagonalTiling; rep++ {
		for _, h = range c.gens {
			diags = append(diags, h.Diagonal())
		}
	}
	c.inv = make(map[int]struct{}, d)
	var fixed bool
	for i = 0; i < d; i++ {
		fixed = true
		for _, diag := range diags {
			if math.Abs(diag[i]-1) > o.eps {
				fixed = false

				break
			}
		}
		if fixed {
			c.inv[i] = struct{}{}
		}
	}

	return c, nil
}

// Dimension returns the size of the acted-upon vector space.
func (c *Core) Dimension() int { return c.d }

// Kind reports the unified storage representation of the generator set.
func (c *Core) Kind() genmat.Kind { return c.kind }

// IsPermutation reports whether every generator is a pure permutation
// (no negative entries anywhere).
func (c *Core) IsPermutation() bool { return c.perm }

// Generators returns the ordered generator matrices. The slice is a copy;
// the matrices themselves are shared and must not be mutated.
func (c *Core) Generators() []genmat.Matrix {
	return append([]genmat.Matrix(nil), c.gens...)
}

// GeneratorTraces returns each generator's trace (character), in generator
// order. The returned slice is a copy.
func (c *Core) GeneratorTraces() []float64 {
	return append([]float64(nil), c.traces...)
}

// InvariantDimensions returns the sorted indices of coordinates fixed
// (diagonal entry +1) by every generator.
func (c *Core) InvariantDimensions() []int {
	idx := maps.Keys(c.inv)
	slices.Sort(idx)

	return idx
}

// NumInvariantDimensions returns the size of the invariant-dimension set.
func (c *Core) NumInvariantDimensions() int { return len(c.inv) }

// Key returns a canonical byte-exact representation of the generator set,
// suitable as a map key for memoizing per-group results. Two groups whose
// generators differ only in floating-point noise get different keys
// (exact-match hashing, intentionally).
func (c *Core) Key() string {
	var sb strings.Builder
	for _, h := range c.gens {
		sb.WriteString(keyOf(h))
		sb.WriteByte('|')
	}

	return sb.String()
}

// keyOf serializes one matrix into a canonical entry string.
// Dense: shape plus every entry in row-major order. Sparse: shape plus the
// nonzero triplets in (row, col) order, so triplet storage order does not
// leak into the key.
func keyOf(m genmat.Matrix) string {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(m.Rows()))
	sb.WriteByte('x')
	sb.WriteString(strconv.Itoa(m.Cols()))
	sb.WriteByte(':')

	if s, ok := m.(*genmat.COO); ok {
		type entry struct {
			i, j int
			v    float64
		}
		rows, cols, vals := s.Triplets()
		entries := make([]entry, 0, len(vals))
		for k := range vals {
			if vals[k] != 0 {
				entries = append(entries, entry{i: rows[k], j: cols[k], v: vals[k]})
			}
		}
		slices.SortFunc(entries, func(a, b entry) int {
			if a.i != b.i {
				return a.i - b.i
			}

			return a.j - b.j
		})
		for _, e := range entries {
			sb.WriteString(strconv.Itoa(e.i))
			sb.WriteByte(',')
			sb.WriteString(strconv.Itoa(e.j))
			sb.WriteByte('=')
			sb.WriteString(strconv.FormatFloat(e.v, 'g', -1, 64))
			sb.WriteByte(';')
		}

		return sb.String()
	}

	var v float64
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, _ = m.At(i, j)
			sb.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
			sb.WriteByte(';')
		}
	}

	return sb.String()
}

// Equal reports exact structural equality of two cores: same dimension,
// same storage kind, and byte-identical generator content.
func (c *Core) Equal(other *Core) (res bool) {
	if c == nil && other == nil {
		return true
	}
	if (c != nil && other == nil) || (c == nil && other != nil) {
		return false
	}

	res = c.d == other.d
	res = res && c.kind == other.kind
	res = res && cmp.Equal(c.gens, other.gens,
		cmp.AllowUnexported(genmat.Dense{}, genmat.COO{}))

	return res
}

// String implements fmt.Stringer.
func (c *Core) String() string { return fmt.Sprintf("Sym(%d)", c.d) }

// identityLike materializes the d×d identity in the group's unified storage
// kind. d > 0 is a Core invariant, so allocation cannot fail here.
func (c *Core) identityLike() genmat.Matrix {
	if c.kind == genmat.KindSparse {
		id, _ := genmat.SparseIdentity(c.d)

		return id
	}
	id, _ := genmat.Identity(c.d)

	return id
}

// isIdentityByTrace reports whether m equals the identity, judged by trace.
// Valid only for generalized permutation matrices: such a matrix has trace d
// iff every diagonal entry is +1, i.e. iff it is exactly the identity.
func isIdentityByTrace(m genmat.Matrix, d int, eps float64) (bool, error) {
	tr, err := genmat.Trace(m)
	if err != nil {
		return false, err
	}

	return math.Abs(tr-float64(d)) <= eps, nil
}
