package equivariant_test

import (
	"testing"

	"github.com/katalvlaran/symmetry/equivariant"
	"github.com/katalvlaran/symmetry/genmat"
)

// buildReversal constructs the d-dimensional reversal in sparse form.
func buildReversal(d int) *genmat.COO {
	p := make([]int, d)
	for i := range p {
		p[i] = d - 1 - i
	}
	m, _ := genmat.OnelineToMatrix(p, nil)

	return m
}

// buildSignedShift constructs a single d-cycle with one −1 sign, giving a
// worst-case single orbit of length d with sign-product −1.
func buildSignedShift(d int) *genmat.COO {
	p := make([]int, d)
	s := make([]float64, d)
	for i := range p {
		p[i] = (i + 1) % d
		s[i] = 1
	}
	s[0] = -1
	m, _ := genmat.OnelineToMatrix(p, s)

	return m
}

// BenchmarkBasis_Reversal measures basis extraction over d/2 short orbits.
func BenchmarkBasis_Reversal(b *testing.B) {
	const d = 1 << 14
	p := buildReversal(d)

	b.ReportAllocs()
	b.SetBytes(int64(d))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = equivariant.Basis(p)
	}
}

// BenchmarkBasis_SingleCycle measures the single-orbit worst case.
func BenchmarkBasis_SingleCycle(b *testing.B) {
	const d = 1 << 14
	p := buildSignedShift(d)

	b.ReportAllocs()
	b.SetBytes(int64(d))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = equivariant.Basis(p)
	}
}

// BenchmarkOrbits_HookOverhead compares orbit discovery with and without a
// progress hook installed.
func BenchmarkOrbits_HookOverhead(b *testing.B) {
	const d = 1 << 12
	p := buildReversal(d)

	b.Run("NoHook", func(b *testing.B) {
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = equivariant.Orbits(p)
		}
	})

	b.Run("ProgressHook", func(b *testing.B) {
		sink := 0
		hook := func(done, _ int) { sink += done }

		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = equivariant.Orbits(p, equivariant.WithOnProgress(hook))
		}
	})
}
