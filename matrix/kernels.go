// SPDX-License-Identifier: MIT
// Package matrix: canonical dense kernels (Mul, Transpose, MatVec).
// All kernels validate via the central helpers, allocate exactly one
// result, never mutate operands, and run fixed loop orders so results
// are bit-stable across runs.

package matrix

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opMul       = "Mul"
	opTranspose = "Transpose"
	opMatVec    = "MatVec"
	opScale     = "Scale"
	opSolve     = "Solve"
	opInverse   = "Inverse"
)

// matrixErrorf wraps err with an operation tag, preserving the sentinel
// for errors.Is. Call only with err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul computes C = A × B with the deterministic i→k→j loop order.
// Zero A[i,k] entries are skipped; score tables are sparse-ish after
// centering, so the skip pays for itself.
func Mul(a, b *Dense) (*Dense, error) {
	if err := validateNotNil(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := validateNotNil(b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if a.c != b.r {
		return nil, matrixErrorf(opMul,
			fmt.Errorf("%dx%d × %dx%d: %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch))
	}

	res, err := NewDense(a.r, b.c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var i, j, k int
	var av float64
	var rowA, rowB, rowR int
	for i = 0; i < a.r; i++ {
		rowA = i * a.c
		rowR = i * b.c
		for k = 0; k < a.c; k++ {
			av = a.data[rowA+k]
			if av == 0 {
				continue
			}
			rowB = k * b.c
			for j = 0; j < b.c; j++ {
				res.data[rowR+j] += av * b.data[rowB+j]
			}
		}
	}

	return res, nil
}

// Transpose returns mᵀ as a fresh Dense; m is never mutated.
func Transpose(m *Dense) (*Dense, error) {
	if err := validateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	res, err := NewDense(m.c, m.r)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			res.data[j*m.r+i] = m.data[base+j]
		}
	}

	return res, nil
}

// MatVec computes y = m·x for a column vector x; len(x) must equal m.Cols.
func MatVec(m *Dense, x []float64) ([]float64, error) {
	if err := validateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if len(x) != m.c {
		return nil, matrixErrorf(opMatVec,
			fmt.Errorf("vector len %d, want %d: %w", len(x), m.c, ErrDimensionMismatch))
	}

	y := make([]float64, m.r)
	var i, j, base int
	var acc float64
	for i = 0; i < m.r; i++ {
		acc = 0
		base = i * m.c
		for j = 0; j < m.c; j++ {
			acc += m.data[base+j] * x[j]
		}
		y[i] = acc
	}

	return y, nil
}

// Scale returns a fresh Dense whose elements are alpha·m[i,j];
// m is never mutated.
func Scale(m *Dense, alpha float64) (*Dense, error) {
	if err := validateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res := m.Clone()
	for i := range res.data {
		res.data[i] *= alpha
	}

	return res, nil
}

// Dot computes xᵀ·y for equal-length vectors; a convenience for the
// quadratic form in prediction-variance computations.
func Dot(x, y []float64) (float64, error) {
	if len(x) != len(y) {
		return 0, fmt.Errorf("Dot: len %d vs %d: %w", len(x), len(y), ErrDimensionMismatch)
	}
	var acc float64
	for i := range x {
		acc += x[i] * y[i]
	}

	return acc, nil
}
