package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/scorefill/matrix"
)

// mustDense builds a Dense from rows or fails the test.
func mustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// TestSolve_WellConditioned solves a small exact system.
func TestSolve_WellConditioned(t *testing.T) {
	a := mustDense(t, [][]float64{
		{2, 1},
		{1, 3},
	})
	x, err := matrix.Solve(a, []float64{5, 10})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, x[0], 1e-12)
	assert.InDelta(t, 3.0, x[1], 1e-12)
}

// TestSolve_SingularSentinel pins the singular-matrix contract:
// a rank-deficient system returns ErrSingular, never a panic and never
// a spurious numeric result.
func TestSolve_SingularSentinel(t *testing.T) {
	a := mustDense(t, [][]float64{
		{1, 1},
		{1, 1},
	})
	x, err := matrix.Solve(a, []float64{2, 2})
	assert.Nil(t, x)
	assert.ErrorIs(t, err, matrix.ErrSingular)
}

// TestSolve_PivotingRescuesZeroDiagonal checks that partial pivoting
// handles a zero leading entry a non-pivoting scheme would reject.
func TestSolve_PivotingRescuesZeroDiagonal(t *testing.T) {
	a := mustDense(t, [][]float64{
		{0, 1},
		{1, 0},
	})
	x, err := matrix.Solve(a, []float64{3, 7})
	require.NoError(t, err)
	assert.InDelta(t, 7.0, x[0], 1e-12)
	assert.InDelta(t, 3.0, x[1], 1e-12)
}

// TestSolve_DimensionMismatch validates the rhs length guard.
func TestSolve_DimensionMismatch(t *testing.T) {
	a := mustDense(t, [][]float64{{1, 0}, {0, 1}})
	_, err := matrix.Solve(a, []float64{1})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestSolve_DoesNotMutateInputs guards the value-semantics contract.
func TestSolve_DoesNotMutateInputs(t *testing.T) {
	a := mustDense(t, [][]float64{{0, 2}, {3, 1}})
	b := []float64{4, 5}
	_, err := matrix.Solve(a, b)
	require.NoError(t, err)

	v, _ := a.At(0, 0)
	assert.Equal(t, 0.0, v, "Solve must work on a copy, not the caller's matrix")
	assert.Equal(t, []float64{4, 5}, b)
}

// TestInverse_RoundTrip verifies invert(M)·M ≈ I within floating tolerance.
func TestInverse_RoundTrip(t *testing.T) {
	m := mustDense(t, [][]float64{
		{4, 7, 2},
		{3, 6, 1},
		{2, 5, 3},
	})
	inv, err := matrix.Inverse(m)
	require.NoError(t, err)

	prod, err := matrix.Mul(inv, m)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			got, aerr := prod.At(i, j)
			require.NoError(t, aerr)
			assert.InDelta(t, want, got, 1e-9, "identity mismatch at (%d,%d)", i, j)
		}
	}
}

// TestInverse_SingularSentinel: inverting a rank-1 matrix must yield
// ErrSingular from the underlying solve.
func TestInverse_SingularSentinel(t *testing.T) {
	m := mustDense(t, [][]float64{
		{1, 1},
		{1, 1},
	})
	inv, err := matrix.Inverse(m)
	assert.Nil(t, inv)
	assert.ErrorIs(t, err, matrix.ErrSingular)
}

// TestSolve_EmptySystem: the degenerate 0×0 system has the empty solution.
func TestSolve_EmptySystem(t *testing.T) {
	a, err := matrix.NewDense(0, 0)
	require.NoError(t, err)
	x, err := matrix.Solve(a, nil)
	require.NoError(t, err)
	assert.Empty(t, x)
}
