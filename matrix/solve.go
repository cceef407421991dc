// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

// PivotEpsilon is the singularity threshold: when the largest-magnitude
// entry available for the active column falls below it, the system is
// declared singular and ErrSingular is returned immediately rather than
// continuing with ill-conditioned arithmetic.
const PivotEpsilon = 1e-10

// Solve solves A·x = b by Gaussian elimination with partial pivoting.
// Blueprint:
//
//	Stage 1 (Validate): A non-nil and square, len(b) == A.Rows.
//	Stage 2 (Prepare): copy A and b into an augmented working set so the
//	        caller's data is never mutated.
//	Stage 3 (Eliminate): for each column, swap in the row holding the
//	        largest-magnitude entry; |pivot| < PivotEpsilon ⇒ ErrSingular.
//	Stage 4 (Back-substitute): solve the resulting upper-triangular system.
//
// Complexity: O(n³) time, O(n²) scratch, where n = A.Rows().
func Solve(a *Dense, b []float64) ([]float64, error) {
	// Stage 1: Validate input shape.
	if err := validateNotNil(a); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if err := validateSquare(a); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	n := a.r
	if len(b) != n {
		return nil, matrixErrorf(opSolve,
			fmt.Errorf("rhs len %d, want %d: %w", len(b), n, ErrDimensionMismatch))
	}
	if n == 0 {
		return []float64{}, nil
	}

	// Stage 2: Working copies — Solve never mutates its arguments.
	w := a.Clone()
	rhs := make([]float64, n)
	copy(rhs, b)

	// Stage 3: Forward elimination with partial pivoting.
	var col, row, k, pivotRow int
	var pivot, magnitude, factor float64
	for col = 0; col < n; col++ {
		// Pick the row with the largest-magnitude entry in the active column.
		pivotRow = col
		pivot = math.Abs(w.data[col*n+col])
		for row = col + 1; row < n; row++ {
			magnitude = math.Abs(w.data[row*n+col])
			if magnitude > pivot {
				pivot, pivotRow = magnitude, row
			}
		}
		if pivot < PivotEpsilon {
			return nil, matrixErrorf(opSolve, ErrSingular)
		}
		if pivotRow != col {
			swapRows(w, col, pivotRow)
			rhs[col], rhs[pivotRow] = rhs[pivotRow], rhs[col]
		}

		// Eliminate the column below the pivot.
		for row = col + 1; row < n; row++ {
			factor = w.data[row*n+col] / w.data[col*n+col]
			if factor == 0 {
				continue
			}
			w.data[row*n+col] = 0
			for k = col + 1; k < n; k++ {
				w.data[row*n+k] -= factor * w.data[col*n+k]
			}
			rhs[row] -= factor * rhs[col]
		}
	}

	// Stage 4: Back substitution on the upper-triangular system.
	x := make([]float64, n)
	var sum float64
	for row = n - 1; row >= 0; row-- {
		sum = rhs[row]
		for k = row + 1; k < n; k++ {
			sum -= w.data[row*n+k] * x[k]
		}
		x[row] = sum / w.data[row*n+row]
	}

	return x, nil
}

// Inverse computes A⁻¹ as n independent Solve calls against the standard
// basis vectors e₀..e_{n−1}; column i of the result is the solution of
// A·x = eᵢ. Returns ErrSingular if any solve is singular.
func Inverse(a *Dense) (*Dense, error) {
	if err := validateNotNil(a); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if err := validateSquare(a); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	n := a.r
	inv, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	basis := make([]float64, n)
	var col, i int
	var x []float64
	for col = 0; col < n; col++ {
		for i = range basis {
			basis[i] = 0
		}
		basis[col] = 1
		x, err = Solve(a, basis)
		if err != nil {
			return nil, matrixErrorf(opInverse, err) // propagates ErrSingular
		}
		for i = 0; i < n; i++ {
			inv.data[i*n+col] = x[i]
		}
	}

	return inv, nil
}

// swapRows exchanges two rows of a square working matrix in place.
func swapRows(m *Dense, i, j int) {
	a := m.data[i*m.c : (i+1)*m.c]
	b := m.data[j*m.c : (j+1)*m.c]
	for k := range a {
		a[k], b[k] = b[k], a[k]
	}
}
