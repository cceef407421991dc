// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// Dense is a row-major dense matrix backed by a single flat slice:
// element (i, j) lives at data[i*cols+j]. The flat layout keeps the hot
// loops in Solve/Mul cache-friendly and allocation-free.
type Dense struct {
	r, c int
	data []float64
}

// NewDense allocates a zero-filled r×c matrix.
// Zero-sized matrices (0×N or N×0) are legal degenerate values.
func NewDense(r, c int) (*Dense, error) {
	if r < 0 || c < 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", r, c, ErrBadShape)
	}

	return &Dense{r: r, c: c, data: make([]float64, r*c)}, nil
}

// NewDenseFromRows builds a Dense from a rectangular [][]float64.
// All rows must share one length.
func NewDenseFromRows(rows [][]float64) (*Dense, error) {
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}
	m, err := NewDense(r, c)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("NewDenseFromRows: row %d has %d cols, want %d: %w",
				i, len(row), c, ErrDimensionMismatch)
		}
		copy(m.data[i*c:(i+1)*c], row)
	}

	return m, nil
}

// Rows reports the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols reports the number of columns.
func (m *Dense) Cols() int { return m.c }

// At returns element (i, j) or ErrOutOfRange.
func (m *Dense) At(i, j int) (float64, error) {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return 0, fmt.Errorf("At(%d,%d): %w", i, j, ErrOutOfRange)
	}

	return m.data[i*m.c+j], nil
}

// Set assigns element (i, j) or returns ErrOutOfRange.
func (m *Dense) Set(i, j int, v float64) error {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return fmt.Errorf("Set(%d,%d): %w", i, j, ErrOutOfRange)
	}
	m.data[i*m.c+j] = v

	return nil
}

// Clone returns an independent deep copy of m.
func (m *Dense) Clone() *Dense {
	cp := &Dense{r: m.r, c: m.c, data: make([]float64, len(m.data))}
	copy(cp.data, m.data)

	return cp
}

// validateNotNil guards against nil receivers/arguments at facades.
func validateNotNil(m *Dense) error {
	if m == nil {
		return ErrNilMatrix
	}

	return nil
}

// validateSquare requires a square matrix.
func validateSquare(m *Dense) error {
	if m.r != m.c {
		return fmt.Errorf("%dx%d: %w", m.r, m.c, ErrDimensionMismatch)
	}

	return nil
}
