// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors. All routines MUST
// return these sentinels (wrapped with fmt.Errorf("Op: %w", ...) at the
// facade) and tests MUST check them via errors.Is. No routine panics on
// user-triggered error conditions.

package matrix

import "errors"

var (
	// ErrNilMatrix indicates that a nil *Dense was passed where a matrix
	// is required.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrBadShape is returned when a requested shape is invalid
	// (negative rows or columns).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside the
	// valid bounds. Public indexers (At/Set) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands: Mul where a.Cols != b.Rows, Solve where len(b) != a.Rows,
	// or a non-square system.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrSingular is returned when the largest-magnitude pivot available
	// in the active column falls below PivotEpsilon. The system cannot be
	// solved reliably; callers are expected to fall back rather than retry.
	ErrSingular = errors.New("matrix: singular matrix")
)
