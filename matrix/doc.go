// SPDX-License-Identifier: MIT

// Package matrix provides the small dense-matrix toolkit backing the
// multivariate regression trainer: row-major Dense storage, the canonical
// kernels (Mul, Transpose, MatVec), Gaussian elimination with partial
// pivoting, and matrix inversion via basis-vector solves.
//
// Design rules, shared with the rest of scorefill:
//   - Strict fail-fast validation: every public function validates shapes
//     up front and returns a sentinel error on violation. No panics on
//     user-triggered conditions.
//   - Singularity is an expected condition, not a failure: Solve and
//     Inverse return ErrSingular the moment a pivot's magnitude falls
//     below PivotEpsilon, instead of proceeding with ill-conditioned
//     arithmetic. Callers (the OLS trainer) fall back to a simpler
//     estimator on ErrSingular.
//   - Determinism: fixed loop orders everywhere; identical inputs produce
//     bit-identical outputs.
//
// Complexity: Solve is O(n³) time, O(n²) scratch; Inverse runs n solves
// sharing one factorization pass per column set, O(n³) total.
package matrix
