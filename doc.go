// Package scorefill estimates the missing entries of a sparse
// (entity × metric) score table by exploiting cross-metric correlation —
// when an entity's metrics are strongly correlated, its observed scores
// predict its unobserved ones.
//
// 🚀 What is scorefill?
//
//	A pure, in-memory numerical library that takes a partially observed
//	score table and returns a fully populated one, with a calibrated
//	uncertainty (standard deviation) and a provenance string on every
//	imputed cell. Originally observed cells always pass through unchanged.
//
// ✨ What's inside?
//
//   - scoretable/   — canonical table model: merges duplicate observations
//     into one {score, stdDev, provenance} cell, per-metric statistics
//   - matrix/       — dense matrices, Gaussian elimination with partial
//     pivoting, inversion via basis-vector solves
//   - bivariate/    — closed-form pairwise regression between every ordered
//     metric pair, leverage-adjusted prediction variance, and an
//     inverse-variance-weighted imputation combiner with fixed-point
//     refinement passes
//   - multivariate/ — ordinary least squares per target metric via the
//     normal equations, with coefficient-covariance prediction intervals
//   - autodiff/     — scalar reverse-mode automatic differentiation
//   - descent/      — gradient descent with backtracking line search,
//     built on autodiff
//   - impute/       — the facade: pick an algorithm and an iteration
//     count, get back a filled table
//
// ⚙️ Quick start:
//
//	import (
//	  "github.com/katalvlaran/scorefill/impute"
//	  "github.com/katalvlaran/scorefill/scoretable"
//	)
//
//	table := scoretable.Build(observations)
//	opts := impute.DefaultOptions()          // weighted bivariate regression
//	filled, err := impute.Fill(table, opts)
//
// Everything is deterministic: fixed input and options produce identical
// output across runs. Every call operates on its own deep copy of the
// table, so concurrent callers on separate tables never interfere.
//
// scorefill is not an ML framework: the autodiff engine supports scalar
// add/multiply/power only, and the library works on a full in-memory
// snapshot — there is no streaming mode and no persistence.
package scorefill
