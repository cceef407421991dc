// Package impute is the front door of scorefill: pick an algorithm,
// hand over a score table, get back a new table with every missing cell
// filled and stamped with the provenance of the method that produced it.
//
// ✨ Algorithms
//
//   - Bivariate            — pairwise weighted regression fused by
//     inverse-variance weighting, with optional
//     fixed-point refinement passes.
//   - Multivariate         — one OLS model per metric over all other
//     metrics, seeded by the bivariate combiner.
//   - MultivariateDescent  — the multivariate models refined by gradient
//     descent on the observed-cell residuals.
//
// ⚙️ Usage:
//
//	filled, err := impute.Fill(table, impute.DefaultOptions())
//
// The input table is never mutated; observed cells pass through
// bit-identical in every mode, and the output is deterministic for a
// given input and options.
package impute
