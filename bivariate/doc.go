// Package bivariate fills missing score cells with pairwise linear
// regression: for every ordered metric pair (j → k) it fits a closed-form
// line over the entities where both metrics are present, then fuses all
// per-predictor estimates of a missing cell by inverse-variance weighting.
//
// 🚀 How it works
//
//  1. Fit: for each ordered pair (j, k),
//     a = Σ(xⱼ−x̄ⱼ)(xₖ−x̄ₖ) / Σ(xⱼ−x̄ⱼ)²   (0 when no overlap or zero spread)
//     b = x̄ₖ − a·x̄ⱼ
//     with a mean-squared error over the same entities at max(n−2, 1)
//     degrees of freedom. (j→k) and (k→j) are independent fits, never
//     algebraic inverses of each other.
//
//  2. Predict: a missing cell (entity, k) receives one prediction per
//     metric j present for that entity, each with the leverage-adjusted
//     variance  mse·(1 + 1/n + (x−x̄ⱼ)²/Σ(xⱼ−x̄ⱼ)²) — predictions near
//     the edge of the observed predictor range are trusted less.
//
//  3. Fuse: inverse-variance weighting combines the predictions; the
//     covariance between two predictions of the same target is treated
//     as exactly 1 (they share the target's noise). This is a preserved
//     simplifying approximation, not a rigorous joint covariance.
//     No predictors at all ⇒ fall back to the unconditional metric mean
//     with variance mean² — a crude but deliberately non-zero floor.
//
// Fill supports fixed-point refinement: pass t+1 re-derives every
// estimator and mean from the table filled by pass t (imputed cells
// included), converging toward a fixed point. passes=0 returns the
// first-pass fill. Originally observed cells are never modified.
//
// Complexity: fitting is O(metrics² × entities) per pass; fusion is
// O(entities × metrics²) per pass.
package bivariate
