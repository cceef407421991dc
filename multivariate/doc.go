// Package multivariate trains one ordinary-least-squares model per target
// metric against all other metrics simultaneously, and uses the models to
// impute missing cells with calibrated prediction intervals.
//
// 🚀 How it works
//
//	For target metric k the design matrix X holds one row per entity over
//	a fully pre-filled table (seeded by the bivariate combiner), columns
//	= every other metric plus an appended bias column of ones. The normal
//	equations (XᵀX)β = Xᵀy are solved by Gaussian elimination with
//	partial pivoting (package matrix). A pivot below matrix.PivotEpsilon
//	declares the fit singular: the model falls back to bias = mean(y),
//	zero slopes and no covariance, never to ill-conditioned arithmetic.
//
//	Uncertainty:
//	  residualVariance = Σr² / max(n − p − 1, 1)
//	  Covariance       = residualVariance · (XᵀX)⁻¹
//	  PredictVariance  = residualVariance + xᵀ·Covariance·x   (clamped ≥ 0)
//	the irreducible noise plus the coefficient-estimation error, with the
//	bias term appended to x for the quadratic form.
//
// Complexity: O(entities·metrics²) to build the normal equations and
// O(metrics³) to solve/invert, per target metric.
package multivariate
