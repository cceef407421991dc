// Package descent refines regression parameters (and, optionally, the
// imputed scores themselves) by gradient descent on a sum-of-squared-
// residuals loss over the known cells, using the autodiff engine for
// exact gradients.
//
// 🚀 The loop
//
//	Each outer iteration rebuilds the loss graph from the current leaf
//	values, runs one reverse-mode pass, and normalizes the step by the
//	L2 norm of the gradient across all trainable leaves:
//	    learningRate = stepSize / ‖gradient‖₂
//	A backtracking line search then snapshots the leaves, applies the
//	step and recomputes the loss; anything not strictly better — or NaN —
//	restores the snapshot and halves the step, up to MaxHalvings times.
//	When no improving step exists the optimization terminates early,
//	keeping the last valid state, so NaN can never reach the output and
//	the sequence of accepted losses is non-increasing by construction.
//	The starting step size decays linearly from InitialStep to FinalStep
//	over the iteration budget.
//
// ⚙️ Usage:
//
//	opts := descent.DefaultOptions()
//	refined, models, err := descent.Refine(orig, seed, models, opts)
//
// Minimize is the generic surface: hand it the trainable leaves and a
// builder that constructs the loss graph from their current values.
package descent
