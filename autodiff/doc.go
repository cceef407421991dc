// Package autodiff is a minimal scalar reverse-mode automatic
// differentiation engine: a computational graph of constants, variables
// and the three primitive operations add, multiply and power, from which
// negate, subtract and divide are derived.
//
// Forward values are computed eagerly at node construction. A call to
// Gradients on the root first zeroes every gradient reachable in the
// subgraph — an explicit part of the contract, not an accidental side
// effect — sets the root gradient to 1, and then pushes contributions
// down through the chain rule. A node shared between several loss terms
// accumulates one contribution per incoming path; that additive
// accumulation is required correctness behavior.
//
// ⚙️ Usage:
//
//	x := autodiff.Variable(3)
//	y := autodiff.Variable(4)
//	f := autodiff.Mul(autodiff.Add(x, y), y) // (x+y)·y, value 28
//	f.Gradients()
//	// x.Grad() == 4, y.Grad() == 11
//
// Limitations, by design: Pow's exponent derivative uses value·ln(base)
// and is NaN for base ≤ 0 — acceptable here because scorefill only ever
// raises positive scores/parameters to positive-integer or −1 exponents.
// The engine is meant for hundreds of leaves, not millions: gradient
// propagation visits one path per node appearance.
package autodiff
