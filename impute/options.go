package impute

import "errors"

var (
	// ErrBadAlgorithm is returned for an Algorithm outside the enum.
	ErrBadAlgorithm = errors.New("impute: unknown algorithm")
	// ErrNegativeIterations is returned when Options.Iterations < 0.
	ErrNegativeIterations = errors.New("impute: negative iterations")
)

// Algorithm selects the imputation strategy.
type Algorithm uint8

const (
	// Bivariate fuses pairwise regressions by inverse-variance weighting.
	Bivariate Algorithm = iota
	// Multivariate fits one OLS model per metric on the seeded table.
	Multivariate
	// MultivariateDescent refines the multivariate models by gradient
	// descent before imputing.
	MultivariateDescent
)

// String implements fmt.Stringer for log- and test-friendly output.
func (a Algorithm) String() string {
	switch a {
	case Bivariate:
		return "bivariate"
	case Multivariate:
		return "multivariate"
	case MultivariateDescent:
		return "multivariate+descent"
	default:
		return "unknown"
	}
}

// Options configures Fill.
//
// Iterations means different things per algorithm:
//   - Bivariate: the number of fixed-point refinement passes after the
//     initial fill (0 = single fill round).
//   - Multivariate: ignored; training is a closed-form solve.
//   - MultivariateDescent: scaled ×100 into the optimizer's outer
//     iteration budget, floored at 100.
type Options struct {
	Algorithm  Algorithm
	Iterations int
}

// DefaultOptions selects the bivariate combiner with one refinement pass.
func DefaultOptions() Options {
	return Options{Algorithm: Bivariate, Iterations: 1}
}

// validate checks the enum range and the iteration sign.
func (o Options) validate() error {
	if o.Algorithm > MultivariateDescent {
		return ErrBadAlgorithm
	}
	if o.Iterations < 0 {
		return ErrNegativeIterations
	}

	return nil
}
