package descent

import "errors"

// ErrBadOptions is returned when an Options field is out of range.
var ErrBadOptions = errors.New("descent: invalid options")

// Options configures the optimizer.
//
// Fields:
//   - MaxIterations — outer iteration budget; 0 evaluates the loss once
//     and changes nothing.
//   - InitialStep   — starting step size at the first iteration.
//   - FinalStep     — step-size lower bound reached at the last
//     iteration (linear decay between the two).
//   - MaxHalvings   — line-search retries per iteration before declaring
//     no improving step and terminating early.
//   - TuneScores    — also treat the originally-missing score cells as
//     trainable leaves, refining them jointly with the
//     regression parameters.
type Options struct {
	MaxIterations int
	InitialStep   float64
	FinalStep     float64
	MaxHalvings   int
	TuneScores    bool
}

// DefaultOptions returns the documented defaults: 200 iterations, step
// decaying 1.0 → 0.001, up to 100 halvings per line search, parameters
// only.
func DefaultOptions() Options {
	return Options{
		MaxIterations: 200,
		InitialStep:   1.0,
		FinalStep:     0.001,
		MaxHalvings:   100,
	}
}

// validate enforces option invariants shared by Minimize and Refine.
func (o Options) validate() error {
	switch {
	case o.MaxIterations < 0:
		return ErrBadOptions
	case o.InitialStep <= 0 || o.FinalStep <= 0:
		return ErrBadOptions
	case o.FinalStep > o.InitialStep:
		return ErrBadOptions
	case o.MaxHalvings < 1:
		return ErrBadOptions
	}

	return nil
}
