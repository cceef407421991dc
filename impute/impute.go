package impute

import (
	"fmt"

	"github.com/katalvlaran/scorefill/bivariate"
	"github.com/katalvlaran/scorefill/descent"
	"github.com/katalvlaran/scorefill/multivariate"
	"github.com/katalvlaran/scorefill/scoretable"
)

// descentIterationScale maps the user-facing Iterations knob onto the
// optimizer's outer-loop budget; the floor keeps a tiny knob from
// starving the line search.
const (
	descentIterationScale = 100
	descentIterationFloor = 100
)

// Fill imputes every missing cell of t with the selected algorithm and
// returns a new table; t itself is never mutated. Observed cells pass
// through bit-identical, and each imputed cell carries the provenance of
// the algorithm that produced it.
func Fill(t *scoretable.Table, opts Options) (*scoretable.Table, error) {
	if err := opts.validate(); err != nil {
		return nil, fmt.Errorf("Fill: %w", err)
	}

	switch opts.Algorithm {
	case Bivariate:
		return bivariate.Fill(t, opts.Iterations), nil
	case Multivariate:
		return multivariate.Fill(t), nil
	case MultivariateDescent:
		dopts := descent.DefaultOptions()
		dopts.MaxIterations = opts.Iterations * descentIterationScale
		if dopts.MaxIterations < descentIterationFloor {
			dopts.MaxIterations = descentIterationFloor
		}

		return descent.Refine(t, dopts)
	default:
		return nil, ErrBadAlgorithm
	}
}
