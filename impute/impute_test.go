package impute_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/scorefill/bivariate"
	"github.com/katalvlaran/scorefill/descent"
	"github.com/katalvlaran/scorefill/impute"
	"github.com/katalvlaran/scorefill/multivariate"
	"github.com/katalvlaran/scorefill/scoretable"
)

// linearFixture: y = 2x + 1 observed for a..c, x observed for d but y
// missing.
func linearFixture() *scoretable.Table {
	return scoretable.Build([]scoretable.Observation{
		{Entity: "a", Metric: "x", Value: 1, Provenance: "run"},
		{Entity: "a", Metric: "y", Value: 3, Provenance: "run"},
		{Entity: "b", Metric: "x", Value: 2, Provenance: "run"},
		{Entity: "b", Metric: "y", Value: 5, Provenance: "run"},
		{Entity: "c", Metric: "x", Value: 3, Provenance: "run"},
		{Entity: "c", Metric: "y", Value: 7, Provenance: "run"},
		{Entity: "d", Metric: "x", Value: 10, Provenance: "run"},
	})
}

// TestFill_AlgorithmProvenance: every algorithm resolves the exact linear
// fixture to y(d) ≈ 21 and stamps its own provenance.
func TestFill_AlgorithmProvenance(t *testing.T) {
	cases := []struct {
		algorithm  impute.Algorithm
		provenance string
	}{
		{impute.Bivariate, bivariate.Provenance},
		{impute.Multivariate, multivariate.Provenance},
		{impute.MultivariateDescent, descent.Provenance},
	}
	for _, tc := range cases {
		t.Run(tc.algorithm.String(), func(t *testing.T) {
			filled, err := impute.Fill(linearFixture(), impute.Options{
				Algorithm: tc.algorithm, Iterations: 1,
			})
			require.NoError(t, err)

			c, ok := filled.At("d", "y")
			require.True(t, ok)
			assert.True(t, c.Present)
			assert.False(t, c.Observed)
			assert.InDelta(t, 21.0, c.Score, 0.1)
			assert.Equal(t, tc.provenance, c.Provenance)
		})
	}
}

// TestFill_PreservesObservedAndInput: observed cells pass through
// bit-identical in every mode, and the input table is never mutated.
func TestFill_PreservesObservedAndInput(t *testing.T) {
	for _, alg := range []impute.Algorithm{
		impute.Bivariate, impute.Multivariate, impute.MultivariateDescent,
	} {
		orig := linearFixture()
		before, _ := orig.At("b", "y")

		filled, err := impute.Fill(orig, impute.Options{Algorithm: alg, Iterations: 1})
		require.NoError(t, err)

		for _, e := range []string{"a", "b", "c"} {
			want, _ := orig.At(e, "y")
			got, _ := filled.At(e, "y")
			assert.Equal(t, want, got, "%s: observed cell (%s,y) must survive", alg, e)
		}
		after, _ := orig.At("b", "y")
		assert.Equal(t, before, after, "%s: input must not be mutated", alg)
	}
}

// TestFill_ZeroIterationsBivariate: Iterations = 0 is a single fill round
// with no refinement pass, not a no-op.
func TestFill_ZeroIterationsBivariate(t *testing.T) {
	filled, err := impute.Fill(linearFixture(), impute.Options{
		Algorithm: impute.Bivariate, Iterations: 0,
	})
	require.NoError(t, err)

	c, ok := filled.At("d", "y")
	require.True(t, ok)
	assert.True(t, c.Present)
	assert.InDelta(t, 21.0, c.Score, 0.1)
}

// TestFill_EmptyTable: all algorithms accept an empty table.
func TestFill_EmptyTable(t *testing.T) {
	for _, alg := range []impute.Algorithm{
		impute.Bivariate, impute.Multivariate, impute.MultivariateDescent,
	} {
		filled, err := impute.Fill(scoretable.NewTable(), impute.Options{Algorithm: alg})
		require.NoError(t, err)
		assert.Equal(t, 0, filled.NumEntities(), "%s", alg)
	}
}

// TestFill_OptionSentinels: invalid options surface the right sentinel
// and never a partial result.
func TestFill_OptionSentinels(t *testing.T) {
	_, err := impute.Fill(linearFixture(), impute.Options{Algorithm: impute.Algorithm(42)})
	assert.ErrorIs(t, err, impute.ErrBadAlgorithm)

	_, err = impute.Fill(linearFixture(), impute.Options{Algorithm: impute.Bivariate, Iterations: -1})
	assert.ErrorIs(t, err, impute.ErrNegativeIterations)
}

// TestFill_Deterministic: identical output across runs per algorithm.
func TestFill_Deterministic(t *testing.T) {
	for _, alg := range []impute.Algorithm{
		impute.Bivariate, impute.Multivariate, impute.MultivariateDescent,
	} {
		opts := impute.Options{Algorithm: alg, Iterations: 1}
		f1, err := impute.Fill(linearFixture(), opts)
		require.NoError(t, err)
		f2, err := impute.Fill(linearFixture(), opts)
		require.NoError(t, err)

		for _, e := range f1.Entities() {
			for _, m := range f1.Metrics() {
				c1, _ := f1.At(e, m)
				c2, _ := f2.At(e, m)
				assert.Equal(t, c1, c2, "%s: cell (%s,%s)", alg, e, m)
			}
		}
	}
}

// TestDefaultOptions pins the documented defaults.
func TestDefaultOptions(t *testing.T) {
	opts := impute.DefaultOptions()
	assert.Equal(t, impute.Bivariate, opts.Algorithm)
	assert.Equal(t, 1, opts.Iterations)
}
