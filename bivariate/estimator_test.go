package bivariate_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/scorefill/bivariate"
	"github.com/katalvlaran/scorefill/scoretable"
)

// TestFit_LinearRoundTrip: scores exactly on y = 2x + 1 must recover
// a≈2, b≈1 to floating tolerance with near-zero MSE.
func TestFit_LinearRoundTrip(t *testing.T) {
	xs := []float64{1, 2, 3, 4}
	ys := []float64{3, 5, 7, 9}

	est := bivariate.Fit(xs, ys)
	assert.InDelta(t, 2.0, est.Slope, 1e-12)
	assert.InDelta(t, 1.0, est.Intercept, 1e-12)
	assert.InDelta(t, 0.0, est.MSE, 1e-12)
	assert.Equal(t, 4, est.N)
}

// TestFit_ConstantPredictor pins the degeneracy contract: identical
// predictor values force slope exactly 0 and intercept = mean(target).
func TestFit_ConstantPredictor(t *testing.T) {
	est := bivariate.Fit([]float64{5, 5, 5}, []float64{1, 2, 3})
	assert.Equal(t, 0.0, est.Slope, "constant X must give zero slope")
	assert.InDelta(t, 2.0, est.Intercept, 1e-12, "intercept is the target mean")
}

// TestFit_NoData returns the neutral estimator, whose prediction
// variance is +Inf so fusion assigns it zero weight.
func TestFit_NoData(t *testing.T) {
	est := bivariate.Fit(nil, nil)
	assert.Equal(t, 0.0, est.Slope)
	assert.Equal(t, 0.0, est.Intercept)
	assert.Equal(t, 0, est.N)
	assert.True(t, math.IsInf(est.PredictVariance(1.0), 1))
}

// TestFit_DOFFloor: with n ≤ 2 the degrees of freedom floor at 1 so the
// MSE never divides by zero.
func TestFit_DOFFloor(t *testing.T) {
	est := bivariate.Fit([]float64{1, 2}, []float64{1, 3})
	assert.False(t, math.IsNaN(est.MSE))
	assert.False(t, math.IsInf(est.MSE, 0))
}

// TestFitAll_Directional verifies (j→k) and (k→j) are independent fits,
// not algebraic inverses.
func TestFitAll_Directional(t *testing.T) {
	tbl := scoretable.Build([]scoretable.Observation{
		{Entity: "a", Metric: "x", Value: 1, Provenance: "s"},
		{Entity: "a", Metric: "y", Value: 2, Provenance: "s"},
		{Entity: "b", Metric: "x", Value: 2, Provenance: "s"},
		{Entity: "b", Metric: "y", Value: 5, Provenance: "s"},
		{Entity: "c", Metric: "x", Value: 3, Provenance: "s"},
		{Entity: "c", Metric: "y", Value: 7, Provenance: "s"},
	})
	ests := bivariate.FitAll(tbl)

	fwd := ests[bivariate.Pair{Predictor: "x", Target: "y"}]
	rev := ests[bivariate.Pair{Predictor: "y", Target: "x"}]
	require.Equal(t, 3, fwd.N)
	require.Equal(t, 3, rev.N)
	// If they were inverses, rev.Slope would equal 1/fwd.Slope exactly.
	assert.NotEqual(t, 1.0, fwd.Slope*rev.Slope,
		"reverse fit must be an independent regression, not the inverse line")
}

// TestFitAll_OverlapOnly: pairs with no shared entity get the neutral
// zero estimator.
func TestFitAll_OverlapOnly(t *testing.T) {
	tbl := scoretable.Build([]scoretable.Observation{
		{Entity: "a", Metric: "x", Value: 1, Provenance: "s"},
		{Entity: "b", Metric: "y", Value: 2, Provenance: "s"},
	})
	ests := bivariate.FitAll(tbl)
	est := ests[bivariate.Pair{Predictor: "x", Target: "y"}]
	assert.Equal(t, 0, est.N)
	assert.Equal(t, 0.0, est.Slope)
	assert.Equal(t, 0.0, est.Intercept)
}

// TestPredictVariance_LeverageGrowsOffCenter: uncertainty must inflate
// as the query point moves away from the fitted predictor mean.
func TestPredictVariance_LeverageGrowsOffCenter(t *testing.T) {
	// Noisy-ish data so MSE > 0.
	est := bivariate.Fit([]float64{1, 2, 3, 4, 5}, []float64{2.1, 3.9, 6.2, 7.8, 10.1})

	atCenter := est.PredictVariance(est.PredictorMean)
	offCenter := est.PredictVariance(est.PredictorMean + 10)
	assert.Greater(t, offCenter, atCenter, "leverage must inflate variance off-center")
}

// TestPredictorValue_SubstitutesCrossPredictions: an absent predictor is
// replaced by the mean of the entity's other cross-predictions of it,
// never by the unconditional metric mean.
func TestPredictorValue_SubstitutesCrossPredictions(t *testing.T) {
	tbl := scoretable.Build([]scoretable.Observation{
		// x and y perfectly correlated: y = 2x.
		{Entity: "a", Metric: "x", Value: 1, Provenance: "s"},
		{Entity: "a", Metric: "y", Value: 2, Provenance: "s"},
		{Entity: "b", Metric: "x", Value: 2, Provenance: "s"},
		{Entity: "b", Metric: "y", Value: 4, Provenance: "s"},
		{Entity: "c", Metric: "x", Value: 3, Provenance: "s"},
		{Entity: "c", Metric: "y", Value: 6, Provenance: "s"},
		// d reports only y; its x must be cross-predicted as y/2 = 5.
		{Entity: "d", Metric: "y", Value: 10, Provenance: "s"},
	})
	ests := bivariate.FitAll(tbl)

	x, ok := bivariate.PredictorValue(tbl, ests, "d", "x")
	require.True(t, ok)
	assert.InDelta(t, 5.0, x, 1e-9,
		"substitute must come from cross-predictions, not the x mean (=2)")

	// Direct case: a present cell is returned as-is.
	x, ok = bivariate.PredictorValue(tbl, ests, "a", "x")
	require.True(t, ok)
	assert.Equal(t, 1.0, x)

	// No information at all: reported as unavailable.
	_, ok = bivariate.PredictorValue(tbl, ests, "unknown-entity", "x")
	assert.False(t, ok)
}
