package scoretable_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/scorefill/scoretable"
)

// TestMean_EmptyIsZero pins the explicit empty-slice convention.
func TestMean_EmptyIsZero(t *testing.T) {
	assert.Equal(t, 0.0, scoretable.Mean(nil), "empty input must yield 0, not an error")
	assert.Equal(t, 0.0, scoretable.Mean([]float64{}))
}

// TestMean_Basic checks the arithmetic mean on a small sample.
func TestMean_Basic(t *testing.T) {
	assert.InDelta(t, 2.5, scoretable.Mean([]float64{1, 2, 3, 4}), 1e-12)
}

// TestMetricMeans_PresentCellsOnly ensures absent cells never dilute the
// per-metric mean.
func TestMetricMeans_PresentCellsOnly(t *testing.T) {
	tbl := scoretable.Build([]scoretable.Observation{
		{Entity: "a", Metric: "m1", Value: 2, Provenance: "s"},
		{Entity: "b", Metric: "m1", Value: 4, Provenance: "s"},
		{Entity: "a", Metric: "m2", Value: 10, Provenance: "s"},
		// b has no m2 observation: an absent cell, not a zero.
	})
	means := tbl.MetricMeans()
	assert.InDelta(t, 3.0, means["m1"], 1e-12)
	assert.InDelta(t, 10.0, means["m2"], 1e-12, "absent cell must not drag the mean down")
}

// TestMetricColumn_SortedEntityOrder verifies deterministic column order.
func TestMetricColumn_SortedEntityOrder(t *testing.T) {
	tbl := scoretable.Build([]scoretable.Observation{
		{Entity: "zeta", Metric: "m", Value: 2, Provenance: "s"},
		{Entity: "alpha", Metric: "m", Value: 1, Provenance: "s"},
	})
	entities, scores := tbl.MetricColumn("m")
	assert.Equal(t, []string{"alpha", "zeta"}, entities)
	assert.Equal(t, []float64{1, 2}, scores)
}
