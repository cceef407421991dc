package scoretable

// Mean returns the arithmetic mean of values.
//
// The empty slice yields 0 by explicit convention — downstream estimators
// treat "no data" as a neutral zero contribution, never as an error.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}

	return sum / float64(len(values))
}

// MetricMeans returns the per-metric arithmetic mean over present cells
// only. A metric with no present cell anywhere maps to 0 (the Mean
// empty-slice convention).
func (t *Table) MetricMeans() map[string]float64 {
	means := make(map[string]float64, len(t.metrics))
	entities := t.Entities()
	for _, m := range t.Metrics() {
		var values []float64
		for _, e := range entities {
			if c, ok := t.At(e, m); ok && c.Present {
				values = append(values, c.Score)
			}
		}
		means[m] = Mean(values)
	}

	return means
}

// MetricColumn collects the present scores of one metric, in sorted
// entity order, paired with the entities they belong to.
func (t *Table) MetricColumn(metric string) (entities []string, scores []float64) {
	for _, e := range t.Entities() {
		if c, ok := t.At(e, metric); ok && c.Present {
			entities = append(entities, e)
			scores = append(scores, c.Score)
		}
	}

	return entities, scores
}
