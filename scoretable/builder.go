package scoretable

import (
	"math"
	"sort"
	"strings"
)

// Build merges a raw observation list into the canonical table.
//
// Merge rule per (entity, metric) pair:
//   - one observation  → Score = its value, StdDev = 0, its provenance
//   - n ≥ 2            → Score = arithmetic mean, StdDev = sample standard
//     deviation with Bessel's correction (divide by n−1), Provenance =
//     all contributing sources joined in input order
//
// Every metric observed for any entity is registered globally, so an
// entity lacking that metric still owns an absent Cell slot for it.
// Build never fails: malformed observations are the ingestion layer's
// concern, not this package's.
func Build(observations []Observation) *Table {
	t := NewTable()

	// Group observation indices per pair, preserving input order so the
	// merged provenance string is deterministic for a fixed input.
	type pair struct{ entity, metric string }
	groups := make(map[pair][]int, len(observations))
	order := make([]pair, 0, len(observations))
	for i, o := range observations {
		t.AddEntity(o.Entity)
		t.AddMetric(o.Metric)
		p := pair{o.Entity, o.Metric}
		if _, seen := groups[p]; !seen {
			order = append(order, p)
		}
		groups[p] = append(groups[p], i)
	}
	// Deterministic merge order (groups is a map).
	sort.Slice(order, func(i, j int) bool {
		if order[i].entity != order[j].entity {
			return order[i].entity < order[j].entity
		}

		return order[i].metric < order[j].metric
	})

	for _, p := range order {
		idx := groups[p]
		values := make([]float64, len(idx))
		sources := make([]string, len(idx))
		for k, i := range idx {
			values[k] = observations[i].Value
			sources[k] = observations[i].Provenance
		}
		t.Set(p.entity, p.metric, Cell{
			Score:      Mean(values),
			StdDev:     sampleStdDev(values),
			Provenance: strings.Join(sources, ", "),
			Present:    true,
			Observed:   true,
		})
	}

	return t
}

// sampleStdDev returns the Bessel-corrected sample standard deviation.
// Fewer than two values carry no spread information: the result is 0.
func sampleStdDev(values []float64) float64 {
	n := len(values)
	if n < 2 {
		return 0
	}
	m := Mean(values)
	var ss float64
	for _, v := range values {
		d := v - m
		ss += d * d
	}

	return math.Sqrt(ss / float64(n-1))
}
