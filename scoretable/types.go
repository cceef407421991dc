package scoretable

import "sort"

// Observation is one reported score for one (entity, metric) pair.
// Multiple observations may exist for the same pair; Build merges them.
type Observation struct {
	Entity     string  // row identifier (e.g. a model under evaluation)
	Metric     string  // column identifier (e.g. a benchmark)
	Value      float64 // the reported score
	Provenance string  // where this observation came from
}

// Cell is one canonical (entity, metric) slot after merging.
//
// A Cell is in exactly one of three states:
//   - absent:   Present == false — no score yet
//   - observed: Present && Observed — score came from real observations
//   - imputed:  Present && !Observed — score was estimated by an algorithm
type Cell struct {
	Score      float64 // point estimate; meaningless unless Present
	StdDev     float64 // uncertainty, always ≥ 0; 0 for a single observation
	Provenance string  // contributing sources, or the imputing algorithm
	Present    bool    // a score is set (observed or imputed)
	Observed   bool    // the score comes from merged real observations
}

// Table is the complete set of Cells, addressable by entity and metric.
// The metric set is the union of all metrics ever observed across any
// entity, so every (entity, metric) combination has a slot.
//
// The zero value is not usable; construct via NewTable or Build.
type Table struct {
	cells   map[string]map[string]Cell // entity → metric → cell
	metrics map[string]struct{}        // global metric-name set
}

// NewTable returns an empty table with no entities and no metrics.
func NewTable() *Table {
	return &Table{
		cells:   make(map[string]map[string]Cell),
		metrics: make(map[string]struct{}),
	}
}

// AddEntity registers an entity, creating its (initially empty) row.
// Adding an existing entity is a no-op.
func (t *Table) AddEntity(entity string) {
	if _, ok := t.cells[entity]; !ok {
		t.cells[entity] = make(map[string]Cell)
	}
}

// AddMetric registers a metric name in the global metric set.
// Adding an existing metric is a no-op.
func (t *Table) AddMetric(metric string) {
	t.metrics[metric] = struct{}{}
}

// Set stores a cell for (entity, metric), registering both identifiers.
func (t *Table) Set(entity, metric string, c Cell) {
	t.AddEntity(entity)
	t.AddMetric(metric)
	t.cells[entity][metric] = c
}

// At returns the cell for (entity, metric). The second return is false
// when the entity is unknown or no cell was ever set for the pair; callers
// treat that exactly like an absent cell.
func (t *Table) At(entity, metric string) (Cell, bool) {
	row, ok := t.cells[entity]
	if !ok {
		return Cell{}, false
	}
	c, ok := row[metric]

	return c, ok
}

// Entities returns all entity identifiers in sorted order.
// Sorting makes every table traversal deterministic.
func (t *Table) Entities() []string {
	out := make([]string, 0, len(t.cells))
	for e := range t.cells {
		out = append(out, e)
	}
	sort.Strings(out)

	return out
}

// Metrics returns all metric names in sorted order.
func (t *Table) Metrics() []string {
	out := make([]string, 0, len(t.metrics))
	for m := range t.metrics {
		out = append(out, m)
	}
	sort.Strings(out)

	return out
}

// NumEntities reports how many entities the table holds.
func (t *Table) NumEntities() int { return len(t.cells) }

// NumMetrics reports how many metrics the table holds.
func (t *Table) NumMetrics() int { return len(t.metrics) }

// Clone returns a fully independent deep copy of the table.
// Mutating the clone never affects the original and vice versa.
func (t *Table) Clone() *Table {
	cp := NewTable()
	for m := range t.metrics {
		cp.metrics[m] = struct{}{}
	}
	for e, row := range t.cells {
		dst := make(map[string]Cell, len(row))
		for m, c := range row {
			dst[m] = c // Cell is a value type; assignment copies
		}
		cp.cells[e] = dst
	}

	return cp
}
