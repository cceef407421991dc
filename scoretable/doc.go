// Package scoretable defines the canonical in-memory model shared by every
// scorefill algorithm: a sparse table of (entity × metric) score cells.
//
// 🚀 What is a score table?
//
//	Raw input arrives as a flat list of Observations — one reported score
//	for one (entity, metric) pair. The same pair may be reported several
//	times by independent sources or re-runs. Build reconciles duplicates
//	into a single Cell per pair:
//	  • Score      = arithmetic mean of all observations
//	  • StdDev     = Bessel-corrected sample standard deviation (n−1);
//	    exactly 0 for a single observation
//	  • Provenance = every contributing source, joined in input order
//
//	The metric-name set is global: a metric observed for any entity
//	occupies a (still absent) Cell slot for every other entity.
//
// ⚙️ Usage:
//
//	t := scoretable.Build(observations)
//	for _, e := range t.Entities() {       // deterministic, sorted
//	  for _, m := range t.Metrics() {
//	    c, ok := t.At(e, m)
//	    ...
//	  }
//	}
//
// Tables have value semantics at API boundaries: Clone produces a fully
// independent deep copy, and every scorefill algorithm clones before
// mutating, so callers are never surprised by aliasing.
//
// Complexity: O(entities × metrics) memory; all accessors are O(1) except
// the sorted Entities/Metrics listings, which are O(k log k).
package scoretable
