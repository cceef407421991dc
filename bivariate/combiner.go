package bivariate

import (
	"math"

	"github.com/katalvlaran/scorefill/scoretable"
)

// Provenance is stamped on every cell this combiner fills.
const Provenance = "weighted bivariate regression"

// minVariance floors each prediction variance before weighting so a
// perfect fit (mse == 0) yields a dominant but finite weight instead of
// a division by zero.
const minVariance = 1e-12

// Fill imputes every non-observed cell of t by inverse-variance-weighted
// fusion of all pairwise predictions, then runs the requested number of
// fixed-point refinement passes.
//
// Pass structure:
//   - pass 0 derives estimators and metric means from the known cells
//     only, so no imputation can bias the round that produces it;
//   - pass t+1 re-derives everything from scratch on the table filled by
//     pass t, previously imputed cells included. The re-derivation is the
//     point — each pass's estimators genuinely depend on the previous
//     pass's values, converging toward a fixed point.
//
// passes = 0 returns the first-pass fill. Originally observed cells are
// returned bit-identical. An empty table is returned unchanged (cloned).
func Fill(t *scoretable.Table, passes int) *scoretable.Table {
	if t.NumEntities() == 0 || t.NumMetrics() == 0 {
		return t.Clone()
	}

	basis := t.Clone()
	for round := 0; round <= passes; round++ {
		basis = fillOnce(t, basis)
	}

	return basis
}

// fillOnce produces one complete fill of orig using estimators and means
// derived from basis. The output always starts from a clone of orig, so
// every non-observed cell is recomputed each round rather than drifting
// incrementally.
func fillOnce(orig, basis *scoretable.Table) *scoretable.Table {
	ests := FitAll(basis)
	means := basis.MetricMeans()
	out := orig.Clone()

	for _, e := range orig.Entities() {
		for _, k := range orig.Metrics() {
			if c, ok := orig.At(e, k); ok && c.Observed {
				continue // known cells pass through untouched
			}
			p := fuseAt(basis, ests, means, e, k)
			out.Set(e, k, scoretable.Cell{
				Score:      p.Score,
				StdDev:     math.Sqrt(p.Variance),
				Provenance: Provenance,
				Present:    true,
			})
		}
	}

	return out
}

// fuseAt fuses one prediction per metric present for the entity into a
// single estimate of (entity, target).
//
// Weighting: wⱼ = 1/vⱼ;  ŝ = Σ wⱼŝⱼ / Σ wⱼ.
// Variance treats the covariance between any two predictions of the same
// target as exactly 1 (they share the target's noise):
//
//	Var = (Σ 1/vⱼ + Σ_{j≠l} (1/vⱼ)(1/vₗ)) / (Σ 1/vⱼ)²
//
// where the cross sum equals (Σw)² − Σw². This is a preserved simplifying
// approximation, not a full joint-covariance computation.
//
// With no usable predictor the unconditional metric mean is returned with
// variance mean² — crude, but a non-zero uncertainty floor.
func fuseAt(basis *scoretable.Table, ests map[Pair]Estimator, means map[string]float64, entity, target string) Prediction {
	var scores, variances []float64
	for _, j := range basis.Metrics() {
		if j == target {
			continue
		}
		cj, ok := basis.At(entity, j)
		if !ok || !cj.Present {
			continue
		}
		est, ok := ests[Pair{Predictor: j, Target: target}]
		if !ok || est.N == 0 {
			continue // no overlap: the neutral estimator contributes nothing
		}
		v := est.PredictVariance(cj.Score)
		if math.IsInf(v, 1) || math.IsNaN(v) {
			continue
		}
		scores = append(scores, est.Predict(cj.Score))
		variances = append(variances, math.Max(v, minVariance))
	}

	if len(scores) == 0 {
		m := means[target]

		return Prediction{Score: m, Variance: m * m}
	}

	var sumW, sumW2, sumWS float64
	for i, v := range variances {
		w := 1 / v
		sumW += w
		sumW2 += w * w
		sumWS += w * scores[i]
	}
	cross := sumW*sumW - sumW2 // Σ_{j≠l} wⱼ·wₗ with cov fixed at 1

	return Prediction{
		Score:    sumWS / sumW,
		Variance: (sumW + cross) / (sumW * sumW),
	}
}
