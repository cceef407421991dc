package bivariate

import (
	"math"

	"github.com/katalvlaran/scorefill/scoretable"
)

// Fit computes the closed-form bivariate regression of ys on xs.
// Blueprint:
//
//	Stage 1 (Degenerate): no pairs ⇒ the neutral zero estimator, which
//	        contributes nothing downstream (infinite prediction variance).
//	Stage 2 (Moments): predictor/target means, Σ(x−x̄)², Σ(x−x̄)(y−ȳ).
//	Stage 3 (Line): a = sxy/sxx (0 when sxx == 0), b = ȳ − a·x̄.
//	        Constant predictors therefore give slope exactly 0 and an
//	        intercept equal to the target mean.
//	Stage 4 (Uncertainty): MSE over the same pairs with max(n−2, 1)
//	        degrees of freedom — floored so n ≤ 2 never divides by zero.
//
// xs and ys must be parallel slices; Fit uses the shorter length if they
// disagree (callers in this package always pass equal lengths).
func Fit(xs, ys []float64) Estimator {
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}
	// Stage 1: no data for the pair.
	if n == 0 {
		return Estimator{}
	}

	// Stage 2: first and second moments.
	mx := scoretable.Mean(xs[:n])
	my := scoretable.Mean(ys[:n])
	var sxx, sxy float64
	for i := 0; i < n; i++ {
		dx := xs[i] - mx
		sxx += dx * dx
		sxy += dx * (ys[i] - my)
	}

	// Stage 3: the regression line.
	var slope float64
	if sxx != 0 {
		slope = sxy / sxx
	}
	intercept := my - slope*mx

	// Stage 4: residual mean square, degrees of freedom floored at 1.
	var rss float64
	for i := 0; i < n; i++ {
		r := ys[i] - (slope*xs[i] + intercept)
		rss += r * r
	}
	dof := n - 2
	if dof < 1 {
		dof = 1
	}

	return Estimator{
		Slope:          slope,
		Intercept:      intercept,
		MSE:            rss / float64(dof),
		N:              n,
		PredictorMean:  mx,
		PredictorSumSq: sxx,
	}
}

// FitAll fits one Estimator per ordered metric pair over the entities
// where both cells are present in t. On the first imputation pass the
// present cells are exactly the known ones, so imputed values never bias
// the round that produces them; refinement passes deliberately refit on
// the previously filled table.
func FitAll(t *scoretable.Table) map[Pair]Estimator {
	metrics := t.Metrics()
	entities := t.Entities()
	ests := make(map[Pair]Estimator, len(metrics)*(len(metrics)-1))

	for _, j := range metrics {
		for _, k := range metrics {
			if j == k {
				continue
			}
			var xs, ys []float64
			for _, e := range entities {
				cj, okJ := t.At(e, j)
				ck, okK := t.At(e, k)
				if okJ && okK && cj.Present && ck.Present {
					xs = append(xs, cj.Score)
					ys = append(ys, ck.Score)
				}
			}
			ests[Pair{Predictor: j, Target: k}] = Fit(xs, ys)
		}
	}

	return ests
}

// Predict evaluates the fitted line at x.
func (e Estimator) Predict(x float64) float64 {
	return e.Slope*x + e.Intercept
}

// PredictVariance returns the leverage-adjusted variance of a prediction
// at predictor value x:
//
//	mse · (1 + 1/n + (x − x̄)² / Σ(x − x̄)²)
//
// The leverage term inflates uncertainty near the edge of the observed
// predictor range. Degenerate cases:
//   - N == 0: +Inf — the neutral estimator carries no information and
//     must receive zero weight in any inverse-variance fusion.
//   - Σ(x−x̄)² == 0 with x off the constant: +Inf — a constant predictor
//     says nothing about values it never took.
//   - Σ(x−x̄)² == 0 with x on the constant: leverage term 0.
func (e Estimator) PredictVariance(x float64) float64 {
	if e.N == 0 {
		return math.Inf(1)
	}
	d := x - e.PredictorMean
	var leverage float64
	switch {
	case e.PredictorSumSq > 0:
		leverage = d * d / e.PredictorSumSq
	case d != 0:
		return math.Inf(1)
	}

	return e.MSE * (1 + 1/float64(e.N) + leverage)
}

// PredictorValue resolves the predictor value of metric j for an entity.
// When the cell is present its score is used directly; when it is absent
// the value is substituted with the mean of the entity's other available
// cross-predictions of j — never the unconditional metric mean, which
// would ignore everything known about the entity. The boolean reports
// whether any value (direct or substituted) could be produced.
func PredictorValue(t *scoretable.Table, ests map[Pair]Estimator, entity, j string) (float64, bool) {
	if c, ok := t.At(entity, j); ok && c.Present {
		return c.Score, true
	}

	var preds []float64
	for _, l := range t.Metrics() {
		if l == j {
			continue
		}
		cl, ok := t.At(entity, l)
		if !ok || !cl.Present {
			continue
		}
		est, ok := ests[Pair{Predictor: l, Target: j}]
		if !ok || est.N == 0 {
			continue
		}
		preds = append(preds, est.Predict(cl.Score))
	}
	if len(preds) == 0 {
		return 0, false
	}

	return scoretable.Mean(preds), true
}
