package multivariate

import (
	"errors"
	"math"

	"github.com/katalvlaran/scorefill/bivariate"
	"github.com/katalvlaran/scorefill/matrix"
	"github.com/katalvlaran/scorefill/scoretable"
)

// Provenance is stamped on every cell filled by the multivariate models.
const Provenance = "multivariate regression"

// Train fits the OLS model for one target metric over every entity of t.
// t is expected to be fully pre-filled (seed it with the bivariate
// combiner); entities still missing a required cell are skipped rather
// than invented.
//
// Blueprint:
//
//	Stage 1 (Design): X = features + bias column of ones, y = target.
//	Stage 2 (Normal equations): solve (XᵀX)β = Xᵀy via matrix.Solve.
//	        ErrSingular ⇒ mean-only fallback (bias = mean(y), zero
//	        slopes, nil covariance).
//	Stage 3 (Uncertainty): residualVariance = Σr²/max(n−p−1, 1);
//	        Covariance = residualVariance·(XᵀX)⁻¹ via matrix.Inverse,
//	        dropped to nil if the inversion is itself singular.
func Train(t *scoretable.Table, target string) Model {
	features := make([]string, 0, t.NumMetrics()-1)
	for _, m := range t.Metrics() {
		if m != target {
			features = append(features, m)
		}
	}
	p := len(features)

	// Stage 1: design matrix rows over entities with a complete row.
	var rows [][]float64
	var y []float64
	for _, e := range t.Entities() {
		ct, ok := t.At(e, target)
		if !ok || !ct.Present {
			continue
		}
		row := make([]float64, p+1)
		complete := true
		for i, f := range features {
			cf, okF := t.At(e, f)
			if !okF || !cf.Present {
				complete = false

				break
			}
			row[i] = cf.Score
		}
		if !complete {
			continue
		}
		row[p] = 1 // bias column
		rows = append(rows, row)
		y = append(y, ct.Score)
	}
	n := len(y)

	fallback := func() Model {
		m := Model{
			Target:       target,
			Features:     features,
			Bias:         scoretable.Mean(y),
			Coefficients: make(map[string]float64, p),
		}
		for _, f := range features {
			m.Coefficients[f] = 0
		}
		m.ResidualVariance = residualVariance(y, nil, m, p)

		return m
	}
	if n == 0 {
		return fallback()
	}

	x, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return fallback()
	}

	// Stage 2: normal equations.
	xt, err := matrix.Transpose(x)
	if err != nil {
		return fallback()
	}
	xtx, err := matrix.Mul(xt, x)
	if err != nil {
		return fallback()
	}
	xty, err := matrix.MatVec(xt, y)
	if err != nil {
		return fallback()
	}
	beta, err := matrix.Solve(xtx, xty)
	if errors.Is(err, matrix.ErrSingular) {
		// Collinear metrics are an expected condition: degrade, don't fail.
		return fallback()
	}
	if err != nil {
		return fallback()
	}

	model := Model{
		Target:       target,
		Features:     features,
		Bias:         beta[p],
		Coefficients: make(map[string]float64, p),
	}
	for i, f := range features {
		model.Coefficients[f] = beta[i]
	}

	// Stage 3: residual variance and coefficient covariance.
	model.ResidualVariance = residualVariance(y, rows, model, p)
	if inv, ierr := matrix.Inverse(xtx); ierr == nil {
		if cov, serr := matrix.Scale(inv, model.ResidualVariance); serr == nil {
			model.Covariance = cov
		}
	}

	return model
}

// residualVariance computes Σr²/max(n−p−1, 1) for the fitted model.
// rows == nil means the mean-only fallback: residuals against the bias.
func residualVariance(y []float64, rows [][]float64, m Model, p int) float64 {
	var rss float64
	for i, yi := range y {
		pred := m.Bias
		if rows != nil {
			for k, f := range m.Features {
				pred += m.Coefficients[f] * rows[i][k]
			}
		}
		r := yi - pred
		rss += r * r
	}
	dof := len(y) - p - 1
	if dof < 1 {
		dof = 1
	}

	return rss / float64(dof)
}

// TrainAll fits one model per metric of t, keyed by target name.
func TrainAll(t *scoretable.Table) map[string]Model {
	models := make(map[string]Model, t.NumMetrics())
	for _, m := range t.Metrics() {
		models[m] = Train(t, m)
	}

	return models
}

// Fill imputes every non-observed cell of t with the multivariate models.
//
// The table is first seeded by the bivariate combiner so the design
// matrix spans all entities; models are trained on the seeded table and
// only originally-missing cells are overwritten with the model's point
// estimate and √(prediction variance). Observed cells pass through
// bit-identical. An empty table is returned unchanged (cloned).
func Fill(t *scoretable.Table) *scoretable.Table {
	if t.NumEntities() == 0 || t.NumMetrics() == 0 {
		return t.Clone()
	}

	seed := bivariate.Fill(t, 0)
	models := TrainAll(seed)
	out := t.Clone()

	for _, e := range t.Entities() {
		for _, k := range t.Metrics() {
			if c, ok := t.At(e, k); ok && c.Observed {
				continue
			}
			model := models[k]
			x := make([]float64, len(model.Features))
			usable := true
			for i, f := range model.Features {
				cf, ok := seed.At(e, f)
				if !ok || !cf.Present {
					usable = false

					break
				}
				x[i] = cf.Score
			}
			if !usable {
				// Degenerate row: keep the combiner's seed estimate.
				sc, _ := seed.At(e, k)
				out.Set(e, k, sc)

				continue
			}
			out.Set(e, k, scoretable.Cell{
				Score:      model.Predict(x),
				StdDev:     math.Sqrt(model.PredictVariance(x)),
				Provenance: Provenance,
				Present:    true,
			})
		}
	}

	return out
}
