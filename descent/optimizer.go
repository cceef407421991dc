package descent

import (
	"math"

	"github.com/katalvlaran/scorefill/autodiff"
	"github.com/katalvlaran/scorefill/multivariate"
	"github.com/katalvlaran/scorefill/scoretable"
)

// Provenance is stamped on every cell filled by the refined models.
const Provenance = "multivariate regression + gradient descent"

// Minimize runs gradient descent over the given trainable leaves.
//
// build must construct a fresh loss graph from the current leaf values —
// forward values are eager, so the graph is rebuilt every evaluation
// while the leaf nodes themselves persist across rebuilds.
//
// Blueprint:
//
//	Stage 1 (Gradient): rebuild the graph, run one reverse-mode pass,
//	        snapshot leaf values and gradients, take the L2 norm.
//	Stage 2 (Line search): apply step/‖g‖₂ against the gradient; a
//	        candidate loss that is NaN or not strictly below the best
//	        restores the snapshot and halves the step, up to MaxHalvings.
//	Stage 3 (Schedule): the starting step decays linearly from
//	        InitialStep to FinalStep across the iteration budget; an
//	        exhausted line search terminates early at the last valid
//	        state.
//
// The returned loss is the best accepted value; accepted losses form a
// strictly decreasing sequence, so the result never exceeds the initial
// loss and NaN never survives into the leaves.
func Minimize(leaves []*autodiff.Node, build func() *autodiff.Node, opts Options) (float64, error) {
	if err := opts.validate(); err != nil {
		return 0, err
	}

	best := build().Value()
	if len(leaves) == 0 || math.IsNaN(best) || math.IsInf(best, 0) {
		return best, nil
	}

	grads := make([]float64, len(leaves))
	snapshot := make([]float64, len(leaves))
	for iter := 0; iter < opts.MaxIterations; iter++ {
		// Stage 1: gradient at the current point.
		loss := build()
		loss.Gradients()
		var norm float64
		for i, lf := range leaves {
			grads[i] = lf.Grad()
			snapshot[i] = lf.Value()
			norm += grads[i] * grads[i]
		}
		norm = math.Sqrt(norm)
		if norm == 0 || math.IsNaN(norm) || math.IsInf(norm, 0) {
			break // flat (or broken) gradient: nothing left to descend
		}

		// Stage 2: backtracking line search.
		step := stepAt(iter, opts)
		improved := false
		for h := 0; h < opts.MaxHalvings; h++ {
			rate := step / norm
			for i, lf := range leaves {
				lf.SetValue(snapshot[i] - rate*grads[i])
			}
			if cand := build().Value(); !math.IsNaN(cand) && cand < best {
				best = cand
				improved = true

				break
			}
			step /= 2
		}

		// Stage 3: exhausted search ⇒ restore and terminate early.
		if !improved {
			for i, lf := range leaves {
				lf.SetValue(snapshot[i])
			}

			break
		}
	}

	return best, nil
}

// stepAt interpolates the starting step size linearly from InitialStep at
// the first iteration down to FinalStep at the last.
func stepAt(iter int, o Options) float64 {
	if o.MaxIterations <= 1 {
		return o.InitialStep
	}
	f := float64(iter) / float64(o.MaxIterations-1)

	return o.InitialStep + (o.FinalStep-o.InitialStep)*f
}

// Refine imputes every non-observed cell of t by multivariate regression
// whose parameters — and, with Options.TuneScores, the imputed scores
// themselves — are refined jointly by gradient descent on the squared
// residuals over the observed cells.
//
// The table is first filled by multivariate.Fill to obtain the seed and
// the OLS starting point; the loss graph then holds one Variable per
// bias and coefficient (and per missing cell when tuning scores), with
// observed scores as Consts. After Minimize converges, the refined
// models re-predict the missing cells. Observed cells pass through
// bit-identical; an empty table is returned unchanged (cloned).
func Refine(t *scoretable.Table, opts Options) (*scoretable.Table, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if t.NumEntities() == 0 || t.NumMetrics() == 0 {
		return t.Clone(), nil
	}

	seed := multivariate.Fill(t)
	models := multivariate.TrainAll(seed)
	entities := t.Entities()
	metrics := t.Metrics()

	// Trainable leaves in deterministic order: per sorted target its bias
	// then coefficients (feature order), then tuned cells row-major.
	var leaves []*autodiff.Node
	biasVar := make(map[string]*autodiff.Node, len(metrics))
	coefVar := make(map[string]map[string]*autodiff.Node, len(metrics))
	for _, k := range metrics {
		m := models[k]
		biasVar[k] = autodiff.Variable(m.Bias)
		leaves = append(leaves, biasVar[k])
		coefVar[k] = make(map[string]*autodiff.Node, len(m.Features))
		for _, f := range m.Features {
			coefVar[k][f] = autodiff.Variable(m.Coefficients[f])
			leaves = append(leaves, coefVar[k][f])
		}
	}
	cellNode := make(map[string]map[string]*autodiff.Node, len(entities))
	for _, e := range entities {
		cellNode[e] = make(map[string]*autodiff.Node, len(metrics))
		for _, j := range metrics {
			sc, ok := seed.At(e, j)
			if !ok || !sc.Present {
				continue
			}
			if c, okO := t.At(e, j); okO && c.Observed {
				cellNode[e][j] = autodiff.Const(c.Score)
			} else if opts.TuneScores {
				cellNode[e][j] = autodiff.Variable(sc.Score)
				leaves = append(leaves, cellNode[e][j])
			} else {
				cellNode[e][j] = autodiff.Const(sc.Score)
			}
		}
	}

	build := func() *autodiff.Node {
		loss := autodiff.Const(0)
		for _, e := range entities {
			for _, k := range metrics {
				c, ok := t.At(e, k)
				if !ok || !c.Observed {
					continue
				}
				pred := biasVar[k]
				usable := true
				for _, f := range models[k].Features {
					x, okX := cellNode[e][f]
					if !okX {
						usable = false

						break
					}
					pred = autodiff.Add(pred, autodiff.Mul(coefVar[k][f], x))
				}
				if !usable {
					continue
				}
				loss = autodiff.Add(loss, autodiff.Square(autodiff.Sub(autodiff.Const(c.Score), pred)))
			}
		}

		return loss
	}

	if _, err := Minimize(leaves, build, opts); err != nil {
		return nil, err
	}

	// Read the refined parameters back into the models; the OLS residual
	// variance and covariance carry over as the uncertainty estimate.
	for _, k := range metrics {
		m := models[k]
		m.Bias = biasVar[k].Value()
		for _, f := range m.Features {
			m.Coefficients[f] = coefVar[k][f].Value()
		}
		models[k] = m
	}

	out := t.Clone()
	for _, e := range entities {
		for _, k := range metrics {
			if c, ok := t.At(e, k); ok && c.Observed {
				continue
			}
			m := models[k]
			x := make([]float64, len(m.Features))
			usable := true
			for i, f := range m.Features {
				node, okX := cellNode[e][f]
				if !okX {
					usable = false

					break
				}
				x[i] = node.Value()
			}
			if !usable {
				// Degenerate row: keep the seed estimate untouched.
				if sc, okS := seed.At(e, k); okS {
					out.Set(e, k, sc)
				}

				continue
			}
			score := m.Predict(x)
			if opts.TuneScores {
				if node, okN := cellNode[e][k]; okN && node.Kind() == autodiff.KindVariable {
					score = node.Value()
				}
			}
			out.Set(e, k, scoretable.Cell{
				Score:      score,
				StdDev:     math.Sqrt(m.PredictVariance(x)),
				Provenance: Provenance,
				Present:    true,
			})
		}
	}

	return out, nil
}
