package multivariate

import (
	"github.com/katalvlaran/scorefill/matrix"
)

// Model is one fitted OLS regression for a single target metric.
//
// Features is the ordered list the coefficient layout follows; every
// feature vector passed to Predict/PredictVariance must use this order.
// Covariance is nil when the normal equations were singular — the model
// is then the mean-only fallback and its prediction variance degrades to
// the residual variance alone.
type Model struct {
	Target           string
	Features         []string // ordered; excludes the target and the bias
	Bias             float64
	Coefficients     map[string]float64 // feature → β
	ResidualVariance float64
	Covariance       *matrix.Dense // (p+1)×(p+1) incl. bias; nil if singular
}

// Predict evaluates the model at the given feature vector, ordered as
// Model.Features.
func (m Model) Predict(x []float64) float64 {
	y := m.Bias
	for i, f := range m.Features {
		y += m.Coefficients[f] * x[i]
	}

	return y
}

// PredictVariance returns the total prediction variance at x:
// the irreducible residual variance plus the coefficient-estimation
// term xᵀ·Covariance·x (bias appended to x), clamped to ≥ 0.
// A nil covariance (singular fit) yields the residual variance alone.
func (m Model) PredictVariance(x []float64) float64 {
	v := m.ResidualVariance
	if m.Covariance != nil {
		xb := make([]float64, len(x)+1)
		copy(xb, x)
		xb[len(x)] = 1 // bias term

		cx, err := matrix.MatVec(m.Covariance, xb)
		if err == nil {
			if q, derr := matrix.Dot(xb, cx); derr == nil {
				v += q
			}
		}
	}
	if v < 0 {
		v = 0
	}

	return v
}
