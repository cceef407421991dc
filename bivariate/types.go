package bivariate

// Pair names one ordered (predictor → target) metric pair.
type Pair struct {
	Predictor string
	Target    string
}

// Estimator is one fitted bivariate regression (predictor → target).
//
// The fit is directional: swapping predictor and target yields an
// independent Estimator, not the algebraic inverse of this one.
type Estimator struct {
	Slope     float64 // a in ŷ = a·x + b
	Intercept float64 // b in ŷ = a·x + b
	MSE       float64 // mean squared error at max(n−2, 1) degrees of freedom
	N         int     // number of overlapping entities the fit saw
	// PredictorMean and PredictorSumSq describe the predictor sample the
	// line was fitted on; both feed the leverage term of PredictVariance.
	PredictorMean  float64
	PredictorSumSq float64 // Σ(x − PredictorMean)²
}

// Prediction is one fused estimate for a missing cell.
type Prediction struct {
	Score    float64
	Variance float64
}
