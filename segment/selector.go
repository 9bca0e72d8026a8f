package segment

import "github.com/mewkiz/lsg2/predictor"

// autoPriority is the fixed tie-break order for C5: prefer linear, then
// mean, then rw, when post_mse is numerically equal.
var autoPriority = [...]predictor.Kind{predictor.Linear, predictor.Mean, predictor.RW}

// SelectAuto implements C5: fit all three predictors to x and return the
// kind and fit result with the lowest post-decode MSE, breaking ties by
// autoPriority.
func SelectAuto(x []float64, qc QuantConfig) (predictor.Kind, FitResult) {
	results := map[predictor.Kind]FitResult{
		predictor.Mean:   Fit(x, predictor.Mean, qc),
		predictor.Linear: Fit(x, predictor.Linear, qc),
		predictor.RW:     Fit(x, predictor.RW, qc),
	}

	best := autoPriority[0]
	for _, k := range autoPriority[1:] {
		if results[k].PostMSE < results[best].PostMSE {
			best = k
		}
	}
	return best, results[best]
}
