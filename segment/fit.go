package segment

import (
	"math"

	"github.com/mewkiz/lsg2/predictor"
)

// QuantConfig carries the two knobs that govern per-segment quantization
// step selection (spec.md §4.3).
type QuantConfig struct {
	// QMin floors the quantization step; must be > 0.
	QMin float64
	// CQ scales the residual standard deviation to produce Q.
	CQ float64
}

// FitResult is the outcome of fitting one predictor to one window: the
// model parameters, the chosen quantization step, the quantized residual
// quotients, and the post-decode MSE used by segment growth and predictor
// selection.
type FitResult struct {
	Params    predictor.Params
	Q         float64
	Residuals []int32
	PostMSE   float64
}

// Fit implements C3: fit the given predictor to x, derive a quantization
// step from the residual spread, quantize, and report the post-decode
// mean squared error.
func Fit(x []float64, kind predictor.Kind, qc QuantConfig) FitResult {
	n := len(x)
	params := predictor.Fit(kind, x)
	xhat := predictor.Reconstruct(kind, params, n)

	resid := make([]float64, n)
	for i := range x {
		resid[i] = x[i] - xhat[i]
	}

	sigma := stddev(resid)
	q := qc.CQ * sigma
	if q < qc.QMin {
		q = qc.QMin
	}

	quant := make([]int32, n)
	var sqErr float64
	for i := range x {
		qi := roundHalfEven(resid[i] / q)
		quant[i] = int32(qi)
		rtilde := qi * q
		xtilde := xhat[i] + rtilde
		d := x[i] - xtilde
		sqErr += d * d
	}
	postMSE := 0.0
	if n > 0 {
		postMSE = sqErr / float64(n)
	}

	return FitResult{
		Params:    params,
		Q:         q,
		Residuals: quant,
		PostMSE:   postMSE,
	}
}

// stddev returns the population standard deviation of x (single pass over
// a running mean/variance would also satisfy spec.md §4.3; this two-pass
// form is simpler and still O(n)).
func stddev(x []float64) float64 {
	n := len(x)
	if n == 0 {
		return 0
	}
	var sum float64
	for _, v := range x {
		sum += v
	}
	m := sum / float64(n)
	var sq float64
	for _, v := range x {
		d := v - m
		sq += d * d
	}
	return math.Sqrt(sq / float64(n))
}

// roundHalfEven rounds x to the nearest integer, breaking exact ties to
// the nearest even integer (banker's rounding), matching math.RoundToEven.
func roundHalfEven(x float64) float64 {
	return math.RoundToEven(x)
}
