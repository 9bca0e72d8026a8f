package segment

import (
	"math"
	"testing"

	"github.com/mewkiz/lsg2/predictor"
)

func TestFitConstantSeries(t *testing.T) {
	x := make([]float64, 20)
	for i := range x {
		x[i] = 7.0
	}
	qc := QuantConfig{QMin: 1e-6, CQ: 0.25}
	fit := Fit(x, predictor.Mean, qc)
	if fit.Q != qc.QMin {
		t.Fatalf("Q = %v, want q_min %v", fit.Q, qc.QMin)
	}
	for i, r := range fit.Residuals {
		if r != 0 {
			t.Fatalf("residual[%d] = %d, want 0", i, r)
		}
	}
	if fit.PostMSE != 0 {
		t.Fatalf("post_mse = %v, want 0", fit.PostMSE)
	}
}

func TestFitBoundedError(t *testing.T) {
	x := []float64{1, 2, 1.5, 3, 2.2, 5, 4.8, 6.1, 7, 6.9}
	qc := QuantConfig{QMin: 1e-6, CQ: 0.25}
	fit := Fit(x, predictor.Linear, qc)
	xhat := predictor.Reconstruct(predictor.Linear, fit.Params, len(x))
	var maxAbs, sqSum float64
	for i, xi := range x {
		xtilde := xhat[i] + float64(fit.Residuals[i])*fit.Q
		d := xi - xtilde
		if math.Abs(d) > maxAbs {
			maxAbs = math.Abs(d)
		}
		sqSum += d * d
	}
	if maxAbs > fit.Q+1e-9 {
		t.Fatalf("max abs error %v exceeds Q %v", maxAbs, fit.Q)
	}
	meanSq := sqSum / float64(len(x))
	if meanSq > fit.Q*fit.Q/3+1e-9 {
		t.Fatalf("mean squared error %v exceeds Q^2/3 = %v", meanSq, fit.Q*fit.Q/3)
	}
}
