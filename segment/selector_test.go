package segment

import (
	"testing"

	"github.com/mewkiz/lsg2/predictor"
)

func TestSelectAutoPicksLinearForLinearData(t *testing.T) {
	x := make([]float64, 30)
	for i := range x {
		x[i] = 0.1 * float64(i)
	}
	qc := QuantConfig{QMin: 1e-6, CQ: 0.25}
	kind, fit := SelectAuto(x, qc)
	if kind != predictor.Linear {
		t.Fatalf("kind = %v, want linear", kind)
	}
	all := map[predictor.Kind]FitResult{
		predictor.Mean:   Fit(x, predictor.Mean, qc),
		predictor.Linear: Fit(x, predictor.Linear, qc),
		predictor.RW:     Fit(x, predictor.RW, qc),
	}
	for k, r := range all {
		if r.PostMSE < fit.PostMSE {
			t.Fatalf("kind %v has lower post_mse (%v) than selected %v (%v)", k, r.PostMSE, kind, fit.PostMSE)
		}
	}
}

func TestSelectAutoTieBreak(t *testing.T) {
	// A constant series: mean, linear (slope 0), and rw (hold) all achieve
	// zero post_mse, so the priority order linear > mean > rw must win.
	x := make([]float64, 10)
	for i := range x {
		x[i] = 3.0
	}
	qc := QuantConfig{QMin: 1e-6, CQ: 0.25}
	kind, _ := SelectAuto(x, qc)
	if kind != predictor.Linear {
		t.Fatalf("kind = %v, want linear (tie-break)", kind)
	}
}
