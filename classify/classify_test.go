package classify

import (
	"testing"

	"github.com/mewkiz/lsg2/predictor"
	"github.com/mewkiz/lsg2/segment"
)

func defaultConfig() Config {
	return Config{
		EFlat:  0.01,
		SFlat:  0.01,
		STrend: 0.05,
		COsc:   0.4,
		ELow:   0.01,
		EHigh:  1.0,
	}
}

func TestClassifyFlat(t *testing.T) {
	x := make([]float64, 50)
	for i := range x {
		x[i] = 1.0
	}
	params := predictor.Fit(predictor.Mean, x)
	r := Classify(x, predictor.Mean, params, 1e-6, defaultConfig())
	if r.Patt != segment.Flat {
		t.Fatalf("patt = %v, want flat", r.Patt)
	}
	if r.Sal != segment.SalienceLow {
		t.Fatalf("sal = %v, want low", r.Sal)
	}
}

func TestClassifyTrend(t *testing.T) {
	x := make([]float64, 50)
	for i := range x {
		x[i] = float64(i) * 2
	}
	params := predictor.Fit(predictor.Linear, x)
	r := Classify(x, predictor.Linear, params, 1e-6, defaultConfig())
	if r.Patt != segment.Trend {
		t.Fatalf("patt = %v, want trend", r.Patt)
	}
}

func TestClassifyOscillation(t *testing.T) {
	x := make([]float64, 40)
	for i := range x {
		if i%2 == 0 {
			x[i] = 1
		} else {
			x[i] = -1
		}
	}
	params := predictor.Fit(predictor.Mean, x)
	r := Classify(x, predictor.Mean, params, 1e-6, defaultConfig())
	if r.Patt != segment.Oscillation {
		t.Fatalf("patt = %v, want oscillation", r.Patt)
	}
}

func TestClassifyHighSalience(t *testing.T) {
	x := make([]float64, 20)
	for i := range x {
		x[i] = float64(i * i)
	}
	params := predictor.Fit(predictor.Linear, x)
	r := Classify(x, predictor.Linear, params, 1e-6, defaultConfig())
	if r.Sal != segment.SalienceHigh {
		t.Fatalf("sal = %v, want high", r.Sal)
	}
}
