package segment

import "testing"

func assertCoverage(t *testing.T, segs []Segment, n int) {
	t.Helper()
	if len(segs) == 0 {
		t.Fatalf("no segments produced for n=%d", n)
	}
	if segs[0].Start != 0 {
		t.Fatalf("first segment starts at %d, want 0", segs[0].Start)
	}
	for i, s := range segs {
		if s.End <= s.Start {
			t.Fatalf("segment %d has end <= start: %+v", i, s)
		}
		if i > 0 && s.Start != segs[i-1].End {
			t.Fatalf("segment %d starts at %d, want %d", i, s.Start, segs[i-1].End)
		}
	}
	if segs[len(segs)-1].End != n {
		t.Fatalf("last segment ends at %d, want %d", segs[len(segs)-1].End, n)
	}
}

func TestRunEmptyInput(t *testing.T) {
	_, err := Run(nil, Config{Mode: Adaptive, MinLen: 4, MaxLen: 16, MSEThreshold: 0.01, Predictor: ChooseAuto})
	if err != ErrEmptyInput {
		t.Fatalf("err = %v, want ErrEmptyInput", err)
	}
}

func TestRunSingleSample(t *testing.T) {
	segs, err := Run([]float64{42}, Config{Mode: Adaptive, MinLen: 4, MaxLen: 16, MSEThreshold: 0.01, Predictor: ChooseAuto, Quant: QuantConfig{QMin: 1e-6, CQ: 0.25}})
	if err != nil {
		t.Fatal(err)
	}
	if len(segs) != 1 || segs[0].Start != 0 || segs[0].End != 1 {
		t.Fatalf("got %+v", segs)
	}
	if segs[0].Q != 1e-6 {
		t.Fatalf("Q = %v, want q_min", segs[0].Q)
	}
}

func TestRunFixedCoverage(t *testing.T) {
	x := make([]float64, 97)
	for i := range x {
		x[i] = float64(i % 5)
	}
	cfg := Config{Mode: Fixed, MinLen: 10, MaxLen: 10, Predictor: ChooseMean, Quant: QuantConfig{QMin: 1e-6, CQ: 0.25}}
	segs, err := Run(x, cfg)
	if err != nil {
		t.Fatal(err)
	}
	assertCoverage(t, segs, len(x))
}

func TestRunAdaptiveCoverageAndThreshold(t *testing.T) {
	x := make([]float64, 200)
	for i := range x {
		x[i] = 0.1 * float64(i)
	}
	cfg := Config{
		Mode:         Adaptive,
		MinLen:       4,
		MaxLen:       40,
		MSEThreshold: 1e-4,
		Predictor:    ChooseAuto,
		Quant:        QuantConfig{QMin: 1e-6, CQ: 0.25},
	}
	segs, err := Run(x, cfg)
	if err != nil {
		t.Fatal(err)
	}
	assertCoverage(t, segs, len(x))
	for i, s := range segs {
		if s.PostMSE > cfg.MSEThreshold && s.Len() != cfg.MinLen {
			t.Fatalf("segment %d violates adaptive threshold: post_mse=%v len=%d", i, s.PostMSE, s.Len())
		}
	}
}

func TestRunAdaptiveTailShorterThanMin(t *testing.T) {
	x := make([]float64, 23)
	for i := range x {
		x[i] = float64(i)
	}
	cfg := Config{
		Mode:         Adaptive,
		MinLen:       10,
		MaxLen:       10,
		MSEThreshold: 1e-9,
		Predictor:    ChooseMean,
		Quant:        QuantConfig{QMin: 1e-6, CQ: 0.25},
	}
	segs, err := Run(x, cfg)
	if err != nil {
		t.Fatal(err)
	}
	assertCoverage(t, segs, len(x))
	if segs[len(segs)-1].Len() >= cfg.MinLen {
		t.Fatalf("expected a short tail segment, got len %d", segs[len(segs)-1].Len())
	}
}
