package predictor

import "testing"

func TestMeanFitReconstruct(t *testing.T) {
	x := []float64{1, 2, 3, 4}
	p := Fit(Mean, x)
	if p.Mean != 2.5 {
		t.Fatalf("mean = %v, want 2.5", p.Mean)
	}
	xhat := Reconstruct(Mean, p, len(x))
	for i, v := range xhat {
		if v != 2.5 {
			t.Fatalf("xhat[%d] = %v, want 2.5", i, v)
		}
	}
}

func TestLinearFitExact(t *testing.T) {
	// x_i = 1 + 2*i
	x := make([]float64, 10)
	for i := range x {
		x[i] = 1 + 2*float64(i)
	}
	p := Fit(Linear, x)
	if diff := p.Intercept - 1; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("intercept = %v, want ~1", p.Intercept)
	}
	if diff := p.Slope - 2; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("slope = %v, want ~2", p.Slope)
	}
	xhat := Reconstruct(Linear, p, len(x))
	for i, v := range xhat {
		if diff := v - x[i]; diff > 1e-6 || diff < -1e-6 {
			t.Fatalf("xhat[%d] = %v, want %v", i, v, x[i])
		}
	}
}

func TestLinearSingleSample(t *testing.T) {
	p := Fit(Linear, []float64{42})
	if p.Slope != 0 || p.Intercept != 42 {
		t.Fatalf("got %+v, want slope=0 intercept=42", p)
	}
}

func TestRWFitReconstruct(t *testing.T) {
	x := []float64{5, 6, 9, 1}
	p := Fit(RW, x)
	if p.Seed != 5 {
		t.Fatalf("seed = %v, want 5", p.Seed)
	}
	wantSlope := (1.0 - 5.0) / 3.0
	if diff := p.Slope - wantSlope; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("slope = %v, want %v", p.Slope, wantSlope)
	}
	xhat := Reconstruct(RW, p, len(x))
	for i, v := range xhat {
		if v != 5 {
			t.Fatalf("xhat[%d] = %v, want 5 (constant hold)", i, v)
		}
	}
}

func TestKindFromByte(t *testing.T) {
	golden := []struct {
		b  uint8
		ok bool
	}{
		{0, true}, {1, true}, {2, true}, {3, false}, {255, false},
	}
	for _, g := range golden {
		_, ok := KindFromByte(g.b)
		if ok != g.ok {
			t.Errorf("KindFromByte(%d) ok = %v, want %v", g.b, ok, g.ok)
		}
	}
}

func TestKindString(t *testing.T) {
	golden := map[Kind]string{Mean: "mean", Linear: "linear", RW: "rw"}
	for k, want := range golden {
		if got := k.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", k, got, want)
		}
	}
}
