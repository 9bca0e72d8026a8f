package predictor

// rwModel is the random-walk predictor: a one-step hold at the window's
// first sample. Per spec.md §4.2, x̂_0 = s and x̂_i = x̂_{i-1}, so the
// reconstruction is constant at s throughout the window; the model earns
// its keep on the residual side, where the actual sample-to-sample deltas
// are captured (and quantized) rather than deviation from a fitted trend.
type rwModel struct{}

func (rwModel) fit(x []float64) Params {
	if len(x) == 0 {
		return Params{}
	}
	seed := x[0]
	last := x[len(x)-1]
	denom := float64(len(x) - 1)
	var slope float64
	if denom > 0 {
		slope = (last - seed) / denom
	}
	return Params{
		Mean:  mean(x),
		Slope: slope,
		Seed:  seed,
	}
}

func (rwModel) reconstruct(p Params, n int) []float64 {
	xhat := make([]float64, n)
	for i := range xhat {
		xhat[i] = p.Seed
	}
	return xhat
}
