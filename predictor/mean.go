package predictor

// meanModel predicts a constant value, the arithmetic mean of the window.
//
//	x̂_i = μ
type meanModel struct{}

func (meanModel) fit(x []float64) Params {
	return Params{Mean: mean(x)}
}

func (meanModel) reconstruct(p Params, n int) []float64 {
	xhat := make([]float64, n)
	for i := range xhat {
		xhat[i] = p.Mean
	}
	return xhat
}
