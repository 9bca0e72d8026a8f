package predictor

// linearModel predicts a straight line fit by ordinary least squares over
// the window's local index i:
//
//	x̂_i = α + β·i
type linearModel struct{}

func (linearModel) fit(x []float64) Params {
	n := len(x)
	if n == 0 {
		return Params{}
	}
	ibar := float64(n-1) / 2
	xbar := mean(x)
	if n == 1 {
		return Params{Mean: xbar, Slope: 0, Intercept: xbar, Seed: xbar}
	}

	var num, den float64
	for i, v := range x {
		di := float64(i) - ibar
		num += di * (v - xbar)
		den += di * di
	}
	var beta float64
	if den != 0 {
		beta = num / den
	}
	alpha := xbar - beta*ibar

	return Params{
		Mean:      xbar,
		Slope:     beta,
		Intercept: alpha,
		Seed:      alpha,
	}
}

func (linearModel) reconstruct(p Params, n int) []float64 {
	xhat := make([]float64, n)
	for i := range xhat {
		xhat[i] = p.Intercept + p.Slope*float64(i)
	}
	return xhat
}
