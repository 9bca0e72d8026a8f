// Package predictor implements the three closed parametric models a
// segment can be fit with: mean, linear, and random-walk (rw). The set is
// closed over the container format (predictor_type is a single byte with
// three defined values) — adding a fourth model is a format-version bump,
// not a package extension.
package predictor

import "fmt"

// Kind identifies one of the three predictor models.
type Kind uint8

// The closed set of predictor models, in their on-disk encoding.
const (
	Mean Kind = iota
	Linear
	RW
)

// String returns the model's name.
func (k Kind) String() string {
	switch k {
	case Mean:
		return "mean"
	case Linear:
		return "linear"
	case RW:
		return "rw"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// KindFromByte maps a container predictor_type byte to a Kind, reporting
// ok=false for any value outside {0,1,2}.
func KindFromByte(b uint8) (Kind, bool) {
	switch Kind(b) {
	case Mean, Linear, RW:
		return Kind(b), true
	default:
		return 0, false
	}
}

// Params holds the reconstruction parameters for any of the three models.
// Not every field is meaningful for every Kind; see spec.md §4.2 and the
// per-model comments below for which fields each model populates.
type Params struct {
	Mean      float64
	Slope     float64
	Intercept float64
	Seed      float64
}

// model is implemented by each of the three predictor variants.
type model interface {
	fit(x []float64) Params
	reconstruct(p Params, n int) []float64
}

var models = [...]model{
	Mean:   meanModel{},
	Linear: linearModel{},
	RW:     rwModel{},
}

// Fit fits the given model to a window of samples.
func Fit(k Kind, x []float64) Params {
	return models[k].fit(x)
}

// Reconstruct produces n predicted samples from fitted params.
func Reconstruct(k Kind, p Params, n int) []float64 {
	return models[k].reconstruct(p, n)
}

// mean is the arithmetic mean of x. Returns 0 for an empty slice.
func mean(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	var sum float64
	for _, v := range x {
		sum += v
	}
	return sum / float64(len(x))
}
