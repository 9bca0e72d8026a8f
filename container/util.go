package container

import "math"

func float64bits(v float64) uint64 {
	return math.Float64bits(v)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
