package lsg2

import (
	"github.com/mewkiz/lsg2/container"
)

// T0Value is the series origin timestamp: either a string or a number,
// opaque to the codec (spec.md §3, §9). It round-trips verbatim through
// the container's JSON context block without ever being parsed.
type T0Value = container.T0Value

// T0FromString wraps a string t0.
func T0FromString(s string) T0Value { return container.T0FromString(s) }

// T0FromNumber wraps a numeric t0.
func T0FromNumber(n float64) T0Value { return container.T0FromNumber(n) }

// TimeSeries is an ordered sequence of samples plus the metadata the
// container carries alongside them. A TimeSeries is read-only once
// built: Encode never mutates Values, and Decode returns buffers
// independent of the input container bytes.
type TimeSeries struct {
	Values []float64
	DT     float64
	T0     T0Value
	Unit   string
}
