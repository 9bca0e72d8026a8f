// Package classify implements the segment classifier (C6): pattern tag
// and salience level derived from segment statistics, using thresholds
// carried in an immutable Config rather than package-level constants
// (spec.md §9).
package classify

import (
	"math"

	"github.com/mewkiz/lsg2/predictor"
	"github.com/mewkiz/lsg2/segment"
)

// Config holds the six classifier thresholds. Values are part of the
// encoder configuration, not package state, so that reproducible encodes
// never depend on hidden globals; see spec.md §4.6 and §9.
type Config struct {
	EFlat  float64
	SFlat  float64
	STrend float64
	COsc   float64
	ELow   float64
	EHigh  float64
}

// Result is everything the classifier derives from a segment's samples.
type Result struct {
	Patt   segment.Pattern
	Sal    segment.Salience
	Energy float64
	// SlopeMag and ResidualScale are reported for tools/inspection but do
	// not feed back into the pattern/salience decision beyond what is
	// described in spec.md §4.6.
	SlopeMag      float64
	ResidualScale float64
}

// Classify implements C6 for one segment's samples x, given the predictor
// it was fit with (so a linear fit's slope can be reused instead of
// refitting) and its quantization step Q.
func Classify(x []float64, kind predictor.Kind, params predictor.Params, q float64, cfg Config) Result {
	n := len(x)
	m := mean(x)

	var energy float64
	for _, v := range x {
		d := v - m
		energy += d * d
	}

	slopeMag := math.Abs(params.Slope)
	if kind != predictor.Linear {
		slopeMag = math.Abs(predictor.Fit(predictor.Linear, x).Slope)
	}

	signChanges := countSignChanges(x)

	energyPerLen := 0.0
	if n > 0 {
		energyPerLen = energy / float64(n)
	}

	var patt segment.Pattern
	switch {
	case energyPerLen < cfg.EFlat && slopeMag < cfg.SFlat:
		patt = segment.Flat
	case slopeMag >= cfg.STrend:
		patt = segment.Trend
	case float64(signChanges) > cfg.COsc*float64(maxInt(n-1, 0)):
		patt = segment.Oscillation
	default:
		patt = segment.Noisy
	}

	var sal segment.Salience
	switch {
	case energyPerLen < cfg.ELow:
		sal = segment.SalienceLow
	case energyPerLen >= cfg.EHigh:
		sal = segment.SalienceHigh
	default:
		sal = segment.SalienceMid
	}

	return Result{
		Patt:          patt,
		Sal:           sal,
		Energy:        energy,
		SlopeMag:      slopeMag,
		ResidualScale: q,
	}
}

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

// countSignChanges returns the number of sign changes across the first
// differences of x. A difference of exactly zero does not count as either
// sign and does not itself register a change against the next nonzero
// difference's sign.
func countSignChanges(x []float64) int {
	if len(x) < 3 {
		return 0
	}
	var changes int
	prevSign := 0
	for i := 1; i < len(x); i++ {
		d := x[i] - x[i-1]
		var sign int
		switch {
		case d > 0:
			sign = 1
		case d < 0:
			sign = -1
		default:
			sign = 0
		}
		if sign == 0 {
			continue
		}
		if prevSign != 0 && sign != prevSign {
			changes++
		}
		prevSign = sign
	}
	return changes
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
