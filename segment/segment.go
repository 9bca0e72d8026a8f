// Package segment implements the per-segment model fitter (C3), the
// segmenter (C4, fixed and adaptive), the auto predictor selector (C5),
// and the Segment type they all operate on.
package segment

import (
	"fmt"

	"github.com/mewkiz/lsg2/predictor"
)

// Pattern is a segment's qualitative shape tag.
type Pattern uint8

// The closed set of pattern tags.
const (
	Flat Pattern = iota
	Trend
	Oscillation
	Noisy
)

// String returns the pattern's name.
func (p Pattern) String() string {
	switch p {
	case Flat:
		return "flat"
	case Trend:
		return "trend"
	case Oscillation:
		return "oscillation"
	case Noisy:
		return "noisy"
	default:
		return fmt.Sprintf("Pattern(%d)", uint8(p))
	}
}

// PatternFromByte maps a container patt byte to a Pattern.
func PatternFromByte(b uint8) (Pattern, bool) {
	switch Pattern(b) {
	case Flat, Trend, Oscillation, Noisy:
		return Pattern(b), true
	default:
		return 0, false
	}
}

// Salience is a segment's energetic prominence, 0 (low) through 2 (high).
type Salience uint8

// The closed set of salience levels.
const (
	SalienceLow Salience = iota
	SalienceMid
	SalienceHigh
)

// SalienceFromByte maps a container sal byte to a Salience.
func SalienceFromByte(b uint8) (Salience, bool) {
	if b > uint8(SalienceHigh) {
		return 0, false
	}
	return Salience(b), true
}

// Segment is a half-open index range over a TimeSeries' values, together
// with its fitted predictor, quantization step, quantized residuals, and
// classification tags. The segmenter fixes the range, predictor, Q and
// residuals; Encode then fills in Patt, Sal and Energy from the
// classifier, and on decode the container reader fills in Residuals.
type Segment struct {
	Start, End int
	Pred       predictor.Kind
	Params     predictor.Params
	Q          float64
	Residuals  []int32
	Patt       Pattern
	Sal        Salience
	Energy     float64
	PostMSE    float64
}

// Len returns the number of samples the segment covers.
func (s *Segment) Len() int { return s.End - s.Start }
