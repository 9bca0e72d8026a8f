package segment

import (
	"errors"

	"github.com/mewkiz/lsg2/predictor"
)

// ErrEmptyInput is returned by Run when the input series has zero samples.
// The top-level codec (C8) maps this to the closed InvalidInput error kind.
var ErrEmptyInput = errors.New("segment: empty input series")

// Mode selects the segmentation strategy.
type Mode uint8

// The two segmenter modes.
const (
	Fixed Mode = iota
	Adaptive
)

// PredictorChoice selects a concrete predictor, or Auto to run the
// selector (C5) per candidate window.
type PredictorChoice uint8

// The four predictor choices a caller can request.
const (
	ChooseMean PredictorChoice = iota
	ChooseLinear
	ChooseRW
	ChooseAuto
)

// Config carries every knob the segmenter (C4) and fitter (C3) need.
type Config struct {
	Mode         Mode
	MinLen       int
	MaxLen       int
	MSEThreshold float64
	Predictor    PredictorChoice
	Quant        QuantConfig
}

// fitWindow fits cfg.Predictor to x, dispatching to the auto selector
// (C5) when requested.
func fitWindow(x []float64, cfg Config) (predictor.Kind, FitResult) {
	switch cfg.Predictor {
	case ChooseAuto:
		return SelectAuto(x, cfg.Quant)
	case ChooseLinear:
		return predictor.Linear, Fit(x, predictor.Linear, cfg.Quant)
	case ChooseRW:
		return predictor.RW, Fit(x, predictor.RW, cfg.Quant)
	default:
		return predictor.Mean, Fit(x, predictor.Mean, cfg.Quant)
	}
}

// Run implements C4: partition x into segments using cfg.Mode, fitting
// and quantizing each one via C3/C5. It never leaves a gap or overlap —
// segments always tile [0, len(x)) exactly.
func Run(x []float64, cfg Config) ([]Segment, error) {
	n := len(x)
	if n == 0 {
		return nil, ErrEmptyInput
	}

	minLen := cfg.MinLen
	if minLen < 1 {
		minLen = 1
	}
	maxLen := cfg.MaxLen
	if maxLen < minLen {
		maxLen = minLen
	}

	if n == 1 {
		// spec.md §4.4: a length-1 series always yields a single mean-predictor
		// segment with Q floored at q_min, regardless of the requested
		// predictor or mode.
		fit := Fit(x, predictor.Mean, cfg.Quant)
		return []Segment{toSegment(0, 1, predictor.Mean, fit)}, nil
	}

	switch cfg.Mode {
	case Fixed:
		return runFixed(x, cfg, minLen, maxLen), nil
	default:
		return runAdaptive(x, cfg, minLen, maxLen), nil
	}
}

func runFixed(x []float64, cfg Config, minLen, maxLen int) []Segment {
	n := len(x)
	lfix := minLen
	if lfix > maxLen {
		lfix = maxLen
	}
	var segs []Segment
	for s := 0; s < n; {
		e := s + lfix
		if e > n {
			e = n
		}
		kind, fit := fitWindow(x[s:e], cfg)
		segs = append(segs, toSegment(s, e, kind, fit))
		s = e
	}
	return segs
}

func runAdaptive(x []float64, cfg Config, minLen, maxLen int) []Segment {
	n := len(x)
	var segs []Segment

	for s := 0; s < n; {
		if n-s < minLen {
			// Tail shorter than min_len: emit as a final short segment.
			kind, fit := fitWindow(x[s:n], cfg)
			segs = append(segs, toSegment(s, n, kind, fit))
			break
		}

		l := minLen
		var (
			goodKind predictor.Kind
			goodFit  FitResult
			goodLen  int
			curKind  predictor.Kind
			curFit   FitResult
		)
		for {
			window := x[s : s+l]
			curKind, curFit = fitWindow(window, cfg)
			satisfied := curFit.PostMSE <= cfg.MSEThreshold
			if satisfied {
				goodKind, goodFit, goodLen = curKind, curFit, l
			}
			canExtend := satisfied && l < maxLen && s+l+1 <= n
			if !canExtend {
				break
			}
			l++
		}

		freezeLen, freezeKind, freezeFit := l, curKind, curFit
		if goodLen > 0 {
			freezeLen, freezeKind, freezeFit = goodLen, goodKind, goodFit
		}

		segs = append(segs, toSegment(s, s+freezeLen, freezeKind, freezeFit))
		s += freezeLen
	}

	return segs
}

func toSegment(start, end int, kind predictor.Kind, fit FitResult) Segment {
	return Segment{
		Start:     start,
		End:       end,
		Pred:      kind,
		Params:    fit.Params,
		Q:         fit.Q,
		Residuals: fit.Residuals,
		PostMSE:   fit.PostMSE,
	}
}
