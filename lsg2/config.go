package lsg2

import (
	"github.com/mewkiz/lsg2/classify"
	"github.com/mewkiz/lsg2/container"
	"github.com/mewkiz/lsg2/segment"
)

// SegmentMode selects the segmenter strategy (spec.md §6.2 segment_mode).
type SegmentMode = segment.Mode

// The two segmenter modes.
const (
	SegmentModeFixed    = segment.Fixed
	SegmentModeAdaptive = segment.Adaptive
)

// PredictorChoice selects a forced predictor, or Auto (spec.md §6.2
// predictor).
type PredictorChoice = segment.PredictorChoice

// The four predictor choices.
const (
	PredictorMean   = segment.ChooseMean
	PredictorLinear = segment.ChooseLinear
	PredictorRW     = segment.ChooseRW
	PredictorAuto   = segment.ChooseAuto
)

// ResidualCoding selects the residual block encoding (spec.md §6.2
// residual_coding).
type ResidualCoding = container.Coding

// The two residual codings.
const (
	ResidualRaw    = container.CodingRaw
	ResidualVarint = container.CodingVarint
)

// Config is the immutable configuration value every Encode call takes.
// There is no global defaults state (spec.md §9): callers start from
// DefaultConfig and copy-override fields, since Go struct value
// semantics make that copy independent of the default.
type Config struct {
	SegmentMode      SegmentMode
	MinSegmentLength uint32
	MaxSegmentLength uint32
	MSEThreshold     float64
	Predictor        PredictorChoice
	ResidualCoding   ResidualCoding
	QMin             float64
	CQ               float64
	Classify         classify.Config
}

// DefaultConfig returns the pinned default configuration. Every constant
// here is part of the on-disk contract's reproducibility guarantee
// (spec.md §9): changing one changes what a given series encodes to.
func DefaultConfig() Config {
	return Config{
		SegmentMode:      SegmentModeAdaptive,
		MinSegmentLength: 8,
		MaxSegmentLength: 64,
		MSEThreshold:     0.01,
		Predictor:        PredictorAuto,
		ResidualCoding:   ResidualVarint,
		QMin:             1e-6,
		CQ:               0.25,
		Classify: classify.Config{
			EFlat:  1e-4,
			SFlat:  1e-3,
			STrend: 0.05,
			COsc:   0.3,
			ELow:   1e-3,
			EHigh:  1.0,
		},
	}
}

func (c Config) segmentConfig() segment.Config {
	return segment.Config{
		Mode:         c.SegmentMode,
		MinLen:       int(c.MinSegmentLength),
		MaxLen:       int(c.MaxSegmentLength),
		MSEThreshold: c.MSEThreshold,
		Predictor:    c.Predictor,
		Quant: segment.QuantConfig{
			QMin: c.QMin,
			CQ:   c.CQ,
		},
	}
}
