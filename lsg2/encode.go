package lsg2

import (
	"math"

	"github.com/mewkiz/lsg2/classify"
	"github.com/mewkiz/lsg2/container"
	"github.com/mewkiz/lsg2/internal/lsgerr"
	"github.com/mewkiz/lsg2/segment"
)

// Encode implements C8's encode: validate, segment (C4/C5), classify
// (C6), and emit a container (C7).
func Encode(ts TimeSeries, cfg Config) ([]byte, error) {
	if err := validateInput(ts); err != nil {
		return nil, err
	}

	segs, err := segment.Run(ts.Values, cfg.segmentConfig())
	if err != nil {
		return nil, lsgerr.Wrap(lsgerr.InvalidInput, err, "segment series")
	}

	for i := range segs {
		x := ts.Values[segs[i].Start:segs[i].End]
		res := classify.Classify(x, segs[i].Pred, segs[i].Params, segs[i].Q, cfg.Classify)
		segs[i].Patt = res.Patt
		segs[i].Sal = res.Sal
		segs[i].Energy = res.Energy
	}

	logger.Debug().
		Int("n_points", len(ts.Values)).
		Int("n_segments", len(segs)).
		Msg("encode: segmented and classified")

	buf, err := container.Write(uint64(len(ts.Values)), container.Context{
		DT:   ts.DT,
		T0:   ts.T0,
		Unit: ts.Unit,
	}, segs, cfg.ResidualCoding)
	if err != nil {
		return nil, err
	}
	return buf, nil
}

func validateInput(ts TimeSeries) error {
	if ts.DT <= 0 {
		return lsgerr.New(lsgerr.InvalidInput, "dt must be > 0, got %v", ts.DT)
	}
	for i, v := range ts.Values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return lsgerr.New(lsgerr.InvalidInput, "sample %d is not finite: %v", i, v)
		}
	}
	return nil
}
