package lsg2

import (
	"github.com/mewkiz/lsg2/container"
	"github.com/mewkiz/lsg2/predictor"
)

// Decode implements C8's decode: parse the container (C7), reconstruct
// each segment's samples from its predictor and dequantized residuals,
// and concatenate them into a fresh TimeSeries.
func Decode(data []byte) (TimeSeries, error) {
	parsed, err := container.Read(data)
	if err != nil {
		return TimeSeries{}, err
	}

	values := make([]float64, parsed.Header.NPoints)
	for _, s := range parsed.Segments {
		n := s.Len()
		xhat := predictor.Reconstruct(s.Pred, s.Params, n)
		for i := 0; i < n; i++ {
			values[s.Start+i] = xhat[i] + float64(s.Residuals[i])*s.Q
		}
	}

	logger.Debug().
		Int("n_points", len(values)).
		Int("n_segments", len(parsed.Segments)).
		Msg("decode: reconstructed series")

	return TimeSeries{
		Values: values,
		DT:     parsed.Context.DT,
		T0:     parsed.Context.T0,
		Unit:   parsed.Context.Unit,
	}, nil
}
