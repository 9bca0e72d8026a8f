package lsg2

import (
	"github.com/mewkiz/lsg2/container"
	"github.com/mewkiz/lsg2/predictor"
	"github.com/mewkiz/lsg2/segment"
)

// SegmentView is one row of Info.SegmentTable: the segment table as it
// reads from the container, without residual decoding.
type SegmentView struct {
	Start, End int
	Pred       predictor.Kind
	Patt       segment.Pattern
	Sal        segment.Salience
	Q          float64
}

// Info is the read-only container summary returned by ReadInfo (spec.md
// §6.2).
type Info struct {
	Points           int
	NSegments        int
	DT               float64
	T0               T0Value
	Unit             string
	CompressionRatio float64
	SegmentTable     []SegmentView
}

// ReadInfo parses header, context, and segment table only — no residual
// decoding (C9).
func ReadInfo(data []byte) (Info, error) {
	parsed, err := container.Parse(data)
	if err != nil {
		return Info{}, err
	}

	view := make([]SegmentView, len(parsed.Segments))
	for i, s := range parsed.Segments {
		view[i] = SegmentView{
			Start: s.Start,
			End:   s.End,
			Pred:  s.Pred,
			Patt:  s.Patt,
			Sal:   s.Sal,
			Q:     s.Q,
		}
	}

	// Uncompressed baseline: one float64 (8 bytes) per sample.
	ratio := float64(len(data)) / (float64(parsed.Header.NPoints) * 8)

	return Info{
		Points:           int(parsed.Header.NPoints),
		NSegments:        len(parsed.Segments),
		DT:               parsed.Context.DT,
		T0:               parsed.Context.T0,
		Unit:             parsed.Context.Unit,
		CompressionRatio: ratio,
		SegmentTable:     view,
	}, nil
}

// TagRow is one row of ExportTags' output (spec.md §6.2).
type TagRow struct {
	SegID  int
	Start  int
	End    int
	Len    int
	Pred   predictor.Kind
	Patt   segment.Pattern
	Sal    segment.Salience
	Energy float64
	Mean   float64
	Slope  float64
	Q      float64
}

// ExportTags returns one row per segment, without residual decoding (C9).
func ExportTags(data []byte) ([]TagRow, error) {
	parsed, err := container.Parse(data)
	if err != nil {
		return nil, err
	}

	rows := make([]TagRow, len(parsed.Segments))
	for i, s := range parsed.Segments {
		rows[i] = TagRow{
			SegID:  i,
			Start:  s.Start,
			End:    s.End,
			Len:    s.Len(),
			Pred:   s.Pred,
			Patt:   s.Patt,
			Sal:    s.Sal,
			Energy: s.Energy,
			Mean:   s.Params.Mean,
			Slope:  s.Params.Slope,
			Q:      s.Q,
		}
	}
	return rows, nil
}

// Profile is the aggregated view ExportProfile derives from the segment
// table (spec.md §6.3).
type Profile struct {
	FracFlat        float64
	FracTrend       float64
	FracOscillation float64
	FracNoisy       float64

	SalienceMin  float64
	SalienceMax  float64
	SalienceMean float64

	EnergyMin  float64
	EnergyMax  float64
	EnergyMean float64

	// MotifCounts maps each pattern to the number of maximal runs of
	// contiguous segments sharing that pattern.
	MotifCounts map[segment.Pattern]int
}

// ExportProfile aggregates pattern fractions, salience/energy summary
// statistics, and per-pattern motif counts from the segment table,
// without residual decoding (C9, spec.md §6.3).
func ExportProfile(data []byte) (Profile, error) {
	parsed, err := container.Parse(data)
	if err != nil {
		return Profile{}, err
	}
	segs := parsed.Segments
	nPoints := parsed.Header.NPoints

	var p Profile
	p.MotifCounts = make(map[segment.Pattern]int)

	if len(segs) == 0 || nPoints == 0 {
		return p, nil
	}

	var pointsByPatt [4]uint64
	var salSum, energySum float64
	salMin, salMax := float64(segs[0].Sal), float64(segs[0].Sal)
	energyMin, energyMax := segs[0].Energy, segs[0].Energy

	var runPatt segment.Pattern
	runOpen := false

	for _, s := range segs {
		pointsByPatt[s.Patt] += uint64(s.Len())

		salV := float64(s.Sal)
		salSum += salV
		if salV < salMin {
			salMin = salV
		}
		if salV > salMax {
			salMax = salV
		}

		energySum += s.Energy
		if s.Energy < energyMin {
			energyMin = s.Energy
		}
		if s.Energy > energyMax {
			energyMax = s.Energy
		}

		if !runOpen || s.Patt != runPatt {
			p.MotifCounts[s.Patt]++
			runPatt = s.Patt
			runOpen = true
		}
	}

	total := float64(nPoints)
	p.FracFlat = float64(pointsByPatt[segment.Flat]) / total
	p.FracTrend = float64(pointsByPatt[segment.Trend]) / total
	p.FracOscillation = float64(pointsByPatt[segment.Oscillation]) / total
	p.FracNoisy = float64(pointsByPatt[segment.Noisy]) / total

	n := float64(len(segs))
	p.SalienceMin = salMin
	p.SalienceMax = salMax
	p.SalienceMean = salSum / n
	p.EnergyMin = energyMin
	p.EnergyMax = energyMax
	p.EnergyMean = energySum / n

	return p, nil
}
