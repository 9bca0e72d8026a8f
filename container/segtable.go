package container

import (
	"github.com/mewkiz/lsg2/internal/bits"
	"github.com/mewkiz/lsg2/internal/lsgerr"
	"github.com/mewkiz/lsg2/predictor"
	"github.com/mewkiz/lsg2/segment"
)

// appendSegRow appends one SegRowSize-byte segment table row to dst.
func appendSegRow(dst []byte, s segment.Segment) []byte {
	dst = appendU64(dst, uint64(s.Start))
	dst = appendU64(dst, uint64(s.End))
	dst = append(dst, byte(s.Pred))
	dst = append(dst, 0, 0, 0) // reserved
	dst = appendF64(dst, s.Params.Mean)
	dst = appendF64(dst, s.Params.Slope)
	dst = appendF64(dst, s.Params.Intercept)
	dst = appendF64(dst, s.Q)
	dst = appendF64(dst, s.Params.Seed)
	dst = append(dst, byte(s.Patt))
	dst = append(dst, byte(s.Sal))
	dst = append(dst, 0, 0) // reserved2
	return dst
}

// readSegRow parses and validates one segment table row against nPoints,
// but does not check inter-row coverage (that is a table-wide property
// checked by readSegTable once every row has been read).
func readSegRow(cur *bits.Cursor, nPoints uint64) (segment.Segment, error) {
	start, ok := cur.ReadU64LE()
	if !ok {
		return segment.Segment{}, lsgerr.New(lsgerr.TruncatedSegmentTable, "truncated in start_idx")
	}
	end, ok := cur.ReadU64LE()
	if !ok {
		return segment.Segment{}, lsgerr.New(lsgerr.TruncatedSegmentTable, "truncated in end_idx")
	}
	if !(start < end && end <= nPoints) {
		return segment.Segment{}, lsgerr.New(lsgerr.CoverageMismatch, "segment [%d,%d) invalid for n_points=%d", start, end, nPoints)
	}

	predByte, ok := cur.ReadU8()
	if !ok {
		return segment.Segment{}, lsgerr.New(lsgerr.TruncatedSegmentTable, "truncated in predictor_type")
	}
	kind, ok := predictor.KindFromByte(predByte)
	if !ok {
		return segment.Segment{}, lsgerr.New(lsgerr.TruncatedSegmentTable, "invalid predictor_type %d", predByte)
	}
	if _, ok := cur.ReadBytes(3); !ok {
		return segment.Segment{}, lsgerr.New(lsgerr.TruncatedSegmentTable, "truncated in reserved bytes")
	}

	meanV, ok := cur.ReadF64LE()
	if !ok {
		return segment.Segment{}, lsgerr.New(lsgerr.TruncatedSegmentTable, "truncated in mean")
	}
	slope, ok := cur.ReadF64LE()
	if !ok {
		return segment.Segment{}, lsgerr.New(lsgerr.TruncatedSegmentTable, "truncated in slope")
	}
	intercept, ok := cur.ReadF64LE()
	if !ok {
		return segment.Segment{}, lsgerr.New(lsgerr.TruncatedSegmentTable, "truncated in intercept")
	}
	q, ok := cur.ReadF64LE()
	if !ok {
		return segment.Segment{}, lsgerr.New(lsgerr.TruncatedSegmentTable, "truncated in Q")
	}
	if !(q > 0 && isFinite(q)) {
		return segment.Segment{}, lsgerr.New(lsgerr.TruncatedSegmentTable, "Q must be finite and > 0, got %v", q)
	}
	seed, ok := cur.ReadF64LE()
	if !ok {
		return segment.Segment{}, lsgerr.New(lsgerr.TruncatedSegmentTable, "truncated in seed_value")
	}
	for _, v := range [...]float64{meanV, slope, intercept, seed} {
		if !isFinite(v) {
			return segment.Segment{}, lsgerr.New(lsgerr.TruncatedSegmentTable, "non-finite segment parameter")
		}
	}

	pattByte, ok := cur.ReadU8()
	if !ok {
		return segment.Segment{}, lsgerr.New(lsgerr.TruncatedSegmentTable, "truncated in patt")
	}
	patt, ok := segment.PatternFromByte(pattByte)
	if !ok {
		return segment.Segment{}, lsgerr.New(lsgerr.TruncatedSegmentTable, "invalid patt %d", pattByte)
	}
	salByte, ok := cur.ReadU8()
	if !ok {
		return segment.Segment{}, lsgerr.New(lsgerr.TruncatedSegmentTable, "truncated in sal")
	}
	sal, ok := segment.SalienceFromByte(salByte)
	if !ok {
		return segment.Segment{}, lsgerr.New(lsgerr.TruncatedSegmentTable, "invalid sal %d", salByte)
	}
	if _, ok := cur.ReadBytes(2); !ok {
		return segment.Segment{}, lsgerr.New(lsgerr.TruncatedSegmentTable, "truncated in reserved2")
	}

	return segment.Segment{
		Start: int(start),
		End:   int(end),
		Pred:  kind,
		Params: predictor.Params{
			Mean:      meanV,
			Slope:     slope,
			Intercept: intercept,
			Seed:      seed,
		},
		Q:    q,
		Patt: patt,
		Sal:  sal,
	}, nil
}

// readSegTable reads nSegments rows and validates that they tile
// [0, nPoints) exactly, per spec.md §6.1's validation rules.
func readSegTable(cur *bits.Cursor, nPoints uint64, nSegments uint32) ([]segment.Segment, error) {
	segs := make([]segment.Segment, 0, nSegments)
	var prevEnd uint64
	for i := uint32(0); i < nSegments; i++ {
		s, err := readSegRow(cur, nPoints)
		if err != nil {
			return nil, err
		}
		if i == 0 && s.Start != 0 {
			return nil, lsgerr.New(lsgerr.CoverageMismatch, "first segment starts at %d, want 0", s.Start)
		}
		if i > 0 && uint64(s.Start) != prevEnd {
			return nil, lsgerr.New(lsgerr.CoverageMismatch, "segment %d starts at %d, want %d", i, s.Start, prevEnd)
		}
		prevEnd = uint64(s.End)
		segs = append(segs, s)
	}
	if nSegments == 0 || prevEnd != nPoints {
		return nil, lsgerr.New(lsgerr.CoverageMismatch, "segments cover up to %d, want %d", prevEnd, nPoints)
	}
	return segs, nil
}
