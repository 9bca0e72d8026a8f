package container

import (
	"math"

	"github.com/mewkiz/lsg2/internal/bits"
	"github.com/mewkiz/lsg2/internal/lsgerr"
	"github.com/mewkiz/lsg2/segment"
)

// Parsed holds everything read from a container up to, but not including,
// residual decoding — enough for read_info/export_tags/export_profile
// (C9) without paying for residual allocation.
type Parsed struct {
	Header   FixedHeader
	Context  Context
	Segments []segment.Segment

	residualStart int
}

// Parse reads and validates the fixed header, context JSON, and segment
// table, without touching the residual section. Every size that feeds an
// allocation (n_segments, context_len) is checked against the remaining
// buffer length before that allocation happens.
func Parse(buf []byte) (*Parsed, error) {
	cur := bits.NewCursor(buf)

	header, err := readHeader(cur)
	if err != nil {
		return nil, err
	}
	// Bound n_segments × SegRowSize + context_len against the remaining
	// buffer *before* allocating anything sized by either value (spec.md
	// §6.1, and the S5 hostile-input scenario of spec.md §8).
	tableBytes := uint64(header.NSegments) * uint64(SegRowSize)
	need := tableBytes + uint64(header.ContextLen)
	if need > uint64(cur.Remaining()) {
		return nil, lsgerr.New(lsgerr.TruncatedSegmentTable, "declared sizes (context %d + table %d) exceed remaining buffer %d", header.ContextLen, tableBytes, cur.Remaining())
	}

	if header.NPoints == 0 {
		return nil, lsgerr.New(lsgerr.InconsistentCounts, "n_points is 0")
	}
	if header.NPoints > math.MaxInt64 {
		return nil, lsgerr.New(lsgerr.InconsistentCounts, "n_points %d does not fit a native int", header.NPoints)
	}

	ctxBytes, ok := cur.ReadBytes(int(header.ContextLen))
	if !ok {
		return nil, lsgerr.New(lsgerr.MalformedContext, "failed to read context block")
	}
	ctx, err := UnmarshalContext(ctxBytes)
	if err != nil {
		return nil, err
	}

	segs, err := readSegTable(cur, header.NPoints, header.NSegments)
	if err != nil {
		return nil, err
	}

	// The residual section must hold at least one coding_type byte, one
	// block_len prefix per segment, and at least minResidualBytesPerPoint
	// bytes of payload per point (4 for raw, 1 for varint, since every
	// varint is at least 1 byte). Reject an n_points/segment-length that
	// could never be backed by the remaining buffer now, before any
	// residual-sized allocation is attempted — the symmetric check to the
	// one already applied to n_segments above, covering a single huge
	// segment declared over a tiny buffer (e.g. n_points=1e9 with one
	// segment [0, 1e9)).
	minPerPoint := uint64(4)
	if header.Coding == CodingVarint {
		minPerPoint = 1
	}
	// Computed via subtraction/division, not header.NPoints*minPerPoint, so
	// a huge n_points (up to 2^63-1, already bounds-checked above) cannot
	// overflow uint64 and wrap back under the remaining-buffer check.
	remaining := uint64(cur.Remaining())
	overhead := uint64(1) + uint64(header.NSegments)*4
	if overhead > remaining {
		return nil, lsgerr.New(lsgerr.TruncatedSegmentTable, "residual section overhead %d exceeds remaining buffer %d", overhead, remaining)
	}
	if header.NPoints > (remaining-overhead)/minPerPoint {
		return nil, lsgerr.New(lsgerr.TruncatedSegmentTable, "n_points %d cannot be backed by remaining buffer %d", header.NPoints, remaining)
	}

	return &Parsed{
		Header:        header,
		Context:       ctx,
		Segments:      segs,
		residualStart: cur.Pos(),
	}, nil
}

// DecodeResiduals fills in p.Segments[i].Residuals from the residual
// section of buf (the same slice originally passed to Parse).
func (p *Parsed) DecodeResiduals(buf []byte) error {
	cur := bits.NewCursor(buf[p.residualStart:])
	return readResidualSection(cur, p.Segments, p.Header.Coding)
}

// Read fully decodes a container: header, context, segment table, and
// residuals.
func Read(buf []byte) (*Parsed, error) {
	p, err := Parse(buf)
	if err != nil {
		return nil, err
	}
	if err := p.DecodeResiduals(buf); err != nil {
		return nil, err
	}
	return p, nil
}
