package container

import (
	"github.com/mewkiz/lsg2/internal/lsgerr"
	"github.com/mewkiz/lsg2/segment"
)

// Write serializes a full .lsg2 container: fixed header, context JSON,
// segment table, and residual section, in that order, matching spec.md
// §6.1 exactly.
func Write(nPoints uint64, ctx Context, segs []segment.Segment, coding Coding) ([]byte, error) {
	if len(segs) > 1<<32-1 {
		return nil, lsgerr.New(lsgerr.InvalidInput, "too many segments: %d", len(segs))
	}
	ctxBytes, err := MarshalContext(ctx)
	if err != nil {
		return nil, lsgerr.Wrap(lsgerr.InvalidInput, err, "marshal context")
	}
	if len(ctxBytes) > MaxContextLen {
		return nil, lsgerr.New(lsgerr.InvalidInput, "context JSON too large: %d bytes", len(ctxBytes))
	}

	header := FixedHeader{
		Version:    Version,
		Coding:     coding,
		NPoints:    nPoints,
		NSegments:  uint32(len(segs)),
		ContextLen: uint32(len(ctxBytes)),
	}

	buf := make([]byte, 0, HeaderSize+len(ctxBytes)+len(segs)*SegRowSize+len(segs)*8+64)
	buf = appendHeader(buf, header)
	buf = append(buf, ctxBytes...)
	for _, s := range segs {
		buf = appendSegRow(buf, s)
	}
	buf = appendResidualSection(buf, segs, coding)
	return buf, nil
}
