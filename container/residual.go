package container

import (
	"github.com/mewkiz/lsg2/internal/bits"
	"github.com/mewkiz/lsg2/internal/lsgerr"
	"github.com/mewkiz/lsg2/segment"
)

// appendResidualSection appends the coding_type byte followed by one
// length-prefixed block per segment, in segment order.
func appendResidualSection(dst []byte, segs []segment.Segment, coding Coding) []byte {
	dst = append(dst, byte(coding))
	for _, s := range segs {
		var payload []byte
		switch coding {
		case CodingVarint:
			for _, r := range s.Residuals {
				payload = bits.EncodeVarintZigZag(payload, int64(r))
			}
		default:
			payload = make([]byte, 0, 4*len(s.Residuals))
			for _, r := range s.Residuals {
				payload = appendU32(payload, uint32(int32(r)))
			}
		}
		dst = appendU32(dst, uint32(len(payload)))
		dst = append(dst, payload...)
	}
	return dst
}

// readResidualSection decodes the residual payload for every segment in
// segs (in place), validating block_len against the remaining buffer and,
// for varint blocks, that the decoded residual count matches the
// segment's length exactly.
func readResidualSection(cur *bits.Cursor, segs []segment.Segment, headerCoding Coding) error {
	codingByte, ok := cur.ReadU8()
	if !ok {
		return lsgerr.New(lsgerr.MalformedResidualBlock, "missing coding_type byte")
	}
	coding := Coding(codingByte)
	if coding != CodingRaw && coding != CodingVarint {
		return lsgerr.New(lsgerr.MalformedResidualBlock, "invalid coding_type %d", codingByte)
	}
	if coding != headerCoding {
		return lsgerr.New(lsgerr.MalformedResidualBlock, "coding_type %d disagrees with header flags", codingByte)
	}

	for i := range segs {
		l := segs[i].Len()
		blockLen, ok := cur.ReadU32LE()
		if !ok {
			return lsgerr.New(lsgerr.MalformedResidualBlock, "segment %d: truncated block_len", i)
		}
		if int(blockLen) > cur.Remaining() {
			return lsgerr.New(lsgerr.MalformedResidualBlock, "segment %d: block_len %d exceeds remaining buffer", i, blockLen)
		}
		payload, ok := cur.ReadBytes(int(blockLen))
		if !ok {
			return lsgerr.New(lsgerr.MalformedResidualBlock, "segment %d: failed to read block payload", i)
		}

		residuals, err := decodeResidualPayload(payload, l, coding)
		if err != nil {
			return lsgerr.Wrap(lsgerr.MalformedResidualBlock, err, "segment %d", i)
		}
		segs[i].Residuals = residuals
	}
	return nil
}

// decodeResidualPayload decodes exactly length residual values from
// payload. length comes from a segment row's end-start, which an
// adversarial container can set arbitrarily large (e.g. n_points=1e9
// with a single covering segment) while keeping payload tiny; every
// length-derived size is checked against len(payload) — which is itself
// already bounded by the remaining buffer — before make([]int32, length)
// runs, so a hostile length never drives an allocation bigger than the
// input it came from.
func decodeResidualPayload(payload []byte, length int, coding Coding) ([]int32, error) {
	switch coding {
	case CodingRaw:
		if len(payload) != 4*length {
			return nil, lsgerr.New(lsgerr.MalformedResidualBlock, "raw block has %d bytes, want %d", len(payload), 4*length)
		}
		residuals := make([]int32, length)
		for i := 0; i < length; i++ {
			off := 4 * i
			u := uint32(payload[off]) | uint32(payload[off+1])<<8 | uint32(payload[off+2])<<16 | uint32(payload[off+3])<<24
			residuals[i] = int32(u)
		}
		return residuals, nil
	case CodingVarint:
		// Every varint is at least 1 byte, so length values can never need
		// fewer than length bytes; reject before allocating length int32s.
		if length > len(payload) {
			return nil, lsgerr.New(lsgerr.MalformedResidualBlock, "varint block has %d bytes, too few for %d values", len(payload), length)
		}
		residuals := make([]int32, length)
		pos := 0
		for i := 0; i < length; i++ {
			if pos >= len(payload) {
				return nil, lsgerr.New(lsgerr.MalformedResidualBlock, "varint block ended after %d of %d values", i, length)
			}
			z, n, err := bits.DecodeVarintZigZag(payload[pos:])
			if err != nil {
				return nil, lsgerr.Wrap(lsgerr.MalformedResidualBlock, err, "varint decode")
			}
			residuals[i] = int32(z)
			pos += n
		}
		if pos != len(payload) {
			return nil, lsgerr.New(lsgerr.MalformedResidualBlock, "varint block has %d trailing bytes", len(payload)-pos)
		}
		return residuals, nil
	}
	return nil, lsgerr.New(lsgerr.MalformedResidualBlock, "unknown coding %d", coding)
}
