package container

import (
	"github.com/mewkiz/lsg2/internal/bits"
	"github.com/mewkiz/lsg2/internal/lsgerr"
)

// FixedHeader is the decoded form of spec.md §6.1's FixedHeader block.
type FixedHeader struct {
	Version    uint16
	Coding     Coding
	NPoints    uint64
	NSegments  uint32
	ContextLen uint32
}

// appendHeader appends the HeaderSize-byte FixedHeader encoding to dst.
func appendHeader(dst []byte, h FixedHeader) []byte {
	dst = append(dst, Magic...)
	dst = appendU16(dst, h.Version)
	var flags uint16
	if h.Coding == CodingVarint {
		flags |= residualCodingFlag
	}
	dst = appendU16(dst, flags)
	dst = appendU64(dst, h.NPoints)
	dst = appendU32(dst, h.NSegments)
	dst = appendU32(dst, h.ContextLen)
	dst = append(dst, make([]byte, 8)...) // reserved
	return dst
}

// readHeader parses and validates a FixedHeader from the front of cur,
// enforcing bounds before any subsequent allocation relies on its fields.
func readHeader(cur *bits.Cursor) (FixedHeader, error) {
	magic, ok := cur.ReadBytes(4)
	if !ok {
		return FixedHeader{}, lsgerr.New(lsgerr.TruncatedHeader, "buffer shorter than fixed header")
	}
	if string(magic) != Magic {
		return FixedHeader{}, lsgerr.New(lsgerr.BadMagic, "expected %q, got %q", Magic, magic)
	}

	version, ok := cur.ReadU16LE()
	if !ok {
		return FixedHeader{}, lsgerr.New(lsgerr.TruncatedHeader, "buffer truncated in version field")
	}
	if version != Version {
		return FixedHeader{}, lsgerr.New(lsgerr.UnsupportedVersion, "got version %d, support %d", version, Version)
	}

	flags, ok := cur.ReadU16LE()
	if !ok {
		return FixedHeader{}, lsgerr.New(lsgerr.TruncatedHeader, "buffer truncated in flags field")
	}
	if flags&^uint16(residualCodingFlag) != 0 {
		return FixedHeader{}, lsgerr.New(lsgerr.TruncatedHeader, "reserved flag bits set: %#04x", flags)
	}
	coding := CodingRaw
	if flags&residualCodingFlag != 0 {
		coding = CodingVarint
	}

	nPoints, ok := cur.ReadU64LE()
	if !ok {
		return FixedHeader{}, lsgerr.New(lsgerr.TruncatedHeader, "buffer truncated in n_points field")
	}
	nSegments, ok := cur.ReadU32LE()
	if !ok {
		return FixedHeader{}, lsgerr.New(lsgerr.TruncatedHeader, "buffer truncated in n_segments field")
	}
	contextLen, ok := cur.ReadU32LE()
	if !ok {
		return FixedHeader{}, lsgerr.New(lsgerr.TruncatedHeader, "buffer truncated in context_len field")
	}
	if contextLen > MaxContextLen {
		return FixedHeader{}, lsgerr.New(lsgerr.TruncatedHeader, "context_len %d exceeds max %d", contextLen, MaxContextLen)
	}

	reserved, ok := cur.ReadBytes(8)
	if !ok {
		return FixedHeader{}, lsgerr.New(lsgerr.TruncatedHeader, "buffer truncated in reserved field")
	}
	for _, b := range reserved {
		if b != 0 {
			return FixedHeader{}, lsgerr.New(lsgerr.TruncatedHeader, "reserved header bytes must be zero")
		}
	}

	return FixedHeader{
		Version:    version,
		Coding:     coding,
		NPoints:    nPoints,
		NSegments:  nSegments,
		ContextLen: contextLen,
	}, nil
}

func appendU16(dst []byte, v uint16) []byte {
	return append(dst, byte(v), byte(v>>8))
}

func appendU32(dst []byte, v uint32) []byte {
	return append(dst, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
}

func appendU64(dst []byte, v uint64) []byte {
	return append(dst,
		byte(v), byte(v>>8), byte(v>>16), byte(v>>24),
		byte(v>>32), byte(v>>40), byte(v>>48), byte(v>>56))
}

func appendF64(dst []byte, v float64) []byte {
	return appendU64(dst, float64bits(v))
}
