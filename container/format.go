// Package container implements the binary .lsg2 container (C7): the
// fixed header, JSON context block, segment table, and residual section
// described in spec.md §6.1, plus hardened, allocation-safe parsing of
// untrusted input.
package container

// Magic is the 4-byte signature every container begins with.
const Magic = "LSG2"

// Version is the only container version this package writes or reads.
const Version uint16 = 1

// MaxContextLen bounds the declared size of the context JSON block
// (spec.md §6.1: "must be ≤ 2^20").
const MaxContextLen = 1 << 20

// HeaderSize is the byte size of FixedHeader: magic(4) + version(2) +
// flags(2) + n_points(8) + n_segments(4) + context_len(4) + reserved(8).
const HeaderSize = 4 + 2 + 2 + 8 + 4 + 4 + 8

// SegRowSize is the byte size of one SegmentTable row. spec.md §6.1 labels
// the table "56 bytes" per entry but then enumerates fields that sum to
// 64 bytes (u64+u64+u8+3+f64*5+u8+u8+2 = 64); this package follows the
// enumerated fields, since every one of them is a mandatory Segment
// attribute per spec.md §3, and documents the discrepancy in DESIGN.md.
const SegRowSize = 8 + 8 + 1 + 3 + 8 + 8 + 8 + 8 + 8 + 1 + 1 + 2

// Coding identifies the residual entropy coding in use.
type Coding uint8

// The two residual coding schemes.
const (
	CodingRaw    Coding = 0
	CodingVarint Coding = 1
)

// residualCodingFlag is the bit within FixedHeader.Flags that records the
// coding scheme.
const residualCodingFlag = 1 << 0
