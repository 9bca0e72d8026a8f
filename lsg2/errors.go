package lsg2

import "github.com/mewkiz/lsg2/internal/lsgerr"

// Kind identifies one of the closed set of error conditions Encode/Decode
// and the C9 projections can report.
type Kind = lsgerr.Kind

// The closed set of error kinds, re-exported from internal/lsgerr so
// callers never need to import it directly.
const (
	InvalidInput           = lsgerr.InvalidInput
	BadMagic               = lsgerr.BadMagic
	UnsupportedVersion     = lsgerr.UnsupportedVersion
	TruncatedHeader        = lsgerr.TruncatedHeader
	MalformedContext       = lsgerr.MalformedContext
	TruncatedSegmentTable  = lsgerr.TruncatedSegmentTable
	MalformedResidualBlock = lsgerr.MalformedResidualBlock
	CoverageMismatch       = lsgerr.CoverageMismatch
	InconsistentCounts     = lsgerr.InconsistentCounts
)

// Error is the error type returned by every Encode/Decode failure path.
type Error = lsgerr.Error
