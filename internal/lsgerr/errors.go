// Package lsgerr defines the closed set of error kinds produced by the
// codec, and a single Error type that carries one of them.
//
// Decoding untrusted containers must never panic; every failure path in
// container and lsg2 returns one of these kinds instead.
package lsgerr

import (
	"fmt"

	"github.com/mewkiz/pkg/errutil"
	"github.com/pkg/errors"
)

// Kind identifies one of the closed set of error conditions the codec can
// report. The set is fixed by the container format; adding a member is a
// format-affecting change.
type Kind uint8

// Closed set of error kinds.
const (
	// InvalidInput is returned by Encode for non-finite samples or a
	// non-positive sample period.
	InvalidInput Kind = iota + 1
	// BadMagic is returned when a container does not begin with "LSG2".
	BadMagic
	// UnsupportedVersion is returned for a header version this decoder does
	// not implement.
	UnsupportedVersion
	// TruncatedHeader is returned when the fixed header does not fit in the
	// input buffer, or one of its fields fails validation (reserved flag
	// bits or reserved bytes set, context_len over the limit).
	TruncatedHeader
	// MalformedContext is returned for invalid or non-conforming context
	// JSON (wrong keys, wrong types, non-positive dt).
	MalformedContext
	// TruncatedSegmentTable is returned when the segment table does not fit
	// in the remaining buffer, a row fails validation, or the declared
	// n_points cannot be backed by the residual section that remains.
	TruncatedSegmentTable
	// MalformedResidualBlock is returned for a truncated or invalid varint,
	// a block_len that overruns the buffer, or a varint block whose decoded
	// count does not match its segment length.
	MalformedResidualBlock
	// CoverageMismatch is returned when the segment table does not tile
	// [0, n_points) exactly.
	CoverageMismatch
	// InconsistentCounts is returned when the declared n_points is zero or
	// too large to index a native int.
	InconsistentCounts
)

// String returns the kind's name, matching spec.md's enumeration.
func (k Kind) String() string {
	switch k {
	case InvalidInput:
		return "InvalidInput"
	case BadMagic:
		return "BadMagic"
	case UnsupportedVersion:
		return "UnsupportedVersion"
	case TruncatedHeader:
		return "TruncatedHeader"
	case MalformedContext:
		return "MalformedContext"
	case TruncatedSegmentTable:
		return "TruncatedSegmentTable"
	case MalformedResidualBlock:
		return "MalformedResidualBlock"
	case CoverageMismatch:
		return "CoverageMismatch"
	case InconsistentCounts:
		return "InconsistentCounts"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Error is the error type returned by every encode/decode failure path. It
// carries a Kind from the closed set above plus a human-readable message
// and, where available, the underlying cause.
type Error struct {
	kind  Kind
	msg   string
	cause error
}

// New builds an Error of the given kind with a formatted message.
func New(kind Kind, format string, args ...interface{}) *Error {
	return &Error{kind: kind, msg: fmt.Sprintf(format, args...)}
}

// Wrap builds an Error of the given kind, wrapping cause for Unwrap while
// attaching caller context the same way the teacher's encode path does via
// errutil.Err.
func Wrap(kind Kind, cause error, format string, args ...interface{}) *Error {
	wrapped := errutil.Err(cause)
	return &Error{
		kind:  kind,
		msg:   errors.Wrap(wrapped, fmt.Sprintf(format, args...)).Error(),
		cause: wrapped,
	}
}

// Kind returns the error's kind.
func (e *Error) Kind() Kind { return e.kind }

// Error implements the error interface.
func (e *Error) Error() string {
	if e.msg == "" {
		return e.kind.String()
	}
	return fmt.Sprintf("%s: %s", e.kind, e.msg)
}

// Unwrap exposes the underlying cause, if any, for errors.Is/errors.As.
func (e *Error) Unwrap() error { return e.cause }

// Is reports whether target is an *Error of the same Kind, so callers may
// write errors.Is(err, lsgerr.New(lsgerr.BadMagic, "")) style sentinels if
// desired, in addition to switching on Kind() directly.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.kind == e.kind
}
