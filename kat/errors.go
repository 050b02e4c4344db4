package kat

import (
	"fmt"

	"github.com/dreame-maker/kat/internal/bounds"
)

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindBounds      ErrKind = iota // index/length outside [0, count]
	ErrKindState                      // mutation attempted on a fixed chain
	ErrKindEOS                        // reader advanced past end of stream
	ErrKindUnsupported                // charset token with no registered decoder
	ErrKindIO                         // sink (digest/cipher/stream) failed
)

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// boundsError reports an out-of-range index/length pair against the chain's
// current count, per the offending-index-and-count message convention.
func boundsError(op string, offset, length, count int) *Error {
	return &Error{
		Kind: ErrKindBounds,
		Msg: fmt.Sprintf("kat: %s: offset %d length %d exceeds count %d",
			op, offset, length, count),
	}
}

// checkBounds reports a boundsError unless offset/length describe a valid,
// non-overflowing sub-range of [0, count]. Every exported helper accepting
// an (offset, length) pair routes through this single check.
func checkBounds(op string, offset, length, count int) *Error {
	if bounds.Has(count, offset, length) {
		return nil
	}
	return boundsError(op, offset, length, count)
}

// stateError reports a mutation attempted on a fixed chain.
func stateError(op string, count int) *Error {
	return &Error{
		Kind: ErrKindState,
		Msg:  fmt.Sprintf("kat: %s: chain is fixed (count %d)", op, count),
	}
}

// ErrReaderCrash is returned by Reader.Next when the cursor has reached end.
var ErrReaderCrash = &Error{Kind: ErrKindEOS, Msg: "kat: reader: end of stream"}

// ErrUnsupportedCharset is returned when Chain.StringRange or charset.Decode
// is given a token with no registered decoder.
var ErrUnsupportedCharset = &Error{Kind: ErrKindUnsupported, Msg: "kat: unsupported charset"}
