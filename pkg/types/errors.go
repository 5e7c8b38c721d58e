package types

import "errors"

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindNone                ErrKind = iota // no fault recorded
	ErrKindMalformedPeakLine                  // a line inside the peak block is neither a peak nor END IONS
	ErrKindMalformedHeaderLine                // a header line is not KEY=VALUE, or its value does not parse
	ErrKindPeakColumns                        // a peak line has fewer than two columns
	ErrKindIO                                 // the underlying stream failed to read or seek
	ErrKindNotFound                           // no spectrum for the requested id/position/time
	ErrKindState                              // operation invalid for the reader's state (e.g. no index)
	ErrKindUnsupported                        // capability the stream or format does not offer
	ErrKindFormat                             // malformed auxiliary data (e.g. index sidecar)
)

var errKindNames = [...]string{
	ErrKindNone:                "NoError",
	ErrKindMalformedPeakLine:   "MalformedPeakLine",
	ErrKindMalformedHeaderLine: "MalformedHeaderLine",
	ErrKindPeakColumns:         "TooManyColumnsForPeakLine",
	ErrKindIO:                  "IOError",
	ErrKindNotFound:            "ScanNotFound",
	ErrKindState:               "InvalidState",
	ErrKindUnsupported:         "Unsupported",
	ErrKindFormat:              "Format",
}

func (k ErrKind) String() string {
	if k < 0 || int(k) >= len(errKindNames) {
		return "Unknown"
	}
	return errKindNames[k]
}

// Error is a typed error with an optional underlying cause.
// Offset is the byte offset of the line that caused a decode fault, or -1.
type Error struct {
	Kind   ErrKind
	Msg    string
	Offset int64
	Err    error // optional underlying cause
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

// Is reports whether target is an *Error of the same kind, so that
// errors.Is(err, ErrNotFound) holds for every not-found error.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.Kind == t.Kind
}

// Sentinels commonly returned by implementations.
var (
	// ErrNotFound indicates no spectrum matched an id, position or time.
	ErrNotFound = &Error{Kind: ErrKindNotFound, Msg: "spectrum not found", Offset: -1}
	// ErrIndexNotBuilt indicates random access was attempted before BuildIndex.
	ErrIndexNotBuilt = &Error{Kind: ErrKindState, Msg: "offset index not initialized", Offset: -1}
	// ErrNotSeekable indicates the wrapped stream cannot seek.
	ErrNotSeekable = &Error{Kind: ErrKindUnsupported, Msg: "stream does not support seeking", Offset: -1}
	// ErrNoPeaks indicates a spectrum without a peak list was converted to centroids.
	ErrNoPeaks = &Error{Kind: ErrKindUnsupported, Msg: "spectrum has no centroid peaks", Offset: -1}
)

// NewError builds an *Error of the given kind.
func NewError(kind ErrKind, msg string, offset int64, cause error) *Error {
	return &Error{Kind: kind, Msg: msg, Offset: offset, Err: cause}
}

// IOError wraps an I/O failure from the underlying stream.
func IOError(msg string, cause error) *Error {
	return &Error{Kind: ErrKindIO, Msg: msg, Offset: -1, Err: cause}
}

// KindOf returns the ErrKind carried by err, ErrKindNone for nil, and
// ErrKindIO for errors that carry no kind.
func KindOf(err error) ErrKind {
	if err == nil {
		return ErrKindNone
	}
	var te *Error
	if errors.As(err, &te) {
		return te.Kind
	}
	return ErrKindIO
}
