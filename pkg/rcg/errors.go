package rcg

import (
	"errors"
	"fmt"
)

var (
	// ErrTruncated marks a record cut short by the end of the stream.
	ErrTruncated = errors.New("rcg: truncated record")
	// ErrUnknownMode marks an unrecognized binary mode tag.
	ErrUnknownMode = errors.New("rcg: unknown record mode")
	// ErrUnknownRecord marks an unrecognized text line tag.
	ErrUnknownRecord = errors.New("rcg: unknown record tag")
	// ErrMalformedRecord marks a record whose fields could not be decoded.
	ErrMalformedRecord = errors.New("rcg: malformed record")
	// ErrUnsupported marks a record kind the target generation cannot carry.
	ErrUnsupported = errors.New("rcg: record not supported by log version")
)

// RecordError locates a failed decode in the stream.
type RecordError struct {
	Version LogVersion
	Offset  int64  // byte offset of the record start
	Line    int    // 1-based line number, text generations only
	Text    string // offending line, text generations only
	Err     error
}

func (e *RecordError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s line %d: %v: %q", e.Version, e.Line, e.Err, clip(e.Text, 80))
	}
	return fmt.Sprintf("%s offset %d: %v", e.Version, e.Offset, e.Err)
}

func (e *RecordError) Unwrap() error { return e.Err }

func clip(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// HandlerError wraps an error returned by a Handler callback.
type HandlerError struct {
	Err error
}

func (e *HandlerError) Error() string { return "rcg: handler: " + e.Err.Error() }

func (e *HandlerError) Unwrap() error { return e.Err }
