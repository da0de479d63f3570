package hubrl

import (
	"errors"
	"fmt"
)

// Kind classifies a failed check. Every error returned by Check is an
// *Error carrying exactly one Kind, so callers can map failures to exit
// codes or messages without string matching.
type Kind int

const (
	// KindConnection covers network-level failures and unexpected HTTP
	// statuses on either request.
	KindConnection Kind = iota + 1
	// KindParsing covers malformed token bodies and missing or garbled
	// rate-limit headers.
	KindParsing
	// KindOverLimit means the probe itself was answered with 429: the
	// quota was already exhausted before this check ran.
	KindOverLimit
	// KindAuth means the token authority rejected the supplied
	// credentials.
	KindAuth
)

func (k Kind) String() string {
	switch k {
	case KindConnection:
		return "connection"
	case KindParsing:
		return "parsing"
	case KindOverLimit:
		return "over limit"
	case KindAuth:
		return "auth"
	default:
		return "unknown"
	}
}

// Error is the failure type for a single check run. All failures are
// terminal: no retry or recovery happens inside the library.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf returns the Kind carried by err, or zero when err is nil or
// not produced by this package.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

func connectionError(format string, args ...any) *Error {
	return &Error{Kind: KindConnection, Message: fmt.Sprintf(format, args...)}
}

func connectionErrorWrap(msg string, err error) *Error {
	return &Error{Kind: KindConnection, Message: msg, Err: err}
}

func parsingError(msg string, err error) *Error {
	return &Error{Kind: KindParsing, Message: msg, Err: err}
}

func overLimitError() *Error {
	return &Error{Kind: KindOverLimit, Message: "over limit"}
}

func authError(msg string, err error) *Error {
	return &Error{Kind: KindAuth, Message: msg, Err: err}
}
