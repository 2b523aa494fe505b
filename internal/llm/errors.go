package llm

import (
	"github.com/pkg/errors"
)

// WarningPrefix marks every user-facing failure message.
const WarningPrefix = "⚠️ Error: "

// Kind classifies why a completion failed.
type Kind string

const (
	KindConfiguration Kind = "configuration"
	KindTimeout       Kind = "timeout"
	KindTransport     Kind = "transport"
	KindResponseShape Kind = "response-shape"
	KindUnexpected    Kind = "unexpected"
)

// ErrMissingAPIKey is the cause of every KindConfiguration error.
var ErrMissingAPIKey = errors.New("CEREBRAS_API_KEY not found")

// Error is the only error type returned by Client.Complete.
type Error struct {
	Kind Kind
	Err  error
}

func newError(kind Kind, err error) *Error {
	return &Error{Kind: kind, Err: err}
}

func (e *Error) Error() string {
	if e.Err == nil {
		return string(e.Kind)
	}
	return string(e.Kind) + ": " + e.Err.Error()
}

// Unwrap supports errors.Is / errors.As.
func (e *Error) Unwrap() error { return e.Err }

// Cause supports errors.Cause.
func (e *Error) Cause() error { return e.Err }

// Message returns the warning-prefixed text shown in place of a document.
func (e *Error) Message() string {
	switch e.Kind {
	case KindConfiguration:
		return WarningPrefix + "CEREBRAS_API_KEY not found. Please set it in your .env file."
	case KindTimeout:
		return WarningPrefix + "Request timed out. Please try again."
	case KindTransport:
		return WarningPrefix + "API request failed - " + detail(e.Err)
	case KindResponseShape:
		return WarningPrefix + "Unexpected API response format."
	default:
		return WarningPrefix + detail(e.Err)
	}
}

// KindOf extracts the failure kind; errors not produced by this package are KindUnexpected.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnexpected
}

// WarningMessage renders err as a warning-prefixed string. It returns "" for nil.
func WarningMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Message()
	}
	return WarningPrefix + err.Error()
}

func detail(err error) string {
	if err == nil {
		return "unknown error"
	}
	return err.Error()
}
