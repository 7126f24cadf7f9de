package domain

import (
	"context"             // Deadline and cancellation errors
	"database/sql"        // Connection-level errors
	"database/sql/driver" // Bad connection sentinel
	"errors"              // Error inspection
	"net"                 // Network errors
)

// Kind classifies an error for the HTTP boundary
type Kind uint8

const (
	KindInfrastructure Kind = iota // Persistence or other dependency faulted
	KindValidation                 // Missing or malformed input
	KindAuthentication             // Missing, invalid or expired credentials
	KindAuthorization              // Valid identity, insufficient role
	KindNotFound                   // Referenced entity absent
	KindConflict                   // Uniqueness violation
)

// String returns the machine-readable code used in error responses
func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation_failed"
	case KindAuthentication:
		return "authentication_required"
	case KindAuthorization:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	}
	return "internal"
}

// Error is the typed error returned by services and repositories
type Error struct {
	Kind      Kind   // Classification
	Message   string // Client-safe message (domain kinds only)
	Op        string // Failed operation, infrastructure errors only
	Err       error  // Underlying cause
	Retryable bool   // Caller may retry (timeouts, broken connections)
}

func (e *Error) Error() string {
	if e.Kind == KindInfrastructure {
		if e.Err == nil {
			return e.Op
		}
		return e.Op + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches sentinel errors of the same kind, so errors.Is(err, ErrNotFound) works for any not-found error
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Message == "" && t.Op == "" && t.Kind == e.Kind
}

// Sentinels for errors.Is checks
var (
	ErrValidation     = &Error{Kind: KindValidation}
	ErrAuthentication = &Error{Kind: KindAuthentication}
	ErrAuthorization  = &Error{Kind: KindAuthorization}
	ErrNotFound       = &Error{Kind: KindNotFound}
	ErrConflict       = &Error{Kind: KindConflict}
	ErrInfrastructure = &Error{Kind: KindInfrastructure}
)

func Validation(msg string) error     { return &Error{Kind: KindValidation, Message: msg} }
func Authentication(msg string) error { return &Error{Kind: KindAuthentication, Message: msg} }
func Authorization(msg string) error  { return &Error{Kind: KindAuthorization, Message: msg} }
func NotFound(msg string) error       { return &Error{Kind: KindNotFound, Message: msg} }
func Conflict(msg string) error       { return &Error{Kind: KindConflict, Message: msg} }

// Infrastructure wraps a dependency failure. Timeouts, cancellations and broken connections are marked retryable.
func Infrastructure(op string, err error) error {
	var de *Error
	if errors.As(err, &de) {
		return err // Already classified
	}
	return &Error{Kind: KindInfrastructure, Op: op, Err: err, Retryable: isTransient(err)}
}

// KindOf returns the kind of err; unclassified errors are infrastructure errors
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInfrastructure
}

// IsRetryable reports whether err was marked as a transient infrastructure failure
func IsRetryable(err error) bool {
	var de *Error
	return errors.As(err, &de) && de.Retryable
}

func isTransient(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) || errors.Is(err, sql.ErrConnDone) || errors.Is(err, driver.ErrBadConn) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}
