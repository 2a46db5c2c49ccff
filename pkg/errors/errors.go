package errors

import (
	"errors"
	"fmt"
)

// Error represents a typed seeding error tagged with the stage that raised it.
type Error struct {
	Code    string `json:"code"`
	Stage   string `json:"stage,omitempty"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := e.Message
	if e.Stage != "" {
		msg = fmt.Sprintf("%s: %s", e.Stage, msg)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is matches errors sharing the same code so callers can test against the
// predefined values.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) || e == nil || t == nil {
		return false
	}
	return e.Code == t.Code
}

// New creates a new Error instance.
func New(code string, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap attaches context to an existing error.
func Wrap(err error, code string, stage string, message string) *Error {
	return &Error{Code: code, Stage: stage, Message: message, Err: err}
}

// Predefined errors for the seeding pipeline.
var (
	ErrInvariant        = New("INVARIANT_VIOLATION", "generated graph violates an invariant")
	ErrConfigInvalid    = New("CONFIG_INVALID", "invalid configuration")
	ErrPersistence      = New("PERSISTENCE_FAILED", "persistence failed")
	ErrCredential       = New("CREDENTIAL_FAILED", "credential hashing failed")
	ErrSideOutput       = New("SIDE_OUTPUT_FAILED", "side output failed")
	ErrInternal         = New("INTERNAL_ERROR", "internal error")
	ErrLeaderboardEmpty = New("LEADERBOARD_EMPTY", "no students to rank")
)

// FromError normalises any error into an *Error.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Wrap(err, ErrInternal.Code, "", ErrInternal.Message)
}

// Clone returns a copy of the error allowing for message overrides.
func Clone(err *Error, message string) *Error {
	if err == nil {
		return nil
	}
	clone := *err
	if message != "" {
		clone.Message = message
	}
	return &clone
}

// WithStage returns a copy of err tagged with stage.
func WithStage(err *Error, stage string) *Error {
	if err == nil {
		return nil
	}
	clone := *err
	clone.Stage = stage
	return &clone
}
