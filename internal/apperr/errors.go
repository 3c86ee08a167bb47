package apperr

import (
	"errors"
	"fmt"
)

// ErrInvalid is returned when the input fails domain validation.
var ErrInvalid = errors.New("invalid input")

// ErrConflict indicates a lost race or a state conflict (HTTP 409).
var ErrConflict = errors.New("conflict")

// ErrNotFound indicates that the requested resource does not exist.
var ErrNotFound = errors.New("not found")

// ErrForbidden indicates the caller does not own the resource (HTTP 403).
var ErrForbidden = errors.New("forbidden")

// wrapped carries a caller-facing message on top of a sentinel, so handlers
// can classify with errors.Is and still render the precise reason
// (current owner, actual vs expected status).
type wrapped struct {
	kind error
	msg  string
}

func (e wrapped) Error() string { return e.msg }

func (e wrapped) Unwrap() error { return e.kind }

// Invalidf returns an error matching ErrInvalid with a formatted message.
func Invalidf(format string, args ...any) error {
	return wrapped{kind: ErrInvalid, msg: fmt.Sprintf(format, args...)}
}

// Conflictf returns an error matching ErrConflict with a formatted message.
func Conflictf(format string, args ...any) error {
	return wrapped{kind: ErrConflict, msg: fmt.Sprintf(format, args...)}
}

// Forbiddenf returns an error matching ErrForbidden with a formatted message.
func Forbiddenf(format string, args ...any) error {
	return wrapped{kind: ErrForbidden, msg: fmt.Sprintf(format, args...)}
}

// NotFoundf returns an error matching ErrNotFound with a formatted message.
func NotFoundf(format string, args ...any) error {
	return wrapped{kind: ErrNotFound, msg: fmt.Sprintf(format, args...)}
}
