package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a service error so controllers can map it to a status
// and the frontend can branch on it.
type Kind string

const (
	InvalidConfiguration   Kind = "invalid_configuration"
	InvalidStateTransition Kind = "invalid_state_transition"
	AlreadyDispatched      Kind = "already_dispatched"
	InsufficientQuantity   Kind = "insufficient_quantity"
	NotFound               Kind = "not_found"
	Conflict               Kind = "conflict"
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func New(k Kind, msg string) *Error { return &Error{Kind: k, Message: msg} }

func Newf(k Kind, format string, args ...any) *Error {
	return &Error{Kind: k, Message: fmt.Sprintf(format, args...)}
}

func Wrap(k Kind, msg string, err error) *Error {
	return &Error{Kind: k, Message: msg, Err: err}
}

// KindOf returns the Kind carried by err, or "" for untagged errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

func IsKind(err error, k Kind) bool { return KindOf(err) == k }

// HTTPStatus maps an error to the status the REST boundary returns.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case InvalidConfiguration, InsufficientQuantity:
		return http.StatusBadRequest
	case NotFound:
		return http.StatusNotFound
	case InvalidStateTransition, AlreadyDispatched, Conflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
