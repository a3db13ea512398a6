package service

import "errors"

type Kind int

const (
	KindValidation Kind = iota + 1
	KindAuth
	KindForbidden
	KindNotFound
	KindServer
)

// Error is a failure with a client-safe Message. Err keeps the internal cause
// for logs only.
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

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf reports the kind of err, KindServer for anything that is not an *Error.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindServer
}

func validationError(message string) error {
	return &Error{Kind: KindValidation, Message: message}
}

func authError(message string, cause error) error {
	return &Error{Kind: KindAuth, Message: message, Err: cause}
}

func forbiddenError(message string) error {
	return &Error{Kind: KindForbidden, Message: message}
}

func notFoundError(message string) error {
	return &Error{Kind: KindNotFound, Message: message}
}

func serverError(message string, cause error) error {
	return &Error{Kind: KindServer, Message: message, Err: cause}
}
