package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// ErrTransport marks failures where the backend gave no answer at all:
// network errors, an open circuit breaker, a client timeout.
var ErrTransport = stderrors.New("transport failure")

type CustomError struct {
	Code    int
	Message string
	Err     error
}

func (e *CustomError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *CustomError) Unwrap() error {
	return e.Err
}

func BadRequest(msg string) error {
	return &CustomError{Code: http.StatusBadRequest, Message: msg}
}

func UnauthorizedError(msg string) error {
	return &CustomError{Code: http.StatusUnauthorized, Message: msg}
}

func Forbidden(msg string) error {
	return &CustomError{Code: http.StatusForbidden, Message: msg}
}

func NotFound(msg string) error {
	return &CustomError{Code: http.StatusNotFound, Message: msg}
}

func Conflict(msg string) error {
	return &CustomError{Code: http.StatusConflict, Message: msg}
}

func UnprocessableEntity(msg string) error {
	return &CustomError{Code: http.StatusUnprocessableEntity, Message: msg}
}

func InternalServerError(msg string) error {
	return &CustomError{Code: http.StatusInternalServerError, Message: msg}
}

func BadGateway(msg string) error {
	return &CustomError{Code: http.StatusBadGateway, Message: msg}
}

// Transport wraps a client-side failure so callers can tell it apart from
// an answer the backend actually gave.
func Transport(err error) error {
	return &CustomError{
		Code:    http.StatusBadGateway,
		Message: "backend unreachable",
		Err:     fmt.Errorf("%w: %v", ErrTransport, err),
	}
}

// Status converts a non-2xx backend answer into an error carrying the same
// status code.
func Status(code int, msg string) error {
	if msg == "" {
		msg = http.StatusText(code)
	}
	return &CustomError{Code: code, Message: msg}
}

func IsTransport(err error) bool {
	return stderrors.Is(err, ErrTransport)
}

// Code returns the HTTP status an error should be rendered with.
func Code(err error) int {
	var ce *CustomError
	if stderrors.As(err, &ce) {
		return ce.Code
	}
	return http.StatusInternalServerError
}

// Message returns the user-facing part of an error.
func Message(err error) string {
	var ce *CustomError
	if stderrors.As(err, &ce) {
		return ce.Message
	}
	return err.Error()
}

func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

func As(err error, target any) bool {
	return stderrors.As(err, target)
}
