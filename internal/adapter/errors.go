package adapter

import (
	"errors"
	"fmt"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnexpectedStatus    = errors.New("unexpected status")

	// ErrMalformedResponse is returned when a 2xx body cannot be decoded into
	// the expected shape.
	ErrMalformedResponse = errors.New("malformed response")
)

// ResponseError is a non-2xx reply. Message is the "message" field of a JSON
// error body when present.
type ResponseError struct {
	StatusCode int
	Message    string
	Body       string
	Err        error
}

func (e *ResponseError) Error() string {
	detail := e.Message
	if detail == "" {
		detail = e.Body
	}
	if detail == "" {
		return fmt.Sprintf("http %d: %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("http %d: %v: %s", e.StatusCode, e.Err, detail)
}

func (e *ResponseError) Unwrap() error {
	return e.Err
}
