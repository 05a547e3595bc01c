package service

import (
	"errors"
	"fmt"
)

var (
	// ErrAuth is wrapped by every [*AuthError].
	ErrAuth = errors.New("authentication error")
	// ErrLookup is wrapped by every [*LookupError].
	ErrLookup = errors.New("rate lookup error")

	// ErrNoSession is returned by Restore when no complete identity is stored.
	ErrNoSession = errors.New("no stored session")
	// ErrWrongMode is returned by Signup when the form is not in signing-up mode.
	ErrWrongMode = errors.New("signup requires signing-up mode")
)

// AuthError is a login or registration failure. Message is the text shown to
// the user; Err is the underlying cause.
type AuthError struct {
	Message string
	Err     error
}

func (e *AuthError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AuthError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrAuth}
	}
	return []error{ErrAuth, e.Err}
}

// LookupError is a failed rate lookup for one currency pair.
type LookupError struct {
	From string
	To   string
	Err  error
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("lookup %s->%s: %v", e.From, e.To, e.Err)
}

func (e *LookupError) Unwrap() []error {
	return []error{ErrLookup, e.Err}
}
