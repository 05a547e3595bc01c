// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/go-currency-converter/internal/adapter"
	"github.com/MKhiriev/go-currency-converter/internal/app"
	"github.com/MKhiriev/go-currency-converter/internal/validators"
)

// mapAuthError translates a validation or adapter error into an [*AuthError]
// carrying the banner text for the login and register forms:
//   - validation failures name the form problem;
//   - a server reply uses its {"message"} or a generic failure text;
//   - anything else means the backend was unreachable.
func mapAuthError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, validators.ErrInvalidEmail):
		return &AuthError{Message: app.MsgInvalidEmail, Err: err}
	case errors.Is(err, validators.ErrRequiredField):
		return &AuthError{Message: app.MsgRequiredFields, Err: err}
	}

	var respErr *adapter.ResponseError
	if errors.As(err, &respErr) {
		msg := respErr.Message
		if msg == "" {
			msg = app.MsgAuthenticationFailed
		}
		return &AuthError{Message: msg, Err: err}
	}

	if errors.Is(err, adapter.ErrMalformedResponse) {
		return &AuthError{Message: app.MsgAuthenticationFailed, Err: err}
	}

	return &AuthError{Message: app.MsgServerConnectionFailed, Err: err}
}
