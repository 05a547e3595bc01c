// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound HTTP clients of the currency
// converter: the authentication backend and the exchange-rate provider.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401) and
// [errors.As] with [*ResponseError] to read the server-provided message.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-currency-converter/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// AuthAdapter talks to the login/register backend.
type AuthAdapter interface {
	// Login POSTs username and password to /api/login and returns the issued
	// token and canonical username.
	Login(ctx context.Context, creds models.Credentials) (models.LoginResponse, error)

	// Register POSTs username, email and password to /api/register. A 2xx
	// status is the only success signal; the body is ignored.
	Register(ctx context.Context, creds models.Credentials) error
}

// RateAdapter fetches exchange-rate tables.
type RateAdapter interface {
	// Latest GETs /latest/{base} and returns the decoded table. A body with
	// no "rates" object is reported as [ErrMalformedResponse].
	Latest(ctx context.Context, base models.Currency) (models.RateTable, error)
}
