// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-currency-converter/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/client_mock.go -package=mock

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// UI is the interactive surface driven by [App].
type UI interface {
	// LoginFlow blocks until the user logs in and returns the new session.
	LoginFlow(ctx context.Context) (models.Session, error)
	// MainLoop shows the converter for session. logout reports whether the
	// user asked to log out rather than quit.
	MainLoop(ctx context.Context, session models.Session) (logout bool, err error)
}
