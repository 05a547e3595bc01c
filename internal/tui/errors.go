// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-currency-converter/internal/app"
	"github.com/MKhiriev/go-currency-converter/internal/service"
)

// humanizeError returns the banner text for err. Auth failures already carry
// a user-facing message; lookup failures collapse to a fixed notice.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	var authErr *service.AuthError
	if errors.As(err, &authErr) && authErr.Message != "" {
		return authErr.Message
	}
	if errors.Is(err, service.ErrLookup) {
		return app.MsgRateUnavailable
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return app.MsgServerConnectionFailed
	}

	return err.Error()
}
