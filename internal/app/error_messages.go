// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared user-facing message strings used by the
// service layer and the TUI.
//
// Keeping them in one place ensures consistent wording across banners,
// notices and log entries.
package app

const (
	// MsgAuthenticationFailed is shown when the auth backend rejects a
	// login or registration without providing its own message.
	MsgAuthenticationFailed = "Authentication failed"

	// MsgServerConnectionFailed is shown when the auth backend cannot be
	// reached at all.
	MsgServerConnectionFailed = "Server connection failed. Make sure backend is running."

	// MsgRequiredFields is shown when the form is submitted with an empty
	// username or password.
	MsgRequiredFields = "Please fill in all required fields"

	// MsgInvalidEmail is shown when the registration e-mail is malformed.
	MsgInvalidEmail = "Please enter a valid email address"

	// MsgRegistrationSucceeded is the notice shown on the login form after
	// a successful registration.
	MsgRegistrationSucceeded = "Registration successful! Please log in."

	// MsgRateUnavailable is shown when the rate provider cannot be reached
	// or answers with something unreadable.
	MsgRateUnavailable = "Exchange rate unavailable. Showing last known result."
)
