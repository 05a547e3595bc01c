// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It restores a stored session or runs the login flow, shows the converter
// until the user quits or logs out, and after a logout starts over with the
// configured default conversion.
package client
