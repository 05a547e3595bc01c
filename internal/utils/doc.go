// Package utils provides general-purpose helper utilities shared by the
// outbound adapters: a resty client wrapper and request-ID generation.
package utils
