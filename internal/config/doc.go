// Package config provides configuration loading, merging, and validation
// facilities for the currency converter client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  0. Built-in defaults
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry point is [GetClientConfig], which returns the validated
// view used by cmd/client.
package config
