// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// currency converter. It aggregates all sub-configurations and is populated
// by merging defaults, environment variables, command-line flags and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the initial conversion shown after login.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the local session store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the addresses of the authentication backend and the
	// exchange-rate provider.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds the conversion the converter screen starts with.
type App struct {
	// DefaultAmount is the amount pre-filled on the converter screen.
	// Env: APP_DEFAULT_AMOUNT
	DefaultAmount string `env:"DEFAULT_AMOUNT"`

	// DefaultFrom is the initial source currency code.
	// Env: APP_DEFAULT_FROM
	DefaultFrom string `env:"DEFAULT_FROM"`

	// DefaultTo is the initial target currency code.
	// Env: APP_DEFAULT_TO
	DefaultTo string `env:"DEFAULT_TO"`
}

// Storage groups the configuration for the storage backends.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite data source name (a file path). The special value
	// ":memory:" keeps the session in process memory only.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Adapter holds configuration for the outbound HTTP collaborators.
type Adapter struct {
	// AuthAddress is the base URL of the login/register backend.
	// Env: ADAPTER_AUTH_ADDRESS
	AuthAddress string `env:"AUTH_ADDRESS"`

	// RatesAddress is the base URL of the exchange-rate provider.
	// Env: ADAPTER_RATES_ADDRESS
	RatesAddress string `env:"RATES_ADDRESS"`

	// RequestTimeout bounds every outbound request (e.g. "10s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// RateRefreshInterval is how often the converter re-fetches the current
	// rate. Zero disables the refresh job.
	// Env: WORKERS_RATE_REFRESH_INTERVAL
	RateRefreshInterval time.Duration `env:"RATE_REFRESH_INTERVAL"`
}

// Defaults used when no source sets a value.
const (
	DefaultAuthAddress    = "http://localhost:8080"
	DefaultRatesAddress   = "https://api.exchangerate-api.com/v4"
	DefaultRequestTimeout = 10 * time.Second
	DefaultDSN            = "currency-converter.db"
	DefaultAmount         = "100"
	DefaultFrom           = "USD"
	DefaultTo             = "EUR"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			DefaultAmount: DefaultAmount,
			DefaultFrom:   DefaultFrom,
			DefaultTo:     DefaultTo,
		},
		Storage: Storage{DB: DB{DSN: DefaultDSN}},
		Adapter: Adapter{
			AuthAddress:    DefaultAuthAddress,
			RatesAddress:   DefaultRatesAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
	}
}

// GetStructuredConfig loads and merges the configuration from all available
// sources in the following priority order (last source wins for non-zero
// fields):
//  1. Built-in defaults
//  2. The .env file in the working directory, if any
//  3. Environment variables
//  4. Command-line flags (os.Args)
//  5. JSON file (path resolved from sources 2 to 4)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withDotEnv(DotEnvFileName).
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
