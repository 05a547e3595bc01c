// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-currency-converter/models"
	"github.com/shopspring/decimal"
)

// validate checks that the client configuration is usable before the
// adapters and the store are built. Currency codes are normalised in place.
func (cfg *ClientConfig) validate() error {
	if strings.TrimSpace(cfg.Storage.DB.DSN) == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.AuthAddress == "" || cfg.Adapter.RatesAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.RateRefreshInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	from, err := models.ParseCurrency(string(cfg.App.DefaultFrom))
	if err != nil {
		return fmt.Errorf("%w: default from: %w", ErrInvalidAppConfigs, err)
	}
	to, err := models.ParseCurrency(string(cfg.App.DefaultTo))
	if err != nil {
		return fmt.Errorf("%w: default to: %w", ErrInvalidAppConfigs, err)
	}
	if _, err := decimal.NewFromString(strings.TrimSpace(cfg.App.DefaultAmount)); err != nil {
		return fmt.Errorf("%w: default amount %q is not a number", ErrInvalidAppConfigs, cfg.App.DefaultAmount)
	}

	cfg.App.DefaultFrom = from
	cfg.App.DefaultTo = to
	return nil
}
