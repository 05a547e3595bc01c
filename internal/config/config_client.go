package config

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-currency-converter/models"
)

// ClientApp holds the initial conversion request.
type ClientApp struct {
	DefaultAmount string
	DefaultFrom   models.Currency
	DefaultTo     models.Currency
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// AuthAddress is the login/register backend base URL.
	AuthAddress string
	// RatesAddress is the exchange-rate provider base URL.
	RatesAddress string
	// RequestTimeout is the timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite connection string used by the client.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	DB ClientDB
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// RateRefreshInterval defines how often the converter rate is refreshed.
	RateRefreshInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		App: ClientApp{
			DefaultAmount: cfg.App.DefaultAmount,
			DefaultFrom:   models.Currency(cfg.App.DefaultFrom),
			DefaultTo:     models.Currency(cfg.App.DefaultTo),
		},
		Adapter: ClientAdapter{
			AuthAddress:    cfg.Adapter.AuthAddress,
			RatesAddress:   cfg.Adapter.RatesAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
		},
		Workers: ClientWorkers{RateRefreshInterval: cfg.Workers.RateRefreshInterval},
	}

	if err := clientCfg.validate(); err != nil {
		return nil, err
	}

	return clientCfg, nil
}

// DefaultRequest returns the conversion the converter screen starts with.
func (cfg *ClientConfig) DefaultRequest() models.ConversionRequest {
	return models.ConversionRequest{
		Amount: cfg.App.DefaultAmount,
		From:   cfg.App.DefaultFrom,
		To:     cfg.App.DefaultTo,
	}
}
