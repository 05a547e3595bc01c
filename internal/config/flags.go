package config

import (
	"flag"
	"fmt"
	"io"
)

// parseFlags parses the client command-line flags from args.
//
// Flags:
//
//	-auth-address authentication backend base URL
//	-rates-address exchange-rate provider base URL
//	-request-timeout outbound request timeout (e.g., "10s")
//	-d database DSN
//	-refresh-interval rate refresh interval (e.g., "1m"), 0 disables
//	-amount initial amount
//	-from initial source currency
//	-to initial target currency
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	cfg := &StructuredConfig{}

	fs.StringVar(&cfg.Adapter.AuthAddress, "auth-address", "", "Authentication backend base URL")
	fs.StringVar(&cfg.Adapter.RatesAddress, "rates-address", "", "Exchange-rate provider base URL")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 10s, 1m)")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Database DSN")
	fs.DurationVar(&cfg.Workers.RateRefreshInterval, "refresh-interval", 0, "Rate refresh interval (e.g., 1m)")
	fs.StringVar(&cfg.App.DefaultAmount, "amount", "", "Initial amount")
	fs.StringVar(&cfg.App.DefaultFrom, "from", "", "Initial source currency")
	fs.StringVar(&cfg.App.DefaultTo, "to", "", "Initial target currency")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return cfg, nil
}
