package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    *StructuredConfig
		wantErr bool
	}{
		{
			name: "no flags",
			args: nil,
			want: &StructuredConfig{},
		},
		{
			name: "all flags",
			args: []string{
				"-auth-address", "http://auth.local",
				"-rates-address", "http://rates.local",
				"-request-timeout", "5s",
				"-d", "local.db",
				"-refresh-interval", "30s",
				"-amount", "12.5",
				"-from", "eur",
				"-to", "inr",
				"-c", "cfg.json",
			},
			want: &StructuredConfig{
				App: App{DefaultAmount: "12.5", DefaultFrom: "eur", DefaultTo: "inr"},
				Storage: Storage{DB: DB{DSN: "local.db"}},
				Adapter: Adapter{
					AuthAddress:    "http://auth.local",
					RatesAddress:   "http://rates.local",
					RequestTimeout: 5 * time.Second,
				},
				Workers:      Workers{RateRefreshInterval: 30 * time.Second},
				JSONFilePath: "cfg.json",
			},
		},
		{
			name: "config alias",
			args: []string{"-config", "alias.json"},
			want: &StructuredConfig{JSONFilePath: "alias.json"},
		},
		{
			name:    "bad duration",
			args:    []string{"-request-timeout", "fast"},
			wantErr: true,
		},
		{
			name:    "unknown flag",
			args:    []string{"-a", "localhost:8080"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseFlags(tt.args)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, cfg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg)
		})
	}
}
