package adapter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-currency-converter/internal/config"
	"github.com/MKhiriev/go-currency-converter/internal/logger"
	"github.com/MKhiriev/go-currency-converter/internal/utils"
	"github.com/MKhiriev/go-currency-converter/models"
)

type httpAuthAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPAuthAdapter constructs the REST implementation of [AuthAdapter]
// against adapterCfg.AuthAddress.
//
// Returns an error if the address is empty or cannot be parsed as a URL.
func NewHTTPAuthAdapter(adapterCfg config.ClientAdapter, log *logger.Logger) (AuthAdapter, error) {
	client, err := utils.NewHTTPClient(adapterCfg.AuthAddress, adapterCfg.RequestTimeout)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter auth address: %w", err)
	}

	return &httpAuthAdapter{client: client, logger: log.Component("auth_adapter")}, nil
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login implements [AuthAdapter].
func (h *httpAuthAdapter) Login(ctx context.Context, creds models.Credentials) (models.LoginResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(loginRequest{Username: creds.Username, Password: creds.Password}).
		Post("/api/login")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().Int("status", resp.StatusCode()).Str("username", creds.Username).Msg("login rejected")
		return models.LoginResponse{}, err
	}

	var lr models.LoginResponse
	if err = json.Unmarshal(resp.Body(), &lr); err != nil {
		return models.LoginResponse{}, fmt.Errorf("decode login response: %w: %w", ErrMalformedResponse, err)
	}

	return lr, nil
}

// Register implements [AuthAdapter].
func (h *httpAuthAdapter) Register(ctx context.Context, creds models.Credentials) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		Post("/api/register")
	if err != nil {
		return fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().Int("status", resp.StatusCode()).Str("username", creds.Username).Msg("register rejected")
		return err
	}

	return nil
}
