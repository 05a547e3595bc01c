package utils

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
// Every request it sends carries a fresh [RequestIDHeader].
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client bound to address with the given timeout.
// address may omit the scheme ("localhost:8080"), in which case http is used.
// A trailing slash is dropped so paths can be joined with a leading "/".
func NewHTTPClient(address string, timeout time.Duration) (*HTTPClient, error) {
	baseURL, err := NormalizeBaseURL(address)
	if err != nil {
		return nil, err
	}

	ids := NewUUIDGenerator()
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
			if req.Header.Get(RequestIDHeader) == "" {
				req.SetHeader(RequestIDHeader, ids.Generate())
			}
			return nil
		})

	return &HTTPClient{Client: client}, nil
}

// NormalizeBaseURL validates raw and returns it with a scheme and without a
// trailing slash.
func NormalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}
