package adapter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-currency-converter/internal/config"
	"github.com/MKhiriev/go-currency-converter/internal/logger"
	"github.com/MKhiriev/go-currency-converter/internal/utils"
	"github.com/MKhiriev/go-currency-converter/models"
	"golang.org/x/sync/singleflight"
)

type httpRateAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger

	// concurrent lookups for the same base share one request
	inflight singleflight.Group
}

// NewHTTPRateAdapter constructs the REST implementation of [RateAdapter]
// against adapterCfg.RatesAddress (e.g. "https://api.exchangerate-api.com/v4").
func NewHTTPRateAdapter(adapterCfg config.ClientAdapter, log *logger.Logger) (RateAdapter, error) {
	client, err := utils.NewHTTPClient(adapterCfg.RatesAddress, adapterCfg.RequestTimeout)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter rates address: %w", err)
	}

	return &httpRateAdapter{client: client, logger: log.Component("rate_adapter")}, nil
}

// Latest implements [RateAdapter]. Callers asking for the same base while a
// request is in flight receive its result. The shared request is detached
// from any single caller's ctx and bounded by the client timeout; each caller
// still stops waiting when its own ctx is done.
func (h *httpRateAdapter) Latest(ctx context.Context, base models.Currency) (models.RateTable, error) {
	if err := ctx.Err(); err != nil {
		return models.RateTable{}, fmt.Errorf("latest rates request: %w", err)
	}

	detached := context.WithoutCancel(ctx)
	ch := h.inflight.DoChan(string(base), func() (any, error) {
		return h.fetch(detached, base)
	})

	select {
	case <-ctx.Done():
		return models.RateTable{}, fmt.Errorf("latest rates request: %w", ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return models.RateTable{}, res.Err
		}
		if res.Shared {
			h.logger.Debug().Str("base", string(base)).Msg("joined in-flight rate lookup")
		}
		return res.Val.(models.RateTable), nil
	}
}

func (h *httpRateAdapter) fetch(ctx context.Context, base models.Currency) (models.RateTable, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("base", string(base)).
		Get("/latest/{base}")
	if err != nil {
		return models.RateTable{}, fmt.Errorf("latest rates request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RateTable{}, err
	}

	var table models.RateTable
	if err = json.Unmarshal(resp.Body(), &table); err != nil {
		return models.RateTable{}, fmt.Errorf("decode latest rates: %w: %w", ErrMalformedResponse, err)
	}
	if table.Rates == nil {
		return models.RateTable{}, fmt.Errorf("decode latest rates: %w: no rates", ErrMalformedResponse)
	}

	h.logger.Debug().
		Str("base", string(base)).
		Str("date", table.Date).
		Int("rates", len(table.Rates)).
		Msg("fetched latest rates")

	return table, nil
}
