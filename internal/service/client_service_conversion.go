package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/MKhiriev/go-currency-converter/internal/adapter"
	"github.com/MKhiriev/go-currency-converter/internal/logger"
	"github.com/MKhiriev/go-currency-converter/models"
	"github.com/shopspring/decimal"
)

// Display precision.
const (
	AmountPlaces = 2
	RatePlaces   = 4
)

type conversionViewModel struct {
	rates  adapter.RateAdapter
	logger *logger.Logger

	mu     sync.Mutex
	req    models.ConversionRequest
	result models.ConversionResult
	gen    uint64
}

// NewConversionViewModel returns a view model holding initial. No lookup is
// made until Recompute is called.
func NewConversionViewModel(rates adapter.RateAdapter, initial models.ConversionRequest, log *logger.Logger) ConversionViewModel {
	vm := &conversionViewModel{
		rates:  rates,
		logger: log.Component("converter"),
		req:    initial,
	}
	vm.invalidateLocked()
	return vm
}

func (vm *conversionViewModel) Reset(req models.ConversionRequest) uint64 {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	vm.req = req
	vm.result = models.ConversionResult{}
	return vm.invalidateLocked()
}

func (vm *conversionViewModel) SetAmount(amount string) uint64 {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	vm.req.Amount = amount
	return vm.invalidateLocked()
}

func (vm *conversionViewModel) SetFrom(c models.Currency) uint64 {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	vm.req.From = c
	return vm.invalidateLocked()
}

func (vm *conversionViewModel) SetTo(c models.Currency) uint64 {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	vm.req.To = c
	return vm.invalidateLocked()
}

func (vm *conversionViewModel) Swap() uint64 {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	vm.req.From, vm.req.To = vm.req.To, vm.req.From
	return vm.invalidateLocked()
}

// invalidateLocked starts a new generation. The previous rate and amount
// stay visible while the next lookup is loading. An empty amount has nothing
// to convert, so the result is reset to idle.
func (vm *conversionViewModel) invalidateLocked() uint64 {
	vm.gen++

	if strings.TrimSpace(vm.req.Amount) == "" {
		vm.result = models.ConversionResult{Status: models.StatusIdle}
		return vm.gen
	}

	vm.result.Status = models.StatusLoading
	vm.result.Err = nil
	return vm.gen
}

func (vm *conversionViewModel) Recompute(ctx context.Context) models.ConversionResult {
	vm.mu.Lock()
	gen := vm.invalidateLocked()
	req := vm.req
	if vm.result.Status == models.StatusIdle {
		result := vm.result
		vm.mu.Unlock()
		return result
	}
	vm.mu.Unlock()

	rate, found, err := vm.lookup(ctx, req)

	vm.mu.Lock()
	defer vm.mu.Unlock()

	if gen != vm.gen {
		vm.logger.Debug().
			Uint64("generation", gen).
			Uint64("current", vm.gen).
			Msg("dropping stale rate lookup")
		return vm.result
	}

	if err != nil {
		vm.logger.Warn().Err(err).Str("from", string(req.From)).Str("to", string(req.To)).Msg("rate lookup failed")
		vm.result.Status = models.StatusFailed
		vm.result.Err = &LookupError{From: string(req.From), To: string(req.To), Err: err}
		return vm.result
	}

	if !found {
		vm.result = models.ConversionResult{
			Rate:            decimal.NullDecimal{},
			ConvertedAmount: models.NotANumber,
			Status:          models.StatusReady,
			Request:         req,
		}
		return vm.result
	}

	vm.result = models.ConversionResult{
		Rate:            decimal.NewNullDecimal(rate),
		ConvertedAmount: convert(req.Amount, rate),
		Status:          models.StatusReady,
		Request:         req,
	}
	return vm.result
}

// lookup returns the from->to rate. found is false when the provider table
// has no entry for the target currency.
func (vm *conversionViewModel) lookup(ctx context.Context, req models.ConversionRequest) (rate decimal.Decimal, found bool, err error) {
	if req.From == req.To {
		return decimal.NewFromInt(1), true, nil
	}

	table, err := vm.rates.Latest(ctx, req.From)
	if err != nil {
		return decimal.Decimal{}, false, err
	}

	f, ok := table.Rate(req.To)
	if !ok {
		vm.logger.Warn().Str("from", string(req.From)).Str("to", string(req.To)).Msg("rate table has no entry for target currency")
		return decimal.Decimal{}, false, nil
	}
	return decimal.NewFromFloat(f), true, nil
}

// convert multiplies amount by rate and rounds half-to-even to two places.
// A non-numeric amount yields [models.NotANumber].
func convert(amount string, rate decimal.Decimal) string {
	a, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		return models.NotANumber
	}
	return a.Mul(rate).StringFixedBank(AmountPlaces)
}

func (vm *conversionViewModel) Request() models.ConversionRequest {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.req
}

func (vm *conversionViewModel) Result() models.ConversionResult {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.result
}

func (vm *conversionViewModel) Generation() uint64 {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.gen
}

func (vm *conversionViewModel) FormatRate() string {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	if !vm.result.Rate.Valid {
		return ""
	}
	pair := vm.result.Request
	return fmt.Sprintf("1 %s = %s %s", pair.From, vm.result.Rate.Decimal.StringFixed(RatePlaces), pair.To)
}
