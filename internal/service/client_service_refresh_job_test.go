package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-currency-converter/internal/logger"
	"github.com/MKhiriev/go-currency-converter/internal/mock"
	"github.com/MKhiriev/go-currency-converter/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type countingConverter struct {
	ConversionViewModel

	mu    sync.Mutex
	calls int
}

func (c *countingConverter) Recompute(context.Context) models.ConversionResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	return models.ConversionResult{Status: models.StatusReady, ConvertedAmount: "1.00"}
}

func (c *countingConverter) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

func TestRateRefreshJob_TicksAndNotifies(t *testing.T) {
	conv := &countingConverter{}
	job := NewRateRefreshJob(conv, logger.Nop())

	results := make(chan models.ConversionResult, 8)
	job.Start(context.Background(), 10*time.Millisecond, func(r models.ConversionResult) {
		select {
		case results <- r:
		default:
		}
	})
	defer job.Stop()

	select {
	case r := <-results:
		assert.Equal(t, models.StatusReady, r.Status)
	case <-time.After(2 * time.Second):
		t.Fatal("refresh job did not tick")
	}
}

func TestRateRefreshJob_NonPositiveIntervalIsIdle(t *testing.T) {
	conv := &countingConverter{}
	job := NewRateRefreshJob(conv, logger.Nop())

	job.Start(context.Background(), 0, nil)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	assert.Zero(t, conv.count())
}

func TestRateRefreshJob_StopWithoutStart(t *testing.T) {
	job := NewRateRefreshJob(&countingConverter{}, logger.Nop())
	assert.NotPanics(t, job.Stop)
}

// TestRateRefreshJob_StopHaltsTicks verifies that no Recompute happens once
// Stop has returned.
func TestRateRefreshJob_StopHaltsTicks(t *testing.T) {
	conv := &countingConverter{}
	job := NewRateRefreshJob(conv, logger.Nop())

	job.Start(context.Background(), 5*time.Millisecond, nil)
	require.Eventually(t, func() bool { return conv.count() > 0 }, 2*time.Second, 5*time.Millisecond)

	job.Stop()
	after := conv.count()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, conv.count())
}

func TestRateRefreshJob_ContextCancelStops(t *testing.T) {
	conv := &countingConverter{}
	job := NewRateRefreshJob(conv, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	job.Start(ctx, 5*time.Millisecond, nil)
	cancel()

	done := make(chan struct{})
	go func() {
		job.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop did not return after context cancel")
	}
}

// TestRateRefreshJob_WithConverter drives a real view model through a mocked
// rate provider.
func TestRateRefreshJob_WithConverter(t *testing.T) {
	ctrl := gomock.NewController(t)
	rates := mock.NewMockRateAdapter(ctrl)
	rates.EXPECT().Latest(gomock.Any(), models.USD).
		Return(models.RateTable{Base: "USD", Rates: map[string]float64{"EUR": 0.9}}, nil).
		MinTimes(1)

	vm := NewConversionViewModel(rates, models.DefaultConversionRequest(), logger.Nop())
	job := NewRateRefreshJob(vm, logger.Nop())

	got := make(chan models.ConversionResult, 1)
	job.Start(context.Background(), 5*time.Millisecond, func(r models.ConversionResult) {
		select {
		case got <- r:
		default:
		}
	})

	var r models.ConversionResult
	select {
	case r = <-got:
	case <-time.After(2 * time.Second):
		t.Fatal("no refresh result")
	}
	job.Stop()

	assert.Equal(t, "90.00", r.ConvertedAmount)
}
