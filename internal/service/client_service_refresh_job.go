package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-currency-converter/internal/logger"
	"github.com/MKhiriev/go-currency-converter/models"
)

type rateRefreshJob struct {
	converter ConversionViewModel
	logger    *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewRateRefreshJob creates a job that calls converter.Recompute on a ticker.
// The job is idle until Start is called.
func NewRateRefreshJob(converter ConversionViewModel, log *logger.Logger) RateRefreshJob {
	return &rateRefreshJob{converter: converter, logger: log.Component("rate_refresh")}
}

// Start implements RateRefreshJob. The goroutine exits when ctx is cancelled
// or Stop is called.
func (j *rateRefreshJob) Start(ctx context.Context, interval time.Duration, notify func(models.ConversionResult)) {
	j.Stop()

	if interval <= 0 {
		j.logger.Debug().Msg("rate refresh disabled")
		return
	}

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	j.logger.Debug().Dur("interval", interval).Msg("rate refresh started")

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				result := j.converter.Recompute(jobCtx)
				if jobCtx.Err() != nil {
					return
				}
				if notify != nil {
					notify(result)
				}
			}
		}
	}()
}

// Stop implements RateRefreshJob. It cancels the background goroutine's
// context and blocks until the goroutine has fully exited.
func (j *rateRefreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
