// Package tracker polls bridge transaction status until it settles or
// the attempt budget runs out.
package tracker

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/hxuan190/swap-gateway/internal/domain"
	"github.com/hxuan190/swap-gateway/internal/metrics"
)

const (
	DefaultInterval    = 10 * time.Second
	DefaultMaxAttempts = 30
)

// StatusFunc looks up the current status of a transaction.
type StatusFunc func(ctx context.Context, txID string) domain.AleoTransactionStatus

// Tracker drives a fixed-interval poll loop. The zero interval and
// attempt fields get defaults so Tracker{Status: f} is usable.
type Tracker struct {
	Status      StatusFunc
	Interval    time.Duration
	MaxAttempts int

	// after is swapped for a fake timer in tests.
	after func(time.Duration) <-chan time.Time
}

func New(status StatusFunc) *Tracker {
	return &Tracker{
		Status:      status,
		Interval:    DefaultInterval,
		MaxAttempts: DefaultMaxAttempts,
		after:       time.After,
	}
}

// WaitForConfirmation polls until the status is terminal, the attempt
// budget is spent, or ctx is done. A spent budget reports unknown, not
// failed: the transaction may still settle later.
func (t *Tracker) WaitForConfirmation(ctx context.Context, txID string) domain.AleoTransactionStatus {
	interval := t.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	maxAttempts := t.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	after := t.after
	if after == nil {
		after = time.After
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		status := t.Status(ctx, txID)
		if status.Terminal() {
			metrics.PollAttempts.Observe(float64(attempt))
			metrics.PollOutcomes.WithLabelValues(status.Status).Inc()
			log.Info().
				Str("txId", txID).
				Str("status", status.Status).
				Int("attempts", attempt).
				Msg("[tracker] transaction settled")
			return status
		}

		if attempt == maxAttempts {
			break
		}
		select {
		case <-ctx.Done():
			metrics.PollAttempts.Observe(float64(attempt))
			metrics.PollOutcomes.WithLabelValues("cancelled").Inc()
			return domain.AleoTransactionStatus{
				Status: domain.TxStatusUnknown,
				Error:  ctx.Err().Error(),
			}
		case <-after(interval):
		}
	}

	metrics.PollAttempts.Observe(float64(maxAttempts))
	metrics.PollOutcomes.WithLabelValues("timeout").Inc()
	log.Warn().Str("txId", txID).Int("attempts", maxAttempts).Msg("[tracker] confirmation poll timed out")
	return domain.AleoTransactionStatus{
		Status: domain.TxStatusUnknown,
		Error:  "Timeout waiting for confirmation",
	}
}
