package tracker

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/hxuan190/swap-gateway/internal/domain"
)

// fakeClock fires instantly so tests never sleep.
func fakeClock(time.Duration) <-chan time.Time {
	ch := make(chan time.Time, 1)
	ch <- time.Time{}
	return ch
}

func newTestTracker(status StatusFunc) *Tracker {
	tr := New(status)
	tr.after = fakeClock
	return tr
}

func TestWaitForConfirmationStopsOnTerminal(t *testing.T) {
	calls := 0
	tr := newTestTracker(func(ctx context.Context, txID string) domain.AleoTransactionStatus {
		calls++
		if calls < 3 {
			return domain.AleoTransactionStatus{Status: domain.TxStatusPending}
		}
		return domain.AleoTransactionStatus{Status: domain.TxStatusConfirmed}
	})

	st := tr.WaitForConfirmation(context.Background(), "at1abc")
	assert.Equal(t, domain.TxStatusConfirmed, st.Status)
	assert.Equal(t, 3, calls)
}

func TestWaitForConfirmationStopsOnFailure(t *testing.T) {
	tr := newTestTracker(func(ctx context.Context, txID string) domain.AleoTransactionStatus {
		return domain.AleoTransactionStatus{Status: domain.TxStatusFailed}
	})

	st := tr.WaitForConfirmation(context.Background(), "at1abc")
	assert.Equal(t, domain.TxStatusFailed, st.Status)
}

func TestWaitForConfirmationTimesOut(t *testing.T) {
	calls := 0
	tr := newTestTracker(func(ctx context.Context, txID string) domain.AleoTransactionStatus {
		calls++
		return domain.AleoTransactionStatus{Status: domain.TxStatusPending}
	})
	tr.MaxAttempts = 5

	st := tr.WaitForConfirmation(context.Background(), "at1abc")
	assert.Equal(t, domain.TxStatusUnknown, st.Status)
	assert.Equal(t, "Timeout waiting for confirmation", st.Error)
	assert.Empty(t, st.Message)
	assert.Equal(t, 5, calls)
}

func TestWaitForConfirmationHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	tr := New(func(ctx context.Context, txID string) domain.AleoTransactionStatus {
		calls++
		cancel()
		return domain.AleoTransactionStatus{Status: domain.TxStatusPending}
	})
	// Real timer here; cancellation must win the select before it
	// fires.
	tr.Interval = time.Hour

	st := tr.WaitForConfirmation(ctx, "at1abc")
	assert.Equal(t, domain.TxStatusUnknown, st.Status)
	assert.Equal(t, context.Canceled.Error(), st.Error)
	assert.Equal(t, 1, calls)
}

func TestZeroValueDefaults(t *testing.T) {
	tr := &Tracker{
		Status: func(ctx context.Context, txID string) domain.AleoTransactionStatus {
			return domain.AleoTransactionStatus{Status: domain.TxStatusConfirmed}
		},
	}
	st := tr.WaitForConfirmation(context.Background(), "at1abc")
	assert.Equal(t, domain.TxStatusConfirmed, st.Status)
}
