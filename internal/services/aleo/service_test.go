package aleo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hxuan190/swap-gateway/internal/config"
	"github.com/hxuan190/swap-gateway/internal/domain"
)

func newTestService(explorerURL string) *Service {
	conf := &config.BridgeConfig{
		ExplorerURL:   explorerURL,
		Network:       "testnet",
		RouterProgram: "aleo_jumper_router.aleo",
		BridgeProgram: "aleo_jumper_bridge.aleo",
	}
	return &Service{
		conf:      conf,
		http:      &http.Client{Timeout: 5 * time.Second},
		oracle:    NewStaticOracle(""),
		merchants: NewStaticMerchantRegistry(),
		builder:   NewTxBuilder(conf.RouterProgram, conf.BridgeProgram),
		now:       func() time.Time { return time.UnixMilli(1_700_000_000_000) },
	}
}

func TestQuoteRejectsNonAleoRoute(t *testing.T) {
	svc := newTestService("http://unused")

	_, err := svc.Quote(context.Background(), QuoteRequest{
		FromChain: "ethereum",
		ToChain:   "polygon",
		FromToken: "ETH",
		ToToken:   "MATIC",
		Amount:    "1",
	})
	require.Error(t, err)
	assert.ErrorAs(t, err, &ErrNotAleoRoute{})
}

func TestQuoteFeeBreakdown(t *testing.T) {
	svc := newTestService("http://unused")

	q, err := svc.Quote(context.Background(), QuoteRequest{
		FromChain: "aleo",
		ToChain:   "ethereum",
		FromToken: "ALEO",
		ToToken:   "USDC",
		Amount:    "100",
	})
	require.NoError(t, err)

	// 100 credits: 0.5 platform (50 bps), 0.1 bridge (0.1%), 0.1 gas.
	assert.Equal(t, "0.500000", q.Fees.PlatformFee)
	assert.Equal(t, 50, q.Fees.PlatformFeeBps)
	assert.Equal(t, "0.100000", q.Fees.BridgeFee)
	assert.Equal(t, "0.100000", q.Fees.GasFee)
	assert.Equal(t, "0.700000", q.Fees.TotalFee)

	// net 99.3 at the ALEO->USDC demo rate 1.5.
	assert.Equal(t, "148.950000", q.ToAmount)
	assert.Equal(t, "15-20 minutes", q.EstimatedTime)
	assert.Equal(t, int64(1_700_000_000_000+60_000), q.ValidUntil)
	assert.Equal(t, "aleo-quote-1700000000000", q.ID)
}

func TestQuoteCaseInsensitiveChainAndDirection(t *testing.T) {
	svc := newTestService("http://unused")

	q, err := svc.Quote(context.Background(), QuoteRequest{
		FromChain: "ethereum",
		ToChain:   "Aleo",
		FromToken: "ETH",
		ToToken:   "ALEO",
		Amount:    "1",
	})
	require.NoError(t, err)

	assert.Equal(t, "10-15 minutes", q.EstimatedTime)

	// Destination-side aleo gets the auto-claim step.
	steps := q.Route.Steps
	require.Len(t, steps, 3)
	assert.Equal(t, domain.StepTypeSwap, steps[0].Type)
	assert.Equal(t, domain.StepTypeBridge, steps[1].Type)
	assert.Equal(t, "Verulink", steps[1].Provider)
	assert.Equal(t, "claim", steps[2].Type)
}

func TestQuoteRejectsBadAmount(t *testing.T) {
	svc := newTestService("http://unused")

	for _, amount := range []string{"", "abc", "0", "-5"} {
		_, err := svc.Quote(context.Background(), QuoteRequest{
			FromChain: "aleo",
			ToChain:   "ethereum",
			FromToken: "ALEO",
			ToToken:   "ETH",
			Amount:    amount,
		})
		assert.Error(t, err, "amount %q", amount)
	}
}

func TestTransactionStatusConfirmed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/testnet/transaction/at1abc", r.URL.Path)
		w.Write([]byte(`{"status":"confirmed","block_height":42,"timestamp":"2026-01-01T00:00:00Z","fee":"0.1"}`))
	}))
	defer srv.Close()

	svc := newTestService(srv.URL)
	st := svc.TransactionStatus(context.Background(), "at1abc")

	assert.Equal(t, domain.TxStatusConfirmed, st.Status)
	assert.Equal(t, uint64(42), st.BlockHeight)
	assert.True(t, st.Terminal())
}

func TestTransactionStatusNotIndexedIsPending(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	svc := newTestService(srv.URL)
	st := svc.TransactionStatus(context.Background(), "at1missing")

	assert.Equal(t, domain.TxStatusPending, st.Status)
	assert.Equal(t, "Transaction not yet indexed", st.Message)
	assert.False(t, st.Terminal())
}

func TestTransactionStatusTransportErrorIsUnknown(t *testing.T) {
	svc := newTestService("http://127.0.0.1:1")
	st := svc.TransactionStatus(context.Background(), "at1abc")

	assert.Equal(t, domain.TxStatusUnknown, st.Status)
	assert.NotEmpty(t, st.Error)
}

func TestTransactionStatusDefaultsToConfirmed(t *testing.T) {
	// Indexed records without an explicit status field count as
	// confirmed.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"block_height":7}`))
	}))
	defer srv.Close()

	svc := newTestService(srv.URL)
	st := svc.TransactionStatus(context.Background(), "at1abc")
	assert.Equal(t, domain.TxStatusConfirmed, st.Status)
}

func TestRequestRelay(t *testing.T) {
	svc := newTestService("http://unused")

	job := svc.RequestRelay(context.Background(), RelayerRequest{
		AleoTxID:           "at1abc",
		DestinationChain:   "ethereum",
		DestinationAddress: "0x742d35Cc6634C0532925a3b844Bc9e7595f0bEb0",
		Amount:             "10",
	})

	assert.Equal(t, "queued", job.Status)
	assert.Equal(t, "0.005 ETH", job.EstimatedGasCost)
	assert.Equal(t, "relay-1700000000000", job.RelayerJobID)

	completion, err := time.Parse(time.RFC3339, job.EstimatedCompletion)
	require.NoError(t, err)
	assert.Equal(t, time.UnixMilli(1_700_000_000_000).Add(15*time.Minute).UTC(), completion.UTC())

	job = svc.RequestRelay(context.Background(), RelayerRequest{
		AleoTxID:         "at1def",
		DestinationChain: "polygon",
		Amount:           "10",
	})
	assert.Equal(t, "0.001 MATIC", job.EstimatedGasCost)
}

func TestMerchants(t *testing.T) {
	svc := newTestService("http://unused")

	merchants := svc.Merchants(context.Background())
	require.Len(t, merchants, 2)
	assert.True(t, merchants[0].Active)

	// Mutating the returned slice must not leak into the registry.
	merchants[0].Name = "mutated"
	assert.NotEqual(t, "mutated", svc.Merchants(context.Background())[0].Name)
}

func TestBuildTransactionsInheritNetwork(t *testing.T) {
	svc := newTestService("http://unused")

	tx, err := svc.BuildSwapTransaction(SwapParams{
		Amount:          "1",
		MerchantAddress: "aleo1merchant1000000000000000000000000000000000000000000000000",
		CallerAddress:   "aleo1caller",
	})
	require.NoError(t, err)
	assert.Equal(t, "testnet", tx.ChainID)
}
