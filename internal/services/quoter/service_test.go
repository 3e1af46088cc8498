package quoter

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hxuan190/swap-gateway/internal/config"
	"github.com/hxuan190/swap-gateway/internal/domain"
	"github.com/hxuan190/swap-gateway/internal/services/lifi"
	"github.com/hxuan190/swap-gateway/internal/services/wallet"
)

type fakeFetcher struct {
	mu       sync.Mutex
	requests []lifi.RoutesRequest
	routes   []lifi.Route
	err      error
	// onCall runs inside GetRoutes before returning, letting tests
	// interleave a competing request.
	onCall func()
}

func (f *fakeFetcher) GetRoutes(_ context.Context, req lifi.RoutesRequest) ([]lifi.Route, error) {
	f.mu.Lock()
	f.requests = append(f.requests, req)
	f.mu.Unlock()
	if f.onCall != nil {
		f.onCall()
	}
	return f.routes, f.err
}

func newTestService(fetcher *fakeFetcher) *Service {
	svc := &Service{
		client:  fetcher,
		wallets: wallet.NewRegistry(),
		conf:    &config.AggregatorConfig{DefaultSlippage: 0.03},
	}
	svc.settings = domain.DefaultSettings(nil, nil)
	return svc
}

func quoteParams(amount string) QuoteParams {
	from, to := testTokens()
	return QuoteParams{FromToken: from, ToToken: to, FromAmount: amount}
}

func TestGetRoutesZeroAmountSkipsNetwork(t *testing.T) {
	fetcher := &fakeFetcher{}
	svc := newTestService(fetcher)

	for _, amount := range []string{"", "0", "0.0", "-1"} {
		res, err := svc.GetRoutes(context.Background(), quoteParams(amount))
		require.NoError(t, err, "amount %q", amount)
		assert.NotNil(t, res.Routes, "amount %q", amount)
		assert.Empty(t, res.Routes, "amount %q", amount)
	}
	assert.Empty(t, fetcher.requests, "no network call may be issued for empty amounts")
}

func TestGetRoutesNormalizesAndTags(t *testing.T) {
	fetcher := &fakeFetcher{routes: []lifi.Route{
		{ID: "r1", ToAmount: "1000000", FromAmountUSD: "100", ToAmountUSD: "105"},
		{ID: "r2", ToAmount: "990000", Tags: []string{"FASTEST"}},
	}}
	svc := newTestService(fetcher)

	res, err := svc.GetRoutes(context.Background(), quoteParams("1"))
	require.NoError(t, err)
	require.Len(t, res.Routes, 2)

	assert.Contains(t, res.Routes[0].Tags, domain.TagBestReturn)
	assert.Contains(t, res.Routes[1].Tags, domain.TagFastest)
	assert.Equal(t, "+5.00%", res.Routes[0].PercentageDiff)

	require.Len(t, fetcher.requests, 1)
	req := fetcher.requests[0]
	assert.Equal(t, "1000000000000000000", req.FromAmount, "amount must be converted to base units")
	assert.Equal(t, lifi.OrderRecommended, req.Options.Order)
	assert.Equal(t, 0.03, req.Options.Slippage)
	assert.Equal(t, "0x0000000000000000000000000000000000000000", req.FromAddress, "EVM placeholder expected when caller omits address")
}

func TestGetRoutesUpstreamErrorPropagates(t *testing.T) {
	fetcher := &fakeFetcher{err: errors.New("aggregator down")}
	svc := newTestService(fetcher)

	_, err := svc.GetRoutes(context.Background(), quoteParams("1"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "aggregator down")
}

func TestGetRoutesInvalidFromAddress(t *testing.T) {
	fetcher := &fakeFetcher{}
	svc := newTestService(fetcher)

	params := quoteParams("1")
	params.FromAddress = "definitely-not-an-address"
	_, err := svc.GetRoutes(context.Background(), params)

	var invalid *InvalidParamsError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "fromAddress", invalid.Field)
	assert.Empty(t, fetcher.requests)
}

// When a newer request is issued while an older one is in flight, the
// older response is marked stale and carries no routes: the most
// recently requested input always wins.
func TestGetRoutesStaleResponseDiscarded(t *testing.T) {
	fetcher := &fakeFetcher{routes: []lifi.Route{{ID: "old"}}}
	svc := newTestService(fetcher)

	fired := false
	fetcher.onCall = func() {
		if !fired {
			fired = true
			// A competing request claims a newer sequence number
			// before the first response is processed.
			svc.seq.Add(1)
		}
	}

	res, err := svc.GetRoutes(context.Background(), quoteParams("1"))
	require.NoError(t, err)
	assert.True(t, res.Stale)
	assert.Empty(t, res.Routes)
}

func TestSettingsRestrictTools(t *testing.T) {
	fetcher := &fakeFetcher{routes: []lifi.Route{}}
	svc := newTestService(fetcher)

	svc.UpdateSettings(domain.SwapSettings{
		RoutePriority:    domain.PriorityBest,
		Slippage:         domain.Slippage{Value: 0.01},
		EnabledBridges:   []string{"stargate"},
		EnabledExchanges: []string{"uniswap", "sushiswap"},
	})

	_, err := svc.GetRoutes(context.Background(), quoteParams("1"))
	require.NoError(t, err)

	require.Len(t, fetcher.requests, 1)
	opts := fetcher.requests[0].Options
	assert.Equal(t, 0.01, opts.Slippage)
	require.NotNil(t, opts.Bridges)
	assert.Equal(t, []string{"stargate"}, opts.Bridges.Allow)
	require.NotNil(t, opts.Exchanges)
	assert.Equal(t, []string{"uniswap", "sushiswap"}, opts.Exchanges.Allow)
}

func TestDefaultSettingsLeaveToolsUnrestricted(t *testing.T) {
	fetcher := &fakeFetcher{routes: []lifi.Route{}}
	svc := newTestService(fetcher)

	_, err := svc.GetRoutes(context.Background(), quoteParams("1"))
	require.NoError(t, err)

	require.Len(t, fetcher.requests, 1)
	opts := fetcher.requests[0].Options
	assert.Nil(t, opts.Bridges)
	assert.Nil(t, opts.Exchanges)
}
