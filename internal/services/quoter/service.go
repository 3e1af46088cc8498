// Package quoter turns raw aggregator route lists into the gateway's
// normalized, tagged representation and owns the per-session quoting
// settings.
package quoter

import (
	"context"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
	container "github.com/thehyperflames/dicontainer-go"

	"github.com/hxuan190/swap-gateway/internal/config"
	"github.com/hxuan190/swap-gateway/internal/domain"
	"github.com/hxuan190/swap-gateway/internal/metrics"
	"github.com/hxuan190/swap-gateway/internal/services/lifi"
	"github.com/hxuan190/swap-gateway/internal/services/wallet"
	"github.com/hxuan190/swap-gateway/internal/units"
)

const QUOTER_SERVICE = "quoter-service"

// QuoteParams is the normalized quoting input collected from a caller.
// FromAmount is in human-decimal units of FromToken.
type QuoteParams struct {
	FromToken   domain.Token
	ToToken     domain.Token
	FromAmount  string
	FromAddress string
	Slippage    float64
}

// RoutesResult carries the normalized routes for one request. Stale is
// set when a newer request superseded this one before its response
// arrived; stale results carry no routes and must not be displayed.
type RoutesResult struct {
	Routes []domain.SwapRoute `json:"routes"`
	Stale  bool               `json:"-"`
}

// routeFetcher is the slice of the aggregator client the quoter needs.
type routeFetcher interface {
	GetRoutes(ctx context.Context, req lifi.RoutesRequest) ([]lifi.Route, error)
}

type Service struct {
	container.BaseDIInstance

	mu       sync.RWMutex
	settings domain.SwapSettings

	// seq orders concurrent quote requests so the most recently issued
	// one wins regardless of response arrival order.
	seq atomic.Uint64

	client  routeFetcher
	wallets *wallet.Registry
	conf    *config.AggregatorConfig
}

func (svc *Service) ID() string {
	return QUOTER_SERVICE
}

func (svc *Service) Configure(c container.IContainer) error {
	svc.conf = c.GetConfig(config.AGGREGATOR_CONFIG_KEY).(*config.AggregatorConfig)
	svc.client = lifi.NewClient(svc.conf.BaseURL, time.Duration(svc.conf.RequestTimeout)*time.Second)
	svc.wallets = wallet.NewRegistry()
	svc.settings = domain.DefaultSettings(nil, nil)
	return nil
}

func (svc *Service) Start() error { return nil }
func (svc *Service) Stop() error  { return nil }

// Settings returns a copy of the current session settings.
func (svc *Service) Settings() domain.SwapSettings {
	svc.mu.RLock()
	defer svc.mu.RUnlock()
	return svc.settings
}

// UpdateSettings replaces the session settings. Only explicit caller
// actions reach this; quoting itself never mutates settings.
func (svc *Service) UpdateSettings(s domain.SwapSettings) {
	svc.mu.Lock()
	svc.settings = s
	svc.mu.Unlock()
	log.Info().
		Str("routePriority", s.RoutePriority).
		Int("bridges", len(s.EnabledBridges)).
		Int("exchanges", len(s.EnabledExchanges)).
		Msg("[quoterService] settings updated")
}

// GetRoutes fetches, normalizes and tags candidate routes. An absent,
// zero or non-positive amount is the "nothing to quote yet" state: it
// returns an empty result with no error and no network call.
func (svc *Service) GetRoutes(ctx context.Context, params QuoteParams) (RoutesResult, error) {
	started := time.Now()

	baseAmount := units.ToBaseUnits(params.FromAmount, params.FromToken.Decimals)
	if params.FromAmount == "" || baseAmount == "0" || !positiveAmount(params.FromAmount) {
		return RoutesResult{Routes: []domain.SwapRoute{}}, nil
	}

	req, err := svc.buildRequest(params, baseAmount)
	if err != nil {
		metrics.RouteRequests.WithLabelValues("invalid").Inc()
		return RoutesResult{}, err
	}

	mine := svc.seq.Add(1)

	raw, err := svc.client.GetRoutes(ctx, req)
	if err != nil {
		metrics.RouteRequests.WithLabelValues("error").Inc()
		log.Error().Err(err).
			Str("fromChain", params.FromToken.ChainID).
			Str("toChain", params.ToToken.ChainID).
			Msg("[quoterService] aggregator request failed")
		return RoutesResult{}, err
	}

	if svc.seq.Load() != mine {
		metrics.StaleResponses.Inc()
		log.Debug().Uint64("seq", mine).Msg("[quoterService] discarding stale response")
		return RoutesResult{Stale: true}, nil
	}

	routes := NormalizeRoutes(raw, params.FromToken, params.ToToken, params.FromAmount)
	TagRoutes(routes, raw)

	metrics.RouteRequests.WithLabelValues("ok").Inc()
	metrics.RouteDuration.Observe(time.Since(started).Seconds())
	metrics.RoutesReturned.Observe(float64(len(routes)))

	return RoutesResult{Routes: routes}, nil
}

func (svc *Service) buildRequest(params QuoteParams, baseAmount string) (lifi.RoutesRequest, error) {
	fromChain, err := strconv.Atoi(params.FromToken.ChainID)
	if err != nil {
		return lifi.RoutesRequest{}, &InvalidParamsError{Field: "fromToken.chainId", Value: params.FromToken.ChainID}
	}
	toChain, err := strconv.Atoi(params.ToToken.ChainID)
	if err != nil {
		return lifi.RoutesRequest{}, &InvalidParamsError{Field: "toToken.chainId", Value: params.ToToken.ChainID}
	}

	fromAddress := params.FromAddress
	if fromAddress == "" {
		if adapter, aerr := svc.wallets.ForChain(params.FromToken.ChainID); aerr == nil {
			fromAddress = adapter.PlaceholderAddress()
		}
	} else if verr := svc.wallets.Validate(params.FromToken.ChainID, fromAddress); verr != nil {
		return lifi.RoutesRequest{}, &InvalidParamsError{Field: "fromAddress", Value: fromAddress}
	}

	svc.mu.RLock()
	settings := svc.settings
	svc.mu.RUnlock()

	slippage := params.Slippage
	if slippage <= 0 {
		slippage = settings.Slippage.Fraction(svc.conf.DefaultSlippage)
	}

	options := lifi.RouteOptions{
		Slippage: slippage,
		Order:    lifi.OrderRecommended,
	}
	if len(settings.EnabledBridges) > 0 {
		options.Bridges = &lifi.Allowed{Allow: settings.EnabledBridges}
	}
	if len(settings.EnabledExchanges) > 0 {
		options.Exchanges = &lifi.Allowed{Allow: settings.EnabledExchanges}
	}

	return lifi.RoutesRequest{
		FromChainID:      fromChain,
		ToChainID:        toChain,
		FromTokenAddress: params.FromToken.Address,
		ToTokenAddress:   params.ToToken.Address,
		FromAmount:       baseAmount,
		FromAddress:      fromAddress,
		Options:          options,
	}, nil
}

func positiveAmount(amount string) bool {
	f, err := strconv.ParseFloat(amount, 64)
	return err == nil && f > 0
}

// InvalidParamsError marks caller input the HTTP layer should reject
// as a bad request rather than an upstream failure.
type InvalidParamsError struct {
	Field string
	Value string
}

func (e *InvalidParamsError) Error() string {
	return "invalid " + e.Field + ": " + e.Value
}
