// Package catalog serves chain and token reference data, fetched from
// the upstream aggregator and cached on disk between restarts.
package catalog

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/rs/zerolog/log"
	container "github.com/thehyperflames/dicontainer-go"

	"github.com/hxuan190/swap-gateway/internal/config"
	"github.com/hxuan190/swap-gateway/internal/domain"
	"github.com/hxuan190/swap-gateway/internal/metrics"
	"github.com/hxuan190/swap-gateway/internal/services/lifi"
)

const CATALOG_SERVICE = "catalog-service"

const (
	refreshRetryInterval = 5 * time.Second
	refreshMaxTries      = 3
)

type catalogFetcher interface {
	GetChains(ctx context.Context) ([]lifi.Chain, error)
	GetTokens(ctx context.Context, chainID int) (map[string][]lifi.Token, error)
}

type Service struct {
	container.BaseDIInstance

	mu     sync.RWMutex
	chains []domain.Chain
	tokens map[int][]domain.Token

	client  catalogFetcher
	storage *Storage
	conf    *config.AggregatorConfig

	// retryInterval spaces refresh retries; tests shrink it.
	retryInterval time.Duration

	cancel context.CancelFunc
	done   chan struct{}
}

func (svc *Service) ID() string {
	return CATALOG_SERVICE
}

func (svc *Service) Configure(c container.IContainer) error {
	svc.conf = c.GetConfig(config.AGGREGATOR_CONFIG_KEY).(*config.AggregatorConfig)
	svc.client = lifi.NewClient(svc.conf.BaseURL, time.Duration(svc.conf.RequestTimeout)*time.Second)
	svc.tokens = make(map[int][]domain.Token)
	svc.retryInterval = refreshRetryInterval

	storage, err := NewStorage(svc.conf.CatalogDBPath)
	if err != nil {
		return err
	}
	svc.storage = storage
	return nil
}

// Start serves whatever the disk cache holds immediately, then keeps
// the catalog fresh in the background.
func (svc *Service) Start() error {
	svc.loadFromDisk()

	ctx, cancel := context.WithCancel(context.Background())
	svc.cancel = cancel
	svc.done = make(chan struct{})

	interval := time.Duration(svc.conf.CatalogRefreshInterval) * time.Second
	go svc.refreshLoop(ctx, interval)

	return nil
}

func (svc *Service) Stop() error {
	if svc.cancel != nil {
		svc.cancel()
		<-svc.done
	}
	if svc.storage != nil {
		return svc.storage.Close()
	}
	return nil
}

func (svc *Service) loadFromDisk() {
	chains, err := svc.storage.LoadChains()
	if err != nil {
		log.Warn().Err(err).Msg("[catalogService] failed to load cached chains")
	}
	tokens, err := svc.storage.LoadAllTokens()
	if err != nil {
		log.Warn().Err(err).Msg("[catalogService] failed to load cached tokens")
	}

	svc.mu.Lock()
	if len(chains) > 0 {
		svc.chains = chains
	}
	if len(tokens) > 0 {
		svc.tokens = tokens
	}
	svc.mu.Unlock()

	log.Info().
		Int("chains", len(chains)).
		Int("tokenChains", len(tokens)).
		Msg("[catalogService] loaded cached catalog")
}

func (svc *Service) refreshLoop(ctx context.Context, interval time.Duration) {
	defer close(svc.done)

	if err := svc.Refresh(ctx); err != nil {
		log.Error().Err(err).Msg("[catalogService] initial refresh failed, serving cached catalog")
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := svc.Refresh(ctx); err != nil {
				log.Error().Err(err).Msg("[catalogService] refresh failed, keeping previous catalog")
			}
		}
	}
}

// Refresh pulls chains and tokens from upstream, retrying transient
// failures a few times before giving up until the next tick.
func (svc *Service) Refresh(ctx context.Context) error {
	interval := svc.retryInterval
	if interval <= 0 {
		interval = refreshRetryInterval
	}
	policy := backoff.NewConstantBackOff(interval)

	chains, err := backoff.Retry(ctx, func() ([]lifi.Chain, error) {
		return svc.client.GetChains(ctx)
	}, backoff.WithBackOff(policy), backoff.WithMaxTries(refreshMaxTries))
	if err != nil {
		metrics.CatalogRefreshes.WithLabelValues("error").Inc()
		return err
	}

	tokensByChain, err := backoff.Retry(ctx, func() (map[string][]lifi.Token, error) {
		return svc.client.GetTokens(ctx, 0)
	}, backoff.WithBackOff(policy), backoff.WithMaxTries(refreshMaxTries))
	if err != nil {
		metrics.CatalogRefreshes.WithLabelValues("error").Inc()
		return err
	}

	newChains := make([]domain.Chain, 0, len(chains))
	for _, c := range chains {
		newChains = append(newChains, toDomainChain(c))
	}

	newTokens := make(map[int][]domain.Token, len(tokensByChain))
	tokenCount := 0
	for key, list := range tokensByChain {
		chainID, convErr := strconv.Atoi(key)
		if convErr != nil {
			log.Warn().Str("chainId", key).Msg("[catalogService] non-numeric chain id from upstream, skipping")
			continue
		}
		converted := make([]domain.Token, 0, len(list))
		for _, t := range list {
			converted = append(converted, toDomainToken(t))
		}
		newTokens[chainID] = converted
		tokenCount += len(converted)
	}

	svc.mu.Lock()
	svc.chains = newChains
	svc.tokens = newTokens
	svc.mu.Unlock()

	if err := svc.storage.SaveChains(newChains); err != nil {
		log.Error().Err(err).Msg("[catalogService] failed to persist chains")
	}
	for chainID, list := range newTokens {
		if err := svc.storage.SaveTokens(chainID, list); err != nil {
			log.Error().Err(err).Int("chainId", chainID).Msg("[catalogService] failed to persist tokens")
		}
	}

	metrics.CatalogRefreshes.WithLabelValues("ok").Inc()
	metrics.CatalogChains.Set(float64(len(newChains)))
	metrics.CatalogTokens.Set(float64(tokenCount))
	log.Info().
		Int("chains", len(newChains)).
		Int("tokens", tokenCount).
		Msg("[catalogService] catalog refreshed")
	return nil
}

// Chains returns the known networks.
func (svc *Service) Chains() []domain.Chain {
	svc.mu.RLock()
	defer svc.mu.RUnlock()

	out := make([]domain.Chain, len(svc.chains))
	copy(out, svc.chains)
	return out
}

// Tokens returns the token list for one chain, empty when the chain is
// unknown.
func (svc *Service) Tokens(chainID int) []domain.Token {
	svc.mu.RLock()
	defer svc.mu.RUnlock()

	list := svc.tokens[chainID]
	out := make([]domain.Token, len(list))
	copy(out, list)
	return out
}

// FindToken looks a token up by chain and address, case-insensitive on
// the address.
func (svc *Service) FindToken(chainID int, address string) (domain.Token, bool) {
	svc.mu.RLock()
	defer svc.mu.RUnlock()

	for _, t := range svc.tokens[chainID] {
		if strings.EqualFold(t.Address, address) {
			return t, true
		}
	}
	return domain.Token{}, false
}

func toDomainChain(c lifi.Chain) domain.Chain {
	return domain.Chain{
		ID:   strconv.Itoa(c.ID),
		Key:  c.Key,
		Name: c.Name,
		Icon: c.LogoURI,
	}
}

func toDomainToken(t lifi.Token) domain.Token {
	return domain.Token{
		Symbol:   t.Symbol,
		Name:     t.Name,
		Icon:     t.LogoURI,
		ChainID:  strconv.Itoa(t.ChainID),
		Address:  t.Address,
		Decimals: t.Decimals,
		USDValue: t.PriceUSD,
	}
}
