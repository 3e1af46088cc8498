package config

import (
	"errors"

	"github.com/andrew-solarstorm/go-packages/common"
)

type AggregatorConfig struct {
	// BaseURL of the upstream aggregation API.
	// Default: "https://li.quest/v1"
	BaseURL string

	// RequestTimeout for a single aggregator call (in seconds).
	// Default: 15
	RequestTimeout int

	// DefaultSlippage fraction applied when a request leaves slippage
	// on auto. Default: 0.03
	DefaultSlippage float64

	// CatalogDBPath is the BoltDB file caching the chain/token catalog.
	// Default: "./data/catalog.db"
	CatalogDBPath string

	// CatalogRefreshInterval is how often the catalog is re-fetched
	// from upstream (in seconds). Default: 3600
	CatalogRefreshInterval int
}

func (c *AggregatorConfig) Key() string {
	return AGGREGATOR_CONFIG_KEY
}

func (c *AggregatorConfig) Load() error {
	c.BaseURL = common.GetEnvOrDefault("AGGREGATOR_BASE_URL", "https://li.quest/v1")
	c.RequestTimeout = common.GetEnvOrDefaultInt("AGGREGATOR_REQUEST_TIMEOUT", 15)
	c.DefaultSlippage = 0.03
	c.CatalogDBPath = common.GetEnvOrDefault("CATALOG_DB_PATH", "./data/catalog.db")
	c.CatalogRefreshInterval = common.GetEnvOrDefaultInt("CATALOG_REFRESH_INTERVAL", 3600)
	return c.Validate()
}

func (c *AggregatorConfig) Validate() error {
	if c.BaseURL == "" {
		return errors.New("invalid aggregator config")
	}
	return nil
}
