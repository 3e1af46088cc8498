package config

import (
	"errors"

	"github.com/andrew-solarstorm/go-packages/common"
)

type BridgeConfig struct {
	// ExplorerURL is the Aleo network explorer API root used for
	// transaction status lookups.
	// Default: "https://api.explorer.provable.com/v1"
	ExplorerURL string

	// Network selects the Aleo network path segment on the explorer.
	// Default: "testnet"
	Network string

	// RouterProgram and BridgeProgram are the on-chain program ids the
	// transaction builder targets.
	RouterProgram string
	BridgeProgram string

	// TreasuryAddress receives the platform fee.
	TreasuryAddress string

	// RatesFile is an optional YAML file overriding the built-in demo
	// exchange-rate table. Empty means built-in rates only.
	RatesFile string
}

func (c *BridgeConfig) Key() string {
	return BRIDGE_CONFIG_KEY
}

func (c *BridgeConfig) Load() error {
	c.ExplorerURL = common.GetEnvOrDefault("ALEO_EXPLORER_URL", "https://api.explorer.provable.com/v1")
	c.Network = common.GetEnvOrDefault("ALEO_NETWORK", "testnet")
	c.RouterProgram = common.GetEnvOrDefault("ALEO_ROUTER_PROGRAM", "aleo_jumper_router.aleo")
	c.BridgeProgram = common.GetEnvOrDefault("ALEO_BRIDGE_PROGRAM", "aleo_jumper_bridge.aleo")
	c.TreasuryAddress = common.GetEnvOrDefault("ALEO_TREASURY_ADDRESS", "aleo1jumpertreasury0000000000000000000000000000000000000000000")
	c.RatesFile = common.GetEnvOrDefault("BRIDGE_RATES_FILE", "")
	return c.Validate()
}

func (c *BridgeConfig) Validate() error {
	if c.ExplorerURL == "" || c.Network == "" {
		return errors.New("invalid bridge config")
	}
	return nil
}
