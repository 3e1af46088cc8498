package domain

// Token describes a swappable asset on a specific chain.
// Identity is (ChainID, Address); everything else is display metadata.
type Token struct {
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Icon     string `json:"icon,omitempty"`
	ChainID  string `json:"chainId"`
	Address  string `json:"address"`
	Decimals int    `json:"decimals"`
	Balance  string `json:"balance,omitempty"`
	USDValue string `json:"usdValue,omitempty"`
}

// Chain is static reference data for a supported network.
type Chain struct {
	ID   string `json:"id"`
	Key  string `json:"key,omitempty"`
	Name string `json:"name"`
	Icon string `json:"icon,omitempty"`
}
