package domain

// Step types within a route. Execution order is slice order.
const (
	StepTypeSwap   = "swap"
	StepTypeBridge = "bridge"
)

// SwapStep is one leg of a route: an in-chain swap or a cross-chain
// bridge transfer executed by a named provider.
type SwapStep struct {
	Type      string `json:"type"`
	Provider  string `json:"provider"`
	FromToken string `json:"fromToken,omitempty"`
	ToToken   string `json:"toToken,omitempty"`
	FromChain string `json:"fromChain,omitempty"`
	ToChain   string `json:"toChain,omitempty"`
	Chain     string `json:"chain,omitempty"`
	Action    string `json:"action,omitempty"`
}

// SwapRoute is a complete executable path from a source token to a
// destination token. Routes are value objects: rebuilt on every quote
// request, never mutated in place. ToAmount is in the destination
// token's human-decimal units. Steps is non-empty for any executable
// route.
//
// Tags stays nil (not an empty slice) when no tag applies; consumers
// branch on presence.
type SwapRoute struct {
	ID             string     `json:"id"`
	FromToken      Token      `json:"fromToken"`
	ToToken        Token      `json:"toToken"`
	FromAmount     string     `json:"fromAmount"`
	ToAmount       string     `json:"toAmount"`
	ToAmountUSD    string     `json:"toAmountUsd"`
	GasCost        string     `json:"gasCost"`
	GasCostUSD     string     `json:"gasCostUsd"`
	EstimatedTime  string     `json:"estimatedTime"`
	Steps          []SwapStep `json:"steps"`
	Tags           []string   `json:"tags,omitempty"`
	PercentageDiff string     `json:"percentageDiff,omitempty"`
}

// Display tags assigned by the tagger. The first route in the
// upstream RECOMMENDED order always carries TagBestReturn.
const (
	TagBestReturn = "Best Return"
	TagFastest    = "Fastest"
	TagCheapest   = "Cheapest"
)

// Route priority choices mirror the upstream aggregator's ordering
// options; the gateway itself never re-sorts.
const (
	PriorityBest     = "best"
	PriorityFastest  = "fastest"
	PriorityCheapest = "cheapest"
)

// SwapSettings is per-session quoting preferences. Created with
// Defaults at session start and mutated only through explicit user
// actions; nothing here is persisted.
type SwapSettings struct {
	RoutePriority    string   `json:"routePriority"`
	GasPrice         string   `json:"gasPrice"`
	Slippage         Slippage `json:"slippage"`
	EnabledBridges   []string `json:"enabledBridges"`
	EnabledExchanges []string `json:"enabledExchanges"`
}

// Slippage is either the literal "auto" or a fraction (0.03 = 3%).
type Slippage struct {
	Auto  bool    `json:"auto"`
	Value float64 `json:"value,omitempty"`
}

// Fraction resolves the effective slippage fraction, falling back to
// the platform default when set to auto.
func (s Slippage) Fraction(def float64) float64 {
	if s.Auto || s.Value <= 0 {
		return def
	}
	return s.Value
}

// DefaultSettings returns session-start settings: recommended ordering,
// normal gas, auto slippage, every bridge and exchange enabled.
func DefaultSettings(bridges, exchanges []string) SwapSettings {
	return SwapSettings{
		RoutePriority:    PriorityBest,
		GasPrice:         "normal",
		Slippage:         Slippage{Auto: true},
		EnabledBridges:   append([]string(nil), bridges...),
		EnabledExchanges: append([]string(nil), exchanges...),
	}
}
