package lifi

import "encoding/json"

// Wire types mirroring the aggregator's REST responses. Fields the
// gateway never reads are left out; unknown fields are ignored by the
// decoder so upstream additions are harmless.

type Token struct {
	Address  string `json:"address"`
	Symbol   string `json:"symbol"`
	Decimals int    `json:"decimals"`
	ChainID  int    `json:"chainId"`
	Name     string `json:"name"`
	LogoURI  string `json:"logoURI,omitempty"`
	PriceUSD string `json:"priceUSD,omitempty"`
}

type Chain struct {
	ID      int    `json:"id"`
	Key     string `json:"key"`
	Name    string `json:"name"`
	LogoURI string `json:"logoURI"`
	Mainnet bool   `json:"mainnet"`
}

type GasCost struct {
	AmountUSD string `json:"amountUSD,omitempty"`
}

type ToolDetails struct {
	Key     string `json:"key"`
	Name    string `json:"name"`
	LogoURI string `json:"logoURI"`
}

type StepAction struct {
	FromChainID int    `json:"fromChainId"`
	ToChainID   int    `json:"toChainId"`
	FromToken   Token  `json:"fromToken"`
	ToToken     Token  `json:"toToken"`
	FromAmount  string `json:"fromAmount"`
}

type StepEstimate struct {
	ToAmount          string    `json:"toAmount"`
	ToAmountMin       string    `json:"toAmountMin"`
	ExecutionDuration float64   `json:"executionDuration"`
	GasCosts          []GasCost `json:"gasCosts,omitempty"`
}

// Step is one leg of an upstream route. Type "cross" marks a bridge
// transfer; anything else is an in-chain swap.
type Step struct {
	ID          string       `json:"id"`
	Type        string       `json:"type"`
	Tool        string       `json:"tool"`
	ToolDetails ToolDetails  `json:"toolDetails"`
	Action      StepAction   `json:"action"`
	Estimate    StepEstimate `json:"estimate"`
}

// Route is a raw route descriptor in the upstream RECOMMENDED order.
type Route struct {
	ID            string   `json:"id"`
	FromAmountUSD string   `json:"fromAmountUSD"`
	ToAmountUSD   string   `json:"toAmountUSD"`
	ToAmount      string   `json:"toAmount"`
	ToAmountMin   string   `json:"toAmountMin"`
	GasCostUSD    string   `json:"gasCostUSD,omitempty"`
	Steps         []Step   `json:"steps"`
	Tags          []string `json:"tags,omitempty"`
}

// RoutesRequest is the POST /advanced/routes body.
type RoutesRequest struct {
	FromChainID      int          `json:"fromChainId"`
	ToChainID        int          `json:"toChainId"`
	FromTokenAddress string       `json:"fromTokenAddress"`
	ToTokenAddress   string       `json:"toTokenAddress"`
	FromAmount       string       `json:"fromAmount"`
	FromAddress      string       `json:"fromAddress,omitempty"`
	Options          RouteOptions `json:"options"`
}

type RouteOptions struct {
	Slippage  float64  `json:"slippage"`
	Order     string   `json:"order"`
	Bridges   *Allowed `json:"bridges,omitempty"`
	Exchanges *Allowed `json:"exchanges,omitempty"`
}

// Allowed restricts which bridge or exchange tools the aggregator may
// use for a request.
type Allowed struct {
	Allow []string `json:"allow,omitempty"`
}

type routesResponse struct {
	Routes []Route `json:"routes"`
}

type chainsResponse struct {
	Chains []Chain `json:"chains"`
}

type tokensResponse struct {
	Tokens map[string][]Token `json:"tokens"`
}

// QuoteRequest is the GET /quote query parameter set for the simpler
// single-quote passthrough.
type QuoteRequest struct {
	FromChain   string
	ToChain     string
	FromToken   string
	ToToken     string
	FromAmount  string
	FromAddress string
	Slippage    string
}

// apiError is the upstream error body shape.
type apiError struct {
	Message string          `json:"message"`
	Code    json.RawMessage `json:"code,omitempty"`
}
