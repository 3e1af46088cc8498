package domain

// Transaction status values reported by the bridge status endpoint.
// Unknown doubles as the transport-error and poll-timeout outcome;
// callers must not conflate it with a confirmed failure.
const (
	TxStatusPending   = "pending"
	TxStatusConfirmed = "confirmed"
	TxStatusFailed    = "failed"
	TxStatusUnknown   = "unknown"
)

// BridgeFees itemizes the fee components of an Aleo bridge quote.
// All amounts are 6-decimal strings in the source token.
type BridgeFees struct {
	PlatformFee    string `json:"platformFee"`
	PlatformFeeBps int    `json:"platformFeeBps"`
	BridgeFee      string `json:"bridgeFee"`
	GasFee         string `json:"gasFee"`
	TotalFee       string `json:"totalFee"`
}

// AleoBridgeQuote is the bridge proxy's quote response. ValidUntil is
// epoch milliseconds with a 60 second horizon.
type AleoBridgeQuote struct {
	ID            string     `json:"id"`
	FromChain     string     `json:"fromChain"`
	ToChain       string     `json:"toChain"`
	FromToken     string     `json:"fromToken"`
	ToToken       string     `json:"toToken"`
	FromAmount    string     `json:"fromAmount"`
	ToAmount      string     `json:"toAmount"`
	ToAmountUSD   string     `json:"toAmountUsd"`
	Fees          BridgeFees `json:"fees"`
	EstimatedTime string     `json:"estimatedTime"`
	Route         struct {
		Steps []SwapStep `json:"steps"`
	} `json:"route"`
	ValidUntil int64 `json:"validUntil"`
}

// AleoTransactionStatus is a terminal/non-terminal flag, not a full
// state machine: polling continues until confirmed, failed, or the
// attempt budget runs out.
type AleoTransactionStatus struct {
	Status      string `json:"status"`
	BlockHeight uint64 `json:"blockHeight,omitempty"`
	Timestamp   string `json:"timestamp,omitempty"`
	Fee         string `json:"fee,omitempty"`
	Message     string `json:"message,omitempty"`
	Error       string `json:"error,omitempty"`
}

// Terminal reports whether polling for this status should stop.
func (s AleoTransactionStatus) Terminal() bool {
	return s.Status == TxStatusConfirmed || s.Status == TxStatusFailed
}

// RelayerJob is the response to a destination-chain claim request.
type RelayerJob struct {
	Status              string `json:"status"`
	AleoTxID            string `json:"aleoTxId"`
	DestinationChain    string `json:"destinationChain"`
	DestinationAddress  string `json:"destinationAddress"`
	Amount              string `json:"amount"`
	EstimatedGasCost    string `json:"estimatedGasCost"`
	EstimatedCompletion string `json:"estimatedCompletion"`
	RelayerJobID        string `json:"relayerJobId"`
}

// Merchant is a registered liquidity provider on the Aleo side.
type Merchant struct {
	Address      string `json:"address"`
	Name         string `json:"name"`
	Liquidity    string `json:"liquidity"`
	FeeMarkupBps int    `json:"feeMarkupBps"`
	Active       bool   `json:"active"`
}

// AleoTransition is one program call inside an Aleo transaction.
type AleoTransition struct {
	Program      string   `json:"program"`
	FunctionName string   `json:"functionName"`
	Inputs       []string `json:"inputs"`
}

// AleoTransaction is the wallet-facing payload for a router or bridge
// program call. Fee is in microcredits.
type AleoTransaction struct {
	Address     string           `json:"address"`
	ChainID     string           `json:"chainId"`
	Transitions []AleoTransition `json:"transitions"`
	Fee         uint64           `json:"fee"`
	FeePrivate  bool             `json:"feePrivate"`
}
