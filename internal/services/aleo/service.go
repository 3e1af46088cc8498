// Package aleo implements the privacy-chain bridge path: fee policy,
// quoting, transaction payloads, status lookups, and the relayer stub.
package aleo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	container "github.com/thehyperflames/dicontainer-go"

	"github.com/hxuan190/swap-gateway/internal/config"
	"github.com/hxuan190/swap-gateway/internal/domain"
	"github.com/hxuan190/swap-gateway/internal/metrics"
	"github.com/hxuan190/swap-gateway/internal/services/tracker"
)

const BRIDGE_SERVICE = "aleo-bridge-service"

const chainAleo = "aleo"

// QuoteRequest is the bridge quote input. At least one side must be
// the privacy chain.
type QuoteRequest struct {
	FromChain   string `json:"fromChain" binding:"required"`
	ToChain     string `json:"toChain" binding:"required"`
	FromToken   string `json:"fromToken" binding:"required"`
	ToToken     string `json:"toToken" binding:"required"`
	Amount      string `json:"amount" binding:"required"`
	FromAddress string `json:"fromAddress,omitempty"`
	ToAddress   string `json:"toAddress,omitempty"`
}

// RelayerRequest asks the relayer to claim on the destination chain
// once the named Aleo transaction confirms.
type RelayerRequest struct {
	AleoTxID           string `json:"aleoTxId" binding:"required"`
	DestinationChain   string `json:"destinationChain" binding:"required"`
	DestinationAddress string `json:"destinationAddress" binding:"required"`
	Amount             string `json:"amount" binding:"required"`
}

// ErrNotAleoRoute rejects quotes that touch the privacy chain on
// neither side.
type ErrNotAleoRoute struct{}

func (ErrNotAleoRoute) Error() string {
	return "at least one chain must be Aleo"
}

type Service struct {
	container.BaseDIInstance

	conf      *config.BridgeConfig
	http      *http.Client
	oracle    RateOracle
	merchants MerchantRegistry
	builder   *TxBuilder
	tracker   *tracker.Tracker

	cancel   context.CancelFunc
	watchCtx context.Context

	// now is swapped for a fixed clock in tests.
	now func() time.Time
}

func (svc *Service) ID() string {
	return BRIDGE_SERVICE
}

func (svc *Service) Configure(c container.IContainer) error {
	svc.conf = c.GetConfig(config.BRIDGE_CONFIG_KEY).(*config.BridgeConfig)
	svc.http = &http.Client{Timeout: 10 * time.Second}
	svc.oracle = NewStaticOracle(svc.conf.RatesFile)
	svc.merchants = NewStaticMerchantRegistry()
	svc.builder = NewTxBuilder(svc.conf.RouterProgram, svc.conf.BridgeProgram)
	svc.tracker = tracker.New(svc.TransactionStatus)
	svc.now = time.Now
	return nil
}

func (svc *Service) Start() error {
	ctx, cancel := context.WithCancel(context.Background())
	svc.cancel = cancel
	svc.watchCtx = ctx
	return nil
}

func (svc *Service) Stop() error {
	if svc.cancel != nil {
		svc.cancel()
	}
	return nil
}

// Quote prices a bridge or swap touching the privacy chain. Fee policy:
// 50 bps platform fee, 0.1% bridge-fee estimate, a flat gas reservation,
// then the demo oracle rate applied to the net amount.
func (svc *Service) Quote(_ context.Context, req QuoteRequest) (*domain.AleoBridgeQuote, error) {
	isAleoSource := strings.EqualFold(req.FromChain, chainAleo)
	isAleoDest := strings.EqualFold(req.ToChain, chainAleo)
	if !isAleoSource && !isAleoDest {
		metrics.BridgeQuotes.WithLabelValues("rejected").Inc()
		return nil, ErrNotAleoRoute{}
	}

	amount, err := strconv.ParseFloat(req.Amount, 64)
	if err != nil || amount <= 0 {
		metrics.BridgeQuotes.WithLabelValues("rejected").Inc()
		return nil, fmt.Errorf("invalid amount %q", req.Amount)
	}

	platformFee := amount * PlatformFeeBps / 10000
	bridgeFee := amount * BridgeFeeRate
	gasFee := GasFeeCredits
	netAmount := amount - platformFee - bridgeFee - gasFee

	rate, known := svc.oracle.Rate(req.FromToken, req.ToToken)
	if !known {
		log.Warn().
			Str("fromToken", req.FromToken).
			Str("toToken", req.ToToken).
			Msg("[bridgeService] no rate for pair, quoting 1:1")
	}
	outputAmount := netAmount * rate

	now := svc.now()
	quote := &domain.AleoBridgeQuote{
		ID:          fmt.Sprintf("aleo-quote-%d", now.UnixMilli()),
		FromChain:   req.FromChain,
		ToChain:     req.ToChain,
		FromToken:   req.FromToken,
		ToToken:     req.ToToken,
		FromAmount:  req.Amount,
		ToAmount:    fmt.Sprintf("%.6f", outputAmount),
		ToAmountUSD: fmt.Sprintf("%.2f", outputAmount*1.5),
		Fees: domain.BridgeFees{
			PlatformFee:    fmt.Sprintf("%.6f", platformFee),
			PlatformFeeBps: PlatformFeeBps,
			BridgeFee:      fmt.Sprintf("%.6f", bridgeFee),
			GasFee:         fmt.Sprintf("%.6f", gasFee),
			TotalFee:       fmt.Sprintf("%.6f", platformFee+bridgeFee+gasFee),
		},
		EstimatedTime: estimatedTime(isAleoSource),
		ValidUntil:    now.Add(60 * time.Second).UnixMilli(),
	}
	quote.Route.Steps = routeSteps(req, isAleoSource, isAleoDest)

	metrics.BridgeQuotes.WithLabelValues("ok").Inc()
	return quote, nil
}

func estimatedTime(isAleoSource bool) string {
	if isAleoSource {
		return "15-20 minutes"
	}
	return "10-15 minutes"
}

func routeSteps(req QuoteRequest, isAleoSource, isAleoDest bool) []domain.SwapStep {
	firstType := domain.StepTypeSwap
	if isAleoSource {
		firstType = domain.StepTypeBridge
	}
	steps := []domain.SwapStep{
		{Type: firstType, Provider: "Jumper Router", Action: "Collect fee"},
		{Type: domain.StepTypeBridge, Provider: "Verulink", FromChain: req.FromChain, ToChain: req.ToChain},
	}
	if isAleoDest {
		steps = append(steps, domain.SwapStep{
			Type: "claim", Provider: "Jumper Relayer", Action: "Auto-claim on destination",
		})
	}
	return steps
}

// explorerTx is the explorer's transaction record shape.
type explorerTx struct {
	Status      string `json:"status"`
	BlockHeight uint64 `json:"block_height"`
	Timestamp   string `json:"timestamp"`
	Fee         string `json:"fee"`
}

// TransactionStatus asks the network explorer about a transaction.
// A non-OK explorer response means not yet indexed (pending); a
// transport failure is unknown, never failed.
func (svc *Service) TransactionStatus(ctx context.Context, txID string) domain.AleoTransactionStatus {
	url := fmt.Sprintf("%s/%s/transaction/%s", svc.conf.ExplorerURL, svc.conf.Network, txID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return domain.AleoTransactionStatus{Status: domain.TxStatusUnknown, Error: err.Error()}
	}

	resp, err := svc.http.Do(req)
	if err != nil {
		log.Error().Err(err).Str("txId", txID).Msg("[bridgeService] explorer request failed")
		return domain.AleoTransactionStatus{Status: domain.TxStatusUnknown, Error: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.AleoTransactionStatus{
			Status:  domain.TxStatusPending,
			Message: "Transaction not yet indexed",
		}
	}

	var tx explorerTx
	if err := json.NewDecoder(resp.Body).Decode(&tx); err != nil {
		return domain.AleoTransactionStatus{Status: domain.TxStatusUnknown, Error: err.Error()}
	}

	status := tx.Status
	if status == "" {
		status = domain.TxStatusConfirmed
	}
	return domain.AleoTransactionStatus{
		Status:      status,
		BlockHeight: tx.BlockHeight,
		Timestamp:   tx.Timestamp,
		Fee:         tx.Fee,
	}
}

// RequestRelay queues a destination-chain claim. Submission is a stub:
// the job is acknowledged with estimates but nothing is sent on-chain.
func (svc *Service) RequestRelay(_ context.Context, req RelayerRequest) *domain.RelayerJob {
	gasCost := "0.001 MATIC"
	if strings.EqualFold(req.DestinationChain, "ethereum") {
		gasCost = "0.005 ETH"
	}

	now := svc.now()
	metrics.RelayerJobs.Inc()
	log.Info().
		Str("aleoTxId", req.AleoTxID).
		Str("destinationChain", req.DestinationChain).
		Msg("[bridgeService] relayer job queued")

	// The claim itself only makes sense once the source transaction
	// settles, so watch it in the background.
	if svc.tracker != nil && svc.watchCtx != nil {
		go svc.watchRelay(req.AleoTxID)
	}

	return &domain.RelayerJob{
		Status:              "queued",
		AleoTxID:            req.AleoTxID,
		DestinationChain:    req.DestinationChain,
		DestinationAddress:  req.DestinationAddress,
		Amount:              req.Amount,
		EstimatedGasCost:    gasCost,
		EstimatedCompletion: now.Add(15 * time.Minute).UTC().Format(time.RFC3339),
		RelayerJobID:        fmt.Sprintf("relay-%d", now.UnixMilli()),
	}
}

func (svc *Service) watchRelay(txID string) {
	status := svc.tracker.WaitForConfirmation(svc.watchCtx, txID)
	if status.Status != domain.TxStatusConfirmed {
		log.Warn().
			Str("txId", txID).
			Str("status", status.Status).
			Msg("[bridgeService] relay source transaction did not confirm")
		return
	}
	log.Info().Str("txId", txID).Msg("[bridgeService] relay source transaction confirmed")
}

// Merchants lists registered liquidity providers.
func (svc *Service) Merchants(_ context.Context) []domain.Merchant {
	return svc.merchants.Merchants()
}

// BuildSwapTransaction exposes the wallet payload builder for the swap
// path.
func (svc *Service) BuildSwapTransaction(p SwapParams) (domain.AleoTransaction, error) {
	if p.Network == "" {
		p.Network = svc.conf.Network
	}
	return svc.builder.SwapTransaction(p)
}

// BuildBridgeTransaction exposes the wallet payload builder for the
// bridge path.
func (svc *Service) BuildBridgeTransaction(p BridgeParams) (domain.AleoTransaction, error) {
	if p.Network == "" {
		p.Network = svc.conf.Network
	}
	return svc.builder.BridgeTransaction(p)
}
