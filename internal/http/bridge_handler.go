package http

import (
	"github.com/gin-gonic/gin"

	"github.com/hxuan190/swap-gateway/internal/http/httputil"
	"github.com/hxuan190/swap-gateway/internal/services/aleo"
)

// BridgeHandler exposes the Aleo bridge surface: quoting, wallet
// payload building, status probes, the relayer queue, and the merchant
// roster.
type BridgeHandler struct {
	bridgeSvc *aleo.Service
}

func NewBridgeHandler(bridgeSvc *aleo.Service) *BridgeHandler {
	return &BridgeHandler{bridgeSvc: bridgeSvc}
}

func (h *BridgeHandler) Root() string {
	return "/bridge"
}

func (h *BridgeHandler) SetRoutes(pub *gin.RouterGroup, private *gin.RouterGroup, admin *gin.RouterGroup) {
	pub.POST("/quote", h.getQuote)
	pub.POST("/transaction", h.handleTransaction)
	pub.GET("/status/:txId", h.getStatus)
	pub.POST("/relayer", h.requestRelay)
	pub.GET("/merchants", h.getMerchants)
	pub.POST("/merchants", h.getMerchants)
}

// @Summary Get a bridge quote
// @Description Price a transfer touching Aleo on either side. The fee
// @Description block itemizes the 0.5% platform fee, the 0.1% bridge
// @Description fee estimate and the flat gas reservation; the quote is
// @Description valid for 60 seconds.
// @Tags bridge
// @Accept json
// @Produce json
// @Param request body aleo.QuoteRequest true "Quote request"
// @Success 200 {object} httputil.Response "Bridge quote with fee breakdown"
// @Failure 400 {object} httputil.Response "Neither chain is Aleo, or bad amount"
// @Router /api/v1/bridge/quote [post]
func (h *BridgeHandler) getQuote(c *gin.Context) {
	var req aleo.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequest(c, "invalid request body: "+err.Error())
		return
	}

	quote, err := h.bridgeSvc.Quote(c.Request.Context(), req)
	if err != nil {
		httputil.HandleBadRequest(c, err.Error())
		return
	}

	httputil.HandleSuccess(c, quote)
}

// TransactionRequest selects the transaction operation: assembling a
// wallet payload (swap, bridge) or looking up status (status).
type TransactionRequest struct {
	// Action: swap (in-chain via the router program), bridge
	// (bridge-out via the bridge program), or status.
	Action string `json:"action" binding:"required" enums:"swap,bridge,status"`

	// TxID of the transaction to look up (status action only).
	TxID string `json:"txId,omitempty"`

	// Amount in human-decimal credits (swap and bridge actions).
	Amount string `json:"amount,omitempty"`

	// CallerAddress is the Aleo wallet executing the transition (swap
	// and bridge actions).
	CallerAddress string `json:"callerAddress,omitempty"`

	// MerchantAddress receives the swap (swap action only).
	MerchantAddress string `json:"merchantAddress,omitempty"`

	// Destination chain and address (bridge action only).
	DestinationChain   string `json:"destinationChain,omitempty"`
	DestinationAddress string `json:"destinationAddress,omitempty"`
}

// @Summary Transaction operations
// @Description Assemble the unsigned program call for the wallet to
// @Description execute (swap_with_fee on the router for in-chain swaps,
// @Description bridge_with_fee on the bridge program for bridge-outs),
// @Description or look up a transaction's status by id.
// @Tags bridge
// @Accept json
// @Produce json
// @Param request body TransactionRequest true "Transaction request"
// @Success 200 {object} httputil.Response "Unsigned transaction payload or status"
// @Failure 400 {object} httputil.Response "Unknown action or invalid amount"
// @Router /api/v1/bridge/transaction [post]
func (h *BridgeHandler) handleTransaction(c *gin.Context) {
	var req TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequest(c, "invalid request body: "+err.Error())
		return
	}

	switch req.Action {
	case "status":
		if req.TxID == "" {
			httputil.HandleBadRequest(c, "txId is required for status")
			return
		}
		httputil.HandleSuccess(c, h.bridgeSvc.TransactionStatus(c.Request.Context(), req.TxID))

	case "swap":
		if req.Amount == "" || req.CallerAddress == "" {
			httputil.HandleBadRequest(c, "amount and callerAddress are required for swap")
			return
		}
		if req.MerchantAddress == "" {
			httputil.HandleBadRequest(c, "merchantAddress is required for swap")
			return
		}
		tx, err := h.bridgeSvc.BuildSwapTransaction(aleo.SwapParams{
			Amount:          req.Amount,
			MerchantAddress: req.MerchantAddress,
			CallerAddress:   req.CallerAddress,
		})
		if err != nil {
			httputil.HandleBadRequest(c, err.Error())
			return
		}
		httputil.HandleSuccess(c, tx)

	case "bridge":
		if req.Amount == "" || req.CallerAddress == "" {
			httputil.HandleBadRequest(c, "amount and callerAddress are required for bridge")
			return
		}
		if req.DestinationChain == "" || req.DestinationAddress == "" {
			httputil.HandleBadRequest(c, "destinationChain and destinationAddress are required for bridge")
			return
		}
		tx, err := h.bridgeSvc.BuildBridgeTransaction(aleo.BridgeParams{
			Amount:             req.Amount,
			DestinationChain:   req.DestinationChain,
			DestinationAddress: req.DestinationAddress,
			CallerAddress:      req.CallerAddress,
		})
		if err != nil {
			httputil.HandleBadRequest(c, err.Error())
			return
		}
		httputil.HandleSuccess(c, tx)

	default:
		httputil.HandleBadRequest(c, "unknown action: "+req.Action)
	}
}

// @Summary Probe transaction status
// @Description Single status lookup against the network explorer. A
// @Description transaction the explorer has not indexed yet reports
// @Description pending; explorer unreachability reports unknown.
// @Tags bridge
// @Produce json
// @Param txId path string true "Aleo transaction id"
// @Success 200 {object} httputil.Response "Current transaction status"
// @Router /api/v1/bridge/status/{txId} [get]
func (h *BridgeHandler) getStatus(c *gin.Context) {
	txID := c.Param("txId")
	if txID == "" {
		httputil.HandleBadRequest(c, "txId is required")
		return
	}

	httputil.HandleSuccess(c, h.bridgeSvc.TransactionStatus(c.Request.Context(), txID))
}

// @Summary Queue a relayer claim
// @Description Ask the relayer to claim bridged funds on the
// @Description destination chain once the Aleo transaction confirms.
// @Tags bridge
// @Accept json
// @Produce json
// @Param request body aleo.RelayerRequest true "Relay request"
// @Success 200 {object} httputil.Response "Queued relayer job"
// @Failure 400 {object} httputil.Response "Missing fields"
// @Router /api/v1/bridge/relayer [post]
func (h *BridgeHandler) requestRelay(c *gin.Context) {
	var req aleo.RelayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequest(c, "invalid request body: "+err.Error())
		return
	}

	httputil.HandleSuccess(c, h.bridgeSvc.RequestRelay(c.Request.Context(), req))
}

// @Summary List bridge merchants
// @Tags bridge
// @Produce json
// @Success 200 {object} httputil.Response "Registered liquidity providers"
// @Router /api/v1/bridge/merchants [get]
func (h *BridgeHandler) getMerchants(c *gin.Context) {
	httputil.HandleSuccess(c, gin.H{"merchants": h.bridgeSvc.Merchants(c.Request.Context())})
}
