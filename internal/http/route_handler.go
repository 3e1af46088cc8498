package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/hxuan190/swap-gateway/internal/domain"
	"github.com/hxuan190/swap-gateway/internal/http/httputil"
	"github.com/hxuan190/swap-gateway/internal/services/lifi"
	"github.com/hxuan190/swap-gateway/internal/services/quoter"
)

type RouteHandler struct {
	quoterSvc *quoter.Service
}

func NewRouteHandler(quoterSvc *quoter.Service) *RouteHandler {
	return &RouteHandler{quoterSvc: quoterSvc}
}

func (h *RouteHandler) Root() string {
	return "/routes"
}

func (h *RouteHandler) SetRoutes(pub *gin.RouterGroup, private *gin.RouterGroup, admin *gin.RouterGroup) {
	pub.POST("", h.getRoutes)
	pub.GET("/settings", h.getSettings)
	pub.PUT("/settings", h.updateSettings)
}

// RoutesRequest asks for swap routes between two tokens.
type RoutesRequest struct {
	// Source token. ChainID is the numeric EVM chain id as a string
	// (the Solana chain id for SVM).
	FromToken domain.Token `json:"fromToken" binding:"required"`

	// Destination token.
	ToToken domain.Token `json:"toToken" binding:"required"`

	// Amount in human-decimal units of the source token.
	// Example: "1.5" for 1.5 ETH. Zero or empty returns an empty route
	// list without contacting the aggregator.
	FromAmount string `json:"fromAmount"`

	// Sending wallet address. Optional: a chain-appropriate placeholder
	// is used for estimation when omitted.
	FromAddress string `json:"fromAddress,omitempty"`

	// Slippage fraction override (0.005 = 0.5%). Zero means session
	// settings decide.
	Slippage float64 `json:"slippage,omitempty"`
}

// @Summary Get swap routes
// @Description Fetch candidate routes for a token pair from the aggregator,
// @Description normalized for display:
// @Description - Gas cost summed across steps in USD
// @Description - Execution time as a human string ("45s", "2 min", "2h")
// @Description - Output amount converted to human-decimal units
// @Description - Tags: first route is "Best Return", plus "Fastest"/"Cheapest"
// @Description
// @Description Amounts are human-decimal ("1.5" = 1.5 ETH); conversion to
// @Description base units happens server side using the token's decimals.
// @Tags routes
// @Accept json
// @Produce json
// @Param request body RoutesRequest true "Route request"
// @Success 200 {object} quoter.RoutesResult "Normalized, tagged routes"
// @Failure 400 {object} httputil.Response "Invalid token chain ids or wallet address"
// @Failure 502 {object} httputil.Response "Aggregator request failed"
// @Router /api/v1/routes [post]
func (h *RouteHandler) getRoutes(c *gin.Context) {
	var req RoutesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequest(c, "invalid request body: "+err.Error())
		return
	}

	result, err := h.quoterSvc.GetRoutes(c.Request.Context(), quoter.QuoteParams{
		FromToken:   req.FromToken,
		ToToken:     req.ToToken,
		FromAmount:  req.FromAmount,
		FromAddress: req.FromAddress,
		Slippage:    req.Slippage,
	})
	if err != nil {
		var invalid *quoter.InvalidParamsError
		if errors.As(err, &invalid) {
			httputil.HandleBadRequest(c, invalid.Error())
			return
		}
		var upstream *lifi.UpstreamError
		if errors.As(err, &upstream) {
			httputil.HandleError(c, upstream.Status, upstream.Message)
			return
		}
		httputil.HandleInternalError(c, "failed to fetch routes: "+err.Error())
		return
	}

	if result.Stale {
		// A newer request superseded this one; tell the client to keep
		// whatever it is already showing.
		httputil.HandleSuccess(c, quoter.RoutesResult{Routes: []domain.SwapRoute{}})
		return
	}

	httputil.HandleSuccess(c, result)
}

// @Summary Get quoting settings
// @Tags routes
// @Produce json
// @Success 200 {object} domain.SwapSettings
// @Router /api/v1/routes/settings [get]
func (h *RouteHandler) getSettings(c *gin.Context) {
	httputil.HandleSuccess(c, h.quoterSvc.Settings())
}

// @Summary Update quoting settings
// @Description Replace the session quoting settings: slippage, route
// @Description priority, and the enabled bridge/exchange tool lists.
// @Tags routes
// @Accept json
// @Produce json
// @Param request body domain.SwapSettings true "New settings"
// @Success 200 {object} domain.SwapSettings
// @Failure 400 {object} httputil.Response "Malformed settings body"
// @Router /api/v1/routes/settings [put]
func (h *RouteHandler) updateSettings(c *gin.Context) {
	var settings domain.SwapSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		httputil.HandleBadRequest(c, "invalid settings body: "+err.Error())
		return
	}

	h.quoterSvc.UpdateSettings(settings)
	httputil.HandleSuccess(c, h.quoterSvc.Settings())
}
