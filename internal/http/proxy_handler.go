package http

import (
	"encoding/json"
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/hxuan190/swap-gateway/internal/http/httputil"
	"github.com/hxuan190/swap-gateway/internal/services/lifi"
)

// ProxyHandler forwards aggregator calls for clients that want the raw
// upstream payloads instead of the normalized route shape.
type ProxyHandler struct {
	client *lifi.Client
}

func NewProxyHandler(client *lifi.Client) *ProxyHandler {
	return &ProxyHandler{client: client}
}

func (h *ProxyHandler) Root() string {
	return "/lifi"
}

func (h *ProxyHandler) SetRoutes(pub *gin.RouterGroup, private *gin.RouterGroup, admin *gin.RouterGroup) {
	pub.POST("", h.proxy)
}

// ProxyRequest selects an upstream call by action. Params are decoded
// per action; responses are passed through verbatim.
type ProxyRequest struct {
	// Action: quote, routes, chains, tokens, or connections.
	Action string `json:"action" binding:"required" enums:"quote,routes,chains,tokens,connections"`

	// Params for the selected action, forwarded as-is.
	Params json.RawMessage `json:"params,omitempty"`
}

type proxyQuoteParams struct {
	FromChain   string `json:"fromChain"`
	ToChain     string `json:"toChain"`
	FromToken   string `json:"fromToken"`
	ToToken     string `json:"toToken"`
	FromAmount  string `json:"fromAmount"`
	FromAddress string `json:"fromAddress"`
	Slippage    string `json:"slippage,omitempty"`
}

type proxyTokensParams struct {
	ChainID int `json:"chainId,omitempty"`
}

type proxyConnectionsParams struct {
	FromChain string `json:"fromChain,omitempty"`
	ToChain   string `json:"toChain,omitempty"`
}

// @Summary Proxy an aggregator call
// @Description Action-discriminated passthrough to the upstream
// @Description aggregation API. The upstream response body is returned
// @Description unchanged inside the standard envelope, and upstream
// @Description error statuses are propagated rather than masked.
// @Tags lifi
// @Accept json
// @Produce json
// @Param request body ProxyRequest true "Action and parameters"
// @Success 200 {object} httputil.Response "Raw upstream payload"
// @Failure 400 {object} httputil.Response "Unknown action or malformed params"
// @Router /api/v1/lifi [post]
func (h *ProxyHandler) proxy(c *gin.Context) {
	var req ProxyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequest(c, "invalid request body: "+err.Error())
		return
	}

	ctx := c.Request.Context()

	var (
		data any
		err  error
	)

	switch req.Action {
	case "quote":
		var p proxyQuoteParams
		if perr := unmarshalParams(req.Params, &p); perr != nil {
			httputil.HandleBadRequest(c, perr.Error())
			return
		}
		data, err = h.client.GetQuote(ctx, lifi.QuoteRequest{
			FromChain:   p.FromChain,
			ToChain:     p.ToChain,
			FromToken:   p.FromToken,
			ToToken:     p.ToToken,
			FromAmount:  p.FromAmount,
			FromAddress: p.FromAddress,
			Slippage:    p.Slippage,
		})

	case "routes":
		var p lifi.RoutesRequest
		if perr := unmarshalParams(req.Params, &p); perr != nil {
			httputil.HandleBadRequest(c, perr.Error())
			return
		}
		var routes []lifi.Route
		routes, err = h.client.GetRoutes(ctx, p)
		data = gin.H{"routes": routes}

	case "chains":
		var chains []lifi.Chain
		chains, err = h.client.GetChains(ctx)
		data = gin.H{"chains": chains}

	case "tokens":
		var p proxyTokensParams
		if perr := unmarshalParams(req.Params, &p); perr != nil {
			httputil.HandleBadRequest(c, perr.Error())
			return
		}
		var tokens map[string][]lifi.Token
		tokens, err = h.client.GetTokens(ctx, p.ChainID)
		data = gin.H{"tokens": tokens}

	case "connections":
		var p proxyConnectionsParams
		if perr := unmarshalParams(req.Params, &p); perr != nil {
			httputil.HandleBadRequest(c, perr.Error())
			return
		}
		data, err = h.client.GetConnections(ctx, p.FromChain, p.ToChain)

	default:
		httputil.HandleBadRequest(c, "unknown action: "+req.Action)
		return
	}

	if err != nil {
		var upstream *lifi.UpstreamError
		if errors.As(err, &upstream) {
			httputil.HandleError(c, upstream.Status, upstream.Message)
			return
		}
		log.Error().Err(err).Str("action", req.Action).Msg("[proxyHandler] upstream call failed")
		httputil.HandleBadGateway(c, "aggregator unreachable: "+err.Error())
		return
	}

	httputil.HandleSuccess(c, data)
}

func unmarshalParams(raw json.RawMessage, out any) error {
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return errors.New("invalid params: " + err.Error())
	}
	return nil
}
