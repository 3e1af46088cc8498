package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hxuan190/swap-gateway/internal/http/httputil"
	"github.com/hxuan190/swap-gateway/internal/services/catalog"
)

type CatalogHandler struct {
	catalogSvc *catalog.Service
}

func NewCatalogHandler(catalogSvc *catalog.Service) *CatalogHandler {
	return &CatalogHandler{catalogSvc: catalogSvc}
}

func (h *CatalogHandler) Root() string {
	return "/catalog"
}

func (h *CatalogHandler) SetRoutes(pub *gin.RouterGroup, private *gin.RouterGroup, admin *gin.RouterGroup) {
	pub.GET("/chains", h.getChains)
	pub.GET("/tokens", h.getTokens)
}

// @Summary List supported chains
// @Tags catalog
// @Produce json
// @Success 200 {object} httputil.Response "Chains known to the catalog"
// @Router /api/v1/catalog/chains [get]
func (h *CatalogHandler) getChains(c *gin.Context) {
	httputil.HandleSuccess(c, gin.H{"chains": h.catalogSvc.Chains()})
}

// @Summary List tokens on a chain
// @Tags catalog
// @Produce json
// @Param chainId query int true "Numeric chain id" example(1)
// @Success 200 {object} httputil.Response "Tokens on the chain, empty when unknown"
// @Failure 400 {object} httputil.Response "Missing or non-numeric chainId"
// @Router /api/v1/catalog/tokens [get]
func (h *CatalogHandler) getTokens(c *gin.Context) {
	chainID, err := strconv.Atoi(c.Query("chainId"))
	if err != nil {
		httputil.HandleBadRequest(c, "chainId must be a numeric chain id")
		return
	}

	httputil.HandleSuccess(c, gin.H{"tokens": h.catalogSvc.Tokens(chainID)})
}
