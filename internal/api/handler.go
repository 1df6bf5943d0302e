package api

import (
	_ "embed"
	"errors"
	"net/http"

	"inventory-api/config"
	"inventory-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	serviceName    = "Product Inventory API"
	serviceVersion = "1.0.0"
)

// The served schema is hand-authored and must stay in lockstep with the
// routes below: the calling agent matches on paths, parameter names and
// operationIds with no fallback negotiation.
//
//go:embed openapi.json
var openAPIDocument []byte

// Handler contains HTTP handlers
type Handler struct {
	inventory *service.InventoryService
	auth      config.AuthConfig
}

// NewHandler creates a new HTTP handler
func NewHandler(inventory *service.InventoryService, auth config.AuthConfig) *Handler {
	return &Handler{
		inventory: inventory,
		auth:      auth,
	}
}

// SetupRoutes sets up HTTP routes. The root health check, the metrics
// endpoint and the schema document are open; every tool route requires
// the API key.
func (h *Handler) SetupRoutes(router *gin.Engine) {
	router.Use(gin.Recovery())
	router.Use(requestIDMiddleware())
	router.Use(prometheusMiddleware())
	router.Use(gin.Logger())

	router.GET("/", h.healthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/openapi.json", h.openAPI)

	protected := router.Group("/", apiKeyMiddleware(h.auth))
	{
		protected.GET("/products", h.listProducts)
		protected.GET("/products/:id", h.getProduct)
		protected.GET("/inventory/summary", h.getInventorySummary)
		protected.GET("/inventory/alerts", h.getStockAlerts)
	}
}

// healthCheck reports liveness. Deployment tooling probes it before any
// credential is configured, so it carries no catalog data.
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": serviceName,
		"version": serviceVersion,
	})
}

// openAPI serves the embedded tool schema.
func (h *Handler) openAPI(c *gin.Context) {
	c.Data(http.StatusOK, "application/json", openAPIDocument)
}

// listProducts handles GET /products with optional filters
func (h *Handler) listProducts(c *gin.Context) {
	products, err := h.inventory.ListProducts(
		c.Request.Context(),
		c.Query("category"),
		c.Query("stock_status"),
	)
	if err != nil {
		errorJSON(c, err)
		return
	}

	c.JSON(http.StatusOK, products)
}

// getProduct handles GET /products/:id
func (h *Handler) getProduct(c *gin.Context) {
	product, err := h.inventory.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		errorJSON(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

// getInventorySummary handles GET /inventory/summary
func (h *Handler) getInventorySummary(c *gin.Context) {
	c.JSON(http.StatusOK, h.inventory.GetSummary(c.Request.Context()))
}

// getStockAlerts handles GET /inventory/alerts
func (h *Handler) getStockAlerts(c *gin.Context) {
	c.JSON(http.StatusOK, h.inventory.GetAlerts(c.Request.Context()))
}

// errorJSON maps a service error to a stable error kind and HTTP status.
// Bodies never carry internal detail; the wrapped messages are written to
// be caller-safe.
func errorJSON(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "not_found",
			"message": err.Error(),
		})
	case errors.Is(err, service.ErrBadRequest):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "bad_request",
			"message": err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal",
			"message": "internal server error",
		})
	}
}
