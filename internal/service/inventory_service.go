package service

import (
	"context"
	"errors"
	"fmt"

	"inventory-api/internal/catalog"
	"inventory-api/internal/models"
	"inventory-api/internal/util"

	"go.uber.org/zap"
)

// Domain errors. Handlers map these to HTTP codes and stable error kinds;
// the messages are safe to return to the caller.
var (
	ErrBadRequest = errors.New("bad request")
	ErrNotFound   = errors.New("not found")
)

// InventoryService answers read-only queries against the catalog.
type InventoryService struct {
	catalog *catalog.Catalog
	logger  *zap.Logger
}

// NewInventoryService creates a new inventory service.
func NewInventoryService(c *catalog.Catalog) *InventoryService {
	return &InventoryService{
		catalog: c,
		logger:  util.GetLogger(),
	}
}

// ListProducts returns products matching the optional category and
// stock-status filters. An unknown stock_status value is a bad request;
// an unknown category is an empty result.
func (s *InventoryService) ListProducts(ctx context.Context, category, stockStatus string) ([]models.Product, error) {
	_, span := util.StartSpan(ctx, "InventoryService.ListProducts")
	defer span.End()

	filter := catalog.Filter{Category: category}
	if stockStatus != "" {
		status, ok := models.ParseStockStatus(stockStatus)
		if !ok {
			util.BadFilterTotal.Inc()
			return nil, fmt.Errorf("%w: unknown stock_status %q, expected one of in_stock, low_stock, out_of_stock", ErrBadRequest, stockStatus)
		}
		filter.StockStatus = status
	}

	products := s.catalog.List(filter)
	util.InventoryQueriesTotal.WithLabelValues("list_products").Inc()

	s.logger.Debug("Listed products",
		zap.String("category", category),
		zap.String("stock_status", stockStatus),
		zap.Int("count", len(products)))

	return products, nil
}

// GetProduct returns the product with the given ID.
func (s *InventoryService) GetProduct(ctx context.Context, id string) (models.Product, error) {
	_, span := util.StartSpan(ctx, "InventoryService.GetProduct")
	defer span.End()

	product, ok := s.catalog.Get(id)
	if !ok {
		util.ProductLookupMissesTotal.Inc()
		return models.Product{}, fmt.Errorf("%w: product %s not found", ErrNotFound, id)
	}

	util.InventoryQueriesTotal.WithLabelValues("get_product").Inc()
	return product, nil
}

// GetSummary returns the aggregate inventory view, recomputed per call.
func (s *InventoryService) GetSummary(ctx context.Context) models.InventorySummary {
	_, span := util.StartSpan(ctx, "InventoryService.GetSummary")
	defer span.End()

	util.InventoryQueriesTotal.WithLabelValues("get_inventory_summary").Inc()
	return s.catalog.Summary()
}

// GetAlerts returns the low and out-of-stock products.
func (s *InventoryService) GetAlerts(ctx context.Context) []models.Product {
	_, span := util.StartSpan(ctx, "InventoryService.GetAlerts")
	defer span.End()

	util.InventoryQueriesTotal.WithLabelValues("get_stock_alerts").Inc()
	return s.catalog.Alerts()
}
