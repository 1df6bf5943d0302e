package catalog

import (
	"fmt"
	"sort"
	"strings"

	"inventory-api/internal/models"
)

// Catalog is the immutable product set served by the API. It is built once
// at startup and read concurrently by all request handlers; there are no
// writers, so no synchronization is needed.
type Catalog struct {
	products []models.Product
	byID     map[string]models.Product
}

// Filter narrows a List call. Zero value means no constraint.
type Filter struct {
	Category    string
	StockStatus models.StockStatus
}

// New builds a catalog from a product set. Products are sorted by ID so
// list responses have a stable order. Duplicate IDs are rejected.
func New(products []models.Product) (*Catalog, error) {
	byID := make(map[string]models.Product, len(products))
	sorted := make([]models.Product, len(products))
	copy(sorted, products)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	for _, p := range sorted {
		if _, dup := byID[p.ID]; dup {
			return nil, fmt.Errorf("duplicate product id: %s", p.ID)
		}
		byID[p.ID] = p
	}

	return &Catalog{products: sorted, byID: byID}, nil
}

// Len returns the number of products in the catalog.
func (c *Catalog) Len() int {
	return len(c.products)
}

// List returns the products matching the filter, in ID order, each
// annotated with its derived stock status. Category matching is
// case-insensitive; an unmatched category yields an empty result.
func (c *Catalog) List(filter Filter) []models.Product {
	out := make([]models.Product, 0, len(c.products))
	for _, p := range c.products {
		if filter.Category != "" && !strings.EqualFold(p.Category, filter.Category) {
			continue
		}
		status := models.StatusOf(p.Quantity, p.ReorderLevel)
		if filter.StockStatus != "" && status != filter.StockStatus {
			continue
		}
		p.StockStatus = status
		out = append(out, p)
	}
	return out
}

// Get returns the product with the given ID, annotated with its status.
func (c *Catalog) Get(id string) (models.Product, bool) {
	p, ok := c.byID[id]
	if !ok {
		return models.Product{}, false
	}
	p.StockStatus = models.StatusOf(p.Quantity, p.ReorderLevel)
	return p, true
}

// Summary computes the aggregate view over the full catalog. It is
// recomputed on every call; the catalog is small and immutable, so
// correctness is cheaper than a cache.
func (c *Catalog) Summary() models.InventorySummary {
	summary := models.InventorySummary{
		TotalProducts: len(c.products),
		ByCategory:    make(map[string]int),
	}
	for _, p := range c.products {
		summary.TotalUnits += p.Quantity
		summary.TotalValue += p.Price * float64(p.Quantity)
		summary.ByCategory[p.Category]++

		switch models.StatusOf(p.Quantity, p.ReorderLevel) {
		case models.StockStatusIn:
			summary.InStockCount++
		case models.StockStatusLow:
			summary.LowStockCount++
		case models.StockStatusOut:
			summary.OutOfStockCount++
		}
	}
	return summary
}

// Alerts returns the products that are low or out of stock, in ID order,
// each annotated with its derived status.
func (c *Catalog) Alerts() []models.Product {
	out := make([]models.Product, 0)
	for _, p := range c.products {
		status := models.StatusOf(p.Quantity, p.ReorderLevel)
		if status == models.StockStatusIn {
			continue
		}
		p.StockStatus = status
		out = append(out, p)
	}
	return out
}
