package models

// Product is one catalog entry. The catalog is immutable for the lifetime
// of the process, so products are passed around by value.
type Product struct {
	ID           string  `db:"id" json:"id"`
	Name         string  `db:"name" json:"name"`
	Category     string  `db:"category" json:"category"`
	Price        float64 `db:"price" json:"price"`
	Quantity     int     `db:"quantity" json:"quantity"`
	ReorderLevel int     `db:"reorder_level" json:"reorder_level"`
	Description  string  `db:"description" json:"description,omitempty"`

	// StockStatus is derived from Quantity and ReorderLevel at response
	// time, never stored.
	StockStatus StockStatus `db:"-" json:"stock_status"`
}

// StockStatus classifies a product's quantity against its reorder level.
type StockStatus string

const (
	StockStatusIn  StockStatus = "in_stock"
	StockStatusLow StockStatus = "low_stock"
	StockStatusOut StockStatus = "out_of_stock"
)

// StatusOf returns the stock status for a quantity and reorder level.
// Boundary: quantity equal to the reorder level is low_stock.
func StatusOf(quantity, reorderLevel int) StockStatus {
	switch {
	case quantity == 0:
		return StockStatusOut
	case quantity <= reorderLevel:
		return StockStatusLow
	default:
		return StockStatusIn
	}
}

// ParseStockStatus validates a stock_status filter value.
func ParseStockStatus(s string) (StockStatus, bool) {
	switch StockStatus(s) {
	case StockStatusIn, StockStatusLow, StockStatusOut:
		return StockStatus(s), true
	}
	return "", false
}

// InventorySummary is the aggregate view over the full catalog.
type InventorySummary struct {
	TotalProducts   int            `json:"total_products"`
	TotalUnits      int            `json:"total_units"`
	TotalValue      float64        `json:"total_value"`
	ByCategory      map[string]int `json:"by_category"`
	InStockCount    int            `json:"in_stock_count"`
	LowStockCount   int            `json:"low_stock_count"`
	OutOfStockCount int            `json:"out_of_stock_count"`
}
