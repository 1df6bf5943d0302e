package catalog

import "inventory-api/internal/models"

// Seed returns the built-in demo catalog, used when no database is
// configured. Quantities and reorder levels are chosen so that every stock
// status appears in the dataset.
func Seed() []models.Product {
	return []models.Product{
		{
			ID:           "PROD-001",
			Name:         "Wireless Bluetooth Headphones",
			Category:     "electronics",
			Price:        79.99,
			Quantity:     150,
			ReorderLevel: 20,
			Description:  "Premium wireless headphones with noise cancellation",
		},
		{
			ID:           "PROD-002",
			Name:         "Organic Cotton T-Shirt",
			Category:     "clothing",
			Price:        29.99,
			Quantity:     8,
			ReorderLevel: 10,
			Description:  "Comfortable 100% organic cotton t-shirt",
		},
		{
			ID:           "PROD-003",
			Name:         "Python Programming Guide",
			Category:     "books",
			Price:        49.99,
			Quantity:     45,
			ReorderLevel: 15,
			Description:  "Comprehensive guide to Python programming",
		},
		{
			ID:           "PROD-004",
			Name:         "Smart LED Desk Lamp",
			Category:     "home",
			Price:        39.99,
			Quantity:     0,
			ReorderLevel: 10,
			Description:  "Adjustable LED lamp with USB charging port",
		},
		{
			ID:           "PROD-005",
			Name:         "Gourmet Coffee Beans",
			Category:     "food",
			Price:        24.99,
			Quantity:     200,
			ReorderLevel: 50,
			Description:  "Premium arabica coffee beans, 1kg bag",
		},
	}
}

// NewFromSeed builds the catalog from the embedded demo data.
func NewFromSeed() *Catalog {
	c, err := New(Seed())
	if err != nil {
		// Seed data is compiled in; a duplicate ID here is a programming error.
		panic(err)
	}
	return c
}
