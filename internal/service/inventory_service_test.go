package service

import (
	"context"
	"testing"

	"inventory-api/internal/catalog"
	"inventory-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListProductsRejectsUnknownStatus(t *testing.T) {
	svc := NewInventoryService(catalog.NewFromSeed())

	_, err := svc.ListProducts(context.Background(), "", "discontinued")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadRequest)
}

func TestListProductsAcceptsEveryKnownStatus(t *testing.T) {
	svc := NewInventoryService(catalog.NewFromSeed())

	for _, status := range []string{"in_stock", "low_stock", "out_of_stock"} {
		products, err := svc.ListProducts(context.Background(), "", status)
		require.NoError(t, err)
		for _, p := range products {
			assert.Equal(t, models.StockStatus(status), p.StockStatus)
		}
	}
}

func TestGetProductNotFound(t *testing.T) {
	svc := NewInventoryService(catalog.NewFromSeed())

	_, err := svc.GetProduct(context.Background(), "PROD-999")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetSummaryConsistentWithList(t *testing.T) {
	svc := NewInventoryService(catalog.NewFromSeed())

	products, err := svc.ListProducts(context.Background(), "", "")
	require.NoError(t, err)

	summary := svc.GetSummary(context.Background())
	assert.Equal(t, len(products), summary.TotalProducts)

	var units int
	for _, p := range products {
		units += p.Quantity
	}
	assert.Equal(t, units, summary.TotalUnits)
}
