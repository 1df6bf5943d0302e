package catalog

import (
	"sort"
	"testing"

	"inventory-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProducts() []models.Product {
	return []models.Product{
		{ID: "PROD-002", Name: "B", Category: "clothing", Price: 10.00, Quantity: 5, ReorderLevel: 5},
		{ID: "PROD-001", Name: "A", Category: "electronics", Price: 79.99, Quantity: 50, ReorderLevel: 5},
		{ID: "PROD-003", Name: "C", Category: "Electronics", Price: 2.50, Quantity: 0, ReorderLevel: 3},
	}
}

func TestStatusOf(t *testing.T) {
	assert.Equal(t, models.StockStatusOut, models.StatusOf(0, 5))
	assert.Equal(t, models.StockStatusLow, models.StatusOf(2, 5))
	assert.Equal(t, models.StockStatusLow, models.StatusOf(5, 5)) // boundary
	assert.Equal(t, models.StockStatusIn, models.StatusOf(6, 5))
	assert.Equal(t, models.StockStatusIn, models.StatusOf(50, 5))
}

func TestNewRejectsDuplicateIDs(t *testing.T) {
	_, err := New([]models.Product{
		{ID: "PROD-001"},
		{ID: "PROD-001"},
	})
	assert.Error(t, err)
}

func TestListStableOrder(t *testing.T) {
	c, err := New(testProducts())
	require.NoError(t, err)

	products := c.List(Filter{})
	require.Len(t, products, 3)
	assert.True(t, sort.SliceIsSorted(products, func(i, j int) bool {
		return products[i].ID < products[j].ID
	}))

	// Every listed product carries its derived status.
	assert.Equal(t, models.StockStatusIn, products[0].StockStatus)
	assert.Equal(t, models.StockStatusLow, products[1].StockStatus)
	assert.Equal(t, models.StockStatusOut, products[2].StockStatus)
}

func TestListCategoryFilterIsCaseInsensitive(t *testing.T) {
	c, err := New(testProducts())
	require.NoError(t, err)

	products := c.List(Filter{Category: "ELECTRONICS"})
	require.Len(t, products, 2)
	assert.Equal(t, "PROD-001", products[0].ID)
	assert.Equal(t, "PROD-003", products[1].ID)
}

func TestListUnknownCategoryReturnsEmpty(t *testing.T) {
	c, err := New(testProducts())
	require.NoError(t, err)

	products := c.List(Filter{Category: "toys"})
	assert.Empty(t, products)
	assert.NotNil(t, products)
}

func TestListCombinedFilters(t *testing.T) {
	c, err := New(testProducts())
	require.NoError(t, err)

	products := c.List(Filter{Category: "electronics", StockStatus: models.StockStatusOut})
	require.Len(t, products, 1)
	assert.Equal(t, "PROD-003", products[0].ID)
}

func TestGet(t *testing.T) {
	c, err := New(testProducts())
	require.NoError(t, err)

	p, ok := c.Get("PROD-002")
	require.True(t, ok)
	assert.Equal(t, "PROD-002", p.ID)
	assert.Equal(t, models.StockStatusLow, p.StockStatus)

	_, ok = c.Get("PROD-999")
	assert.False(t, ok)
}

func TestGetRoundTripsEveryListedID(t *testing.T) {
	c := NewFromSeed()

	for _, listed := range c.List(Filter{}) {
		p, ok := c.Get(listed.ID)
		require.True(t, ok, "listed id %s must resolve", listed.ID)
		assert.Equal(t, listed.ID, p.ID)
	}
}

func TestSummaryMatchesList(t *testing.T) {
	c := NewFromSeed()
	summary := c.Summary()
	products := c.List(Filter{})

	assert.Equal(t, len(products), summary.TotalProducts)

	var units int
	var value float64
	byStatus := map[models.StockStatus]int{}
	for _, p := range products {
		units += p.Quantity
		value += p.Price * float64(p.Quantity)
		byStatus[p.StockStatus]++
	}

	assert.Equal(t, units, summary.TotalUnits)
	assert.InDelta(t, value, summary.TotalValue, 1e-9)
	assert.Equal(t, byStatus[models.StockStatusIn], summary.InStockCount)
	assert.Equal(t, byStatus[models.StockStatusLow], summary.LowStockCount)
	assert.Equal(t, byStatus[models.StockStatusOut], summary.OutOfStockCount)

	byCategory := map[string]int{}
	for _, p := range products {
		byCategory[p.Category]++
	}
	assert.Equal(t, byCategory, summary.ByCategory)
}

func TestAlertsAreTheNonInStockSubset(t *testing.T) {
	c := NewFromSeed()
	alerts := c.Alerts()
	require.NotEmpty(t, alerts)

	listed := map[string]models.Product{}
	for _, p := range c.List(Filter{}) {
		listed[p.ID] = p
	}

	for _, a := range alerts {
		assert.NotEqual(t, models.StockStatusIn, a.StockStatus)
		full, ok := listed[a.ID]
		require.True(t, ok, "alert %s must be in the unfiltered list", a.ID)
		assert.Equal(t, full.StockStatus, a.StockStatus)
	}

	var expected int
	for _, p := range listed {
		if p.StockStatus != models.StockStatusIn {
			expected++
		}
	}
	assert.Len(t, alerts, expected)
}

func TestAlertExamples(t *testing.T) {
	c, err := New([]models.Product{
		{ID: "PROD-001", Quantity: 2, ReorderLevel: 5},
	})
	require.NoError(t, err)
	alerts := c.Alerts()
	require.Len(t, alerts, 1)
	assert.Equal(t, models.StockStatusLow, alerts[0].StockStatus)

	c, err = New([]models.Product{
		{ID: "PROD-001", Quantity: 0, ReorderLevel: 5},
	})
	require.NoError(t, err)
	alerts = c.Alerts()
	require.Len(t, alerts, 1)
	assert.Equal(t, models.StockStatusOut, alerts[0].StockStatus)

	c, err = New([]models.Product{
		{ID: "PROD-001", Quantity: 50, ReorderLevel: 5},
	})
	require.NoError(t, err)
	assert.Empty(t, c.Alerts())
}
