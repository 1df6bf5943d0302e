package util

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	InventoryQueriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inventory_queries_total",
		Help: "Total number of catalog queries by operation",
	}, []string{"operation"})

	AuthFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "auth_failures_total",
		Help: "Total number of rejected requests by reason",
	}, []string{"reason"})

	BadFilterTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bad_filter_values_total",
		Help: "Total number of list requests with an invalid filter value",
	})

	ProductLookupMissesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "product_lookup_misses_total",
		Help: "Total number of detail lookups for unknown product IDs",
	})

	CatalogProducts = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "catalog_products",
		Help: "Number of products in the loaded catalog",
	})

	StockAlerts = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "stock_alerts",
		Help: "Number of products in low or out of stock status at load time",
	})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})
)
