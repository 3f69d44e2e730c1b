package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OrdersPlaced = promauto.NewCounter(prometheus.CounterOpts{
		Name: "platefinder_orders_placed_total",
		Help: "Number of orders placed (simulated confirmations included).",
	})

	RecommendationRequests = promauto.NewCounter(prometheus.CounterOpts{
		Name: "platefinder_recommendation_requests_total",
		Help: "Number of dish recommendation requests served.",
	})

	ProviderFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "platefinder_provider_failures_total",
		Help: "External provider failures by provider name.",
	}, []string{"provider"})
)
