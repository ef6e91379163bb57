package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/steelbigcrow/TUT16-G4-OldPhoneDeals-sub001/internal/platform/logger"
)

// MetricsManager holds the marketplace's Prometheus metrics.
type MetricsManager struct {
	Registry              *prometheus.Registry
	OrdersPlacedTotal     prometheus.Counter
	OrderValue            prometheus.Histogram
	CheckoutFailuresTotal *prometheus.CounterVec
	CheckoutLatency       prometheus.Histogram
}

func NewMetricsManager(namespace string) *MetricsManager {
	registry := prometheus.NewRegistry()

	ordersPlacedTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_placed_total",
		Help:      "Total number of orders placed successfully.",
	})
	orderValue := prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "order_value",
		Help:      "Total amount of placed orders.",
		Buckets:   prometheus.ExponentialBuckets(10, 2.5, 8),
	})
	checkoutFailuresTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "checkout_failures_total",
		Help:      "Total number of failed checkouts by reason.",
	}, []string{"reason"})
	checkoutLatency := prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "checkout_latency_seconds",
		Help:      "Latency of the checkout workflow.",
		Buckets:   prometheus.DefBuckets,
	})

	registry.MustRegister(
		ordersPlacedTotal,
		orderValue,
		checkoutFailuresTotal,
		checkoutLatency,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &MetricsManager{
		Registry:              registry,
		OrdersPlacedTotal:     ordersPlacedTotal,
		OrderValue:            orderValue,
		CheckoutFailuresTotal: checkoutFailuresTotal,
		CheckoutLatency:       checkoutLatency,
	}
}

// StartMetricsServer exposes /metrics on its own port. A blank port
// disables the server.
func StartMetricsServer(port string, log logger.Logger, registry *prometheus.Registry) error {
	if port == "" {
		log.Info("Prometheus metrics server port not configured, server will not start")
		return nil
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	log.Infof("Prometheus metrics server starting on port %s", port)
	server := &http.Server{Addr: ":" + port, Handler: mux}
	return server.ListenAndServe()
}
