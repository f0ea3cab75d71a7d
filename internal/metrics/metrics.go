package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// QueryDuration observes store round trips per query context
	// (layer id, kpi name, etc).
	QueryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "cartocensal",
		Subsystem: "store",
		Name:      "query_duration_seconds",
		Help:      "Duration of store queries.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"query"})

	// QueryErrors counts failed store calls per query context.
	QueryErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cartocensal",
		Subsystem: "store",
		Name:      "query_errors_total",
		Help:      "Failed store queries.",
	}, []string{"query"})
)

// Handler exposes the default Prometheus registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
