package metrics

import (
	"net/http"
	"strconv"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	promhttp "github.com/prometheus/client_golang/prometheus/promhttp"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	capitalizeDuration *prom.HistogramVec
	sortableDuration   *prom.HistogramVec
	storeOps           *prom.CounterVec
	httpRequests       *prom.CounterVec
}

// NewPrometheusRecorder constructs and registers Prometheus metrics on reg.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		capitalizeDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: "bookcat",
			Name:      "capitalize_duration_seconds",
			Help:      "Duration of capitalize operations",
			Buckets:   prom.DefBuckets,
		}, []string{"kind"}),
		sortableDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: "bookcat",
			Name:      "sortable_duration_seconds",
			Help:      "Duration of sortable key derivations",
			Buckets:   prom.DefBuckets,
		}, []string{"kind"}),
		storeOps: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "bookcat",
			Name:      "store_operations_total",
			Help:      "Catalogue store operations by outcome",
		}, []string{"op", "result"}),
		httpRequests: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "bookcat",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status",
		}, []string{"route", "status"}),
	}
	reg.MustRegister(pr.capitalizeDuration, pr.sortableDuration, pr.storeOps, pr.httpRequests)
	return pr
}

func (p *PrometheusRecorder) ObserveCapitalize(kind string, d time.Duration) {
	if p == nil || p.capitalizeDuration == nil {
		return
	}
	p.capitalizeDuration.WithLabelValues(kind).Observe(d.Seconds())
}

func (p *PrometheusRecorder) ObserveSortable(kind string, d time.Duration) {
	if p == nil || p.sortableDuration == nil {
		return
	}
	p.sortableDuration.WithLabelValues(kind).Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncStoreOp(op string, success bool) {
	if p == nil || p.storeOps == nil {
		return
	}
	result := "success"
	if !success {
		result = "failure"
	}
	p.storeOps.WithLabelValues(op, result).Inc()
}

func (p *PrometheusRecorder) IncHTTPRequest(route string, status int) {
	if p == nil || p.httpRequests == nil {
		return
	}
	p.httpRequests.WithLabelValues(route, strconv.Itoa(status)).Inc()
}

// HTTPHandler returns an http.Handler serving the registry's metrics.
func HTTPHandler(reg *prom.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{EnableOpenMetrics: true})
}
