package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	UpstreamRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "diamondtrends_upstream_requests_total",
		Help: "Outbound stats API requests by endpoint and outcome",
	}, []string{"endpoint", "outcome"})

	UpstreamDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "diamondtrends_upstream_request_duration_seconds",
		Help:    "Latency of outbound stats API requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"endpoint"})

	DegradedResults = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "diamondtrends_degraded_results_total",
		Help: "Upstream results folded into empty values",
	}, []string{"operation"})

	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "diamondtrends_http_requests_total",
		Help: "Inbound HTTP requests by route pattern and status",
	}, []string{"route", "status"})

	TrendQualifyingTeams = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "diamondtrends_trend_qualifying_teams",
		Help: "Teams meeting the minimum sample in the last trend computation",
	})
)

func Handler() http.Handler {
	return promhttp.Handler()
}
