// Package metrics defines Prometheus metrics for cograph.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cograph_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cograph_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	ErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cograph_errors_total",
			Help: "Total errors by type",
		},
		[]string{"type"},
	)

	AnalysisDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cograph_analysis_duration_seconds",
			Help:    "Duration of analysis phases in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 10),
		},
		[]string{"phase"},
	)

	RunsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "cograph_runs_total",
			Help: "Completed analysis runs",
		},
	)

	NodeCount = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "cograph_graph_nodes",
			Help: "Node count of the current graph",
		},
	)

	EdgeCount = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "cograph_graph_edges",
			Help: "Edge count of the current graph",
		},
	)
)

func init() {
	prometheus.MustRegister(
		RequestDuration, RequestsTotal, ErrorsTotal,
		AnalysisDuration, RunsTotal,
		NodeCount, EdgeCount,
	)
}
