package handler

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "medvault_http_requests_total",
			Help: "HTTP requests by method, route and status.",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "medvault_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
)

// normalizePath collapses per-image paths into route patterns to keep label
// cardinality bounded.
func normalizePath(path string) string {
	switch {
	case strings.HasPrefix(path, "/files/"):
		return "/files/{filename}"
	case strings.HasPrefix(path, "/images/") && strings.HasSuffix(path, "/delete"):
		return "/images/{id}/delete"
	case path == "/api/images/count":
		return path
	case strings.HasPrefix(path, "/api/images/"):
		return "/api/images/{id}"
	}

	switch path {
	case "/", "/upload", "/search", "/search/results", "/api/images", "/api/tags", "/healthz", "/metrics":
		return path
	}
	return "other"
}
