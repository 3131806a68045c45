// Package metrics defines the Prometheus collectors for the news API. HTTP
// metrics are recorded by middleware; the dataset gauges are refreshed
// periodically by a Refresher owned by main.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts completed requests by method, normalized
	// path and status code.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests processed.",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration observes request latency in seconds.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestsInFlight gauges requests currently being served.
	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Number of HTTP requests currently being served.",
		},
	)

	// ArticlesTotal gauges the number of articles in the store.
	ArticlesTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "news_articles_total",
			Help: "Number of articles currently stored.",
		},
	)

	// CommentsTotal gauges the number of comments in the store.
	CommentsTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "news_comments_total",
			Help: "Number of comments currently stored.",
		},
	)

	// TopicsTotal gauges the number of topics in the store.
	TopicsTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "news_topics_total",
			Help: "Number of topics currently stored.",
		},
	)

	// UsersTotal gauges the number of users in the store.
	UsersTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "news_users_total",
			Help: "Number of users currently stored.",
		},
	)
)
