// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "collab",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "The total number of handled HTTP requests",
	}, []string{"method", "route", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "collab",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	LogoUploadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "collab",
		Subsystem: "companies",
		Name:      "logo_uploads_total",
		Help:      "The total number of logo uploads by result",
	}, []string{"result"})

	CompanyDestroysTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "collab",
		Subsystem: "companies",
		Name:      "destroys_total",
		Help:      "The total number of company destroy attempts by result",
	}, []string{"result"})

	OwnerLookupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "collab",
		Subsystem: "companies",
		Name:      "owner_lookups_total",
		Help:      "Owner company lookups by cache result",
	}, []string{"result"})
)

// Result labels
const (
	ResultSuccess = "success"
	ResultInvalid = "invalid"
	ResultFailure = "failure"
	ResultBlocked = "blocked"
	ResultInUse   = "in_use"
	ResultHit     = "hit"
	ResultMiss    = "miss"
)
