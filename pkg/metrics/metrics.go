// Package metrics holds the prometheus collectors of the path finder.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "pathfinder"

var (
	// Labels: algorithm, result (found, unreachable)
	searches = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "search",
		Name:      "total",
		Help:      "Number of finished searches",
	}, []string{"algorithm", "result"})

	searchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "search",
		Name:      "duration_seconds",
		Help:      "Duration of a search including the heuristic initialization",
		Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
	}, []string{"algorithm"})

	pqPops = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "search",
		Name:      "pq_pops_total",
		Help:      "Number of nodes taken from the frontier",
	}, []string{"algorithm"})

	relaxations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "search",
		Name:      "relaxations_total",
		Help:      "Number of accepted arc relaxations",
	}, []string{"algorithm"})

	heuristicMapBuilds = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "heuristic",
		Name:      "map_builds_total",
		Help:      "Number of heuristic maps built",
	})

	// Labels: route, code
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Number of handled http requests",
	}, []string{"route", "code"})

	httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Duration of http requests",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route"})
)

// Record a finished search
func ObserveSearch(algorithm string, found bool, elapsed time.Duration, pops, relaxed int) {
	result := "unreachable"
	if found {
		result = "found"
	}
	searches.WithLabelValues(algorithm, result).Inc()
	searchDuration.WithLabelValues(algorithm).Observe(elapsed.Seconds())
	pqPops.WithLabelValues(algorithm).Add(float64(pops))
	relaxations.WithLabelValues(algorithm).Add(float64(relaxed))
}

func ObserveHeuristicMapBuild() {
	heuristicMapBuilds.Inc()
}

func ObserveRequest(route string, code int, elapsed time.Duration) {
	httpRequests.WithLabelValues(route, httpCode(code)).Inc()
	httpDuration.WithLabelValues(route).Observe(elapsed.Seconds())
}

func httpCode(code int) string {
	switch {
	case code >= 500:
		return "5xx"
	case code >= 400:
		return "4xx"
	case code >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
