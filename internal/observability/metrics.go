package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce           sync.Once
	apiRequestsTotal       *prometheus.CounterVec
	apiLatencySeconds      *prometheus.HistogramVec
	resultGenerationsTotal *prometheus.CounterVec
	rankRunsTotal          prometheus.Counter
)

// RegisterMetrics initialises the Prometheus collectors for the result API.
func RegisterMetrics() {
	registerOnce.Do(func() {
		apiRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "unigrade_requests_total",
			Help: "Total number of API requests served.",
		}, []string{"method", "route", "status"})

		apiLatencySeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "unigrade_latency_seconds",
			Help:    "Latency distribution for API requests.",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.0},
		}, []string{"method", "route"})

		resultGenerationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "unigrade_result_generations_total",
			Help: "Total number of result generation requests by outcome.",
		}, []string{"outcome"})

		rankRunsTotal = prometheus.NewCounter(prometheus.CounterOpts{
			Name: "unigrade_rank_runs_total",
			Help: "Total number of cohort rank recomputations.",
		})

		prometheus.MustRegister(apiRequestsTotal, apiLatencySeconds, resultGenerationsTotal, rankRunsTotal)
	})
}

// APIRequests exposes the counter for API requests.
func APIRequests() *prometheus.CounterVec {
	RegisterMetrics()
	return apiRequestsTotal
}

// APILatency exposes the latency histogram for API requests.
func APILatency() *prometheus.HistogramVec {
	RegisterMetrics()
	return apiLatencySeconds
}

// ResultGenerations exposes the counter for result generations by outcome.
func ResultGenerations() *prometheus.CounterVec {
	RegisterMetrics()
	return resultGenerationsTotal
}

// RankRuns exposes the counter for rank recomputations.
func RankRuns() prometheus.Counter {
	RegisterMetrics()
	return rankRunsTotal
}
