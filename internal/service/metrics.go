package service

import "github.com/prometheus/client_golang/prometheus"

const (
	resultSuccess  = "success"
	resultError    = "error"
	resultCacheHit = "cache_hit"
)

var (
	analysesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "competitor_analyses_total",
			Help: "Total number of page analyses by result",
		},
		[]string{"result"},
	)

	pageLoadSeconds = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "competitor_page_load_seconds",
			Help:    "Time until response headers of analyzed pages",
			Buckets: prometheus.DefBuckets,
		},
	)

	technologiesDetected = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "competitor_technologies_detected_total",
			Help: "Technologies detected across analyzed pages",
		},
		[]string{"technology"},
	)
)

func init() {
	prometheus.MustRegister(analysesTotal, pageLoadSeconds, technologiesDetected)
}
