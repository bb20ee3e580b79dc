package metrics

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "coverletter"

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_total",
			Help:      "Generation endpoint requests by mode and outcome",
		},
		[]string{"mode", "outcome"},
	)

	extractionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "extractions_total",
			Help:      "Resume text extractions by format and outcome",
		},
		[]string{"format", "outcome"},
	)

	generationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "generation_duration_seconds",
			Help:      "Latency of calls to the text generation service",
			Buckets:   []float64{0.25, 0.5, 1, 2, 5, 10, 20, 30, 60, 120},
		},
	)
)

// IncRequest counts one finished request.
func IncRequest(mode, outcome string) {
	requestsTotal.WithLabelValues(mode, outcome).Inc()
}

// IncExtraction counts one extraction attempt.
func IncExtraction(format, outcome string) {
	extractionsTotal.WithLabelValues(format, outcome).Inc()
}

// ObserveGenerationSeconds records the duration of one generation call.
func ObserveGenerationSeconds(value float64) {
	if value < 0 {
		value = 0
	}
	generationDuration.Observe(value)
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
