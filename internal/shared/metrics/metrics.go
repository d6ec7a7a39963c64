package metrics

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// ResumeGeneratedTotal counts finished resume generations by source.
	ResumeGeneratedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "resume_generated_total",
			Help: "Total resumes produced, by source",
		},
		[]string{"source"},
	)

	// AIAttemptsTotal counts external generation attempts by outcome.
	AIAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "resume_ai_attempts_total",
			Help: "External generation attempts, by outcome",
		},
		[]string{"outcome"},
	)

	// GateRejectionsTotal counts plausibility gate rejections by reason.
	GateRejectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "resume_gate_rejections_total",
			Help: "Generated texts rejected by the plausibility gate, by reason",
		},
		[]string{"reason"},
	)

	// LLMRequestsTotal counts cover letter and interview calls by outcome.
	LLMRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "llm_requests_total",
			Help: "Direct LLM requests, by operation and outcome",
		},
		[]string{"operation", "outcome"},
	)

	// GenerationDuration records end-to-end resume generation latency.
	GenerationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "resume_generation_duration_seconds",
			Help:    "Duration of resume generation in seconds",
			Buckets: []float64{0.01, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30, 60},
		},
		[]string{"source"},
	)

	// MatchScore records the distribution of template match scores.
	MatchScore = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "resume_match_score",
			Help:    "Keyword match score of template resumes",
			Buckets: prometheus.LinearBuckets(0, 10, 11),
		},
	)
)

// ObserveGeneration records one finished generation.
func ObserveGeneration(source string, elapsed time.Duration) {
	ResumeGeneratedTotal.WithLabelValues(source).Inc()
	GenerationDuration.WithLabelValues(source).Observe(elapsed.Seconds())
}

// Handler exposes the default registry in Prometheus text format.
func Handler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
