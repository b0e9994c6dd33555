package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	Submissions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "heartcare",
		Name:      "submissions_total",
		Help:      "Prediction submissions by outcome.",
	}, []string{"outcome"})

	PredictorDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "heartcare",
		Name:      "predictor_request_duration_seconds",
		Help:      "Latency of calls to the prediction endpoint.",
		Buckets:   prometheus.DefBuckets,
	})

	BreakerState = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "heartcare",
		Name:      "predictor_breaker_open",
		Help:      "1 while the predictor circuit breaker is open.",
	})
)

func ObserveSubmission(outcome string) {
	Submissions.WithLabelValues(outcome).Inc()
}
