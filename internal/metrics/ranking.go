package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	rankinguc "github.com/kailas-cloud/resrank/internal/usecase/ranking"
)

// Ranking Prometheus metrics.
var (
	RankingRunsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "resrank",
			Name:      "ranking_runs_total",
			Help:      "Total ranking runs by outcome",
		},
		[]string{"status"},
	)

	RankingDocumentsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "resrank",
			Name:      "ranking_documents_total",
			Help:      "Uploaded documents by extraction outcome",
		},
		[]string{"outcome"}, // "readable" / "unreadable"
	)

	RankingDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "resrank",
			Name:      "ranking_duration_seconds",
			Help:      "Ranking run duration in seconds (extraction + scoring)",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"status"},
	)

	RankingBatchSize = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "resrank",
			Name:      "ranking_batch_documents",
			Help:      "Number of documents per ranking run",
			Buckets:   []float64{1, 2, 5, 10, 20, 50, 100},
		},
	)
)

var registerRankingOnce sync.Once

// RegisterRankingMetrics registers Prometheus ranking metrics. Call from main.
func RegisterRankingMetrics() {
	registerRankingOnce.Do(func() {
		prometheus.MustRegister(RankingRunsTotal)
		prometheus.MustRegister(RankingDocumentsTotal)
		prometheus.MustRegister(RankingDuration)
		prometheus.MustRegister(RankingBatchSize)
	})
}

// RankingRecorder implements ranking.RunObserver on the package collectors.
type RankingRecorder struct{}

var _ rankinguc.RunObserver = RankingRecorder{}

// ObserveRun records a finished ranking run.
func (RankingRecorder) ObserveRun(status rankinguc.RunStatus, readable, unreadable int, duration time.Duration) {
	s := string(status)
	RankingRunsTotal.WithLabelValues(s).Inc()
	RankingDuration.WithLabelValues(s).Observe(duration.Seconds())
	if readable > 0 {
		RankingDocumentsTotal.WithLabelValues("readable").Add(float64(readable))
	}
	if unreadable > 0 {
		RankingDocumentsTotal.WithLabelValues("unreadable").Add(float64(unreadable))
	}
	if n := readable + unreadable; n > 0 {
		RankingBatchSize.Observe(float64(n))
	}
}
