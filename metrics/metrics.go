package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "scout_mint_validator"

var (
	decentRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "decent",
		Name:      "requests_total",
		Help:      "Count of Decent bridge API requests.",
	}, []string{"operation", "status"})
	decentRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "decent",
		Name:      "request_duration_seconds",
		Help:      "Duration of Decent bridge API requests.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "status"})

	verificationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "purchase",
		Name:      "verifications_total",
		Help:      "Count of pending transaction verifications by outcome.",
	}, []string{"outcome"})
	savesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "purchase",
		Name:      "saves_total",
		Help:      "Count of pending transaction saves.",
	}, []string{"status"})

	pointsClaimedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "points",
		Name:      "claimed_total",
		Help:      "Sum of points claimed by scouts.",
	})
	pointsCreditedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "points",
		Name:      "credited_total",
		Help:      "Sum of points credited to builders.",
	})

	attestationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "eas",
		Name:      "attestations_total",
		Help:      "Count of onchain attestations.",
	}, []string{"status"})
)

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

func ObserveDecentRequest(operation string, err error, started time.Time) {
	s := status(err)
	decentRequestsTotal.WithLabelValues(operation, s).Inc()
	decentRequestDuration.WithLabelValues(operation, s).Observe(time.Since(started).Seconds())
}

// RecordVerification counts a verification by outcome: a transaction status or "unavailable".
func RecordVerification(outcome string) {
	verificationsTotal.WithLabelValues(outcome).Inc()
}

func RecordSave(err error) {
	savesTotal.WithLabelValues(status(err)).Inc()
}

func RecordPointsClaimed(points int64) {
	pointsClaimedTotal.Add(float64(points))
}

func RecordPointsCredited(points int64) {
	pointsCreditedTotal.Add(float64(points))
}

func RecordAttestation(err error) {
	attestationsTotal.WithLabelValues(status(err)).Inc()
}
