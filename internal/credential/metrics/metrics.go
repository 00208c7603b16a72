package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds Prometheus collectors for the credential pipeline.
type Metrics struct {
	Verifications          prometheus.Counter
	VerificationFailures   *prometheus.CounterVec
	VerificationDurationMs prometheus.Histogram
	ExpiredCredentials     prometheus.Counter
}

// New registers and returns credential metrics collectors.
func New() *Metrics {
	return &Metrics{
		Verifications: promauto.NewCounter(prometheus.CounterOpts{
			Name: "verigo_credential_verifications_total",
			Help: "Total number of completed credential verifications",
		}),
		VerificationFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "verigo_credential_verification_failures_total",
			Help: "Total number of failed credential verifications by pipeline stage",
		}, []string{"stage"}),
		VerificationDurationMs: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "verigo_credential_verification_duration_ms",
			Help:    "Duration of full credential verification runs in milliseconds",
			Buckets: []float64{10, 50, 100, 250, 500, 1000, 2500, 5000, 10000},
		}),
		ExpiredCredentials: promauto.NewCounter(prometheus.CounterOpts{
			Name: "verigo_credential_expired_total",
			Help: "Total number of credentials observed past their expiration date",
		}),
	}
}
