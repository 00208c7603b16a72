package verigo

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"verigo/internal/credential/metrics"
)

// Collectors register once per process; sessions share them.
var (
	metricActiveSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "verigo_active_sessions",
		Help: "Number of currently connected sessions.",
	})

	metricMessagesSent = promauto.NewCounter(prometheus.CounterOpts{
		Name: "verigo_messages_sent_total",
		Help: "Total acknowledged inbox message sends.",
	})

	credentialMetrics = metrics.New()
)
