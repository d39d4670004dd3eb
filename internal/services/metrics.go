package services

import (
	models "github.com/glkeru/cardfee/internal/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// метрики

var (
	decisionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "waiver_decisions_total",
			Help: "Annual fee decisions by outcome",
		},
		[]string{"outcome"},
	)

	diagnosticsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "waiver_diagnostics_total",
			Help: "Rules excluded from evaluation by reason",
		},
		[]string{"kind", "reason"},
	)

	batchCardsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "waiver_batch_cards_total",
			Help: "Cards processed by batch runs",
		},
		[]string{"result"},
	)

	batchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "waiver_batch_duration_seconds",
			Help:    "Duration of batch runs",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		},
	)
)

func observeDecision(decision models.WaiverDecision) {
	outcome := "not_waived"
	if decision.IsWaived {
		outcome = "waived"
	}
	decisionsTotal.WithLabelValues(outcome).Inc()
	for _, d := range decision.Diagnostics {
		diagnosticsTotal.WithLabelValues(string(d.Kind), string(d.Reason)).Inc()
	}
}
