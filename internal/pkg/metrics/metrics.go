package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CheckoutOutcomes counts checkout attempts by terminal outcome
	CheckoutOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "checkout",
			Name:      "outcomes_total",
			Help:      "Checkout attempts by terminal outcome",
		},
		[]string{"outcome"},
	)

	// ScanOutcomes counts ticket scans by gate and resulting state
	ScanOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "scanner",
			Name:      "scans_total",
			Help:      "Ticket scans by gate, state and validation status",
		},
		[]string{"gate", "state", "status"},
	)

	EntriesRecorded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "scanner",
			Name:      "entries_total",
			Help:      "Entry recordings by gate and result",
		},
		[]string{"gate", "result"},
	)
)
