package http

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Operation outcomes for the metrics labels.
const (
	outcomeOK       = "ok"
	outcomeRejected = "rejected"
	outcomeError    = "error"
)

var (
	operationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "lattice",
		Subsystem: "http",
		Name:      "operations_total",
		Help:      "Planner operations served over HTTP, by operation and outcome.",
	}, []string{"op", "outcome"})

	rosterLoadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "lattice",
		Subsystem: "http",
		Name:      "roster_loads_total",
		Help:      "Game-data load attempts, by outcome.",
	}, []string{"outcome"})

	shareExchangesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "lattice",
		Subsystem: "http",
		Name:      "share_exchanges_total",
		Help:      "Share string exports and imports, by direction and outcome.",
	}, []string{"direction", "outcome"})
)
