package worker

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

//nolint:gochecknoglobals
var (
	priceFetchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "invclean",
		Subsystem: "pricing",
		Name:      "fetches_total",
		Help:      "Price fetches by result.",
	}, []string{"result"})

	priceFetchesStuck = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "invclean",
		Subsystem: "pricing",
		Name:      "fetches_stuck_evicted_total",
		Help:      "In-flight fetches evicted by the stuck-fetch sweep.",
	})

	disposalsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "invclean",
		Subsystem: "discard",
		Name:      "disposals_total",
		Help:      "Disposal commands dispatched to the host.",
	})

	runsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "invclean",
		Subsystem: "discard",
		Name:      "runs_total",
		Help:      "Finished discard runs by terminal state.",
	}, []string{"state"})
)
