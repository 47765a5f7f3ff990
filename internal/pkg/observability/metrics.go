package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OffersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: "dispatch", Name: "offers_total", Help: "Offer cycles by outcome"},
		[]string{"outcome"},
	)
	OfferCycleDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "dispatch",
		Name:      "offer_cycle_duration_seconds",
		Help:      "Duration of a single offer cycle",
		Buckets:   prometheus.DefBuckets,
	})
	JobsExhaustedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "dispatch", Name: "jobs_exhausted_total", Help: "Candidate queues drained without acceptance",
	})
	ResearchRoundsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "dispatch", Name: "research_rounds_total", Help: "Candidate re-search rounds executed",
	})
	DriversOnline = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "dispatch", Name: "drivers_online", Help: "Drivers currently in the available pool",
	})
)

// Offer cycle outcomes
const (
	OutcomeOffered   = "offered"
	OutcomeStale     = "stale"
	OutcomeLostRace  = "lost_race"
	OutcomeExhausted = "exhausted"
	OutcomeError     = "error"
)
