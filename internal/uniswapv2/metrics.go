package uniswapv2

import "github.com/prometheus/client_golang/prometheus"

var (
	reserveReadsCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "v2aggregator_reserve_reads_total",
			Help: "Pool reserve reads issued while computing amounts",
		},
	)

	aggregationFallbackCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "v2aggregator_aggregation_fallback_total",
			Help: "Aggregation hops resolved with the first venue after no candidate met the liquidity floors",
		},
		[]string{"factory"},
	)

	aggregationVenueCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "v2aggregator_aggregation_venue_total",
			Help: "Venue chosen for each aggregation hop",
		},
		[]string{"direction", "factory"},
	)
)

func init() {
	prometheus.MustRegister(reserveReadsCounter)
	prometheus.MustRegister(aggregationFallbackCounter)
	prometheus.MustRegister(aggregationVenueCounter)
}
