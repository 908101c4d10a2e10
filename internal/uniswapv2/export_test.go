package uniswapv2

var (
	AggregationFallbackCounter = aggregationFallbackCounter
	AggregationVenueCounter    = aggregationVenueCounter
)
