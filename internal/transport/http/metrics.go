package http

import "github.com/prometheus/client_golang/prometheus"

var (
	// v2aggregator_http_requests_total
	//
	// counter of served HTTP requests
	//
	// Has the following labels:
	// * route - the matched mux pattern
	// * status - the response status text
	httpRequestsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "v2aggregator_http_requests_total",
			Help: "Served HTTP requests",
		},
		[]string{"route", "status"},
	)
)

func init() {
	prometheus.MustRegister(httpRequestsCounter)
}
