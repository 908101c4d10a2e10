package dto

// AggregationBody is the JSON body of the aggregate endpoints.
// Addresses are hex strings and amounts are base-10 strings.
type AggregationBody struct {
	Factories  []string `json:"factories"`
	Fees       []uint64 `json:"fees"`
	MinAmounts []string `json:"min_amounts"`
	Amount     string   `json:"amount"`
	Path       []string `json:"path"`
}

// AmountsResponse is returned by the single-factory path endpoints.
type AmountsResponse struct {
	Amounts []string `json:"amounts"`
}

// AggregationResponse is returned by the aggregate endpoints.
type AggregationResponse struct {
	Amounts   []string `json:"amounts"`
	Factories []string `json:"factories"`
}
