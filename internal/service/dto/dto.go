package dto

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// QuoteRequest asks for the amount of TokenB worth AmountA of TokenA at the
// factory pool's current ratio.
type QuoteRequest struct {
	Factory common.Address
	TokenA  common.Address
	TokenB  common.Address
	AmountA *uint256.Int
}

// AmountsRequest is a single-factory path request. Amount is the input for
// AmountsOut and the desired output for AmountsIn.
type AmountsRequest struct {
	Factory common.Address
	Amount  *uint256.Int
	Path    []common.Address
}

// AggregationRequest is a multi-venue path request.
//
// A zero address in Factories disables that slot. When Factories and Fees are
// both empty the configured venues are used. When MinAmounts is empty no
// liquidity floors apply.
type AggregationRequest struct {
	Factories  []common.Address
	Fees       []uint64
	MinAmounts []*uint256.Int
	Amount     *uint256.Int
	Path       []common.Address
}

// AggregationResult holds the amount at every path position and the factory
// used for every hop.
type AggregationResult struct {
	Amounts   []*uint256.Int
	Factories []common.Address
}
