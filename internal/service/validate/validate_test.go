package validate

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleshka4/v2-aggregator/internal/apperrors"
	"github.com/fleshka4/v2-aggregator/internal/service/dto"
)

var (
	factory = common.HexToAddress("0x789")
	tokenA  = common.HexToAddress("0x123")
	tokenB  = common.HexToAddress("0x456")
)

func TestQuoteRequestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		req     dto.QuoteRequest
		wantErr assert.ErrorAssertionFunc
	}{
		{
			name:    "valid request",
			req:     dto.QuoteRequest{Factory: factory, TokenA: tokenA, TokenB: tokenB, AmountA: uint256.NewInt(100)},
			wantErr: assert.NoError,
		},
		{
			name:    "zero factory",
			req:     dto.QuoteRequest{TokenA: tokenA, TokenB: tokenB, AmountA: uint256.NewInt(100)},
			wantErr: assert.Error,
		},
		{
			name:    "nil amount",
			req:     dto.QuoteRequest{Factory: factory, TokenA: tokenA, TokenB: tokenB},
			wantErr: assert.Error,
		},
		{
			name:    "zero amount",
			req:     dto.QuoteRequest{Factory: factory, TokenA: tokenA, TokenB: tokenB, AmountA: uint256.NewInt(0)},
			wantErr: assert.Error,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := QuoteRequestValidate(tt.req)
			tt.wantErr(t, err)
			if err != nil {
				require.ErrorIs(t, err, apperrors.ErrInvalidArgument)
			}
		})
	}
}

func TestAmountsRequestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		req     dto.AmountsRequest
		wantErr assert.ErrorAssertionFunc
	}{
		{
			name:    "valid request",
			req:     dto.AmountsRequest{Factory: factory, Amount: uint256.NewInt(1), Path: []common.Address{tokenA, tokenB}},
			wantErr: assert.NoError,
		},
		{
			name:    "zero factory",
			req:     dto.AmountsRequest{Amount: uint256.NewInt(1), Path: []common.Address{tokenA, tokenB}},
			wantErr: assert.Error,
		},
		{
			name:    "zero amount",
			req:     dto.AmountsRequest{Factory: factory, Amount: new(uint256.Int), Path: []common.Address{tokenA, tokenB}},
			wantErr: assert.Error,
		},
		{
			name:    "single token path",
			req:     dto.AmountsRequest{Factory: factory, Amount: uint256.NewInt(1), Path: []common.Address{tokenA}},
			wantErr: assert.Error,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := AmountsRequestValidate(tt.req)
			tt.wantErr(t, err)
			if err != nil {
				require.ErrorIs(t, err, apperrors.ErrInvalidArgument)
			}
		})
	}
}

func TestAggregationRequestValidate(t *testing.T) {
	t.Parallel()

	path := []common.Address{tokenA, tokenB}

	tests := []struct {
		name    string
		req     dto.AggregationRequest
		wantErr assert.ErrorAssertionFunc
	}{
		{
			name:    "configured venues",
			req:     dto.AggregationRequest{Amount: uint256.NewInt(1), Path: path},
			wantErr: assert.NoError,
		},
		{
			name: "explicit venues",
			req: dto.AggregationRequest{
				Factories:  []common.Address{factory, {}},
				Fees:       []uint64{9970, MaxFee},
				MinAmounts: []*uint256.Int{uint256.NewInt(0), uint256.NewInt(10)},
				Amount:     uint256.NewInt(1),
				Path:       path,
			},
			wantErr: assert.NoError,
		},
		{
			name:    "nil amount",
			req:     dto.AggregationRequest{Path: path},
			wantErr: assert.Error,
		},
		{
			name:    "empty path",
			req:     dto.AggregationRequest{Amount: uint256.NewInt(1)},
			wantErr: assert.Error,
		},
		{
			name:    "zero fee",
			req:     dto.AggregationRequest{Factories: []common.Address{factory}, Fees: []uint64{0}, Amount: uint256.NewInt(1), Path: path},
			wantErr: assert.Error,
		},
		{
			name:    "fee above denominator",
			req:     dto.AggregationRequest{Factories: []common.Address{factory}, Fees: []uint64{MaxFee + 1}, Amount: uint256.NewInt(1), Path: path},
			wantErr: assert.Error,
		},
		{
			name:    "missing floor",
			req:     dto.AggregationRequest{MinAmounts: []*uint256.Int{uint256.NewInt(1), nil}, Amount: uint256.NewInt(1), Path: path},
			wantErr: assert.Error,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := AggregationRequestValidate(tt.req)
			tt.wantErr(t, err)
			if err != nil {
				require.ErrorIs(t, err, apperrors.ErrInvalidArgument)
			}
		})
	}
}
