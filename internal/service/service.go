package service

import (
	"context"

	"github.com/holiman/uint256"
	"go.uber.org/zap"

	"github.com/fleshka4/v2-aggregator/internal/service/dto"
	"github.com/fleshka4/v2-aggregator/internal/uniswapv2"
)

// Service represents interface for business logic.
type Service interface {
	Quote(ctx context.Context, req dto.QuoteRequest) (*uint256.Int, error)
	AmountsOut(ctx context.Context, req dto.AmountsRequest) ([]*uint256.Int, error)
	AmountsIn(ctx context.Context, req dto.AmountsRequest) ([]*uint256.Int, error)
	AggregateOut(ctx context.Context, req dto.AggregationRequest) (dto.AggregationResult, error)
	AggregateIn(ctx context.Context, req dto.AggregationRequest) (dto.AggregationResult, error)
}

// RouterService represents struct for business logic.
type RouterService struct {
	lib    *uniswapv2.Library
	logger *zap.Logger

	// Venues used when an aggregation request names none.
	factories []uniswapv2.FactorySlot
	fees      []uint64
}

var _ Service = (*RouterService)(nil)

// NewRouterService creates RouterService. factories and fees are the default
// aggregation venues and must have equal length.
func NewRouterService(lib *uniswapv2.Library, factories []uniswapv2.FactorySlot, fees []uint64, logger *zap.Logger) *RouterService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RouterService{
		lib:       lib,
		logger:    logger,
		factories: factories,
		fees:      fees,
	}
}
